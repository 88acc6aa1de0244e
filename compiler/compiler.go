// Package compiler implements a single-pass Pratt (operator-precedence)
// parser that reads a token stream and emits bytecode directly into a
// chunk.Chunk -- there is no intermediate AST.
package compiler

import (
	"errors"
	"fmt"
	"strconv"

	"eos/chunk"
	"eos/lexer"
	"eos/reporter"
	"eos/token"
	"eos/value"
)

// Precedence is the binding strength used to decide how far parsePrecedence
// climbs before returning control to its caller.
type Precedence int

const (
	PrecNone Precedence = iota
	PrecAssignment
	PrecOr
	PrecAnd
	PrecEquality
	PrecComparison
	PrecTerm
	PrecFactor
	PrecUnary
	PrecCall
	PrecPrimary
)

// next returns the next-higher precedence, saturating at PrecPrimary: a
// right-associative operator would step down instead, but EOS has none.
func (p Precedence) next() Precedence {
	if p >= PrecPrimary {
		return PrecPrimary
	}
	return p + 1
}

type parseFunc func(*Compiler) error

type parseRule struct {
	prefix     parseFunc
	infix      parseFunc
	precedence Precedence
}

// rules is the static table mapping a token kind to how it behaves as a
// prefix expression, an infix operator, or neither. Built once at package
// init; every Compiler shares it.
var rules map[token.Kind]parseRule

func init() {
	rules = map[token.Kind]parseRule{
		token.LeftParen:    {prefix: grouping},
		token.Minus:        {prefix: unary, infix: binary, precedence: PrecTerm},
		token.Plus:         {infix: binary, precedence: PrecTerm},
		token.Slash:        {infix: binary, precedence: PrecFactor},
		token.Star:         {infix: binary, precedence: PrecFactor},
		token.Bang:         {prefix: unary},
		token.BangEqual:    {infix: binary, precedence: PrecEquality},
		token.EqualEqual:   {infix: binary, precedence: PrecEquality},
		token.Greater:      {infix: binary, precedence: PrecComparison},
		token.GreaterEqual: {infix: binary, precedence: PrecComparison},
		token.Less:         {infix: binary, precedence: PrecComparison},
		token.LessEqual:    {infix: binary, precedence: PrecComparison},
		token.Text:         {prefix: stringLiteral},
		token.Integer:      {prefix: number},
		token.Float:        {prefix: number},
		token.True:         {prefix: literal},
		token.False:        {prefix: literal},
		token.Null:         {prefix: literal},
	}
}

// Compiler holds the state of a single compilation: the token stream, a
// one-token lookahead (previous/current), the chunk being built, and the
// latch that stops a cascade of follow-on errors after the first one.
type Compiler struct {
	tokens   []token.Token
	pos      int
	source   []byte
	chunk    *chunk.Chunk
	previous token.Token
	current  token.Token
	hadError bool
	reporter reporter.Reporter
	interner *value.Interner
}

// Compile lexes and compiles source into a fresh chunk.Chunk. A lex error
// or parse error is reported through rep and returned as an error; the
// returned chunk is nil in that case.
func Compile(source string, rep reporter.Reporter, interner *value.Interner) (*chunk.Chunk, error) {
	tokens, lexErr := lexer.New(source).Lex()
	if lexErr != nil {
		var le lexer.LexError
		if errors.As(lexErr, &le) {
			rep.ReportCompileError(le.Line, "", le.Message)
		}
		return nil, lexErr
	}

	c := &Compiler{
		tokens:   tokens,
		source:   []byte(source),
		chunk:    chunk.New(),
		reporter: rep,
		interner: interner,
	}
	if err := c.compile(); err != nil {
		return nil, err
	}
	return c.chunk, nil
}

func (c *Compiler) compile() error {
	c.advance()
	if err := c.parsePrecedence(PrecAssignment); err != nil {
		return err
	}
	c.consume(token.EndOfFile, "expected end of expression")
	if c.hadError {
		return CompileError{Line: c.current.Line, Lexeme: c.current.Lexeme(c.source), Message: "compilation failed"}
	}
	return nil
}

// advance shifts current into previous and reads the next token, EndOfFile
// once the stream is exhausted.
func (c *Compiler) advance() {
	c.previous = c.current
	if c.pos < len(c.tokens) {
		c.current = c.tokens[c.pos]
		c.pos++
		return
	}
	c.current = token.Token{Kind: token.EndOfFile, Line: c.previous.Line}
}

func (c *Compiler) consume(kind token.Kind, message string) {
	if c.current.Kind == kind {
		c.advance()
		return
	}
	c.errorAtCurrent(message)
}

// parsePrecedence is the core Pratt loop: parse one prefix expression, then
// keep folding in infix operators whose precedence is at least as strong
// as precedence.
func (c *Compiler) parsePrecedence(precedence Precedence) error {
	c.advance()
	rule := rules[c.previous.Kind]
	if rule.prefix == nil {
		c.errorAtPrevious("expected expression")
		return nil
	}
	if err := rule.prefix(c); err != nil {
		return err
	}

	for rules[c.current.Kind].precedence >= precedence {
		c.advance()
		infixRule := rules[c.previous.Kind]
		if infixRule.infix == nil {
			break
		}
		if err := infixRule.infix(c); err != nil {
			return err
		}
	}
	return nil
}

// errorAt reports at most one error per compilation: once hadError
// latches, every later call is a silent no-op, so a single bad token
// doesn't cascade into a wall of follow-on diagnostics.
func (c *Compiler) errorAt(tok token.Token, message string) {
	if c.hadError {
		return
	}
	c.hadError = true
	c.reporter.ReportCompileError(tok.Line, tok.Lexeme(c.source), message)
}

func (c *Compiler) errorAtCurrent(message string)  { c.errorAt(c.current, message) }
func (c *Compiler) errorAtPrevious(message string) { c.errorAt(c.previous, message) }

func (c *Compiler) emit(op chunk.OpCode, line int32) {
	c.chunk.AppendOpcode(op, line)
}

func grouping(c *Compiler) error {
	if err := c.parsePrecedence(PrecAssignment); err != nil {
		return err
	}
	c.consume(token.RightParen, "expected ')' after expression")
	return nil
}

// unary handles both "-" (arithmetic negate) and "!" (logical not): both
// compile to the same Negate opcode, which dispatches on the operand's
// runtime kind (see value.Negate).
func unary(c *Compiler) error {
	operator := c.previous
	if err := c.parsePrecedence(PrecUnary); err != nil {
		return err
	}
	c.emit(chunk.Negate, operator.Line)
	return nil
}

// binary compiles a left-associative infix operator. ">=", "<=" and "!="
// have no dedicated opcode: they desugar to Less/Greater/Equal followed by
// a Negate, since the VM only implements Greater, Less and Equal directly.
func binary(c *Compiler) error {
	operator := c.previous
	rule := rules[operator.Kind]
	if err := c.parsePrecedence(rule.precedence.next()); err != nil {
		return err
	}

	switch operator.Kind {
	case token.Plus:
		c.emit(chunk.Add, operator.Line)
	case token.Minus:
		c.emit(chunk.Subtract, operator.Line)
	case token.Star:
		c.emit(chunk.Multiply, operator.Line)
	case token.Slash:
		c.emit(chunk.Divide, operator.Line)
	case token.EqualEqual:
		c.emit(chunk.Equal, operator.Line)
	case token.BangEqual:
		c.emit(chunk.Equal, operator.Line)
		c.emit(chunk.Negate, operator.Line)
	case token.Greater:
		c.emit(chunk.Greater, operator.Line)
	case token.GreaterEqual:
		c.emit(chunk.Less, operator.Line)
		c.emit(chunk.Negate, operator.Line)
	case token.Less:
		c.emit(chunk.Less, operator.Line)
	case token.LessEqual:
		c.emit(chunk.Greater, operator.Line)
		c.emit(chunk.Negate, operator.Line)
	}
	return nil
}

func number(c *Compiler) error {
	lexeme := c.previous.Lexeme(c.source)
	if c.previous.Kind == token.Integer {
		n, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			return DeveloperError{Message: fmt.Sprintf("lexer produced an unparsable integer literal %q: %v", lexeme, err)}
		}
		c.chunk.AppendValue(value.Integer(n), c.previous.Line)
		return nil
	}
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return DeveloperError{Message: fmt.Sprintf("lexer produced an unparsable float literal %q: %v", lexeme, err)}
	}
	c.chunk.AppendValue(value.Float(f), c.previous.Line)
	return nil
}

// stringLiteral strips the surrounding quotes and interns the content, so
// that equal-content string literals compiled within the same Compiler
// (and against the same Interner) share one backing pointer.
func stringLiteral(c *Compiler) error {
	start, end := c.previous.StrRange()
	content := string(c.source[start:end])
	var s *string
	if c.interner != nil {
		s = c.interner.Intern(content)
	} else {
		s = &content
	}
	c.chunk.AppendValue(value.Object(s), c.previous.Line)
	return nil
}

func literal(c *Compiler) error {
	switch c.previous.Kind {
	case token.True:
		c.chunk.AppendValue(value.Boolean(true), c.previous.Line)
	case token.False:
		c.chunk.AppendValue(value.Boolean(false), c.previous.Line)
	case token.Null:
		c.chunk.AppendValue(value.Null(), c.previous.Line)
	}
	return nil
}
