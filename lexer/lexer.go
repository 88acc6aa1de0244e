// Package lexer implements a hand-written, single-pass scanner that turns
// a source byte slice into a sequence of token.Token values.
package lexer

import (
	"fmt"

	"eos/token"
)

// Lexer scans source bytes into tokens. Its lifetime is the scan of one
// source string; it is not reused.
type Lexer struct {
	source []byte
	start  uint32
	cursor uint32
	line   int32
}

// New returns a Lexer over source, ready to scan from line 1.
func New(source string) *Lexer {
	return &Lexer{source: []byte(source), line: 1}
}

func (l *Lexer) isAtEnd() bool { return l.cursor >= uint32(len(l.source)) }

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.cursor]
}

func (l *Lexer) peekNext() byte {
	if l.cursor+1 >= uint32(len(l.source)) {
		return 0
	}
	return l.source[l.cursor+1]
}

func (l *Lexer) advance() byte {
	b := l.source[l.cursor]
	l.cursor++
	return b
}

// match consumes the current byte and returns true if it equals expected;
// otherwise it leaves the cursor untouched and returns false.
func (l *Lexer) match(expected byte) bool {
	if l.isAtEnd() || l.source[l.cursor] != expected {
		return false
	}
	l.cursor++
	return true
}

func (l *Lexer) makeToken(kind token.Kind) token.Token {
	return token.New(kind, l.start, l.cursor, l.line)
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }

// skipWhitespaceAndComments advances past spaces, tabs, newlines (tracking
// line numbers) and "#"-to-end-of-line comments, in the loop the original
// source runs between tokens.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.isAtEnd() {
		switch l.source[l.cursor] {
		case ' ', '\t', '\r':
			l.cursor++
		case '\n':
			l.line++
			l.cursor++
		case '#':
			for !l.isAtEnd() && l.source[l.cursor] != '\n' {
				l.cursor++
			}
		default:
			return
		}
	}
}

// Lex scans the entire source and returns the resulting token sequence,
// always terminated by EndOfFile or (on the first lexical error) Error.
// The returned slice includes the terminal token; err is non-nil iff that
// terminal token is Error.
func (l *Lexer) Lex() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := l.nextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EndOfFile {
			return tokens, nil
		}
		if tok.Kind == token.Error {
			return tokens, err
		}
	}
}

func (l *Lexer) nextToken() (token.Token, error) {
	l.skipWhitespaceAndComments()
	l.start = l.cursor

	if l.isAtEnd() {
		return l.makeToken(token.EndOfFile), nil
	}

	c := l.advance()

	switch {
	case isAlpha(c):
		return l.identifierOrKeyword(), nil
	case isDigit(c):
		return l.number(), nil
	}

	switch c {
	case '(':
		return l.makeToken(token.LeftParen), nil
	case ')':
		return l.makeToken(token.RightParen), nil
	case '{':
		return l.makeToken(token.LeftBrace), nil
	case '}':
		return l.makeToken(token.RightBrace), nil
	case ',':
		return l.makeToken(token.Comma), nil
	case '.':
		return l.makeToken(token.Dot), nil
	case '-':
		return l.makeToken(token.Minus), nil
	case '+':
		return l.makeToken(token.Plus), nil
	case ';':
		return l.makeToken(token.Semicolon), nil
	case '*':
		return l.makeToken(token.Star), nil
	case '/':
		return l.makeToken(token.Slash), nil
	case '!':
		if l.match('=') {
			return l.makeToken(token.BangEqual), nil
		}
		return l.makeToken(token.Bang), nil
	case '=':
		if l.match('=') {
			return l.makeToken(token.EqualEqual), nil
		}
		return l.makeToken(token.Equal), nil
	case '>':
		if l.match('=') {
			return l.makeToken(token.GreaterEqual), nil
		}
		return l.makeToken(token.Greater), nil
	case '<':
		if l.match('=') {
			return l.makeToken(token.LessEqual), nil
		}
		return l.makeToken(token.Less), nil
	case '"':
		return l.string()
	}

	err := LexError{Line: l.line, Message: fmt.Sprintf("unexpected character '%c'", c)}
	return l.makeToken(token.Error), err
}

// identifierOrKeyword scans an identifier or keyword. It preserves the
// original source's keyword-matching bug deliberately (SPEC_FULL.md §9
// Open Question 1): a keyword is recognized by comparing raw bytes at the
// token's start against each keyword's exact length, with no check that
// the following byte isn't itself an identifier character. "varx" therefore
// lexes as keyword Var immediately followed by identifier "x", not as a
// single identifier "varx".
func (l *Lexer) identifierOrKeyword() token.Token {
	for keyword, kind := range token.Keywords {
		end := l.start + uint32(len(keyword))
		if end <= uint32(len(l.source)) && string(l.source[l.start:end]) == keyword {
			l.cursor = end
			return l.makeToken(kind)
		}
	}

	for !l.isAtEnd() && isAlphaNumeric(l.source[l.cursor]) {
		l.cursor++
	}
	return l.makeToken(token.Identifier)
}

// number scans a run of digits with at most one embedded decimal point.
// Unlike the original source (which falls through to a spurious Error
// token whenever a number is not followed by whitespace, including at
// end-of-file), this only consumes a "." when it is followed by another
// digit, so a number directly followed by EOF, an operator, or a second
// "." always lexes cleanly as Integer or Float.
func (l *Lexer) number() token.Token {
	for isDigit(l.peek()) {
		l.cursor++
	}

	isFloat := false
	if l.peek() == '.' && isDigit(l.peekNext()) {
		isFloat = true
		l.cursor++
		for isDigit(l.peek()) {
			l.cursor++
		}
	}

	if isFloat {
		return l.makeToken(token.Float)
	}
	return l.makeToken(token.Integer)
}

// string scans a double-quoted string literal with no escape sequences.
// The returned token's range includes both quotes; token.Token.StrRange
// strips them.
func (l *Lexer) string() (token.Token, error) {
	for !l.isAtEnd() {
		c := l.advance()
		if c == '\n' {
			l.line++
		}
		if c == '"' {
			return l.makeToken(token.Text), nil
		}
	}
	err := LexError{Line: l.line, Message: "unterminated string literal"}
	return l.makeToken(token.Error), err
}
