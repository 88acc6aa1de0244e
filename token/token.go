// Package token defines the lexical token set produced by the lexer and
// consumed by the compiler's Pratt parser.
package token

import "fmt"

// Kind classifies a Token. There are exactly 41 kinds, matching the
// original language's token set one-for-one.
type Kind uint8

const (
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual
	Identifier
	Text
	Integer
	Float
	And
	Class
	Else
	False
	For
	Fun
	If
	Null
	Or
	Print
	Return
	Super
	This
	True
	Var
	While
	Error
	EndOfFile
)

var names = [...]string{
	"LeftParen", "RightParen", "LeftBrace", "RightBrace", "Comma", "Dot",
	"Minus", "Plus", "Semicolon", "Slash", "Star", "Bang", "BangEqual",
	"Equal", "EqualEqual", "Greater", "GreaterEqual", "Less", "LessEqual",
	"Identifier", "Text", "Integer", "Float", "And", "Class", "Else",
	"False", "For", "Fun", "If", "Null", "Or", "Print", "Return", "Super",
	"This", "True", "Var", "While", "Error", "EndOfFile",
}

func (k Kind) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Keywords maps reserved keyword lexemes to their Kind. The lexer matches
// these as prefixes at the start of a token, before scanning any
// identifier characters (see lexer.identifierOrKeyword).
var Keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"Null":   Null,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Token is a lexical token: its Kind, a byte range into the source it was
// scanned from, and the source line it starts on.
type Token struct {
	Kind  Kind
	Start uint32
	End   uint32
	Line  int32
}

// New constructs a Token over the half-open byte range [start, end).
func New(kind Kind, start, end uint32, line int32) Token {
	return Token{Kind: kind, Start: start, End: end, Line: line}
}

// Range returns the token's raw byte range into the source.
func (t Token) Range() (uint32, uint32) { return t.Start, t.End }

// StrRange returns the byte range with one byte trimmed from each end,
// used to strip the surrounding quotes from a Text token's range.
func (t Token) StrRange() (uint32, uint32) {
	start, end := t.Start, t.End
	if end > start {
		start++
	}
	if end > start {
		end--
	}
	return start, end
}

// Lexeme returns the token's source text given the original source bytes.
func (t Token) Lexeme(source []byte) string {
	return string(source[t.Start:t.End])
}

func (t Token) String() string {
	return fmt.Sprintf("Token{%s, %d..%d, line %d}", t.Kind, t.Start, t.End, t.Line)
}
