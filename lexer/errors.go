package lexer

import "fmt"

// LexError reports a byte sequence the lexer could not turn into a valid
// token: an unterminated string or an unrecognized byte. The number
// scanner never produces one; it stops at the first byte that cannot
// continue the number.
type LexError struct {
	Line    int32
	Message string
}

func (e LexError) Error() string {
	return fmt.Sprintf("💥 LexError: line %d: %s", e.Line, e.Message)
}
