package compiler

import "fmt"

// CompileError is returned by Compile when the source contains one or more
// parse errors (a lex error is returned as lexer.LexError instead). Only
// the first is latched and reported (see
// Compiler.errorAt); this carries its line and message for callers that
// want to inspect it programmatically rather than re-parsing reporter
// output.
type CompileError struct {
	Line    int32
	Lexeme  string
	Message string
}

func (e CompileError) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("💥 CompileError: line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("💥 CompileError: line %d at '%s': %s", e.Line, e.Lexeme, e.Message)
}

// DeveloperError reports an invariant the compiler itself violated -- never
// a user source-text mistake. Its only expected cause is the lexer handing
// the compiler an Integer or Float token whose lexeme strconv can't parse,
// which should be impossible given what the lexer accepts into those token
// kinds.
type DeveloperError struct {
	Message string
}

func (e DeveloperError) Error() string {
	return fmt.Sprintf("🐛 DeveloperError: %s", e.Message)
}
