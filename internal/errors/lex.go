package errors

import "github.com/emberlang/ember/internal/lexer"

var lexCodes = map[lexer.ErrKind]string{
	lexer.Unrecoverable:      LEX009,
	lexer.NotMyToken:         LEX001,
	lexer.InvalidBinary:      LEX002,
	lexer.InvalidOctal:       LEX003,
	lexer.InvalidHexadecimal: LEX004,
	lexer.InvalidUnicode:     LEX005,
	lexer.InvalidCharacter:   LEX006,
	lexer.InvalidRawString:   LEX007,
	lexer.InvalidMlString:    LEX008,
}

// FromLexErr converts a lexer error into a structured Report. Callers
// that only have a *lexer.Error (the lexer package itself never
// imports this one, to keep it dependency-free) use this at the
// boundary where diagnostics are surfaced to a host or CLI.
func FromLexErr(err *lexer.Error) *Report {
	if err == nil || err.Kind == lexer.Success {
		return nil
	}
	code, ok := lexCodes[err.Kind]
	if !ok {
		code = LEX001
	}
	return &Report{
		Schema:  "ember.error/v1",
		Code:    code,
		Phase:   "lexer",
		Message: err.Error(),
		Line:    err.Line,
		Column:  err.Column,
	}
}
