package errors

import "github.com/emberlang/ember/internal/parser"

var synCodes = map[parser.SynErrKind]string{
	parser.Unrecoverable:         PAR006,
	parser.NotMySyntax:           PAR001,
	parser.ExpectedIdentifier:    PAR002,
	parser.ExpectedTerminator:    PAR003,
	parser.ExpectedModuleMember:  PAR004,
	parser.Failure:               PAR005,
}

// FromSynErr converts a parser error into a structured Report.
func FromSynErr(err *parser.SynErr) *Report {
	if err == nil || err.Kind == parser.Success {
		return nil
	}
	code, ok := synCodes[err.Kind]
	if !ok {
		code = PAR001
	}
	return &Report{
		Schema:  "ember.error/v1",
		Code:    code,
		Phase:   "parser",
		Message: err.Error(),
		Line:    err.Line,
		Column:  err.Column,
	}
}
