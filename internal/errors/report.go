package errors

import (
	"encoding/json"
	"errors"
)

// Report is the canonical structured diagnostic: every LexErr/SynErr
// the front-end produces is convertible to one via FromLexErr/FromSynErr
// for CLI or host consumption.
type Report struct {
	Schema  string `json:"schema"` // always "ember.error/v1"
	Code    string `json:"code"`
	Phase   string `json:"phase"` // "lexer" or "parser"
	Message string `json:"message"`
	Line    uint64 `json:"line"`
	Column  uint64 `json:"column"`
}

// ReportError wraps a Report as an error so it survives errors.As
// unwrapping through ordinary Go error-handling code.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport extracts a Report from an error chain, if one is present.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps r as an error, or returns nil for a nil Report.
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// ToJSON renders r deterministically; indent controls pretty-printing.
func (r *Report) ToJSON(indent bool) (string, error) {
	var data []byte
	var err error
	if indent {
		data, err = json.MarshalIndent(r, "", "  ")
	} else {
		data, err = json.Marshal(r)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
