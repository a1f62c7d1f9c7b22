package lexer

import "fmt"

// ErrKind enumerates the lexical error taxonomy of spec §7. The zero
// value is Success so that a rule which never fails can return it
// without constructing anything.
type ErrKind int

const (
	Success ErrKind = iota
	Unrecoverable
	Failure
	NotMyToken
	InvalidBinary
	InvalidOctal
	InvalidHexadecimal
	InvalidUnicode
	InvalidCharacter
	InvalidRawString
	InvalidMlString
)

var errKindNames = map[ErrKind]string{
	Success:            "success",
	Unrecoverable:      "unrecoverable",
	Failure:            "failure",
	NotMyToken:         "not_my_token",
	InvalidBinary:      "invalid_binary",
	InvalidOctal:       "invalid_octal",
	InvalidHexadecimal: "invalid_hexadecimal",
	InvalidUnicode:     "invalid_unicode",
	InvalidCharacter:   "invalid_character",
	InvalidRawString:   "invalid_raw_string",
	InvalidMlString:    "invalid_ml_string",
}

func (k ErrKind) String() string {
	if s, ok := errKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrKind(%d)", int(k))
}

// Error carries a lexical error kind together with the source position
// where it was raised, and implements the error interface so callers
// that only want a Go error can use it directly.
type Error struct {
	Kind   ErrKind
	Line   uint64
	Column uint64
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Column, e.Detail)
	}
	return fmt.Sprintf("%s at %d:%d", e.Kind, e.Line, e.Column)
}

// IsOK reports whether err represents the Success kind (including a nil
// *Error).
func IsOK(err *Error) bool { return err == nil || err.Kind == Success }
