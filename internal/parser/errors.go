package parser

import "fmt"

// SynErrKind enumerates the syntax error taxonomy of spec §4.5. The
// zero value is Success so a parser which never fails can return it
// without constructing anything.
type SynErrKind int

const (
	Success SynErrKind = iota
	Unrecoverable
	Failure
	NotMySyntax
	ExpectedIdentifier
	ExpectedTerminator
	ExpectedModuleMember
)

var synErrKindNames = map[SynErrKind]string{
	Success:               "success",
	Unrecoverable:         "unrecoverable",
	Failure:               "failure",
	NotMySyntax:           "not_my_syntax",
	ExpectedIdentifier:    "expected_identifier",
	ExpectedTerminator:    "expected_terminator",
	ExpectedModuleMember:  "expected_module_member",
}

func (k SynErrKind) String() string {
	if s, ok := synErrKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("SynErrKind(%d)", int(k))
}

// SynErr carries a syntax error kind and the source position where it
// was raised. A SynErr with Kind == NotMySyntax is soft: the start set
// didn't match and the caller is free to try an alternative; every
// other non-Success kind is a hard error raised only after the parser
// committed (matched its start set and advanced at least once).
type SynErr struct {
	Kind   SynErrKind
	Line   uint64
	Column uint64
	Detail string
}

func (e *SynErr) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Column, e.Detail)
	}
	return fmt.Sprintf("%s at %d:%d", e.Kind, e.Line, e.Column)
}

// IsOK reports whether err represents the Success kind (including a
// nil *SynErr).
func IsOK(err *SynErr) bool { return err == nil || err.Kind == Success }

func notMySyntax(s *State, detail string) *SynErr {
	line, col := s.pos()
	return &SynErr{Kind: NotMySyntax, Line: line, Column: col, Detail: detail}
}

func hardErr(kind SynErrKind, s *State, detail string) *SynErr {
	line, col := s.pos()
	return &SynErr{Kind: kind, Line: line, Column: col, Detail: detail}
}
