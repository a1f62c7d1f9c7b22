// Package parser implements the recursive-descent syntax rules of the
// Ember front-end (component F/G): a parse State wrapping a lex State
// plus lookahead, the five syntax-rule parsers, and the
// Document/Module skeleton built on top of them.
package parser

import (
	"github.com/emberlang/ember/internal/lexer"
	"github.com/emberlang/ember/internal/token"
)

// State owns an inner lex State, a path string for diagnostics, and a
// current lookahead Token (spec §4.4). NextToken pulls the next token
// from the configured Lexer, stores it in Current, and returns the
// lexer's error (nil on success). A parser inspects Current.Type and
// consumes with NextToken.
type State struct {
	lex     *lexer.State
	lexer   *lexer.Lexer
	Path    string
	Current token.Token
}

// NewState normalizes src (BOM strip + NFC) and positions a fresh
// State at its first token. path is carried only for diagnostics.
func NewState(path string, src []byte) (*State, *lexer.Error) {
	normalized := lexer.Normalize(src)
	s := &State{
		lex:   lexer.NewState(string(normalized)),
		lexer: lexer.New(),
		Path:  path,
	}
	err := s.NextToken()
	return s, err
}

// NextToken advances Current to the next grammar-relevant token in
// the stream. None of the five syntax rules (§4.5) or the grammar
// engine's production symbols ever reference a comment terminal, so
// comment tokens — meaningful to the raw Lexer and to tooling like
// `emberfront lex` — are transparently skipped here rather than at the
// lexer boundary.
func (s *State) NextToken() *lexer.Error {
	for {
		tok, err := s.lexer.NextToken(s.lex)
		if err != nil {
			return err
		}
		if tok.Type == token.Comment {
			continue
		}
		s.Current = tok
		return nil
	}
}

// pos captures the diagnostic position of the current lookahead.
func (s *State) pos() (uint64, uint64) {
	return s.Current.Line, s.Current.Column
}
