// Package lexer implements the rule-dispatched tokenizer of the Ember
// front-end: a mutable cursor (State), nine pluggable scanners
// (Rule), and the dispatcher (Lexer) that ties them together.
package lexer

import "github.com/emberlang/ember/internal/token"

// Lexer is the single-pass, restartable analyzer of §4.3. It owns no
// token history; NextToken is a pure function of the State it is
// handed.
type Lexer struct {
	rules []Rule
}

// New creates a Lexer with the default, spec-mandated rule order.
// Callers that need a custom or reduced rule set should use
// NewWithRules directly.
func New() *Lexer {
	return &Lexer{rules: DefaultRules()}
}

// NewWithRules creates a Lexer dispatching over an explicit rule list,
// in the order given.
func NewWithRules(rules []Rule) *Lexer {
	return &Lexer{rules: rules}
}

// isSpace reports whether ch is whitespace the dispatcher should skip
// between tokens. Source is byte-oriented (§6); only the ASCII
// whitespace set is recognized; bytes above 0x7F never match, since
// non-ASCII bytes are opaque code units outside of identifiers.
func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// skipWhitespace advances s past any run of whitespace.
func skipWhitespace(s *State) {
	for !s.EndOfSource() && isSpace(s.CurrChar()) {
		s.ReadChar()
	}
}

// NextToken implements the §4.3 contract: skip whitespace, probe rules
// in fixed order, return the first rule's result whose Litmus matched.
// If every rule declines and the source isn't exhausted, NotMyToken is
// reported; at end of source, an EOS token is returned.
func (l *Lexer) NextToken(s *State) (token.Token, *Error) {
	skipWhitespace(s)

	if s.EndOfSource() {
		s.StartToken()
		return s.ExtractToken(token.EOS), nil
	}

	remaining := s.RemainingSource()
	for _, r := range l.rules {
		if r.Litmus(remaining) {
			return r.Tokenize(s)
		}
	}

	s.StartToken()
	return token.Token{}, &Error{Kind: NotMyToken, Line: s.TokenLine, Column: s.TokenColumn,
		Detail: "no rule recognizes the remaining source"}
}

// Tokenize drains s into a slice of tokens, stopping at the first EOS
// or error. It is a convenience for callers (CLI, tests) that want the
// whole stream rather than pulling token-by-token.
func (l *Lexer) Tokenize(s *State) ([]token.Token, *Error) {
	var out []token.Token
	for {
		tok, err := l.NextToken(s)
		if err != nil {
			return out, err
		}
		out = append(out, tok)
		if tok.Type == token.EOS {
			return out, nil
		}
	}
}
