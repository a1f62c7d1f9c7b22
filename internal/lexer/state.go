package lexer

import "github.com/emberlang/ember/internal/token"

// State is a mutable cursor over a source buffer. It owns the buffer
// and tracks the read position plus the origin of whatever token is
// currently being assembled. It is stateless of tokens-past: nothing
// about previously extracted tokens survives here.
//
// Invariants: Index <= len(Code); Column resets to 0 on '\n';
// LexemeStart <= Index.
type State struct {
	Code string

	Line   uint64
	Column uint64
	Index  int

	TokenLine   uint64
	TokenColumn uint64
	LexemeStart int
}

// NewState creates a State positioned at the start of code. code
// should already have been normalized (see Normalize) by the caller.
func NewState(code string) *State {
	return &State{Code: code, Line: 1, Column: 0}
}

// EndOfSource reports whether the cursor has consumed the whole buffer.
func (s *State) EndOfSource() bool {
	return s.Index >= len(s.Code)
}

// CurrChar returns the byte at Index, or 0 at/past end.
func (s *State) CurrChar() byte {
	if s.Index >= len(s.Code) {
		return 0
	}
	return s.Code[s.Index]
}

// NextChar returns the byte at Index+1, or 0 at/past end.
func (s *State) NextChar() byte {
	if s.Index+1 >= len(s.Code) {
		return 0
	}
	return s.Code[s.Index+1]
}

// PrevChar returns the byte at Index-1, or 0 before the start.
func (s *State) PrevChar() byte {
	if s.Index <= 0 {
		return 0
	}
	return s.Code[s.Index-1]
}

// PeekAt returns the byte n positions ahead of Index without advancing,
// or 0 if that position is at/past the end.
func (s *State) PeekAt(n int) byte {
	pos := s.Index + n
	if pos < 0 || pos >= len(s.Code) {
		return 0
	}
	return s.Code[pos]
}

// ReadChar returns the byte at Index and advances the cursor. On '\n'
// it increments Line and resets Column; otherwise it increments
// Column. At end of source it returns 0 without advancing.
func (s *State) ReadChar() byte {
	if s.EndOfSource() {
		return 0
	}
	ch := s.Code[s.Index]
	s.Index++
	if ch == '\n' {
		s.Line++
		s.Column = 0
	} else {
		s.Column++
	}
	return ch
}

// RemainingSource returns the unconsumed tail of the buffer.
func (s *State) RemainingSource() string {
	return s.Code[s.Index:]
}

// StartToken snapshots the current position as the origin of the next
// token to be extracted.
func (s *State) StartToken() {
	s.TokenLine = s.Line
	s.TokenColumn = s.Column
	s.LexemeStart = s.Index
}

// ExtractToken builds a Token spanning [LexemeStart, Index) tagged
// with kind, carrying the position captured by StartToken.
func (s *State) ExtractToken(kind token.Leaf) token.Token {
	return token.New(s.Code[s.LexemeStart:s.Index], kind, s.TokenLine, s.TokenColumn)
}
