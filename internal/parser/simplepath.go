package parser

import (
	"github.com/emberlang/ember/internal/ast"
	"github.com/emberlang/ember/internal/token"
)

// ParseSimplePath implements SimplePathParser (spec §4.5.1).
// Start set: identifier. Grammar: IDENT ('.' IDENT)*.
func ParseSimplePath(s *State) (*ast.SimplePath, *SynErr) {
	if s.Current.Type != token.Identifier {
		return nil, notMySyntax(s, "expected identifier")
	}

	line, col := s.pos()
	segments := []string{s.Current.Lexeme}
	if err := s.NextToken(); err != nil {
		return nil, hardErr(Unrecoverable, s, err.Error())
	}

	for s.Current.Type == token.OpAccess {
		if err := s.NextToken(); err != nil {
			return nil, hardErr(Unrecoverable, s, err.Error())
		}
		if s.Current.Type != token.Identifier {
			return nil, hardErr(ExpectedIdentifier, s, "expected identifier after '.'")
		}
		segments = append(segments, s.Current.Lexeme)
		if err := s.NextToken(); err != nil {
			return nil, hardErr(Unrecoverable, s, err.Error())
		}
	}

	return &ast.SimplePath{Segments: segments, Pos: ast.Pos{Line: line, Column: col}}, nil
}
