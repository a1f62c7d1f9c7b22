package parser

import (
	"github.com/emberlang/ember/internal/ast"
	"github.com/emberlang/ember/internal/token"
)

// ParseImport implements ImportParser (spec §4.5.5). Start set:
// using. Grammar: using SimplePath ;. On success Current points past
// ';'.
func ParseImport(s *State) (*ast.Import, *SynErr) {
	if s.Current.Type != token.KwUsing {
		return nil, notMySyntax(s, "expected 'using'")
	}
	line, col := s.pos()
	if err := s.NextToken(); err != nil {
		return nil, hardErr(Unrecoverable, s, err.Error())
	}

	path, perr := ParseSimplePath(s)
	if perr != nil {
		return nil, promote(perr)
	}

	if s.Current.Type != token.DcTerminator {
		return nil, hardErr(ExpectedTerminator, s, "expected ';' after import path")
	}
	if err := s.NextToken(); err != nil {
		return nil, hardErr(Unrecoverable, s, err.Error())
	}

	return &ast.Import{Path: path, Pos: ast.Pos{Line: line, Column: col}}, nil
}
