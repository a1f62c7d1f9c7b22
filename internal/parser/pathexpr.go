package parser

import (
	"github.com/emberlang/ember/internal/ast"
	"github.com/emberlang/ember/internal/token"
)

// ParsePathExpr implements PathExprParser (spec §4.5.3). Start set:
// same as SegmentParser. Grammar: Segment ('.' Segment)*; each '.'
// must be followed by a parseable segment, otherwise a hard error.
func ParsePathExpr(s *State) (*ast.PathExpr, *SynErr) {
	line, col := s.pos()

	first, err := ParseSegment(s)
	if err != nil {
		return nil, err
	}
	segments := []ast.Segment{first}

	for s.Current.Type == token.OpAccess {
		if nerr := s.NextToken(); nerr != nil {
			return nil, hardErr(Unrecoverable, s, nerr.Error())
		}
		seg, serr := ParseSegment(s)
		if serr != nil {
			return nil, promote(serr)
		}
		segments = append(segments, seg)
	}

	return &ast.PathExpr{Segments: segments, Pos: ast.Pos{Line: line, Column: col}}, nil
}
