package parser

import (
	"github.com/emberlang/ember/internal/ast"
	"github.com/emberlang/ember/internal/token"
)

// ParseSegment implements SegmentParser (spec §4.5.2). Start set:
// identifier, or a primitive-keyword Leaf (bool, char, int*, uint*,
// single, double, string, void).
func ParseSegment(s *State) (ast.Segment, *SynErr) {
	line, col := s.pos()

	if token.Primitives[s.Current.Type] {
		prim := s.Current.Type
		if err := s.NextToken(); err != nil {
			return nil, hardErr(Unrecoverable, s, err.Error())
		}
		return &ast.PrimitiveSegment{Prim: prim, Pos: ast.Pos{Line: line, Column: col}}, nil
	}

	if s.Current.Type != token.Identifier {
		return nil, notMySyntax(s, "expected identifier or primitive keyword")
	}
	name := s.Current.Lexeme
	if err := s.NextToken(); err != nil {
		return nil, hardErr(Unrecoverable, s, err.Error())
	}

	var inputs []ast.Type
	if s.Current.Type == token.OpLess {
		if err := s.NextToken(); err != nil {
			return nil, hardErr(Unrecoverable, s, err.Error())
		}
		inputs = []ast.Type{}
		for s.Current.Type != token.OpGreater {
			in, serr := ParseType(s)
			if serr != nil {
				return nil, promote(serr)
			}
			inputs = append(inputs, in)
			if s.Current.Type == token.DcComma {
				if err := s.NextToken(); err != nil {
					return nil, hardErr(Unrecoverable, s, err.Error())
				}
				continue
			}
			break
		}
		if s.Current.Type != token.OpGreater {
			return nil, hardErr(Failure, s, "expected '>' to close generic argument list")
		}
		if err := s.NextToken(); err != nil {
			return nil, hardErr(Unrecoverable, s, err.Error())
		}
	}

	return &ast.GenericSegment{Name: name, Inputs: inputs, Pos: ast.Pos{Line: line, Column: col}}, nil
}

// promote turns a NotMySyntax from a nested, already-committed parse
// into a hard Failure: once the generic-argument list (or any other
// "must succeed now" position) has been entered, an inner parser
// declining no longer gets to be soft.
func promote(err *SynErr) *SynErr {
	if err.Kind == NotMySyntax {
		return &SynErr{Kind: Failure, Line: err.Line, Column: err.Column, Detail: err.Detail}
	}
	return err
}
