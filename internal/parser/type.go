package parser

import (
	"github.com/emberlang/ember/internal/ast"
	"github.com/emberlang/ember/internal/token"
)

// ParseType implements TypeParser (spec §4.5.4). Start set: same as
// PathExprParser. Parses a PathExpr, then branches on Current to
// build a Raw, Fn, Arr, or Ref variant over that path's segments.
func ParseType(s *State) (ast.Type, *SynErr) {
	line, col := s.pos()

	path, err := ParsePathExpr(s)
	if err != nil {
		return nil, err
	}
	segments := path.Segments

	switch s.Current.Type {
	case token.DcLparen:
		return parseFnType(s, segments, line, col)
	case token.DcLbracket:
		return parseArrType(s, segments, line, col)
	case token.OpMul, token.OpBitAnd, token.OpLogAnd:
		return parseRefType(s, segments, line, col), nil
	default:
		return &ast.RawType{Segments: segments, Pos: ast.Pos{Line: line, Column: col}}, nil
	}
}

// parseFnType consumes '(' comma-separated Type inputs ')' [':' Type].
func parseFnType(s *State, segments []ast.Segment, line, col uint64) (ast.Type, *SynErr) {
	if err := s.NextToken(); err != nil { // '('
		return nil, hardErr(Unrecoverable, s, err.Error())
	}

	var inputs []ast.Type
	for s.Current.Type != token.DcRparen {
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
	if s.Current.Type != token.DcRparen {
		return nil, hardErr(Failure, s, "expected ')' to close function type inputs")
	}
	if err := s.NextToken(); err != nil { // ')'
		return nil, hardErr(Unrecoverable, s, err.Error())
	}

	var output ast.Type
	if s.Current.Type == token.DcColon {
		if err := s.NextToken(); err != nil {
			return nil, hardErr(Unrecoverable, s, err.Error())
		}
		out, serr := ParseType(s)
		if serr != nil {
			return nil, promote(serr)
		}
		output = out
	}

	return &ast.FnType{Segments: segments, Inputs: inputs, Output: output, Pos: ast.Pos{Line: line, Column: col}}, nil
}

// parseArrType consumes '[' dimension-expressions ']'. Dimension
// expressions are stubbed (spec §9: expression parsing is deferred),
// so the bracketed span is kept unparsed, as its token lexemes joined
// by single spaces.
func parseArrType(s *State, segments []ast.Segment, line, col uint64) (ast.Type, *SynErr) {
	if err := s.NextToken(); err != nil { // '['
		return nil, hardErr(Unrecoverable, s, err.Error())
	}

	var raw []byte
	depth := 1
	for {
		if s.Current.Type == token.EOS {
			return nil, hardErr(Failure, s, "unterminated array dimension span")
		}
		if s.Current.Type == token.DcRbracket {
			depth--
			if depth == 0 {
				break
			}
		} else if s.Current.Type == token.DcLbracket {
			depth++
		}
		if len(raw) > 0 {
			raw = append(raw, ' ')
		}
		raw = append(raw, s.Current.Lexeme...)
		if err := s.NextToken(); err != nil {
			return nil, hardErr(Unrecoverable, s, err.Error())
		}
	}
	if err := s.NextToken(); err != nil { // ']'
		return nil, hardErr(Unrecoverable, s, err.Error())
	}

	return &ast.ArrType{Segments: segments, Dimensions: string(raw), Pos: ast.Pos{Line: line, Column: col}}, nil
}

// parseRefType repeatedly consumes '*'/'&', appending true/false to
// depth in left-to-right sigil order. The lexer reads "&&" as one
// OpLogAnd token; here it counts as two '&' references.
func parseRefType(s *State, segments []ast.Segment, line, col uint64) *ast.RefType {
	var depth []bool
	for s.Current.Type == token.OpMul || s.Current.Type == token.OpBitAnd || s.Current.Type == token.OpLogAnd {
		switch s.Current.Type {
		case token.OpMul:
			depth = append(depth, true)
		case token.OpBitAnd:
			depth = append(depth, false)
		case token.OpLogAnd:
			depth = append(depth, false, false)
		}
		if err := s.NextToken(); err != nil {
			break
		}
	}
	return &ast.RefType{Segments: segments, Depth: depth, Pos: ast.Pos{Line: line, Column: col}}
}
