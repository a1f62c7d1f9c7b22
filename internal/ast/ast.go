// Package ast defines the tagged-variant syntax tree produced by
// internal/parser: SimplePath, Segment, PathExpr, and Type (component
// E), plus the Document/Module skeleton and its stubbed member nodes.
// Polymorphism is expressed as discriminated sums — a narrow interface
// plus marker methods — never a base struct with runtime downcasts.
package ast

import (
	"fmt"
	"strings"

	"github.com/emberlang/ember/internal/token"
)

// Pos is the source origin of a node, carried through from the token
// that began it.
type Pos struct {
	Line   uint64
	Column uint64
}

// Node is the base contract every AST value satisfies: a source
// position and a canonical, source-like rendering.
type Node interface {
	Position() Pos
	String() string
}

// SimplePath is an ordered, non-empty sequence of identifier
// segments (spec §3): no segment is ever empty, and it carries no
// access-operator tokens of its own.
type SimplePath struct {
	Segments []string
	Pos      Pos
}

func (p *SimplePath) Position() Pos { return p.Pos }
func (p *SimplePath) String() string {
	return strings.Join(p.Segments, ".")
}

// Segment is the tagged variant of a single PathExpr/Type component:
// either a bare primitive keyword or a generic name with optional
// type arguments.
type Segment interface {
	Node
	segmentNode()
}

// PrimitiveSegment is Segment::Primitive(p): a bare primitive-type
// keyword (bool, int32, string, ...).
type PrimitiveSegment struct {
	Prim token.Leaf
	Pos  Pos
}

func (s *PrimitiveSegment) Position() Pos  { return s.Pos }
func (s *PrimitiveSegment) String() string { return s.Prim.String() }
func (*PrimitiveSegment) segmentNode()     {}

// GenericSegment is Segment::Generic{name, inputs}: a named segment
// with zero or more angle-bracketed type arguments. Inputs is empty
// both when no "<...>" was present and when an empty "<>" was written
// (spec §3 invariant); it is nil in the first case and non-nil in the
// second, and String prints "<>" only for the second.
type GenericSegment struct {
	Name   string
	Inputs []Type
	Pos    Pos
}

func (s *GenericSegment) Position() Pos { return s.Pos }
func (s *GenericSegment) String() string {
	if s.Inputs == nil {
		return s.Name
	}
	parts := make([]string, len(s.Inputs))
	for i, t := range s.Inputs {
		parts[i] = t.String()
	}
	return s.Name + "<" + strings.Join(parts, ",") + ">"
}
func (*GenericSegment) segmentNode() {}

func segmentsString(segs []Segment) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// PathExpr is a non-empty, dotted sequence of Segment (spec §3),
// distinct from SimplePath in that each element may itself carry
// generic arguments.
type PathExpr struct {
	Segments []Segment
	Pos      Pos
}

func (p *PathExpr) Position() Pos  { return p.Pos }
func (p *PathExpr) String() string { return segmentsString(p.Segments) }

// Type is the tagged variant over Raw/Fn/Arr/Ref (spec §3). Every
// variant carries the dotted Segment path it was parsed from; Fn, Arr,
// and Ref each add variant-specific fields.
type Type interface {
	Node
	typeNode()
	pathSegments() []Segment
}

// RawType is Type::Raw: a bare dotted path with no trailing
// function/array/reference sigil.
type RawType struct {
	Segments []Segment
	Pos      Pos
}

func (t *RawType) Position() Pos          { return t.Pos }
func (t *RawType) String() string         { return segmentsString(t.Segments) }
func (*RawType) typeNode()                {}
func (t *RawType) pathSegments() []Segment { return t.Segments }

// FnType is Type::Fn: segments of the callee path plus a
// parenthesized, comma-separated input list and an optional output
// type (present iff the source wrote ": T").
type FnType struct {
	Segments []Segment
	Inputs   []Type
	Output   Type // nil if absent
	Pos      Pos
}

func (t *FnType) Position() Pos { return t.Pos }
func (t *FnType) String() string {
	parts := make([]string, len(t.Inputs))
	for i, in := range t.Inputs {
		parts[i] = in.String()
	}
	s := fmt.Sprintf("%s(%s)", segmentsString(t.Segments), strings.Join(parts, ","))
	if t.Output != nil {
		s += ":" + t.Output.String()
	}
	return s
}
func (*FnType) typeNode()                 {}
func (t *FnType) pathSegments() []Segment { return t.Segments }

// ArrType is Type::Arr: segments plus the bracketed dimension span.
// Dimension expressions are deferred (spec §9); Dimensions is kept
// unparsed: the lexemes of the tokens between '[' and ']', joined by
// single spaces.
type ArrType struct {
	Segments   []Segment
	Dimensions string
	Pos        Pos
}

func (t *ArrType) Position() Pos { return t.Pos }
func (t *ArrType) String() string {
	return fmt.Sprintf("%s[%s]", segmentsString(t.Segments), t.Dimensions)
}
func (*ArrType) typeNode()                 {}
func (t *ArrType) pathSegments() []Segment { return t.Segments }

// RefType is Type::Ref: segments plus the reference-sigil depth,
// non-empty iff at least one '*' or '&' was written; true marks a
// pointer ('*'), false marks a reference ('&').
type RefType struct {
	Segments []Segment
	Depth    []bool
	Pos      Pos
}

func (t *RefType) Position() Pos { return t.Pos }
func (t *RefType) String() string {
	var sigils strings.Builder
	for _, ptr := range t.Depth {
		if ptr {
			sigils.WriteByte('*')
		} else {
			sigils.WriteByte('&')
		}
	}
	return segmentsString(t.Segments) + sigils.String()
}
func (*RefType) typeNode()                 {}
func (t *RefType) pathSegments() []Segment { return t.Segments }

// Import is `using SimplePath ;` (spec §3).
type Import struct {
	Path *SimplePath
	Pos  Pos
}

func (i *Import) Position() Pos  { return i.Pos }
func (i *Import) String() string { return "using " + i.Path.String() + ";" }

// Alias is `alias NAME = TYPE ;` (spec §3).
type Alias struct {
	Name    string
	Aliased Type
	Pos     Pos
}

func (a *Alias) Position() Pos { return a.Pos }
func (a *Alias) String() string {
	return fmt.Sprintf("alias %s = %s;", a.Name, a.Aliased.String())
}
