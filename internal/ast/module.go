package ast

import (
	"fmt"
	"strings"
)

// Variable is a `var`/`const`/`static` header: `var NAME : TYPE ;`. No
// initializer expression is parsed — expression parsing is deferred
// (spec §9) — so this is a header-only stub.
type Variable struct {
	Name    string
	VarType Type
	Pos     Pos
}

func (v *Variable) Position() Pos { return v.Pos }
func (v *Variable) String() string {
	return fmt.Sprintf("var %s: %s;", v.Name, v.VarType.String())
}

// Enumeration is `NAME { V1, V2, ... }`: a bare list of variant
// identifiers with no associated data per variant (deferred).
type Enumeration struct {
	Name   string
	Values []string
	Pos    Pos
}

func (e *Enumeration) Position() Pos { return e.Pos }
func (e *Enumeration) String() string {
	return fmt.Sprintf("%s { %s }", e.Name, strings.Join(e.Values, ", "))
}

// StubMember is an opaque, unparsed member span recorded inside an
// Object or Extension body. Raw holds that one member's token lexemes,
// balanced-brace delimited and joined by single spaces; original
// spacing and comments are not kept.
type StubMember struct {
	Raw string
	Pos Pos
}

func (m *StubMember) Position() Pos  { return m.Pos }
func (m *StubMember) String() string { return m.Raw }

// Extension is `extend TARGET { ... }`. Member bodies are recorded as
// opaque StubMember spans rather than parsed declarations (spec §9:
// member grammars are deferred).
type Extension struct {
	Target  *PathExpr
	Members []*StubMember
	Pos     Pos
}

func (e *Extension) Position() Pos { return e.Pos }
func (e *Extension) String() string {
	return fmt.Sprintf("extend %s { %d member(s) }", e.Target.String(), len(e.Members))
}

// Object is `object NAME { ... }`, the same stub-member treatment as
// Extension.
type Object struct {
	Name    string
	Members []*StubMember
	Pos     Pos
}

func (o *Object) Position() Pos { return o.Pos }
func (o *Object) String() string {
	return fmt.Sprintf("object %s { %d member(s) }", o.Name, len(o.Members))
}

// Function is `def NAME SIGNATURE ;` or `def NAME SIGNATURE { ... }`.
// Signature is a function Type holding only `( inputs ) [: output]`
// (no path segments); a present body is skipped as a balanced-brace
// span and kept in Body as its token lexemes joined by single spaces,
// not parsed (spec §9 defers statement grammar). Body is empty when
// the declaration ended with ';' instead of a brace block.
type Function struct {
	Name      string
	Signature Type
	Body      string
	Pos       Pos
}

func (f *Function) Position() Pos { return f.Pos }
func (f *Function) String() string {
	if f.Body == "" {
		return fmt.Sprintf("def %s%s;", f.Name, f.Signature.String())
	}
	return fmt.Sprintf("def %s%s { ... }", f.Name, f.Signature.String())
}

// Module is `module SimplePath { ... }` or the bare `module SimplePath
// ;` form (spec §8 scenario 6); its six member sequences preserve
// source order within each sequence (spec §3).
type Module struct {
	Path         *SimplePath
	Aliases      []*Alias
	Enumerations []*Enumeration
	Extensions   []*Extension
	Functions    []*Function
	Objects      []*Object
	Variables    []*Variable
	Pos          Pos
}

func (m *Module) Position() Pos  { return m.Pos }
func (m *Module) String() string { return "module " + m.Path.String() + ";" }

// Document is the parse root: an ordered import prefix followed by
// zero or more modules (spec §3, §4.8).
type Document struct {
	Imports []*Import
	Modules []*Module
	Pos     Pos
}

func (d *Document) Position() Pos { return d.Pos }
func (d *Document) String() string {
	var b strings.Builder
	for _, imp := range d.Imports {
		b.WriteString(imp.String())
		b.WriteByte('\n')
	}
	for _, mod := range d.Modules {
		b.WriteString(mod.String())
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
