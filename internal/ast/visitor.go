package ast

// Visitor is the uniform traversal contract of spec §4.7: one method
// per composite node kind, invoked with a read-only reference as
// Accept descends into owned children in declaration order. Visitor
// implementations never mutate the tree through this contract.
type Visitor interface {
	VisitDocument(*Document)
	VisitModule(*Module)
	VisitImport(*Import)
	VisitAlias(*Alias)
	VisitObject(*Object)
	VisitFunction(*Function)
	VisitExtension(*Extension)
	VisitEnumeration(*Enumeration)
	VisitVariable(*Variable)
	VisitSimplePath(*SimplePath)
	VisitType(Type)
	VisitSegment(Segment)
}

// Accept visits d, then its imports in order, then its modules in
// order (spec §4.7).
func (d *Document) Accept(v Visitor) {
	v.VisitDocument(d)
	for _, imp := range d.Imports {
		imp.Accept(v)
	}
	for _, mod := range d.Modules {
		mod.Accept(v)
	}
}

// Accept visits m, then its path, then its six member sequences in the fixed order
// aliases, enumerations, extensions, functions, objects, variables
// (spec §4.7), each in declaration order.
func (m *Module) Accept(v Visitor) {
	v.VisitModule(m)
	m.Path.Accept(v)
	for _, a := range m.Aliases {
		a.Accept(v)
	}
	for _, e := range m.Enumerations {
		e.Accept(v)
	}
	for _, e := range m.Extensions {
		e.Accept(v)
	}
	for _, f := range m.Functions {
		f.Accept(v)
	}
	for _, o := range m.Objects {
		o.Accept(v)
	}
	for _, vr := range m.Variables {
		vr.Accept(v)
	}
}

// Accept visits i, then its path.
func (i *Import) Accept(v Visitor) {
	v.VisitImport(i)
	i.Path.Accept(v)
}

// Accept visits a, then its aliased type.
func (a *Alias) Accept(v Visitor) {
	v.VisitAlias(a)
	acceptType(v, a.Aliased)
}

// Accept visits o; StubMember bodies are opaque and carry no
// sub-tree, so only the node itself is visited.
func (o *Object) Accept(v Visitor) {
	v.VisitObject(o)
}

// Accept visits f, then its signature type.
func (f *Function) Accept(v Visitor) {
	v.VisitFunction(f)
	acceptType(v, f.Signature)
}

// Accept visits e, then its target path.
func (e *Extension) Accept(v Visitor) {
	v.VisitExtension(e)
	e.Target.Accept(v)
}

// Accept visits e; enum values are bare identifiers with no
// sub-tree of their own.
func (e *Enumeration) Accept(v Visitor) {
	v.VisitEnumeration(e)
}

// Accept visits vr, then its declared type.
func (vr *Variable) Accept(v Visitor) {
	v.VisitVariable(vr)
	acceptType(v, vr.VarType)
}

// Accept visits p; SimplePath segments are plain strings with no
// sub-tree of their own.
func (p *SimplePath) Accept(v Visitor) {
	v.VisitSimplePath(p)
}

// Accept visits each of p's dotted segments in order. Visitor has no
// PathExpr method, so p itself is not visited.
func (p *PathExpr) Accept(v Visitor) {
	for _, s := range p.Segments {
		acceptSegment(v, s)
	}
}

// acceptType dispatches Type's variant-specific child traversal: Fn
// visits its inputs then its output (if present); Raw and Ref have no
// Type children beyond their path segments, which carry their own
// Segment traversal.
func acceptType(v Visitor, t Type) {
	v.VisitType(t)
	for _, s := range t.pathSegments() {
		acceptSegment(v, s)
	}
	if fn, ok := t.(*FnType); ok {
		for _, in := range fn.Inputs {
			acceptType(v, in)
		}
		if fn.Output != nil {
			acceptType(v, fn.Output)
		}
	}
}

// acceptSegment dispatches Segment's variant-specific child
// traversal: Generic visits its type-argument list; Primitive has no
// children.
func acceptSegment(v Visitor, s Segment) {
	v.VisitSegment(s)
	if g, ok := s.(*GenericSegment); ok {
		for _, in := range g.Inputs {
			acceptType(v, in)
		}
	}
}
