package grammar

// symbolSet is a small string-keyed set, used for both FIRST and
// FOLLOW accumulation.
type symbolSet map[Symbol]bool

func (s symbolSet) add(sym Symbol) bool {
	if s[sym] {
		return false
	}
	s[sym] = true
	return true
}

func (s symbolSet) addAll(other symbolSet) bool {
	changed := false
	for sym := range other {
		if s.add(sym) {
			changed = true
		}
	}
	return changed
}

// Engine is the merged production set plus its memoized FIRST/FOLLOW
// tables (spec §4.6). Both tables are pure functions of the
// production set and are computed once, at construction.
type Engine struct {
	start     Symbol
	prodSets  map[Symbol][]Production
	terminals symbolSet
	first     map[Symbol]symbolSet
	follow    map[Symbol]symbolSet
}

// NewEngine merges the productions of every rule into one prod_sets
// multi-map keyed by head, then computes FIRST and FOLLOW to a
// fix-point. start is the grammar's start symbol, seeding
// FOLLOW(start) = {$}.
func NewEngine(start Symbol, rules ...Rule) *Engine {
	e := &Engine{
		start:    start,
		prodSets: map[Symbol][]Production{},
		first:    map[Symbol]symbolSet{},
		follow:   map[Symbol]symbolSet{},
	}
	for _, r := range rules {
		for head, bodies := range r.Productions() {
			e.prodSets[head] = append(e.prodSets[head], bodies...)
		}
	}
	e.terminals = e.deriveTerminals()
	e.computeFirst()
	e.computeFollow()
	return e
}

// deriveTerminals classifies every symbol referenced anywhere in a
// production body but never itself a head, as a terminal.
func (e *Engine) deriveTerminals() symbolSet {
	terms := symbolSet{}
	for _, bodies := range e.prodSets {
		for _, body := range bodies {
			for _, sym := range body {
				if sym == Epsilon {
					continue
				}
				if _, isHead := e.prodSets[sym]; !isHead {
					terms[sym] = true
				}
			}
		}
	}
	return terms
}

func (e *Engine) isTerminal(sym Symbol) bool { return e.terminals[sym] }

// heads returns every production head, in a fixed but arbitrary
// order; computeFirst iterates it in reverse per production (spec
// §4.6: "an empirical aid for faster convergence").
func (e *Engine) heads() []Symbol {
	heads := make([]Symbol, 0, len(e.prodSets))
	for h := range e.prodSets {
		heads = append(heads, h)
	}
	return heads
}

func (e *Engine) firstOf(sym Symbol) symbolSet {
	if set, ok := e.first[sym]; ok {
		return set
	}
	return symbolSet{sym: true} // terminal: FIRST(terminal) = {terminal}
}

// firstOfSequence computes FIRST(β) for a production body: walk
// left to right, accumulating FIRST of each symbol (minus ε) until a
// symbol without ε in its FIRST set is hit; if every symbol derives ε,
// ε itself is included.
func (e *Engine) firstOfSequence(body Production) symbolSet {
	out := symbolSet{}
	if isEpsilonBody(body) {
		out.add(Epsilon)
		return out
	}
	for _, sym := range body {
		symFirst := e.firstOf(sym)
		hasEpsilon := symFirst[Epsilon]
		for s := range symFirst {
			if s != Epsilon {
				out.add(s)
			}
		}
		if !hasEpsilon {
			return out
		}
	}
	out.add(Epsilon)
	return out
}

func (e *Engine) computeFirst() {
	for h := range e.prodSets {
		e.first[h] = symbolSet{}
	}
	heads := e.heads()
	for changed := true; changed; {
		changed = false
		for i := len(heads) - 1; i >= 0; i-- {
			h := heads[i]
			for _, body := range e.prodSets[h] {
				if e.first[h].addAll(e.firstOfSequence(body)) {
					changed = true
				}
			}
		}
	}
}

func (e *Engine) computeFollow() {
	for h := range e.prodSets {
		e.follow[h] = symbolSet{}
	}
	e.follow[e.start] = symbolSet{EndOfInput: true}

	for changed := true; changed; {
		changed = false
		for h, bodies := range e.prodSets {
			for _, body := range bodies {
				if isEpsilonBody(body) {
					continue
				}
				for i, sym := range body {
					if e.isTerminal(sym) {
						continue
					}
					rest := body[i+1:]
					restFirst := e.firstOfSequence(rest)
					for s := range restFirst {
						if s != Epsilon {
							if e.follow[sym].add(s) {
								changed = true
							}
						}
					}
					if restFirst[Epsilon] {
						if e.follow[sym].addAll(e.follow[h]) {
							changed = true
						}
					}
				}
			}
		}
	}
}

// First returns FIRST(sym) as a sorted-free slice; sym may be a
// terminal (FIRST(terminal) = {terminal}) or a non-terminal head.
func (e *Engine) First(sym Symbol) []Symbol { return setSlice(e.firstOf(sym)) }

// Follow returns FOLLOW(head); head must be a non-terminal (a
// production head). Terminals have no FOLLOW set.
func (e *Engine) Follow(head Symbol) []Symbol { return setSlice(e.follow[head]) }

func setSlice(s symbolSet) []Symbol {
	out := make([]Symbol, 0, len(s))
	for sym := range s {
		out = append(out, sym)
	}
	return out
}
