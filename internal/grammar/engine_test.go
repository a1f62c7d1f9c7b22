package grammar

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// classicalEngine builds the textbook expression grammar from spec §8:
//
//	E  -> T EP
//	EP -> + T EP | ε
//	T  -> F TP
//	TP -> * F TP | ε
//	F  -> ( E ) | id
func classicalEngine() *Engine {
	rule := MapRule{
		"E":  {{"T", "EP"}},
		"EP": {{"+", "T", "EP"}, {Epsilon}},
		"T":  {{"F", "TP"}},
		"TP": {{"*", "F", "TP"}, {Epsilon}},
		"F":  {{"(", "E", ")"}, {"id"}},
	}
	return NewEngine("E", rule)
}

func sorted(syms []Symbol) []Symbol {
	out := append([]Symbol(nil), syms...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestClassicalGrammarFirstSets(t *testing.T) {
	e := classicalEngine()

	cases := map[Symbol][]Symbol{
		"E":  {"id", "("},
		"EP": {Epsilon, "+"},
		"T":  {"id", "("},
		"TP": {Epsilon, "*"},
		"F":  {"id", "("},
	}
	for sym, want := range cases {
		require.ElementsMatch(t, want, e.First(sym), "FIRST(%s)", sym)
	}
}

func TestClassicalGrammarFollowSets(t *testing.T) {
	e := classicalEngine()

	cases := map[Symbol][]Symbol{
		"E":  {EndOfInput, ")"},
		"EP": {EndOfInput, ")"},
		"T":  {EndOfInput, "+", ")"},
		"TP": {EndOfInput, "+", ")"},
		"F":  {EndOfInput, "+", "*", ")"},
	}
	for sym, want := range cases {
		require.ElementsMatch(t, want, e.Follow(sym), "FOLLOW(%s)", sym)
	}
}

func TestTerminalFirstIsItself(t *testing.T) {
	e := classicalEngine()
	require.Equal(t, []Symbol{"id"}, e.First("id"))
}

func TestLoadRuleFromYAML(t *testing.T) {
	src := []byte(`
productions:
  - head: E
    bodies:
      - [T, EP]
  - head: EP
    bodies:
      - ["+", T, EP]
      - ["ε"]
  - head: T
    bodies:
      - [F, TP]
  - head: TP
    bodies:
      - ["*", F, TP]
      - ["ε"]
  - head: F
    bodies:
      - ["(", E, ")"]
      - [id]
`)
	rule, err := LoadRule(src)
	require.NoError(t, err)

	e := NewEngine("E", rule)
	require.ElementsMatch(t, []Symbol{"id", "("}, e.First("E"))
	require.ElementsMatch(t, []Symbol{EndOfInput, ")"}, e.Follow("E"))
}

func TestLoadRuleRejectsMalformedYAML(t *testing.T) {
	_, err := LoadRule([]byte("productions: [this is not a mapping"))
	require.Error(t, err)
}

func TestMultipleRulesMerge(t *testing.T) {
	// Two Rule sources contributing to the same head are merged into
	// one prod_sets multi-map (spec §4.6).
	base := MapRule{"S": {{"a"}}}
	extra := MapRule{"S": {{"b"}}}
	e := NewEngine("S", base, extra)
	require.ElementsMatch(t, []Symbol{"a", "b"}, e.First("S"))
}
