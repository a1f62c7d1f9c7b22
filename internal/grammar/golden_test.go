package grammar

import (
	"sort"
	"testing"

	"github.com/emberlang/ember/testutil"
)

type firstFollowSnapshot struct {
	First  map[string][]string `json:"first"`
	Follow map[string][]string `json:"follow"`
}

func snapshotFirstFollow(e *Engine, heads []Symbol) firstFollowSnapshot {
	snap := firstFollowSnapshot{First: map[string][]string{}, Follow: map[string][]string{}}
	for _, h := range heads {
		first := toStrings(e.First(h))
		follow := toStrings(e.Follow(h))
		sort.Strings(first)
		sort.Strings(follow)
		snap.First[string(h)] = first
		snap.Follow[string(h)] = follow
	}
	return snap
}

func toStrings(syms []Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = string(s)
	}
	return out
}

// TestClassicalGrammarGolden pins the full FIRST/FOLLOW table for the
// textbook expression grammar (spec §8) against a committed fixture,
// complementing the per-symbol assertions in engine_test.go with a
// single artifact a reviewer can diff wholesale.
func TestClassicalGrammarGolden(t *testing.T) {
	e := classicalEngine()
	snap := snapshotFirstFollow(e, []Symbol{"E", "EP", "F", "T", "TP"})
	testutil.CompareWithGolden(t, "firstfollow", "classical", snap)
}
