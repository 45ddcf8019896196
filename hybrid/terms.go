package hybrid

import "github.com/poiesic/strsim/corpus"

// terms is a term-frequency vector that remembers first-occurrence order,
// which keeps floating-point summation deterministic.
type terms struct {
	order  []string
	counts map[string]int
}

func countTerms(tokens []string) terms {
	t := terms{counts: make(map[string]int, len(tokens))}
	for _, tok := range tokens {
		if t.counts[tok] == 0 {
			t.order = append(t.order, tok)
		}
		t.counts[tok]++
	}
	return t
}

// union lists the distinct tokens of a followed by those only in b.
func union(a, b terms) []string {
	out := make([]string, 0, len(a.order)+len(b.order))
	out = append(out, a.order...)
	for _, tok := range b.order {
		if _, ok := a.counts[tok]; !ok {
			out = append(out, tok)
		}
	}
	return out
}

// frequencies returns the configured table, or one built from the pair itself.
func frequencies(table *corpus.Table, a, b []string) (*corpus.Table, error) {
	if table != nil {
		return table, nil
	}
	return corpus.Build([][]string{a, b})
}
