package hybrid

import (
	"hash/fnv"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/strsim/alignment"
	"github.com/poiesic/strsim/core"
	"github.com/poiesic/strsim/corpus"
	"github.com/poiesic/strsim/sequence"
)

const tolerance = 1e-12

var (
	department = []string{"Comput.", "Sci.", "and", "Eng.", "Dept.,", "University", "of", "California,", "San", "Diego"}
	university = []string{"Department", "of", "Computer", "Science,", "Univ.", "Calif.,", "San", "Diego"}
)

func buildTable(t *testing.T, docs [][]string) *corpus.Table {
	t.Helper()
	table, err := corpus.Build(docs)
	require.NoError(t, err)
	return table
}

func TestTfIdf(t *testing.T) {
	four := buildTable(t, [][]string{{"a", "b", "a"}, {"a", "c"}, {"a"}, {"b"}})
	three := buildTable(t, [][]string{{"a", "b", "a"}, {"a", "c"}, {"a"}})
	unrelated := buildTable(t, [][]string{{"x", "y"}, {"w"}, {"q"}})

	tests := []struct {
		name string
		opts []Option
		a, b []string
		want float64
	}{
		{name: "dampened", opts: []Option{WithCorpus(four), WithDampen(true)}, a: []string{"a", "b", "a"}, b: []string{"a", "c"}, want: 0.11166746710505392},
		{name: "raw weights", opts: []Option{WithCorpus(three)}, a: []string{"a", "b", "a"}, b: []string{"a", "c"}, want: 0.17541160386140586},
		{name: "single token", opts: []Option{WithCorpus(three)}, a: []string{"a", "b", "a"}, b: []string{"a"}, want: 0.5547001962252291},
		{name: "pair as corpus", a: []string{"a", "b", "a"}, b: []string{"a"}, want: 0.7071067811865475},
		{name: "pair as corpus disjoint tail", a: []string{"a", "b", "a"}, b: []string{"a", "c"}, want: 0.31622776601683794},
		{name: "unseen tokens", opts: []Option{WithCorpus(unrelated)}, a: []string{"a", "b", "a"}, b: []string{"a"}, want: 0},
		{name: "identical", a: []string{"a", "b", "a"}, b: []string{"a", "b", "a"}, want: 1},
		{name: "both empty", a: []string{}, b: []string{}, want: 1},
		{name: "one empty", a: []string{}, b: []string{"a"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewTfIdf(tt.opts...)
			require.NoError(t, err)
			got, err := m.Score(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tolerance)
		})
	}
}

func TestSoftTfIdf(t *testing.T) {
	three := buildTable(t, [][]string{{"a", "b", "a"}, {"a", "c"}, {"a"}})
	unrelated := buildTable(t, [][]string{{"x", "y"}, {"w"}, {"q"}})
	partnerUnseen := buildTable(t, [][]string{{"abcd", "zzzz"}, {"zzzz"}})
	partnerSeen := buildTable(t, [][]string{{"abcd", "zzzz"}, {"zzzz"}, {"abce"}})
	affine, err := alignment.NewAffine()
	require.NoError(t, err)

	tests := []struct {
		name string
		opts []Option
		a, b []string
		want float64
	}{
		{name: "jaro high threshold", opts: []Option{WithCorpus(three), WithSimFunc(sequence.Jaro), WithThreshold(0.8)}, a: []string{"a", "b", "a"}, b: []string{"a", "c"}, want: 0.17541160386140586},
		{name: "default sim", opts: []Option{WithCorpus(three), WithThreshold(0.9)}, a: []string{"a", "b", "a"}, b: []string{"a"}, want: 0.5547001962252291},
		{name: "unseen tokens", opts: []Option{WithCorpus(unrelated)}, a: []string{"a", "b", "a"}, b: []string{"a"}, want: 0},
		{name: "unbounded inner sim", opts: []Option{WithSimFunc(affine.Score), WithThreshold(0.6)}, a: []string{"aa", "bb", "a"}, b: []string{"ab", "ba"}, want: 0.8164965809277259},
		{name: "near matches", a: []string{"niall", "smith"}, b: []string{"neal", "smyth"}, want: 0.8249999999999997},
		{name: "near matches below threshold", opts: []Option{WithThreshold(0.9)}, a: []string{"niall", "smith"}, b: []string{"neal", "smyth"}, want: 0},
		{name: "partner missing from corpus is clamped", opts: []Option{WithCorpus(partnerUnseen)}, a: []string{"abcd"}, b: []string{"abce", "zzzz"}, want: 1},
		{name: "partner in corpus", opts: []Option{WithCorpus(partnerSeen)}, a: []string{"abcd"}, b: []string{"abce", "zzzz"}, want: 0.7453559924999299},
		{name: "shared partner is clamped", a: []string{"niall", "nial"}, b: []string{"neall"}, want: 1},
		{name: "identical", a: []string{"a", "b", "a"}, b: []string{"a", "b", "a"}, want: 1},
		{name: "one empty", a: []string{}, b: []string{"a", "b", "a"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewSoftTfIdf(tt.opts...)
			require.NoError(t, err)
			got, err := m.Score(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestSoftTfIdf_Asymmetric(t *testing.T) {
	m, err := NewSoftTfIdf()
	require.NoError(t, err)

	forward, err := m.Score([]string{"niall", "nial"}, []string{"neall"})
	require.NoError(t, err)
	reverse, err := m.Score([]string{"neall"}, []string{"niall", "nial"})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, forward, 1e-9)
	assert.InDelta(t, 0.6128258770283411, reverse, 1e-9)
}

// distinctSim is symmetric and gives distinct pairs distinct scores in [0, 1),
// so greedy matching never depends on tie order.
func distinctSim(a, b string) float64 {
	if a == b {
		return 1
	}
	if a > b {
		a, b = b, a
	}
	h := fnv.New64a()
	h.Write([]byte(a))
	h.Write([]byte{0})
	h.Write([]byte(b))
	return float64(h.Sum64()>>11) / float64(1<<53)
}

func TestGeneralizedJaccard(t *testing.T) {
	jw, err := NewGeneralizedJaccard(WithSimFunc(sequence.JaroWinkler))
	require.NoError(t, err)
	def, err := NewGeneralizedJaccard()
	require.NoError(t, err)

	tests := []struct {
		name    string
		measure *GeneralizedJaccard
		a, b    []string
		want    float64
	}{
		{name: "empty tokens", measure: def, a: []string{""}, b: []string{""}, want: 1},
		{name: "empty vs letter", measure: def, a: []string{""}, b: []string{"a"}, want: 0},
		{name: "identical", measure: def, a: []string{"a"}, b: []string{"a"}, want: 1},
		{name: "one empty", measure: def, a: []string{}, b: []string{"Nigel"}, want: 0},
		{name: "single pair", measure: def, a: []string{"Niall"}, b: []string{"Neal"}, want: 0.7833333333333333},
		{name: "one to one", measure: def, a: []string{"Niall"}, b: []string{"Njall", "Neal"}, want: 0.43333333333333335},
		{name: "one to one reordered", measure: def, a: []string{"Niall"}, b: []string{"Neal", "Njall"}, want: 0.43333333333333335},
		{name: "affiliations", measure: def, a: department, b: university, want: 0.6800468975468975},
		{name: "affiliations jaro-winkler", measure: jw, a: department, b: university, want: 0.7220003607503608},
		{name: "duplicates ignored", measure: def, a: []string{"a", "a", "b"}, b: []string{"a", "b"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.measure.Score(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tolerance)
		})
	}
}

func TestGeneralizedJaccardRejectsUnboundedSim(t *testing.T) {
	nw, err := alignment.NewNeedlemanWunsch()
	require.NoError(t, err)
	m, err := NewGeneralizedJaccard(WithSimFunc(nw.Score))
	require.NoError(t, err)

	_, err = m.Score(department, university)
	assert.ErrorIs(t, err, core.ErrDomain)
	assert.ErrorIs(t, err, core.ErrSimilarityOutOfRange)
}

func TestMongeElkan(t *testing.T) {
	def, err := NewMongeElkan()
	require.NoError(t, err)
	nw, err := alignment.NewNeedlemanWunsch()
	require.NoError(t, err)
	withNW, err := NewMongeElkan(WithSimFunc(nw.Score))
	require.NoError(t, err)
	affine, err := alignment.NewAffine()
	require.NoError(t, err)
	withAffine, err := NewMongeElkan(WithSimFunc(affine.Score))
	require.NoError(t, err)

	tests := []struct {
		name    string
		measure *MongeElkan
		a, b    []string
		want    float64
	}{
		{name: "empty tokens", measure: def, a: []string{""}, b: []string{""}, want: 1},
		{name: "empty vs letter", measure: def, a: []string{""}, b: []string{"a"}, want: 0},
		{name: "identical", measure: def, a: []string{"a"}, b: []string{"a"}, want: 1},
		{name: "neal", measure: def, a: []string{"Niall"}, b: []string{"Neal"}, want: 0.8049999999999999},
		{name: "njall", measure: def, a: []string{"Niall"}, b: []string{"Njall"}, want: 0.88},
		{name: "niel", measure: def, a: []string{"Niall"}, b: []string{"Niel"}, want: 0.8266666666666667},
		{name: "nigel", measure: def, a: []string{"Niall"}, b: []string{"Nigel"}, want: 0.7866666666666667},
		{name: "affiliations", measure: def, a: department, b: university, want: 0.8364448051948052},
		{name: "affiliations needleman-wunsch", measure: withNW, a: department, b: university, want: 2.0},
		{name: "affiliations affine", measure: withAffine, a: department, b: university, want: 2.25},
		{name: "one empty", measure: def, a: []string{}, b: []string{"Nigel"}, want: 0},
		{name: "asymmetric forward", measure: def, a: []string{"a", "b"}, b: []string{"a"}, want: 0.5},
		{name: "asymmetric reverse", measure: def, a: []string{"a"}, b: []string{"a", "b"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.measure.Score(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tolerance)
		})
	}
}

func TestNilInputs(t *testing.T) {
	tfidf, err := NewTfIdf()
	require.NoError(t, err)
	soft, err := NewSoftTfIdf()
	require.NoError(t, err)
	gj, err := NewGeneralizedJaccard()
	require.NoError(t, err)
	me, err := NewMongeElkan()
	require.NoError(t, err)

	measures := map[string]func(a, b []string) (float64, error){
		"tfidf":               tfidf.Score,
		"soft tfidf":          soft.Score,
		"generalized jaccard": gj.Score,
		"monge-elkan":         me.Score,
	}
	for name, score := range measures {
		t.Run(name, func(t *testing.T) {
			_, err := score(nil, []string{"b"})
			assert.ErrorIs(t, err, core.ErrInvalidType)
			_, err = score([]string{"a"}, nil)
			assert.ErrorIs(t, err, core.ErrInvalidType)
			_, err = score(nil, nil)
			assert.ErrorIs(t, err, core.ErrNilInput)
		})
	}
}

func TestInvalidOptions(t *testing.T) {
	_, err := NewTfIdf(WithCorpus(nil))
	assert.ErrorIs(t, err, core.ErrNilInput)

	_, err = NewSoftTfIdf(WithThreshold(1.5))
	assert.ErrorIs(t, err, core.ErrInvalidValue)

	_, err = NewGeneralizedJaccard(WithThreshold(-0.1))
	assert.ErrorIs(t, err, core.ErrInvalidValue)

	_, err = NewMongeElkan(WithSimFunc(nil))
	assert.ErrorIs(t, err, core.ErrNilSimFunc)
}

func TestInputsAreNotMutated(t *testing.T) {
	a := []string{"b", "a", "b"}
	b := []string{"c", "a"}
	tfidf, err := NewTfIdf()
	require.NoError(t, err)
	gj, err := NewGeneralizedJaccard()
	require.NoError(t, err)

	_, err = tfidf.Score(a, b)
	require.NoError(t, err)
	_, err = gj.Score(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "b"}, a)
	assert.Equal(t, []string{"c", "a"}, b)
}

func TestHybridProperties(t *testing.T) {
	faker := gofakeit.New(2025)
	tfidf, err := NewTfIdf()
	require.NoError(t, err)
	dampened, err := NewTfIdf(WithDampen(true))
	require.NoError(t, err)
	gjLow, err := NewGeneralizedJaccard(WithThreshold(0.5))
	require.NoError(t, err)
	gjHigh, err := NewGeneralizedJaccard(WithThreshold(0.8))
	require.NoError(t, err)
	softLow, err := NewSoftTfIdf(WithThreshold(0.5))
	require.NoError(t, err)
	softHigh, err := NewSoftTfIdf(WithThreshold(0.8))
	require.NoError(t, err)
	gjDistinct, err := NewGeneralizedJaccard(WithSimFunc(distinctSim))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		a := strings.Fields(strings.ToLower(faker.Sentence(5)))
		b := strings.Fields(strings.ToLower(faker.Sentence(5)))

		for name, m := range map[string]func(a, b []string) (float64, error){"tfidf": tfidf.Score, "dampened": dampened.Score} {
			ab, err := m(a, b)
			require.NoError(t, err)
			ba, err := m(b, a)
			require.NoError(t, err)
			assert.InDelta(t, ab, ba, 1e-9, "%s not symmetric for %v %v", name, a, b)
			assert.GreaterOrEqual(t, ab, 0.0, name)
			assert.LessOrEqual(t, ab, 1.0+1e-9, name)
		}

		low, err := gjLow.Score(a, b)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, low, 0.0)
		assert.LessOrEqual(t, low, 1.0+1e-9)
		high, err := gjHigh.Score(a, b)
		require.NoError(t, err)
		assert.LessOrEqual(t, high, low+1e-12, "generalized jaccard threshold monotonicity")

		ab, err := gjDistinct.Score(a, b)
		require.NoError(t, err)
		ba, err := gjDistinct.Score(b, a)
		require.NoError(t, err)
		assert.InDelta(t, ab, ba, 1e-12, "generalized jaccard not symmetric for %v %v", a, b)
		assert.GreaterOrEqual(t, ab, 0.0)
		assert.LessOrEqual(t, ab, 1.0)

		low, err = softLow.Score(a, b)
		require.NoError(t, err)
		high, err = softHigh.Score(a, b)
		require.NoError(t, err)
		assert.LessOrEqual(t, high, low+1e-12, "soft tfidf threshold monotonicity")
		for _, v := range []float64{low, high} {
			assert.GreaterOrEqual(t, v, 0.0, "soft tfidf range")
			assert.LessOrEqual(t, v, 1.0, "soft tfidf range")
		}
		reverse, err := softLow.Score(b, a)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, reverse, 0.0, "soft tfidf range")
		assert.LessOrEqual(t, reverse, 1.0, "soft tfidf range")
	}
}
