package sequence

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/strsim/core"
)

const tolerance = 1e-12

func TestJaro(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"MARTHA", "MARHTA", 0.9444444444444445},
		{"DWAYNE", "DUANE", 0.8222222222222223},
		{"DIXON", "DICKSONX", 0.7666666666666666},
		{"Niall", "Neal", 0.7833333333333333},
		{"Niall", "Nigel", 0.7333333333333334},
		{"café", "cafe", 0.8333333333333334},
		{"ab", "ba", 0},
		{"", "a", 0},
		{"", "", 1},
		{"same", "same", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.want, Jaro(tt.a, tt.b), tolerance)
		})
	}
}

func TestJaroWinkler(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"MARTHA", "MARHTA", 0.9611111111111111},
		{"DWAYNE", "DUANE", 0.84},
		{"DIXON", "DICKSONX", 0.8133333333333332},
		{"Niall", "Neal", 0.805},
		{"Niall", "Njall", 0.88},
		{"Niall", "Niel", 0.8266666666666667},
		{"Niall", "Nigel", 0.7866666666666667},
		{"", "a", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.want, JaroWinkler(tt.a, tt.b), tolerance)
		})
	}
}

func TestNewJaroWinkler(t *testing.T) {
	jw, err := NewJaroWinkler(0.25)
	require.NoError(t, err)
	assert.InDelta(t, 0.9861111111111112, jw("MARTHA", "MARHTA"), tolerance)

	_, err = NewJaroWinkler(0.3)
	assert.ErrorIs(t, err, core.ErrInvalidValue)

	_, err = NewJaroWinkler(-0.1)
	assert.ErrorIs(t, err, core.ErrInvalidValue)
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 3, LevenshteinDistance("kitten", "sitting"))
	assert.Equal(t, 1, LevenshteinDistance("café", "cafe"))

	assert.InDelta(t, 1-3.0/7, Levenshtein("kitten", "sitting"), tolerance)
	assert.InDelta(t, 0.0, Levenshtein("", "abc"), tolerance)
	assert.InDelta(t, 1.0, Levenshtein("", ""), tolerance)
	assert.InDelta(t, 0.75, Levenshtein("café", "cafe"), tolerance)
}

func TestHamming(t *testing.T) {
	d, err := HammingDistance("karolin", "kathrin")
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	s, err := Hamming("karolin", "kathrin")
	require.NoError(t, err)
	assert.InDelta(t, 1-3.0/7, s, tolerance)

	s, err = Hamming("", "")
	require.NoError(t, err)
	assert.Equal(t, 1.0, s)

	s, err = Hamming("naïve", "naive")
	require.NoError(t, err)
	assert.InDelta(t, 0.8, s, tolerance)

	_, err = Hamming("abc", "ab")
	assert.ErrorIs(t, err, core.ErrLengthMismatch)
	assert.ErrorIs(t, err, core.ErrInvalidValue)
}

func TestCharacterMeasureProperties(t *testing.T) {
	faker := gofakeit.New(7)
	for i := 0; i < 100; i++ {
		a, b := faker.FirstName(), faker.LastName()
		for name, fn := range map[string]core.SimFunc{"jaro": Jaro, "jaro-winkler": JaroWinkler, "levenshtein": Levenshtein} {
			s := fn(a, b)
			assert.GreaterOrEqual(t, s, 0.0, "%s(%q, %q)", name, a, b)
			assert.LessOrEqual(t, s, 1.0, "%s(%q, %q)", name, a, b)
			assert.InDelta(t, s, fn(b, a), tolerance, "%s(%q, %q) not symmetric", name, a, b)
			assert.Equal(t, 1.0, fn(a, a))
		}
	}
}
