// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package strsim

import (
	"fmt"
	"maps"
	"slices"

	"github.com/poiesic/strsim/alignment"
	"github.com/poiesic/strsim/core"
	"github.com/poiesic/strsim/corpus"
	"github.com/poiesic/strsim/hybrid"
	"github.com/poiesic/strsim/phonetic"
	"github.com/poiesic/strsim/sequence"
	"github.com/poiesic/strsim/simfunc"
	"github.com/poiesic/strsim/tokenset"
)

// Measure scores two raw strings. Token measures tokenize both inputs with Tokenize.
type Measure func(a, b string) (float64, error)

// MeasureConfig carries the parameters of every catalogued measure.
// Each measure reads only the fields that apply to it.
type MeasureConfig struct {
	GapCost         float64 // needleman-wunsch, smith-waterman
	GapStart        float64 // affine
	GapContinuation float64 // affine
	MatchCost       float64 // editex
	GroupCost       float64 // editex
	MismatchCost    float64 // editex
	Local           bool    // editex
	PrefixWeight    float64 // jaro-winkler
	Alpha           float64 // tversky
	Beta            float64 // tversky
	Threshold       float64 // soft-tfidf, generalized-jaccard
	Dampen          bool    // tfidf
	Corpus          *corpus.Table
	Inner           string // character measure used inside soft-tfidf, generalized-jaccard, monge-elkan
	CacheSize       int    // memoize the inner measure when positive
	StemLanguage    string // Snowball language applied after Tokenize; empty disables stemming
}

// DefaultMeasureConfig returns the default parameters of every measure.
// Inner is empty, which selects each hybrid measure's own default.
func DefaultMeasureConfig() MeasureConfig {
	return MeasureConfig{
		GapCost:         1,
		GapStart:        1,
		GapContinuation: 0.5,
		MatchCost:       0,
		GroupCost:       1,
		MismatchCost:    2,
		PrefixWeight:    sequence.DefaultPrefixWeight,
		Alpha:           0.5,
		Beta:            0.5,
		Threshold:       0.5,
	}
}

type factory func(cfg MeasureConfig) (Measure, error)

var catalogue = map[string]factory{
	"needleman-wunsch":    characterMeasure("needleman-wunsch"),
	"smith-waterman":      characterMeasure("smith-waterman"),
	"affine":              characterMeasure("affine"),
	"editex":              characterMeasure("editex"),
	"jaro":                characterMeasure("jaro"),
	"jaro-winkler":        characterMeasure("jaro-winkler"),
	"levenshtein":         characterMeasure("levenshtein"),
	"bag":                 characterMeasure("bag"),
	"exact":               characterMeasure("exact"),
	"hamming":             func(MeasureConfig) (Measure, error) { return sequence.Hamming, nil },
	"soundex":             func(MeasureConfig) (Measure, error) { return phonetic.Soundex, nil },
	"jaccard":             setMeasure(tokenset.Jaccard),
	"dice":                setMeasure(tokenset.Dice),
	"overlap":             setMeasure(tokenset.OverlapCoefficient),
	"cosine":              setMeasure(tokenset.Cosine),
	"tversky":             newTversky,
	"tfidf":               newTfIdf,
	"soft-tfidf":          newSoftTfIdf,
	"generalized-jaccard": newGeneralizedJaccard,
	"monge-elkan":         newMongeElkan,
}

// Measures returns the catalogued measure names in sorted order.
func Measures() []string {
	return slices.Sorted(maps.Keys(catalogue))
}

// NewMeasure builds the named measure from cfg.
func NewMeasure(name string, cfg MeasureConfig) (Measure, error) {
	build, ok := catalogue[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMeasure, name)
	}
	return build(cfg)
}

func characterMeasure(name string) factory {
	return func(cfg MeasureConfig) (Measure, error) {
		fn, err := charSim(name, cfg)
		if err != nil {
			return nil, err
		}
		return func(a, b string) (float64, error) { return fn(a, b), nil }, nil
	}
}

// charSim builds a character-level similarity function by name.
func charSim(name string, cfg MeasureConfig) (core.SimFunc, error) {
	switch name {
	case "needleman-wunsch":
		m, err := alignment.NewNeedlemanWunsch(alignment.WithGapCost(cfg.GapCost))
		if err != nil {
			return nil, err
		}
		return m.Score, nil
	case "smith-waterman":
		m, err := alignment.NewSmithWaterman(alignment.WithGapCost(cfg.GapCost))
		if err != nil {
			return nil, err
		}
		return m.Score, nil
	case "affine":
		m, err := alignment.NewAffine(
			alignment.WithGapStart(cfg.GapStart),
			alignment.WithGapContinuation(cfg.GapContinuation),
		)
		if err != nil {
			return nil, err
		}
		return m.Score, nil
	case "editex":
		m, err := alignment.NewEditex(
			alignment.WithMatchCost(cfg.MatchCost),
			alignment.WithGroupCost(cfg.GroupCost),
			alignment.WithMismatchCost(cfg.MismatchCost),
			alignment.WithLocal(cfg.Local),
		)
		if err != nil {
			return nil, err
		}
		return m.Score, nil
	case "jaro":
		return sequence.Jaro, nil
	case "jaro-winkler":
		return sequence.NewJaroWinkler(cfg.PrefixWeight)
	case "levenshtein":
		return sequence.Levenshtein, nil
	case "bag":
		return sequence.Bag, nil
	case "exact":
		return simfunc.Exact, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedInner, name)
}

// innerOptions translates cfg.Inner into hybrid options. An empty Inner
// keeps the measure's default.
func innerOptions(cfg MeasureConfig) ([]hybrid.Option, error) {
	if cfg.Inner == "" {
		return nil, nil
	}
	fn, err := charSim(cfg.Inner, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.CacheSize > 0 {
		if fn, err = simfunc.Memoize(fn, cfg.CacheSize); err != nil {
			return nil, err
		}
	}
	return []hybrid.Option{hybrid.WithSimFunc(fn)}, nil
}

func corpusOptions(cfg MeasureConfig) []hybrid.Option {
	if cfg.Corpus == nil {
		return nil
	}
	return []hybrid.Option{hybrid.WithCorpus(cfg.Corpus)}
}

// tokenMeasure lifts a token measure to raw strings, stemming when cfg asks for it.
func tokenMeasure(cfg MeasureConfig, score func(a, b []string) (float64, error)) (Measure, error) {
	if cfg.StemLanguage == "" {
		return func(a, b string) (float64, error) {
			return score(Tokenize(a), Tokenize(b))
		}, nil
	}
	stemmer, err := NewStemmer(cfg.StemLanguage)
	if err != nil {
		return nil, err
	}
	return func(a, b string) (float64, error) {
		return score(stemmer.Stem(Tokenize(a)), stemmer.Stem(Tokenize(b)))
	}, nil
}

func setMeasure(score func(a, b []string) (float64, error)) factory {
	return func(cfg MeasureConfig) (Measure, error) {
		return tokenMeasure(cfg, score)
	}
}

func newTversky(cfg MeasureConfig) (Measure, error) {
	m, err := tokenset.NewTversky(cfg.Alpha, cfg.Beta)
	if err != nil {
		return nil, err
	}
	return tokenMeasure(cfg, m.Score)
}

func newTfIdf(cfg MeasureConfig) (Measure, error) {
	opts := append(corpusOptions(cfg), hybrid.WithDampen(cfg.Dampen))
	m, err := hybrid.NewTfIdf(opts...)
	if err != nil {
		return nil, err
	}
	return tokenMeasure(cfg, m.Score)
}

func newSoftTfIdf(cfg MeasureConfig) (Measure, error) {
	inner, err := innerOptions(cfg)
	if err != nil {
		return nil, err
	}
	opts := append(corpusOptions(cfg), hybrid.WithThreshold(cfg.Threshold))
	m, err := hybrid.NewSoftTfIdf(append(opts, inner...)...)
	if err != nil {
		return nil, err
	}
	return tokenMeasure(cfg, m.Score)
}

func newGeneralizedJaccard(cfg MeasureConfig) (Measure, error) {
	inner, err := innerOptions(cfg)
	if err != nil {
		return nil, err
	}
	m, err := hybrid.NewGeneralizedJaccard(append(inner, hybrid.WithThreshold(cfg.Threshold))...)
	if err != nil {
		return nil, err
	}
	return tokenMeasure(cfg, m.Score)
}

func newMongeElkan(cfg MeasureConfig) (Measure, error) {
	inner, err := innerOptions(cfg)
	if err != nil {
		return nil, err
	}
	m, err := hybrid.NewMongeElkan(inner...)
	if err != nil {
		return nil, err
	}
	return tokenMeasure(cfg, m.Score)
}
