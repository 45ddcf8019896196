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

package hybrid

import (
	"math"

	"github.com/poiesic/strsim/corpus"
)

// TfIdf scores two token sequences by the cosine of their TF-IDF vectors.
type TfIdf struct {
	table  *corpus.Table
	dampen bool
}

// NewTfIdf creates a TF-IDF cosine measure. It reads WithCorpus and WithDampen.
func NewTfIdf(opts ...Option) (*TfIdf, error) {
	c, err := newConfig(config{}, opts)
	if err != nil {
		return nil, err
	}
	return &TfIdf{table: c.table, dampen: c.dampen}, nil
}

// Score returns the TF-IDF cosine similarity in [0, 1]. Tokens the corpus
// has never seen carry no weight.
func (t *TfIdf) Score(a, b []string) (float64, error) {
	if score, done, err := screen(a, b); done {
		return score, err
	}
	table, err := frequencies(t.table, a, b)
	if err != nil {
		return 0, err
	}

	tfA, tfB := countTerms(a), countTerms(b)
	var dot, normA, normB float64
	for _, tok := range union(tfA, tfB) {
		ratio, ok := table.InverseRatio(tok)
		if !ok {
			continue
		}
		va := t.weight(ratio, tfA.counts[tok])
		vb := t.weight(ratio, tfB.counts[tok])
		dot += va * vb
		normA += va * va
		normB += vb * vb
	}
	if dot == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

func (t *TfIdf) weight(ratio float64, tf int) float64 {
	if tf == 0 {
		return 0
	}
	if t.dampen {
		return math.Log(ratio) * math.Log(float64(tf)+1)
	}
	return ratio * float64(tf)
}
