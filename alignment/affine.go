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

package alignment

// Affine computes a global alignment score where opening a gap costs
// GapStart and each further position in the same gap costs GapContinuation.
//
// Three tables are filled: M for alignments ending in a character pair,
// X for alignments ending in a gap in b, Y for alignments ending in a gap in a.
type Affine struct {
	costs CostModel
}

// NewAffine creates an affine-gap aligner.
// Defaults: gap start 1, gap continuation 0.5, identity similarity.
func NewAffine(opts ...Option) (*Affine, error) {
	costs, err := newCostModel(opts)
	if err != nil {
		return nil, err
	}
	return &Affine{costs: costs}, nil
}

// Score returns the affine-gap global alignment score. Either string empty scores 0.
func (a *Affine) Score(s1, s2 string) float64 {
	ca, cb := chars(s1), chars(s2)
	if len(ca) == 0 || len(cb) == 0 {
		return 0
	}

	open := -a.costs.GapStart
	cont := -a.costs.GapContinuation
	rows, cols := len(ca)+1, len(cb)+1
	m := newMatrix(rows, cols)
	x := newMatrix(rows, cols)
	y := newMatrix(rows, cols)

	for i := 1; i < rows; i++ {
		m.set(i, 0, negInf)
		x.set(i, 0, open+float64(i-1)*cont)
		y.set(i, 0, negInf)
	}
	for j := 1; j < cols; j++ {
		m.set(0, j, negInf)
		x.set(0, j, negInf)
		y.set(0, j, open+float64(j-1)*cont)
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			prev := max(m.at(i-1, j-1), x.at(i-1, j-1), y.at(i-1, j-1))
			m.set(i, j, extend(prev, a.costs.Sim(ca[i-1], cb[j-1])))
			x.set(i, j, max(extend(m.at(i-1, j), open), extend(x.at(i-1, j), cont)))
			y.set(i, j, max(extend(m.at(i, j-1), open), extend(y.at(i, j-1), cont)))
		}
	}

	n, k := len(ca), len(cb)
	return max(m.at(n, k), x.at(n, k), y.at(n, k))
}
