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

// NeedlemanWunsch computes the optimal global alignment score with a linear gap penalty.
type NeedlemanWunsch struct {
	costs CostModel
}

// NewNeedlemanWunsch creates a global aligner. Defaults: gap cost 1, identity similarity.
func NewNeedlemanWunsch(opts ...Option) (*NeedlemanWunsch, error) {
	costs, err := newCostModel(opts)
	if err != nil {
		return nil, err
	}
	return &NeedlemanWunsch{costs: costs}, nil
}

// Score returns the global alignment score of a and b. The score is
// unbounded and may be negative. Either string empty scores 0.
func (n *NeedlemanWunsch) Score(a, b string) float64 {
	ca, cb := chars(a), chars(b)
	if len(ca) == 0 || len(cb) == 0 {
		return 0
	}

	gap := n.costs.GapCost
	d := newMatrix(len(ca)+1, len(cb)+1)
	for i := 1; i <= len(ca); i++ {
		d.set(i, 0, -float64(i)*gap)
	}
	for j := 1; j <= len(cb); j++ {
		d.set(0, j, -float64(j)*gap)
	}

	for i := 1; i <= len(ca); i++ {
		for j := 1; j <= len(cb); j++ {
			match := d.at(i-1, j-1) + n.costs.Sim(ca[i-1], cb[j-1])
			del := d.at(i-1, j) - gap
			ins := d.at(i, j-1) - gap
			d.set(i, j, max(match, del, ins))
		}
	}
	return d.at(len(ca), len(cb))
}
