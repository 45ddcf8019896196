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

// SmithWaterman computes the best local alignment score between any substrings.
type SmithWaterman struct {
	costs CostModel
}

// NewSmithWaterman creates a local aligner. Defaults: gap cost 1, identity similarity.
func NewSmithWaterman(opts ...Option) (*SmithWaterman, error) {
	costs, err := newCostModel(opts)
	if err != nil {
		return nil, err
	}
	return &SmithWaterman{costs: costs}, nil
}

// Score returns the maximum local alignment score, which is never negative.
func (s *SmithWaterman) Score(a, b string) float64 {
	ca, cb := chars(a), chars(b)
	if len(ca) == 0 || len(cb) == 0 {
		return 0
	}

	gap := s.costs.GapCost
	d := newMatrix(len(ca)+1, len(cb)+1)
	best := 0.0
	for i := 1; i <= len(ca); i++ {
		for j := 1; j <= len(cb); j++ {
			match := d.at(i-1, j-1) + s.costs.Sim(ca[i-1], cb[j-1])
			del := d.at(i-1, j) - gap
			ins := d.at(i, j-1) - gap
			v := max(0, match, del, ins)
			d.set(i, j, v)
			best = max(best, v)
		}
	}
	return best
}
