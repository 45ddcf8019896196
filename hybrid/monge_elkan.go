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

	"github.com/poiesic/strsim/core"
	"github.com/poiesic/strsim/sequence"
)

// MongeElkan averages, over the tokens of the first sequence, the best
// similarity each achieves against any token of the second. It is not
// symmetric.
type MongeElkan struct {
	sim core.SimFunc
}

// NewMongeElkan creates the measure. It reads WithSimFunc (default Jaro-Winkler).
func NewMongeElkan(opts ...Option) (*MongeElkan, error) {
	c, err := newConfig(config{sim: sequence.JaroWinkler}, opts)
	if err != nil {
		return nil, err
	}
	return &MongeElkan{sim: c.sim}, nil
}

// Score returns the mean best-match similarity. Repeated tokens in a are
// counted each time. The range follows the inner similarity.
func (m *MongeElkan) Score(a, b []string) (float64, error) {
	if score, done, err := screen(a, b); done {
		return score, err
	}

	sum := 0.0
	for _, x := range a {
		best := math.Inf(-1)
		for _, y := range b {
			best = max(best, m.sim(x, y))
		}
		sum += best
	}
	return sum / float64(len(a)), nil
}
