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

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/poiesic/strsim/core"
)

// letterGroups are the Editex phonetic groups. A letter may belong to more than one.
var letterGroups = []string{
	"AEIOUY", "BP", "CKQ", "DT", "LR", "MN", "GJ", "FPV", "SXZ", "CSZ",
}

const groupedLetters = "AEIOUYBPCKQDTLRMNGJFVSXZ"

// Editex is an edit distance whose substitution, insertion and deletion
// costs depend on whether characters share a phonetic letter group.
type Editex struct {
	matchCost    float64
	groupCost    float64
	mismatchCost float64
	local        bool
}

// EditexOption configures an Editex measure.
type EditexOption func(*Editex) error

// WithMatchCost sets the cost of aligning identical characters. Default 0.
func WithMatchCost(cost float64) EditexOption {
	return func(e *Editex) error {
		if err := core.ValidateNonNegative("match cost", cost); err != nil {
			return err
		}
		e.matchCost = cost
		return nil
	}
}

// WithGroupCost sets the cost of aligning characters from the same letter group. Default 1.
func WithGroupCost(cost float64) EditexOption {
	return func(e *Editex) error {
		if err := core.ValidateNonNegative("group cost", cost); err != nil {
			return err
		}
		e.groupCost = cost
		return nil
	}
}

// WithMismatchCost sets the cost of aligning unrelated characters. Default 2.
func WithMismatchCost(cost float64) EditexOption {
	return func(e *Editex) error {
		if err := core.ValidateNonNegative("mismatch cost", cost); err != nil {
			return err
		}
		e.mismatchCost = cost
		return nil
	}
}

// WithLocal makes leading characters of the first string free to skip.
func WithLocal(local bool) EditexOption {
	return func(e *Editex) error {
		e.local = local
		return nil
	}
}

// NewEditex creates an Editex measure with match 0, group 1, mismatch 2, global mode.
func NewEditex(opts ...EditexOption) (*Editex, error) {
	e := &Editex{
		matchCost:    0,
		groupCost:    1,
		mismatchCost: 2,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Distance returns the raw Editex distance. Comparison is case-insensitive
// and ignores compatibility differences such as ligatures.
func (e *Editex) Distance(a, b string) float64 {
	return e.distance(normalizeEditex(a), normalizeEditex(b))
}

func (e *Editex) distance(ra, rb []rune) float64 {
	if len(ra) == 0 {
		return float64(len(rb)) * e.mismatchCost
	}
	if len(rb) == 0 {
		return float64(len(ra)) * e.mismatchCost
	}

	// Index 0 of each padded string is a space so position i compares
	// against its predecessor without a special case.
	pa := append([]rune{' '}, ra...)
	pb := append([]rune{' '}, rb...)
	rows, cols := len(pa), len(pb)
	d := newMatrix(rows, cols)

	if !e.local {
		for i := 1; i < rows; i++ {
			d.set(i, 0, d.at(i-1, 0)+e.deleteCost(pa[i-1], pa[i]))
		}
	}
	for j := 1; j < cols; j++ {
		d.set(0, j, d.at(0, j-1)+e.deleteCost(pb[j-1], pb[j]))
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			d.set(i, j, min(
				d.at(i-1, j)+e.deleteCost(pa[i-1], pa[i]),
				d.at(i, j-1)+e.deleteCost(pb[j-1], pb[j]),
				d.at(i-1, j-1)+e.replaceCost(pa[i], pb[j]),
			))
		}
	}
	return d.at(rows-1, cols-1)
}

// Score returns the normalised Editex similarity in [0, 1]. Lengths are
// measured after normalisation, so a decomposed accent counts as a rune.
// Two empty strings are identical and score 1.
func (e *Editex) Score(a, b string) float64 {
	ra, rb := normalizeEditex(a), normalizeEditex(b)
	la, lb := len(ra), len(rb)
	if la == 0 && lb == 0 {
		return 1
	}
	longest := max(float64(la)*e.mismatchCost, float64(lb)*e.mismatchCost)
	if longest == 0 {
		// zero mismatch cost makes every distance zero
		return 1
	}
	// match or group costs above the mismatch cost can exceed the bound
	return max(0, 1-e.distance(ra, rb)/longest)
}

func (e *Editex) replaceCost(a, b rune) float64 {
	if a == b {
		return e.matchCost
	}
	if strings.ContainsRune(groupedLetters, a) && strings.ContainsRune(groupedLetters, b) {
		for _, group := range letterGroups {
			if strings.ContainsRune(group, a) && strings.ContainsRune(group, b) {
				return e.groupCost
			}
		}
	}
	return e.mismatchCost
}

// deleteCost is the cost of removing cur when it follows prev. H and W are
// often silent, so dropping one costs no more than a group substitution.
func (e *Editex) deleteCost(prev, cur rune) float64 {
	if prev != cur && (prev == 'H' || prev == 'W') {
		return e.groupCost
	}
	return e.replaceCost(prev, cur)
}

func normalizeEditex(s string) []rune {
	s = norm.NFKD.String(strings.ToUpper(s))
	return []rune(strings.ReplaceAll(s, "ß", "SS"))
}
