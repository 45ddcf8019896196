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

// Package alignment implements dynamic-programming alignment scores over
// character sequences.
//
// Each measure is configured once at construction with a cost model and is
// then immutable. Score never mutates its inputs or its configuration, so a
// single instance may be shared across goroutines.
//
// # Measures
//
//   - NeedlemanWunsch: global alignment with a linear gap penalty
//   - SmithWaterman: best-scoring local alignment
//   - Affine: global alignment with separate gap-open and gap-extend penalties
//   - Editex: edit distance with phonetic letter-group costs
//
// Scores are not normalised. Costs are penalties: a gap cost of 1 subtracts
// 1 from the alignment score for every gap position.
//
// # Usage
//
//	nw, err := alignment.NewNeedlemanWunsch(alignment.WithGapCost(0.5))
//	if err != nil {
//	    return err
//	}
//	score := nw.Score("GCATGCUA", "GATTACA")
package alignment
