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

import "math"

var negInf = math.Inf(-1)

// matrix is a dense (rows x cols) score table, allocated per scoring call.
type matrix struct {
	cols  int
	cells []float64
}

func newMatrix(rows, cols int) *matrix {
	return &matrix{cols: cols, cells: make([]float64, rows*cols)}
}

func (m *matrix) at(i, j int) float64 {
	return m.cells[i*m.cols+j]
}

func (m *matrix) set(i, j int, v float64) {
	m.cells[i*m.cols+j] = v
}

// extend adds delta to a cell value, keeping unreachable cells unreachable.
func extend(v, delta float64) float64 {
	if math.IsInf(v, -1) {
		return negInf
	}
	return v + delta
}

// chars splits s into one string per rune so a SimFunc can score single characters.
func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
