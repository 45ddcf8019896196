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

package sequence

import "unicode/utf8"

// BagDistance treats each string as a multiset of runes and returns the size
// of the larger of the two multiset differences. It is a cheap lower bound on
// the Levenshtein distance.
func BagDistance(a, b string) int {
	bag := make(map[rune]int)
	for _, r := range a {
		bag[r]++
	}
	for _, r := range b {
		bag[r]--
	}
	onlyA, onlyB := 0, 0
	for _, n := range bag {
		if n > 0 {
			onlyA += n
		} else {
			onlyB -= n
		}
	}
	return max(onlyA, onlyB)
}

// Bag returns 1 - distance/max(len(a), len(b)). Two empty strings score 1.
func Bag(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(BagDistance(a, b))/float64(longest)
}
