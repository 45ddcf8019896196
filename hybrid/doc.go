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

// Package hybrid scores token sequences by combining token-level weights
// with a pluggable character-level similarity.
//
// # Measures
//
//   - TfIdf: cosine of TF-IDF vectors, exact token matches only
//   - SoftTfIdf: TF-IDF cosine where near-matching tokens also contribute
//   - GeneralizedJaccard: Jaccard over a one-to-one fuzzy token matching
//   - MongeElkan: mean best-match similarity, asymmetric
//
// All measures take []string inputs and return an error for nil inputs.
// An empty, non-nil slice is an empty document. Identical inputs score 1
// before any other rule applies, so two empty sequences score 1.
//
// Measures are immutable after construction. A corpus.Table passed with
// WithCorpus is only read, so measures sharing a table may run concurrently.
package hybrid
