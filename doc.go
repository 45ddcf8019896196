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

// Package strsim is the entry point to a library of string and token
// sequence similarity measures.
//
// The measures themselves live in subpackages and can be used directly:
//
//   - alignment: Needleman-Wunsch, Smith-Waterman, affine gap, Editex
//   - sequence: Jaro, Jaro-Winkler, Levenshtein, Hamming
//   - tokenset: Jaccard, Dice, overlap, cosine, Tversky
//   - hybrid: TF-IDF, soft TF-IDF, generalized Jaccard, Monge-Elkan
//   - corpus: document frequency tables for the TF-IDF measures
//
// This package adds a catalogue that builds any of them by name from a
// MeasureConfig, a whitespace tokenizer for applying token measures to raw
// text, and a Store that persists corpus tables.
package strsim
