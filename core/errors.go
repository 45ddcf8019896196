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

package core

import "errors"

// Input errors. Every scoring operation validates before doing numeric work
// and reports failures wrapped around one of these.
var (
	// ErrInvalidType indicates an input is missing or has the wrong shape.
	ErrInvalidType = errors.New("invalid input type")

	// ErrNilInput indicates a token sequence or corpus was nil.
	ErrNilInput = errors.New("input cannot be nil")

	// ErrInvalidValue indicates an input of the right type failed a measure precondition.
	ErrInvalidValue = errors.New("invalid input value")

	// ErrLengthMismatch indicates two strings that must be the same length are not.
	ErrLengthMismatch = errors.New("inputs must have equal length")

	// ErrDomain indicates a composed similarity function produced a value
	// outside the range the composing measure can aggregate.
	ErrDomain = errors.New("similarity out of domain")

	// ErrSimilarityOutOfRange indicates a similarity score was not in [0, 1].
	ErrSimilarityOutOfRange = errors.New("similarity must be in [0, 1]")

	// ErrNilSimFunc indicates a measure was configured without a similarity function.
	ErrNilSimFunc = errors.New("similarity function cannot be nil")
)
