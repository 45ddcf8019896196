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

package batch

import "errors"

var (
	// ErrScoreFuncRequired indicates a Scorer was created without a scoring function.
	ErrScoreFuncRequired = errors.New("score function is required")

	// ErrSubmitFailed indicates the worker pool refused a task, usually after Release.
	ErrSubmitFailed = errors.New("failed to submit pair to worker pool")

	// ErrScorePanicked indicates the scoring function panicked for a pair.
	ErrScorePanicked = errors.New("score function panicked")
)
