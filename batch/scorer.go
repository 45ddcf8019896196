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

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Pair is one unit of work. Key is an optional caller label copied to the Result.
type Pair[T any] struct {
	Key string
	A   T
	B   T
}

// Result is the outcome of scoring one Pair.
type Result struct {
	Key   string
	Index int // position of the pair in the input
	Score float64
	Err   error
}

// ScoreFunc scores a single pair. hybrid and tokenset measures satisfy
// ScoreFunc[[]string]; Wrap adapts a core.SimFunc to ScoreFunc[string].
type ScoreFunc[T any] func(a, b T) (float64, error)

// Wrap adapts an infallible similarity function.
func Wrap(fn func(a, b string) float64) ScoreFunc[string] {
	return func(a, b string) (float64, error) {
		return fn(a, b), nil
	}
}

type config struct {
	poolSize       int
	logger         *slog.Logger
	progress       io.Writer
	reportInterval int
}

// Option configures a Scorer.
type Option func(*config) error

// WithPoolSize sets the number of workers.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(c *config) error {
		if size < 1 {
			size = 1
		}
		c.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithProgress reports progress to w every reportInterval pairs.
func WithProgress(w io.Writer, reportInterval int) Option {
	return func(c *config) error {
		if reportInterval < 1 {
			reportInterval = 1
		}
		c.progress = w
		c.reportInterval = reportInterval
		return nil
	}
}

// Scorer runs a ScoreFunc over batches of pairs.
type Scorer[T any] struct {
	score          ScoreFunc[T]
	pool           *ants.Pool
	logger         *slog.Logger
	progress       io.Writer
	reportInterval int
}

// NewScorer creates a Scorer. Call Release when done.
func NewScorer[T any](score ScoreFunc[T], opts ...Option) (*Scorer[T], error) {
	if score == nil {
		return nil, ErrScoreFuncRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	c := config{poolSize: poolSize, logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return nil, err
		}
	}

	pool, err := ants.NewPool(c.poolSize)
	if err != nil {
		return nil, err
	}

	return &Scorer[T]{
		score:          score,
		pool:           pool,
		logger:         c.logger,
		progress:       c.progress,
		reportInterval: c.reportInterval,
	}, nil
}

// ScoreAll scores every pair and returns results in input order.
// It returns early with the context error if ctx is cancelled; pairs
// already submitted finish first.
func (s *Scorer[T]) ScoreAll(ctx context.Context, pairs []Pair[T]) ([]Result, error) {
	results := make([]Result, len(pairs))

	var tracker *ProgressTracker
	if s.progress != nil {
		tracker = NewProgressTracker(s.progress, len(pairs), s.reportInterval)
		tracker.Start()
	}

	var wg sync.WaitGroup
	for i, pair := range pairs {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		err := s.pool.Submit(func() {
			defer wg.Done()
			results[i] = s.scoreOne(i, pair)
			if tracker != nil {
				tracker.Increment(1)
			}
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
		}
	}
	wg.Wait()

	if tracker != nil {
		tracker.Finish()
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		s.logger.Warn("some pairs failed to score", "failed", failed, "total", len(pairs))
	}
	s.logger.Debug("scored batch", "pairs", len(pairs), "failed", failed)
	return results, nil
}

func (s *Scorer[T]) scoreOne(index int, pair Pair[T]) (result Result) {
	result = Result{Key: pair.Key, Index: index}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("score function panicked", "index", index, "key", pair.Key, "panic", r)
			result.Err = fmt.Errorf("%w: %v", ErrScorePanicked, r)
		}
	}()
	result.Score, result.Err = s.score(pair.A, pair.B)
	return result
}

// Release releases the worker pool.
// The Scorer should not be used after calling Release.
func (s *Scorer[T]) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}
