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

// Package batch scores many input pairs concurrently on a bounded worker pool.
//
// Every measure in this module is a pure function, so parallelism belongs to
// the caller. A Scorer wraps any scoring function, fans pairs out to an
// ants worker pool and collects results in input order.
//
//	tfidf, _ := hybrid.NewTfIdf(hybrid.WithCorpus(table))
//	scorer, err := batch.NewScorer(tfidf.Score, batch.WithPoolSize(8))
//	if err != nil {
//	    return err
//	}
//	defer scorer.Release()
//	results, err := scorer.ScoreAll(ctx, pairs)
//
// A failure scoring one pair is recorded in its Result and does not stop
// the batch. Cancelling the context stops submission of further pairs.
package batch
