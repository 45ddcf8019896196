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

package hybrid

import (
	"fmt"

	"github.com/poiesic/strsim/core"
	"github.com/poiesic/strsim/corpus"
	"github.com/poiesic/strsim/sequence"
)

const defaultThreshold = 0.5

// config holds every setting a hybrid measure may read. Each measure reads
// only the fields it documents.
type config struct {
	table     *corpus.Table
	dampen    bool
	sim       core.SimFunc
	threshold float64
}

// Option configures a hybrid measure.
type Option func(*config) error

// WithCorpus supplies document frequencies. Without one, TfIdf and
// SoftTfIdf treat the two inputs as a two-document corpus.
func WithCorpus(table *corpus.Table) Option {
	return func(c *config) error {
		if table == nil {
			return fmt.Errorf("%w: %w: corpus table", core.ErrInvalidType, core.ErrNilInput)
		}
		c.table = table
		return nil
	}
}

// WithDampen switches TfIdf to log-scaled weights, ln(idf) * ln(tf + 1).
func WithDampen(dampen bool) Option {
	return func(c *config) error {
		c.dampen = dampen
		return nil
	}
}

// WithSimFunc sets the token similarity used by SoftTfIdf, GeneralizedJaccard and MongeElkan.
func WithSimFunc(fn core.SimFunc) Option {
	return func(c *config) error {
		if fn == nil {
			return fmt.Errorf("%w: %w", core.ErrInvalidValue, core.ErrNilSimFunc)
		}
		c.sim = fn
		return nil
	}
}

// WithThreshold sets the similarity a token pair must exceed to count as a
// match in SoftTfIdf and GeneralizedJaccard.
func WithThreshold(threshold float64) Option {
	return func(c *config) error {
		if err := core.ValidateUnitInterval("threshold", threshold); err != nil {
			return err
		}
		c.threshold = threshold
		return nil
	}
}

func newConfig(defaults config, opts []Option) (config, error) {
	c := defaults
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return config{}, err
		}
	}
	return c, nil
}

// fuzzyDefaults are shared by the measures that match tokens approximately.
func fuzzyDefaults() config {
	return config{sim: sequence.Jaro, threshold: defaultThreshold}
}

// screen applies the input rules common to every hybrid measure. When done
// is true the caller returns score and err unchanged.
func screen(a, b []string) (score float64, done bool, err error) {
	if err := core.ValidateTokens(a, b); err != nil {
		return 0, true, err
	}
	if core.TokensEqual(a, b) {
		return 1, true, nil
	}
	if len(a) == 0 || len(b) == 0 {
		return 0, true, nil
	}
	return 0, false, nil
}
