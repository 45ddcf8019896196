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

import (
	"fmt"

	"github.com/poiesic/strsim/core"
)

const (
	defaultGapCost         = 1.0
	defaultGapStart        = 1.0
	defaultGapContinuation = 0.5
)

// CostModel holds the gap penalties and the per-character similarity used
// by the alignment measures. Only the fields relevant to a measure are read.
type CostModel struct {
	GapCost         float64
	GapStart        float64
	GapContinuation float64
	Sim             core.SimFunc
}

func defaultCostModel() CostModel {
	return CostModel{
		GapCost:         defaultGapCost,
		GapStart:        defaultGapStart,
		GapContinuation: defaultGapContinuation,
		Sim:             core.IdentitySim,
	}
}

// Option configures a CostModel.
type Option func(*CostModel) error

// WithGapCost sets the linear gap penalty used by NeedlemanWunsch and SmithWaterman.
func WithGapCost(cost float64) Option {
	return func(c *CostModel) error {
		if err := core.ValidateNonNegative("gap cost", cost); err != nil {
			return err
		}
		c.GapCost = cost
		return nil
	}
}

// WithGapStart sets the penalty for opening a gap in an Affine alignment.
func WithGapStart(cost float64) Option {
	return func(c *CostModel) error {
		if err := core.ValidateNonNegative("gap start", cost); err != nil {
			return err
		}
		c.GapStart = cost
		return nil
	}
}

// WithGapContinuation sets the penalty for extending an open gap in an Affine alignment.
func WithGapContinuation(cost float64) Option {
	return func(c *CostModel) error {
		if err := core.ValidateNonNegative("gap continuation", cost); err != nil {
			return err
		}
		c.GapContinuation = cost
		return nil
	}
}

// WithSimFunc sets the character similarity. It is called with single-character strings.
func WithSimFunc(fn core.SimFunc) Option {
	return func(c *CostModel) error {
		if fn == nil {
			return fmt.Errorf("%w: %w", core.ErrInvalidValue, core.ErrNilSimFunc)
		}
		c.Sim = fn
		return nil
	}
}

func newCostModel(opts []Option) (CostModel, error) {
	c := defaultCostModel()
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return CostModel{}, err
		}
	}
	return c, nil
}
