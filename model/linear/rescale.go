// Copyright 2025 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package linear

import (
	"github.com/juju/errors"
	"github.com/samber/lo"

	"github.com/gorse-io/glm/common/floats"
)

// TargetScaler maps targets into the unit interval by an affine transform and
// maps predictions back. The logistic response lives in (0,1), so training
// targets must be rescaled before optimization.
type TargetScaler struct {
	Shift float32
	Scale float32
}

// Fit derives the transform from the range of targets. Targets with an empty
// range cannot be rescaled and return ErrConstantTarget.
func (s *TargetScaler) Fit(targets []float32) error {
	if len(targets) == 0 {
		return errors.NotValidf("empty targets")
	}
	min, max := lo.Min(targets), lo.Max(targets)
	if min == max {
		return errors.Trace(ErrConstantTarget)
	}
	s.Shift = min
	s.Scale = max - min
	return nil
}

// Normalize rescales targets in place into the unit interval. The caller must
// own the slice.
func (s *TargetScaler) Normalize(targets []float32) {
	floats.AddConst(targets, -s.Shift)
	floats.MulConst(targets, 1/s.Scale)
}

// Denormalize maps a prediction from the unit interval back to the original
// target range.
func (s *TargetScaler) Denormalize(y float32) float32 {
	return y*s.Scale + s.Shift
}

// Identity reports whether the transform leaves targets unchanged. Training
// on class labels 0 and 1 fits the identity transform, so this distinguishes
// classification fits from regression fits.
func (s *TargetScaler) Identity() bool {
	return s.Shift == 0 && s.Scale == 1
}
