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
	"github.com/chewxy/math32"

	"github.com/gorse-io/glm/common/floats"
)

// Logit evaluates the logistic response of a linear predictor. The
// coefficient slice is shared with the owning model, so updates to the
// coefficients are visible on the next call without rebuilding the objective.
// Index zero holds the bias, the remaining indices hold feature weights.
type Logit struct {
	Coefficients []float32
}

// Evaluate returns 1/(1+exp(-z)) where z is the bias plus the dot product of
// x and the feature weights.
func (l *Logit) Evaluate(x []float32) float32 {
	z := l.Coefficients[0] + floats.Dot(x, l.Coefficients[1:])
	return 1 / (1 + math32.Exp(-z))
}

// Derivative returns the slope of the logistic response at x, which is
// y*(1-y) for y = Evaluate(x).
func (l *Logit) Derivative(x []float32) float32 {
	y := l.Evaluate(x)
	return y * (1 - y)
}
