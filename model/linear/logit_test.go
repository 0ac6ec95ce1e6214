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
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestLogit_Evaluate(t *testing.T) {
	logit := Logit{Coefficients: []float32{0, 1, -2}}
	// z = 0 at the origin
	assert.InDelta(t, 0.5, logit.Evaluate([]float32{0, 0}), 1e-6)
	// z = 1*1 - 2*0 = 1
	assert.InDelta(t, 1/(1+math32.Exp(-1)), logit.Evaluate([]float32{1, 0}), 1e-6)
	// responses at opposite predictors sum to one
	assert.InDelta(t, 1, logit.Evaluate([]float32{10, 0})+logit.Evaluate([]float32{-10, 0}), 1e-6)
	// bounded on both sides
	assert.Greater(t, logit.Evaluate([]float32{10, 0}), float32(0.99))
	assert.Less(t, logit.Evaluate([]float32{10, 0}), float32(1))
	assert.Less(t, logit.Evaluate([]float32{-10, 0}), float32(0.01))
	assert.Greater(t, logit.Evaluate([]float32{-10, 0}), float32(0))
}

func TestLogit_Derivative(t *testing.T) {
	logit := Logit{Coefficients: []float32{0, 1, -2}}
	// the slope peaks at the midpoint
	assert.InDelta(t, 0.25, logit.Derivative([]float32{0, 0}), 1e-6)
	y := logit.Evaluate([]float32{1, 1})
	assert.InDelta(t, y*(1-y), logit.Derivative([]float32{1, 1}), 1e-6)
	assert.Less(t, logit.Derivative([]float32{10, 0}), logit.Derivative([]float32{0, 0}))
}

func TestLogit_SharedCoefficients(t *testing.T) {
	coefficients := []float32{0, 1}
	logit := Logit{Coefficients: coefficients}
	before := logit.Evaluate([]float32{1})
	// updates to the shared slice are visible without rebuilding
	coefficients[0] = 2
	after := logit.Evaluate([]float32{1})
	assert.NotEqual(t, before, after)
	assert.InDelta(t, 1/(1+math32.Exp(-3)), after, 1e-6)
}
