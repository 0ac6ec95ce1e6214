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

// Package optimize provides iterative solvers that fit model coefficients
// against a data set.
package optimize

import "context"

// Objective is a differentiable function of a feature vector. Implementations
// read the current coefficients through shared state, so the solver sees
// updated values without rebuilding the objective between iterations.
type Objective interface {
	// Evaluate returns the value of the function at x.
	Evaluate(x []float32) float32
	// Derivative returns the derivative of the function at x.
	Derivative(x []float32) float32
}

// Optimizer searches coefficients minimizing the error of fn against the
// targets. Implementations must never modify rows or targets, must return a
// slice of the same length as coefficients, and must stop after at most
// maxIterations iterations. Failing to converge within the iteration limit is
// not an error.
type Optimizer interface {
	Optimize(ctx context.Context, tolerance float32, maxIterations int, fn Objective,
		coefficients []float32, rows [][]float32, targets []float32, jobs int) ([]float32, error)
}
