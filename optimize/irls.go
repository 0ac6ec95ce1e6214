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

package optimize

import (
	"context"

	"github.com/chewxy/math32"
	"github.com/juju/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/gorse-io/glm/base/log"
	"github.com/gorse-io/glm/base/progress"
	"github.com/gorse-io/glm/common/parallel"
	"github.com/gorse-io/glm/common/util"
)

// IRLS implements iteratively reweighted least squares, a Newton-Raphson
// iteration on the augmented design matrix (a leading column of ones for the
// intercept). Each iteration sweeps the rows to collect errors and curvatures,
// accumulates the gradient and the Hessian in float64, solves the update with
// gonum and writes the new iterate into the coefficient slice in place.
// Iterations stop when the largest update falls below the tolerance, the
// iteration cap is reached, or the curvature matrix turns singular after the
// first step.
type IRLS struct{}

func NewIRLS() *IRLS {
	return &IRLS{}
}

func (irls *IRLS) Optimize(ctx context.Context, tolerance float32, maxIterations int, fn Objective,
	coefficients []float32, rows [][]float32, targets []float32, jobs int) ([]float32, error) {
	if len(rows) == 0 {
		return nil, errors.NotValidf("empty training set")
	}
	if len(rows) != len(targets) {
		return nil, errors.NotValidf("%d rows with %d targets", len(rows), len(targets))
	}
	if len(coefficients) == 0 {
		return nil, errors.NotValidf("empty coefficients")
	}
	numRows, dim := len(rows), len(coefficients)
	if jobs < 1 {
		jobs = 1
	}

	// Build the augmented design matrix once.
	x := mat.NewDense(numRows, dim, nil)
	for i, row := range rows {
		x.Set(i, 0, 1)
		for j, v := range row {
			x.Set(i, j+1, float64(v))
		}
	}

	errs := make([]float64, numRows)
	curvatures := make([]float64, numRows)
	pool := parallel.NewPool(jobs)
	_, span := progress.Start(ctx, "IRLS", maxIterations)
	for it := 0; it < maxIterations; it++ {
		if err := ctx.Err(); err != nil {
			span.Fail(err)
			return nil, errors.Trace(err)
		}
		// Sweep the rows. The objective reads the live coefficients, so the
		// sweep of one iteration must complete before the next update.
		for _, indices := range parallel.Split(util.RangeInt(numRows), jobs) {
			pool.Run(func() {
				for _, i := range indices {
					errs[i] = float64(fn.Evaluate(rows[i]) - targets[i])
					curvatures[i] = float64(fn.Derivative(rows[i]))
				}
			})
		}
		pool.Wait()

		// gradient = X^T e, hessian = X^T D X
		gradient := mat.NewVecDense(dim, nil)
		gradient.MulVec(x.T(), mat.NewVecDense(numRows, errs))
		var weighted, hessian mat.Dense
		weighted.Mul(mat.NewDiagDense(numRows, curvatures), x)
		hessian.Mul(x.T(), &weighted)
		var inverse mat.Dense
		if err := inverse.Inverse(&hessian); err != nil {
			if it == 0 {
				span.Fail(err)
				return nil, errors.Trace(err)
			}
			// Curvature collapses once the fit saturates, leaving a singular
			// system. Keep the current iterate.
			log.Logger().Debug("irls stopped on singular hessian",
				zap.Int("iteration", it), zap.Error(err))
			break
		}
		delta := mat.NewVecDense(dim, nil)
		delta.MulVec(&inverse, gradient)

		maxChange := float32(0)
		for j := 0; j < dim; j++ {
			step := float32(delta.AtVec(j))
			coefficients[j] -= step
			maxChange = math32.Max(maxChange, math32.Abs(step))
		}
		span.Add(1)
		log.Logger().Debug("irls iteration",
			zap.Int("iteration", it),
			zap.Float32("max_change", maxChange))
		if maxChange < tolerance {
			break
		}
	}
	span.End()
	return coefficients, nil
}
