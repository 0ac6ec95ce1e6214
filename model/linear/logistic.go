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
	"context"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/c-bata/goptuna"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/gorse-io/glm/base/log"
	"github.com/gorse-io/glm/common/encoding"
	"github.com/gorse-io/glm/common/parallel"
	"github.com/gorse-io/glm/dataset"
	"github.com/gorse-io/glm/model"
	"github.com/gorse-io/glm/optimize"
)

// LogisticRegression fits a logistic response over a single weight vector by
// iteratively reweighted least squares. Targets are rescaled into the unit
// interval before optimization, so arbitrary numerical targets can be fitted.
// Training on class labels 0 and 1 keeps the rescaling at identity, which
// enables Classify.
//
// The hyperparameters are:
//
//	Eps           - tolerance on the largest coefficient update. Default is 1e-5.
//	MaxIterations - iteration cap for the solver. Default is 100.
type LogisticRegression struct {
	model.BaseModel
	Coefficients []float32
	Target       TargetScaler
	// Hyperparameters
	eps           float32
	maxIterations int
}

// NewLogisticRegression creates an untrained logistic regression model.
func NewLogisticRegression(params model.Params) *LogisticRegression {
	lr := new(LogisticRegression)
	lr.SetParams(params)
	return lr
}

func (lr *LogisticRegression) SetParams(params model.Params) {
	lr.BaseModel.SetParams(params)
	lr.eps = params.GetFloat32(model.Eps, 1e-5)
	lr.maxIterations = params.GetInt(model.MaxIterations, 100)
}

func (lr *LogisticRegression) GetParamsGrid() model.ParamsGrid {
	return model.ParamsGrid{
		model.Eps:           {1e-6, 1e-5, 1e-4, 1e-3},
		model.MaxIterations: {50, 100, 200},
	}
}

func (lr *LogisticRegression) SuggestParams(trial goptuna.Trial) model.Params {
	return model.Params{
		model.Eps:           lo.Must(trial.SuggestLogFloat(string(model.Eps), 1e-6, 1e-3)),
		model.MaxIterations: int(lo.Must(trial.SuggestDiscreteFloat(string(model.MaxIterations), 10, 200, 10))),
	}
}

// Clear resets the model to the untrained state.
func (lr *LogisticRegression) Clear() {
	lr.Coefficients = nil
	lr.Target = TargetScaler{}
}

// Invalid reports whether the model is untrained.
func (lr *LogisticRegression) Invalid() bool {
	return lr == nil || len(lr.Coefficients) == 0
}

// Fit trains the model on a regression data set. Previous coefficients are
// discarded. If testSet is not nil, the returned score holds the regression
// metrics on it.
func (lr *LogisticRegression) Fit(ctx context.Context, trainSet, testSet *dataset.Regression, config *FitConfig) (Score, error) {
	config = config.LoadDefaultIfNil()
	testSize := 0
	if testSet != nil {
		testSize = testSet.Count()
	}
	log.Logger().Info("fit logistic regression",
		zap.Int("train_set_size", trainSet.Count()),
		zap.Int("test_set_size", testSize),
		zap.Any("params", lr.GetParams()),
		zap.Any("config", config))
	if trainSet.Count() == 0 {
		return Score{}, errors.NotValidf("empty train set")
	}
	lr.Clear()
	targets := trainSet.CopyTargets()
	if err := lr.Target.Fit(targets); err != nil {
		return Score{}, errors.Trace(err)
	}
	lr.Target.Normalize(targets)
	lr.Coefficients = make([]float32, trainSet.NumFeatures()+1)
	coefficients, err := optimize.NewIRLS().Optimize(ctx, lr.eps, lr.maxIterations,
		&Logit{Coefficients: lr.Coefficients}, lr.Coefficients, trainSet.Rows(), targets, config.Jobs)
	if err != nil {
		lr.Clear()
		return Score{}, errors.Trace(err)
	}
	lr.Coefficients = coefficients
	score := Score{}
	if testSet != nil && testSet.Count() > 0 {
		score = EvaluateRegression(lr, testSet)
		log.Logger().Info("fit logistic regression complete", score.ZapFields()...)
	}
	return score, nil
}

// FitClassification trains the model on class labels. The data set must
// declare exactly two classes. If testSet is not nil, the returned score holds
// the classification metrics on it.
func (lr *LogisticRegression) FitClassification(ctx context.Context, trainSet, testSet *dataset.Classification, config *FitConfig) (Score, error) {
	if trainSet.NumClasses() != 2 {
		return Score{}, errors.Trace(fmt.Errorf("%w: got %d classes", ErrBinaryOnly, trainSet.NumClasses()))
	}
	if _, err := lr.Fit(ctx, toRegression(trainSet), nil, config); err != nil {
		return Score{}, errors.Trace(err)
	}
	score := Score{}
	if testSet != nil && testSet.Count() > 0 {
		score = EvaluateClassification(lr, testSet)
		log.Logger().Info("fit logistic regression complete", score.ZapFields()...)
	}
	return score, nil
}

// toRegression views class labels as numerical targets.
func toRegression(c *dataset.Classification) *dataset.Regression {
	r := dataset.NewRegression(c.NumFeatures(), c.Count())
	for _, category := range c.Categories() {
		r.AddCategory(category)
	}
	for i := 0; i < c.Count(); i++ {
		r.AddSample(c.Row(i), float32(c.Label(i)))
	}
	return r
}

// Predict returns the response for a feature vector, mapped back to the
// original target range.
func (lr *LogisticRegression) Predict(x []float32) (float32, error) {
	if lr.Invalid() {
		return 0, errors.Trace(ErrNotTrained)
	}
	logit := Logit{Coefficients: lr.Coefficients}
	return lr.Target.Denormalize(logit.Evaluate(x)), nil
}

// BatchPredict returns responses for multiple feature vectors, computed on
// jobs goroutines.
func (lr *LogisticRegression) BatchPredict(x [][]float32, jobs int) ([]float32, error) {
	if lr.Invalid() {
		return nil, errors.Trace(ErrNotTrained)
	}
	logit := Logit{Coefficients: lr.Coefficients}
	predictions := make([]float32, len(x))
	if err := parallel.Parallel(context.Background(), len(x), jobs, func(_, i int) error {
		predictions[i] = lr.Target.Denormalize(logit.Evaluate(x[i]))
		return nil
	}); err != nil {
		return nil, errors.Trace(err)
	}
	return predictions, nil
}

// Classify returns the two class probabilities for a feature vector. The
// probabilities sum to exactly one. Only models trained on class labels can
// classify.
func (lr *LogisticRegression) Classify(x []float32) ([]float32, error) {
	if lr.Invalid() {
		return nil, errors.Trace(ErrNotTrained)
	}
	if !lr.Target.Identity() {
		return nil, errors.Trace(ErrNotClassifier)
	}
	logit := Logit{Coefficients: lr.Coefficients}
	q := 1 - logit.Evaluate(x)
	return []float32{q, 1 - q}, nil
}

// Bias returns the intercept.
func (lr *LogisticRegression) Bias() float32 {
	return lr.BiasAt(0)
}

// Weights returns the feature weights. The slice shares memory with the
// model.
func (lr *LogisticRegression) Weights() []float32 {
	return lr.WeightsAt(0)
}

// NumWeightVectors returns the number of weight vectors, which is always one.
func (lr *LogisticRegression) NumWeightVectors() int {
	return 1
}

// BiasAt returns the intercept of the i-th weight vector.
func (lr *LogisticRegression) BiasAt(i int) float32 {
	if i != 0 {
		panic("model has only 1 weight vector")
	}
	return lr.Coefficients[0]
}

// WeightsAt returns the feature weights of the i-th weight vector.
func (lr *LogisticRegression) WeightsAt(i int) []float32 {
	if i != 0 {
		panic("model has only 1 weight vector")
	}
	return lr.Coefficients[1:]
}

// SupportsSampleWeight reports whether training honors per-sample weights.
func (lr *LogisticRegression) SupportsSampleWeight() bool {
	return false
}

// Marshal serializes the model into w.
func (lr *LogisticRegression) Marshal(w io.Writer) error {
	// write params
	if err := encoding.WriteGob(w, lr.Params); err != nil {
		return errors.Trace(err)
	}
	// write target scaler
	if err := binary.Write(w, binary.LittleEndian, lr.Target); err != nil {
		return errors.Trace(err)
	}
	// write coefficients
	if err := encoding.WriteVector(w, lr.Coefficients); err != nil {
		return errors.Trace(err)
	}
	return nil
}

// Unmarshal deserializes the model from r.
func (lr *LogisticRegression) Unmarshal(r io.Reader) error {
	// read params
	if err := encoding.ReadGob(r, &lr.Params); err != nil {
		return errors.Trace(err)
	}
	lr.SetParams(lr.Params)
	// read target scaler
	if err := binary.Read(r, binary.LittleEndian, &lr.Target); err != nil {
		return errors.Trace(err)
	}
	// read coefficients
	coefficients, err := encoding.ReadVector(r)
	if err != nil {
		return errors.Trace(err)
	}
	if len(coefficients) > 0 {
		lr.Coefficients = coefficients
	}
	return nil
}
