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
	"fmt"
	"io"
	"reflect"

	"github.com/c-bata/goptuna"
	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/gorse-io/glm/base/copier"
	"github.com/gorse-io/glm/common/encoding"
	"github.com/gorse-io/glm/dataset"
	"github.com/gorse-io/glm/model"
)

var (
	// ErrNotTrained is returned by inference calls on an untrained model.
	ErrNotTrained = errors.New("model has not been trained")
	// ErrNotClassifier is returned by Classify on a model trained for
	// regression targets instead of class labels.
	ErrNotClassifier = errors.New("model was trained for regression, not classification")
	// ErrBinaryOnly is returned by classification training on data sets with a
	// class count other than two.
	ErrBinaryOnly = errors.New("logistic regression works only in the case of two classes")
	// ErrConstantTarget is returned by training on a data set whose targets
	// are all equal, which leaves the target range empty.
	ErrConstantTarget = errors.New("all targets are equal")
)

type Score struct {
	RMSE      float32
	Precision float32
	Recall    float32
	Accuracy  float32
	AUC       float32
}

func (score Score) ZapFields() []zap.Field {
	return []zap.Field{
		zap.Float32("RMSE", score.RMSE),
		zap.Float32("Accuracy", score.Accuracy),
		zap.Float32("Precision", score.Precision),
		zap.Float32("Recall", score.Recall),
		zap.Float32("AUC", score.AUC),
	}
}

func (score Score) GetValue() float32 {
	return score.RMSE
}

// BetterThan compares scores. Classification scores compare by AUC,
// regression scores by RMSE.
func (score Score) BetterThan(s Score) bool {
	if score.AUC != s.AUC {
		return score.AUC > s.AUC
	}
	return score.RMSE < s.RMSE
}

type FitConfig struct {
	Jobs    int
	Verbose int
}

func NewFitConfig() *FitConfig {
	return &FitConfig{
		Jobs:    1,
		Verbose: 10,
	}
}

func (config *FitConfig) SetVerbose(verbose int) *FitConfig {
	config.Verbose = verbose
	return config
}

func (config *FitConfig) SetJobs(jobs int) *FitConfig {
	config.Jobs = jobs
	return config
}

func (config *FitConfig) LoadDefaultIfNil() *FitConfig {
	if config == nil {
		return NewFitConfig()
	}
	return config
}

// SingleWeightVectorModel is the interface of models that learn one weight
// vector and one bias from a regression data set.
type SingleWeightVectorModel interface {
	model.Model
	Fit(ctx context.Context, trainSet, testSet *dataset.Regression, config *FitConfig) (Score, error)
	Predict(x []float32) (float32, error)
	SuggestParams(trial goptuna.Trial) model.Params
	Bias() float32
	Weights() []float32
	NumWeightVectors() int
	Invalid() bool
	Marshal(w io.Writer) error
}

// BinaryClassifier is the interface of models that emit two class
// probabilities.
type BinaryClassifier interface {
	FitClassification(ctx context.Context, trainSet, testSet *dataset.Classification, config *FitConfig) (Score, error)
	Classify(x []float32) ([]float32, error)
}

func Clone(m SingleWeightVectorModel) SingleWeightVectorModel {
	var copied SingleWeightVectorModel
	if err := copier.Copy(&copied, m); err != nil {
		panic(err)
	} else {
		copied.SetParams(copied.GetParams())
		return copied
	}
}

const headerLogisticRegression = "LogisticRegression"

func MarshalModel(w io.Writer, m SingleWeightVectorModel) error {
	// write header
	var err error
	switch m.(type) {
	case *LogisticRegression:
		err = encoding.WriteString(w, headerLogisticRegression)
	default:
		return fmt.Errorf("unknown model: %v", reflect.TypeOf(m))
	}
	if err != nil {
		return err
	}
	return m.Marshal(w)
}

func UnmarshalModel(r io.Reader) (SingleWeightVectorModel, error) {
	// read header
	header, err := encoding.ReadString(r)
	if err != nil {
		return nil, err
	}
	switch header {
	case headerLogisticRegression:
		var lr LogisticRegression
		if err := lr.Unmarshal(r); err != nil {
			return nil, errors.Trace(err)
		}
		return &lr, nil
	}
	return nil, fmt.Errorf("unknown model: %v", header)
}
