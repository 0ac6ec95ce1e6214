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

	"github.com/c-bata/goptuna"
	"github.com/juju/errors"
	"golang.org/x/exp/maps"

	"github.com/gorse-io/glm/dataset"
	"github.com/gorse-io/glm/model"
)

// ModelCreator creates an untrained model for a search trial.
type ModelCreator func() SingleWeightVectorModel

// SearchedModel records the best model found by a search.
type SearchedModel struct {
	Type   string
	Params model.Params
	Score  Score
}

// ModelSearch tunes model types and hyperparameters over a fixed train and
// test split. Objective is passed to a goptuna study, which suggests the
// model type and its parameters for each trial.
type ModelSearch struct {
	modelCreators map[string]ModelCreator
	modelTypes    []string
	trainSet      *dataset.Regression
	testSet       *dataset.Regression
	config        *FitConfig
	result        SearchedModel
}

func NewModelSearch(modelCreators map[string]ModelCreator, trainSet, testSet *dataset.Regression, config *FitConfig) *ModelSearch {
	return &ModelSearch{
		modelCreators: modelCreators,
		modelTypes:    maps.Keys(modelCreators),
		trainSet:      trainSet,
		testSet:       testSet,
		config:        config,
	}
}

// Result returns the best model found so far.
func (ms *ModelSearch) Result() SearchedModel {
	return ms.result
}

// Objective fits the suggested model with the suggested parameters and
// returns its RMSE on the test set. Studies minimizing this objective search
// for the most accurate model.
func (ms *ModelSearch) Objective(trial goptuna.Trial) (float64, error) {
	if len(ms.modelTypes) == 0 {
		return 0, errors.New("no model to search")
	}
	modelType, err := trial.SuggestCategorical("Model", ms.modelTypes)
	if err != nil {
		return 0, errors.Trace(err)
	}
	m := ms.modelCreators[modelType]()
	m.SetParams(m.GetParams().Overwrite(m.SuggestParams(trial)))
	score, err := m.Fit(context.Background(), ms.trainSet, ms.testSet, ms.config)
	if err != nil {
		return 0, errors.Trace(err)
	}
	if ms.result.Type == "" || score.BetterThan(ms.result.Score) {
		ms.result = SearchedModel{
			Type:   modelType,
			Params: m.GetParams(),
			Score:  score,
		}
	}
	return float64(score.GetValue()), nil
}
