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

	"github.com/c-bata/goptuna"
	"github.com/c-bata/goptuna/tpe"
	"github.com/stretchr/testify/assert"

	"github.com/gorse-io/glm/model"
)

func TestModelSearch(t *testing.T) {
	search := NewModelSearch(map[string]ModelCreator{
		"LogisticRegression": func() SingleWeightVectorModel { return newMockModelForSearch(nil) },
	}, nil, nil, NewFitConfig())
	study, err := goptuna.CreateStudy("glm",
		goptuna.StudyOptionDirection(goptuna.StudyDirectionMinimize),
		goptuna.StudyOptionSampler(tpe.NewSampler()))
	assert.NoError(t, err)
	err = study.Optimize(search.Objective, 10)
	assert.NoError(t, err)
	best, err := study.GetBestValue()
	assert.NoError(t, err)
	result := search.Result()
	assert.Equal(t, "LogisticRegression", result.Type)
	assert.Equal(t, best, float64(result.Score.GetValue()))
	assert.Contains(t, result.Params, model.Eps)
	assert.Contains(t, result.Params, model.MaxIterations)
}

func TestModelSearch_NoModel(t *testing.T) {
	search := NewModelSearch(map[string]ModelCreator{}, nil, nil, NewFitConfig())
	study, err := goptuna.CreateStudy("glm",
		goptuna.StudyOptionDirection(goptuna.StudyDirectionMinimize),
		goptuna.StudyOptionSampler(tpe.NewSampler()))
	assert.NoError(t, err)
	err = study.Optimize(search.Objective, 1)
	assert.Error(t, err)
}
