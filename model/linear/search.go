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

	"go.uber.org/zap"

	"github.com/gorse-io/glm/base"
	"github.com/gorse-io/glm/base/log"
	"github.com/gorse-io/glm/dataset"
	"github.com/gorse-io/glm/model"
)

// ParamsSearchResult contains the return of grid search.
type ParamsSearchResult struct {
	BestScore  Score
	BestModel  SingleWeightVectorModel
	BestParams model.Params
	BestIndex  int
	Scores     []Score
	Params     []model.Params
}

// GridSearchCV finds the best parameters for a model by fitting every
// combination in the parameter grid. Combinations that fail to fit are logged
// and left out of the result.
func GridSearchCV(ctx context.Context, estimator SingleWeightVectorModel, trainSet, testSet *dataset.Regression,
	paramGrid model.ParamsGrid, _ int64, fitConfig *FitConfig) ParamsSearchResult {
	fitConfig = fitConfig.LoadDefaultIfNil()
	// Retrieve parameter names and the number of combinations
	paramNames := make([]model.ParamName, 0, len(paramGrid))
	total := 1
	for paramName, values := range paramGrid {
		paramNames = append(paramNames, paramName)
		total *= len(values)
	}
	// Construct DFS procedure
	results := ParamsSearchResult{
		Scores: make([]Score, 0, total),
		Params: make([]model.Params, 0, total),
	}
	progress := 0
	var dfs func(deep int, params model.Params)
	dfs = func(deep int, params model.Params) {
		if deep == len(paramNames) {
			progress++
			if fitConfig.Verbose > 0 && progress%fitConfig.Verbose == 0 {
				log.Logger().Info(fmt.Sprintf("grid search %v/%v", progress, total),
					zap.Any("params", params))
			}
			// Cross validate
			estimator.Clear()
			estimator.SetParams(estimator.GetParams().Overwrite(params))
			score, err := estimator.Fit(ctx, trainSet, testSet, fitConfig)
			if err != nil {
				log.Logger().Error("failed to fit model", zap.Any("params", params), zap.Error(err))
				return
			}
			results.Scores = append(results.Scores, score)
			results.Params = append(results.Params, params.Copy())
			if results.BestModel == nil || score.BetterThan(results.BestScore) {
				results.BestScore = score
				results.BestParams = params.Copy()
				results.BestIndex = len(results.Params) - 1
				results.BestModel = Clone(estimator)
			}
		} else {
			paramName := paramNames[deep]
			for _, paramValue := range paramGrid[paramName] {
				params[paramName] = paramValue
				dfs(deep+1, params)
			}
		}
	}
	dfs(0, model.Params{})
	return results
}

// RandomSearchCV finds the best parameters for a model by fitting parameter
// combinations drawn from the grid at random. When the grid has no more
// combinations than trials, grid search is used instead.
func RandomSearchCV(ctx context.Context, estimator SingleWeightVectorModel, trainSet, testSet *dataset.Regression,
	paramGrid model.ParamsGrid, numTrials int, seed int64, fitConfig *FitConfig) ParamsSearchResult {
	fitConfig = fitConfig.LoadDefaultIfNil()
	// if the number of combinations is less than the number of trials, use grid search
	if paramGrid.NumCombinations() <= numTrials {
		return GridSearchCV(ctx, estimator, trainSet, testSet, paramGrid, 0, fitConfig)
	}
	rng := base.NewRandomGenerator(seed)
	results := ParamsSearchResult{
		Scores: make([]Score, 0, numTrials),
		Params: make([]model.Params, 0, numTrials),
	}
	for i := 1; i <= numTrials; i++ {
		// Make parameters
		params := model.Params{}
		for paramName, values := range paramGrid {
			params[paramName] = values[rng.Intn(len(values))]
		}
		if fitConfig.Verbose > 0 && i%fitConfig.Verbose == 0 {
			log.Logger().Info(fmt.Sprintf("random search %v/%v", i, numTrials),
				zap.Any("params", params))
		}
		// Cross validate
		estimator.Clear()
		estimator.SetParams(estimator.GetParams().Overwrite(params))
		score, err := estimator.Fit(ctx, trainSet, testSet, fitConfig)
		if err != nil {
			log.Logger().Error("failed to fit model", zap.Any("params", params), zap.Error(err))
			continue
		}
		results.Scores = append(results.Scores, score)
		results.Params = append(results.Params, params.Copy())
		if results.BestModel == nil || score.BetterThan(results.BestScore) {
			results.BestScore = score
			results.BestParams = params.Copy()
			results.BestIndex = len(results.Params) - 1
			results.BestModel = Clone(estimator)
		}
	}
	return results
}
