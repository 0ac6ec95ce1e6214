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
	"sort"

	"github.com/chewxy/math32"
	"go.uber.org/zap"
	"modernc.org/sortutil"

	"github.com/gorse-io/glm/base/log"
	"github.com/gorse-io/glm/dataset"
)

// EvaluateRegression evaluates a trained model in regression task.
func EvaluateRegression(estimator SingleWeightVectorModel, testSet *dataset.Regression) Score {
	sum := float32(0)
	for i := 0; i < testSet.Count(); i++ {
		prediction, err := estimator.Predict(testSet.Row(i))
		if err != nil {
			log.Logger().Error("failed to evaluate model", zap.Error(err))
			return Score{}
		}
		target := testSet.Target(i)
		sum += (target - prediction) * (target - prediction)
	}
	if testSet.Count() == 0 {
		return Score{
			RMSE: 0,
		}
	}
	return Score{
		RMSE: math32.Sqrt(sum / float32(testSet.Count())),
	}
}

// EvaluateClassification evaluates a trained model in binary classification
// task. Probabilities above 0.5 count as positive predictions.
func EvaluateClassification(estimator BinaryClassifier, testSet *dataset.Classification) Score {
	var posPrediction, negPrediction []float32
	for i := 0; i < testSet.Count(); i++ {
		probabilities, err := estimator.Classify(testSet.Row(i))
		if err != nil {
			log.Logger().Error("failed to evaluate model", zap.Error(err))
			return Score{}
		}
		if testSet.Label(i) == 1 {
			posPrediction = append(posPrediction, probabilities[1])
		} else {
			negPrediction = append(negPrediction, probabilities[1])
		}
	}
	if testSet.Count() == 0 {
		return Score{
			Precision: 0,
		}
	}
	return Score{
		Precision: Precision(posPrediction, negPrediction),
		Recall:    Recall(posPrediction, negPrediction),
		Accuracy:  Accuracy(posPrediction, negPrediction),
		AUC:       AUC(posPrediction, negPrediction),
	}
}

func Precision(posPrediction, negPrediction []float32) float32 {
	var tp, fp float32
	for _, p := range posPrediction {
		if p > 0.5 { // true positive
			tp++
		}
	}
	for _, p := range negPrediction {
		if p > 0.5 { // false positive
			fp++
		}
	}
	if tp+fp == 0 {
		return 0
	}
	return tp / (tp + fp)
}

func Recall(posPrediction, _ []float32) float32 {
	var tp, fn float32
	for _, p := range posPrediction {
		if p > 0.5 { // true positive
			tp++
		} else { // false negative
			fn++
		}
	}
	if tp+fn == 0 {
		return 0
	}
	return tp / (tp + fn)
}

func Accuracy(posPrediction, negPrediction []float32) float32 {
	var correct float32
	for _, p := range posPrediction {
		if p > 0.5 {
			correct++
		}
	}
	for _, p := range negPrediction {
		if p < 0.5 {
			correct++
		}
	}
	if len(posPrediction)+len(negPrediction) == 0 {
		return 0
	}
	return correct / float32(len(posPrediction)+len(negPrediction))
}

func AUC(posPrediction, negPrediction []float32) float32 {
	sort.Sort(sortutil.Float32Slice(posPrediction))
	sort.Sort(sortutil.Float32Slice(negPrediction))
	var sum float32
	var nPos int
	for pPos := range posPrediction {
		// find the negative sample with the greatest prediction less than current positive sample
		for nPos < len(negPrediction) && negPrediction[nPos] < posPrediction[pPos] {
			nPos++
		}
		// add the number of negative samples have less prediction than current positive sample
		sum += float32(nPos)
	}
	if len(posPrediction)*len(negPrediction) == 0 {
		return 0
	}
	return sum / float32(len(posPrediction)*len(negPrediction))
}
