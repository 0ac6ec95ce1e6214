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

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegression(t *testing.T) {
	d := NewRegression(2, 4)
	d.AddSample([]float32{1, 2}, 3)
	d.AddSample([]float32{4, 5}, 6)
	d.AddCategory("weekday")
	assert.Equal(t, 2, d.Count())
	assert.Equal(t, 2, d.NumFeatures())
	assert.Equal(t, []float32{4, 5}, d.Row(1))
	assert.Equal(t, float32(3), d.Target(0))
	assert.Equal(t, []float32{3, 6}, d.Targets())
	assert.Equal(t, []string{"weekday"}, d.Categories())
	assert.Panics(t, func() { d.AddSample([]float32{1}, 0) })
}

func TestRegression_CopyTargets(t *testing.T) {
	d := NewRegression(1, 2)
	d.AddSample([]float32{1}, 10)
	d.AddSample([]float32{2}, 20)
	targets := d.CopyTargets()
	targets[0] = -1
	assert.Equal(t, float32(10), d.Target(0))
}

func TestRegression_Split(t *testing.T) {
	d := NewRegression(1, 10)
	for i := 0; i < 10; i++ {
		d.AddSample([]float32{float32(i)}, float32(i))
	}
	d.AddCategory("weekday")
	trainSet, testSet := d.Split(0.2, 0)
	assert.Equal(t, 8, trainSet.Count())
	assert.Equal(t, 2, testSet.Count())
	assert.Equal(t, []string{"weekday"}, trainSet.Categories())
	assert.Equal(t, []string{"weekday"}, testSet.Categories())
	// Every sample lands in exactly one side with its target attached.
	seen := make(map[float32]int)
	for i := 0; i < trainSet.Count(); i++ {
		seen[trainSet.Target(i)]++
		assert.Equal(t, trainSet.Row(i)[0], trainSet.Target(i))
	}
	for i := 0; i < testSet.Count(); i++ {
		seen[testSet.Target(i)]++
		assert.Equal(t, testSet.Row(i)[0], testSet.Target(i))
	}
	assert.Equal(t, 10, len(seen))
}

func TestClassification(t *testing.T) {
	d := NewClassification(2, 2, 4)
	d.AddSample([]float32{1, 2}, 0)
	d.AddSample([]float32{4, 5}, 1)
	assert.Equal(t, 2, d.Count())
	assert.Equal(t, 2, d.NumFeatures())
	assert.Equal(t, 2, d.NumClasses())
	assert.Equal(t, []float32{1, 2}, d.Row(0))
	assert.Equal(t, 1, d.Label(1))
	assert.Equal(t, []int{0, 1}, d.Labels())
	assert.Panics(t, func() { d.AddSample([]float32{1}, 0) })
	assert.Panics(t, func() { d.AddSample([]float32{1, 2}, 2) })
	assert.Panics(t, func() { d.AddSample([]float32{1, 2}, -1) })
}

func TestClassification_Split(t *testing.T) {
	d := NewClassification(1, 2, 10)
	for i := 0; i < 10; i++ {
		d.AddSample([]float32{float32(i)}, i%2)
	}
	trainSet, testSet := d.Split(0.3, 0)
	assert.Equal(t, 7, trainSet.Count())
	assert.Equal(t, 3, testSet.Count())
	assert.Equal(t, 2, trainSet.NumClasses())
	assert.Equal(t, 2, testSet.NumClasses())
}
