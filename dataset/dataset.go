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
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/gorse-io/glm/base"
)

// Regression is an in-memory data set for regression tasks. Each sample is a
// dense feature vector paired with a numerical target.
type Regression struct {
	numFeatures int
	features    [][]float32
	targets     []float32
	categories  mapset.Set[string]
}

// NewRegression creates a regression data set. The capacity is pre-allocated.
func NewRegression(numFeatures, capacity int) *Regression {
	return &Regression{
		numFeatures: numFeatures,
		features:    make([][]float32, 0, capacity),
		targets:     make([]float32, 0, capacity),
		categories:  mapset.NewSet[string](),
	}
}

// AddSample appends a sample. The feature vector must have NumFeatures
// elements.
func (d *Regression) AddSample(features []float32, target float32) {
	if len(features) != d.numFeatures {
		panic("dataset: feature vector length doesn't match")
	}
	d.features = append(d.features, features)
	d.targets = append(d.targets, target)
}

// AddCategory attaches a categorical attribute descriptor. Descriptors are
// carried through splits and conversions but never consumed by models.
func (d *Regression) AddCategory(name string) {
	d.categories.Add(name)
}

func (d *Regression) Count() int {
	return len(d.features)
}

func (d *Regression) NumFeatures() int {
	return d.numFeatures
}

// Row returns the i-th feature vector. The returned slice is shared with the
// data set and must not be modified.
func (d *Regression) Row(i int) []float32 {
	return d.features[i]
}

func (d *Regression) Rows() [][]float32 {
	return d.features
}

func (d *Regression) Target(i int) float32 {
	return d.targets[i]
}

func (d *Regression) Targets() []float32 {
	return d.targets
}

// CopyTargets returns a private copy of the targets.
func (d *Regression) CopyTargets() []float32 {
	targets := make([]float32, len(d.targets))
	copy(targets, d.targets)
	return targets
}

func (d *Regression) Categories() []string {
	return d.categories.ToSlice()
}

// Split splits the data set to a train set and a test set by sampling
// testRatio of the samples into the test set.
func (d *Regression) Split(testRatio float32, seed int64) (*Regression, *Regression) {
	testSize := int(float32(d.Count()) * testRatio)
	rng := base.NewRandomGenerator(seed)
	testIndex := mapset.NewSet(rng.Sample(0, d.Count(), testSize)...)
	trainSet := NewRegression(d.numFeatures, d.Count()-testSize)
	testSet := NewRegression(d.numFeatures, testSize)
	trainSet.categories = d.categories.Clone()
	testSet.categories = d.categories.Clone()
	for i := 0; i < d.Count(); i++ {
		if testIndex.Contains(i) {
			testSet.AddSample(d.features[i], d.targets[i])
		} else {
			trainSet.AddSample(d.features[i], d.targets[i])
		}
	}
	return trainSet, testSet
}

// Classification is an in-memory data set for classification tasks. Each
// sample is a dense feature vector paired with a class label. The number of
// classes is declared up front so that unobserved classes still count.
type Classification struct {
	numFeatures int
	numClasses  int
	features    [][]float32
	labels      []int
	categories  mapset.Set[string]
}

// NewClassification creates a classification data set with numClasses
// classes. The capacity is pre-allocated.
func NewClassification(numFeatures, numClasses, capacity int) *Classification {
	return &Classification{
		numFeatures: numFeatures,
		numClasses:  numClasses,
		features:    make([][]float32, 0, capacity),
		labels:      make([]int, 0, capacity),
		categories:  mapset.NewSet[string](),
	}
}

// AddSample appends a sample. The feature vector must have NumFeatures
// elements and the label must be in [0, NumClasses).
func (d *Classification) AddSample(features []float32, label int) {
	if len(features) != d.numFeatures {
		panic("dataset: feature vector length doesn't match")
	}
	if label < 0 || label >= d.numClasses {
		panic("dataset: class label out of range")
	}
	d.features = append(d.features, features)
	d.labels = append(d.labels, label)
}

// AddCategory attaches a categorical attribute descriptor.
func (d *Classification) AddCategory(name string) {
	d.categories.Add(name)
}

func (d *Classification) Count() int {
	return len(d.features)
}

func (d *Classification) NumFeatures() int {
	return d.numFeatures
}

func (d *Classification) NumClasses() int {
	return d.numClasses
}

// Row returns the i-th feature vector. The returned slice is shared with the
// data set and must not be modified.
func (d *Classification) Row(i int) []float32 {
	return d.features[i]
}

func (d *Classification) Rows() [][]float32 {
	return d.features
}

func (d *Classification) Label(i int) int {
	return d.labels[i]
}

func (d *Classification) Labels() []int {
	return d.labels
}

func (d *Classification) Categories() []string {
	return d.categories.ToSlice()
}

// Split splits the data set to a train set and a test set by sampling
// testRatio of the samples into the test set.
func (d *Classification) Split(testRatio float32, seed int64) (*Classification, *Classification) {
	testSize := int(float32(d.Count()) * testRatio)
	rng := base.NewRandomGenerator(seed)
	testIndex := mapset.NewSet(rng.Sample(0, d.Count(), testSize)...)
	trainSet := NewClassification(d.numFeatures, d.numClasses, d.Count()-testSize)
	testSet := NewClassification(d.numFeatures, d.numClasses, testSize)
	trainSet.categories = d.categories.Clone()
	testSet.categories = d.categories.Clone()
	for i := 0; i < d.Count(); i++ {
		if testIndex.Contains(i) {
			testSet.AddSample(d.features[i], d.labels[i])
		} else {
			trainSet.AddSample(d.features[i], d.labels[i])
		}
	}
	return trainSet, testSet
}
