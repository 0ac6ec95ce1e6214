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
	"bufio"
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/juju/errors"

	"github.com/gorse-io/glm/common/util"
)

// LoadRegressionFile reads a headerless CSV file whose last column is the
// numerical target.
func LoadRegressionFile(path string) (*Regression, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Trace(err)
	}
	if len(rows) == 0 {
		return nil, errors.NotValidf("empty file %s", path)
	}
	numFeatures := len(rows[0]) - 1
	if numFeatures < 1 {
		return nil, errors.NotValidf("file %s with %d columns", path, len(rows[0]))
	}
	data := NewRegression(numFeatures, len(rows))
	for _, row := range rows {
		features := make([]float32, numFeatures)
		for j, cell := range row[:numFeatures] {
			features[j], err = util.ParseFloat[float32](cell)
			if err != nil {
				return nil, errors.Trace(err)
			}
		}
		target, err := util.ParseFloat[float32](row[numFeatures])
		if err != nil {
			return nil, errors.Trace(err)
		}
		data.AddSample(features, target)
	}
	return data, nil
}

// LoadClassificationFile reads a headerless CSV file whose last column names
// the class. Classes are numbered in order of first appearance and the class
// names are attached as category descriptors.
func LoadClassificationFile(path string) (*Classification, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Trace(err)
	}
	if len(rows) == 0 {
		return nil, errors.NotValidf("empty file %s", path)
	}
	numFeatures := len(rows[0]) - 1
	if numFeatures < 1 {
		return nil, errors.NotValidf("file %s with %d columns", path, len(rows[0]))
	}
	types := make(map[string]int)
	for _, row := range rows {
		if _, exist := types[row[numFeatures]]; !exist {
			types[row[numFeatures]] = len(types)
		}
	}
	data := NewClassification(numFeatures, len(types), len(rows))
	for name := range types {
		data.AddCategory(name)
	}
	for _, row := range rows {
		features := make([]float32, numFeatures)
		for j, cell := range row[:numFeatures] {
			features[j], err = util.ParseFloat[float32](cell)
			if err != nil {
				return nil, errors.Trace(err)
			}
		}
		data.AddSample(features, types[row[numFeatures]])
	}
	return data, nil
}

// LoadLibSVMFile reads a LibSVM formatted file. Each line is a class label
// followed by index:value pairs. Feature indices are zero based and the
// width is taken from the largest index seen.
func LoadLibSVMFile(path string) (*Classification, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()
	var (
		labels      []uint8
		indices     [][]int
		values      [][]float32
		numFeatures int
		numClasses  int
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		splits := strings.Split(line, " ")
		// Parse label
		label, err := util.ParseUInt[uint8](splits[0])
		if err != nil {
			return nil, errors.Trace(err)
		}
		labels = append(labels, label)
		numClasses = max(numClasses, int(label)+1)
		// Parse features
		rowIndices := make([]int, 0, len(splits)-1)
		rowValues := make([]float32, 0, len(splits)-1)
		for _, split := range splits[1:] {
			kv := strings.Split(split, ":")
			if len(kv) != 2 {
				return nil, errors.NotValidf("feature %q", split)
			}
			index, err := strconv.Atoi(kv[0])
			if err != nil {
				return nil, errors.Trace(err)
			}
			if index < 0 {
				return nil, errors.NotValidf("feature index %d", index)
			}
			value, err := util.ParseFloat[float32](kv[1])
			if err != nil {
				return nil, errors.Trace(err)
			}
			rowIndices = append(rowIndices, index)
			rowValues = append(rowValues, value)
			numFeatures = max(numFeatures, index+1)
		}
		indices = append(indices, rowIndices)
		values = append(values, rowValues)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Trace(err)
	}
	if len(labels) == 0 {
		return nil, errors.NotValidf("empty file %s", path)
	}
	data := NewClassification(numFeatures, numClasses, len(labels))
	for i := range labels {
		features := make([]float32, numFeatures)
		for j, index := range indices[i] {
			features[index] = values[i][j]
		}
		data.AddSample(features, int(labels[i]))
	}
	return data, nil
}
