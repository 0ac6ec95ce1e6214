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
	"os"
	"path/filepath"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func writeTempFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRegressionFile(t *testing.T) {
	path := writeTempFile(t, "train.csv", "1.5,2.5,10\n3,4,20\n")
	d, err := LoadRegressionFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, d.Count())
	assert.Equal(t, 2, d.NumFeatures())
	assert.Equal(t, []float32{1.5, 2.5}, d.Row(0))
	assert.Equal(t, []float32{10, 20}, d.Targets())

	_, err = LoadRegressionFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
	_, err = LoadRegressionFile(writeTempFile(t, "bad.csv", "a,b\n"))
	assert.Error(t, err)
	_, err = LoadRegressionFile(writeTempFile(t, "narrow.csv", "1\n"))
	assert.True(t, errors.IsNotValid(err))
	_, err = LoadRegressionFile(writeTempFile(t, "empty.csv", ""))
	assert.True(t, errors.IsNotValid(err))
}

func TestLoadClassificationFile(t *testing.T) {
	path := writeTempFile(t, "iris.csv", "5.1,3.5,setosa\n4.9,3,setosa\n6.2,2.9,virginica\n")
	d, err := LoadClassificationFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 3, d.Count())
	assert.Equal(t, 2, d.NumFeatures())
	assert.Equal(t, 2, d.NumClasses())
	assert.Equal(t, []int{0, 0, 1}, d.Labels())
	assert.Equal(t, []float32{6.2, 2.9}, d.Row(2))
	assert.ElementsMatch(t, []string{"setosa", "virginica"}, d.Categories())

	_, err = LoadClassificationFile(writeTempFile(t, "ragged.csv", "1,2,a\n1,b\n"))
	assert.Error(t, err)
	_, err = LoadClassificationFile(writeTempFile(t, "bad.csv", "x,a\n"))
	assert.Error(t, err)
}

func TestLoadLibSVMFile(t *testing.T) {
	path := writeTempFile(t, "train.svm", "0 0:1.5 2:2.5\n1 1:3\n\n")
	d, err := LoadLibSVMFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, d.Count())
	assert.Equal(t, 3, d.NumFeatures())
	assert.Equal(t, 2, d.NumClasses())
	assert.Equal(t, []float32{1.5, 0, 2.5}, d.Row(0))
	assert.Equal(t, []float32{0, 3, 0}, d.Row(1))
	assert.Equal(t, []int{0, 1}, d.Labels())

	_, err = LoadLibSVMFile(writeTempFile(t, "badlabel.svm", "x 0:1\n"))
	assert.Error(t, err)
	_, err = LoadLibSVMFile(writeTempFile(t, "badpair.svm", "0 0:1:2\n"))
	assert.True(t, errors.IsNotValid(err))
	_, err = LoadLibSVMFile(writeTempFile(t, "negindex.svm", "0 -1:2\n"))
	assert.True(t, errors.IsNotValid(err))
	_, err = LoadLibSVMFile(writeTempFile(t, "empty.svm", "\n"))
	assert.True(t, errors.IsNotValid(err))
}
