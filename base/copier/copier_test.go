// Copyright 2021 gorse Project Authors
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

package copier

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestPrimitives(t *testing.T) {
	var a = 1
	var b int
	err := Copy(&b, a)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
	// not a pointer
	err = Copy(b, a)
	assert.True(t, errors.IsNotValid(err))
	// test type mismatch
	var c bool
	err = Copy(&c, a)
	assert.True(t, errors.IsNotValid(err))
	// copy to interface
	var d interface{}
	err = Copy(&d, a)
	assert.NoError(t, err)
	assert.Equal(t, a, d)
}

func TestSlice(t *testing.T) {
	a := [][]float32{{1}, {2}, {3}, {4}}
	b := make([][]float32, 0)
	err := Copy(&b, a)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
	// test deep copy
	a[0][0] = 100
	assert.Equal(t, float32(1), b[0][0])
	// test reuse memory
	var coefficients = []float32{10}
	c := [][]float32{coefficients, {20}, {30}, {40}}
	err = Copy(&c, a)
	assert.NoError(t, err)
	coefficients[0] = 100
	assert.Equal(t, float32(100), c[0][0])
	// copy to interface
	var d interface{}
	err = Copy(&d, a)
	assert.NoError(t, err)
	assert.Equal(t, a, d)
	// copy empty slice
	var e interface{}
	err = Copy(&e, make([]float32, 0))
	assert.NoError(t, err)
	assert.NotNil(t, e)
	// copy to larger slice
	var f = [][]float32{{10}, {20}, {30}, {40}, {50}}
	err = Copy(&f, a)
	assert.NoError(t, err)
	assert.Equal(t, a, f)
	assert.Equal(t, 5, cap(f))
}

func TestMap(t *testing.T) {
	a := map[string][]float32{"a": {1}, "b": {1}, "c": {1}}
	b := map[string][]float32{"d": {100}, "e": {200}, "f": {300}}
	err := Copy(&b, a)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
	// test deep copy
	a["a"][0] = 100
	assert.Equal(t, float32(1), b["a"][0])
	// copy to interface
	var d interface{}
	err = Copy(&d, a)
	assert.NoError(t, err)
	assert.Equal(t, a, d)
}

type regressor struct {
	Bias    float32
	Weights []float32
}

type scaler struct {
	Shift float32
}

func TestStruct(t *testing.T) {
	a := regressor{Bias: 3, Weights: []float32{3}}
	b := regressor{Bias: 4, Weights: []float32{4}}
	err := Copy(&b, a)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
	// test deep copy
	a.Weights[0] = 100
	assert.Equal(t, float32(3), b.Weights[0])
	// test type mismatch
	var c scaler
	err = Copy(&c, a)
	assert.True(t, errors.IsNotValid(err))
}

func TestPtr(t *testing.T) {
	a := &regressor{Bias: 3, Weights: []float32{3}}
	b := &regressor{Bias: 4, Weights: []float32{4}}
	err := Copy(&b, a)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestInterface(t *testing.T) {
	var a = []interface{}{&regressor{Bias: 3, Weights: []float32{3}}, []int{100}, 1}
	var b []interface{}
	err := Copy(&b, a)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

type sealed struct {
	Visible float32
	hidden  string
}

func TestUnexported(t *testing.T) {
	a := sealed{Visible: 1, hidden: "seed"}
	var b sealed
	err := Copy(&b, a)
	assert.NoError(t, err)
	assert.Equal(t, float32(1), b.Visible)
	// unexported fields are left for the caller to rebuild
	assert.Empty(t, b.hidden)
}
