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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gorse-io/glm/common/encoding"
)

func TestFitConfig(t *testing.T) {
	config := NewFitConfig()
	assert.Equal(t, 1, config.Jobs)
	assert.Equal(t, 10, config.Verbose)
	config = config.SetJobs(4).SetVerbose(1)
	assert.Equal(t, 4, config.Jobs)
	assert.Equal(t, 1, config.Verbose)
	var missing *FitConfig
	loaded := missing.LoadDefaultIfNil()
	assert.NotNil(t, loaded)
	assert.Equal(t, 1, loaded.Jobs)
}

func TestScore_BetterThan(t *testing.T) {
	// classification scores compare by AUC
	assert.True(t, Score{AUC: 0.8}.BetterThan(Score{AUC: 0.6}))
	assert.False(t, Score{AUC: 0.6}.BetterThan(Score{AUC: 0.8}))
	// regression scores compare by RMSE
	assert.True(t, Score{RMSE: 0.5}.BetterThan(Score{RMSE: 1}))
	assert.False(t, Score{RMSE: 1}.BetterThan(Score{RMSE: 0.5}))
	assert.Equal(t, float32(0.5), Score{RMSE: 0.5}.GetValue())
}

func TestMarshalModel_Unknown(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := MarshalModel(buf, newMockModelForSearch(nil))
	assert.ErrorContains(t, err, "unknown model")
	assert.NoError(t, encoding.WriteString(buf, "SVD"))
	_, err = UnmarshalModel(buf)
	assert.ErrorContains(t, err, "unknown model")
}
