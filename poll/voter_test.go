// Copyright 2026 The Richmark Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package poll

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVoterID(t *testing.T) {
	a := NewVoterID()
	b := NewVoterID()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestLoadVoterIDPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "voter-id")

	first, err := LoadVoterID(path)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := LoadVoterID(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
