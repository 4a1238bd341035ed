// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package confutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntMin(t *testing.T) {
	assert.Equal(t, 5, IntMin(nil, 1, 5))
	assert.Equal(t, 1, IntMin(P(0), 1, 5))
	assert.Equal(t, 10, IntMin(P(10), 1, 5))
}

func TestBool(t *testing.T) {
	assert.True(t, Bool(nil, true))
	assert.False(t, Bool(P(false), true))
}

func TestStringNotEmpty(t *testing.T) {
	assert.Equal(t, "def", StringNotEmpty(nil, "def"))
	assert.Equal(t, "def", StringNotEmpty(P(""), "def"))
	assert.Equal(t, "val", StringNotEmpty(P("val"), "def"))
}

func TestDurationMin(t *testing.T) {
	assert.Equal(t, 24*time.Hour, DurationMin(nil, 0, "24h"))
	assert.Equal(t, 24*time.Hour, DurationMin(P("wrong"), 0, "24h"))
	assert.Equal(t, time.Second, DurationMin(P("1ms"), time.Second, "24h"))
	assert.Equal(t, 5*time.Minute, DurationMin(P("5m"), time.Second, "24h"))
}

func TestByteSize(t *testing.T) {
	assert.Equal(t, int64(100*1024*1024), ByteSize(nil, 0, "100Mb"))
	assert.Equal(t, int64(100*1024*1024), ByteSize(P("bad"), 0, "100Mb"))
	assert.Equal(t, int64(1024), ByteSize(P("1Kb"), 0, "100Mb"))
	assert.Equal(t, int64(4096), ByteSize(P("1Kb"), 4096, "100Mb"))
}
