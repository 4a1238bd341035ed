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

package diagmsgs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTypedAccessorsMatchResolve(t *testing.T) {
	for _, tc := range []struct {
		id       string
		accessor func() string
		values   []interface{}
	}{
		{"ArgumentNullOrEmpty", func() string { return ArgumentNullOrEmpty("name") }, []interface{}{"name"}},
		{"BufferedOutputStreamQuotaExceeded", func() string { return BufferedOutputStreamQuotaExceeded(65536) }, []interface{}{65536}},
		{"FailFastMessage", func() string { return FailFastMessage("queue corrupted") }, []interface{}{"queue corrupted"}},
		{"InvalidAsyncResultImplementation", func() string { return InvalidAsyncResultImplementation("*pkg.myResult") }, []interface{}{"*pkg.myResult"}},
		{"ShipAssertExceptionMessage", func() string { return ShipAssertExceptionMessage("count >= 0") }, []interface{}{"count >= 0"}},
		{"TaskTimedOutError", func() string { return TaskTimedOutError(90 * time.Second) }, []interface{}{"1m30s"}},
		{"TimeoutInputQueueDequeue", func() string { return TimeoutInputQueueDequeue(5 * time.Second) }, []interface{}{"5s"}},
		{"TimeoutMustBeNonNegative", func() string { return TimeoutMustBeNonNegative("timeout", -time.Second) }, []interface{}{"timeout", "-1s"}},
		{"TimeoutMustBePositive", func() string { return TimeoutMustBePositive("timeout", -5) }, []interface{}{"timeout", "-5"}},
		{"AsyncEventArgsCompletedTwice", func() string { return AsyncEventArgsCompletedTwice("readArgs") }, []interface{}{"readArgs"}},
		{"LockTimeoutExceptionMessage", func() string { return LockTimeoutExceptionMessage(time.Minute) }, []interface{}{"1m0s"}},
		{"BufferAllocationFailed", func() string { return BufferAllocationFailed(1 << 20) }, []interface{}{"1048576"}},
	} {
		assert.Equal(t, MustResolve(tc.id, tc.values...), tc.accessor(), tc.id)
	}
}

func TestBufferedOutputStreamQuotaExceeded(t *testing.T) {
	assert.Equal(t, "The size quota for this stream (65536) has been exceeded", BufferedOutputStreamQuotaExceeded(65536))
}
