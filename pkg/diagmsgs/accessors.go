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

import "time"

// Typed accessors for the parameterized diagnostics. The signature of each one
// fixes the number of values, so they cannot be called with the wrong count.

// ArgumentNullOrEmpty names a required argument that was nil or empty
func ArgumentNullOrEmpty(param string) string {
	return argumentNullOrEmpty.mustRender(param)
}

// BufferedOutputStreamQuotaExceeded reports the quota in bytes that a buffered stream outgrew
func BufferedOutputStreamQuotaExceeded(quota int64) string {
	return bufferedOutputStreamQuotaExceeded.mustRender(quota)
}

// FailFastMessage describes the failure that stopped the process
func FailFastMessage(reason string) string {
	return failFastMessage.mustRender(reason)
}

// InvalidAsyncResultImplementation names the async result type suspected of misbehaving
func InvalidAsyncResultImplementation(typeName string) string {
	return invalidAsyncResultImplementation.mustRender(typeName)
}

// ShipAssertExceptionMessage carries the assertion that failed in a release build
func ShipAssertExceptionMessage(assertion string) string {
	return shipAssertExceptionMessage.mustRender(assertion)
}

// TaskTimedOutError reports the timeout an operation exceeded
func TaskTimedOutError(timeout time.Duration) string {
	return taskTimedOutError.mustRender(timeout)
}

// TimeoutInputQueueDequeue reports how long a dequeue waited before giving up
func TimeoutInputQueueDequeue(timeout time.Duration) string {
	return timeoutInputQueueDequeue.mustRender(timeout)
}

// TimeoutMustBeNonNegative rejects a negative timeout argument. The value is taken as
// supplied by the caller, usually a time.Duration but possibly a raw number from configuration.
func TimeoutMustBeNonNegative(paramName string, value interface{}) string {
	return timeoutMustBeNonNegative.mustRender(paramName, value)
}

// TimeoutMustBePositive rejects a zero or negative timeout argument
func TimeoutMustBePositive(paramName string, value interface{}) string {
	return timeoutMustBePositive.mustRender(paramName, value)
}

// AsyncEventArgsCompletedTwice names the event args type that was completed more than once
func AsyncEventArgsCompletedTwice(typeName string) string {
	return asyncEventArgsCompletedTwice.mustRender(typeName)
}

// LockTimeoutExceptionMessage reports the timeout a lock claim exceeded
func LockTimeoutExceptionMessage(timeout time.Duration) string {
	return lockTimeoutExceptionMessage.mustRender(timeout)
}

// BufferAllocationFailed reports the size in bytes of a buffer that could not be allocated
func BufferAllocationFailed(size int64) string {
	return bufferAllocationFailed.mustRender(size)
}
