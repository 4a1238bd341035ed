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
	"fmt"
	"strings"
	"sync"

	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/i18n"
	"golang.org/x/text/language"
)

const diagnosticsPrefix = "PD03"

var registered sync.Once
var pde = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	registered.Do(func() {
		i18n.RegisterPrefix(diagnosticsPrefix, "Runtime Diagnostics")
	})
	if !strings.HasPrefix(key, diagnosticsPrefix) {
		panic(fmt.Errorf("must have prefix '%s': %s", diagnosticsPrefix, key))
	}
	return i18n.PDE(language.AmericanEnglish, key, translation, statusHint...)
}

// FixedMessage is the text of a diagnostic that takes no values
type FixedMessage string

func (m FixedMessage) String() string {
	return string(m)
}

// fixed registers a diagnostic that takes no inserts, and returns its text
var fixed = func(key, id, translation string) FixedMessage {
	return FixedMessage(register(key, id, translation).Template)
}

// pdd registers a diagnostic that takes one or more inserts
var pdd = func(key, id, translation string) Entry {
	return register(key, id, translation)
}

// Fixed diagnostics PD0300XX
var (
	ActionItemIsAlreadyScheduled            = fixed("PD030000", "ActionItemIsAlreadyScheduled", "The action item was scheduled for execution but has not completed yet")
	AsyncCallbackThrewException             = fixed("PD030001", "AsyncCallbackThrewException", "Async callback threw an exception")
	AsyncResultAlreadyEnded                 = fixed("PD030002", "AsyncResultAlreadyEnded", "End cannot be called twice on an async result")
	BufferIsNotRightSizeForBufferManager    = fixed("PD030003", "BufferIsNotRightSizeForBufferManager", "This buffer cannot be returned to the buffer manager because it is the wrong size")
	InvalidAsyncResult                      = fixed("PD030004", "InvalidAsyncResult", "An incorrect async result was provided to an 'End' method. The async result passed to 'End' must be the one returned from the matching 'Begin' or passed to the callback provided to 'Begin'")
	InvalidAsyncResultImplementationGeneric = fixed("PD030005", "InvalidAsyncResultImplementationGeneric", "An incorrect implementation of the async result interface may be returning incorrect values from the CompletedSynchronously property or calling the callback more than once")
	InvalidNullAsyncResult                  = fixed("PD030006", "InvalidNullAsyncResult", "A nil value was returned from an async 'Begin' method or passed to an async callback. Async 'Begin' implementations must return a non-nil async result and pass the same async result to the callback")
	InvalidSemaphoreExit                    = fixed("PD030007", "InvalidSemaphoreExit", "Object synchronization method was called from an unsynchronized block of code")
	ReadNotSupported                        = fixed("PD030008", "ReadNotSupported", "Read not supported on this stream")
	SeekNotSupported                        = fixed("PD030009", "SeekNotSupported", "Seek not supported on this stream")
	ValueMustBeNonNegative                  = fixed("PD030010", "ValueMustBeNonNegative", "The value of this argument must be non-negative")
	AsyncResultCompletedTwice               = fixed("PD030011", "AsyncResultCompletedTwice", "The async result tried to complete a single operation multiple times. This could be caused by an incorrect async result implementation or other extensibility code, such as an async result that completes more than once")
	WriteNotSupported                       = fixed("PD030012", "WriteNotSupported", "Write not supported on this stream")
	SemaphoreAborted                        = fixed("PD030013", "SemaphoreAborted", "The semaphore was aborted while waiters were still queued")
	InputQueueClosed                        = fixed("PD030014", "InputQueueClosed", "The input queue has been closed and no further items can be enqueued")
)

// Parameterized diagnostics PD0301XX
var (
	argumentNullOrEmpty               = pdd("PD030100", "ArgumentNullOrEmpty", "The argument %v is nil or empty")
	bufferedOutputStreamQuotaExceeded = pdd("PD030101", "BufferedOutputStreamQuotaExceeded", "The size quota for this stream (%v) has been exceeded")
	failFastMessage                   = pdd("PD030102", "FailFastMessage", "An unrecoverable error occurred. For diagnostic purposes, this message is associated with the failure: '%v'")
	invalidAsyncResultImplementation  = pdd("PD030103", "InvalidAsyncResultImplementation", "An incorrect implementation of the async result interface may be returning incorrect values from the CompletedSynchronously property or calling the callback more than once. The type %v could be the incorrect implementation")
	shipAssertExceptionMessage        = pdd("PD030104", "ShipAssertExceptionMessage", "An unexpected failure occurred. Applications should not attempt to handle this error. For diagnostic purposes, this message is associated with the failure: %v")
	taskTimedOutError                 = pdd("PD030105", "TaskTimedOutError", "The operation did not complete within the allotted timeout of %v. The time allotted to this operation may have been a portion of a longer timeout")
	timeoutInputQueueDequeue          = pdd("PD030106", "TimeoutInputQueueDequeue", "A dequeue operation timed out after %v. The time allotted to this operation may have been a portion of a longer timeout")
	timeoutMustBeNonNegative          = pdd("PD030107", "TimeoutMustBeNonNegative", "Argument %v must be a non-negative timeout value. The provided value was %v")
	timeoutMustBePositive             = pdd("PD030108", "TimeoutMustBePositive", "Argument %v must be a positive timeout value. The provided value was %v")
	asyncEventArgsCompletedTwice      = pdd("PD030109", "AsyncEventArgsCompletedTwice", "Async event args of type %v were completed twice")
	lockTimeoutExceptionMessage       = pdd("PD030110", "LockTimeoutExceptionMessage", "Cannot claim lock within the allotted timeout of %v. The time allotted to this operation may have been a portion of a longer timeout")
	bufferAllocationFailed            = pdd("PD030111", "BufferAllocationFailed", "Failed to allocate a buffer of %v bytes. The amount of available memory may be low")
)

// Resolution contract violations PD0309XX
var (
	MsgDiagnosticUnknownID     = pde("PD030900", "Diagnostic identifier '%s' is not in the catalog")
	MsgDiagnosticArityMismatch = pde("PD030901", "Diagnostic '%s' requires %d substitution values (supplied=%d)")
)
