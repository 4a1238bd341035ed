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

package i18n

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

const errorMessageMaxLength = 2048

// PDError is the interface of every error built from a registered error message
type PDError interface {
	error
	MessageKey() ErrorMessageKey
	HTTPStatus() int
	StackTrace() string
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

type pdError struct {
	error  // carries the coded message, and the stack where it was created
	msgKey ErrorMessageKey
	status int
	cause  error
}

func (e *pdError) MessageKey() ErrorMessageKey {
	return e.msgKey
}

func (e *pdError) HTTPStatus() int {
	return e.status
}

func (e *pdError) Unwrap() error {
	return e.cause
}

func (e *pdError) StackTrace() string {
	st, ok := e.error.(stackTracer)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%+v", st.StackTrace())
}

func truncate(s string) string {
	if len(s) > errorMessageMaxLength {
		return s[0:errorMessageMaxLength] + "..."
	}
	return s
}

func newPDError(ctx context.Context, cause error, msg ErrorMessageKey, inserts ...interface{}) *pdError {
	errString := ExpandWithCode(ctx, MessageKey(msg), inserts...)
	if cause != nil {
		errString = fmt.Sprintf("%s: %s", errString, cause.Error())
	}
	status, ok := GetStatusHint(string(msg))
	if !ok {
		status = 500
	}
	return &pdError{
		error:  errors.New(truncate(errString)),
		msgKey: msg,
		status: status,
		cause:  cause,
	}
}

// NewError creates a new error from a registered error message
func NewError(ctx context.Context, msg ErrorMessageKey, inserts ...interface{}) error {
	return newPDError(ctx, nil, msg, inserts...)
}

// WrapError creates a new error from a registered error message, wrapping an existing error.
// A nil error is treated as NewError.
func WrapError(ctx context.Context, err error, msg ErrorMessageKey, inserts ...interface{}) error {
	return newPDError(ctx, err, msg, inserts...)
}
