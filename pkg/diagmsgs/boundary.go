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
	"context"

	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/i18n"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/log"
)

func mustEntry(ctx context.Context, id string, supplied int) Entry {
	e, cv := lookupChecked(id, supplied)
	if cv != nil {
		log.L(log.WithLogField(ctx, "diagnostic", id)).
			WithField("expected", cv.Expected).
			WithField("supplied", cv.Supplied).
			Errorf("Diagnostic contract violation: %s", cv)
		panic(cv)
	}
	return e
}

// NewError builds the error a primitive returns to its caller when it detects a broken
// invariant. The message carries the diagnostic's code, and is expanded in the language
// of the context. Supplying the wrong values for the diagnostic is a defect, and panics.
func NewError(ctx context.Context, id string, values ...interface{}) error {
	e := mustEntry(ctx, id, len(values))
	return i18n.NewError(ctx, e.Code, values...)
}

// WrapError is NewError, retaining the error that led to the diagnostic
func WrapError(ctx context.Context, err error, id string, values ...interface{}) error {
	e := mustEntry(ctx, id, len(values))
	return i18n.WrapError(ctx, err, e.Code, values...)
}

// FailFast is for invariants whose violation leaves the process unable to continue safely.
// The diagnostic is logged with its stack before the panic unwinds.
func FailFast(ctx context.Context, id string, values ...interface{}) {
	err := NewError(ctx, id, values...)
	l := log.L(log.WithLogField(ctx, "diagnostic", id))
	if pdErr, ok := err.(i18n.PDError); ok {
		l = l.WithField("stack", pdErr.StackTrace())
	}
	l.Error(err.Error())
	panic(err)
}
