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

// Package diagmsgs is the catalog of diagnostics raised by the runtime's async
// coordination primitives (async results, semaphores, input queues and buffered
// streams) when they detect a broken invariant.
//
// Every diagnostic has a stable identifier, such as "AsyncResultCompletedTwice",
// and a fixed number of substitution values. The catalog is built once while the
// package initializes and is never modified afterwards, so it is safe to resolve
// from any number of goroutines without locking.
package diagmsgs

import (
	"context"
	"fmt"
	"sort"

	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/i18n"
)

// Entry describes one diagnostic in the catalog
type Entry struct {
	ID       string
	Code     i18n.ErrorMessageKey
	Arity    int
	Template string
}

func (e Entry) IsFixed() bool {
	return e.Arity == 0
}

// written only during package initialization
var catalog = map[string]Entry{}

func register(code, id, template string) Entry {
	if _, dup := catalog[id]; dup {
		panic(fmt.Sprintf("duplicate diagnostic identifier %s", id))
	}
	key := pde(code, template)
	arity, _ := i18n.Arity(i18n.MessageKey(key))
	e := Entry{
		ID:       id,
		Code:     key,
		Arity:    arity,
		Template: template,
	}
	if e.IsFixed() {
		// the exported text of a fixed diagnostic is exactly what rendering produces ("%%" included)
		e.Template, _ = i18n.Render(i18n.BaseLang, i18n.MessageKey(key))
	}
	catalog[id] = e
	return e
}

// ContractViolation is a defect in the caller of the catalog: an identifier that does
// not exist, or the wrong number of substitution values for an identifier that does.
type ContractViolation struct {
	ID       string
	Known    bool
	Expected int
	Supplied int
	err      error
}

func newContractViolation(id string, known bool, expected, supplied int) *ContractViolation {
	ctx := i18n.WithLang(context.Background(), i18n.BaseLang)
	cv := &ContractViolation{ID: id, Known: known, Expected: expected, Supplied: supplied}
	if known {
		cv.err = i18n.NewError(ctx, MsgDiagnosticArityMismatch, id, expected, supplied)
	} else {
		cv.err = i18n.NewError(ctx, MsgDiagnosticUnknownID, id)
	}
	return cv
}

func (cv *ContractViolation) Error() string {
	return cv.err.Error()
}

// Unwrap gives access to the coded error, including its stack
func (cv *ContractViolation) Unwrap() error {
	return cv.err
}

func (e Entry) check(supplied int) *ContractViolation {
	if supplied != e.Arity {
		return newContractViolation(e.ID, true, e.Arity, supplied)
	}
	return nil
}

func (e Entry) render(values ...interface{}) (string, error) {
	if cv := e.check(len(values)); cv != nil {
		return "", cv
	}
	if e.IsFixed() {
		return e.Template, nil
	}
	return fmt.Sprintf(e.Template, values...), nil
}

func (e Entry) mustRender(values ...interface{}) string {
	s, err := e.render(values...)
	if err != nil {
		panic(err)
	}
	return s
}

func lookupChecked(id string, supplied int) (Entry, *ContractViolation) {
	e, ok := catalog[id]
	if !ok {
		return Entry{}, newContractViolation(id, false, -1, supplied)
	}
	return e, e.check(supplied)
}

// Lookup returns the catalog entry for an identifier
func Lookup(id string) (Entry, bool) {
	e, ok := catalog[id]
	return e, ok
}

// IsFixed reports whether the identifier is in the catalog and takes no values
func IsFixed(id string) bool {
	e, ok := catalog[id]
	return ok && e.IsFixed()
}

// Entries returns a copy of every entry in the catalog, ordered by code
func Entries() []Entry {
	entries := make([]Entry, 0, len(catalog))
	for _, e := range catalog {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})
	return entries
}

// ResolveFixed returns the text of a diagnostic that takes no values.
// Callers only pass identifiers they know at compile time, so an unknown or
// parameterized identifier is a defect and panics with a *ContractViolation.
func ResolveFixed(id string) string {
	e, cv := lookupChecked(id, 0)
	if cv != nil {
		panic(cv)
	}
	return e.Template
}

// ResolveParameterized renders a diagnostic, substituting the values in order.
// The number of values must match the diagnostic exactly, otherwise a
// *ContractViolation is returned and nothing is rendered.
func ResolveParameterized(id string, values ...interface{}) (string, error) {
	e, cv := lookupChecked(id, len(values))
	if cv != nil {
		return "", cv
	}
	return e.render(values...)
}

// MustResolve is ResolveParameterized, panicking on a contract violation
func MustResolve(id string, values ...interface{}) string {
	s, err := ResolveParameterized(id, values...)
	if err != nil {
		panic(err)
	}
	return s
}

// Localize renders a diagnostic in the language set on the context with i18n.WithLang,
// falling back to the base language where no translation is registered. The server
// default language set by i18n.SetLang is not consulted.
func Localize(ctx context.Context, id string, values ...interface{}) (string, error) {
	e, cv := lookupChecked(id, len(values))
	if cv != nil {
		return "", cv
	}
	lang, ok := i18n.LangFromContext(ctx)
	if !ok {
		lang = i18n.BaseLang
	}
	return i18n.Render(lang, i18n.MessageKey(e.Code), values...)
}
