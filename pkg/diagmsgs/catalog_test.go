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
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// The arity of an identifier is part of its contract with callers, and must never change
var expectedArities = map[string]int{
	"ActionItemIsAlreadyScheduled":            0,
	"AsyncCallbackThrewException":             0,
	"AsyncResultAlreadyEnded":                 0,
	"BufferIsNotRightSizeForBufferManager":    0,
	"InvalidAsyncResult":                      0,
	"InvalidAsyncResultImplementationGeneric": 0,
	"InvalidNullAsyncResult":                  0,
	"InvalidSemaphoreExit":                    0,
	"ReadNotSupported":                        0,
	"SeekNotSupported":                        0,
	"ValueMustBeNonNegative":                  0,
	"AsyncResultCompletedTwice":               0,
	"WriteNotSupported":                       0,
	"SemaphoreAborted":                        0,
	"InputQueueClosed":                        0,
	"ArgumentNullOrEmpty":                     1,
	"BufferedOutputStreamQuotaExceeded":       1,
	"FailFastMessage":                         1,
	"InvalidAsyncResultImplementation":        1,
	"ShipAssertExceptionMessage":              1,
	"TaskTimedOutError":                       1,
	"TimeoutInputQueueDequeue":                1,
	"TimeoutMustBeNonNegative":                2,
	"TimeoutMustBePositive":                   2,
	"AsyncEventArgsCompletedTwice":            1,
	"LockTimeoutExceptionMessage":             1,
	"BufferAllocationFailed":                  1,
}

func TestCatalogArities(t *testing.T) {
	entries := Entries()
	assert.Len(t, entries, len(expectedArities))
	for _, e := range entries {
		expected, ok := expectedArities[e.ID]
		require.True(t, ok, e.ID)
		assert.Equal(t, expected, e.Arity, e.ID)
		assert.Equal(t, expected == 0, IsFixed(e.ID), e.ID)
	}
}

func TestEntriesOrderedByCode(t *testing.T) {
	entries := Entries()
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].Code, entries[i].Code)
	}
	assert.Equal(t, "ActionItemIsAlreadyScheduled", entries[0].ID)
}

func TestEntriesReturnsCopy(t *testing.T) {
	entries := Entries()
	entries[0].Template = "changed"
	e, ok := Lookup(entries[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "changed", e.Template)
}

func TestResolveFixedStable(t *testing.T) {
	for id, arity := range expectedArities {
		if arity != 0 {
			continue
		}
		first := ResolveFixed(id)
		assert.NotEmpty(t, first, id)
		assert.Equal(t, first, ResolveFixed(id), id)
		s, err := ResolveParameterized(id)
		require.NoError(t, err)
		assert.Equal(t, first, s, id)
	}
}

func TestResolveFixedMatchesExportedText(t *testing.T) {
	assert.Equal(t, AsyncResultCompletedTwice.String(), ResolveFixed("AsyncResultCompletedTwice"))
	assert.Equal(t, ReadNotSupported.String(), ResolveFixed("ReadNotSupported"))
	assert.Equal(t, "Seek not supported on this stream", SeekNotSupported.String())
	assert.Equal(t, "Write not supported on this stream", fmt.Sprint(WriteNotSupported))
}

func TestResolveFixedUnknownPanics(t *testing.T) {
	assert.PanicsWithError(t, "PD030900: Diagnostic identifier 'NoSuchDiagnostic' is not in the catalog", func() {
		ResolveFixed("NoSuchDiagnostic")
	})
}

func TestResolveFixedCaseSensitive(t *testing.T) {
	assert.Panics(t, func() {
		ResolveFixed("asyncresultcompletedtwice")
	})
}

func TestResolveFixedParameterizedPanics(t *testing.T) {
	assert.PanicsWithError(t, "PD030901: Diagnostic 'TimeoutMustBePositive' requires 2 substitution values (supplied=0)", func() {
		ResolveFixed("TimeoutMustBePositive")
	})
}

func TestResolveParameterizedAllArities(t *testing.T) {
	for id, arity := range expectedArities {
		values := make([]interface{}, arity)
		for i := range values {
			values[i] = strings.Repeat("v", i+1) + "-insert"
		}
		s, err := ResolveParameterized(id, values...)
		require.NoError(t, err, id)
		last := 0
		for _, v := range values {
			idx := strings.Index(s[last:], v.(string))
			require.GreaterOrEqual(t, idx, 0, "%s: %s", id, s)
			last += idx + len(v.(string))
		}
	}
}

func TestResolveParameterizedQuota(t *testing.T) {
	s, err := ResolveParameterized("BufferedOutputStreamQuotaExceeded", "65536")
	require.NoError(t, err)
	assert.Contains(t, s, "65536")
}

func TestResolveParameterizedTimeoutMustBePositive(t *testing.T) {
	s, err := ResolveParameterized("TimeoutMustBePositive", "timeout", "-5")
	require.NoError(t, err)
	assert.Equal(t, "Argument timeout must be a positive timeout value. The provided value was -5", s)
	assert.Less(t, strings.Index(s, "timeout"), strings.Index(s, "-5"))
}

func TestResolveParameterizedReferentiallyTransparent(t *testing.T) {
	s1, err := ResolveParameterized("TimeoutMustBeNonNegative", "foo", "-1")
	require.NoError(t, err)
	s2, err := ResolveParameterized("TimeoutMustBeNonNegative", "foo", "-1")
	require.NoError(t, err)
	assert.Equal(t, []byte(s1), []byte(s2))
}

func TestResolveParameterizedTooFew(t *testing.T) {
	s, err := ResolveParameterized("TimeoutMustBePositive", "timeout")
	assert.Empty(t, s)
	var cv *ContractViolation
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, "TimeoutMustBePositive", cv.ID)
	assert.True(t, cv.Known)
	assert.Equal(t, 2, cv.Expected)
	assert.Equal(t, 1, cv.Supplied)
	assert.Regexp(t, "PD030901.*TimeoutMustBePositive.*requires 2.*supplied=1", err)
}

func TestResolveParameterizedTooMany(t *testing.T) {
	s, err := ResolveParameterized("BufferedOutputStreamQuotaExceeded", "65536", "extra")
	assert.Empty(t, s)
	var cv *ContractViolation
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, 1, cv.Expected)
	assert.Equal(t, 2, cv.Supplied)
}

func TestResolveParameterizedFixedWithValues(t *testing.T) {
	_, err := ResolveParameterized("ReadNotSupported", "unexpected")
	var cv *ContractViolation
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, 0, cv.Expected)
}

func TestResolveParameterizedUnknown(t *testing.T) {
	s, err := ResolveParameterized("NoSuchDiagnostic", "a")
	assert.Empty(t, s)
	var cv *ContractViolation
	require.ErrorAs(t, err, &cv)
	assert.False(t, cv.Known)
	assert.Equal(t, -1, cv.Expected)

	var pdErr i18n.PDError
	require.True(t, errors.As(err, &pdErr))
	assert.Equal(t, MsgDiagnosticUnknownID, pdErr.MessageKey())
	assert.NotEmpty(t, pdErr.StackTrace())
}

func TestMustResolve(t *testing.T) {
	assert.Equal(t, "The argument buffer is nil or empty", MustResolve("ArgumentNullOrEmpty", "buffer"))
	assert.Panics(t, func() {
		MustResolve("ArgumentNullOrEmpty")
	})
}

// A translation registered by a consuming component, for a region the catalog does not ship
var frTimeoutMustBePositive = i18n.PDE(language.French, "PD030108", "L'argument %v doit être un délai positif. La valeur fournie était %v")

func TestLocalize(t *testing.T) {
	ctx := i18n.WithLang(context.Background(), language.French)
	s, err := Localize(ctx, "TimeoutMustBePositive", "timeout", "-5")
	require.NoError(t, err)
	assert.Equal(t, "L'argument timeout doit être un délai positif. La valeur fournie était -5", s)

	s, err = Localize(ctx, "SeekNotSupported")
	require.NoError(t, err)
	assert.Equal(t, SeekNotSupported.String(), s)

	_, err = Localize(ctx, "TimeoutMustBePositive")
	var cv *ContractViolation
	assert.ErrorAs(t, err, &cv)
}

func TestLocalizeRepeatable(t *testing.T) {
	assert.Equal(t, timeoutMustBePositive.Code, frTimeoutMustBePositive)
	ctx := i18n.WithLang(context.Background(), language.MustParse("fr-CA"))
	for i := 0; i < 2; i++ {
		s, err := Localize(ctx, "TimeoutMustBePositive", "délai", "0s")
		require.NoError(t, err)
		assert.Equal(t, "L'argument délai doit être un délai positif. La valeur fournie était 0s", s)
	}
}

func TestLocalizeIgnoresServerLang(t *testing.T) {
	defer i18n.SetLang("en")
	i18n.SetLang("fr")
	s, err := Localize(context.Background(), "TimeoutMustBePositive", "timeout", "-5")
	require.NoError(t, err)
	assert.Equal(t, "Argument timeout must be a positive timeout value. The provided value was -5", s)
}

func TestDuplicateIdentifierPanics(t *testing.T) {
	assert.Panics(t, func() {
		register("PD030998", "ReadNotSupported", "Read not supported")
	})
}

func TestDuplicateCodePanics(t *testing.T) {
	assert.Panics(t, func() {
		register("PD030008", "SomethingNew", "Read not supported")
	})
}

func TestResolveConcurrent(t *testing.T) {
	expected := MustResolve("TimeoutMustBeNonNegative", "foo", "-1")
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, expected, MustResolve("TimeoutMustBeNonNegative", "foo", "-1"))
			assert.NotEmpty(t, ResolveFixed("InvalidSemaphoreExit"))
		}()
	}
	wg.Wait()
}
