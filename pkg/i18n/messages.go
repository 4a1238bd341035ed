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

// Package i18n is a registry of language-tagged message templates.
//
// Messages are registered once, normally from package level var blocks, under
// a stable key. Error keys carry a code prefix (PD, or one registered with
// RegisterPrefix) so every error surfaced to a user can be traced back to the
// component that declared it. The number of inserts a message expects is derived
// from its base template, and every translation must agree with it.
package i18n

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/text/language"
)

// MessageKey is the key of any registered message
type MessageKey string

// ErrorMessageKey is the key of a registered error message, which must have a registered prefix
type ErrorMessageKey MessageKey

// ConfigMessageKey is the key of a registered config field description
type ConfigMessageKey MessageKey

// BaseLang is the language every message must be registered in first
var BaseLang = language.AmericanEnglish

type ctxLangKey struct{}

type message struct {
	template string
	arity    int
}

var (
	registryLock sync.RWMutex
	translations = map[language.Tag]map[string]*message{}
	arities      = map[string]int{}
	statusHints  = map[string]int{}
	fieldTypes   = map[string]string{}
	prefixes     = map[string]string{
		"PD": "Paladin",
	}

	serverLang atomic.Pointer[language.Tag]

	prefixRegexp = regexp.MustCompile(`^[A-Z][A-Z0-9]{3}$`)
)

// RegisterPrefix allows a component to register its own 4 character error code prefix,
// such as "AB12", so its codes can be told apart from every other component's.
func RegisterPrefix(prefix, description string) {
	if !prefixRegexp.MatchString(prefix) {
		panic(fmt.Sprintf("invalid error code prefix '%s' for '%s'", prefix, description))
	}
	registryLock.Lock()
	defer registryLock.Unlock()
	if existing, ok := prefixes[prefix]; ok {
		panic(fmt.Sprintf("error code prefix '%s' already registered for '%s'", prefix, existing))
	}
	prefixes[prefix] = description
}

func hasRegisteredPrefix(key string) bool {
	for prefix := range prefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// must be called with the write lock held
func register(lang language.Tag, key, template string) {
	arity := countInserts(template)
	if lang == BaseLang {
		for otherLang, msgs := range translations {
			if msg, ok := msgs[key]; ok && otherLang != BaseLang && msg.arity != arity {
				panic(fmt.Sprintf("translation of message key %s for %s has %d inserts (base language has %d)", key, otherLang, msg.arity, arity))
			}
		}
	} else if baseArity, ok := arities[key]; ok && baseArity != arity {
		panic(fmt.Sprintf("translation of message key %s for %s has %d inserts (base language has %d)", key, lang, arity, baseArity))
	}
	msgs := translations[lang]
	if msgs == nil {
		msgs = map[string]*message{}
		translations[lang] = msgs
	}
	if _, dup := msgs[key]; dup {
		panic(fmt.Sprintf("duplicate message key %s for language %s", key, lang))
	}
	msgs[key] = &message{template: template, arity: arity}
	if lang == BaseLang {
		arities[key] = arity
	}
}

// PDE registers an error message. The optional status hint is the HTTP status code errors
// built from this message report, defaulting to 500.
func PDE(lang language.Tag, key, translation string, statusHint ...int) ErrorMessageKey {
	registryLock.Lock()
	defer registryLock.Unlock()
	if !hasRegisteredPrefix(key) {
		panic(fmt.Sprintf("message key %s does not have a registered prefix", key))
	}
	register(lang, key, translation)
	if len(statusHint) > 0 {
		statusHints[key] = statusHint[0]
	}
	return ErrorMessageKey(key)
}

// PDM registers a general (non-error) message
func PDM(lang language.Tag, key, translation string) MessageKey {
	registryLock.Lock()
	defer registryLock.Unlock()
	register(lang, key, translation)
	return MessageKey(key)
}

// PDC registers the description of a config field, along with a description of its type
func PDC(lang language.Tag, key, description, fieldType string) ConfigMessageKey {
	registryLock.Lock()
	defer registryLock.Unlock()
	register(lang, key, description)
	fieldTypes[key] = fieldType
	return ConfigMessageKey(key)
}

// SetLang sets the default language used when the context does not carry one
func SetLang(lang string) {
	tag := language.Make(lang)
	serverLang.Store(&tag)
}

// WithLang returns a context that expands messages in the given language
func WithLang(ctx context.Context, lang language.Tag) context.Context {
	return context.WithValue(ctx, ctxLangKey{}, lang)
}

// LangFromContext returns the language explicitly set on the context, if any
func LangFromContext(ctx context.Context) (language.Tag, bool) {
	lang, ok := ctx.Value(ctxLangKey{}).(language.Tag)
	return lang, ok
}

func defaultLang() language.Tag {
	if lang := serverLang.Load(); lang != nil {
		return *lang
	}
	return BaseLang
}

// lookup finds the template for the key, walking from the requested language through its
// parents, and finally to the base language.
func lookup(lang language.Tag, key string) (*message, bool) {
	registryLock.RLock()
	defer registryLock.RUnlock()
	for tag := lang; ; {
		if msg, ok := translations[tag][key]; ok {
			return msg, true
		}
		parent := tag.Parent()
		if parent == tag {
			break
		}
		tag = parent
	}
	msg, ok := translations[BaseLang][key]
	return msg, ok
}

// Arity returns the number of inserts the message expects
func Arity(key MessageKey) (int, bool) {
	registryLock.RLock()
	defer registryLock.RUnlock()
	arity, ok := arities[string(key)]
	return arity, ok
}

// Render expands the message strictly, in the given language. Unlike Expand it never
// produces a partial rendering: an unknown key, or a number of inserts that does not match
// the message, is returned as an error.
func Render(lang language.Tag, key MessageKey, inserts ...interface{}) (string, error) {
	msg, ok := lookup(lang, string(key))
	if !ok {
		return "", &UnknownKeyError{Key: key}
	}
	if len(inserts) != msg.arity {
		return "", &ArityError{Key: key, Expected: msg.arity, Supplied: len(inserts)}
	}
	return fmt.Sprintf(msg.template, inserts...), nil
}

// RenderWithCode is Render, prefixed with the message key
func RenderWithCode(lang language.Tag, key MessageKey, inserts ...interface{}) (string, error) {
	s, err := Render(lang, key, inserts...)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s", key, s), nil
}

func ctxLang(ctx context.Context) language.Tag {
	if lang, ok := LangFromContext(ctx); ok {
		return lang
	}
	return defaultLang()
}

// Expand renders the message in the language of the context, falling back to the default
// language. Unknown keys are treated as the template itself.
func Expand(ctx context.Context, key MessageKey, inserts ...interface{}) string {
	template := string(key)
	if msg, ok := lookup(ctxLang(ctx), string(key)); ok {
		template = msg.template
	}
	return fmt.Sprintf(template, inserts...)
}

// ExpandWithCode is Expand, prefixed with the message key
func ExpandWithCode(ctx context.Context, key MessageKey, inserts ...interface{}) string {
	return fmt.Sprintf("%s: %s", key, Expand(ctx, key, inserts...))
}

// GetStatusHint returns the HTTP status code registered against an error message key
func GetStatusHint(code string) (int, bool) {
	registryLock.RLock()
	defer registryLock.RUnlock()
	i, ok := statusHints[code]
	return i, ok
}

// GetFieldType returns the field type registered against a config message key
func GetFieldType(key string) (string, bool) {
	registryLock.RLock()
	defer registryLock.RUnlock()
	t, ok := fieldTypes[key]
	return t, ok
}

// UnknownKeyError is returned by Render for a key that is not registered
type UnknownKeyError struct {
	Key MessageKey
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("message key %s is not registered", e.Key)
}

// ArityError is returned by Render when the inserts do not match the message
type ArityError struct {
	Key      MessageKey
	Expected int
	Supplied int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("message key %s requires %d inserts (supplied=%d)", e.Key, e.Expected, e.Supplied)
}
