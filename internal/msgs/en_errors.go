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

package msgs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/i18n"
	"golang.org/x/text/language"
)

const diagcatPrefix = "PD04"

var registered sync.Once
var pde = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	registered.Do(func() {
		i18n.RegisterPrefix(diagcatPrefix, "Diagnostics Catalog Tool")
	})
	if !strings.HasPrefix(key, diagcatPrefix) {
		panic(fmt.Errorf("must have prefix '%s': %s", diagcatPrefix, key))
	}
	return i18n.PDE(language.AmericanEnglish, key, translation, statusHint...)
}

var (
	// Config PD0400XX
	MsgConfigFileMissing    = pde("PD040000", "Config file not found at path: %s")
	MsgConfigFileReadError  = pde("PD040001", "Failed to read config file %s with error: %s")
	MsgConfigFileParseError = pde("PD040002", "Failed to parse config file %s with error: %s")
	MsgConfigInvalidLang    = pde("PD040003", "Invalid language tag '%s'", 400)

	// CLI PD0401XX
	MsgCLIInvalidListKind     = pde("PD040100", "Invalid kind '%s' (must be one of 'fixed','parameterized','all')", 400)
	MsgCLIInvalidOutputFormat = pde("PD040101", "Invalid output format '%s' (must be one of 'text','json')", 400)
	MsgCLIMarshalFailed       = pde("PD040102", "Failed to serialize output")
	MsgCLIInvalidLogLevel     = pde("PD040103", "Invalid log level '%s' (must be one of 'error','warn','info','debug','trace')", 400)

	// Reference PD0402XX
	MsgReferenceMissingDescription = pde("PD040200", "Missing description for config field '%s'")
	MsgReferenceWriteFailed        = pde("PD040201", "Failed to write reference page '%s'")
)
