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
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/i18n"
	"golang.org/x/text/language"
)

//revive:disable
var pdc = func(key, description, fieldType string) i18n.ConfigMessageKey {
	return i18n.PDC(language.AmericanEnglish, key, description, fieldType)
}

// diagconf.Config
var (
	ConfigLang = pdc("config.lang", "The language diagnostics are rendered in when no language is requested explicitly", "string")

	ConfigLogLevel        = pdc("config.log.level", "The log level - error, warn, info, debug, trace", "string")
	ConfigLogFormat       = pdc("config.log.format", "The log format - simple, detailed, json", "string")
	ConfigLogOutput       = pdc("config.log.output", "Where logs are written - stdout, stderr, file", "string")
	ConfigLogForceColor   = pdc("config.log.forceColor", "Forces color to be enabled, even if we do not detect a TTY", "boolean")
	ConfigLogDisableColor = pdc("config.log.disableColor", "Forces color to be disabled, even if we detect a TTY", "boolean")
	ConfigLogTimeFormat   = pdc("config.log.timeFormat", "The Go time layout used for log timestamps", "string")
	ConfigLogUTC          = pdc("config.log.utc", "Use UTC timestamps for logs", "boolean")

	ConfigLogFileFilename   = pdc("config.log.file.filename", "The filename logs are written to when output is 'file'", "string")
	ConfigLogFileMaxSize    = pdc("config.log.file.maxSize", "The size at which the log file is rolled", "string (size, such as 100Mb)")
	ConfigLogFileMaxBackups = pdc("config.log.file.maxBackups", "The maximum number of rolled log files to keep", "int")
	ConfigLogFileMaxAge     = pdc("config.log.file.maxAge", "The maximum age of a log file before it is rolled", "string (duration, such as 24h)")
	ConfigLogFileCompress   = pdc("config.log.file.compress", "Compress rolled log files", "boolean")

	ConfigLogJSONTimestampField = pdc("config.log.json.timestampField", "The JSON key containing the timestamp of the log", "string")
	ConfigLogJSONLevelField     = pdc("config.log.json.levelField", "The JSON key containing the log level", "string")
	ConfigLogJSONMessageField   = pdc("config.log.json.messageField", "The JSON key containing the log message", "string")
	ConfigLogJSONFuncField      = pdc("config.log.json.funcField", "The JSON key containing the calling function", "string")
	ConfigLogJSONFileField      = pdc("config.log.json.fileField", "The JSON key containing the calling file", "string")
)

// Reference pages
var (
	ReferenceCatalogTitle         = i18n.PDM(language.AmericanEnglish, "reference.catalog.title", "Runtime Diagnostics")
	ReferenceCatalogIntro         = i18n.PDM(language.AmericanEnglish, "reference.catalog.intro", "Diagnostics raised by the async coordination primitives when they detect a broken invariant. The identifier and the number of values of each diagnostic never change between releases.")
	ReferenceCatalogFixed         = i18n.PDM(language.AmericanEnglish, "reference.catalog.fixed", "Fixed diagnostics")
	ReferenceCatalogParameterized = i18n.PDM(language.AmericanEnglish, "reference.catalog.parameterized", "Parameterized diagnostics")
	ReferenceConfigTitle          = i18n.PDM(language.AmericanEnglish, "reference.config.title", "diagcat configuration")
)
