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

package diagconf

import (
	"context"
	"os"

	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/internal/msgs"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/confutil"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/i18n"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/log"
	"golang.org/x/text/language"

	"sigs.k8s.io/yaml" // because it supports JSON tags
)

type Config struct {
	// the language diagnostics are rendered in by default
	Lang *string    `json:"lang"`
	Log  log.Config `json:"log"`
}

var Defaults = &Config{
	Lang: confutil.P("en-US"),
	Log:  *log.Defaults,
}

func ReadAndParseYAMLFile(ctx context.Context, filePath string, config interface{}) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return i18n.NewError(ctx, msgs.MsgConfigFileMissing, filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return i18n.NewError(ctx, msgs.MsgConfigFileReadError, filePath, err.Error())
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return i18n.NewError(ctx, msgs.MsgConfigFileParseError, filePath, err.Error())
	}

	return nil
}

// ParseLang returns the configured language, checking it is a well formed BCP 47 tag
func (c *Config) ParseLang(ctx context.Context) (language.Tag, error) {
	lang := confutil.StringNotEmpty(c.Lang, *Defaults.Lang)
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und, i18n.WrapError(ctx, err, msgs.MsgConfigInvalidLang, lang)
	}
	return tag, nil
}
