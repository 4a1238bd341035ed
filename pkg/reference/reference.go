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

package reference

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/internal/msgs"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/diagconf"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/diagmsgs"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/i18n"
)

const (
	CatalogPageName = "diagnostics.md"
	ConfigPageName  = "config.md"
)

// GenerateReferenceMarkdown builds every reference page, keyed by its path under outputPath
func GenerateReferenceMarkdown(ctx context.Context, outputPath string) (map[string][]byte, error) {
	configPage, err := GenerateConfigMarkdown(ctx)
	if err != nil {
		return nil, err
	}
	return map[string][]byte{
		filepath.Join(outputPath, CatalogPageName): GenerateCatalogMarkdown(ctx),
		filepath.Join(outputPath, ConfigPageName):  configPage,
	}, nil
}

func generatePageHeader(pageTitle string) string {
	return fmt.Sprintf(`---
title: %s
---
`, pageTitle)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

// GenerateCatalogMarkdown lists every diagnostic in the catalog, with the base language template
func GenerateCatalogMarkdown(ctx context.Context) []byte {
	b := bytes.NewBufferString(generatePageHeader(i18n.Expand(ctx, msgs.ReferenceCatalogTitle)))
	b.WriteString(fmt.Sprintf("\n%s\n", i18n.Expand(ctx, msgs.ReferenceCatalogIntro)))

	var fixed, parameterized []diagmsgs.Entry
	for _, e := range diagmsgs.Entries() {
		if e.IsFixed() {
			fixed = append(fixed, e)
		} else {
			parameterized = append(parameterized, e)
		}
	}

	b.WriteString(fmt.Sprintf("\n## %s\n\n", i18n.Expand(ctx, msgs.ReferenceCatalogFixed)))
	b.WriteString("| Code | Identifier | Text |\n")
	b.WriteString("|------|------------|------|\n")
	for _, e := range fixed {
		b.WriteString(fmt.Sprintf("| `%s` | `%s` | %s |\n", e.Code, e.ID, escapeCell(e.Template)))
	}

	b.WriteString(fmt.Sprintf("\n## %s\n\n", i18n.Expand(ctx, msgs.ReferenceCatalogParameterized)))
	b.WriteString("| Code | Identifier | Values | Template |\n")
	b.WriteString("|------|------------|--------|----------|\n")
	for _, e := range parameterized {
		b.WriteString(fmt.Sprintf("| `%s` | `%s` | %d | %s |\n", e.Code, e.ID, e.Arity, escapeCell(e.Template)))
	}
	return b.Bytes()
}

// GenerateConfigMarkdown documents every field of the YAML configuration file.
// Every field must have a registered description under "config.<json path>".
func GenerateConfigMarkdown(ctx context.Context) ([]byte, error) {
	b := bytes.NewBufferString(generatePageHeader(i18n.Expand(ctx, msgs.ReferenceConfigTitle)))
	if err := writeConfigSection(ctx, b, "config", reflect.TypeOf(diagconf.Config{})); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func writeConfigSection(ctx context.Context, b *bytes.Buffer, path string, t reflect.Type) error {
	var nested []reflect.StructField
	tableBuff := bytes.NewBuffer([]byte{})
	tableBuff.WriteString("| Key | Description | Type |\n")
	tableBuff.WriteString("|-----|-------------|------|\n")
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" || jsonTag == "-" {
			continue
		}
		jsonFieldName := strings.Split(jsonTag, ",")[0]
		messageKeyName := fmt.Sprintf("%s.%s", path, jsonFieldName)

		fieldType := field.Type
		if fieldType.Kind() == reflect.Ptr {
			fieldType = fieldType.Elem()
		}
		if fieldType.Kind() == reflect.Struct {
			nested = append(nested, field)
			continue
		}

		description := i18n.Expand(ctx, i18n.MessageKey(messageKeyName))
		if description == messageKeyName {
			return i18n.NewError(ctx, msgs.MsgReferenceMissingDescription, messageKeyName)
		}
		typeName, ok := i18n.GetFieldType(messageKeyName)
		if !ok {
			typeName = fieldType.Name()
		}
		tableBuff.WriteString(fmt.Sprintf("| `%s` | %s | `%s` |\n", jsonFieldName, escapeCell(description), typeName))
	}

	b.WriteString(fmt.Sprintf("\n## %s\n\n", path))
	b.Write(tableBuff.Bytes())

	for _, field := range nested {
		fieldType := field.Type
		if fieldType.Kind() == reflect.Ptr {
			fieldType = fieldType.Elem()
		}
		jsonFieldName := strings.Split(field.Tag.Get("json"), ",")[0]
		if err := writeConfigSection(ctx, b, fmt.Sprintf("%s.%s", path, jsonFieldName), fieldType); err != nil {
			return err
		}
	}
	return nil
}
