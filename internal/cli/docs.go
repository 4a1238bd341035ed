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

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/internal/msgs"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/i18n"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/log"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/reference"
	"github.com/spf13/cobra"
)

func newDocsCommand(opts *rootOptions) *cobra.Command {
	var outputDir string
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Write the Markdown reference for the catalog and the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := i18n.WithLang(cmd.Context(), opts.lang)
			pages, err := reference.GenerateReferenceMarkdown(ctx, outputDir)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return i18n.WrapError(ctx, err, msgs.MsgReferenceWriteFailed, outputDir)
			}

			paths := make([]string, 0, len(pages))
			for path := range pages {
				paths = append(paths, path)
			}
			sort.Strings(paths)
			for _, path := range paths {
				if log.IsTraceEnabled() {
					log.L(ctx).Tracef("Writing %d bytes to %s", len(pages[path]), path)
				}
				if err := os.WriteFile(path, pages[path], 0644); err != nil {
					return i18n.WrapError(ctx, err, msgs.MsgReferenceWriteFailed, path)
				}
				fmt.Fprintln(cmd.OutOrStdout(), filepath.Clean(path))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory the pages are written to")
	return cmd
}
