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

	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/internal/msgs"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/diagmsgs"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/i18n"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

func newRenderCommand(opts *rootOptions) *cobra.Command {
	var lang string
	var withCode bool
	cmd := &cobra.Command{
		Use:   "render <id> [values...]",
		Short: "Render a diagnostic, substituting the values in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tag := opts.lang
			if lang != "" {
				var err error
				if tag, err = language.Parse(lang); err != nil {
					return i18n.WrapError(ctx, err, msgs.MsgConfigInvalidLang, lang)
				}
			}

			id := args[0]
			values := make([]interface{}, len(args)-1)
			for i, v := range args[1:] {
				values[i] = v
			}
			if log.IsDebugEnabled() {
				log.L(log.WithLogField(ctx, "diagnostic", id)).Debugf("Rendering with %d values in %s", len(values), tag)
			}
			text, err := diagmsgs.Localize(i18n.WithLang(ctx, tag), id, values...)
			if err != nil {
				return err
			}
			if withCode {
				e, _ := diagmsgs.Lookup(id)
				text = fmt.Sprintf("%s: %s", e.Code, text)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "language to render in (defaults to the configured language)")
	cmd.Flags().BoolVar(&withCode, "code", false, "prefix the text with the diagnostic code")
	return cmd
}
