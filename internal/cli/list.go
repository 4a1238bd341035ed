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
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/internal/msgs"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/diagmsgs"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/i18n"
	"github.com/spf13/cobra"
)

type listItem struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Arity    int    `json:"arity"`
	Template string `json:"template"`
}

func newListCommand() *cobra.Command {
	var kind, output string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the diagnostics in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var include func(e diagmsgs.Entry) bool
			switch kind {
			case "all":
				include = func(e diagmsgs.Entry) bool { return true }
			case "fixed":
				include = func(e diagmsgs.Entry) bool { return e.IsFixed() }
			case "parameterized":
				include = func(e diagmsgs.Entry) bool { return !e.IsFixed() }
			default:
				return i18n.NewError(ctx, msgs.MsgCLIInvalidListKind, kind)
			}

			items := []*listItem{}
			for _, e := range diagmsgs.Entries() {
				if include(e) {
					items = append(items, &listItem{
						ID:       e.ID,
						Code:     string(e.Code),
						Arity:    e.Arity,
						Template: e.Template,
					})
				}
			}

			switch output {
			case "text":
				return writeListText(cmd.OutOrStdout(), items)
			case "json":
				b, err := json.MarshalIndent(items, "", "  ")
				if err != nil {
					return i18n.WrapError(ctx, err, msgs.MsgCLIMarshalFailed)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return err
			default:
				return i18n.NewError(ctx, msgs.MsgCLIInvalidOutputFormat, output)
			}
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "all", "which diagnostics to list (fixed|parameterized|all)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text|json)")
	return cmd
}

func writeListText(w io.Writer, items []*listItem) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tID\tVALUES\tTEMPLATE")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", item.Code, item.ID, item.Arity, item.Template)
	}
	return tw.Flush()
}
