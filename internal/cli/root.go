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
	"context"

	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/internal/msgs"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/diagconf"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/i18n"
	"github.com/LF-Decentralized-Trust-labs/paladin/diagnostics/pkg/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

type rootOptions struct {
	configFile string
	logLevel   string
	lang       language.Tag
}

// NewRootCommand builds the diagcat command tree. Each call returns an independent tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{lang: i18n.BaseLang}
	rootCmd := &cobra.Command{
		Use:          "diagcat",
		Short:        "Inspect and render the runtime diagnostics catalog",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := log.WithLogField(cmd.Context(), "cmd", cmd.Name())
			cmd.SetContext(ctx)
			return opts.loadConfig(ctx)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level, overriding the configuration (error|warn|info|debug|trace)")

	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newRenderCommand(opts))
	rootCmd.AddCommand(newDocsCommand(opts))
	return rootCmd
}

func (opts *rootOptions) loadConfig(ctx context.Context) error {
	conf := &diagconf.Config{}
	if opts.configFile != "" {
		if err := diagconf.ReadAndParseYAMLFile(ctx, opts.configFile, conf); err != nil {
			return err
		}
	}
	log.InitConfig(&conf.Log)
	if opts.logLevel != "" {
		if !log.IsValidLevel(opts.logLevel) {
			return i18n.NewError(ctx, msgs.MsgCLIInvalidLogLevel, opts.logLevel)
		}
		log.SetLevel(opts.logLevel)
	}

	lang, err := conf.ParseLang(ctx)
	if err != nil {
		return err
	}
	i18n.SetLang(lang.String())
	opts.lang = lang
	log.L(ctx).Debugf("Configuration loaded (file='%s' lang=%s level=%s)", opts.configFile, lang, log.GetLevel())
	return nil
}

// Execute runs the command line, returning any error for the caller to turn into an exit code
func Execute(ctx context.Context, args []string) error {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
