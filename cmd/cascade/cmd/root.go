// Copyright 2026 The Cascade Authors
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

// Package cmd implements the cascade CLI's subcommands.
package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	inputDir   string
	inputFiles []string
	loaderName = newFormatFlag()
	jsonOutput bool

	logger *zap.Logger
)

// formatFlag is a pflag.Value restricting --format to the loaders cascade
// actually ships (yaml, toml), rejecting anything else at parse time
// rather than at load time.
type formatFlag struct{ value string }

func newFormatFlag() *formatFlag { return &formatFlag{value: "yaml"} }

func (f *formatFlag) String() string { return f.value }

func (f *formatFlag) Set(s string) error {
	switch s {
	case "yaml", "yml", "toml":
		f.value = s
		return nil
	default:
		return fmt.Errorf("must be one of: yaml, toml")
	}
}

func (f *formatFlag) Type() string { return "format" }

var _ pflag.Value = (*formatFlag)(nil)

var rootCmd = &cobra.Command{
	Use:   "cascade",
	Short: "Evaluate cascading configuration namespaces",
	Long: `cascade compiles a directory or list of records into namespaces of
prioritized rules, then evaluates one against supplied property values.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if jsonOutput || !isatty.IsTerminal(os.Stdout.Fd()) {
			logger, err = zap.NewProduction()
		} else {
			cfg := zap.NewDevelopmentConfig()
			cfg.DisableStacktrace = true
			logger, err = cfg.Build()
		}
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			_ = logger.Sync()
		}
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&inputDir, "dir", "", "directory of discovered record files")
	rootCmd.PersistentFlags().StringSliceVar(&inputFiles, "file", nil, "explicit record file (repeatable)")
	rootCmd.PersistentFlags().Var(loaderName, "format", "record format: yaml or toml")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "machine-readable output")
}
