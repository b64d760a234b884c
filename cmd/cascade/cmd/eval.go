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

package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	evalNamespace string
	evalProps     []string
)

var fieldNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8fa8c8"))

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a namespace against property values",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		if !engine.HasNamespace(evalNamespace) {
			return fmt.Errorf("namespace %q was never declared", evalNamespace)
		}

		props, err := parseProps(evalProps)
		if err != nil {
			return err
		}

		result := engine.ValuesForProperties(evalNamespace, props)
		logger.Debug("evaluated namespace", zapFields(evalNamespace, props)...)

		if jsonOutput {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		names := make([]string, 0, len(result))
		for k := range result {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", fieldNameStyle.Render(n), result[n].String())
		}
		return nil
	},
}

func parseProps(raw []string) (map[string]string, error) {
	out := make(map[string]string, len(raw))
	for _, p := range raw {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --prop %q (want key=value)", p)
		}
		out[k] = v
	}
	return out, nil
}

func init() {
	evalCmd.Flags().StringVar(&evalNamespace, "namespace", "", "namespace to evaluate (required)")
	evalCmd.Flags().StringSliceVar(&evalProps, "prop", nil, "key=value property (repeatable)")
	_ = evalCmd.MarkFlagRequired("namespace")
	rootCmd.AddCommand(evalCmd)
}
