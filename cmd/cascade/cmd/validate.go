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
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var okStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6ad46a"))

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Compile the input and report errors without evaluating",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("ok")+": "+fmt.Sprintf("%d namespace(s) declared", len(engine.Namespaces())))
		for _, n := range engine.Namespaces() {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
