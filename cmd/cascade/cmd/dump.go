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

	"github.com/spf13/cobra"

	"github.com/cascadecfg/cascade/cascade"
)

var dumpNamespace string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print a namespace's compiled, prioritized rule vector",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		if !engine.HasNamespace(dumpNamespace) {
			return fmt.Errorf("namespace %q was never declared", dumpNamespace)
		}
		q := cascade.NewQuery(engine, dumpNamespace)
		fmt.Fprintln(cmd.OutOrStdout(), q.Dump())
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpNamespace, "namespace", "", "namespace to dump (required)")
	_ = dumpCmd.MarkFlagRequired("namespace")
	rootCmd.AddCommand(dumpCmd)
}
