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

// Command cascade is the reference CLI: it loads a directory or list of
// files into an Engine and either evaluates a namespace against supplied
// properties, validates the input without evaluating, or dumps a
// namespace's compiled, prioritized rule vector for debugging.
package main

import (
	"fmt"
	"os"

	"github.com/cascadecfg/cascade/cmd/cascade/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
