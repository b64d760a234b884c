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

	"github.com/cascadecfg/cascade/cascade"
	"github.com/cascadecfg/cascade/source"
	"github.com/cascadecfg/cascade/source/tomlsrc"
	"github.com/cascadecfg/cascade/source/yamlsrc"
)

func loader() (source.Loader, string, error) {
	switch loaderName.String() {
	case "yaml", "yml":
		return yamlsrc.Loader, ".yaml", nil
	case "toml":
		return tomlsrc.Loader, ".toml", nil
	default:
		return nil, "", fmt.Errorf("unknown --format %q (want yaml or toml)", loaderName)
	}
}

// loadEngine reads records from --dir and/or --file and compiles them.
func loadEngine() (*cascade.Engine, error) {
	load, ext, err := loader()
	if err != nil {
		return nil, err
	}

	var records []cascade.Record
	if inputDir != "" {
		recs, err := source.LoadDirectory(inputDir, ext, load)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", inputDir, err)
		}
		records = append(records, recs...)
	}
	if len(inputFiles) > 0 {
		recs, err := source.LoadFiles(inputFiles, load)
		if err != nil {
			return nil, fmt.Errorf("loading files: %w", err)
		}
		records = append(records, recs...)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no input: pass --dir or --file")
	}

	return cascade.New(records)
}
