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

// Package source defines the engine's only input contract: an ordered
// stream of named, already-parsed value.Value records, plus the pure
// file-discovery policy a directory-backed source follows.
//
// Actually reading bytes off disk and deserializing them into a
// value.Value is out of scope for the core engine; this package supplies
// the discovery *policy* (which files, in which order) and a Loader seam
// callers plug a real deserializer into. See source/yamlsrc and
// source/tomlsrc for two reference loaders.
package source

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/cascadecfg/cascade/internal/core/compile"
	"github.com/cascadecfg/cascade/value"
)

// Record is the engine's unit of input: an opaque name (used only in
// error messages) and its parsed data-tree value.
type Record = compile.Record

// Loader deserializes the file at path into a Value. Real Ion parsing is
// out of scope for this module; callers supply whichever loader matches
// their on-disk format (see yamlsrc.Loader, tomlsrc.Loader) or their own.
type Loader func(path string) (value.Value, error)

// DiscoverFiles lists the files directly inside dir whose extension is
// exactly ext (e.g. ".yaml", ".toml"), in ascending filename order, for
// deterministic load; others are silently ignored. It does not descend
// into subdirectories and does not read file contents.
func DiscoverFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) != ext {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// LoadDirectory discovers files in dir with extension ext (DiscoverFiles)
// and loads each with load, returning one Record per file, named by its
// path. A load failure for any file aborts immediately and is returned as
// the loader's raw error; this function does not convert it into an
// *adt.ConfigError, and neither does package cascade.
func LoadDirectory(dir, ext string, load Loader) ([]Record, error) {
	paths, err := DiscoverFiles(dir, ext)
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(paths))
	for _, p := range paths {
		v, err := load(p)
		if err != nil {
			return nil, err
		}
		records = append(records, Record{Name: p, Value: v})
	}
	return records, nil
}

// LoadFiles loads an explicit, caller-ordered list of files — no
// discovery, no sorting.
func LoadFiles(paths []string, load Loader) ([]Record, error) {
	records := make([]Record, 0, len(paths))
	for _, p := range paths {
		v, err := load(p)
		if err != nil {
			return nil, err
		}
		records = append(records, Record{Name: p, Value: v})
	}
	return records, nil
}
