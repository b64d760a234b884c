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

// Command cascade-server exposes a compiled Engine over HTTP: GET
// /namespaces/:namespace/values?key=value&... evaluates that namespace
// against the supplied query-string properties and returns the
// materialized result as JSON.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cascadecfg/cascade/cascade"
	"github.com/cascadecfg/cascade/cmd/cascade-server/internal/httpapi"
	"github.com/cascadecfg/cascade/source"
	"github.com/cascadecfg/cascade/source/tomlsrc"
	"github.com/cascadecfg/cascade/source/yamlsrc"
)

func main() {
	var dir, format, addr string
	var cacheEnabled bool
	flag.StringVar(&dir, "dir", "", "directory of discovered record files")
	flag.StringVar(&format, "format", "yaml", "record format: yaml or toml")
	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.BoolVar(&cacheEnabled, "cache", true, "enable the per-namespace result cache")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	var load source.Loader
	var ext string
	switch format {
	case "yaml", "yml":
		load, ext = yamlsrc.Loader, ".yaml"
	case "toml":
		load, ext = tomlsrc.Loader, ".toml"
	default:
		logger.Fatal("unknown --format", zap.String("format", format))
	}

	if dir == "" {
		logger.Fatal("--dir is required")
	}
	records, err := source.LoadDirectory(dir, ext, load)
	if err != nil {
		logger.Fatal("failed to load records", zap.Error(err))
	}

	engine, err := cascade.New(records)
	if err != nil {
		logger.Fatal("failed to compile engine", zap.Error(err))
	}

	router := httpapi.NewRouter(engine, logger, cacheEnabled)
	logger.Info("listening", zap.String("addr", addr), zap.Int("namespaces", len(engine.Namespaces())))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
