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

// Package cascade is the query facade: it compiles records into an
// immutable Engine and evaluates namespaces against criterion values or
// custom predicates, honoring specificity-based priority.
//
// The engine itself never parses bytes or touches the filesystem — see
// package source for the pluggable record-source/loader seam — and it
// never logs; both are external concerns left to callers.
package cascade

import (
	"sort"

	"github.com/cascadecfg/cascade/internal/core/adt"
	"github.com/cascadecfg/cascade/internal/core/compile"
	"github.com/cascadecfg/cascade/internal/core/eval"
	"github.com/cascadecfg/cascade/predicate"
)

// Record is one compiler input: an opaque name (used only in error
// messages) and its parsed data-tree value.
type Record = compile.Record

// Engine is a compiled, immutable set of namespaces. It is safe for
// concurrent use by multiple goroutines without external synchronization
// once New returns: nothing about it mutates again.
type Engine struct {
	namespaces map[string]*adt.Namespace
}

// New compiles records into an Engine. Compilation is one-shot and
// all-or-nothing: on any problem it returns a non-nil *ConfigError-bearing
// error (in practice an *adt.ErrorList, which formats every problem
// found) and a nil Engine.
func New(records []Record) (*Engine, error) {
	namespaces, err := compile.Compile(records)
	if err != nil {
		return nil, err
	}
	for _, ns := range namespaces {
		eval.Prepare(ns)
	}
	return &Engine{namespaces: namespaces}, nil
}

// Namespaces returns the declared namespace names, sorted.
func (e *Engine) Namespaces() []string {
	names := make([]string, 0, len(e.namespaces))
	for n := range e.namespaces {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// HasNamespace reports whether name was declared.
func (e *Engine) HasNamespace(name string) bool {
	_, ok := e.namespaces[name]
	return ok
}

// ValuesForProperties is values_for_properties: sugar for
// ValuesForPredicates with one equality predicate per supplied key/value.
// A namespace that was never declared yields an empty Result.
func (e *Engine) ValuesForProperties(namespace string, properties map[string]string) Result {
	return e.ValuesForPredicates(namespace, predicate.FromProperties(properties))
}

// ValuesForPredicates is values_for_predicates: scans the namespace's
// compiled rules in priority order and returns the resulting
// field→Value map. Evaluation never fails: a missing namespace returns an
// empty Result, a missing field is simply absent from it, and a missing
// predicate defaults to always-false.
func (e *Engine) ValuesForPredicates(namespace string, predicates map[string]predicate.Predicate) Result {
	ns, ok := e.namespaces[namespace]
	if !ok {
		return Result{}
	}
	return Result(eval.ValuesForPredicates(ns, predicates))
}

// namespace exposes the compiled *adt.Namespace for package-internal
// collaborators (Query.Dump's debug output).
func (e *Engine) namespace(name string) (*adt.Namespace, bool) {
	ns, ok := e.namespaces[name]
	return ns, ok
}
