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

package adt

import "fmt"

// ErrorCategory enumerates the fault categories a ConfigError can carry.
// Evaluation itself never produces errors; ValueAbsent comes from the
// query facade's Must* accessors, and the other categories describe
// construction-time problems.
type ErrorCategory int

const (
	// NamespaceShape covers a missing/duplicate namespace declaration or a
	// missing/ill-typed prioritizedCriteria list.
	NamespaceShape ErrorCategory = iota
	// Unnamespaced covers a content record whose namespace was never
	// declared.
	Unnamespaced
	// MalformedCriterion covers an annotation that was expected to parse
	// as `[!]<name>-<value>` and did not.
	MalformedCriterion
	// CriterionNotPrioritized covers a rule that uses a criterion absent
	// from its namespace's prioritizedCriteria.
	CriterionNotPrioritized
	// SubFieldShape covers a list sub-field that doesn't have exactly one
	// field, or whose field isn't value/values, or whose values isn't
	// list-typed.
	SubFieldShape
	// SourceIO covers a file that could not be loaded.
	SourceIO
	// ValueAbsent covers a type adapter's "or-throw" accessor being called
	// on a missing, null, or wrong-kind value. Unlike the categories
	// above, this one is raised during evaluation/query, not compilation.
	ValueAbsent
)

func (c ErrorCategory) String() string {
	switch c {
	case NamespaceShape:
		return "namespace shape"
	case Unnamespaced:
		return "unnamespaced"
	case MalformedCriterion:
		return "malformed criterion"
	case CriterionNotPrioritized:
		return "criterion not in priorities"
	case SubFieldShape:
		return "sub-field shape"
	case SourceIO:
		return "source I/O"
	case ValueAbsent:
		return "value absent"
	}
	return "unknown"
}

// ConfigError is the single fault kind cascade raises, emitted for every
// construction-time problem. It names the offending record and, where
// applicable, the offending field or value.
type ConfigError struct {
	Category ErrorCategory
	Record   string
	Path     []string // field-name path within Record, outermost first
	Detail   string
}

func (e *ConfigError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("%s: record %q: %s", e.Category, e.Record, e.Detail)
	}
	return fmt.Sprintf("%s: record %q, field %q: %s", e.Category, e.Record, pathString(e.Path), e.Detail)
}

func pathString(path []string) string {
	s := path[0]
	for _, p := range path[1:] {
		s += "." + p
	}
	return s
}

// ErrorList collects every ConfigError found during a single compilation, so
// construction can report all problems at once while still being
// all-or-nothing.
type ErrorList struct {
	Errors []*ConfigError
}

func (l *ErrorList) Add(err *ConfigError) {
	l.Errors = append(l.Errors, err)
}

func (l *ErrorList) HasErrors() bool { return len(l.Errors) > 0 }

func (l *ErrorList) Error() string {
	if len(l.Errors) == 0 {
		return "<no errors>"
	}
	if len(l.Errors) == 1 {
		return l.Errors[0].Error()
	}
	s := fmt.Sprintf("%d configuration errors:", len(l.Errors))
	for _, e := range l.Errors {
		s += "\n  - " + e.Error()
	}
	return s
}

// AsError returns l as an error, or nil if l has no errors. Mirrors the
// errors.Append/nil-means-ok convention cascade's compiler is built on.
func (l *ErrorList) AsError() error {
	if !l.HasErrors() {
		return nil
	}
	return l
}
