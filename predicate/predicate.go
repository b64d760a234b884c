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

// Package predicate defines the matching function evaluated against each
// grouped criterion during a cascade.
package predicate

import "github.com/cascadecfg/cascade/value"

// A Predicate decides whether a grouped criterion matches, given the set
// of OR'd values the rule's grouped criterion lists for that criterion's
// name. It need not be
// pure: the evaluator calls it at most once per grouped criterion
// encountered during a rule scan.
type Predicate func(value.Set) bool

// Equals returns a Predicate that matches when the criterion's value set
// contains v — the constructor values_for_properties uses internally for its
// per-key equality sugar.
func Equals(v string) Predicate {
	return func(s value.Set) bool { return s.Contains(v) }
}

// Intersects returns a Predicate that matches when the criterion's value
// set shares at least one element with values.
func Intersects(values ...string) Predicate {
	want := value.NewSet(values...)
	return func(s value.Set) bool { return s.Intersects(want) }
}

// Func returns a Predicate that matches when any element of the
// criterion's value set satisfies f.
func Func(f func(string) bool) Predicate {
	return func(s value.Set) bool { return s.Any(f) }
}

// FromProperties builds the predicate map values_for_properties needs:
// one Equals predicate per supplied key/value.
func FromProperties(properties map[string]string) map[string]Predicate {
	out := make(map[string]Predicate, len(properties))
	for k, v := range properties {
		out[k] = Equals(v)
	}
	return out
}
