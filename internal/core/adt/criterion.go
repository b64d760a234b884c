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

// Package adt holds the compiled representation cascade evaluates:
// criteria, properties, rules and namespaces. These types are produced by
// package compile, ordered by package eval's priority sorter, and consumed
// by package eval's evaluator. Nothing outside those three packages (plus
// the root cascade facade) should need to construct adt values directly.
package adt

import (
	"sort"
	"strings"

	"github.com/mpvl/unique"
)

// Identifier is a criterion name together with whether it is negated in
// the rule that references it. Identity is by both fields: `category`
// and `!category` are distinct identifiers that happen to share a Name.
type Identifier struct {
	Name     string
	Negated  bool
}

// Definition is an identifier paired with the single value it was written
// against, e.g. `category-footwear` parses to Definition{Identifier{
// "category", false}, "footwear"}. It exists only transiently during
// compilation; compiled rules hold GroupedCriterion instead.
type Definition struct {
	Identifier Identifier
	Value      string
}

// ParseDefinition parses the textual form `[!]<name>-<value>` into a
// Definition. The first `-` is the name/value separator; a leading or
// trailing `-` means s is not a criterion at all (ok is false, and the
// caller should treat s as an ordinary data field name instead).
func ParseDefinition(s string) (def Definition, ok bool) {
	negated := false
	rest := s
	if strings.HasPrefix(rest, "!") {
		negated = true
		rest = rest[1:]
	}

	i := strings.IndexByte(rest, '-')
	if i <= 0 || strings.HasSuffix(rest, "-") {
		// no separator, or it's a leading/trailing dash: not a criterion.
		return Definition{}, false
	}

	name := rest[:i]
	value := rest[i+1:]
	if name == "" {
		return Definition{}, false
	}

	return Definition{
		Identifier: Identifier{Name: name, Negated: negated},
		Value:      value,
	}, true
}

// GroupedCriterion is an OR-disjunction of values sharing one Identifier.
// It matches iff the caller's predicate for Identifier.Name, applied to
// Values, returns true — XORed with Identifier.Negated.
type GroupedCriterion struct {
	Identifier Identifier
	Values     []string // non-empty, deduplicated, sorted ascending
}

// GroupDefinitions groups a slice of Definitions that may share
// identifiers into one GroupedCriterion per distinct Identifier, in first-
// appearance order.
func GroupDefinitions(defs []Definition) []GroupedCriterion {
	var order []Identifier
	byID := map[Identifier]*GroupedCriterion{}
	for _, d := range defs {
		g, ok := byID[d.Identifier]
		if !ok {
			order = append(order, d.Identifier)
			g = &GroupedCriterion{Identifier: d.Identifier}
			byID[d.Identifier] = g
		}
		g.Values = appendUnique(g.Values, d.Value)
	}
	out := make([]GroupedCriterion, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}

// appendUnique appends v to values, relying on github.com/mpvl/unique to
// sort-and-dedupe the (small) accumulator rather than doing an O(n) scan by
// hand for each insert.
func appendUnique(values []string, v string) []string {
	values = append(values, v)
	sorted := &stringSet{values}
	unique.Sort(sorted)
	return sorted.values
}

// stringSet adapts a []string to github.com/mpvl/unique's Interface (sort
// ordering plus an in-place Truncate once duplicates are known).
type stringSet struct {
	values []string
}

func (s *stringSet) Len() int           { return len(s.values) }
func (s *stringSet) Less(i, j int) bool { return s.values[i] < s.values[j] }
func (s *stringSet) Swap(i, j int)      { s.values[i], s.values[j] = s.values[j], s.values[i] }
func (s *stringSet) Truncate(n int)     { s.values = s.values[:n] }

var _ sort.Interface = (*stringSet)(nil)
