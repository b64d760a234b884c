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

// Namespace is a named, ordered list of criterion names
// (PrioritizedCriteria) together with the top-level rules compiled for it.
// The index of a name in PrioritizedCriteria is its priority rank (0 =
// lowest). A Namespace owns its Rules vector and, transitively, every
// sub-rule vector reachable from a DynamicStruct or DynamicSubField
// Property within it.
type Namespace struct {
	Name                string
	PrioritizedCriteria []string

	// Rules is the top-level rule vector for this namespace.
	Rules []*Rule

	// Registered holds every rule vector the compiler produced for this
	// namespace — Rules itself plus the body of every nested DynamicStruct
	// and DynamicSubField Property — so the priority sorter (package eval)
	// can sort each of them in one pass after compilation finishes. Each
	// entry is a pointer to the slice header so the sorter can drop
	// elided (empty) rules in place.
	Registered []*[]*Rule

	// ranks maps a prioritized criterion name to its index in
	// PrioritizedCriteria, built once at construction for O(1) lookups.
	ranks map[string]int
}

// NewNamespace returns a Namespace with the given name and priority list.
func NewNamespace(name string, prioritizedCriteria []string) *Namespace {
	ns := &Namespace{Name: name, PrioritizedCriteria: prioritizedCriteria}
	ns.ranks = make(map[string]int, len(prioritizedCriteria))
	for i, c := range prioritizedCriteria {
		ns.ranks[c] = i
	}
	return ns
}

// Rank returns the priority rank of criterion name and whether it is
// declared in this namespace's PrioritizedCriteria.
func (ns *Namespace) Rank(name string) (int, bool) {
	r, ok := ns.ranks[name]
	return r, ok
}

// NumCriteria returns the size of PrioritizedCriteria (P in the
// specificity scoring formula).
func (ns *Namespace) NumCriteria() int { return len(ns.PrioritizedCriteria) }

// Register records a rule vector produced somewhere within ns so the
// priority sorter will visit it.
func (ns *Namespace) Register(vec *[]*Rule) {
	ns.Registered = append(ns.Registered, vec)
}
