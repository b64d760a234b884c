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

// FieldValues is the ordered, at-most-one-entry-per-name field→Property
// map carried by a Rule. Insertion order is preserved; setting an
// already-present name keeps its original position but replaces its
// Property.
type FieldValues struct {
	names []string
	index map[string]int
	props []Property
}

// NewFieldValues returns an empty FieldValues.
func NewFieldValues() *FieldValues {
	return &FieldValues{index: map[string]int{}}
}

// Set assigns prop to name, preserving first-insertion order.
func (f *FieldValues) Set(name string, prop Property) {
	if i, ok := f.index[name]; ok {
		f.props[i] = prop
		return
	}
	f.index[name] = len(f.names)
	f.names = append(f.names, name)
	f.props = append(f.props, prop)
}

// Len reports the number of distinct field names set.
func (f *FieldValues) Len() int { return len(f.names) }

// Range calls fn for each field in insertion order.
func (f *FieldValues) Range(fn func(name string, prop Property)) {
	for i, n := range f.names {
		fn(n, f.props[i])
	}
}

// Get returns the Property assigned to name, if any.
func (f *FieldValues) Get(name string) (Property, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.props[i], true
}

// Rule is one scoped set of field assignments guarded by a conjunction of
// grouped criteria. seq is set by the compiler (SetSequence) and read by
// the priority sorter (package eval) to break ties.
type Rule struct {
	Criteria []GroupedCriterion
	Values   *FieldValues

	// seq is the compile-time insertion index, used only to break ties in
	// the priority sort deterministically.
	seq int
}

// NewRule returns an empty Rule for the given criteria path.
func NewRule(criteria []GroupedCriterion) *Rule {
	return &Rule{Criteria: criteria, Values: NewFieldValues()}
}

// Empty reports whether the rule carries no field assignments — such
// rules are elided by the priority sorter.
func (r *Rule) Empty() bool { return r.Values.Len() == 0 }

// SetSequence records r's compile-time insertion index. Called once by the
// compiler as each rule is appended to its owning vector.
func (r *Rule) SetSequence(n int) { r.seq = n }

// Sequence returns r's compile-time insertion index.
func (r *Rule) Sequence() int { return r.seq }
