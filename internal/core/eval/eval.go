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

package eval

import (
	"github.com/cascadecfg/cascade/internal/core/adt"
	"github.com/cascadecfg/cascade/predicate"
	"github.com/cascadecfg/cascade/value"
)

// ValuesForPredicates scans ns.Rules in priority order against predicates
// and returns the resulting field→Value map. ns must already have been
// passed to Prepare.
// Never fails: a missing namespace is the caller's concern (an empty
// *adt.Namespace here just yields an empty result), a missing predicate
// defaults to always-false.
func ValuesForPredicates(ns *adt.Namespace, predicates map[string]predicate.Predicate) map[string]value.Value {
	acc := evalRules(ns.Rules, predicates)
	out := make(map[string]value.Value, acc.Len())
	acc.Range(func(name string, prop adt.Property) {
		out[name] = materialize(prop, predicates)
	})
	return out
}

// evalRules scans a rule vector in order, and for every matching rule
// copies its field assignments into the accumulator, last writer wins.
func evalRules(rules []*adt.Rule, predicates map[string]predicate.Predicate) *adt.FieldValues {
	acc := adt.NewFieldValues()
	for _, r := range rules {
		if ruleMatches(r, predicates) {
			r.Values.Range(func(name string, prop adt.Property) {
				acc.Set(name, prop)
			})
		}
	}
	return acc
}

// ruleMatches reports whether every GroupedCriterion of r matches:
// predicates[identifier.name](values), XORed with identifier.negated.
func ruleMatches(r *adt.Rule, predicates map[string]predicate.Predicate) bool {
	for _, g := range r.Criteria {
		if !groupedCriterionMatches(g, predicates) {
			return false
		}
	}
	return true
}

func groupedCriterionMatches(g adt.GroupedCriterion, predicates map[string]predicate.Predicate) bool {
	pred, ok := predicates[g.Identifier.Name]
	raw := false
	if ok {
		raw = pred(value.NewSet(g.Values...))
	}
	return raw != g.Identifier.Negated
}
