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

// Package eval implements the priority sorter and evaluator: establishing
// a total order over a namespace's compiled rules that yields CSS-like
// specificity, and scanning that order against a predicate map to produce
// materialized values.
package eval

import (
	"math/big"
	"sort"

	"github.com/cascadecfg/cascade/internal/core/adt"
)

// Prepare runs the priority sorter over every rule vector ns.Registered
// names (the namespace's top-level vector plus every nested DynamicStruct
// / DynamicSubField body):
//
//  1. drop rules with no field assignments,
//  2. sort each rule's own criteria descending by rank,
//  3. sort the rule vector ascending by specificity score.
//
// Must be called exactly once, after compilation and before any
// evaluation. It never fails: an empty or absent rank for a criterion name
// is impossible here because package compile already rejected any
// criterion not in the namespace's prioritizedCriteria.
func Prepare(ns *adt.Namespace) {
	for _, vec := range ns.Registered {
		*vec = prepareVector(ns, *vec)
	}
}

func prepareVector(ns *adt.Namespace, rules []*adt.Rule) []*adt.Rule {
	kept := rules[:0]
	for _, r := range rules {
		if !r.Empty() {
			kept = append(kept, r)
		}
	}
	for _, r := range kept {
		sortCriteriaDescending(ns, r.Criteria)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return less(ns, kept[i], kept[j])
	})
	return kept
}

func sortCriteriaDescending(ns *adt.Namespace, criteria []adt.GroupedCriterion) {
	sort.SliceStable(criteria, func(i, j int) bool {
		ri, _ := ns.Rank(criteria[i].Identifier.Name)
		rj, _ := ns.Rank(criteria[j].Identifier.Name)
		return ri > rj
	})
}

// less implements ascending specificity order without ever materializing
// the P^P-scale score: it compares the two rules' (rank+1) digit
// sequences lexicographically, most-significant (highest priority)
// position first, treating a shorter sequence as though padded with zero
// digits — which is exactly what the weighted sum Σ (r_i+1)·P^(P-i)
// computes, since each term strictly dominates the sum of every term
// that follows it. Ties fall back to compile-time insertion sequence.
func less(ns *adt.Namespace, a, b *adt.Rule) bool {
	if c := compareDigits(digits(ns, a.Criteria), digits(ns, b.Criteria)); c != 0 {
		return c < 0
	}
	return a.Sequence() < b.Sequence()
}

func digits(ns *adt.Namespace, criteria []adt.GroupedCriterion) []int {
	d := make([]int, len(criteria))
	for i, g := range criteria {
		rank, _ := ns.Rank(g.Identifier.Name)
		d[i] = rank + 1
	}
	return d
}

func compareDigits(a, b []int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Score computes the literal specificity score Σ (r_i+1)·P^(P-i), using
// arbitrary-precision integers since P^P can overflow machine words once
// P is large enough. It is not used by the sorter itself (see less,
// above) — it exists for debug dumps (package debug) and golden-file
// tests that want to see the actual number.
func Score(ns *adt.Namespace, r *adt.Rule) *big.Int {
	p := big.NewInt(int64(ns.NumCriteria()))
	score := new(big.Int)
	for i, g := range r.Criteria {
		rank, _ := ns.Rank(g.Identifier.Name)
		term := big.NewInt(int64(rank + 1))
		exp := new(big.Int).Exp(p, big.NewInt(int64(ns.NumCriteria()-i)), nil)
		term.Mul(term, exp)
		score.Add(score, term)
	}
	return score
}
