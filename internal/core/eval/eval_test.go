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
	"testing"

	"github.com/cascadecfg/cascade/internal/core/adt"
	"github.com/cascadecfg/cascade/predicate"
	"github.com/cascadecfg/cascade/value"
)

func fieldRule(criteria []adt.GroupedCriterion, field string, v value.Value) *adt.Rule {
	r := adt.NewRule(criteria)
	r.Values.Set(field, adt.Basic{Value: v})
	return r
}

func TestValuesForPredicatesLastWriterWins(t *testing.T) {
	ns := adt.NewNamespace("Products", []string{"category"})
	base := fieldRule(nil, "layout", value.NewString("list"))
	override := fieldRule([]adt.GroupedCriterion{crit("category", "footwear")}, "layout", value.NewString("grid"))
	rules := []*adt.Rule{base, override}
	ns.Rules = rules
	ns.Register(&ns.Rules)
	Prepare(ns)

	preds := predicate.FromProperties(map[string]string{"category": "footwear"})
	out := ValuesForPredicates(ns, preds)

	got, ok := out["layout"].Text()
	if !ok || got != "grid" {
		t.Fatalf("layout = %q, want \"grid\" (more specific rule wins)", got)
	}
}

func TestValuesForPredicatesNonMatchingCriterionFallsBack(t *testing.T) {
	ns := adt.NewNamespace("Products", []string{"category"})
	base := fieldRule(nil, "layout", value.NewString("list"))
	override := fieldRule([]adt.GroupedCriterion{crit("category", "footwear")}, "layout", value.NewString("grid"))
	ns.Rules = []*adt.Rule{base, override}
	ns.Register(&ns.Rules)
	Prepare(ns)

	preds := predicate.FromProperties(map[string]string{"category": "apparel"})
	out := ValuesForPredicates(ns, preds)

	got, _ := out["layout"].Text()
	if got != "list" {
		t.Errorf("layout = %q, want \"list\" (conditional rule should not match)", got)
	}
}

func TestValuesForPredicatesNegatedCriterion(t *testing.T) {
	ns := adt.NewNamespace("Products", []string{"category"})
	negated := adt.GroupedCriterion{Identifier: adt.Identifier{Name: "category", Negated: true}, Values: []string{"footwear"}}
	rule := fieldRule([]adt.GroupedCriterion{negated}, "discount", value.NewBool(true))
	ns.Rules = []*adt.Rule{rule}
	ns.Register(&ns.Rules)
	Prepare(ns)

	matchingCategory := predicate.FromProperties(map[string]string{"category": "footwear"})
	out := ValuesForPredicates(ns, matchingCategory)
	if _, ok := out["discount"]; ok {
		t.Error("!category-footwear should not match when category is footwear")
	}

	otherCategory := predicate.FromProperties(map[string]string{"category": "apparel"})
	out = ValuesForPredicates(ns, otherCategory)
	if v, ok := out["discount"]; !ok {
		t.Error("!category-footwear should match when category is not footwear")
	} else if b, _ := v.Bool(); !b {
		t.Error("discount should be true")
	}
}

func TestValuesForPredicatesDynamicStruct(t *testing.T) {
	ns := adt.NewNamespace("Products", []string{"category"})
	nested := []*adt.Rule{
		fieldRule(nil, "color", value.NewString("black")),
		fieldRule([]adt.GroupedCriterion{crit("category", "footwear")}, "color", value.NewString("tan")),
	}
	ns.Register(&nested)

	top := adt.NewRule(nil)
	top.Values.Set("style", adt.DynamicStruct{Rules: nested})
	ns.Rules = []*adt.Rule{top}
	ns.Register(&ns.Rules)

	Prepare(ns)

	preds := predicate.FromProperties(map[string]string{"category": "footwear"})
	out := ValuesForPredicates(ns, preds)

	fields, ok := out["style"].Struct()
	if !ok {
		t.Fatal("\"style\" did not materialize as a struct")
	}
	var color string
	for _, f := range fields {
		if f.Name == "color" {
			color, _ = f.Value.Text()
		}
	}
	if color != "tan" {
		t.Errorf("nested color = %q, want \"tan\"", color)
	}
}

func TestValuesForPredicatesListSplicing(t *testing.T) {
	ns := adt.NewNamespace("Products", []string{"category"})

	alwaysRule := adt.NewRule(nil)
	alwaysRule.Values.Set(adt.SubFieldValue, adt.Basic{Value: value.NewString("core")})
	alwaysSub := []*adt.Rule{alwaysRule}
	ns.Register(&alwaysSub)

	splicedRule := adt.NewRule([]adt.GroupedCriterion{crit("category", "footwear")})
	splicedRule.Values.Set(adt.SubFieldValues, adt.Basic{
		Value: value.NewList([]value.Value{value.NewString("x"), value.NewString("y")}),
	})
	splicedSub := []*adt.Rule{splicedRule}
	ns.Register(&splicedSub)

	top := adt.NewRule(nil)
	top.Values.Set("tags", adt.DynamicList{Elements: []adt.Property{
		adt.DynamicSubField{Rules: alwaysSub},
		adt.DynamicSubField{Rules: splicedSub},
	}})
	ns.Rules = []*adt.Rule{top}
	ns.Register(&ns.Rules)

	Prepare(ns)

	preds := predicate.FromProperties(map[string]string{"category": "footwear"})
	out := ValuesForPredicates(ns, preds)

	elems, ok := out["tags"].List()
	if !ok {
		t.Fatal("\"tags\" did not materialize as a list")
	}
	var got []string
	for _, e := range elems {
		s, _ := e.Text()
		got = append(got, s)
	}
	want := []string{"core", "x", "y"}
	if len(got) != len(want) {
		t.Fatalf("tags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tags = %v, want %v", got, want)
		}
	}
}
