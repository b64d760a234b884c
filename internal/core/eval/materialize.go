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

// materialize turns a Property into a Value under the given predicate
// map.
func materialize(prop adt.Property, predicates map[string]predicate.Predicate) value.Value {
	switch p := prop.(type) {
	case adt.Basic:
		return p.Value.Clone()

	case adt.DynamicStruct:
		acc := evalRules(p.Rules, predicates)
		fields := make([]value.StructField, 0, acc.Len())
		acc.Range(func(name string, sub adt.Property) {
			fields = append(fields, value.StructField{Name: name, Value: materialize(sub, predicates)})
		})
		return value.NewStruct(fields)

	case adt.DynamicList:
		var elems []value.Value
		for _, el := range p.Elements {
			elems = append(elems, materializeListElement(el, predicates)...)
		}
		return value.NewList(elems)

	case adt.DynamicSubField:
		// Meaningful only inside a DynamicList; reaching this case
		// directly means a sub-field Property ended up as a plain field
		// value, which the compiler never produces.
		return value.NullValue()
	}
	return value.NullValue()
}

// materializeListElement expands one list element: a plain element
// contributes exactly one value; a DynamicSubField contributes the
// output of its first matching rule, or nothing.
func materializeListElement(p adt.Property, predicates map[string]predicate.Predicate) []value.Value {
	sub, ok := p.(adt.DynamicSubField)
	if !ok {
		return []value.Value{materialize(p, predicates)}
	}

	for _, r := range sub.Rules {
		if !ruleMatches(r, predicates) {
			continue
		}
		if v, ok := r.Values.Get(adt.SubFieldValue); ok {
			return []value.Value{materialize(v, predicates)}
		}
		if v, ok := r.Values.Get(adt.SubFieldValues); ok {
			list := materialize(v, predicates)
			elems, _ := list.List()
			return elems
		}
		return nil
	}
	return nil
}
