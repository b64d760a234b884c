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

import "github.com/cascadecfg/cascade/value"

// Property is a lazy value node attached to a rule's field. It is a
// closed tagged sum of exactly four shapes; dispatch is a type switch in
// package eval's materializer, not virtual method calls — there are
// exactly four variants and they will not grow.
type Property interface {
	isProperty()
}

// Basic is a terminal data-tree value, materialized by cloning.
type Basic struct {
	Value value.Value
}

func (Basic) isProperty() {}

// DynamicStruct is a struct whose fields are produced by cascading a
// nested rule vector under the current caller predicates. Emitted when at
// least one direct field of the source struct is itself conditional.
type DynamicStruct struct {
	Rules []*Rule
}

func (DynamicStruct) isProperty() {}

// DynamicList is a list whose positional elements each contribute zero,
// one, or many values to the final list.
type DynamicList struct {
	Elements []Property
}

func (DynamicList) isProperty() {}

// DynamicSubField is a single list element that is conditional: at most
// one of its Rules is chosen during evaluation, contributing either a
// single value (field "value") or inline-spliced elements (field
// "values"). Meaningful only inside a DynamicList's Elements.
type DynamicSubField struct {
	Rules []*Rule
}

func (DynamicSubField) isProperty() {}

// Reserved field names inside a DynamicSubField's chosen rule.
const (
	SubFieldValue  = "value"
	SubFieldValues = "values"
)
