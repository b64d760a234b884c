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

// Package compile implements a recursive-descent compiler: it turns a
// stream of (record name, value.Value) pairs into a set of compiled,
// per-namespace adt.Namespace rule sets. Compilation is one-shot and
// all-or-nothing — see Compile.
package compile

import (
	"golang.org/x/text/cases"
	"golang.org/x/xerrors"

	"github.com/cascadecfg/cascade/internal/core/adt"
	"github.com/cascadecfg/cascade/value"
)

// Record is one input to the compiler: an opaque record name (used only in
// error messages) and its parsed data-tree value.
type Record struct {
	Name  string
	Value value.Value
}

// namespaceFold folds the literal "namespace" marker case-insensitively;
// everything else in a record stays case-sensitive. Grounded on the same
// golang.org/x/text dependency family CUE carries for text processing.
var namespaceFold = cases.Fold()

// Compile compiles every record into its namespace's rule set. On success
// it returns the namespaces found, keyed by name. On any construction
// problem it returns nil and an *adt.ErrorList (which implements error)
// collecting every problem found — compilation is all-or-nothing.
func Compile(records []Record) (map[string]*adt.Namespace, error) {
	c := &compiler{
		namespaces: map[string]*adt.Namespace{},
	}

	// Pass 1: namespace declarations. These may appear anywhere in the
	// stream relative to their content records — an undeclared namespace
	// is only flagged once compilation is otherwise complete.
	for _, r := range records {
		if isNamespaceDecl(r.Value) {
			c.compileNamespaceDecl(r)
		}
	}

	// Pass 2: content records, now that every declared namespace exists.
	for _, r := range records {
		if isNamespaceDecl(r.Value) {
			continue
		}
		c.compileContentRecord(r)
	}

	if c.errs.HasErrors() {
		return nil, &c.errs
	}
	return c.namespaces, nil
}

type compiler struct {
	namespaces map[string]*adt.Namespace
	errs       adt.ErrorList
}

func isNamespaceDecl(v value.Value) bool {
	ann := v.Annotations()
	return v.Kind() == value.Struct && len(ann) > 0 && namespaceFold.String(ann[0]) == namespaceFold.String("namespace")
}

func (c *compiler) errf(record string, cat adt.ErrorCategory, path []string, format string, args ...interface{}) {
	detail := xerrors.Errorf(format, args...).Error()
	c.errs.Add(&adt.ConfigError{
		Category: cat,
		Record:   record,
		Path:     path,
		Detail:   detail,
	})
}

func (c *compiler) compileNamespaceDecl(r Record) {
	ann := r.Value.Annotations()
	if len(ann) != 2 {
		c.errf(r.Name, adt.NamespaceShape, nil,
			"namespace declaration must carry exactly 2 annotations (\"namespace\", <Name>), got %d", len(ann))
		return
	}
	name := ann[1]
	if name == "" {
		c.errf(r.Name, adt.NamespaceShape, nil, "namespace declaration has an empty name")
		return
	}
	if _, exists := c.namespaces[name]; exists {
		c.errf(r.Name, adt.NamespaceShape, nil, "namespace %q declared more than once", name)
		return
	}

	criteriaVal, ok := r.Value.Field("prioritizedCriteria")
	if !ok || criteriaVal.IsNull() || criteriaVal.Kind() != value.List {
		c.errf(r.Name, adt.NamespaceShape, []string{"prioritizedCriteria"},
			"namespace %q must declare a non-null list field prioritizedCriteria", name)
		return
	}
	elems, _ := criteriaVal.List()
	criteria := make([]string, 0, len(elems))
	for i, e := range elems {
		text, ok := e.Text()
		if !ok {
			c.errf(r.Name, adt.NamespaceShape, []string{"prioritizedCriteria"},
				"prioritizedCriteria[%d] must be text, got %s", i, e.Kind())
			continue
		}
		criteria = append(criteria, text)
	}

	ns := adt.NewNamespace(name, criteria)
	ns.Register(&ns.Rules)
	c.namespaces[name] = ns
}

func (c *compiler) compileContentRecord(r Record) {
	ann := r.Value.Annotations()
	if len(ann) == 0 {
		c.errf(r.Name, adt.Unnamespaced, nil, "top-level record has no annotation; expected a namespace name")
		return
	}
	if r.Value.Kind() != value.Struct {
		c.errf(r.Name, adt.Unnamespaced, nil, "top-level record must be a struct, got %s", r.Value.Kind())
		return
	}
	nsName := ann[0]
	ns, ok := c.namespaces[nsName]
	if !ok {
		c.errf(r.Name, adt.Unnamespaced, nil, "record annotated %q but no namespace %q is declared", nsName, nsName)
		return
	}

	fields, _ := r.Value.Struct()
	c.compileFields(r.Name, fields, nil, &ns.Rules, ns)
}

// compileFields turns a content struct into rules: it splits fields into
// criteria-bearing fields (which recurse, extending criteriaPath) and
// data fields (which populate the rule for the current path), then
// appends that rule to rulesOut if non-empty.
func (c *compiler) compileFields(record string, fields []value.StructField, criteriaPath []adt.GroupedCriterion, rulesOut *[]*adt.Rule, ns *adt.Namespace) {
	rule := adt.NewRule(criteriaPath)

	for _, f := range fields {
		def, isCriterion := adt.ParseDefinition(f.Name)
		if !isCriterion {
			prop := c.compileProperty(record, f.Value, ns)
			rule.Values.Set(f.Name, prop)
			continue
		}

		sub := f.Value
		if sub.IsNull() || sub.Kind() != value.Struct {
			c.errf(record, adt.MalformedCriterion, []string{f.Name},
				"criterion field %q must have a non-null struct value", f.Name)
			continue
		}

		defs := []adt.Definition{def}
		for _, a := range sub.Annotations() {
			d, ok := adt.ParseDefinition(a)
			if !ok {
				c.errf(record, adt.MalformedCriterion, []string{f.Name},
					"annotation %q on criterion field %q does not parse as [!]<name>-<value>", a, f.Name)
				continue
			}
			defs = append(defs, d)
		}

		grouped := adt.GroupDefinitions(defs)
		c.checkPrioritized(record, ns, []string{f.Name}, grouped)

		nextPath := append(append([]adt.GroupedCriterion{}, criteriaPath...), grouped...)
		subFields, _ := sub.Struct()
		c.compileFields(record, subFields, nextPath, rulesOut, ns)
	}

	if !rule.Empty() {
		rule.SetSequence(len(*rulesOut))
		*rulesOut = append(*rulesOut, rule)
	}
}

func (c *compiler) checkPrioritized(record string, ns *adt.Namespace, path []string, grouped []adt.GroupedCriterion) {
	for _, g := range grouped {
		if _, ok := ns.Rank(g.Identifier.Name); !ok {
			c.errf(record, adt.CriterionNotPrioritized, path,
				"criterion %q is not declared in namespace %q's prioritizedCriteria", g.Identifier.Name, ns.Name)
		}
	}
}

// compileProperty turns a field value into a Property: a struct whose
// fields include a criterion becomes a nested dynamic struct, a list with
// a struct/list element becomes a dynamic list, everything else is a
// plain Basic value.
func (c *compiler) compileProperty(record string, v value.Value, ns *adt.Namespace) adt.Property {
	switch v.Kind() {
	case value.Struct:
		fields, _ := v.Struct()
		if hasCriterionField(fields) {
			var nested []*adt.Rule
			c.compileFields(record, fields, nil, &nested, ns)
			ns.Register(&nested)
			return adt.DynamicStruct{Rules: nested}
		}
		return adt.Basic{Value: v}

	case value.List:
		elems, _ := v.List()
		if !hasDynamicElement(elems) {
			return adt.Basic{Value: v}
		}
		props := make([]adt.Property, 0, len(elems))
		for _, e := range elems {
			if isSubField(e) {
				props = append(props, c.compileSubField(record, e, ns))
				continue
			}
			props = append(props, c.compileProperty(record, e, ns))
		}
		return adt.DynamicList{Elements: props}

	default:
		return adt.Basic{Value: v}
	}
}

func hasCriterionField(fields []value.StructField) bool {
	for _, f := range fields {
		if _, ok := adt.ParseDefinition(f.Name); ok {
			return true
		}
	}
	return false
}

func hasDynamicElement(elems []value.Value) bool {
	for _, e := range elems {
		if e.Kind() == value.Struct || e.Kind() == value.List {
			return true
		}
	}
	return false
}

func isSubField(e value.Value) bool {
	ann := e.Annotations()
	if len(ann) == 0 {
		return false
	}
	_, ok := adt.ParseDefinition(ann[0])
	return ok
}

// compileSubField compiles a list-sub-field element: a list element
// annotated with one or more [!]<name>-<value> labels, a non-null struct
// with exactly one field named value or values.
func (c *compiler) compileSubField(record string, e value.Value, ns *adt.Namespace) adt.Property {
	if e.IsNull() || e.Kind() != value.Struct {
		c.errf(record, adt.SubFieldShape, nil, "criterion-annotated list element must be a non-null struct")
		return adt.DynamicSubField{}
	}

	var defs []adt.Definition
	for _, a := range e.Annotations() {
		d, ok := adt.ParseDefinition(a)
		if !ok {
			c.errf(record, adt.MalformedCriterion, nil,
				"annotation %q on list element does not parse as [!]<name>-<value>", a)
			continue
		}
		defs = append(defs, d)
	}
	grouped := adt.GroupDefinitions(defs)
	c.checkPrioritized(record, ns, nil, grouped)

	fields, _ := e.Struct()
	if len(fields) != 1 {
		c.errf(record, adt.SubFieldShape, nil,
			"list sub-field must have exactly one field, got %d", len(fields))
		return adt.DynamicSubField{}
	}
	field := fields[0]
	if field.Name != adt.SubFieldValue && field.Name != adt.SubFieldValues {
		c.errf(record, adt.SubFieldShape, []string{field.Name},
			"list sub-field's field must be named %q or %q, got %q", adt.SubFieldValue, adt.SubFieldValues, field.Name)
		return adt.DynamicSubField{}
	}
	if field.Name == adt.SubFieldValues && field.Value.Kind() != value.List {
		c.errf(record, adt.SubFieldShape, []string{field.Name},
			"list sub-field %q must be list-typed, got %s", adt.SubFieldValues, field.Value.Kind())
		return adt.DynamicSubField{}
	}

	prop := c.compileProperty(record, field.Value, ns)

	// Distinct identifiers annotating one sub-field are OR'd disjuncts,
	// not a conjunction: each gets its own rule carrying the identical
	// payload, so materializeListElement's first-match scan contributes
	// whichever disjunct passes first rather than requiring all of them
	// at once. Values sharing one identifier stay grouped by
	// GroupDefinitions into a single rule with an OR'd GroupedCriterion,
	// which is the only shape in the testable-properties scenarios.
	var rules []*adt.Rule
	if len(grouped) == 0 {
		rule := adt.NewRule(nil)
		rule.Values.Set(field.Name, prop)
		rule.SetSequence(0)
		rules = []*adt.Rule{rule}
	} else {
		rules = make([]*adt.Rule, len(grouped))
		for i, g := range grouped {
			rule := adt.NewRule([]adt.GroupedCriterion{g})
			rule.Values.Set(field.Name, prop)
			rule.SetSequence(i)
			rules[i] = rule
		}
	}
	ns.Register(&rules)
	return adt.DynamicSubField{Rules: rules}
}
