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

// Package debug pretty-prints compiled namespaces for diagnostics.
package debug

import (
	"fmt"
	"strings"

	"github.com/kr/pretty"

	"github.com/cascadecfg/cascade/internal/core/adt"
	"github.com/cascadecfg/cascade/internal/core/eval"
)

// Dump renders ns's compiled, sorted rule vectors in evaluation order,
// annotating each rule with its specificity score (computed on demand via
// eval.Score, never stored).
func Dump(ns *adt.Namespace) string {
	var b strings.Builder
	fmt.Fprintf(&b, "namespace %s (criteria: %s)\n", ns.Name, strings.Join(ns.PrioritizedCriteria, ", "))
	dumpRules(&b, ns, ns.Rules, 0)
	return b.String()
}

func dumpRules(b *strings.Builder, ns *adt.Namespace, rules []*adt.Rule, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, r := range rules {
		fmt.Fprintf(b, "%s- score=%s criteria=%s fields=%s\n",
			indent, eval.Score(ns, r), dumpCriteria(r.Criteria), dumpFieldNames(r.Values))
		r.Values.Range(func(name string, prop adt.Property) {
			dumpProperty(b, ns, name, prop, depth+1)
		})
	}
}

func dumpProperty(b *strings.Builder, ns *adt.Namespace, name string, prop adt.Property, depth int) {
	indent := strings.Repeat("  ", depth)
	switch p := prop.(type) {
	case adt.Basic:
		fmt.Fprintf(b, "%s%s = %s\n", indent, name, pretty.Sprint(p.Value.String()))
	case adt.DynamicStruct:
		fmt.Fprintf(b, "%s%s = struct {\n", indent, name)
		dumpRules(b, ns, p.Rules, depth+1)
		fmt.Fprintf(b, "%s}\n", indent)
	case adt.DynamicList:
		fmt.Fprintf(b, "%s%s = list [\n", indent, name)
		for _, el := range p.Elements {
			dumpProperty(b, ns, "-", el, depth+1)
		}
		fmt.Fprintf(b, "%s]\n", indent)
	case adt.DynamicSubField:
		fmt.Fprintf(b, "%s%s = subfield {\n", indent, name)
		dumpRules(b, ns, p.Rules, depth+1)
		fmt.Fprintf(b, "%s}\n", indent)
	}
}

func dumpCriteria(criteria []adt.GroupedCriterion) string {
	parts := make([]string, len(criteria))
	for i, g := range criteria {
		neg := ""
		if g.Identifier.Negated {
			neg = "!"
		}
		parts[i] = fmt.Sprintf("%s%s=%s", neg, g.Identifier.Name, strings.Join(g.Values, "|"))
	}
	return strings.Join(parts, " & ")
}

func dumpFieldNames(values *adt.FieldValues) string {
	var names []string
	values.Range(func(name string, _ adt.Property) { names = append(names, name) })
	return strings.Join(names, ", ")
}
