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

package integration

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cascadecfg/cascade/cascade"
	"github.com/cascadecfg/cascade/internal/core/adt"
	"github.com/cascadecfg/cascade/value"
)

func namespaceDecl(name string, criteria ...string) value.Value {
	elems := make([]value.Value, len(criteria))
	for i, c := range criteria {
		elems[i] = value.NewString(c)
	}
	return value.NewStruct([]value.StructField{
		{Name: "prioritizedCriteria", Value: value.NewList(elems)},
	}).WithAnnotations("namespace", name)
}

func mustEngine(records []cascade.Record) *cascade.Engine {
	engine, err := cascade.New(records)
	Expect(err).NotTo(HaveOccurred())
	return engine
}

var _ = Describe("nested criteria cascade (myField scenarios)", func() {
	// field1=true selects myField=2 and opens the door to a further
	// field2=true refinement (myField=3), which itself opens the door to
	// a field3=true refinement (myField=4). field2=true on its own (no
	// field1) selects myField=5 from an entirely separate rule. field3 is
	// only ever declared nested under field1+field2, so field3=true alone
	// never matches and the base rule wins.
	content := value.NewStruct([]value.StructField{
		{Name: "myField", Value: value.NewIntFromInt64(1)},
		{Name: "field1-true", Value: value.NewStruct([]value.StructField{
			{Name: "myField", Value: value.NewIntFromInt64(2)},
			{Name: "field2-true", Value: value.NewStruct([]value.StructField{
				{Name: "myField", Value: value.NewIntFromInt64(3)},
				{Name: "field3-true", Value: value.NewStruct([]value.StructField{
					{Name: "myField", Value: value.NewIntFromInt64(4)},
				})},
			})},
		})},
		{Name: "field2-true", Value: value.NewStruct([]value.StructField{
			{Name: "myField", Value: value.NewIntFromInt64(5)},
		})},
	}).WithAnnotations("Scenario")

	records := []cascade.Record{
		{Name: "scenario.namespace", Value: namespaceDecl("Scenario", "field1", "field2", "field3")},
		{Name: "scenario.yaml", Value: content},
	}

	DescribeTable("myField resolves per the cascade",
		func(properties map[string]string, want int64) {
			engine := mustEngine(records)
			result := engine.ValuesForProperties("Scenario", properties)
			got, ok := result.Int("myField")
			Expect(ok).To(BeTrue())
			Expect(got.Int64()).To(Equal(want))
		},
		Entry("no properties", map[string]string{}, int64(1)),
		Entry("field1 alone", map[string]string{"field1": "true"}, int64(2)),
		Entry("field1 and field2", map[string]string{"field1": "true", "field2": "true"}, int64(3)),
		Entry("field1, field2 and field3", map[string]string{"field1": "true", "field2": "true", "field3": "true"}, int64(4)),
		Entry("field2 alone", map[string]string{"field2": "true"}, int64(5)),
		Entry("field3 alone falls back to the base rule", map[string]string{"field3": "true"}, int64(1)),
	)
})

var _ = Describe("a single highly-ranked criterion outranking a combination of lower-ranked ones", func() {
	// Priorities [category, seller, sku]: sku is last, so it carries the
	// highest rank. A rule keyed on sku alone must beat a rule keyed on
	// both category and seller together.
	content := value.NewStruct([]value.StructField{
		{Name: "myValue", Value: value.NewIntFromInt64(1)},
		{Name: "category-001234321", Value: value.NewStruct([]value.StructField{
			{Name: "myValue", Value: value.NewIntFromInt64(2)},
			{Name: "seller-1234", Value: value.NewStruct([]value.StructField{
				{Name: "myValue", Value: value.NewIntFromInt64(3)},
			})},
		})},
		{Name: "sku-B0000SKUU1", Value: value.NewStruct([]value.StructField{
			{Name: "myValue", Value: value.NewIntFromInt64(5)},
		})},
	}).WithAnnotations("Listing")

	records := []cascade.Record{
		{Name: "listing.namespace", Value: namespaceDecl("Listing", "category", "seller", "sku")},
		{Name: "listing.yaml", Value: content},
	}

	It("lets sku outrank the category+seller combination", func() {
		engine := mustEngine(records)
		result := engine.ValuesForProperties("Listing", map[string]string{
			"sku":      "B0000SKUU1",
			"category": "001234321",
			"seller":   "1234",
		})
		got, ok := result.Int("myValue")
		Expect(ok).To(BeTrue())
		Expect(got.Int64()).To(Equal(int64(5)))
	})
})

var _ = Describe("a nested dynamic list of mixed strings and structs", func() {
	// A Products.layout-shaped list: four positional elements, the last
	// a struct whose modules list mixes plain strings with one nested
	// struct.
	modules := value.NewList([]value.Value{
		value.NewString("businessPricing"),
		value.NewString("rebates"),
		value.NewString("quantityPrice"),
		value.NewString("points"),
		value.NewString("globalStoreIfd"),
		value.NewStruct([]value.StructField{
			{Name: "name", Value: value.NewString("promoMessaging")},
			{Name: "template", Value: value.NewString("customTemplate1")},
		}),
		value.NewString("samplingBuyBox"),
	})

	layout := value.NewList([]value.Value{
		value.NewString("header"),
		value.NewString("nav"),
		value.NewString("body"),
		value.NewStruct([]value.StructField{
			{Name: "modules", Value: modules},
		}),
	})

	content := value.NewStruct([]value.StructField{
		{Name: "layout", Value: layout},
	}).WithAnnotations("Products")

	records := []cascade.Record{
		{Name: "products.namespace", Value: namespaceDecl("Products", "websiteFeatureGroup", "department", "category", "subcategory", "sku")},
		{Name: "products.yaml", Value: content},
	}

	It("materializes the list literal-for-literal", func() {
		engine := mustEngine(records)
		result := engine.ValuesForProperties("Products", map[string]string{
			"websiteFeatureGroup": "wireless",
			"department":          "111",
			"category":            "555",
			"subcategory":         "1234",
		})
		got, ok := result.List("layout")
		Expect(ok).To(BeTrue())
		Expect(got).To(HaveLen(4))

		fourth, ok := got[3].Struct()
		Expect(ok).To(BeTrue())
		Expect(fourth).To(HaveLen(1))
		Expect(fourth[0].Name).To(Equal("modules"))

		elems, ok := fourth[0].Value.List()
		Expect(ok).To(BeTrue())
		Expect(elems).To(HaveLen(7))

		sub, ok := elems[5].Struct()
		Expect(ok).To(BeTrue())
		nameField, ok := findField(sub, "name")
		Expect(ok).To(BeTrue())
		name, _ := nameField.Text()
		Expect(name).To(Equal("promoMessaging"))
	})
})

var _ = Describe("list splicing via a values sub-field", func() {
	spliced := value.NewStruct([]value.StructField{
		{Name: adt.SubFieldValues, Value: value.NewList([]value.Value{
			value.NewIntFromInt64(456),
			value.NewIntFromInt64(789),
		})},
	}).WithAnnotations("department-107")

	ids := value.NewList([]value.Value{
		value.NewIntFromInt64(123),
		spliced,
		value.NewIntFromInt64(999),
	})

	content := value.NewStruct([]value.StructField{
		{Name: "ids", Value: ids},
	}).WithAnnotations("Products")

	records := []cascade.Record{
		{Name: "products.namespace", Value: namespaceDecl("Products", "department")},
		{Name: "products.yaml", Value: content},
	}

	It("splices in the extra elements when department matches", func() {
		engine := mustEngine(records)
		result := engine.ValuesForProperties("Products", map[string]string{"department": "107"})
		got, ok := result.List("ids")
		Expect(ok).To(BeTrue())

		want := []int64{123, 456, 789, 999}
		Expect(got).To(HaveLen(len(want)))
		for i, w := range want {
			n, ok := got[i].Int()
			Expect(ok).To(BeTrue())
			Expect(n.Int64()).To(Equal(w))
		}
	})

	It("omits the spliced elements when department does not match", func() {
		engine := mustEngine(records)
		result := engine.ValuesForProperties("Products", map[string]string{"department": "999"})
		got, ok := result.List("ids")
		Expect(ok).To(BeTrue())

		want := []int64{123, 999}
		Expect(got).To(HaveLen(len(want)))
		for i, w := range want {
			n, ok := got[i].Int()
			Expect(ok).To(BeTrue())
			Expect(n.Int64()).To(Equal(w))
		}
	})
})

var _ = Describe("OR-grouped identifiers on one rule", func() {
	// 'color-blue':'color-red' is one grouped criterion: a single
	// identifier (color) carrying two values; it must match (and
	// contribute its rule exactly once) whenever color is either blue or
	// red.
	content := value.NewStruct([]value.StructField{
		{Name: "onSale", Value: value.NewBool(false)},
		{Name: "color-blue", Value: value.NewStruct([]value.StructField{
			{Name: "onSale", Value: value.NewBool(true)},
		}).WithAnnotations("color-red")},
	}).WithAnnotations("Products")

	records := []cascade.Record{
		{Name: "products.namespace", Value: namespaceDecl("Products", "color")},
		{Name: "products.yaml", Value: content},
	}

	DescribeTable("onSale reflects the grouped match without duplication",
		func(color string, want bool) {
			engine := mustEngine(records)
			result := engine.ValuesForProperties("Products", map[string]string{"color": color})
			got, ok := result.Bool("onSale")
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(want))
		},
		Entry("blue matches", "blue", true),
		Entry("red matches", "red", true),
		Entry("green does not match", "green", false),
	)
})

func findField(fields []value.StructField, name string) (value.Value, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return value.Value{}, false
}
