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
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/google/go-cmp/cmp"

	"github.com/cascadecfg/cascade/cascade"
	"github.com/cascadecfg/cascade/value"
)

// asMap renders a Result through its JSON encoding so cmp.Diff can walk
// plain maps instead of Value's unexported fields.
func asMap(result cascade.Result) map[string]interface{} {
	b, err := json.Marshal(result)
	Expect(err).NotTo(HaveOccurred())
	var m map[string]interface{}
	Expect(json.Unmarshal(b, &m)).To(Succeed())
	return m
}

var _ = Describe("cascade invariants", func() {
	content := value.NewStruct([]value.StructField{
		{Name: "myField", Value: value.NewIntFromInt64(1)},
		{Name: "category-footwear", Value: value.NewStruct([]value.StructField{
			{Name: "myField", Value: value.NewIntFromInt64(2)},
			{Name: "seller-acme", Value: value.NewStruct([]value.StructField{
				{Name: "myField", Value: value.NewIntFromInt64(3)},
			})},
		})},
	}).WithAnnotations("Products")

	other := value.NewStruct([]value.StructField{
		{Name: "myField", Value: value.NewIntFromInt64(99)},
	}).WithAnnotations("Reviews")

	records := []cascade.Record{
		{Name: "products.namespace", Value: namespaceDecl("Products", "category", "seller")},
		{Name: "products.yaml", Value: content},
		{Name: "reviews.namespace", Value: namespaceDecl("Reviews")},
		{Name: "reviews.yaml", Value: other},
	}

	It("is idempotent: evaluating twice with the same predicates yields equal results", func() {
		engine := mustEngine(records)
		properties := map[string]string{"category": "footwear", "seller": "acme"}

		first := asMap(engine.ValuesForProperties("Products", properties))
		second := asMap(engine.ValuesForProperties("Products", properties))
		Expect(cmp.Diff(first, second)).To(BeEmpty())
	})

	It("is monotone: the more specific rule overrides every field the less specific one shares", func() {
		engine := mustEngine(records)

		base := engine.ValuesForProperties("Products", map[string]string{"category": "footwear"})
		baseField, _ := base.Int("myField")
		Expect(baseField.Int64()).To(Equal(int64(2)))

		refined := engine.ValuesForProperties("Products", map[string]string{"category": "footwear", "seller": "acme"})
		refinedField, _ := refined.Int("myField")
		Expect(refinedField.Int64()).To(Equal(int64(3)))
	})

	It("isolates namespaces: predicates on one namespace never affect another", func() {
		engine := mustEngine(records)

		products := engine.ValuesForProperties("Products", map[string]string{"category": "footwear", "seller": "acme"})
		reviews := engine.ValuesForProperties("Reviews", map[string]string{"category": "footwear", "seller": "acme"})

		productsField, _ := products.Int("myField")
		reviewsField, _ := reviews.Int("myField")
		Expect(productsField.Int64()).To(Equal(int64(3)))
		Expect(reviewsField.Int64()).To(Equal(int64(99)))
	})

	It("keeps the empty-criteria baseline until a matching rule overrides it", func() {
		engine := mustEngine(records)

		unmatched := engine.ValuesForProperties("Products", map[string]string{"category": "apparel"})
		field, _ := unmatched.Int("myField")
		Expect(field.Int64()).To(Equal(int64(1)))
	})
})
