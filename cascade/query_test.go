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

package cascade

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cascadecfg/cascade/predicate"
)

func TestQueryEvaluateAppliesDefaults(t *testing.T) {
	engine := productsEngine(t)
	q := NewQuery(engine, "Products").WithDefaultProperty("seller", "acme")

	result, err := q.Evaluate(context.Background(), map[string]string{"category": "footwear"})
	require.NoError(t, err)

	layout, ok := result.Text("layout")
	require.True(t, ok)
	assert.Equal(t, "grid", layout)
}

func TestQueryEvaluateSupplierOverridesDefault(t *testing.T) {
	engine := productsEngine(t)
	q := NewQuery(engine, "Products").WithDefaultProperty("seller", "acme")

	result, err := q.Evaluate(context.Background(), map[string]string{
		"category": "footwear",
		"seller":   "other",
	})
	require.NoError(t, err)

	layout, _ := result.Text("layout")
	assert.Equal(t, "list", layout, "a supplied seller should override the default, and not match acme's rule")
}

func TestQueryWithCacheReturnsStableResult(t *testing.T) {
	engine := productsEngine(t)
	cache, err := NewRistrettoCache(time.Minute)
	require.NoError(t, err)

	q := NewQuery(engine, "Products").WithCache(cache)
	props := map[string]string{"category": "footwear", "seller": "acme"}

	first, err := q.Evaluate(context.Background(), props)
	require.NoError(t, err)
	second, err := q.Evaluate(context.Background(), props)
	require.NoError(t, err)

	firstLayout, _ := first.Text("layout")
	secondLayout, _ := second.Text("layout")
	assert.Equal(t, firstLayout, secondLayout)
	assert.Equal(t, "grid", secondLayout)
}

func TestQueryEvaluatePredicatesBypassesCacheNeverErrors(t *testing.T) {
	engine := productsEngine(t)
	q := NewQuery(engine, "Products")

	result := q.EvaluatePredicates(map[string]predicate.Predicate{
		"category": predicate.Equals("footwear"),
		"seller":   predicate.Equals("acme"),
	})
	layout, _ := result.Text("layout")
	assert.Equal(t, "grid", layout)
}

func TestQueryDumpUnknownNamespace(t *testing.T) {
	engine := productsEngine(t)
	q := NewQuery(engine, "Nonexistent")
	assert.Contains(t, q.Dump(), "not declared")
}
