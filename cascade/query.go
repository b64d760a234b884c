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
	"sort"
	"strings"

	gocache "github.com/eko/gocache/lib/v4/cache"

	"github.com/cascadecfg/cascade/internal/core/debug"
	"github.com/cascadecfg/cascade/predicate"
)

// Query is a namespaced facade: a view onto one namespace of a compiled
// Engine that carries default predicates and an optional per-instance
// result cache. Query is immutable; With* methods return a new Query
// rather than mutating the receiver, the same convention package
// predicate's constructors use.
type Query struct {
	engine    *Engine
	namespace string
	defaults  map[string]predicate.Predicate
	cache     gocache.CacheInterface[Result]
}

// NewQuery returns a Query over namespace with no default predicates and
// no cache.
func NewQuery(engine *Engine, namespace string) *Query {
	return &Query{engine: engine, namespace: namespace, defaults: map[string]predicate.Predicate{}}
}

func (q *Query) clone() *Query {
	cp := &Query{engine: q.engine, namespace: q.namespace, cache: q.cache}
	cp.defaults = make(map[string]predicate.Predicate, len(q.defaults))
	for k, v := range q.defaults {
		cp.defaults[k] = v
	}
	return cp
}

// WithDefaultProperty sets a fallback equality predicate for criterion,
// used whenever a call to Evaluate doesn't supply that key.
func (q *Query) WithDefaultProperty(criterion, value string) *Query {
	cp := q.clone()
	cp.defaults[criterion] = predicate.Equals(value)
	return cp
}

// WithDefaultPredicate sets a fallback predicate for criterion.
func (q *Query) WithDefaultPredicate(criterion string, p predicate.Predicate) *Query {
	cp := q.clone()
	cp.defaults[criterion] = p
	return cp
}

// WithCache attaches a result cache keyed on (namespace, property-set
// digest). See package cascade's cache.go for the ristretto-backed
// default (NewRistrettoCache). Caching only applies to Evaluate (the
// values_for_properties path): a caller-supplied Predicate is an opaque
// closure with no stable identity to key on, so EvaluatePredicates always
// bypasses the cache.
func (q *Query) WithCache(c gocache.CacheInterface[Result]) *Query {
	cp := q.clone()
	cp.cache = c
	return cp
}

// Evaluate is values_for_properties layered with defaults and caching: a
// supplied property overrides a default for the same criterion.
func (q *Query) Evaluate(ctx context.Context, properties map[string]string) (Result, error) {
	merged := make(map[string]string, len(properties))
	key := cacheKey(q.namespace, properties)

	if q.cache != nil {
		if cached, err := q.cache.Get(ctx, key); err == nil {
			return cached, nil
		}
	}

	for k := range properties {
		merged[k] = properties[k]
	}
	preds := predicate.FromProperties(merged)
	for k, p := range q.defaults {
		if _, overridden := merged[k]; !overridden {
			preds[k] = p
		}
	}

	result := q.engine.ValuesForPredicates(q.namespace, preds)

	if q.cache != nil {
		_ = q.cache.Set(ctx, key, result)
	}
	return result, nil
}

// EvaluatePredicates is values_for_predicates layered with defaults, never
// cached (see WithCache).
func (q *Query) EvaluatePredicates(predicates map[string]predicate.Predicate) Result {
	preds := make(map[string]predicate.Predicate, len(predicates)+len(q.defaults))
	for k, p := range q.defaults {
		preds[k] = p
	}
	for k, p := range predicates {
		preds[k] = p
	}
	return q.engine.ValuesForPredicates(q.namespace, preds)
}

// Dump pretty-prints the namespace's compiled rules (internal/core/debug),
// for the CLI's dump subcommand.
func (q *Query) Dump() string {
	ns, ok := q.engine.namespace(q.namespace)
	if !ok {
		return "namespace " + q.namespace + " not declared"
	}
	return debug.Dump(ns)
}

// cacheKey builds a canonical, content-addressed key from a namespace and
// its property map: same namespace + same key/value pairs always yields
// the same key, regardless of map iteration order. A changed predicate
// set simply becomes a different key — nothing is explicitly
// invalidated.
func cacheKey(namespace string, properties map[string]string) string {
	keys := make([]string, 0, len(properties))
	for k := range properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(namespace)
	for _, k := range keys {
		b.WriteByte('\x00')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(properties[k])
	}
	return b.String()
}
