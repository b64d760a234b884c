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
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
	gocache "github.com/eko/gocache/lib/v4/cache"
	gostore "github.com/eko/gocache/lib/v4/store"
	ristrettostore "github.com/eko/gocache/store/ristretto/v4"
)

// Default ristretto tuning, sized for a config cache: small values,
// hit-rate-sensitive, rarely written.
const (
	defaultRistrettoMaxCost     = 1_000_000
	defaultRistrettoNumCounters = defaultRistrettoMaxCost * 10
	defaultRistrettoBufferItems = 64
	defaultCacheExpiration      = 5 * time.Minute
)

// NewRistrettoCache builds the default per-instance Result cache for a
// Query: an in-memory, size-bounded cache with a fixed expiration, so a
// Query never needs to invalidate anything explicitly — an entry simply
// ages out or is evicted under memory pressure.
func NewRistrettoCache(expiration time.Duration) (gocache.CacheInterface[Result], error) {
	if expiration <= 0 {
		expiration = defaultCacheExpiration
	}
	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: defaultRistrettoNumCounters,
		MaxCost:     defaultRistrettoMaxCost,
		BufferItems: defaultRistrettoBufferItems,
	})
	if err != nil {
		return nil, fmt.Errorf("cascade: failed to initialize ristretto cache: %w", err)
	}
	store := ristrettostore.NewRistretto(client, gostore.WithExpiration(expiration))
	return gocache.New[Result](store), nil
}
