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

// Package httpapi wires cascade's Engine into a gin HTTP server.
package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cascadecfg/cascade/cascade"
)

// NewRouter builds the HTTP facade for a compiled Engine: one Query per
// namespace, each optionally backed by a ristretto result cache.
func NewRouter(engine *cascade.Engine, logger *zap.Logger, cacheEnabled bool) *gin.Engine {
	h := &handlers{
		engine:   engine,
		logger:   logger,
		validate: validator.New(),
		queries:  map[string]*cascade.Query{},
	}
	for _, ns := range engine.Namespaces() {
		q := cascade.NewQuery(engine, ns)
		if cacheEnabled {
			if c, err := cascade.NewRistrettoCache(5 * time.Minute); err != nil {
				logger.Warn("failed to build result cache, continuing uncached", zap.String("namespace", ns), zap.Error(err))
			} else {
				q = q.WithCache(c)
			}
		}
		h.queries[ns] = q
	}

	router := gin.New()
	router.Use(ginzap(logger), gin.Recovery())
	router.GET("/namespaces", h.listNamespaces)
	router.GET("/namespaces/:namespace/values", h.evaluate)
	return router
}

func ginzap(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		logger.Info("request",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
