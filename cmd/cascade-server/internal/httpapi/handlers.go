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

package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cascadecfg/cascade/cascade"
)

type handlers struct {
	engine   *cascade.Engine
	logger   *zap.Logger
	validate *validator.Validate
	queries  map[string]*cascade.Query
}

type namespaceParam struct {
	Namespace string `uri:"namespace" validate:"required,alphanum"`
}

func (h *handlers) listNamespaces(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"namespaces": h.engine.Namespaces()})
}

func (h *handlers) evaluate(ctx *gin.Context) {
	var p namespaceParam
	if err := ctx.ShouldBindUri(&p); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validate.Struct(p); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q, ok := h.queries[p.Namespace]
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "namespace not declared: " + p.Namespace})
		return
	}

	properties := map[string]string{}
	for k, vs := range ctx.Request.URL.Query() {
		if len(vs) > 0 {
			properties[k] = vs[0]
		}
	}

	result, err := q.Evaluate(ctx.Request.Context(), properties)
	if err != nil {
		h.logger.Error("evaluation failed", zap.String("namespace", p.Namespace), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
