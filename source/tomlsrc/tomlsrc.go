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

// Package tomlsrc is a secondary reference source.Loader backed by
// github.com/BurntSushi/toml. Unlike yamlsrc, TOML's decoded shape has no
// ordered/repeated-key primitive, so this loader reconstructs top-level
// declaration order from the decoder's MetaData but otherwise collapses
// repeated table names the way encoding/toml itself does. Prefer yamlsrc
// where field order or repeated keys within one struct matter.
package tomlsrc

import (
	"fmt"
	"math/big"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/cascadecfg/cascade/value"
)

const annotationsKey = "__annotations__"

// Loader implements source.Loader for TOML-encoded records.
func Loader(path string) (value.Value, error) {
	var doc map[string]interface{}
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return value.Value{}, fmt.Errorf("tomlsrc: %w", err)
	}
	order := topLevelOrder(meta, doc)
	return mapToValue(doc, order)
}

// topLevelOrder returns doc's keys in the order toml.MetaData observed them
// declared, falling back to map iteration for any key MetaData missed.
func topLevelOrder(meta toml.MetaData, doc map[string]interface{}) []string {
	seen := make(map[string]bool, len(doc))
	var order []string
	for _, k := range meta.Keys() {
		if len(k) != 1 {
			continue
		}
		name := k[0]
		if _, ok := doc[name]; ok && !seen[name] {
			order = append(order, name)
			seen[name] = true
		}
	}
	for k := range doc {
		if !seen[k] {
			order = append(order, k)
			seen[k] = true
		}
	}
	return order
}

func mapToValue(m map[string]interface{}, order []string) (value.Value, error) {
	var annotations []string
	fields := make([]value.StructField, 0, len(m))
	for _, k := range order {
		if k == annotationsKey {
			ann, err := toStringSlice(m[k])
			if err != nil {
				return value.Value{}, err
			}
			annotations = ann
			continue
		}
		v, err := toValue(m[k])
		if err != nil {
			return value.Value{}, err
		}
		fields = append(fields, value.StructField{Name: k, Value: v})
	}
	out := value.NewStruct(fields)
	if len(annotations) > 0 {
		out = out.WithAnnotations(annotations...)
	}
	return out, nil
}

func toStringSlice(raw interface{}) ([]string, error) {
	elems, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("tomlsrc: %s must be an array of strings", annotationsKey)
	}
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("tomlsrc: %s must be an array of strings", annotationsKey)
		}
		out = append(out, s)
	}
	return out, nil
}

func toValue(raw interface{}) (value.Value, error) {
	switch t := raw.(type) {
	case nil:
		return value.NullValue(), nil
	case bool:
		return value.NewBool(t), nil
	case int64:
		return value.NewIntFromInt64(t), nil
	case float64:
		return value.NewFloat(t), nil
	case string:
		return value.NewString(t), nil
	case time.Time:
		return value.NewTimestamp(t), nil
	case []byte:
		return value.NewBlob(t), nil
	case []interface{}:
		elems := make([]value.Value, 0, len(t))
		for _, e := range t {
			v, err := toValue(e)
			if err != nil {
				return value.Value{}, err
			}
			elems = append(elems, v)
		}
		return value.NewList(elems), nil
	case map[string]interface{}:
		return mapToValue(t, topLevelOrder(toml.MetaData{}, t))
	case *big.Int:
		return value.NewInt(t), nil
	default:
		return value.Value{}, fmt.Errorf("tomlsrc: unsupported TOML value of type %T", raw)
	}
}
