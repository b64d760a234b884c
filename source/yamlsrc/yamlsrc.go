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

// Package yamlsrc is a reference source.Loader backed by
// gopkg.in/yaml.v3.
//
// Real Ion text/binary parsing is out of scope for cascade's core; this
// loader is a convenient stand-in for tests and the CLI. It layers one
// convention YAML has no native equivalent for: a mapping's ordered
// annotation labels are written under the reserved key "__annotations__"
// as a sequence of strings. Decimal values (as
// opposed to float) are written with the custom tag "!decimal", e.g.
// `price: !decimal 19.99`; everything else uses YAML's native tags.
package yamlsrc

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cascadecfg/cascade/value"
)

const annotationsKey = "__annotations__"

// Loader implements source.Loader for YAML-encoded records.
func Loader(path string) (value.Value, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return value.Value{}, err
	}
	return Parse(b)
}

// Parse decodes a single YAML document into a value.Value, preserving
// field order and repeated keys via yaml.v3's Node API (a plain
// map[string]interface{} decode would lose both).
func Parse(data []byte) (value.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return value.Value{}, fmt.Errorf("yamlsrc: %w", err)
	}
	if len(doc.Content) == 0 {
		return value.NullValue(), nil
	}
	return nodeToValue(doc.Content[0])
}

func nodeToValue(n *yaml.Node) (value.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.NullValue(), nil
		}
		return nodeToValue(n.Content[0])
	case yaml.AliasNode:
		return nodeToValue(n.Alias)
	case yaml.ScalarNode:
		return scalarToValue(n)
	case yaml.SequenceNode:
		elems := make([]value.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeToValue(c)
			if err != nil {
				return value.Value{}, err
			}
			elems = append(elems, v)
		}
		return value.NewList(elems), nil
	case yaml.MappingNode:
		return mappingToValue(n)
	}
	return value.NullValue(), nil
}

func mappingToValue(n *yaml.Node) (value.Value, error) {
	var annotations []string
	var fields []value.StructField
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]
		if keyNode.Value == annotationsKey {
			ann, err := stringSequence(valNode)
			if err != nil {
				return value.Value{}, err
			}
			annotations = ann
			continue
		}
		v, err := nodeToValue(valNode)
		if err != nil {
			return value.Value{}, err
		}
		fields = append(fields, value.StructField{Name: keyNode.Value, Value: v})
	}
	out := value.NewStruct(fields)
	if len(annotations) > 0 {
		out = out.WithAnnotations(annotations...)
	}
	return out, nil
}

func stringSequence(n *yaml.Node) ([]string, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("yamlsrc: %s must be a sequence of strings", annotationsKey)
	}
	out := make([]string, 0, len(n.Content))
	for _, c := range n.Content {
		out = append(out, c.Value)
	}
	return out, nil
}

func scalarToValue(n *yaml.Node) (value.Value, error) {
	switch n.Tag {
	case "!!null":
		return value.NullValue(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return value.Value{}, err
		}
		return value.NewBool(b), nil
	case "!!int":
		i, ok := new(big.Int).SetString(n.Value, 10)
		if !ok {
			return value.Value{}, fmt.Errorf("yamlsrc: invalid int %q", n.Value)
		}
		return value.NewInt(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return value.Value{}, err
		}
		return value.NewFloat(f), nil
	case "!decimal":
		return value.NewDecimalFromString(n.Value)
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return value.Value{}, err
		}
		return value.NewTimestamp(t), nil
	case "!!binary":
		raw, err := base64.StdEncoding.DecodeString(n.Value)
		if err != nil {
			return value.Value{}, fmt.Errorf("yamlsrc: invalid blob: %w", err)
		}
		return value.NewBlob(raw), nil
	case "!symbol":
		return value.NewSymbol(n.Value), nil
	default:
		return value.NewString(n.Value), nil
	}
}
