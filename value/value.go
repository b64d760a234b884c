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

package value

import (
	"fmt"
	"math/big"
	"time"

	"github.com/cockroachdb/apd/v2"
)

// StructField is one field of a Struct value. Field names may repeat
// within a single Struct; order is significant and preserved.
type StructField struct {
	Name  string
	Value Value
}

// Value is the self-describing data tree cascade rules and results are
// built from: null, bool, arbitrary-precision int, arbitrary-precision
// decimal, float, string, symbol, timestamp, blob, list, and struct
// (ordered, repeatable-key fields). It is an immutable value type; every
// constructor and accessor copies rather than aliases caller-owned
// slices/maps.
type Value struct {
	kind Kind

	// annotations are the ordered text labels attached to this value in
	// its source record. They are consumed by the compiler and are not
	// part of a materialized result.
	annotations []string

	b     bool
	i     *big.Int
	d     *apd.Decimal
	f     float64
	s     string
	t     time.Time
	blob  []byte
	list  []Value
	strct []StructField
}

// Kind reports which alternative is populated.
func (v Value) Kind() Kind { return v.kind }

// Annotations returns the ordered text labels attached to v in its
// source record, e.g. ["namespace", "Products"] or ["color-blue",
// "color-red"]. Empty for values built programmatically without
// WithAnnotations.
func (v Value) Annotations() []string {
	cp := make([]string, len(v.annotations))
	copy(cp, v.annotations)
	return cp
}

// WithAnnotations returns a copy of v carrying the given ordered
// annotation labels.
func (v Value) WithAnnotations(annotations ...string) Value {
	v.annotations = append([]string(nil), annotations...)
	return v
}

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == Null }

// Clone returns a deep copy of v so callers cannot mutate engine-interned
// state through a returned Basic value.
func (v Value) Clone() Value {
	switch v.kind {
	case Int:
		return NewInt(v.i)
	case Decimal:
		return NewDecimal(v.d)
	case Blob:
		return NewBlob(v.blob)
	case List:
		cp := make([]Value, len(v.list))
		for i, e := range v.list {
			cp[i] = e.Clone()
		}
		return Value{kind: List, list: cp}
	case Struct:
		cp := make([]StructField, len(v.strct))
		for i, f := range v.strct {
			cp[i] = StructField{Name: f.Name, Value: f.Value.Clone()}
		}
		return Value{kind: Struct, strct: cp}
	default:
		return v
	}
}

// Bool returns v's boolean value and whether v is a non-null Bool.
func (v Value) Bool() (bool, bool) {
	if v.kind != Bool {
		return false, false
	}
	return v.b, true
}

// Int returns v's integer value and whether v is a non-null Int.
func (v Value) Int() (*big.Int, bool) {
	if v.kind != Int {
		return nil, false
	}
	return new(big.Int).Set(v.i), true
}

// Decimal returns v's decimal value and whether v is a non-null Decimal.
func (v Value) Decimal() (*apd.Decimal, bool) {
	if v.kind != Decimal {
		return nil, false
	}
	d := new(apd.Decimal)
	d.Set(v.d)
	return d, true
}

// Float returns v's float value and whether v is a non-null Float.
func (v Value) Float() (float64, bool) {
	if v.kind != Float {
		return 0, false
	}
	return v.f, true
}

// Text returns v's text content for either String or Symbol kinds, and
// whether v was one of those. String and Symbol are treated equivalently
// for field names and criterion parsing.
func (v Value) Text() (string, bool) {
	if v.kind != String && v.kind != Symbol {
		return "", false
	}
	return v.s, true
}

// Timestamp returns v's timestamp value and whether v is non-null.
func (v Value) Timestamp() (time.Time, bool) {
	if v.kind != Timestamp {
		return time.Time{}, false
	}
	return v.t, true
}

// Blob returns v's raw bytes and whether v is a non-null Blob.
func (v Value) Blob() ([]byte, bool) {
	if v.kind != Blob {
		return nil, false
	}
	cp := make([]byte, len(v.blob))
	copy(cp, v.blob)
	return cp, true
}

// List returns v's elements and whether v is a non-null List.
func (v Value) List() ([]Value, bool) {
	if v.kind != List {
		return nil, false
	}
	cp := make([]Value, len(v.list))
	copy(cp, v.list)
	return cp, true
}

// Struct returns v's ordered fields and whether v is a non-null Struct.
func (v Value) Struct() ([]StructField, bool) {
	if v.kind != Struct {
		return nil, false
	}
	cp := make([]StructField, len(v.strct))
	copy(cp, v.strct)
	return cp, true
}

// Field returns the first field named name, in declaration order.
func (v Value) Field(name string) (Value, bool) {
	for _, f := range v.strct {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Fields returns every field named name, in declaration order, supporting
// the data model's "keys repeatable" invariant.
func (v Value) Fields(name string) []Value {
	var out []Value
	for _, f := range v.strct {
		if f.Name == name {
			out = append(out, f.Value)
		}
	}
	return out
}

func (v Value) String() string {
	switch v.kind {
	case Null:
		return "null"
	case Bool:
		return fmt.Sprintf("%t", v.b)
	case Int:
		return v.i.String()
	case Decimal:
		return v.d.String()
	case Float:
		return fmt.Sprintf("%g", v.f)
	case String:
		return fmt.Sprintf("%q", v.s)
	case Symbol:
		return v.s
	case Timestamp:
		return v.t.Format(time.RFC3339Nano)
	case Blob:
		return fmt.Sprintf("blob(%d bytes)", len(v.blob))
	case List:
		return fmt.Sprintf("list(%d)", len(v.list))
	case Struct:
		return fmt.Sprintf("struct(%d)", len(v.strct))
	}
	return "invalid"
}
