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

// Package value defines the self-describing data tree that cascade
// evaluates against: the universe of terminal values a compiled rule's
// fields may hold, and the ordered struct/list containers that hold them.
//
// Parsing such a tree from bytes (Ion text or binary) is out of scope for
// this package; callers hand the compiler already-parsed Value trees. See
// package source for the pluggable loader seam.
package value

import (
	"fmt"
	"math/big"
	"time"

	"github.com/cockroachdb/apd/v2"
)

// Kind identifies which alternative of Value is populated.
type Kind int

const (
	// Null is the absence of a value.
	Null Kind = iota
	Bool
	Int
	Decimal
	Float
	String
	Symbol
	Timestamp
	Blob
	List
	Struct
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Decimal:
		return "decimal"
	case Float:
		return "float"
	case String:
		return "string"
	case Symbol:
		return "symbol"
	case Timestamp:
		return "timestamp"
	case Blob:
		return "blob"
	case List:
		return "list"
	case Struct:
		return "struct"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// decimalContext is a 64-digit-precision apd context. No constructor in
// this package uses it: NewDecimal copies its argument as is and
// NewDecimalFromString parses without rounding.
var decimalContext = apd.BaseContext.WithPrecision(64)

// NewInt wraps an arbitrary-precision integer as a Value.
func NewInt(i *big.Int) Value {
	return Value{kind: Int, i: new(big.Int).Set(i)}
}

// NewIntFromInt64 is a convenience constructor for small integers.
func NewIntFromInt64(i int64) Value {
	return NewInt(big.NewInt(i))
}

// NewDecimal wraps an arbitrary-precision decimal as a Value.
func NewDecimal(d *apd.Decimal) Value {
	v := Value{kind: Decimal, d: new(apd.Decimal)}
	v.d.Set(d)
	return v
}

// NewDecimalFromString parses s (e.g. "19.99") into a decimal Value.
func NewDecimalFromString(s string) (Value, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Value{}, fmt.Errorf("value: invalid decimal %q: %w", s, err)
	}
	return Value{kind: Decimal, d: d}, nil
}

func NewFloat(f float64) Value     { return Value{kind: Float, f: f} }
func NewBool(b bool) Value         { return Value{kind: Bool, b: b} }
func NewString(s string) Value     { return Value{kind: String, s: s} }
func NewSymbol(s string) Value     { return Value{kind: Symbol, s: s} }
func NewTimestamp(t time.Time) Value {
	return Value{kind: Timestamp, t: t}
}
func NewBlob(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: Blob, blob: cp}
}
func NewList(vs []Value) Value {
	cp := make([]Value, len(vs))
	copy(cp, vs)
	return Value{kind: List, list: cp}
}
func NewStruct(fields []StructField) Value {
	cp := make([]StructField, len(fields))
	copy(cp, fields)
	return Value{kind: Struct, strct: cp}
}

// NullValue returns the null value.
func NullValue() Value { return Value{kind: Null} }
