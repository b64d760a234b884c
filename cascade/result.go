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
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/cockroachdb/apd/v2"

	"github.com/cascadecfg/cascade/internal/core/adt"
	"github.com/cascadecfg/cascade/value"
)

// Result is a materialized field→Value map. Its accessors are pluggable
// "as_<type>()" type adapters: each returns (zero, false) when the field
// is absent, null, or of the wrong kind; the Must* variants instead
// promote that into a *ConfigError.
type Result map[string]value.Value

func (r Result) lookup(field string) (value.Value, bool) {
	v, ok := r[field]
	if !ok || v.IsNull() {
		return value.Value{}, false
	}
	return v, true
}

func (r Result) Bool(field string) (bool, bool) {
	v, ok := r.lookup(field)
	if !ok {
		return false, false
	}
	return v.Bool()
}

func (r Result) Int(field string) (*big.Int, bool) {
	v, ok := r.lookup(field)
	if !ok {
		return nil, false
	}
	return v.Int()
}

func (r Result) Decimal(field string) (*apd.Decimal, bool) {
	v, ok := r.lookup(field)
	if !ok {
		return nil, false
	}
	return v.Decimal()
}

func (r Result) Float(field string) (float64, bool) {
	v, ok := r.lookup(field)
	if !ok {
		return 0, false
	}
	return v.Float()
}

func (r Result) Text(field string) (string, bool) {
	v, ok := r.lookup(field)
	if !ok {
		return "", false
	}
	return v.Text()
}

func (r Result) Timestamp(field string) (time.Time, bool) {
	v, ok := r.lookup(field)
	if !ok {
		return time.Time{}, false
	}
	return v.Timestamp()
}

func (r Result) Blob(field string) ([]byte, bool) {
	v, ok := r.lookup(field)
	if !ok {
		return nil, false
	}
	return v.Blob()
}

func (r Result) List(field string) ([]value.Value, bool) {
	v, ok := r.lookup(field)
	if !ok {
		return nil, false
	}
	return v.List()
}

func (r Result) Struct(field string) ([]value.StructField, bool) {
	v, ok := r.lookup(field)
	if !ok {
		return nil, false
	}
	return v.Struct()
}

func absent(field string) error {
	return &adt.ConfigError{
		Category: adt.ValueAbsent,
		Record:   "<query result>",
		Path:     []string{field},
		Detail:   fmt.Sprintf("field %q is missing, null, or of the wrong kind", field),
	}
}

func (r Result) MustInt(field string) (*big.Int, error) {
	v, ok := r.Int(field)
	if !ok {
		return nil, absent(field)
	}
	return v, nil
}

func (r Result) MustDecimal(field string) (*apd.Decimal, error) {
	v, ok := r.Decimal(field)
	if !ok {
		return nil, absent(field)
	}
	return v, nil
}

func (r Result) MustText(field string) (string, error) {
	v, ok := r.Text(field)
	if !ok {
		return "", absent(field)
	}
	return v, nil
}

func (r Result) MustBool(field string) (bool, error) {
	v, ok := r.Bool(field)
	if !ok {
		return false, absent(field)
	}
	return v, nil
}

// MarshalJSON renders every field as plain JSON data, for the CLI's --json
// output and the HTTP facade's response body alike. Decimal and
// arbitrary-precision int both degrade to their string form, since
// encoding/json has no arbitrary-precision numeric type.
func (r Result) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r))
	for k, v := range r {
		out[k] = jsonValue(v)
	}
	return json.Marshal(out)
}

func jsonValue(v value.Value) interface{} {
	switch v.Kind() {
	case value.Null:
		return nil
	case value.Bool:
		b, _ := v.Bool()
		return b
	case value.Int:
		i, _ := v.Int()
		return i.String()
	case value.Decimal:
		d, _ := v.Decimal()
		return d.String()
	case value.Float:
		f, _ := v.Float()
		return f
	case value.String, value.Symbol:
		s, _ := v.Text()
		return s
	case value.Timestamp:
		t, _ := v.Timestamp()
		return t.Format("2006-01-02T15:04:05.999999999Z07:00")
	case value.Blob:
		b, _ := v.Blob()
		return string(b)
	case value.List:
		elems, _ := v.List()
		out := make([]interface{}, len(elems))
		for i, e := range elems {
			out[i] = jsonValue(e)
		}
		return out
	case value.Struct:
		fields, _ := v.Struct()
		out := make(map[string]interface{}, len(fields))
		for _, f := range fields {
			out[f.Name] = jsonValue(f.Value)
		}
		return out
	default:
		return nil
	}
}
