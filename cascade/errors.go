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

import "github.com/cascadecfg/cascade/internal/core/adt"

// ConfigError is cascade's single fault kind, surfaced from compilation
// (via New) and from a Result's Must* accessors.
type ConfigError = adt.ConfigError

// ErrorCategory classifies a ConfigError.
type ErrorCategory = adt.ErrorCategory

const (
	NamespaceShape          = adt.NamespaceShape
	Unnamespaced            = adt.Unnamespaced
	MalformedCriterion      = adt.MalformedCriterion
	CriterionNotPrioritized = adt.CriterionNotPrioritized
	SubFieldShape           = adt.SubFieldShape
	SourceIO                = adt.SourceIO
	// ValueAbsent is not a construction-time category; it is used solely
	// by Result's Must* accessors, which promote an absent/wrong-kind
	// value into the same ConfigError type rather than a second error
	// type.
	ValueAbsent = adt.ValueAbsent
)
