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

package cmd

import "go.uber.org/zap"

func zapFields(namespace string, props map[string]string) []zap.Field {
	fields := make([]zap.Field, 0, len(props)+1)
	fields = append(fields, zap.String("namespace", namespace))
	for k, v := range props {
		fields = append(fields, zap.String("prop."+k, v))
	}
	return fields
}
