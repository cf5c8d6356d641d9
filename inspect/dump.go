// Copyright 2026 Blink Labs Software
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

package inspect

import (
	"fmt"
	"strings"
)

// Dump generates an indented string representing a decoded value for debugging
// purposes. Each line starts with prefix
func Dump(v any, prefix string) string {
	var ret strings.Builder
	dump(&ret, v, prefix, "")
	return ret.String()
}

func dump(ret *strings.Builder, v any, prefix string, label string) {
	// Nested values get 2 more spaces
	newPrefix := prefix + "  "
	switch v := v.(type) {
	case *Record:
		fmt.Fprintf(ret, "%s%s%s {\n", prefix, label, v.Type)
		for _, field := range v.Fields {
			dump(ret, field.Value, newPrefix, field.Name+": ")
		}
		ret.WriteString(prefix + "},\n")
	case []any:
		fmt.Fprintf(ret, "%s%s[\n", prefix, label)
		for _, val := range v {
			dump(ret, val, newPrefix, "")
		}
		ret.WriteString(prefix + "],\n")
	case int32, int64:
		fmt.Fprintf(ret, "%s%s%d,\n", prefix, label, v)
	case float32, float64:
		fmt.Fprintf(ret, "%s%s%v,\n", prefix, label, v)
	default:
		fmt.Fprintf(ret, "%s%s%#v,\n", prefix, label, v)
	}
}
