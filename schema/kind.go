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

// Package schema describes BitPacker schemas: an ordered list of messages, each
// with ordered, typed fields, plus the version string written into every
// envelope.
//
// Descriptors are what the schema compiler works from. At runtime they are used
// to validate schemas, to decode messages without generated code (see the
// inspect package), and to fingerprint a schema so that two implementations can
// confirm that they agree on it.
package schema

import (
	"fmt"
)

// Kind is the wire type of a field
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt32
	KindInt64
	KindBool
	KindString
	KindFloat32
	KindFloat64
	KindMessage
)

// Names used for the primitive kinds in schema files
var kindNames = map[Kind]string{
	KindInt32:   "int",
	KindInt64:   "long",
	KindBool:    "bool",
	KindString:  "string",
	KindFloat32: "float",
	KindFloat64: "double",
	KindMessage: "message",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsPrimitive returns true for every valid kind except KindMessage
func (k Kind) IsPrimitive() bool {
	return k > KindInvalid && k < KindMessage
}

// ParseType maps a schema type name to a Kind. Primitive type names accept both
// the schema file spelling (int, long, float, double) and the sized spelling
// (int32, int64, float32, float64). Any other non-empty name is treated as a
// reference to a message
func ParseType(name string) (Kind, string) {
	switch name {
	case "":
		return KindInvalid, ""
	case "int", "int32":
		return KindInt32, ""
	case "long", "int64":
		return KindInt64, ""
	case "bool":
		return KindBool, ""
	case "string":
		return KindString, ""
	case "float", "float32":
		return KindFloat32, ""
	case "double", "float64":
		return KindFloat64, ""
	default:
		return KindMessage, name
	}
}
