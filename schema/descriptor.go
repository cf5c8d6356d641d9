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

package schema

import (
	"fmt"
	"strings"

	"github.com/byte-mods/bit-packer/internal/cbor"
)

// Field is a single message field. Fields are identified by position, never by
// name, on the wire
type Field struct {
	cbor.StructAsArray
	Name     string
	Kind     Kind
	Message  string
	Repeated bool
}

// NewField returns a field for a schema type name, as accepted by ParseType
func NewField(name string, typeName string, repeated bool) Field {
	kind, message := ParseType(typeName)
	return Field{
		Name:     name,
		Kind:     kind,
		Message:  message,
		Repeated: repeated,
	}
}

// TypeName returns the field type as written in a schema file
func (f Field) TypeName() string {
	name := f.Kind.String()
	if f.Kind == KindMessage {
		name = f.Message
	}
	if f.Repeated {
		name += "[]"
	}
	return name
}

// Message is an ordered list of fields
type Message struct {
	cbor.StructAsArray
	Name   string
	Fields []Field
}

// Field returns the field with the specified name
func (m *Message) Field(name string) (*Field, bool) {
	for i := range m.Fields {
		if m.Fields[i].Name == name {
			return &m.Fields[i], true
		}
	}
	return nil, false
}

// Descriptor is a complete schema. The first message is the root message
type Descriptor struct {
	cbor.StructAsArray
	Version  string
	Messages []Message
}

// Root returns the root message, or nil for an empty descriptor
func (d *Descriptor) Root() *Message {
	if len(d.Messages) == 0 {
		return nil
	}
	return &d.Messages[0]
}

// Message returns the message with the specified name
func (d *Descriptor) Message(name string) (*Message, bool) {
	for i := range d.Messages {
		if d.Messages[i].Name == name {
			return &d.Messages[i], true
		}
	}
	return nil, false
}

// String renders the descriptor in schema file syntax
func (d *Descriptor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "version = %s\n", d.Version)
	for _, msg := range d.Messages {
		fmt.Fprintf(&sb, "\nclass %s {\n", msg.Name)
		for _, field := range msg.Fields {
			fmt.Fprintf(&sb, "    %s %s;\n", field.TypeName(), field.Name)
		}
		sb.WriteString("}\n")
	}
	return sb.String()
}
