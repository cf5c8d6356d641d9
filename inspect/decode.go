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

// Package inspect decodes BitPacker messages using a schema descriptor instead of
// generated code. It is meant for diagnostics: looking at bytes produced by
// another runtime, or by an older build, without having its message types.
package inspect

import (
	"fmt"
	"strings"

	bitpacker "github.com/byte-mods/bit-packer"
	"github.com/byte-mods/bit-packer/buffer"
	"github.com/byte-mods/bit-packer/codec"
	"github.com/byte-mods/bit-packer/schema"
)

// NamedValue is a decoded field
type NamedValue struct {
	Name  string
	Value any
}

// Record is a decoded message. Field values are int32, int64, bool, string,
// float32, float64 or *Record, or a []any of those for repeated fields
type Record struct {
	Type   string
	Fields []NamedValue
}

// Get returns the value of the named field
func (r *Record) Get(name string) (any, bool) {
	for _, field := range r.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return nil, false
}

// Decode decodes an enveloped message described by d. The version tag must match
// d.Version unless WithIgnoreVersion is used. Errors carry the path of the field
// being read and match the codec errors with errors.Is
func Decode(d *schema.Descriptor, data []byte, opts ...Option) (*Record, error) {
	o := newOptions(opts...)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	msg := d.Root()
	if o.message != "" {
		var ok bool
		msg, ok = d.Message(o.message)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMessage, o.message)
		}
	}
	r := buffer.NewReader(data)
	version, err := codec.String(r)
	if err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	if version != d.Version && !o.ignoreVersion {
		return nil, &bitpacker.VersionMismatchError{
			Expected: d.Version,
			Actual:   version,
		}
	}
	dec := &decoder{
		desc: d,
		r:    r,
		path: []pathElem{{name: msg.Name}},
	}
	ret, err := dec.message(msg)
	if err != nil {
		return nil, err
	}
	if r.Remaining() > 0 {
		o.logger.Debug(
			"ignoring trailing data after message",
			"component", "inspect",
			"message", msg.Name,
			"length", r.Remaining(),
		)
	}
	return ret, nil
}

type decoder struct {
	desc *schema.Descriptor
	r    *buffer.Reader
	path []pathElem
}

// pathElem is a message name, a field name or an array index. The path is only
// rendered when decoding fails
type pathElem struct {
	name  string
	index int
}

func (d *decoder) fail(err error) error {
	var sb strings.Builder
	for i, elem := range d.path {
		switch {
		case elem.name == "":
			fmt.Fprintf(&sb, "[%d]", elem.index)
		case i > 0:
			sb.WriteString("." + elem.name)
		default:
			sb.WriteString(elem.name)
		}
	}
	return fmt.Errorf("%s: %w", sb.String(), err)
}

func (d *decoder) message(msg *schema.Message) (*Record, error) {
	ret := &Record{
		Type:   msg.Name,
		Fields: make([]NamedValue, 0, len(msg.Fields)),
	}
	for _, field := range msg.Fields {
		d.path = append(d.path, pathElem{name: field.Name})
		var val any
		var err error
		if field.Repeated {
			val, err = d.repeated(field)
		} else {
			val, err = d.single(field)
		}
		if err != nil {
			return nil, err
		}
		d.path = d.path[:len(d.path)-1]
		ret.Fields = append(ret.Fields, NamedValue{Name: field.Name, Value: val})
	}
	return ret, nil
}

func (d *decoder) repeated(field schema.Field) ([]any, error) {
	n, err := codec.Count(d.r)
	if err != nil {
		return nil, d.fail(err)
	}
	if err := codec.CheckCount(d.r, n); err != nil {
		return nil, d.fail(err)
	}
	ret := make([]any, 0, min(n, d.r.Remaining()))
	d.path = append(d.path, pathElem{})
	for i := range n {
		d.path[len(d.path)-1].index = i
		val, err := d.single(field)
		if err != nil {
			return nil, err
		}
		ret = append(ret, val)
	}
	d.path = d.path[:len(d.path)-1]
	return ret, nil
}

func (d *decoder) single(field schema.Field) (any, error) {
	if field.Kind == schema.KindMessage {
		msg, ok := d.desc.Message(field.Message)
		if !ok {
			// Not reachable for a validated descriptor
			return nil, d.fail(fmt.Errorf("%w: %s", ErrUnknownMessage, field.Message))
		}
		return d.message(msg)
	}
	var val any
	var err error
	switch field.Kind {
	case schema.KindInt32:
		val, err = codec.Int32(d.r)
	case schema.KindInt64:
		val, err = codec.Int64(d.r)
	case schema.KindBool:
		val, err = codec.Bool(d.r)
	case schema.KindString:
		val, err = codec.String(d.r)
	case schema.KindFloat32:
		val, err = codec.Float32(d.r)
	case schema.KindFloat64:
		val, err = codec.Float64(d.r)
	default:
		return nil, d.fail(fmt.Errorf("unsupported kind %s", field.Kind))
	}
	if err != nil {
		return nil, d.fail(err)
	}
	return val, nil
}
