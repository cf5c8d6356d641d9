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
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/ettle/strcase"
	"github.com/jinzhu/copier"
)

// StructTagName is the struct tag used to override the wire name of a field.
// A tag value of "-" excludes the field
const StructTagName = "bitpack"

var ErrUnsupportedType = errors.New("schema: unsupported type")

var (
	reflectCache      = map[string]*Descriptor{}
	reflectCacheMutex sync.RWMutex
)

// Reflect derives a descriptor from Go struct types. Each root may be a struct
// value or a pointer to one. Messages are listed in the order they are first
// reached by a depth-first walk starting from the roots, so the first root
// becomes the root message. Fields are listed in declaration order, and every
// exported field must have a type that maps to a Kind: int32, int64, bool,
// string, float32, float64, a struct, or a slice of one of those
func Reflect(version string, roots ...any) (*Descriptor, error) {
	types := make([]reflect.Type, 0, len(roots))
	keyParts := []string{version}
	for _, root := range roots {
		t := reflect.TypeOf(root)
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t == nil || t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("%w: root %T is not a struct", ErrUnsupportedType, root)
		}
		types = append(types, t)
		// Types declared inside functions can share a package and name, so the
		// key uses the type identity
		keyParts = append(keyParts, fmt.Sprintf("%p", t))
	}
	key := strings.Join(keyParts, "|")
	reflectCacheMutex.RLock()
	cached, ok := reflectCache[key]
	reflectCacheMutex.RUnlock()
	if !ok {
		r := &reflector{
			desc:  &Descriptor{Version: version},
			index: map[reflect.Type]int{},
			names: map[string]reflect.Type{},
		}
		for _, t := range types {
			if err := r.visit(t); err != nil {
				return nil, err
			}
		}
		if err := r.desc.Validate(); err != nil {
			return nil, err
		}
		cached = r.desc
		reflectCacheMutex.Lock()
		reflectCache[key] = cached
		reflectCacheMutex.Unlock()
	}
	// Callers get their own copy so that the cached descriptor can't be modified
	var ret Descriptor
	if err := copier.CopyWithOption(&ret, cached, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copy descriptor: %w", err)
	}
	return &ret, nil
}

type reflector struct {
	desc  *Descriptor
	index map[reflect.Type]int
	names map[string]reflect.Type
}

func (r *reflector) visit(t reflect.Type) error {
	if _, ok := r.index[t]; ok {
		return nil
	}
	if other, ok := r.names[t.Name()]; ok {
		return fmt.Errorf(
			"%w: message name %s used by both %s and %s",
			ErrUnsupportedType,
			t.Name(),
			other.PkgPath(),
			t.PkgPath(),
		)
	}
	if t.Name() == "" {
		return fmt.Errorf("%w: anonymous struct", ErrUnsupportedType)
	}
	// Reserve the message slot before walking the fields so that messages are
	// listed in pre-order
	idx := len(r.desc.Messages)
	r.index[t] = idx
	r.names[t.Name()] = t
	r.desc.Messages = append(r.desc.Messages, Message{Name: t.Name()})
	var fields []Field
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup(StructTagName); ok {
			if tag == "-" {
				continue
			}
			name = tag
		} else {
			name = strcase.ToSnake(name)
		}
		field, nested, err := fieldFor(name, sf.Type)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", t.Name(), sf.Name, err)
		}
		if nested != nil {
			if err := r.visit(nested); err != nil {
				return err
			}
		}
		fields = append(fields, field)
	}
	r.desc.Messages[idx].Fields = fields
	return nil
}

// fieldFor maps a Go type to a field. The returned type is non-nil for message
// fields and must be visited
func fieldFor(name string, t reflect.Type) (Field, reflect.Type, error) {
	field := Field{Name: name}
	if t.Kind() == reflect.Slice {
		field.Repeated = true
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int32:
		field.Kind = KindInt32
	case reflect.Int64:
		field.Kind = KindInt64
	case reflect.Bool:
		field.Kind = KindBool
	case reflect.String:
		field.Kind = KindString
	case reflect.Float32:
		field.Kind = KindFloat32
	case reflect.Float64:
		field.Kind = KindFloat64
	case reflect.Struct:
		field.Kind = KindMessage
		field.Message = t.Name()
		return field, t, nil
	default:
		return Field{}, nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
	return field, nil, nil
}
