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

	"github.com/samber/lo"
)

var ErrInvalidSchema = errors.New("schema: invalid schema")

// ValidationError describes a single problem with a descriptor
type ValidationError struct {
	Message string
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Message == "":
		return "schema: " + e.Reason
	case e.Field == "":
		return fmt.Sprintf("schema: message %s: %s", e.Message, e.Reason)
	default:
		return fmt.Sprintf(
			"schema: message %s: field %s: %s",
			e.Message,
			e.Field,
			e.Reason,
		)
	}
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// Validate checks that the descriptor is usable. All problems found are
// returned together. The version may be empty, as it is for envelopes. A valid
// descriptor has at least one message,
// unique message names, unique field names within each message, valid field
// kinds, message references that resolve, and no message that contains itself
// through a chain of non-repeated or repeated message fields
func (d *Descriptor) Validate() error {
	var errs []error
	if len(d.Messages) == 0 {
		errs = append(errs, &ValidationError{Reason: "no messages defined"})
	}
	msgNames := lo.Map(d.Messages, func(m Message, _ int) string {
		return m.Name
	})
	for _, dup := range lo.FindDuplicates(msgNames) {
		errs = append(errs, &ValidationError{
			Message: dup,
			Reason:  "duplicate message name",
		})
	}
	known := lo.SliceToMap(d.Messages, func(m Message) (string, *Message) {
		return m.Name, &m
	})
	for _, msg := range d.Messages {
		if msg.Name == "" {
			errs = append(errs, &ValidationError{Reason: "message with empty name"})
		}
		fieldNames := lo.Map(msg.Fields, func(f Field, _ int) string {
			return f.Name
		})
		for _, dup := range lo.FindDuplicates(fieldNames) {
			errs = append(errs, &ValidationError{
				Message: msg.Name,
				Field:   dup,
				Reason:  "duplicate field name",
			})
		}
		for _, field := range msg.Fields {
			if field.Name == "" {
				errs = append(errs, &ValidationError{
					Message: msg.Name,
					Reason:  "field with empty name",
				})
			}
			switch {
			case field.Kind == KindMessage:
				if _, ok := known[field.Message]; !ok {
					errs = append(errs, &ValidationError{
						Message: msg.Name,
						Field:   field.Name,
						Reason:  fmt.Sprintf("unknown message type %q", field.Message),
					})
				}
			case field.Kind.IsPrimitive():
				if field.Message != "" {
					errs = append(errs, &ValidationError{
						Message: msg.Name,
						Field:   field.Name,
						Reason:  "primitive field references a message",
					})
				}
			default:
				errs = append(errs, &ValidationError{
					Message: msg.Name,
					Field:   field.Name,
					Reason:  "invalid kind " + field.Kind.String(),
				})
			}
		}
	}
	if cycle := d.findCycle(known); cycle != nil {
		errs = append(errs, &ValidationError{
			Message: cycle[0],
			Reason:  fmt.Sprintf("message contains itself: %v", cycle),
		})
	}
	return errors.Join(errs...)
}

// findCycle does a depth-first walk over message references and returns the
// first cycle found as a path of message names
func (d *Descriptor) findCycle(known map[string]*Message) []string {
	const (
		unvisited = iota
		inProgress
		done
	)
	state := make(map[string]int, len(known))
	var path []string
	var visit func(name string) []string
	visit = func(name string) []string {
		switch state[name] {
		case done:
			return nil
		case inProgress:
			start := lo.IndexOf(path, name)
			cycle := append([]string{}, path[start:]...)
			return append(cycle, name)
		}
		msg, ok := known[name]
		if !ok {
			return nil
		}
		state[name] = inProgress
		path = append(path, name)
		for _, field := range msg.Fields {
			if field.Kind != KindMessage {
				continue
			}
			if cycle := visit(field.Message); cycle != nil {
				return cycle
			}
		}
		path = path[:len(path)-1]
		state[name] = done
		return nil
	}
	for _, msg := range d.Messages {
		if cycle := visit(msg.Name); cycle != nil {
			return cycle
		}
	}
	return nil
}
