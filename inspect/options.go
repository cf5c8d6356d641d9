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
	"errors"
	"log/slog"
)

var ErrUnknownMessage = errors.New("inspect: unknown message")

type options struct {
	message       string
	ignoreVersion bool
	logger        *slog.Logger
}

type Option func(*options)

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// WithMessage decodes the named message instead of the root message
func WithMessage(name string) Option {
	return func(o *options) {
		o.message = name
	}
}

// WithIgnoreVersion skips the version tag comparison. The tag is still read
func WithIgnoreVersion() Option {
	return func(o *options) {
		o.ignoreVersion = true
	}
}

// WithLogger specifies the logger to use. The default is slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
