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

package bitpacker

import (
	"log/slog"
)

type EnvelopeOptionFunc func(*Envelope)

// WithInitialCapacity specifies the initial write buffer capacity for messages
// that don't implement codec.Sizer
func WithInitialCapacity(capacity int) EnvelopeOptionFunc {
	return func(e *Envelope) {
		e.capacity = capacity
	}
}

// WithLogger specifies the logger to use. The default is slog.Default()
func WithLogger(logger *slog.Logger) EnvelopeOptionFunc {
	return func(e *Envelope) {
		e.logger = logger
	}
}

// WithRejectTrailingData makes decoding fail with ErrTrailingData when input
// remains after the root message
func WithRejectTrailingData(reject bool) EnvelopeOptionFunc {
	return func(e *Envelope) {
		e.rejectTrailing = reject
	}
}
