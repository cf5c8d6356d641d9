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
	"errors"
	"fmt"

	"github.com/byte-mods/bit-packer/codec"
)

var (
	// ErrVersionMismatch is matched by *VersionMismatchError
	ErrVersionMismatch = errors.New("bitpacker: version mismatch")
	// ErrTrailingData is returned by envelopes created with WithRejectTrailingData
	// when input remains after the root message
	ErrTrailingData = errors.New("bitpacker: trailing data after message")

	// Aliases for the codec errors, for convenience
	ErrBufferUnderflow = codec.ErrBufferUnderflow
	ErrInvalidUtf8     = codec.ErrInvalidUtf8
)

// VersionMismatchError is returned when the version tag of the input does not
// match the expected version
type VersionMismatchError struct {
	Expected string
	Actual   string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf(
		"bitpacker: version mismatch: expected %q, got %q",
		e.Expected,
		e.Actual,
	)
}

func (e *VersionMismatchError) Is(target error) bool {
	return target == ErrVersionMismatch
}
