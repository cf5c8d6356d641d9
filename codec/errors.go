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

package codec

import (
	"errors"

	"github.com/byte-mods/bit-packer/buffer"
)

var (
	// ErrBufferUnderflow is returned when the input ends before a value is complete
	ErrBufferUnderflow = buffer.ErrUnderflow
	// ErrInvalidUtf8 is returned when a string field does not contain valid UTF-8
	ErrInvalidUtf8 = errors.New("codec: invalid UTF-8 string")
	// ErrVarintOverflow is returned when a varint does not fit in 64 bits
	ErrVarintOverflow = errors.New("codec: varint overflows 64 bits")
	// ErrIntegerOverflow is returned when a decoded value does not fit the field type
	ErrIntegerOverflow = errors.New("codec: integer overflows field type")
	// ErrInvalidLength is returned for negative string lengths or array counts
	ErrInvalidLength = errors.New("codec: invalid length")
)
