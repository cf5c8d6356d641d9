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
	"google.golang.org/protobuf/encoding/protowire"
)

// ZigZag32 maps a signed 32-bit value to an unsigned one so that values of small
// magnitude have small encodings. The result matches ZigZag64 of the same value
func ZigZag32(n int32) uint32 {
	return uint32(protowire.EncodeZigZag(int64(n)))
}

// UnZigZag32 is the inverse of ZigZag32
func UnZigZag32(u uint32) int32 {
	return int32(protowire.DecodeZigZag(uint64(u)))
}

// ZigZag64 maps a signed 64-bit value to an unsigned one. math.MinInt64 maps to
// math.MaxUint64
func ZigZag64(n int64) uint64 {
	return protowire.EncodeZigZag(n)
}

// UnZigZag64 is the inverse of ZigZag64
func UnZigZag64(u uint64) int64 {
	return protowire.DecodeZigZag(u)
}
