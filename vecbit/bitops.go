// Copyright 2026 go-vecbit Authors
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

package vecbit

import "math/bits"

// This file provides single-element bit operations for every storage width.
// Generic code cannot call the width-specific math/bits functions directly,
// so each helper dispatches on the concrete element type.

// PopCount counts the set bits in a single storage element.
func PopCount[T Element](val T) int {
	switch v := any(val).(type) {
	case uint8:
		return bits.OnesCount8(v)
	case uint16:
		return bits.OnesCount16(v)
	case uint32:
		return bits.OnesCount32(v)
	case uint64:
		return bits.OnesCount64(v)
	default:
		return 0
	}
}

// leadingZeros counts leading zero bits in a single storage element.
func leadingZeros[T Element](val T) int {
	switch v := any(val).(type) {
	case uint8:
		return bits.LeadingZeros8(v)
	case uint16:
		return bits.LeadingZeros16(v)
	case uint32:
		return bits.LeadingZeros32(v)
	case uint64:
		return bits.LeadingZeros64(v)
	default:
		return 0
	}
}

// trailingZeros counts trailing zero bits in a single storage element.
func trailingZeros[T Element](val T) int {
	switch v := any(val).(type) {
	case uint8:
		return bits.TrailingZeros8(v)
	case uint16:
		return bits.TrailingZeros16(v)
	case uint32:
		return bits.TrailingZeros32(v)
	case uint64:
		return bits.TrailingZeros64(v)
	default:
		return 0
	}
}
