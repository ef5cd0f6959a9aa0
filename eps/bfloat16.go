// Copyright 2026 go-macheps Authors
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

package eps

import "math"

// BFloat16 is a Brain Float 16 number stored as raw bits: sign (1) |
// exponent (8, bias 127) | mantissa (7). It is a float32 with the low 16
// mantissa bits dropped, so it keeps float32's range at ~2.4 decimal digits
// of precision.
//
// Like Float16, arithmetic promotes to float32 and demotes with
// round-to-nearest-even.
type BFloat16 uint16

const (
	BFloat16Zero BFloat16 = 0x0000
	BFloat16One  BFloat16 = 0x3F80
	BFloat16Inf  BFloat16 = 0x7F80
	BFloat16NaN  BFloat16 = 0x7FC0
)

// NewBFloat16 converts a float32 to BFloat16 with round-to-nearest-even.
func NewBFloat16(f float32) BFloat16 {
	bits := math.Float32bits(f)

	// NaN payloads would be destroyed by the rounding add; return a quiet
	// NaN with the input's sign instead.
	if bits&0x7FFFFFFF > 0x7F800000 {
		return BFloat16((bits >> 16) | 0x0040)
	}

	// Round to nearest even: bit 15 is the rounding bit, bit 16 the parity
	// of the kept mantissa.
	bits += uint32(0x7FFF) + ((bits >> 16) & 1)
	return BFloat16(bits >> 16)
}

// Float32 converts b to float32. Since bfloat16 is truncated float32, this
// is a single shift and always exact.
func (b BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(b) << 16)
}

// Add returns the correctly rounded bfloat16 sum b + x.
func (b BFloat16) Add(x BFloat16) BFloat16 {
	return NewBFloat16(b.Float32() + x.Float32())
}

// Mul returns the correctly rounded bfloat16 product b * x.
func (b BFloat16) Mul(x BFloat16) BFloat16 {
	return NewBFloat16(b.Float32() * x.Float32())
}

// Quo returns the correctly rounded bfloat16 quotient b / x.
func (b BFloat16) Quo(x BFloat16) BFloat16 {
	return NewBFloat16(b.Float32() / x.Float32())
}

// IsNaN reports whether b is a NaN value.
func (b BFloat16) IsNaN() bool {
	return (b>>7)&0xFF == 0xFF && b&0x7F != 0
}

// Bits returns the raw uint16 representation.
func (b BFloat16) Bits() uint16 {
	return uint16(b)
}

// BFloat16FromBits creates a BFloat16 from raw bits.
func BFloat16FromBits(bits uint16) BFloat16 {
	return BFloat16(bits)
}
