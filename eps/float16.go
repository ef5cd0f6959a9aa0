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

// Float16 is an IEEE 754 half-precision (binary16) number stored as raw
// bits: sign (1) | exponent (5, bias 15) | mantissa (10).
//
// Go has no native float16 arithmetic, so operations promote to float32,
// compute, and demote with round-to-nearest-even. A float32 holds any
// binary16 value exactly, and the sum, product, or quotient of two binary16
// values computed in float32 then rounded to binary16 is correctly rounded,
// which is what the accuracy probe depends on.
type Float16 uint16

const (
	Float16Zero Float16 = 0x0000
	Float16One  Float16 = 0x3C00
	Float16Inf  Float16 = 0x7C00
	Float16NaN  Float16 = 0x7E00
)

// NewFloat16 converts a float32 to Float16 with round-to-nearest-even.
func NewFloat16(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := uint16((bits >> 16) & 0x8000)
	exp := int((bits>>23)&0xFF) - 127 + 15
	mant := bits & 0x7FFFFF

	if exp <= 0 {
		if exp < -10 {
			// Too small even for a denormal; underflow to zero.
			return Float16(sign)
		}
		// Denormal result: restore the implicit leading 1, then shift.
		mant = (mant | 0x800000) >> uint(1-exp)
		if mant&0x1000 != 0 && (mant&0x2FFF) != 0 {
			mant += 0x2000
		}
		return Float16(sign | uint16(mant>>13))
	} else if exp == 0xFF-127+15 {
		if mant != 0 {
			return Float16(sign | 0x7E00 | uint16(mant>>13))
		}
		return Float16(sign | 0x7C00)
	} else if exp >= 31 {
		// Overflow to infinity.
		return Float16(sign | 0x7C00)
	}

	// Normal case. Bit 12 is the rounding bit, bits 0-11 get truncated.
	if mant&0x1000 != 0 {
		if mant&0x2FFF != 0 {
			mant += 0x2000
			if mant&0x800000 != 0 {
				mant = 0
				exp++
				if exp >= 31 {
					return Float16(sign | 0x7C00)
				}
			}
		}
	}

	return Float16(sign | uint16(exp<<10) | uint16(mant>>13))
}

// Float32 converts h to float32. The conversion is exact.
func (h Float16) Float32() float32 {
	bits := uint32(h)
	sign := bits >> 15
	exp := (bits >> 10) & 0x1F
	mant := bits & 0x3FF

	if exp == 0 {
		if mant == 0 {
			return math.Float32frombits(sign << 31)
		}
		// Denormal: normalize by shifting the leading 1 into place.
		exp = 1
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		mant &= 0x3FF
		exp = uint32(int32(exp) + 127 - 15)
	} else if exp == 31 {
		if mant == 0 {
			return math.Float32frombits((sign << 31) | 0x7F800000)
		}
		return math.Float32frombits((sign << 31) | 0x7FC00000 | (mant << 13))
	} else {
		exp = exp + 127 - 15
	}

	return math.Float32frombits((sign << 31) | (exp << 23) | (mant << 13))
}

// Add returns the correctly rounded binary16 sum h + x.
func (h Float16) Add(x Float16) Float16 {
	return NewFloat16(h.Float32() + x.Float32())
}

// Mul returns the correctly rounded binary16 product h * x.
func (h Float16) Mul(x Float16) Float16 {
	return NewFloat16(h.Float32() * x.Float32())
}

// Quo returns the correctly rounded binary16 quotient h / x.
func (h Float16) Quo(x Float16) Float16 {
	return NewFloat16(h.Float32() / x.Float32())
}

// IsNaN reports whether h is a NaN value.
func (h Float16) IsNaN() bool {
	return (h>>10)&0x1F == 31 && h&0x3FF != 0
}

// Bits returns the raw uint16 representation.
func (h Float16) Bits() uint16 {
	return uint16(h)
}

// Float16FromBits creates a Float16 from raw bits.
func Float16FromBits(bits uint16) Float16 {
	return Float16(bits)
}
