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

import (
	"fmt"
	"math/big"
)

// The probers deliberately carry no divisor checks: a divisor <= 1 makes the
// shrink loop spin forever, and the contract puts validation on the caller.
// These helpers are that caller-side check. They test the divisor as the
// target type sees it, which matters for the 16-bit formats: 1.0001 is a
// perfectly good float64 divisor but rounds to exactly 1.0 in binary16.

// ValidateDivisors returns an error if any divisor is <= 1.
func ValidateDivisors[T Floats](divisors []T) error {
	for i, d := range divisors {
		if d <= 1 {
			return fmt.Errorf("divisor %v at index %d is <= 1 and would never converge", d, i)
		}
	}
	return nil
}

// ValidateDivisorsF16 returns an error if any divisor is <= 1 in binary16.
func ValidateDivisorsF16(divisors []Float16) error {
	one := Float16One.Float32()
	for i, d := range divisors {
		if d.IsNaN() || d.Float32() <= one {
			return fmt.Errorf("divisor %v (bits %#04x) at index %d is <= 1 in binary16 and would never converge", d.Float32(), d.Bits(), i)
		}
	}
	return nil
}

// ValidateDivisorsBF16 returns an error if any divisor is <= 1 in bfloat16.
func ValidateDivisorsBF16(divisors []BFloat16) error {
	one := BFloat16One.Float32()
	for i, d := range divisors {
		if d.IsNaN() || d.Float32() <= one {
			return fmt.Errorf("divisor %v (bits %#04x) at index %d is <= 1 in bfloat16 and would never converge", d.Float32(), d.Bits(), i)
		}
	}
	return nil
}

// ValidateDivisorsBig returns an error if any divisor is <= 1.
func ValidateDivisorsBig(divisors []*big.Float) error {
	one := big.NewFloat(1)
	for i, d := range divisors {
		if d.Cmp(one) <= 0 {
			return fmt.Errorf("divisor %v at index %d is <= 1 and would never converge", d, i)
		}
	}
	return nil
}
