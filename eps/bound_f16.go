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

// This file provides the binary16 variant of the prober. Float16 cannot
// satisfy the Floats constraint (its representation is uint16), so the
// search is monomorphized over the promote-compute-demote arithmetic.
// Every comparison and rounding step happens at binary16 granularity, which
// is the whole point: the probe must observe binary16 absorption, not
// float32's.

// BoundF16 is Bound for IEEE binary16. Same contract and preconditions.
func BoundF16(value, divisor, initialGuess Float16) Float16 {
	epsilon := initialGuess
	for value.Add(epsilon) != value {
		epsilon = epsilon.Quo(divisor)
	}
	return epsilon.Mul(divisor)
}

// BoundSequenceF16 is BoundSequence for IEEE binary16.
func BoundSequenceF16(value Float16, divisors []Float16, initialGuess Float16) []Float16 {
	bounds := make([]Float16, len(divisors))
	guess := initialGuess
	for i, d := range divisors {
		bounds[i] = BoundF16(value, d, guess)
		guess = bounds[i]
	}
	return bounds
}
