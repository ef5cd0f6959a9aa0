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

// BoundBF16 is Bound for bfloat16. Same contract and preconditions.
func BoundBF16(value, divisor, initialGuess BFloat16) BFloat16 {
	epsilon := initialGuess
	for value.Add(epsilon) != value {
		epsilon = epsilon.Quo(divisor)
	}
	return epsilon.Mul(divisor)
}

// BoundSequenceBF16 is BoundSequence for bfloat16.
func BoundSequenceBF16(value BFloat16, divisors []BFloat16, initialGuess BFloat16) []BFloat16 {
	bounds := make([]BFloat16, len(divisors))
	guess := initialGuess
	for i, d := range divisors {
		bounds[i] = BoundBF16(value, d, guess)
		guess = bounds[i]
	}
	return bounds
}
