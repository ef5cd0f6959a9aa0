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

// Bound returns an upper bound on the machine accuracy around value.
//
// Starting from initialGuess, the candidate epsilon is repeatedly divided by
// divisor while value + epsilon remains distinguishable from value. The
// first candidate that gets absorbed (value + epsilon == value) is one step
// too small, so the previous candidate, reconstructed as epsilon * divisor,
// is returned. The result r satisfies value + r != value and is the largest
// such value reachable by this search; it is tight only up to a factor of
// divisor, not globally.
//
// Preconditions: divisor must be > 1 after conversion to T (divisor <= 1
// never converges; see ValidateDivisors). If initialGuess is already
// absorbed by value, the loop body never runs and the function returns
// initialGuess * divisor unchecked.
func Bound[T Floats](value, divisor, initialGuess T) T {
	epsilon := initialGuess
	for value+epsilon != value {
		epsilon /= divisor
	}
	// epsilon itself was absorbed; the previous probe was not.
	return epsilon * divisor
}

// BoundSequence applies Bound once per divisor, feeding each result forward
// as the next call's guess. Later, finer divisors refine the bound found by
// earlier, coarser ones, so divisors are typically ordered coarse to fine,
// e.g. {2.0, 1.1, 1.01}. initialGuess seeds the first call only.
//
// The result has one element per divisor, in order. An empty divisor list
// yields an empty sequence.
func BoundSequence[T Floats](value T, divisors []T, initialGuess T) []T {
	bounds := make([]T, len(divisors))
	guess := initialGuess
	for i, d := range divisors {
		bounds[i] = Bound(value, d, guess)
		guess = bounds[i]
	}
	return bounds
}
