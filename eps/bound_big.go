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

import "math/big"

// This file provides the prober for arbitrary mantissa widths via
// math/big.Float. The working precision is taken from value.Prec(): with
// round-to-nearest-even and a p-bit mantissa, the chained search around 1.0
// converges to roughly 2^-p. Precision 64 reproduces the significand of x87
// extended precision (long double on most x86 toolchains), which Go has no
// native type for.

// BoundBig is Bound over big.Float at value's precision. The inputs are not
// mutated; the result is freshly allocated. Same contract and preconditions
// as Bound.
func BoundBig(value, divisor, initialGuess *big.Float) *big.Float {
	prec := value.Prec()
	epsilon := new(big.Float).SetPrec(prec).Set(initialGuess)
	sum := new(big.Float).SetPrec(prec)
	for sum.Add(value, epsilon).Cmp(value) != 0 {
		epsilon = new(big.Float).SetPrec(prec).Quo(epsilon, divisor)
	}
	return new(big.Float).SetPrec(prec).Mul(epsilon, divisor)
}

// BoundSequenceBig is BoundSequence over big.Float at value's precision.
func BoundSequenceBig(value *big.Float, divisors []*big.Float, initialGuess *big.Float) []*big.Float {
	bounds := make([]*big.Float, len(divisors))
	guess := initialGuess
	for i, d := range divisors {
		bounds[i] = BoundBig(value, d, guess)
		guess = bounds[i]
	}
	return bounds
}
