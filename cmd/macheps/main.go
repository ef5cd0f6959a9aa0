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

// Command macheps empirically estimates machine accuracy for several
// floating-point precisions and writes the refinement sequences to
// output.txt for plotting.
//
// For each precision it chains the geometric-shrink probe over a divisor
// schedule, prints the final bound next to the theoretical machine epsilon,
// and appends the full bound sequence as one comma-separated line of
// output.txt. It takes no flags and no environment variables.
package main

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"os"

	"github.com/ajroetker/go-macheps/eps"
	"github.com/ajroetker/go-macheps/seqio"
)

const (
	value        = 1.0 // reference magnitude the accuracy is defined about
	initialGuess = 1.0
	outputFile   = "output.txt"

	// Significand width of x87 extended precision, the widest format the
	// original hardware-probing experiment covered.
	extendedPrec = 64
)

// divisors is the probe schedule, coarse to fine. Declared as float32 and
// converted up so every precision searches with the same divisor values.
var divisors = []float32{2.0, 1.1, 1.01, 1.001, 1.0001, 1.00001}

// halfDivisors is the schedule for the 16-bit formats. The fine tail of the
// main schedule rounds to exactly 1.0 in binary16 and bfloat16, which would
// never converge, so these use values exactly representable in both.
var halfDivisors = []float32{2.0, 1.5, 1.25, 1.125, 1.0625}

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "macheps: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	fmt.Fprintf(out, "Probing on %s.\n", hostFPFeatures())

	singleDivisors := divisors
	doubleDivisors := make([]float64, len(divisors))
	extendedDivisors := make([]*big.Float, len(divisors))
	for i, d := range divisors {
		doubleDivisors[i] = float64(d)
		extendedDivisors[i] = new(big.Float).SetPrec(extendedPrec).SetFloat64(float64(d))
	}
	f16Divisors := make([]eps.Float16, len(halfDivisors))
	bf16Divisors := make([]eps.BFloat16, len(halfDivisors))
	for i, d := range halfDivisors {
		f16Divisors[i] = eps.NewFloat16(d)
		bf16Divisors[i] = eps.NewBFloat16(d)
	}

	// The probers have no divisor checks of their own; a bad schedule loops
	// forever, so reject it before starting.
	if err := eps.ValidateDivisors(singleDivisors); err != nil {
		return err
	}
	if err := eps.ValidateDivisors(doubleDivisors); err != nil {
		return err
	}
	if err := eps.ValidateDivisorsBig(extendedDivisors); err != nil {
		return err
	}
	if err := eps.ValidateDivisorsF16(f16Divisors); err != nil {
		return err
	}
	if err := eps.ValidateDivisorsBF16(bf16Divisors); err != nil {
		return err
	}

	singleBounds := eps.BoundSequence[float32](value, singleDivisors, initialGuess)
	doubleBounds := eps.BoundSequence[float64](value, doubleDivisors, initialGuess)
	extendedBounds := eps.BoundSequenceBig(
		new(big.Float).SetPrec(extendedPrec).SetFloat64(value),
		extendedDivisors,
		new(big.Float).SetPrec(extendedPrec).SetFloat64(initialGuess),
	)
	f16Bounds := eps.BoundSequenceF16(eps.NewFloat16(value), f16Divisors, eps.NewFloat16(initialGuess))
	bf16Bounds := eps.BoundSequenceBF16(eps.NewBFloat16(value), bf16Divisors, eps.NewBFloat16(initialGuess))

	// Theoretical values: IEEE 754-2008 for binary16/32/64 and bfloat16,
	// x87 for the 64-bit extended significand.
	fmt.Fprintf(out, "Single precision accuracy upper bound: %g, compared with a theoretical value of %g.\n",
		singleBounds[len(singleBounds)-1], math.Exp2(-24))
	fmt.Fprintf(out, "Double precision accuracy upper bound: %g, compared with a theoretical value of %g.\n",
		doubleBounds[len(doubleBounds)-1], math.Exp2(-53))
	fmt.Fprintf(out, "Extended precision accuracy upper bound: %g, compared with a theoretical value of %g.\n",
		extendedBounds[len(extendedBounds)-1], math.Exp2(-64))
	fmt.Fprintf(out, "Half precision accuracy upper bound: %g, compared with a theoretical value of %g.\n",
		f16Bounds[len(f16Bounds)-1].Float32(), math.Exp2(-11))
	fmt.Fprintf(out, "BFloat16 accuracy upper bound: %g, compared with a theoretical value of %g.\n",
		bf16Bounds[len(bf16Bounds)-1].Float32(), math.Exp2(-8))

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputFile, err)
	}
	defer f.Close()

	if err := seqio.WriteSequence(f, singleBounds); err != nil {
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}
	if err := seqio.WriteSequence(f, doubleBounds); err != nil {
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}
	if err := seqio.WriteSequenceBig(f, extendedBounds); err != nil {
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}
	if err := seqio.WriteSequenceF16(f, f16Bounds); err != nil {
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}
	if err := seqio.WriteSequenceBF16(f, bf16Bounds); err != nil {
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}
	return f.Close()
}
