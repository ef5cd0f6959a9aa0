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
	"math"
	"testing"
)

func TestFloat16RoundTrip(t *testing.T) {
	// Values exactly representable in binary16 must survive the round trip.
	exact := []float32{0, 1, -1, 0.5, 1.5, 2, 1024, 65504, 6.103515625e-05}
	for _, f := range exact {
		if got := NewFloat16(f).Float32(); got != f {
			t.Errorf("round trip of %g: got %g", f, got)
		}
	}
}

func TestFloat16Arithmetic(t *testing.T) {
	if got, want := Float16One.Add(Float16One), NewFloat16(2.0); got != want {
		t.Errorf("1+1: got %g, want %g", got.Float32(), want.Float32())
	}
	if got, want := Float16One.Quo(NewFloat16(2.0)), NewFloat16(0.5); got != want {
		t.Errorf("1/2: got %g, want %g", got.Float32(), want.Float32())
	}
	if got, want := NewFloat16(0.5).Mul(NewFloat16(2.0)), Float16One; got != want {
		t.Errorf("0.5*2: got %g, want %g", got.Float32(), want.Float32())
	}
}

func TestFloat16AddRoundsToEven(t *testing.T) {
	// 1 + 2^-11 sits exactly halfway between 1 and the next binary16
	// value; round-to-nearest-even must absorb it. This is the boundary
	// the prober searches for.
	tie := NewFloat16(float32(math.Exp2(-11)))
	if got := Float16One.Add(tie); got != Float16One {
		t.Errorf("1 + 2^-11: got %g (bits %#04x), want exactly 1", got.Float32(), got.Bits())
	}
	above := NewFloat16(float32(math.Exp2(-10)))
	if got := Float16One.Add(above); got == Float16One {
		t.Error("1 + 2^-10 was absorbed; it is a whole ulp")
	}
}

func TestFloat16SpecialValues(t *testing.T) {
	if !NewFloat16(float32(math.NaN())).IsNaN() {
		t.Error("NaN conversion lost NaN")
	}
	if got := NewFloat16(100000); got != Float16Inf {
		t.Errorf("overflow: got bits %#04x, want +Inf", got.Bits())
	}
}

func TestBFloat16RoundTrip(t *testing.T) {
	exact := []float32{0, 1, -1, 0.5, 1.5, 2, 256, 1.1875}
	for _, f := range exact {
		if got := NewBFloat16(f).Float32(); got != f {
			t.Errorf("round trip of %g: got %g", f, got)
		}
	}
}

func TestBFloat16AddRoundsToEven(t *testing.T) {
	tie := NewBFloat16(float32(math.Exp2(-8)))
	if got := BFloat16One.Add(tie); got != BFloat16One {
		t.Errorf("1 + 2^-8: got %g (bits %#04x), want exactly 1", got.Float32(), got.Bits())
	}
	above := NewBFloat16(float32(math.Exp2(-7)))
	if got := BFloat16One.Add(above); got == BFloat16One {
		t.Error("1 + 2^-7 was absorbed; it is a whole ulp")
	}
}

func TestBFloat16NaN(t *testing.T) {
	if !NewBFloat16(float32(math.NaN())).IsNaN() {
		t.Error("NaN conversion lost NaN")
	}
}
