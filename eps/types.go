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

// Package eps empirically estimates machine accuracy bounds.
//
// Machine accuracy (machine epsilon) is the smallest value that can be
// meaningfully added to a reference value: the smallest epsilon for which
// value + epsilon is still distinguishable from value under the type's
// rounding. The package probes for it by geometric shrinking:
//
//	bounds := eps.BoundSequence[float32](1.0, []float32{2.0, 1.1, 1.01}, 1.0)
//
// The generic functions cover float32 and float64. Monomorphized variants
// cover IEEE binary16 (Float16), bfloat16 (BFloat16), and arbitrary mantissa
// widths via math/big (BoundBig), which at precision 64 reproduces x87
// extended precision.
package eps

// Floats is a constraint for the native floating-point types the generic
// probers operate on.
type Floats interface {
	~float32 | ~float64
}
