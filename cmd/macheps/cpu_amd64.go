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

//go:build amd64

package main

import (
	"fmt"

	"golang.org/x/sys/cpu"
)

// hostFPFeatures describes the floating-point hardware behind a run, so
// the reported bounds can be tied to the machine that produced them.
//
// F16C (hardware float16 conversions) has no flag in x/sys/cpu; FMA is used
// as a proxy since every F16C-capable x86 CPU also carries FMA.
func hostFPFeatures() string {
	hasF16C := cpu.X86.HasAVX && cpu.X86.HasFMA
	hasBF16 := cpu.X86.HasAVX512 && cpu.X86.HasAVX512BF16
	return fmt.Sprintf("amd64 (FMA=%v F16C=%v AVX512BF16=%v)",
		cpu.X86.HasFMA, hasF16C, hasBF16)
}
