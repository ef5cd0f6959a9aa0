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

// Package seqio writes numeric sequences as plain text for downstream
// plotting tools.
//
// Each sequence becomes one newline-terminated line of comma-separated
// values, so a consumer can read the file line by line and split on commas
// (numpy's fromstring with sep="," parses a line directly). Values use the
// shortest representation that round-trips at the sequence's precision.
package seqio

import (
	"io"
	"math/big"
	"strconv"
	"strings"
	"unsafe"

	"github.com/ajroetker/go-macheps/eps"
)

// WriteSequence writes values as one comma-separated line. An empty
// sequence writes an empty line, keeping line numbers aligned with the
// sequences that produced them.
func WriteSequence[T eps.Floats](w io.Writer, values []T) error {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return writeLine(w, parts)
}

// WriteSequenceF16 writes a binary16 sequence as one comma-separated line.
// Values are printed via their exact float32 representation.
func WriteSequenceF16(w io.Writer, values []eps.Float16) error {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(float64(v.Float32()), 'g', -1, 32)
	}
	return writeLine(w, parts)
}

// WriteSequenceBF16 writes a bfloat16 sequence as one comma-separated line.
// Values are printed via their exact float32 representation.
func WriteSequenceBF16(w io.Writer, values []eps.BFloat16) error {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(float64(v.Float32()), 'g', -1, 32)
	}
	return writeLine(w, parts)
}

// WriteSequenceBig writes a big.Float sequence as one comma-separated line,
// using the minimal digits needed to round-trip each value at its precision.
func WriteSequenceBig(w io.Writer, values []*big.Float) error {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Text('g', -1)
	}
	return writeLine(w, parts)
}

func formatFloat[T eps.Floats](v T) string {
	if unsafe.Sizeof(v) == 4 {
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

func writeLine(w io.Writer, parts []string) error {
	_, err := io.WriteString(w, strings.Join(parts, ",")+"\n")
	return err
}
