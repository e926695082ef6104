/*
 * corechess - a Go chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 corechess contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import (
	"strconv"
	"strings"

	"github.com/lkaiser/corechess/internal/util"
)

// Value is a centipawn evaluation, with a reserved range above
// ValueCheckMateThreshold used to encode mate distance.
type Value int16

const (
	ValueZero               Value = 0
	ValueDraw               Value = 0
	ValueOne                Value = 1
	ValueInf                Value = 15_000
	ValueNA                 Value = -ValueInf - 1
	ValueMax                Value = 10_000
	ValueMin                Value = -ValueMax
	ValueCheckMate          Value = ValueMax
	ValueCheckMateThreshold Value = ValueCheckMate - MaxDepth - 1
)

// IsValid reports whether v falls within [ValueMin, ValueMax].
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue reports whether v encodes a forced mate rather than a
// centipawn score.
func (v Value) IsCheckMateValue() bool {
	return util.Abs(int(v)) > int(ValueCheckMateThreshold) && util.Abs(int(v)) <= int(ValueCheckMate)
}

// String renders v the way a UCI "info score" field would: "mate N", "cp N"
// or "N/A".
func (v Value) String() string {
	var b strings.Builder
	switch {
	case v.IsCheckMateValue():
		b.WriteString("mate ")
		if v < ValueZero {
			b.WriteString("-")
		}
		pliesToMate := int(ValueCheckMate) - util.Abs(int(v))
		b.WriteString(strconv.Itoa((pliesToMate + 1) / 2))
	case v == ValueNA:
		b.WriteString("N/A")
	default:
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}

// Bound records whether a stored search value is exact, or only a bound
// because of an alpha/beta cutoff (named EXACT/LOWER/UPPER per search
// convention; the teacher this was adapted from calls these EXACT/ALPHA/BETA).
type Bound int8

const (
	BoundNone  Bound = 0
	BoundExact Bound = 1
	BoundUpper Bound = 2 // value was an upper bound (failed low, alpha cutoff)
	BoundLower Bound = 3 // value was a lower bound (failed high, beta cutoff)
	boundLength int  = 4
)

func (b Bound) IsValid() bool { return b < 4 }

var boundToString = [boundLength]string{"none", "exact", "upper", "lower"}

func (b Bound) String() string { return boundToString[b] }
