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

package config

// searchConfiguration holds every tunable knob the search package reads.
// Field names match the pruning/extension technique they gate so a TOML
// override file reads like a checklist of what's switched on.
type searchConfiguration struct {
	TTSizeMB int
	ETSizeMB int
	PTSizeMB int

	UseQuiescence bool
	UseSEE        bool
	UseKiller     int // killer moves are stored when > 0; movegen keeps two slots per ply
	UseHistory    bool
	UseCounterMove bool
	UseIID        bool
	IIDMinDepth   int
	IIDReduction  int

	UseNullMove     bool
	NullMoveMinDepth int
	NullMoveReduction int
	NullMoveVerifyDepth int

	UseRFP      bool
	RFPMaxDepth int
	RFPMargin   int

	UseMDP bool // mate-distance pruning

	UseCheckExtension   bool
	UseThreatExtension  bool

	UseFutility      bool
	FutilityMaxDepth int
	FutilityMargin   int

	UseLMP      bool
	LMPMaxDepth int

	UseLMR        bool
	LMRMinDepth   int
	LMRMinMoveNo  int

	UseAspiration     bool
	AspirationWindow  int
	UseMTDf           bool

	NumberOfWorkers int
}

func init() {
	Settings.Search = searchConfiguration{
		TTSizeMB: 64,
		ETSizeMB: 16,
		PTSizeMB: 16,

		UseQuiescence:  true,
		UseSEE:         true,
		UseKiller:      2,
		UseHistory:     true,
		UseCounterMove: true,
		UseIID:         true,
		IIDMinDepth:    5,
		IIDReduction:   2,

		UseNullMove:         true,
		NullMoveMinDepth:    3,
		NullMoveReduction:   2,
		NullMoveVerifyDepth: 10,

		UseRFP:      true,
		RFPMaxDepth: 8,
		RFPMargin:   85,

		UseMDP: true,

		UseCheckExtension:  true,
		UseThreatExtension: false,

		UseFutility:      true,
		FutilityMaxDepth: 6,
		FutilityMargin:   90,

		UseLMP:      true,
		LMPMaxDepth: 8,

		UseLMR:       true,
		LMRMinDepth:  3,
		LMRMinMoveNo: 4,

		UseAspiration:    true,
		AspirationWindow: 25,
		UseMTDf:          false,

		NumberOfWorkers: 1,
	}
}
