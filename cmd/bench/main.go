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

// Command bench drives the engine core directly for perft correctness
// checks and search throughput measurements, with no protocol front-end
// attached.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lkaiser/corechess/internal/config"
	"github.com/lkaiser/corechess/internal/movegen"
	"github.com/lkaiser/corechess/internal/position"
	"github.com/lkaiser/corechess/internal/search"
	"github.com/lkaiser/corechess/internal/util"
	. "github.com/lkaiser/corechess/internal/types"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", position.StartFen, "fen of the position to test")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on -fen and exit")
	onDemand := flag.Bool("ondemand", true, "use on-demand move generation for perft")
	searchDepth := flag.Int("depth", 0, "run a depth-limited search on -fen and exit")
	moveTime := flag.Int("movetime", 0, "run a time-limited search on -fen for this many milliseconds and exit")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the run to ./cpu.pprof")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	switch {
	case *perftDepth > 0:
		runPerft(*fen, *perftDepth, *onDemand)
	case *searchDepth > 0 || *moveTime > 0:
		runSearch(*fen, *searchDepth, *moveTime)
	default:
		printEnvironment()
	}
}

func runPerft(fen string, depth int, onDemand bool) {
	var perft movegen.Perft
	out.Printf("perft depth %d on %s\n", depth, fen)
	perft.Run(fen, depth, onDemand)
	out.Printf("nodes: %d captures: %d ep: %d checks: %d mates: %d castles: %d promotions: %d\n",
		perft.Nodes, perft.CaptureCounter, perft.EnpassantCounter, perft.CheckCounter,
		perft.CheckMateCounter, perft.CastleCounter, perft.PromotionCounter)
}

func runSearch(fen string, depth int, moveTimeMs int) {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid fen:", err)
		os.Exit(1)
	}

	limits := search.NewSearchLimits()
	if depth > 0 {
		limits.Depth = depth
	}
	if moveTimeMs > 0 {
		limits.TimeControl = true
		limits.MoveTime = time.Duration(moveTimeMs) * time.Millisecond
	}

	observer := make(chan search.Info, 64)
	handle := search.Start(p, *limits, observer)
	for info := range observer {
		out.Printf("depth %2d  score %-8s nodes %-10d nps %-10d pv %s\n",
			info.Depth, info.Score.String(), info.Nodes,
			util.Nps(info.Nodes, info.Elapsed), movesToString(info.PV))
		if info.Final {
			break
		}
	}
	handle.Stop()

	out.Printf("bestmove %s\n", handle.BestMove().StringUci())
}

func movesToString(moves []Move) string {
	s := ""
	for i, m := range moves {
		if i > 0 {
			s += " "
		}
		s += m.StringUci()
	}
	return s
}

func printEnvironment() {
	out.Println("corechess bench")
	out.Printf("  go version     : %s\n", runtime.Version())
	out.Printf("  arch/compiler  : %s/%s\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  cpus           : %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  working dir    : %s\n", cwd)
	out.Println(util.MemStat())
	out.Println("\nusage: -perft N [-fen ...] | -depth N [-fen ...] | -movetime MS [-fen ...]")
}
