//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pkg/profile"

	"github.com/frankkopp/RetroGo/internal/config"
	"github.com/frankkopp/RetroGo/internal/logging"
	"github.com/frankkopp/RetroGo/internal/retro"
	"github.com/frankkopp/RetroGo/internal/util"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", "", "extended FEN to enumerate legal unmoves for")
	batchFile := flag.String("batch", "", "path to a file of extended FENs (one per line) to verify in parallel")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of this run to the working directory")
	stats := flag.Bool("stats", false, "print timing and memory statistics after a batch run")
	versionInfo := flag.Bool("version", false, "prints version and exits")
	flag.Parse()

	if *versionInfo {
		fmt.Println("retrowalk (RetroGo retrograde unmove generator)")
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()

	switch {
	case *batchFile != "":
		if err := runBatch(*batchFile, *stats); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case *fen != "":
		if err := runSingle(*fen); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// runSingle parses one extended FEN and prints every legal unmove found for
// it, one per line.
func runSingle(fen string) error {
	rb, err := retro.NewRetroBoard(fen)
	if err != nil {
		return err
	}
	mg := retro.NewRetroMovegen()
	legal := mg.GenerateLegalUnmoves(rb)
	fmt.Printf("%s\n%d legal unmove(s):\n", rb.String(), legal.Len())
	legal.ForEach(func(_ int, u retro.UnMove) {
		fmt.Println(u.String(rb.PieceAt(u.To).TypeOf()))
	})
	return nil
}

// runBatch reads one extended FEN per line from path and verifies each
// concurrently, bounded to runtime.NumCPU() in flight at a time. Every line
// is reported - a parse or setup failure on one FEN does not stop the
// others - so the errgroup here is used purely for its goroutine-lifecycle
// convenience (matching moveslice.MoveSlice.ForEachParallel's WaitGroup
// shape), not for aborting the batch on first error. When stats is set, the
// batch's wall-clock time and post-run memory statistics are printed to
// stdout after the results.
func runBatch(path string, stats bool) error {
	if stats {
		defer util.TimeTrack(time.Now(), "runBatch")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	sem := make(chan struct{}, runtime.NumCPU())
	results := make([]string, len(lines))
	start := time.Now()
	var eg errgroup.Group
	for i, line := range lines {
		i, line := i, line
		sem <- struct{}{}
		eg.Go(func() error {
			defer func() { <-sem }()
			results[i] = verifyOne(line)
			return nil
		})
	}
	_ = eg.Wait()
	elapsed := time.Since(start)

	for _, r := range results {
		fmt.Println(r)
	}
	if stats {
		fmt.Printf("%d positions/sec\n", util.Nps(uint64(len(lines)), elapsed))
		fmt.Println(util.MemStat())
	}
	return nil
}

func verifyOne(fen string) string {
	rb, err := retro.NewRetroBoard(fen)
	if err != nil {
		return fmt.Sprintf("%s\tERROR\t%s", fen, err)
	}
	mg := retro.NewRetroMovegen()
	legal := mg.GenerateLegalUnmoves(rb)
	return fmt.Sprintf("%s\tOK\t%d legal unmove(s)", fen, legal.Len())
}
