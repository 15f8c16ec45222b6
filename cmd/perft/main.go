/*
 * chesscore - bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
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

// Command perft drives the movegen/position core from the outside, the way a
// search or UCI driver would: it loads a FEN, runs perft to a given depth and
// reports nodes, captures, en-passant, castles, promotions and checks.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/internal/logging"
	"github.com/frankkopp/chesscore/internal/perft"
	"github.com/frankkopp/chesscore/internal/position"
)

func main() {
	configFile := flag.String("config", "./chesscore.toml", "path to configuration settings file")
	fen := flag.String("fen", position.StartFen, "FEN of the position to run perft from")
	depth := flag.Int("depth", 5, "perft depth")
	cpuProfile := flag.Bool("cpuprofile", false, "profile the run and write cpu.pprof to the working directory")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	logging.GetLog().Infof("perft fen=%s depth=%d", *fen, *depth)

	if _, err := perft.RunAndReport(*fen, *depth); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
