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

// Package config holds engine-core configuration: the log level and the
// piece material values used by move ordering and SEE. Settings default to
// sane values and can be overridden from a TOML file.
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/frankkopp/chesscore/internal/logging"
	"github.com/frankkopp/chesscore/internal/types"
)

// ConfFile is the path to the optional TOML configuration file, relative to
// the working directory.
var ConfFile = "./chesscore.toml"

// Settings is the global configuration, populated by Setup.
var Settings Config

var initialized = false

// Config mirrors the on-disk TOML layout.
type Config struct {
	Log  logConfig  `toml:"log"`
	Eval evalConfig `toml:"eval"`
}

type logConfig struct {
	Level string `toml:"level"`
}

// evalConfig overrides the material values used by SEE and move ordering;
// zero fields keep the package default.
type evalConfig struct {
	PawnValue   int `toml:"pawn_value"`
	KnightValue int `toml:"knight_value"`
	BishopValue int `toml:"bishop_value"`
	RookValue   int `toml:"rook_value"`
	QueenValue  int `toml:"queen_value"`
}

// Setup reads ConfFile if present and applies its settings; a missing file
// is not an error; the engine runs on defaults.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		logging.GetLog().Warningf("config: %s not found or invalid, using defaults (%v)", ConfFile, err)
	}
	if Settings.Log.Level != "" {
		applyLogLevel(Settings.Log.Level)
	}
	applyEvalOverrides(Settings.Eval)
	initialized = true
}

func applyEvalOverrides(e evalConfig) {
	overrides := []struct {
		pt types.PieceType
		v  int
	}{
		{types.Pawn, e.PawnValue},
		{types.Knight, e.KnightValue},
		{types.Bishop, e.BishopValue},
		{types.Rook, e.RookValue},
		{types.Queen, e.QueenValue},
	}
	for _, o := range overrides {
		if o.v != 0 {
			types.SetValue(o.pt, types.Value(o.v))
		}
	}
}

func applyLogLevel(levelName string) {
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		logging.GetLog().Warningf("config: invalid log level %q, keeping default", levelName)
		return
	}
	logging.SetLevel(level)
}
