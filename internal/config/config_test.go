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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/types"
)

func TestSetupOnMissingFileKeepsDefaults(t *testing.T) {
	initialized = false
	ConfFile = "./does-not-exist.toml"

	before := types.Pawn.ValueOf()
	Setup()
	assert.Equal(t, before, types.Pawn.ValueOf())
}

func TestSetupIsIdempotent(t *testing.T) {
	initialized = false
	ConfFile = "./does-not-exist.toml"
	Setup()
	Settings.Eval.PawnValue = 999
	Setup()
	assert.NotEqual(t, types.Value(999), types.Pawn.ValueOf(), "a second Setup call must be a no-op")
}

func TestApplyEvalOverridesSkipsZeroFields(t *testing.T) {
	before := types.Queen.ValueOf()
	applyEvalOverrides(evalConfig{PawnValue: 150})
	assert.Equal(t, types.Value(150), types.Pawn.ValueOf())
	assert.Equal(t, before, types.Queen.ValueOf(), "a zero field must leave the existing value untouched")
	types.SetValue(types.Pawn, types.Value(100))
}

func TestApplyLogLevelRejectsUnknownName(t *testing.T) {
	// Must not panic; falls back to the existing level.
	applyLogLevel("not-a-real-level")
}
