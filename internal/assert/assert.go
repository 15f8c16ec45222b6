//go:build !debug
// +build !debug

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

// Package assert provides cheap, compiled-out-in-release invariant checks
// for programmer errors (as opposed to ordinary runtime errors, which are
// returned normally). Call sites must guard with "if assert.DEBUG" so the
// Go compiler can eliminate the whole call, arguments included, in release
// builds; Assert itself is a no-op here.
package assert

// DEBUG gates assertion checks at call sites. Build with -tags debug to flip
// it on; see assert_debug.go.
const DEBUG = false

// Assert panics with msg (formatted like fmt.Sprintf) if test is false. Only
// has any effect in builds tagged "debug" — see assert_debug.go.
func Assert(test bool, msg string, a ...interface{}) {}
