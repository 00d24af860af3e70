// This file is part of go-optcall.
//
// Copyright (C) 2026  The go-optcall authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optcall

import "fmt"

type resultKind int

const (
	kindContinue resultKind = iota
	kindExitOk
	kindExitError
)

// Result - Outcome of a single handler invocation and of a whole Parse pass.
//
// There are exactly three outcomes: Continue (keep processing, no process exit
// required), ExitOk (stop, the host should exit successfully) and ExitError
// (stop, the host should exit with the carried status code).
type Result struct {
	kind resultKind
	code int
}

// Continue - Processing should proceed.
func Continue() Result {
	return Result{}
}

// ExitOk - Processing should stop and the host should exit with success.
func ExitOk() Result {
	return Result{kind: kindExitOk}
}

// ExitError - Processing should stop and the host should exit with the given
// status code. The code is propagated unchanged to the caller of Parse.
func ExitError(code int) Result {
	return Result{kind: kindExitError, code: code}
}

// ExitRequested - Indicates the host should exit. True for both ExitOk and ExitError.
func (r Result) ExitRequested() bool {
	return r.kind != kindContinue
}

// Failed - Indicates an error outcome.
func (r Result) Failed() bool {
	return r.kind == kindExitError
}

// Code - Process exit status carried by the result. Zero unless the result is
// an ExitError.
func (r Result) Code() int {
	return r.code
}

func (r Result) String() string {
	switch r.kind {
	case kindExitOk:
		return "exit-ok"
	case kindExitError:
		return fmt.Sprintf("exit-error(%d)", r.code)
	default:
		return "continue"
	}
}
