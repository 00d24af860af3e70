// This file is part of go-optcall.
//
// Copyright (C) 2026  The go-optcall authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package optcall - declarative command line option parser driven by a
descriptor table and a single per-option callback.

The host declares its options as a table of descriptors and hands the full
argument vector plus a handler to Parse. The engine classifies each token
(POSIX-like short option clusters, GNU-like long options with '--name' and
'--name=value', the '--' terminator and plain arguments), resolves options
against the table and invokes the handler once per occurrence. The handler
owns argument consumption: the value it receives may be a candidate (the
token following the option) that it consumes by advancing the cursor.

Usage

	const optOutput = 'o'

	descriptors := []optcall.Descriptor{
		{ID: 'h', Long: "help", Description: "Show this help."},
		{ID: optOutput, Long: "output", ArgName: "FILE", Description: "Write output to FILE."},
	}
	cfg := &optcall.Config{
		Args:        os.Args,
		Descriptors: descriptors,
		Version:     "example 1.0.0",
		Handler: optcall.HandlerFunc(func(id int, value string, ok bool, cursor *optcall.Cursor) optcall.Result {
			switch id {
			case 0:
				fmt.Println("argument:", value)
			case 'h':
				return optcall.ExitOk()
			case optOutput:
				if !ok {
					return optcall.ExitError(1)
				}
				cursor.Advance(1) // consume the following token
			}
			return optcall.Continue()
		}),
	}
	if r := optcall.Parse(cfg); r.ExitRequested() {
		os.Exit(r.Code())
	}

Unknown short or long options always abort the parse with a usage dump. A
'--' token stops option parsing: every token after it is delivered to the
handler as a plain argument, even when it starts with a dash.
*/
package optcall

import (
	"io"
	"log"
	"os"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Config - Caller-owned parse configuration.
//
// The descriptor table and argument vector are read-only for the duration of
// a call; the engine keeps no state across calls, so a single Config can be
// parsed repeatedly.
type Config struct {
	// Args - Argument vector, argv style: Args[0] is the program name and
	// is never classified as an option or argument.
	Args []string

	// Handler - Optional per-option callback. When nil, declared options
	// still parse but are inert and plain arguments are discarded.
	Handler Handler

	// Descriptors - The option table. A table terminated by an all-zero
	// Descriptor is honored; a plain slice works just as well.
	Descriptors []Descriptor

	// Version - Program version and description banner printed at the top
	// of the usage text.
	Version string

	// Stdout and Stderr default to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

func (cfg *Config) stdout() io.Writer {
	if cfg.Stdout != nil {
		return cfg.Stdout
	}
	return os.Stdout
}

func (cfg *Config) stderr() io.Writer {
	if cfg.Stderr != nil {
		return cfg.Stderr
	}
	return os.Stderr
}
