// This file is part of go-optcall.
//
// Copyright (C) 2026  The go-optcall authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optcall

import (
	"fmt"
	"os"
	"strings"

	"github.com/averos/go-optcall/text"
)

// Parse - Runs the parsing state machine over cfg.Args.
//
// Tokens are scanned left to right starting after the program name. Each
// recognized option and each plain argument produces one handler invocation;
// every character of a short option cluster produces its own invocation. The
// pass is fail-fast: the first unknown option or handler rejection prints an
// error naming the offending token to Stderr, dumps the usage text and
// returns an ExitError. An ExitOk from the handler dumps the usage text to
// Stdout before returning, so a help option needs no extra wiring.
//
// A nil descriptor table or an empty argument vector is a fatal configuration
// error: it is reported without a usage dump and the handler is never
// consulted.
func Parse(cfg *Config) Result {
	if cfg == nil {
		fmt.Fprintln(os.Stderr, text.ErrorMissingConfig)
		return ExitError(1)
	}
	if cfg.Descriptors == nil {
		fmt.Fprintln(cfg.stderr(), text.ErrorMissingDescriptors)
		return ExitError(1)
	}
	if len(cfg.Args) == 0 {
		fmt.Fprintln(cfg.stderr(), text.ErrorMissingArguments)
		return ExitError(1)
	}

	descriptors := table(cfg.Descriptors)
	cursor := newCursor(cfg.Args)
	cursor.Next() // skip the program name

	stopped := false
	for cursor.Next() {
		token := cursor.Value()
		Logger.Printf("token %q index %d stopped %v\n", token, cursor.Index(), stopped)

		switch {
		case stopped || token == "-" || !strings.HasPrefix(token, "-"):
			// plain argument
			r := invoke(cfg, 0, token, true, cursor)
			if finish(cfg, r, text.ErrorInArgument, token) {
				return r
			}

		case token == "--":
			stopped = true

		case strings.HasPrefix(token, "--"):
			// long option
			i, value, hasValue, found := findLong(descriptors, token[2:])
			if !found {
				return unknown(cfg, token)
			}
			if !hasValue && cfg.Handler != nil {
				// Candidate only: the handler consumes it by advancing the cursor.
				value, hasValue = cursor.Peek()
			}
			r := invoke(cfg, descriptors[i].ID, value, hasValue, cursor)
			if finish(cfg, r, text.ErrorInOption, token) {
				return r
			}

		default:
			// short option cluster
			cluster := []rune(token[1:])
			for ci, c := range cluster {
				i, found := findShort(descriptors, c)
				if !found {
					return unknown(cfg, "-"+string(c))
				}
				value, hasValue := "", false
				if ci == len(cluster)-1 {
					// Only the last character of a cluster gets the
					// following token as an argument candidate.
					value, hasValue = cursor.Peek()
				}
				r := invoke(cfg, descriptors[i].ID, value, hasValue, cursor)
				if finish(cfg, r, text.ErrorInOption, "-"+string(c)) {
					return r
				}
			}
		}
	}
	return Continue()
}

func invoke(cfg *Config, id int, value string, ok bool, cursor *Cursor) Result {
	if cfg.Handler == nil {
		return Continue()
	}
	return cfg.Handler.Handle(id, value, ok, cursor)
}

// finish - Common exit handling for a handler result. Reports true when the
// pass must stop. The template names the offending token on rejection.
func finish(cfg *Config, r Result, template, token string) bool {
	switch {
	case r.Failed():
		fmt.Fprintf(cfg.stderr(), template+"\n", token)
		Usage(cfg, r.Code())
	case r.ExitRequested():
		Usage(cfg, 0)
	}
	return r.ExitRequested()
}

func unknown(cfg *Config, token string) Result {
	fmt.Fprintf(cfg.stderr(), text.ErrorUnknownOption+"\n", token)
	Usage(cfg, 1)
	return ExitError(1)
}
