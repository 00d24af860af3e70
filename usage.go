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
	"strings"
	"unicode/utf8"
)

// DescriptionColumn - Column where option descriptions begin. Headers longer
// than the column push their description to the next line.
var DescriptionColumn = 26

// Usage - Renders the version banner and the option listing for every
// descriptor in table order.
//
// A non-zero status classifies the invocation as an error and selects Stderr;
// Stdout is used otherwise. Rendering is pure text production: the same
// config always produces the same output.
//
// Descriptions come from two sources, static lines first: the descriptor's
// Description and, for matchable ids, the text reported by the handler's
// Describe method. Both are split on line breaks and aligned to
// DescriptionColumn.
func Usage(cfg *Config, status int) {
	if cfg == nil {
		return
	}
	w := cfg.stdout()
	if status != 0 {
		w = cfg.stderr()
	}
	fmt.Fprintf(w, "%s\n", cfg.Version)
	for _, d := range table(cfg.Descriptors) {
		header := optionHeader(d)
		fmt.Fprint(w, header)
		lines := descriptionLines(cfg, d)
		if len(lines) == 0 {
			fmt.Fprint(w, "\n")
			continue
		}
		printed := utf8.RuneCountInString(header)
		if printed > DescriptionColumn {
			// Never pack the description against an over-long header.
			fmt.Fprint(w, "\n")
			printed = 0
		}
		for i, line := range lines {
			if i == 0 {
				fmt.Fprintf(w, "%s: %s\n", padTo(DescriptionColumn, printed), line)
				continue
			}
			fmt.Fprintf(w, "%s%s\n", padTo(DescriptionColumn, 0), line)
		}
	}
	fmt.Fprint(w, "\n")
}

// optionHeader - Formats the '-x, --name ARG' header for one descriptor.
func optionHeader(d Descriptor) string {
	out := "  "
	if isShortID(d.ID) {
		out += "-" + string(rune(d.ID))
		if d.Long != "" {
			out += ", "
		}
	}
	if d.Long != "" {
		out += "--" + d.Long
	}
	if d.ArgName != "" {
		out += " " + d.ArgName
	}
	return out
}

// descriptionLines - Static description lines followed by the dynamic ones.
func descriptionLines(cfg *Config, d Descriptor) []string {
	lines := []string{}
	if d.Description != "" {
		lines = append(lines, strings.Split(d.Description, "\n")...)
	}
	if cfg.Handler != nil && describable(d.ID) {
		if dynamic, ok := cfg.Handler.Describe(d.ID); ok && dynamic != "" {
			lines = append(lines, strings.Split(dynamic, "\n")...)
		}
	}
	return lines
}

func padTo(column, printed int) string {
	if column > printed {
		return strings.Repeat(" ", column-printed)
	}
	return ""
}
