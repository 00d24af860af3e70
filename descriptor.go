// This file is part of go-optcall.
//
// Copyright (C) 2026  The go-optcall authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optcall

import "unicode"

// Descriptor - Static metadata for one option.
//
// The ID is either a printable non-whitespace rune, in which case it doubles
// as the short option character, or a value from the reserved user id range
// (see UserID) for long-option-only entries. Ids outside both ranges never
// match a command line token and such descriptors are usage-display-only.
//
// An all-zero Descriptor is the table terminator: entries after it are ignored.
// Defining two descriptors with the same ID is a configuration error; lookups
// resolve to the first match in table order.
type Descriptor struct {
	ID          int
	Long        string // Long option name, without the leading dashes.
	ArgName     string // Argument placeholder shown in the usage text.
	Description string // Static description. Lines are split on '\n'.
}

// The user id range sits above the Unicode code point space so it can never
// collide with a short option rune.
const (
	userIDBase = unicode.MaxRune + 1
	userIDMax  = userIDBase + 0xFFFF
)

// UserID - Returns the nth id from the reserved user id range.
// Use it for options that only have a long form:
//
//	optcall.Descriptor{ID: optcall.UserID(0), Long: "verbose"}
func UserID(n int) int {
	return userIDBase + n
}

// isShortID - A short option id is a single printable non-whitespace rune
// distinct from 0.
func isShortID(id int) bool {
	if id <= 0 || id > unicode.MaxRune {
		return false
	}
	return unicode.IsPrint(rune(id)) && !unicode.IsSpace(rune(id))
}

func isUserID(id int) bool {
	return id >= userIDBase && id <= userIDMax
}

// describable - Indicates the id belongs to a real, matchable option rather
// than a display-only or terminator entry.
func describable(id int) bool {
	return isShortID(id) || isUserID(id)
}

// table - Honors the all-zero terminator sentinel: returns the descriptors up
// to but not including it, or the full slice when no sentinel is present.
func table(descriptors []Descriptor) []Descriptor {
	for i, d := range descriptors {
		if d.ID == 0 && d.Long == "" && d.ArgName == "" && d.Description == "" {
			return descriptors[:i]
		}
	}
	return descriptors
}
