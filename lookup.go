// This file is part of go-optcall.
//
// Copyright (C) 2026  The go-optcall authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optcall

import "strings"

// findShort - Resolves a short option rune to its descriptor index.
// Ids from the user id range have no character representation and never match.
func findShort(descriptors []Descriptor, r rune) (int, bool) {
	if !isShortID(int(r)) {
		return 0, false
	}
	for i, d := range descriptors {
		if d.ID == int(r) {
			return i, true
		}
	}
	return 0, false
}

// findLong - Resolves a long option token (the text after the leading dashes)
// to a descriptor index. A descriptor matches when its Long name starts the
// token and is followed immediately by the end of the token or by '='. The
// text after '=' is returned as the inline value; '--opt=' carries an empty
// but present value.
//
// First match wins: table order defines precedence, no uniqueness check is
// performed.
func findLong(descriptors []Descriptor, token string) (index int, value string, hasValue bool, found bool) {
	for i, d := range descriptors {
		if d.Long == "" {
			continue
		}
		if !strings.HasPrefix(token, d.Long) {
			continue
		}
		rest := token[len(d.Long):]
		if rest == "" {
			return i, "", false, true
		}
		if rest[0] == '=' {
			return i, rest[1:], true, true
		}
	}
	return 0, "", false, false
}
