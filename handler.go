// This file is part of go-optcall.
//
// Copyright (C) 2026  The go-optcall authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optcall

// Handler - Host-supplied callback, the sole extension point of the parser.
type Handler interface {
	// Handle - Invoked once per recognized option occurrence and once per
	// plain argument. An id of 0 signals a plain argument; any other id is
	// the ID of the matched descriptor.
	//
	// ok indicates whether a value accompanies the invocation. For a long
	// option given as '--opt=value' the value was consumed from the token
	// itself. When the value is only a candidate (the token following the
	// option) the handler must call cursor.Advance(1) to actually consume
	// it; otherwise the engine treats it as the next token to scan. During
	// the invocation cursor.Value() still holds the token that triggered
	// it, so the two cases can be told apart: an inline value's token
	// contains '='.
	Handle(id int, value string, ok bool, cursor *Cursor) Result

	// Describe - Queried by the usage renderer for dynamically generated
	// description text for the given option id. Returning false means no
	// dynamic description is available.
	Describe(id int) (string, bool)
}

// HandlerFunc - Adapts a plain function to a Handler with no dynamic descriptions.
type HandlerFunc func(id int, value string, ok bool, cursor *Cursor) Result

func (f HandlerFunc) Handle(id int, value string, ok bool, cursor *Cursor) Result {
	return f(id, value, ok, cursor)
}

// Describe - Always reports no dynamic description.
func (f HandlerFunc) Describe(id int) (string, bool) {
	return "", false
}
