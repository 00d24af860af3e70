// This file is part of go-optcall.
//
// Copyright (C) 2026  The go-optcall authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optcall

// Cursor - Position within the argument vector.
//
// The parsing engine owns the cursor for the duration of a pass and hands it
// to the handler on every invocation. The handler may call Advance to consume
// one or more following tokens as the option's arguments; the engine resumes
// scanning after the last consumed token.
type Cursor struct {
	args []string
	idx  int
}

func newCursor(args []string) *Cursor {
	return &Cursor{args: args, idx: -1}
}

// Size - returns the argument vector size.
func (c *Cursor) Size() int {
	return len(c.args)
}

// Index - return current index.
func (c *Cursor) Index() int {
	return c.idx
}

// Next - moves the cursor forward and returns a bool to indicate if there is another value.
func (c *Cursor) Next() bool {
	if c.idx < len(c.args) {
		c.idx++
	}
	return c.idx < len(c.args)
}

// Advance - moves the cursor n positions forward, consuming the tokens it
// moves over. Advancing past the end of the vector is safe.
func (c *Cursor) Advance(n int) {
	for i := 0; i < n; i++ {
		c.Next()
	}
}

// ExistsNext - tells if there is more data to be read.
func (c *Cursor) ExistsNext() bool {
	return c.idx+1 < len(c.args)
}

// Value - returns the value at the current index or an empty string once the
// vector has been fully read.
func (c *Cursor) Value() string {
	if c.idx >= len(c.args) {
		return ""
	}
	return c.args[c.idx]
}

// Peek - Returns the next value and indicates whether or not it is valid.
func (c *Cursor) Peek() (string, bool) {
	if c.idx+1 >= len(c.args) {
		return "", false
	}
	return c.args[c.idx+1], true
}

// IsLast - Tells if the current element is the last.
func (c *Cursor) IsLast() bool {
	return c.idx == len(c.args)-1
}

// Remaining - Get all remaining values index inclusive.
func (c *Cursor) Remaining() []string {
	if c.idx >= len(c.args) {
		return []string{}
	}
	return c.args[c.idx:]
}

// Reset - resets the index of the Cursor.
func (c *Cursor) Reset() {
	c.idx = -1
}
