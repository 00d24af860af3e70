// This file is part of go-optcall.
//
// Copyright (C) 2026  The go-optcall authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optcall

import (
	"reflect"
	"testing"
)

func TestCursor(t *testing.T) {
	data := []string{"a", "b", "c", "d"}
	c := newCursor(data)
	if c.Size() != len(data) {
		t.Errorf("wrong size: %d\n", c.Size())
	}
	if c.Index() != -1 {
		t.Errorf("wrong initial index: %d\n", c.Index())
	}
	for c.Next() {
		if c.Index() < len(data)-1 {
			if !c.ExistsNext() {
				t.Errorf("wrong ExistsNext: idx %d, size %d", c.Index(), c.Size())
			}
		}
		if c.Index() == 0 {
			if c.Value() != "a" {
				t.Errorf("wrong value: %s\n", c.Value())
			}
		}
		if c.Index() == 2 {
			if c.Value() != "c" {
				t.Errorf("wrong value: %s\n", c.Value())
			}
			val, ok := c.Peek()
			if !ok {
				t.Errorf("wrong next value: %v\n", val)
			}
			if val != "d" {
				t.Errorf("wrong next value: %v\n", val)
			}
			if !reflect.DeepEqual(c.Remaining(), []string{"c", "d"}) {
				t.Errorf("wrong remaining value: %v\n", c.Remaining())
			}
			if c.IsLast() {
				t.Errorf("not last\n")
			}
		}
		if c.Index() == 3 && !c.IsLast() {
			t.Errorf("last not marked properly\n")
		}
	}
	if c.ExistsNext() {
		t.Errorf("wrong ExistsNext: idx %d, size %d", c.Index(), c.Size())
	}
	if c.Next() != false {
		t.Errorf("wrong next return\n")
	}
	if c.Value() != "" {
		t.Errorf("wrong value: %s\n", c.Value())
	}
	if c.Index() != len(data) {
		t.Errorf("wrong final index: %d\n", c.Index())
	}
	val, ok := c.Peek()
	if ok {
		t.Errorf("wrong next value: %v\n", val)
	}
	if val != "" {
		t.Errorf("wrong next value: %v\n", val)
	}
	if !reflect.DeepEqual(c.Remaining(), []string{}) {
		t.Errorf("wrong remaining value: %v\n", c.Remaining())
	}
	c.Reset()
	if c.Index() != -1 {
		t.Errorf("wrong index after reset: %d\n", c.Index())
	}
}

func TestCursorAdvance(t *testing.T) {
	data := []string{"a", "b", "c", "d"}
	c := newCursor(data)
	c.Next()
	c.Advance(2)
	if c.Index() != 2 {
		t.Errorf("wrong index after advance: %d\n", c.Index())
	}
	if c.Value() != "c" {
		t.Errorf("wrong value after advance: %s\n", c.Value())
	}
	// advancing past the end is safe and parks the cursor at the end
	c.Advance(10)
	if c.Index() != len(data) {
		t.Errorf("wrong index after over-advance: %d\n", c.Index())
	}
	if c.Value() != "" {
		t.Errorf("wrong value after over-advance: %s\n", c.Value())
	}
}
