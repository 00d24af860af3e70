// This file is part of go-optcall.
//
// Copyright (C) 2026  The go-optcall authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// Keeping the strings in a separate package allows for easy translation or
// customization by the host program.
package text

// ErrorMissingConfig - Text for the nil parse configuration error.
var ErrorMissingConfig = "Missing parse configuration"

// ErrorMissingDescriptors - Text for the nil descriptor table error.
var ErrorMissingDescriptors = "Missing descriptor table"

// ErrorMissingArguments - Text for the empty argument vector error.
// The argument vector must at least hold the program name.
var ErrorMissingArguments = "Missing argument vector"

// ErrorUnknownOption - Text for the unknown option error.
// It has a string placeholder '%s' for the offending token.
var ErrorUnknownOption = "Unknown option '%s'"

// ErrorInOption - Text for the error reported when the handler rejects an option.
// It has a string placeholder '%s' for the offending option.
var ErrorInOption = "Error in option '%s'"

// ErrorInArgument - Text for the error reported when the handler rejects a plain argument.
// It has a string placeholder '%s' for the offending argument.
var ErrorInArgument = "Error in argument '%s'"
