// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read Lua configuration files
//
// the file is executed as a Lua chunk and must return a table; the
// table is mapped onto a struct using the "gluamapper" field tags.
// Fields missing from the table keep their current values, so the
// struct can be filled with defaults before parsing
package configuration
