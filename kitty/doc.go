// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kitty - the registered record and its storage encoding
//
// A kitty is identified by its DNA, an opaque caller supplied byte
// string that is checked for uniqueness and nothing else, with one
// exception: DNA longer than MaximumDNALength is refused with
// fault.InvalidDNA so that every record packs into a bounded buffer.
// Any other byte string, including the empty one, is accepted.  The
// record holds the current owner, the asking price and a gender
// derived from the DNA when the kitty is created.
//
// packed record layout:
//
//   gender (1 byte) ⧺ price (4 bytes big endian) ⧺ dna (varint length ⧺ bytes) ⧺ owner (varint length ⧺ account bytes)
package kitty
