// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage maintains the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++       = concatenation of byte data
// 3. dna      = opaque kitty identity bytes of any length
// 4. owner    = account bytes (key type ++ public key)
// 5. count    = big endian uint64 (8 bytes)
//
// Kitties:
//
//   K ++ dna                   - kitty records
//                                data: packed kitty record
//
// Ownership:
//
//   O ++ owner                 - the kitties held by an account
//                                data: varint(n) ++ n * (varint(length) ++ dna)
//
// Totals:
//
//   Q ++ name                  - monotonic counters
//                                data: count
//
// Testing:
//   Z ++ key                   - testing data
//
// The version record uses the reserved key: 0x00 ++ "VERSION"
package storage
