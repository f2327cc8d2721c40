// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the kitty ownership registry
//
// three pools make up the state:
//
//   Kitties  dna   → packed kitty record
//   Owners   owner → packed list of dna held by that owner
//   Totals   "kitties" → count of successful creates
//
// after every successful operation:
//
//   each dna appears once in Kitties (it is the key)
//   each record's dna is in exactly one owner entry, its owner's
//   no owner entry holds a dna that has no record
//   the count equals the number of records
//
// every check is made before anything is written, and each operation
// commits as one storage batch; events are sent only after the commit
package registry
