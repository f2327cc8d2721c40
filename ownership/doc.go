// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership maintains the owner index: for each account the
// list of kitty DNA that it currently holds
//
// writes go through a storage transaction so they commit together
// with the kitty record changes; the order within an entry is not
// meaningful
package ownership
