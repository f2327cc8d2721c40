// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitty"
)

// event kinds
const (
	KindKittyStored      = "KittyStored"
	KindKittyTransferred = "KittyTransferred"
)

// Sink - receiver of notifications of committed changes
type Sink interface {
	Emit(kind string, payload interface{})
}

// KittyStored - payload for a successful create
type KittyStored struct {
	DNA   kitty.DNA `json:"dna"`
	Price uint32    `json:"price"`
}

// KittyTransferred - payload for a successful transfer
type KittyTransferred struct {
	DNA      kitty.DNA        `json:"dna"`
	NewOwner *account.Account `json:"newOwner"`
}
