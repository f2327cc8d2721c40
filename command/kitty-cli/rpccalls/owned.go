// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/rpc/owner"
)

// OwnedData - data for an ownership request
type OwnedData struct {
	Owner *account.Account
	Start uint64
	Count int
}

// GetOwned - obtain a page of owned kitties
func (client *Client) GetOwned(ownedConfig *OwnedData) (*owner.KittiesReply, error) {

	arguments := owner.KittiesArguments{
		Owner: ownedConfig.Owner,
		Start: ownedConfig.Start,
		Count: ownedConfig.Count,
	}

	reply := &owner.KittiesReply{}
	err := client.call("Owner.Kitties", "Owned", &arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
