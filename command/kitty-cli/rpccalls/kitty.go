// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/rpc/kitties"
)

// Create - register a new kitty for owner
func (client *Client) Create(owner *account.Account, dna kitty.DNA, price uint32) (*kitties.CreateReply, error) {

	arguments := kitties.CreateArguments{
		Owner: owner,
		DNA:   dna,
		Price: price,
	}

	reply := &kitties.CreateReply{}
	err := client.call("Kitty.Create", "Create", &arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Transfer - give a kitty to a new owner
func (client *Client) Transfer(owner *account.Account, dna kitty.DNA, newOwner *account.Account) (*kitties.TransferReply, error) {

	arguments := kitties.TransferArguments{
		Owner:    owner,
		DNA:      dna,
		NewOwner: newOwner,
	}

	reply := &kitties.TransferReply{}
	err := client.call("Kitty.Transfer", "Transfer", &arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Get - fetch a kitty record
func (client *Client) Get(dna kitty.DNA) (*kitties.GetReply, error) {

	arguments := kitties.GetArguments{
		DNA: dna,
	}

	reply := &kitties.GetReply{}
	err := client.call("Kitty.Get", "Get", &arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
