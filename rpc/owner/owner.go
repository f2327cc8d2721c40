// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package owner - the Owner RPC service
package owner

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
)

// Owner
// -----

// Owner - type for the RPC
type Owner struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Ownership ownership.Ownership
}

// Owner kitties
// -------------

const (
	MaximumKittiesCount = ownership.MaximumListCount
	rateLimitOwner      = 200
	rateBurstOwner      = 100
)

// KittiesArguments - arguments for RPC
type KittiesArguments struct {
	Owner *account.Account `json:"owner"`        // base58
	Start uint64           `json:"start,string"` // position of first item
	Count int              `json:"count"`        // number of items
}

// KittiesReply - result of owner RPC
type KittiesReply struct {
	Next uint64      `json:"next,string"` // Start value for the next call
	DNA  []kitty.DNA `json:"dna"`
}

// New - create the service
func New(log *logger.L, os ownership.Ownership) *Owner {
	return &Owner{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		Ownership: os,
	}
}

// Kitties - list kitties belonging to an account
func (owner *Owner) Kitties(arguments *KittiesArguments, reply *KittiesReply) error {

	if err := ratelimit.LimitN(owner.Limiter, arguments.Count, MaximumKittiesCount); nil != err {
		return err
	}

	if nil == arguments.Owner {
		return fault.MissingParameters
	}

	owner.Log.Infof("Owner.Kitties: %+v", arguments)

	list, next, err := owner.Ownership.ListFor(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.DNA = list
	reply.Next = next
	return nil
}
