// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kitties - the Kitty RPC service
package kitties

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
)

const (
	rateLimitKitty = 200
	rateBurstKitty = 100
)

// Registry - the registry operations used by the service
type Registry interface {
	Create(*account.Account, kitty.DNA, uint32) error
	Transfer(*account.Account, kitty.DNA, *account.Account) error
	Kitty(kitty.DNA) (*kitty.Record, error)
}

// Kitty - type for the RPC
type Kitty struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry Registry
}

// New - create the service
func New(log *logger.L, registry Registry) *Kitty {
	return &Kitty{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitKitty, rateBurstKitty),
		Registry: registry,
	}
}

// Kitty create
// ------------

// CreateArguments - arguments for RPC
//
// the owner is the already authenticated caller
type CreateArguments struct {
	Owner *account.Account `json:"owner"` // base58
	DNA   kitty.DNA        `json:"dna"`   // hex
	Price uint32           `json:"price"`
}

// CreateReply - result of create RPC
type CreateReply struct {
	DNA    kitty.DNA    `json:"dna"`
	Gender kitty.Gender `json:"gender"`
}

// Create - register a new kitty
func (k *Kitty) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner || nil == arguments.DNA {
		return fault.MissingParameters
	}

	k.Log.Infof("Kitty.Create: dna: %x  owner: %s  price: %d", arguments.DNA, arguments.Owner, arguments.Price)

	err := k.Registry.Create(arguments.Owner, arguments.DNA, arguments.Price)
	if nil != err {
		return err
	}

	reply.DNA = arguments.DNA
	reply.Gender = kitty.DeriveGender(arguments.DNA)
	return nil
}

// Kitty transfer
// --------------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Owner    *account.Account `json:"owner"`
	DNA      kitty.DNA        `json:"dna"`
	NewOwner *account.Account `json:"newOwner"`
}

// TransferReply - result of transfer RPC
type TransferReply struct {
	DNA   kitty.DNA        `json:"dna"`
	Owner *account.Account `json:"owner"`
}

// Transfer - give a kitty to a new owner
func (k *Kitty) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner || nil == arguments.NewOwner || nil == arguments.DNA {
		return fault.MissingParameters
	}

	k.Log.Infof("Kitty.Transfer: dna: %x  from: %s  to: %s", arguments.DNA, arguments.Owner, arguments.NewOwner)

	err := k.Registry.Transfer(arguments.Owner, arguments.DNA, arguments.NewOwner)
	if nil != err {
		return err
	}

	reply.DNA = arguments.DNA
	reply.Owner = arguments.NewOwner
	return nil
}

// Kitty get
// ---------

// GetArguments - arguments for RPC
type GetArguments struct {
	DNA kitty.DNA `json:"dna"`
}

// GetReply - result of get RPC
type GetReply struct {
	Record *kitty.Record `json:"record"`
}

// Get - fetch the record for a DNA
func (k *Kitty) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.DNA {
		return fault.MissingParameters
	}

	k.Log.Debugf("Kitty.Get: dna: %x", arguments.DNA)

	record, err := k.Registry.Kitty(arguments.DNA)
	if nil != err {
		return err
	}

	reply.Record = record
	return nil
}
