// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/storage"
)

// key of the create count in the totals pool
var countKey = []byte("kitties")

// Handles - the pools that hold the registry state
type Handles struct {
	Kitties storage.Handle
	Owners  storage.Handle
	Totals  storage.Handle
}

// TransactionSource - begins the transaction for each operation
type TransactionSource interface {
	NewDBTransaction() (storage.Transaction, error)
}

// Registry - serialised access to the kitty records and owner index
type Registry struct {
	sync.Mutex

	log     *logger.L
	source  TransactionSource
	pools   Handles
	sink    Sink
	testing bool

	created     counter.Counter
	transferred counter.Counter
	rejected    counter.Counter
}

// New - create a registry
//
// testing selects which network accounts must belong to
func New(source TransactionSource, pools Handles, sink Sink, testing bool, log *logger.L) *Registry {
	return &Registry{
		log:     log,
		source:  source,
		pools:   pools,
		sink:    sink,
		testing: testing,
	}
}

// Create - register a new kitty owned by caller
func (r *Registry) Create(caller *account.Account, dna kitty.DNA, price uint32) error {
	err := r.checkAccount(caller)
	if nil != err {
		return r.reject("create", err)
	}
	if len(dna) > kitty.MaximumDNALength {
		return r.reject("create", fault.InvalidDNA)
	}

	// private copy, the caller may reuse its buffer
	dna = append(kitty.DNA{}, dna...)

	r.Lock()
	defer r.Unlock()

	trx, err := r.source.NewDBTransaction()
	if nil != err {
		return err
	}

	if trx.Has(r.pools.Kitties, dna) {
		trx.Abort()
		return r.reject("create", fault.DuplicateIdentity)
	}

	record := kitty.New(dna, caller, price)
	trx.Put(r.pools.Kitties, dna, record.Pack())

	count, _ := trx.GetN(r.pools.Totals, countKey)
	trx.PutN(r.pools.Totals, countKey, count+1)

	err = ownership.Append(trx, r.pools.Owners, caller, dna)
	if nil != err {
		trx.Abort()
		r.corrupt("create: owner: %s  error: %s", caller, err)
	}

	err = trx.Commit()
	if nil != err {
		r.log.Errorf("create: dna: %x  commit error: %s", dna, err)
		return err
	}

	r.created.Increment()
	r.log.Infof("created: dna: %x  gender: %s  price: %d  owner: %s", dna, record.Gender, price, caller)

	r.sink.Emit(KindKittyStored, KittyStored{
		DNA:   dna,
		Price: price,
	})
	return nil
}

// Transfer - move a kitty from caller to newOwner
func (r *Registry) Transfer(caller *account.Account, dna kitty.DNA, newOwner *account.Account) error {
	err := r.checkAccount(caller)
	if nil == err {
		err = r.checkAccount(newOwner)
	}
	if nil != err {
		return r.reject("transfer", err)
	}

	dna = append(kitty.DNA{}, dna...)

	r.Lock()
	defer r.Unlock()

	trx, err := r.source.NewDBTransaction()
	if nil != err {
		return err
	}

	packed := trx.Get(r.pools.Kitties, dna)
	if nil == packed {
		trx.Abort()
		return r.reject("transfer", fault.RecordNotFound)
	}

	record, err := kitty.PackedRecord(packed).Unpack()
	if nil != err {
		trx.Abort()
		r.corrupt("transfer: dna: %x  error: %s", dna, err)
	}

	if !record.Owner.Equal(caller) {
		trx.Abort()
		return r.reject("transfer", fault.NotOwner)
	}
	if newOwner.Equal(caller) {
		trx.Abort()
		return r.reject("transfer", fault.SelfTransfer)
	}

	record.Owner = newOwner
	trx.Put(r.pools.Kitties, dna, record.Pack())

	removed, err := ownership.Remove(trx, r.pools.Owners, caller, dna)
	if nil != err || !removed {
		trx.Abort()
		r.corrupt("transfer: dna: %x  missing from owner: %s  error: %v", dna, caller, err)
	}

	err = ownership.Append(trx, r.pools.Owners, newOwner, dna)
	if nil != err {
		trx.Abort()
		r.corrupt("transfer: owner: %s  error: %s", newOwner, err)
	}

	err = trx.Commit()
	if nil != err {
		r.log.Errorf("transfer: dna: %x  commit error: %s", dna, err)
		return err
	}

	r.transferred.Increment()
	r.log.Infof("transferred: dna: %x  from: %s  to: %s", dna, caller, newOwner)

	r.sink.Emit(KindKittyTransferred, KittyTransferred{
		DNA:      dna,
		NewOwner: newOwner,
	})
	return nil
}

// accounts must be present, decodable from their stored bytes and on
// the same network as the registry
func (r *Registry) checkAccount(a *account.Account) error {
	if nil == a {
		return fault.InvalidAccount
	}
	if _, err := account.AccountFromBytes(a.Bytes()); nil != err {
		return fault.InvalidAccount
	}
	if a.IsTesting() != r.testing {
		return fault.WrongNetworkForAccount
	}
	return nil
}

func (r *Registry) reject(operation string, err error) error {
	r.rejected.Increment()
	r.log.Debugf("%s rejected: %s", operation, err)
	return err
}

// the stored state can no longer be trusted
func (r *Registry) corrupt(format string, arguments ...interface{}) {
	r.log.Criticalf(format, arguments...)
	logger.Panicf(format, arguments...)
}
