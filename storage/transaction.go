// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/kittyd/fault"
)

// Transaction - a batch of writes that becomes visible only on Commit
//
// reads through the transaction see its own uncommitted writes
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	inUse    bool
	database *Database
	batch    *leveldb.Batch
}

func newTransaction(d *Database) *transaction {
	return &transaction{
		inUse:    false,
		database: d,
		batch:    new(leveldb.Batch),
	}
}

func (t *transaction) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionInUse
	}
	t.inUse = true
	return nil
}

func (t *transaction) Put(h Handle, key []byte, value []byte) {
	k := h.prefixKey(key)
	t.database.cache.Set(string(k), value)
	t.batch.Put(k, value)
}

func (t *transaction) PutN(h Handle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(h, key, buffer)
}

func (t *transaction) Get(h Handle, key []byte) []byte {
	if value, found := t.database.cache.Get(string(h.prefixKey(key))); found {
		return value
	}
	return h.Get(key)
}

func (t *transaction) GetN(h Handle, key []byte) (uint64, bool) {
	buffer := t.Get(h, key)
	if nil == buffer || len(buffer) < 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

func (t *transaction) Has(h Handle, key []byte) bool {
	if _, found := t.database.cache.Get(string(h.prefixKey(key))); found {
		return true
	}
	return h.Has(key)
}

// Commit - write the batch and end the transaction
//
// the transaction is finished even if the write fails
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.NotInitialised
	}

	err := t.database.write(t.batch)
	t.reset()
	return err
}

// Abort - discard all uncommitted writes
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()
	t.reset()
}

func (t *transaction) reset() {
	t.batch.Reset()
	t.database.cache.Clear()
	t.inUse = false
}
