// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
)

// MaximumListCount - largest page that ListFor returns
const MaximumListCount = 100

// Ownership - interface for reading committed owner entries
type Ownership interface {
	ListFor(*account.Account, uint64, int) ([]kitty.DNA, uint64, error)
}

type ownership struct {
	pool storage.Handle
}

// New - ownership reader over the owner index pool
func New(pool storage.Handle) Ownership {
	return &ownership{
		pool: pool,
	}
}

// Read - the committed entry for an owner, empty if none was ever written
func Read(pool storage.Handle, owner *account.Account) ([]kitty.DNA, error) {
	packed := pool.Get(owner.Bytes())
	if nil == packed {
		return []kitty.DNA{}, nil
	}
	return PackedList(packed).Unpack()
}

// ListFor - a page of an owner's kitties starting at position start
//
// also returns the start position of the next page
func (o *ownership) ListFor(owner *account.Account, start uint64, count int) ([]kitty.DNA, uint64, error) {
	if count <= 0 || count > MaximumListCount {
		return nil, 0, fault.InvalidCount
	}

	list, err := Read(o.pool, owner)
	if nil != err {
		return nil, 0, err
	}

	if start >= uint64(len(list)) {
		return []kitty.DNA{}, start, nil
	}

	finish := start + uint64(count)
	if finish > uint64(len(list)) {
		finish = uint64(len(list))
	}
	return list[start:finish], finish, nil
}
