// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
)

// Get - the current entry for an owner, empty if none was ever written
func Get(trx storage.Transaction, pool storage.Handle, owner *account.Account) ([]kitty.DNA, error) {
	packed := trx.Get(pool, owner.Bytes())
	if nil == packed {
		return []kitty.DNA{}, nil
	}
	return PackedList(packed).Unpack()
}

// Append - add a DNA to an owner's entry, creating the entry if absent
func Append(trx storage.Transaction, pool storage.Handle, owner *account.Account, dna kitty.DNA) error {
	list, err := Get(trx, pool, owner)
	if nil != err {
		return err
	}

	list = append(list, dna)
	trx.Put(pool, owner.Bytes(), Pack(list))
	return nil
}

// Remove - remove one occurrence of a DNA from an owner's entry
//
// the last item is moved into the vacated position so order is not
// kept; returns false and writes nothing if the DNA is not present
func Remove(trx storage.Transaction, pool storage.Handle, owner *account.Account, dna kitty.DNA) (bool, error) {
	list, err := Get(trx, pool, owner)
	if nil != err {
		return false, err
	}

	for i, item := range list {
		if item.Equal(dna) {
			last := len(list) - 1
			list[i] = list[last]
			list = list[:last]
			trx.Put(pool, owner.Bytes(), Pack(list))
			return true, nil
		}
	}
	return false, nil
}
