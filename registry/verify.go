// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"bytes"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ownership"
)

// Verify - cross check the records, the owner index and the count
//
// returns fault.InconsistentIndex or fault.CountMismatch on the first
// problem found, details are logged
func (r *Registry) Verify() error {
	r.Lock()
	defer r.Unlock()

	// dna → owner bytes
	owners := make(map[string][]byte)
	err := r.pools.Kitties.NewFetchCursor().Map(func(key []byte, value []byte) error {
		record, err := kitty.PackedRecord(value).Unpack()
		if nil != err {
			r.log.Errorf("verify: dna: %x  error: %s", key, err)
			return err
		}
		owners[string(key)] = record.Owner.Bytes()
		return nil
	})
	if nil != err {
		return err
	}

	// dna → number of times seen in the index
	seen := make(map[string]int)
	err = r.pools.Owners.NewFetchCursor().Map(func(key []byte, value []byte) error {
		list, err := ownership.PackedList(value).Unpack()
		if nil != err {
			r.log.Errorf("verify: owner: %x  error: %s", key, err)
			return err
		}
		for _, dna := range list {
			owner, ok := owners[string(dna)]
			if !ok {
				r.log.Errorf("verify: owner: %x  holds unknown dna: %x", key, dna)
				return fault.InconsistentIndex
			}
			if !bytes.Equal(owner, key) {
				r.log.Errorf("verify: owner: %x  holds dna: %x  of owner: %x", key, dna, owner)
				return fault.InconsistentIndex
			}
			seen[string(dna)] += 1
		}
		return nil
	})
	if nil != err {
		return err
	}

	for dna := range owners {
		if 1 != seen[dna] {
			r.log.Errorf("verify: dna: %x  indexed: %d times", []byte(dna), seen[dna])
			return fault.InconsistentIndex
		}
	}

	count, _ := r.pools.Totals.GetN(countKey)
	if count != uint64(len(owners)) {
		r.log.Errorf("verify: count: %d  records: %d", count, len(owners))
		return fault.CountMismatch
	}
	return nil
}
