// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ownership"
)

// Counters - operation tallies since the registry was created
type Counters struct {
	Created     uint64 `json:"created"`
	Transferred uint64 `json:"transferred"`
	Rejected    uint64 `json:"rejected"`
}

// Count - number of kitties ever created
func (r *Registry) Count() uint64 {
	n, _ := r.pools.Totals.GetN(countKey)
	return n
}

// Kitty - the committed record for a DNA
func (r *Registry) Kitty(dna kitty.DNA) (*kitty.Record, error) {
	packed := r.pools.Kitties.Get(dna)
	if nil == packed {
		return nil, fault.RecordNotFound
	}
	return kitty.PackedRecord(packed).Unpack()
}

// Owned - all kitties currently held by owner, in no particular order
func (r *Registry) Owned(owner *account.Account) ([]kitty.DNA, error) {
	return ownership.Read(r.pools.Owners, owner)
}

// List - up to count committed records in DNA byte order, starting at
// the first DNA not less than start
//
// also returns the DNA to start the next page from, nil after the last record
func (r *Registry) List(start kitty.DNA, count int) ([]*kitty.Record, kitty.DNA, error) {
	elements, err := r.pools.Kitties.NewFetchCursor().Seek(start).Fetch(count)
	if nil != err {
		return nil, nil, err
	}

	records := make([]*kitty.Record, 0, len(elements))
	for _, e := range elements {
		record, err := kitty.PackedRecord(e.Value).Unpack()
		if nil != err {
			return nil, nil, err
		}
		records = append(records, record)
	}

	if len(elements) < count {
		return records, nil, nil
	}
	// the immediate successor of the last key in byte order
	next := append(kitty.DNA{}, elements[len(elements)-1].Key...)
	return records, append(next, 0x00), nil
}

// Counters - current operation tallies
func (r *Registry) Counters() Counters {
	return Counters{
		Created:     r.created.Uint64(),
		Transferred: r.transferred.Uint64(),
		Rejected:    r.rejected.Uint64(),
	}
}
