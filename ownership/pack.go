// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/util"
)

// PackedList - an owner's index entry as stored
//
//   varint(n) ++ n * (varint(length) ++ dna)
type PackedList []byte

// Pack - pack a list of DNA
func Pack(list []kitty.DNA) PackedList {
	size := util.Varint64MaximumBytes
	for _, dna := range list {
		size += util.Varint64MaximumBytes + len(dna)
	}

	buffer := make(PackedList, 0, size)
	buffer = append(buffer, util.ToVarint64(uint64(len(list)))...)
	for _, dna := range list {
		buffer = util.AppendBytes(buffer, dna)
	}
	return buffer
}

// Unpack - recover the list of DNA
//
// trailing bytes or a truncated item are an error
func (packed PackedList) Unpack() ([]kitty.DNA, error) {
	count, n := util.FromVarint64(packed)
	if 0 == n {
		return nil, fault.NotOwnerListPack
	}

	// every item needs at least its length byte
	if count > uint64(len(packed)-n) {
		return nil, fault.NotOwnerListPack
	}

	list := make([]kitty.DNA, 0, count)
	for i := uint64(0); i < count; i += 1 {
		dna, dnaLength := util.ExtractBytes(packed[n:], kitty.MaximumDNALength)
		if 0 == dnaLength {
			return nil, fault.NotOwnerListPack
		}
		n += dnaLength
		list = append(list, kitty.DNA(dna))
	}

	if n != len(packed) {
		return nil, fault.NotOwnerListPack
	}
	return list, nil
}
