// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/util"
)

const (
	genderStart  = 0
	genderFinish = genderStart + 1

	priceStart  = genderFinish
	priceFinish = priceStart + 4

	// to fit the largest supported account
	maximumAccountLength = 64
)

// Record - a registered kitty
type Record struct {
	DNA    DNA              `json:"dna"`
	Owner  *account.Account `json:"owner"`
	Price  uint32           `json:"price"`
	Gender Gender           `json:"gender"`
}

// PackedRecord - packed data to store in database
type PackedRecord []byte

// New - create a record with the gender derived from the DNA
func New(dna DNA, owner *account.Account, price uint32) *Record {
	return &Record{
		DNA:    dna,
		Owner:  owner,
		Price:  price,
		Gender: DeriveGender(dna),
	}
}

// Pack - pack the record to a byte slice
func (record *Record) Pack() PackedRecord {
	buffer := make(PackedRecord, priceFinish, priceFinish+2*util.Varint64MaximumBytes+len(record.DNA)+maximumAccountLength)
	buffer[genderStart] = byte(record.Gender)
	binary.BigEndian.PutUint32(buffer[priceStart:priceFinish], record.Price)

	buffer = util.AppendBytes(buffer, record.DNA)
	buffer = util.AppendBytes(buffer, record.Owner.Bytes())

	return buffer
}

// Unpack - turn a packed record back into a record
func (packed PackedRecord) Unpack() (*Record, error) {
	if len(packed) < priceFinish {
		return nil, fault.NotRecordPack
	}

	gender := Gender(packed[genderStart])
	if Male != gender && Female != gender {
		return nil, fault.NotRecordPack
	}

	n := priceFinish
	dna, dnaLength := util.ExtractBytes(packed[n:], MaximumDNALength)
	if 0 == dnaLength {
		return nil, fault.NotRecordPack
	}
	n += dnaLength

	ownerBytes, ownerLength := util.ExtractBytes(packed[n:], maximumAccountLength)
	if 0 == ownerLength {
		return nil, fault.NotRecordPack
	}
	n += ownerLength

	if n != len(packed) {
		return nil, fault.NotRecordPack
	}

	owner, err := account.AccountFromBytes(ownerBytes)
	if nil != err {
		return nil, err
	}

	return &Record{
		DNA:    DNA(dna),
		Owner:  owner,
		Price:  binary.BigEndian.Uint32(packed[priceStart:priceFinish]),
		Gender: gender,
	}, nil
}
