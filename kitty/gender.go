// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"github.com/bitmark-inc/kittyd/fault"
)

// Gender - the two valued attribute of a kitty
type Gender byte

// gender codes, the byte value is stored in the packed record
const (
	Male   Gender = 0
	Female Gender = 1
)

// DeriveGender - compute the gender of a kitty from its DNA
//
// even length DNA is Male, odd length is Female.  This is fully
// determined by the caller's choice of DNA, so it is not a source of
// randomness: a creator can pick either gender.
func DeriveGender(dna DNA) Gender {
	if 0 != len(dna)%2 {
		return Female
	}
	return Male
}

func (gender Gender) toText() ([]byte, error) {
	switch gender {
	case Male:
		return []byte("male"), nil
	case Female:
		return []byte("female"), nil
	default:
		return nil, fault.InvalidGender
	}
}

// String - name of the gender
func (gender Gender) String() string {
	s, err := gender.toText()
	if nil != err {
		return "*invalid*"
	}
	return string(s)
}

// MarshalText - convert gender to text
func (gender Gender) MarshalText() ([]byte, error) {
	return gender.toText()
}

// UnmarshalText - convert text to gender
func (gender *Gender) UnmarshalText(s []byte) error {
	switch string(s) {
	case "male":
		*gender = Male
	case "female":
		*gender = Female
	default:
		return fault.InvalidGender
	}
	return nil
}
