// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"bytes"
	"encoding/hex"

	"github.com/bitmark-inc/kittyd/fault"
)

// MaximumDNALength - limit on the length of a DNA
const MaximumDNALength = 1024

// DNA - unique identity of a kitty
type DNA []byte

// DNAFromHex - decode a hex DNA string
func DNAFromHex(s string) (DNA, error) {
	b, err := hex.DecodeString(s)
	if nil != err || len(b) > MaximumDNALength {
		return nil, fault.InvalidDNA
	}
	if nil == b {
		b = []byte{}
	}
	return DNA(b), nil
}

// Equal - byte comparison
func (dna DNA) Equal(other DNA) bool {
	return bytes.Equal(dna, other)
}

// String - hex form of the DNA
func (dna DNA) String() string {
	return hex.EncodeToString(dna)
}

// MarshalText - convert DNA to hex text
func (dna DNA) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(dna)))
	hex.Encode(buffer, dna)
	return buffer, nil
}

// UnmarshalText - convert hex text to DNA
func (dna *DNA) UnmarshalText(s []byte) error {
	d, err := DNAFromHex(string(s))
	if nil != err {
		return err
	}
	*dna = d
	return nil
}
