// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/util"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	Nothing = iota // zero keytype **Just for Testing**
	ED25519 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm

	ed25519KeyLength = 32
	nothingKeyLength = 2
)

// Account - the identity of an owner
//
// only the encoded bytes matter to the registry, two accounts are the
// same owner if their Bytes() are equal.  No signatures are checked
// here, callers are authenticated before reaching the registry.
type Account struct {
	Algorithm int
	Test      bool
	PublicKey []byte
}

// AccountFromBase58 - this converts a Base58 encoded string and
// returns an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	// parse the key variant
	keyVariant, keyVariantLength := util.FromVarint64(accountDecoded)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	keyAlgorithm := int(keyVariant >> algorithmShift)
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	keyLength := len(accountDecoded) - keyVariantLength - checksumLength
	if keyLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return newAccount(keyAlgorithm, 0 != keyVariant&testKeyCode, accountDecoded[keyVariantLength:checksumStart])
}

// AccountFromBytes - this converts a byte encoded buffer (as produced
// by Bytes()) and returns an account
func AccountFromBytes(accountBytes []byte) (*Account, error) {
	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	keyAlgorithm := int(keyVariant >> algorithmShift)
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	if len(accountBytes)-keyVariantLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	return newAccount(keyAlgorithm, 0 != keyVariant&testKeyCode, accountBytes[keyVariantLength:])
}

func newAccount(algorithm int, test bool, publicKey []byte) (*Account, error) {
	switch algorithm {
	case ED25519:
		if ed25519KeyLength != len(publicKey) {
			return nil, fault.InvalidKeyLength
		}
	case Nothing:
		if nothingKeyLength != len(publicKey) {
			return nil, fault.InvalidKeyLength
		}
	default:
		return nil, fault.InvalidKeyType
	}

	key := make([]byte, len(publicKey))
	copy(key, publicKey)

	return &Account{
		Algorithm: algorithm,
		Test:      test,
		PublicKey: key,
	}, nil
}

// KeyType - key type code (see enumeration above)
func (account *Account) KeyType() int {
	return account.Algorithm
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *Account) PublicKeyBytes() []byte {
	return account.PublicKey
}

// Bytes - byte slice for encoded key
func (account *Account) Bytes() []byte {
	keyVariant := uint64(account.Algorithm<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append(util.ToVarint64(keyVariant), account.PublicKey...)
}

// String - base58 encoding of encoded key
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// IsTesting - return whether the public key is in test mode or not
func (account *Account) IsTesting() bool {
	return account.Test
}

// IsZero - check if the public key is all zero bytes
func (account *Account) IsZero() bool {
	for _, b := range account.PublicKey {
		if 0 != b {
			return false
		}
	}
	return true
}

// Equal - two accounts denote the same owner
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return account == other
	}
	return bytes.Equal(account.Bytes(), other.Bytes())
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a Base58 JSON string to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
