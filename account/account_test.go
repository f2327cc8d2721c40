// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
)

type accountItem struct {
	algorithm int
	testing   bool
	zero      bool
	publicKey string
	encoded   string
}

var validAccounts = []accountItem{
	{account.ED25519, false, false, "60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e", "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj"},
	{account.ED25519, true, false, "731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db", "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2"},
	{account.ED25519, true, false, "cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e", "fUjtNvmUJn7yJ7PVP7NT2FZbKDrudFxLVBHkwLJFgKWmGsPNVi"},
	{account.ED25519, true, true, "0000000000000000000000000000000000000000000000000000000000000000", "dw9MQXcC5rJZb3QE1nz86PiQAheMP1dx9M3dr52tT8NNs14m33"},
	{account.ED25519, false, true, "0000000000000000000000000000000000000000000000000000000000000000", "a3ezwdYVEVrHwszQrYzDTCAZwUD3yKtNsCq9YhEu97bPaGAKy1"},
	{account.Nothing, false, false, "12fa", "3MvykBZzN"},
	{account.Nothing, false, true, "0000", "3CUwbPENE"},
}

func decodeHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		t.Fatalf("hex: %q  error: %s", s, err)
	}
	return b
}

func TestFromBytes(t *testing.T) {
	for i, item := range validAccounts {
		code := byte(item.algorithm<<4 | 0x01)
		if item.testing {
			code |= 0x02
		}
		buffer := append([]byte{code}, decodeHex(t, item.publicKey)...)

		a, err := account.AccountFromBytes(buffer)
		if !assert.Nil(t, err, "%d: from bytes", i) {
			continue
		}
		assert.Equal(t, buffer, a.Bytes(), "%d: bytes", i)
		assert.Equal(t, item.encoded, a.String(), "%d: base58", i)
		assert.Equal(t, item.zero, a.IsZero(), "%d: zero", i)
		assert.Equal(t, item.testing, a.IsTesting(), "%d: testing", i)
	}
}

func TestFromBase58(t *testing.T) {
	for i, item := range validAccounts {
		a, err := account.AccountFromBase58(item.encoded)
		if !assert.Nil(t, err, "%d: from base58", i) {
			continue
		}
		assert.Equal(t, item.algorithm, a.KeyType(), "%d: key type", i)
		assert.Equal(t, item.testing, a.IsTesting(), "%d: testing", i)
		assert.Equal(t, decodeHex(t, item.publicKey), a.PublicKeyBytes(), "%d: public key", i)
		assert.Equal(t, item.encoded, a.String(), "%d: round trip", i)
	}
}

func TestInvalidBase58(t *testing.T) {
	items := []struct {
		encoded string
		err     error
	}{
		{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.CannotDecodeAccount},
		{"", fault.CannotDecodeAccount},
		{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLDj", fault.ChecksumMismatch},
		{"WjbRFkA9dhmMKnKTuufZ1sVD4E4H1NRnsmwjMKNHHRSCvDm5bXPV", fault.InvalidKeyType},
		{"YqVxD4vazrrnxnLH2MzCHJedPPz1VKHnKbVfya39nF96ABAYes", fault.NotPublicKey},
		{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLC", fault.NotPublicKey},
		{"nF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj", fault.NotPublicKey},
	}

	for i, item := range items {
		_, err := account.AccountFromBase58(item.encoded)
		assert.Equal(t, item.err, err, "%d: encoded: %q", i, item.encoded)
	}
}

// owners travel as base58 strings inside RPC structures
func TestJSON(t *testing.T) {
	type owned struct {
		Owner *account.Account `json:"owner"`
	}

	for i, item := range validAccounts {
		j := `{"owner":"` + item.encoded + `"}`

		var o owned
		err := json.Unmarshal([]byte(j), &o)
		if !assert.Nil(t, err, "%d: unmarshal", i) {
			continue
		}
		assert.Equal(t, item.testing, o.Owner.IsTesting(), "%d: testing", i)

		buffer, err := json.Marshal(o)
		assert.Nil(t, err, "%d: marshal", i)
		assert.Equal(t, j, string(buffer), "%d: marshal", i)
	}

	var o owned
	err := json.Unmarshal([]byte(`{"owner":"not-an-account"}`), &o)
	assert.NotNil(t, err, "invalid owner accepted")
}

func TestEqual(t *testing.T) {
	a1, err := account.AccountFromBase58(validAccounts[0].encoded)
	assert.Nil(t, err, "a1")
	a2, err := account.AccountFromBytes(a1.Bytes())
	assert.Nil(t, err, "a2")
	b, err := account.AccountFromBase58(validAccounts[1].encoded)
	assert.Nil(t, err, "b")

	assert.True(t, a1.Equal(a2), "same owner")
	assert.False(t, a1.Equal(b), "different owners")
	assert.False(t, a1.Equal(nil), "equal to nil")

	// the decoded key must not alias the caller's buffer
	buffer := a1.Bytes()
	a3, _ := account.AccountFromBytes(buffer)
	buffer[len(buffer)-1] ^= 0xff
	assert.True(t, a3.Equal(a1), "changed with source buffer")
}
