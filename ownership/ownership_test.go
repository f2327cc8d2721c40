// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/storage"
)

var (
	alice = &account.Account{
		Algorithm: account.ED25519,
		Test:      true,
		PublicKey: bytes.Repeat([]byte{0x01}, 32),
	}
	bob = &account.Account{
		Algorithm: account.ED25519,
		Test:      true,
		PublicKey: bytes.Repeat([]byte{0x02}, 32),
	}
)

func setup(t *testing.T) *storage.Database {
	d, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory database error: %s", err)
	}
	return d
}

// compare as sets since removal may reorder
func assertSameSet(t *testing.T, expected []kitty.DNA, actual []kitty.DNA, message string) {
	assert.Equal(t, len(expected), len(actual), "%s: length", message)
loop:
	for _, e := range expected {
		for _, a := range actual {
			if e.Equal(a) {
				continue loop
			}
		}
		t.Errorf("%s: missing: %q in: %q", message, e, actual)
	}
}

func TestPackUnpack(t *testing.T) {
	lists := [][]kitty.DNA{
		{},
		{kitty.DNA("")},
		{kitty.DNA("a"), kitty.DNA("bc"), kitty.DNA(bytes.Repeat([]byte{0xaa}, 300))},
	}

	for i, list := range lists {
		packed := ownership.Pack(list)
		unpacked, err := packed.Unpack()
		assert.Nil(t, err, "%d: unpack error", i)
		assert.Equal(t, len(list), len(unpacked), "%d: length", i)
		for j := range list {
			assert.True(t, list[j].Equal(unpacked[j]), "%d: item: %d", i, j)
		}
	}
}

func TestUnpackInvalid(t *testing.T) {
	invalid := []ownership.PackedList{
		{},                     // no count
		{0x01},                 // missing item
		{0x02, 0x01, 'a'},      // count too large
		{0x01, 0x05, 'a', 'b'}, // truncated item
		{0x00, 0x00},           // trailing data
		{0x80},                 // truncated varint
	}

	for i, packed := range invalid {
		_, err := packed.Unpack()
		assert.Equal(t, fault.NotOwnerListPack, err, "%d: wrong error for: %x", i, []byte(packed))
	}
}

func TestAppendGetRemove(t *testing.T) {
	d := setup(t)
	defer d.Close()

	trx, err := d.NewDBTransaction()
	assert.Nil(t, err, "begin")

	list, err := ownership.Get(trx, d.Pool.Owners, alice)
	assert.Nil(t, err, "get empty")
	assert.Equal(t, 0, len(list), "new entry is not empty")

	for _, s := range []string{"k1", "k2", "k3"} {
		assert.Nil(t, ownership.Append(trx, d.Pool.Owners, alice, kitty.DNA(s)), "append: %s", s)
	}
	assert.Nil(t, ownership.Append(trx, d.Pool.Owners, bob, kitty.DNA("k4")), "append bob")

	list, err = ownership.Get(trx, d.Pool.Owners, alice)
	assert.Nil(t, err, "get alice")
	assert.Equal(t, []kitty.DNA{kitty.DNA("k1"), kitty.DNA("k2"), kitty.DNA("k3")}, list, "appended order")

	removed, err := ownership.Remove(trx, d.Pool.Owners, alice, kitty.DNA("k1"))
	assert.Nil(t, err, "remove")
	assert.True(t, removed, "k1 not removed")

	removed, err = ownership.Remove(trx, d.Pool.Owners, alice, kitty.DNA("k4"))
	assert.Nil(t, err, "remove absent")
	assert.False(t, removed, "absent k4 removed")

	assert.Nil(t, trx.Commit(), "commit")

	trx, _ = d.NewDBTransaction()
	defer trx.Abort()

	list, err = ownership.Get(trx, d.Pool.Owners, alice)
	assert.Nil(t, err, "get alice")
	assertSameSet(t, []kitty.DNA{kitty.DNA("k2"), kitty.DNA("k3")}, list, "alice")

	list, err = ownership.Get(trx, d.Pool.Owners, bob)
	assert.Nil(t, err, "get bob")
	assertSameSet(t, []kitty.DNA{kitty.DNA("k4")}, list, "bob")
}

func TestRemoveLast(t *testing.T) {
	d := setup(t)
	defer d.Close()

	trx, _ := d.NewDBTransaction()
	assert.Nil(t, ownership.Append(trx, d.Pool.Owners, alice, kitty.DNA("only")), "append")
	removed, err := ownership.Remove(trx, d.Pool.Owners, alice, kitty.DNA("only"))
	assert.Nil(t, err, "remove")
	assert.True(t, removed, "not removed")
	assert.Nil(t, trx.Commit(), "commit")

	// the entry remains, but empty
	assert.NotNil(t, d.Pool.Owners.Get(alice.Bytes()), "entry was deleted")

	list, next, err := ownership.New(d.Pool.Owners).ListFor(alice, 0, 10)
	assert.Nil(t, err, "list")
	assert.Equal(t, 0, len(list), "list not empty")
	assert.Equal(t, uint64(0), next, "next")
}

func TestListFor(t *testing.T) {
	d := setup(t)
	defer d.Close()

	trx, _ := d.NewDBTransaction()
	for i := 0; i < 5; i += 1 {
		assert.Nil(t, ownership.Append(trx, d.Pool.Owners, alice, kitty.DNA{byte(i)}), "append: %d", i)
	}
	assert.Nil(t, trx.Commit(), "commit")

	o := ownership.New(d.Pool.Owners)

	list, next, err := o.ListFor(alice, 0, 2)
	assert.Nil(t, err, "page 1")
	assert.Equal(t, []kitty.DNA{{0}, {1}}, list, "page 1")
	assert.Equal(t, uint64(2), next, "page 1 next")

	list, next, err = o.ListFor(alice, next, 2)
	assert.Nil(t, err, "page 2")
	assert.Equal(t, []kitty.DNA{{2}, {3}}, list, "page 2")

	list, next, err = o.ListFor(alice, next, 2)
	assert.Nil(t, err, "page 3")
	assert.Equal(t, []kitty.DNA{{4}}, list, "page 3")
	assert.Equal(t, uint64(5), next, "page 3 next")

	list, next, err = o.ListFor(alice, next, 2)
	assert.Nil(t, err, "past end")
	assert.Equal(t, 0, len(list), "past end")
	assert.Equal(t, uint64(5), next, "past end next")

	list, _, err = o.ListFor(bob, 0, 2)
	assert.Nil(t, err, "no entry")
	assert.Equal(t, 0, len(list), "no entry")

	_, _, err = o.ListFor(alice, 0, 0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
	_, _, err = o.ListFor(alice, 0, ownership.MaximumListCount+1)
	assert.Equal(t, fault.InvalidCount, err, "large count")
}
