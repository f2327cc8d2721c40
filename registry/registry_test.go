// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/registry"
	"github.com/bitmark-inc/kittyd/registry/mocks"
	"github.com/bitmark-inc/kittyd/storage"
)

var (
	alice = fixtures.Alice
	bob   = fixtures.Bob
	carol = fixtures.Carol
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

type testRegistry struct {
	*registry.Registry
	db   *storage.Database
	sink *mocks.MockSink
}

func setup(t *testing.T) (*testRegistry, *gomock.Controller) {
	ctl := gomock.NewController(t)

	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory database error: %s", err)
	}

	sink := mocks.NewMockSink(ctl)
	pools := registry.Handles{
		Kitties: db.Pool.Kitties,
		Owners:  db.Pool.Owners,
		Totals:  db.Pool.Totals,
	}
	r := registry.New(db, pools, sink, true, logger.New("registry"))

	return &testRegistry{
		Registry: r,
		db:       db,
		sink:     sink,
	}, ctl
}

func (tr *testRegistry) teardown(ctl *gomock.Controller) {
	ctl.Finish()
	tr.db.Close()
}

func (tr *testRegistry) expectStored(dna string, price uint32) {
	tr.sink.EXPECT().Emit(registry.KindKittyStored, registry.KittyStored{
		DNA:   kitty.DNA(dna),
		Price: price,
	}).Times(1)
}

func containsDNA(list []kitty.DNA, dna string) int {
	n := 0
	for _, item := range list {
		if bytes.Equal(item, []byte(dna)) {
			n += 1
		}
	}
	return n
}

func TestCreate(t *testing.T) {
	tr, ctl := setup(t)
	defer tr.teardown(ctl)

	tr.expectStored("ab", 10)

	err := tr.Create(alice, kitty.DNA("ab"), 10)
	assert.Nil(t, err, "create")

	record, err := tr.Kitty(kitty.DNA("ab"))
	assert.Nil(t, err, "get")
	assert.Equal(t, kitty.Male, record.Gender, "gender")
	assert.True(t, record.Owner.Equal(alice), "owner")
	assert.Equal(t, uint32(10), record.Price, "price")
	assert.Equal(t, uint64(1), tr.Count(), "count")

	owned, err := tr.Owned(alice)
	assert.Nil(t, err, "owned")
	assert.Equal(t, 1, containsDNA(owned, "ab"), "alice index")

	assert.Equal(t, registry.Counters{Created: 1}, tr.Counters(), "counters")
	assert.Nil(t, tr.Verify(), "verify")
}

func TestCreateDuplicate(t *testing.T) {
	tr, ctl := setup(t)
	defer tr.teardown(ctl)

	tr.expectStored("ab", 10)

	assert.Nil(t, tr.Create(alice, kitty.DNA("ab"), 10), "first create")

	err := tr.Create(bob, kitty.DNA("ab"), 5)
	assert.Equal(t, fault.DuplicateIdentity, err, "second create")
	assert.True(t, fault.IsErrExists(err), "error class")

	record, err := tr.Kitty(kitty.DNA("ab"))
	assert.Nil(t, err, "get")
	assert.True(t, record.Owner.Equal(alice), "owner changed")
	assert.Equal(t, uint32(10), record.Price, "price changed")
	assert.Equal(t, uint64(1), tr.Count(), "count changed")

	owned, err := tr.Owned(bob)
	assert.Nil(t, err, "owned")
	assert.Equal(t, 0, len(owned), "bob index")

	assert.Equal(t, registry.Counters{Created: 1, Rejected: 1}, tr.Counters(), "counters")
	assert.Nil(t, tr.Verify(), "verify")
}

func TestTransfer(t *testing.T) {
	tr, ctl := setup(t)
	defer tr.teardown(ctl)

	gomock.InOrder(
		tr.sink.EXPECT().Emit(registry.KindKittyStored, registry.KittyStored{
			DNA:   kitty.DNA("abc"),
			Price: 10,
		}).Times(1),
		tr.sink.EXPECT().Emit(registry.KindKittyTransferred, registry.KittyTransferred{
			DNA:      kitty.DNA("abc"),
			NewOwner: bob,
		}).Times(1),
	)

	assert.Nil(t, tr.Create(alice, kitty.DNA("abc"), 10), "create")

	record, err := tr.Kitty(kitty.DNA("abc"))
	assert.Nil(t, err, "get")
	assert.Equal(t, kitty.Female, record.Gender, "gender")

	assert.Nil(t, tr.Transfer(alice, kitty.DNA("abc"), bob), "transfer")

	record, err = tr.Kitty(kitty.DNA("abc"))
	assert.Nil(t, err, "get")
	assert.True(t, record.Owner.Equal(bob), "owner")
	assert.Equal(t, kitty.Female, record.Gender, "gender changed")
	assert.Equal(t, uint32(10), record.Price, "price changed")

	owned, err := tr.Owned(alice)
	assert.Nil(t, err, "alice owned")
	assert.Equal(t, 0, containsDNA(owned, "abc"), "alice index")

	owned, err = tr.Owned(bob)
	assert.Nil(t, err, "bob owned")
	assert.Equal(t, 1, containsDNA(owned, "abc"), "bob index")

	assert.Equal(t, uint64(1), tr.Count(), "count")
	assert.Equal(t, registry.Counters{Created: 1, Transferred: 1}, tr.Counters(), "counters")
	assert.Nil(t, tr.Verify(), "verify")
}

func TestTransferMissing(t *testing.T) {
	tr, ctl := setup(t)
	defer tr.teardown(ctl)

	err := tr.Transfer(carol, kitty.DNA("zzz"), bob)
	assert.Equal(t, fault.RecordNotFound, err, "transfer")
	assert.True(t, fault.IsErrNotFound(err), "error class")

	_, err = tr.Kitty(kitty.DNA("zzz"))
	assert.Equal(t, fault.RecordNotFound, err, "get")

	for _, a := range []*account.Account{bob, carol} {
		owned, err := tr.Owned(a)
		assert.Nil(t, err, "owned")
		assert.Equal(t, 0, len(owned), "index changed")
	}
	assert.Equal(t, uint64(0), tr.Count(), "count")
	assert.Nil(t, tr.Verify(), "verify")
}

func TestTransferNotOwner(t *testing.T) {
	tr, ctl := setup(t)
	defer tr.teardown(ctl)

	tr.expectStored("x", 1)

	assert.Nil(t, tr.Create(alice, kitty.DNA("x"), 1), "create")

	err := tr.Transfer(bob, kitty.DNA("x"), carol)
	assert.Equal(t, fault.NotOwner, err, "transfer")
	assert.True(t, fault.IsErrPermission(err), "error class")

	record, err := tr.Kitty(kitty.DNA("x"))
	assert.Nil(t, err, "get")
	assert.True(t, record.Owner.Equal(alice), "owner changed")

	owned, err := tr.Owned(alice)
	assert.Nil(t, err, "owned")
	assert.Equal(t, 1, containsDNA(owned, "x"), "alice index")

	owned, err = tr.Owned(carol)
	assert.Nil(t, err, "owned")
	assert.Equal(t, 0, len(owned), "carol index")

	assert.Nil(t, tr.Verify(), "verify")
}

func TestSelfTransfer(t *testing.T) {
	tr, ctl := setup(t)
	defer tr.teardown(ctl)

	tr.expectStored("k", 3)

	assert.Nil(t, tr.Create(alice, kitty.DNA("k"), 3), "create")

	err := tr.Transfer(alice, kitty.DNA("k"), alice)
	assert.Equal(t, fault.SelfTransfer, err, "transfer")
	assert.True(t, fault.IsErrInvalid(err), "error class")

	owned, err := tr.Owned(alice)
	assert.Nil(t, err, "owned")
	assert.Equal(t, 1, len(owned), "alice index size")
	assert.Equal(t, 1, containsDNA(owned, "k"), "alice index")

	record := mustGet(t, tr, kitty.DNA("k"))
	assert.True(t, record.Owner.Equal(alice), "owner changed")
	assert.Equal(t, uint32(3), record.Price, "price changed")
	assert.Equal(t, uint64(1), tr.Count(), "count")
	assert.Equal(t, registry.Counters{Created: 1, Rejected: 1}, tr.Counters(), "counters")
	assert.Nil(t, tr.Verify(), "verify")
}

// an account that cannot be decoded from its own bytes is refused
// before anything is stored
func TestMalformedAccount(t *testing.T) {
	tr, ctl := setup(t)
	defer tr.teardown(ctl)

	malformed := &account.Account{
		Algorithm: account.ED25519,
		Test:      true,
		PublicKey: []byte{0x01, 0x02, 0x03},
	}

	err := tr.Create(malformed, kitty.DNA("ab"), 1)
	assert.Equal(t, fault.InvalidAccount, err, "create")
	assert.Equal(t, uint64(0), tr.Count(), "count after create")
	_, err = tr.Kitty(kitty.DNA("ab"))
	assert.Equal(t, fault.RecordNotFound, err, "record stored")
	assert.Nil(t, tr.db.Pool.Owners.Get(malformed.Bytes()), "index entry stored")

	tr.expectStored("cd", 2)
	assert.Nil(t, tr.Create(alice, kitty.DNA("cd"), 2), "create")

	err = tr.Transfer(alice, kitty.DNA("cd"), malformed)
	assert.Equal(t, fault.InvalidAccount, err, "transfer to malformed")

	err = tr.Transfer(malformed, kitty.DNA("cd"), bob)
	assert.Equal(t, fault.InvalidAccount, err, "transfer from malformed")

	record := mustGet(t, tr, kitty.DNA("cd"))
	assert.True(t, record.Owner.Equal(alice), "owner changed")
	owned, err := tr.Owned(alice)
	assert.Nil(t, err, "owned")
	assert.Equal(t, 1, containsDNA(owned, "cd"), "alice index")

	assert.Equal(t, registry.Counters{Created: 1, Rejected: 3}, tr.Counters(), "counters")
	assert.Nil(t, tr.Verify(), "verify")
}

func TestList(t *testing.T) {
	tr, ctl := setup(t)
	defer tr.teardown(ctl)

	tr.sink.EXPECT().Emit(registry.KindKittyStored, gomock.Any()).Times(5)

	// created out of order, listed in byte order
	for _, s := range []string{"d", "a", "c", "e", "b"} {
		assert.Nil(t, tr.Create(alice, kitty.DNA(s), 1), "create: %s", s)
	}

	seen := []string{}
	start := kitty.DNA{}
	for pages := 0; pages < 5; pages += 1 {
		records, next, err := tr.List(start, 2)
		assert.Nil(t, err, "list")
		for _, r := range records {
			seen = append(seen, string(r.DNA))
			assert.True(t, r.Owner.Equal(alice), "owner: %s", r.DNA)
		}
		if nil == next {
			break
		}
		start = next
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, seen, "listed")

	records, next, err := tr.List(kitty.DNA("bb"), 10)
	assert.Nil(t, err, "list from middle")
	assert.Equal(t, 3, len(records), "from middle")
	assert.Equal(t, kitty.DNA("c"), records[0].DNA, "first from middle")
	assert.Nil(t, next, "next after last")

	_, _, err = tr.List(start, 0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
}

// a non owner asking to transfer to itself is refused as not owner
func TestCheckOrder(t *testing.T) {
	tr, ctl := setup(t)
	defer tr.teardown(ctl)

	tr.expectStored("k", 3)

	assert.Nil(t, tr.Create(alice, kitty.DNA("k"), 3), "create")
	assert.Equal(t, fault.NotOwner, tr.Transfer(bob, kitty.DNA("k"), bob), "transfer")
}

func TestWrongNetwork(t *testing.T) {
	tr, ctl := setup(t)
	defer tr.teardown(ctl)

	err := tr.Create(fixtures.AliceLive, kitty.DNA("ab"), 1)
	assert.Equal(t, fault.WrongNetworkForAccount, err, "create")

	tr.expectStored("ab", 1)
	assert.Nil(t, tr.Create(alice, kitty.DNA("ab"), 1), "create")

	err = tr.Transfer(alice, kitty.DNA("ab"), fixtures.AliceLive)
	assert.Equal(t, fault.WrongNetworkForAccount, err, "transfer")

	err = tr.Transfer(nil, kitty.DNA("ab"), bob)
	assert.Equal(t, fault.InvalidAccount, err, "nil caller")

	assert.Equal(t, uint64(3), tr.Counters().Rejected, "rejected")
}

func TestCreateLongDNA(t *testing.T) {
	tr, ctl := setup(t)
	defer tr.teardown(ctl)

	long := make(kitty.DNA, kitty.MaximumDNALength+1)
	assert.Equal(t, fault.InvalidDNA, tr.Create(alice, long, 1), "create")
	assert.Equal(t, uint64(0), tr.Count(), "count")
}

func TestCreateEmptyDNA(t *testing.T) {
	tr, ctl := setup(t)
	defer tr.teardown(ctl)

	tr.expectStored("", 0)

	assert.Nil(t, tr.Create(alice, kitty.DNA{}, 0), "create")

	record, err := tr.Kitty(kitty.DNA{})
	assert.Nil(t, err, "get")
	assert.Equal(t, kitty.Male, record.Gender, "gender")

	assert.Equal(t, fault.DuplicateIdentity, tr.Create(bob, kitty.DNA{}, 0), "duplicate")
	assert.Nil(t, tr.Verify(), "verify")
}

// the stored dna must not share memory with the caller's buffer
func TestCreateCopiesDNA(t *testing.T) {
	tr, ctl := setup(t)
	defer tr.teardown(ctl)

	tr.sink.EXPECT().Emit(registry.KindKittyStored, gomock.Any()).Times(1)

	buffer := []byte("abcd")
	assert.Nil(t, tr.Create(alice, kitty.DNA(buffer), 2), "create")
	buffer[0] = 'z'

	owned, err := tr.Owned(alice)
	assert.Nil(t, err, "owned")
	assert.Equal(t, 1, containsDNA(owned, "abcd"), "alice index")
}

func TestManyOperations(t *testing.T) {
	tr, ctl := setup(t)
	defer tr.teardown(ctl)

	tr.sink.EXPECT().Emit(registry.KindKittyStored, gomock.Any()).Times(20)
	tr.sink.EXPECT().Emit(registry.KindKittyTransferred, gomock.Any()).Times(10)

	for i := 0; i < 20; i += 1 {
		dna := kitty.DNA(bytes.Repeat([]byte{'a' + byte(i)}, i+1))
		assert.Nil(t, tr.Create(alice, dna, uint32(i)), "create: %d", i)
		assert.Equal(t, kitty.DeriveGender(dna), mustGet(t, tr, dna).Gender, "gender: %d", i)
	}
	for i := 0; i < 20; i += 2 {
		dna := kitty.DNA(bytes.Repeat([]byte{'a' + byte(i)}, i+1))
		assert.Nil(t, tr.Transfer(alice, dna, bob), "transfer: %d", i)
	}

	aliceOwned, _ := tr.Owned(alice)
	bobOwned, _ := tr.Owned(bob)
	assert.Equal(t, 10, len(aliceOwned), "alice count")
	assert.Equal(t, 10, len(bobOwned), "bob count")
	assert.Equal(t, uint64(20), tr.Count(), "count")
	assert.Nil(t, tr.Verify(), "verify")
}

func mustGet(t *testing.T, tr *testRegistry, dna kitty.DNA) *kitty.Record {
	record, err := tr.Kitty(dna)
	if nil != err {
		t.Fatalf("get: %x  error: %s", dna, err)
	}
	return record
}

func TestVerifyDetectsDamage(t *testing.T) {
	tr, ctl := setup(t)
	defer tr.teardown(ctl)

	tr.expectStored("ab", 10)
	assert.Nil(t, tr.Create(alice, kitty.DNA("ab"), 10), "create")

	// wrong count
	trx, err := tr.db.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.PutN(tr.db.Pool.Totals, []byte("kitties"), 7)
	assert.Nil(t, trx.Commit(), "commit")
	assert.Equal(t, fault.CountMismatch, tr.Verify(), "count damage")

	// dna indexed under the wrong owner
	trx, _ = tr.db.NewDBTransaction()
	trx.PutN(tr.db.Pool.Totals, []byte("kitties"), 1)
	trx.Put(tr.db.Pool.Owners, bob.Bytes(), []byte{0x01, 0x02, 'a', 'b'})
	assert.Nil(t, trx.Commit(), "commit")
	assert.Equal(t, fault.InconsistentIndex, tr.Verify(), "index damage")
}

func TestCorruptIndexPanics(t *testing.T) {
	tr, ctl := setup(t)
	defer tr.teardown(ctl)

	trx, _ := tr.db.NewDBTransaction()
	trx.Put(tr.db.Pool.Owners, alice.Bytes(), []byte{0x05})
	assert.Nil(t, trx.Commit(), "commit")

	assert.Panics(t, func() {
		_ = tr.Create(alice, kitty.DNA("ab"), 1)
	}, "corrupt owner entry")

	// nothing was committed and the registry is usable again
	_, err := tr.Kitty(kitty.DNA("ab"))
	assert.Equal(t, fault.RecordNotFound, err, "partial create")

	tr.expectStored("cd", 1)
	assert.Nil(t, tr.Create(bob, kitty.DNA("cd"), 1), "create after panic")
}
