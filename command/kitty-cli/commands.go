// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/command/kitty-cli/rpccalls"
	"github.com/bitmark-inc/kittyd/kitty"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := identity(m)
	if nil != err {
		return err
	}

	dna, err := checkDNA(c)
	if nil != err {
		return err
	}

	price := c.Uint("price")
	if price > math.MaxUint32 {
		return fmt.Errorf("price: %d is too large", price)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Create(caller, dna, uint32(price))
	if nil != err {
		return err
	}

	return printJSON(m.w, reply)
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := identity(m)
	if nil != err {
		return err
	}

	dna, err := checkDNA(c)
	if nil != err {
		return err
	}

	receiver := c.String("receiver")
	if "" == receiver {
		return fmt.Errorf("receiver is required")
	}
	newOwner, err := account.AccountFromBase58(receiver)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Transfer(caller, dna, newOwner)
	if nil != err {
		return err
	}

	return printJSON(m.w, reply)
}

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	dna, err := checkDNA(c)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Get(dna)
	if nil != err {
		return err
	}

	return printJSON(m.w, reply.Record)
}

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var owner *account.Account
	var err error
	if s := c.String("owner"); "" != s {
		owner, err = account.AccountFromBase58(s)
	} else {
		owner, err = identity(m)
	}
	if nil != err {
		return err
	}

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetOwned(&rpccalls.OwnedData{
		Owner: owner,
		Start: c.Uint64("start"),
		Count: count,
	})
	if nil != err {
		return err
	}

	return printJSON(m.w, reply)
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJSON(m.w, reply)
}

func runVersion(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	fmt.Fprintf(m.w, "%s\n", version)
	return nil
}

// the calling account from the global identity flag
func identity(m *metadata) (*account.Account, error) {
	if "" == m.identity {
		return nil, fmt.Errorf("identity is required")
	}
	return account.AccountFromBase58(m.identity)
}

// an explicit empty --dna is a valid empty DNA
func checkDNA(c *cli.Context) (kitty.DNA, error) {
	if !c.IsSet("dna") {
		return nil, fmt.Errorf("dna is required")
	}
	return kitty.DNAFromHex(c.String("dna"))
}

func printJSON(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
