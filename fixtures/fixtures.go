// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// test network accounts with distinct keys
var (
	Alice = testAccount(0x11)
	Bob   = testAccount(0x22)
	Carol = testAccount(0x33)

	// same key as Alice, but on the live network
	AliceLive = &account.Account{
		Algorithm: account.ED25519,
		Test:      false,
		PublicKey: bytes.Repeat([]byte{0x11}, 32),
	}
)

func testAccount(b byte) *account.Account {
	return &account.Account{
		Algorithm: account.ED25519,
		Test:      true,
		PublicKey: bytes.Repeat([]byte{b}, 32),
	}
}

// SetupTestLogger - log to a scratch directory at critical level only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
