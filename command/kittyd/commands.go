// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/registry"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	defaultListCount = 20
)

// output of the list command, next is absent after the last record
type listReply struct {
	Records []*kitty.Record `json:"records"`
	Next    kitty.DNA       `json:"next,omitempty"`
}

// setup command handler
//
// commands that run to create certificate files these commands
// cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "count", "owned", "kitty", "list", "verify":
		return false // defer processing until database is opened

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  gen-rpc-cert               (rpc)    - create private key and self-signed certificate for RPC\n")
		fmt.Printf("  gen-rpc-cert DIR                    - create private key and self-signed certificate for RPC in DIR\n")
		fmt.Printf("  gen-rpc-cert DIR IP1 IP2 ...        - create key and certificate for RPC with extra IP addresses\n\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convenience when passing script arguments\n\n")

		fmt.Printf("  count                               - display the number of kitties ever created\n")
		fmt.Printf("  owned ACCOUNT                       - list the DNA of kitties owned by ACCOUNT\n")
		fmt.Printf("  kitty DNA                           - display the record for hex DNA\n")
		fmt.Printf("  list [DNA [COUNT]]                  - display up to COUNT records starting from hex DNA\n")
		fmt.Printf("  verify                              - check kitty records against owner index and count\n")
		fmt.Printf("\n")
		exitwithstatus.Exit(1)
	}

	// indicate processing complete and prefor normal exit from main
	return true
}

// data command handler
//
// the registry is open and so these commands can query it
func processDataCommand(out io.Writer, arguments []string, r *registry.Registry) (bool, error) {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "count":
		fmt.Fprintf(out, "%d\n", r.Count())

	case "owned":
		if 1 != len(arguments) {
			return true, fmt.Errorf("owned requires exactly one account argument")
		}
		owner, err := account.AccountFromBase58(arguments[0])
		if nil != err {
			return true, err
		}
		list, err := r.Owned(owner)
		if nil != err {
			return true, err
		}
		return true, printJSON(out, list)

	case "kitty":
		if 1 != len(arguments) {
			return true, fmt.Errorf("kitty requires exactly one dna argument")
		}
		dna, err := kitty.DNAFromHex(arguments[0])
		if nil != err {
			return true, err
		}
		record, err := r.Kitty(dna)
		if nil != err {
			return true, err
		}
		return true, printJSON(out, record)

	case "list":
		if len(arguments) > 2 {
			return true, fmt.Errorf("list takes at most a dna and a count")
		}
		start := kitty.DNA{}
		count := defaultListCount
		if len(arguments) >= 1 {
			dna, err := kitty.DNAFromHex(arguments[0])
			if nil != err {
				return true, err
			}
			start = dna
		}
		if 2 == len(arguments) {
			n, err := strconv.Atoi(arguments[1])
			if nil != err || n <= 0 {
				return true, fault.InvalidCount
			}
			count = n
		}
		records, next, err := r.List(start, count)
		if nil != err {
			return true, err
		}
		return true, printJSON(out, listReply{
			Records: records,
			Next:    next,
		})

	case "verify":
		if err := r.Verify(); nil != err {
			return true, err
		}
		fmt.Fprintf(out, "ok: %d kitties\n", r.Count())

	default:
		return false, nil
	}

	return true, nil
}

func printJSON(out io.Writer, data interface{}) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", b)
	return err
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	if _, err := os.Stat(dir); nil != err {
		fmt.Printf("directory: %q error: %s\n", dir, err)
		exitwithstatus.Exit(1)
	}

	return filepath.Join(dir, name)
}
