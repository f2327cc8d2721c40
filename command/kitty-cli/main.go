// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect  string
	identity string
	verbose  bool
	e        io.Writer
	w        io.Writer
}

const defaultConnect = "127.0.0.1:2130"

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "kitty-cli"
	app.Usage = "kittyd registry client"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: defaultConnect,
			Usage: " kittyd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " calling account `ACCOUNT` (base58)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "register a new kitty owned by the identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dna, d",
					Value: "",
					Usage: "*kitty dna `HEX`",
				},
				cli.UintFlag{
					Name:  "price, p",
					Value: 0,
					Usage: " price `NUMBER`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a kitty to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dna, d",
					Value: "",
					Usage: "*kitty dna `HEX`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account to receive the kitty `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "get",
			Usage:     "display a kitty record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dna, d",
					Value: "",
					Usage: "*kitty dna `HEX`",
				},
			},
			Action: runGet,
		},
		{
			Name:      "owned",
			Usage:     "list kitties owned by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " account `ACCOUNT` [default identity]",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " position of first item `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum items to return `COUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:   "info",
			Usage:  "display kittyd node information",
			Action: runInfo,
		},
		{
			Name:   "version",
			Usage:  "display kitty-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		m := &metadata{
			connect:  c.GlobalString("connect"),
			identity: c.GlobalString("identity"),
			verbose:  c.GlobalBool("verbose"),
			w:        c.App.Writer,
			e:        c.App.ErrWriter,
		}

		c.App.Metadata = map[string]interface{}{
			"config": m,
		}

		if "" == m.connect {
			return fmt.Errorf("connect is required")
		}

		return nil
	}

	return app
}
