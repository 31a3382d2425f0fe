// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// critterd - registry of unique digital collectibles
//
// commands operate directly on the local database; the daemon mode
// additionally broadcasts events over ZeroMQ
package main

import (
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
	"os"
)

type globalFlags struct {
	verbose bool
	config  string
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	globals := globalFlags{}

	app := cli.NewApp()
	app.Name = "critterd"
	app.Usage = "collectible critter registry and marketplace"
	app.Version = Version
	app.HideVersion = false
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "verbose, v",
			Usage:       " verbose result",
			Destination: &globals.verbose,
		},
		cli.StringFlag{
			Name:        "config, c",
			Value:       "critterd.conf",
			Usage:       "critterd config file",
			Destination: &globals.config,
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "issue a new critter",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account, base58",
				},
			},
			Action: func(c *cli.Context) error {
				runCreate(c, globals)
				return nil
			},
		},
		{
			Name:      "breed",
			Usage:     "breed two critters of the same owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account, base58",
				},
				cli.Uint64Flag{
					Name:  "first, f",
					Usage: "*identifier of the first parent",
				},
				cli.Uint64Flag{
					Name:  "second, s",
					Usage: "*identifier of the second parent",
				},
			},
			Action: func(c *cli.Context) error {
				runBreed(c, globals)
				return nil
			},
		},
		{
			Name:      "transfer",
			Usage:     "transfer a critter to a new owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*current owner account, base58",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*new owner account, base58",
				},
				cli.Uint64Flag{
					Name:  "id, i",
					Usage: "*critter identifier",
				},
			},
			Action: func(c *cli.Context) error {
				runTransfer(c, globals)
				return nil
			},
		},
		{
			Name:      "price",
			Usage:     "overwrite the listing price of a critter",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account, base58",
				},
				cli.Uint64Flag{
					Name:  "id, i",
					Usage: "*critter identifier",
				},
				cli.Uint64Flag{
					Name:  "price, p",
					Usage: "*new price",
				},
			},
			Action: func(c *cli.Context) error {
				runPrice(c, globals)
				return nil
			},
		},
		{
			Name:      "exchange",
			Usage:     "exchange a listed critter against the balance ledger",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "initiator, n",
					Value: "",
					Usage: "*initiating account, base58",
				},
				cli.StringFlag{
					Name:  "counterparty, r",
					Value: "",
					Usage: "*counterparty account, base58",
				},
				cli.Uint64Flag{
					Name:  "id, i",
					Usage: "*critter identifier",
				},
			},
			Action: func(c *cli.Context) error {
				runExchange(c, globals)
				return nil
			},
		},
		{
			Name:      "deposit",
			Usage:     "credit an account's marketplace balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*account, base58",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Usage: "*amount to credit",
				},
			},
			Action: func(c *cli.Context) error {
				runDeposit(c, globals)
				return nil
			},
		},
		{
			Name:      "owned",
			Usage:     "list critters held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account, base58",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Usage: " first identifier [0]",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records [20]",
				},
			},
			Action: func(c *cli.Context) error {
				runOwned(c, globals)
				return nil
			},
		},
		{
			Name:      "balance",
			Usage:     "show an account's marketplace balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*account, base58",
				},
			},
			Action: func(c *cli.Context) error {
				runBalance(c, globals)
				return nil
			},
		},
		{
			Name:  "info",
			Usage: "show version and allocation state",
			Action: func(c *cli.Context) error {
				runInfo(c, globals)
				return nil
			},
		},
		{
			Name:  "daemon",
			Usage: "run until interrupted, broadcasting events",
			Action: func(c *cli.Context) error {
				runDaemon(c, globals)
				return nil
			},
		},
	}

	app.Run(os.Args)
}
