// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/critterd/account"
	"github.com/bitmark-inc/critterd/allocator"
	"github.com/bitmark-inc/critterd/configuration"
	"github.com/bitmark-inc/critterd/critter"
	"github.com/bitmark-inc/critterd/genome"
	"github.com/bitmark-inc/critterd/market"
	"github.com/bitmark-inc/critterd/publish"
	"github.com/bitmark-inc/critterd/random"
	"github.com/bitmark-inc/critterd/registry"
	"github.com/bitmark-inc/critterd/storage"
)

// bring up configuration, logging, storage and the two ledgers
//
// the caller must arrange for teardownSystem to run on all exit paths
func initialiseSystem(globals globalFlags) *configuration.Configuration {

	options, err := configuration.GetConfiguration(globals.config)
	if nil != err {
		exitwithstatus.Message("configuration error: %s", err)
	}

	// ensure the log directory exists before the logger opens its file
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("log directory: %q  error: %s", options.Logging.Directory, err)
	}

	logging := logger.Configuration{
		Directory: options.Logging.Directory,
		File:      options.Logging.File,
		Size:      options.Logging.Size,
		Count:     options.Logging.Count,
		Console:   options.Logging.Console,
		Levels:    options.Logging.Levels,
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("logger setup failed with error: %s", err)
	}

	if err := storage.Initialise(options.DatabasePath()); nil != err {
		exitwithstatus.Message("storage initialise error: %s", err)
	}

	source := random.New([]byte(options.RandomSeed))

	err = registry.Initialise(storage.Pool.Critters, storage.Pool.OwnerIndex, storage.Pool.NextId, source)
	if nil != err {
		exitwithstatus.Message("registry initialise error: %s", err)
	}

	err = market.Initialise(storage.Pool.Prices, storage.Pool.Balances)
	if nil != err {
		exitwithstatus.Message("market initialise error: %s", err)
	}

	return options
}

// reverse order of initialiseSystem
func teardownSystem() {
	_ = market.Finalise()
	_ = registry.Finalise()
	storage.Finalise()
	logger.Finalise()
}

// read a required account flag
func accountFlag(c *cli.Context, name string) account.Account {
	s := c.String(name)
	if "" == s {
		exitwithstatus.Message("missing %s argument", name)
	}
	owner, err := account.AccountFromBase58(s)
	if nil != err {
		exitwithstatus.Message("%s: %q  error: %s", name, s, err)
	}
	return owner
}

// all command results are printed as indented JSON
func printJson(title string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("marshal error: %s", err)
	}
	if "" != title {
		fmt.Printf("%s:\n", title)
	}
	fmt.Printf("%s\n", b)
}

func runCreate(c *cli.Context, globals globalFlags) {
	owner := accountFlag(c, "owner")

	_ = initialiseSystem(globals)
	defer teardownSystem()

	id, gen, err := registry.Create(owner)
	if nil != err {
		exitwithstatus.Message("create error: %s", err)
	}

	printJson("", struct {
		Id     critter.Id    `json:"id"`
		Genome genome.Genome `json:"genome"`
		Gender genome.Gender `json:"gender"`
	}{
		Id:     id,
		Genome: gen,
		Gender: gen.Gender(),
	})
}

func runBreed(c *cli.Context, globals globalFlags) {
	owner := accountFlag(c, "owner")
	first := critter.Id(c.Uint64("first"))
	second := critter.Id(c.Uint64("second"))

	_ = initialiseSystem(globals)
	defer teardownSystem()

	id, gen, err := registry.Breed(owner, first, second)
	if nil != err {
		exitwithstatus.Message("breed error: %s", err)
	}

	printJson("", struct {
		Id     critter.Id    `json:"id"`
		Genome genome.Genome `json:"genome"`
		Gender genome.Gender `json:"gender"`
	}{
		Id:     id,
		Genome: gen,
		Gender: gen.Gender(),
	})
}

func runTransfer(c *cli.Context, globals globalFlags) {
	from := accountFlag(c, "from")
	to := accountFlag(c, "to")
	id := critter.Id(c.Uint64("id"))

	_ = initialiseSystem(globals)
	defer teardownSystem()

	err := registry.Transfer(from, to, id)
	if nil != err {
		exitwithstatus.Message("transfer error: %s", err)
	}

	printJson("", struct {
		Id    critter.Id      `json:"id"`
		Owner account.Account `json:"owner"`
	}{
		Id:    id,
		Owner: to,
	})
}

func runPrice(c *cli.Context, globals globalFlags) {
	owner := accountFlag(c, "owner")
	id := critter.Id(c.Uint64("id"))
	newPrice := c.Uint64("price")

	_ = initialiseSystem(globals)
	defer teardownSystem()

	oldPrice, err := market.SetPrice(owner, id, newPrice)
	if nil != err {
		exitwithstatus.Message("price error: %s", err)
	}

	printJson("", struct {
		Id       critter.Id `json:"id"`
		OldPrice uint64     `json:"old_price"`
		NewPrice uint64     `json:"new_price"`
	}{
		Id:       id,
		OldPrice: oldPrice,
		NewPrice: newPrice,
	})
}

func runExchange(c *cli.Context, globals globalFlags) {
	initiator := accountFlag(c, "initiator")
	counterparty := accountFlag(c, "counterparty")
	id := critter.Id(c.Uint64("id"))

	_ = initialiseSystem(globals)
	defer teardownSystem()

	err := market.Exchange(initiator, counterparty, id)
	if nil != err {
		exitwithstatus.Message("exchange error: %s", err)
	}

	printJson("", struct {
		Id           critter.Id      `json:"id"`
		Initiator    account.Account `json:"initiator"`
		Counterparty account.Account `json:"counterparty"`
	}{
		Id:           id,
		Initiator:    initiator,
		Counterparty: counterparty,
	})
}

func runDeposit(c *cli.Context, globals globalFlags) {
	owner := accountFlag(c, "owner")
	amount := c.Uint64("amount")

	_ = initialiseSystem(globals)
	defer teardownSystem()

	err := market.Deposit(owner, amount)
	if nil != err {
		exitwithstatus.Message("deposit error: %s", err)
	}

	balance, _ := market.BalanceOf(owner)
	printJson("", struct {
		Owner   account.Account `json:"owner"`
		Balance uint64          `json:"balance"`
	}{
		Owner:   owner,
		Balance: balance,
	})
}

func runOwned(c *cli.Context, globals globalFlags) {
	owner := accountFlag(c, "owner")
	start := critter.Id(c.Uint64("start"))
	count := c.Int("count")

	_ = initialiseSystem(globals)
	defer teardownSystem()

	owned, err := registry.ListFor(owner, start, count)
	if nil != err {
		exitwithstatus.Message("list error: %s", err)
	}

	printJson("", struct {
		Owner account.Account  `json:"owner"`
		Data  []registry.Owned `json:"data"`
	}{
		Owner: owner,
		Data:  owned,
	})
}

func runBalance(c *cli.Context, globals globalFlags) {
	owner := accountFlag(c, "owner")

	_ = initialiseSystem(globals)
	defer teardownSystem()

	balance, found := market.BalanceOf(owner)
	printJson("", struct {
		Owner   account.Account `json:"owner"`
		Balance uint64          `json:"balance"`
		Found   bool            `json:"found"`
	}{
		Owner:   owner,
		Balance: balance,
		Found:   found,
	})
}

func runInfo(c *cli.Context, globals globalFlags) {
	options := initialiseSystem(globals)
	defer teardownSystem()

	nextId := allocator.New(storage.Pool.NextId).Current()

	printJson("", struct {
		Version  string     `json:"version"`
		Database string     `json:"database"`
		NextId   critter.Id `json:"next_id"`
	}{
		Version:  Version,
		Database: options.DatabasePath(),
		NextId:   nextId,
	})
}

func runDaemon(c *cli.Context, globals globalFlags) {
	options := initialiseSystem(globals)
	defer teardownSystem()

	log := logger.New("main")
	log.Infof("critterd: %s", Version)

	err := publish.Initialise(&options.Publishing)
	if nil != err {
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer func() {
		_ = publish.Finalise()
	}()

	// wait for CTRL-C or termination
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	sig := <-ch

	log.Infof("received signal: %v", sig)
	log.Info("shutting down…")
}
