// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - price listings and the balance ledger
//
// A critter is for sale exactly while a record exists in the Prices
// pool.  Balances are an internal ledger only, not a currency.  The
// exchange protocol keeps the historical contract of the system it
// replaces, including its destructive listing read; see the notes on
// Exchange.
package market

import (
	"sync"

	"github.com/bitmark-inc/critterd/account"
	"github.com/bitmark-inc/critterd/critter"
	"github.com/bitmark-inc/critterd/fault"
	"github.com/bitmark-inc/critterd/storage"
	"github.com/bitmark-inc/logger"
)

// globals
type marketData struct {
	sync.RWMutex
	log      *logger.L
	prices   storage.Handle
	balances storage.Handle

	// set once during initialise
	initialised bool
}

// global data
var globalData marketData

// Initialise - connect the marketplace to its pools
func Initialise(prices storage.Handle, balances storage.Handle) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("market")
	globalData.log.Info("starting…")

	globalData.prices = prices
	globalData.balances = balances

	globalData.initialised = true
	return nil
}

// Finalise - stop the marketplace
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// Price - current listing for an identifier, if any
func Price(id critter.Id) (uint64, bool) {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.prices.GetN(id.Bytes())
}

// BalanceOf - ledger balance for an account, if a record exists
func BalanceOf(owner account.Account) (uint64, bool) {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.balances.GetN(owner.Bytes())
}

// Deposit - credit an account's ledger balance
//
// creates the balance record if absent; this is how accounts are
// funded at genesis, there is no way to mint inside an exchange
func Deposit(owner account.Account, amount uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	current, _ := globalData.balances.GetN(owner.Bytes())
	total, err := addChecked(current, amount)
	if nil != err {
		return err
	}

	globalData.balances.PutN(owner.Bytes(), total)
	globalData.log.Infof("deposit: %s  amount: %d  balance: %d", owner, amount, total)
	return nil
}

// overflow checked addition
func addChecked(a uint64, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, fault.ErrBalanceOverflow
	}
	return sum, nil
}

// underflow checked subtraction
func subChecked(a uint64, b uint64) (uint64, error) {
	if b > a {
		return 0, fault.ErrBalanceUnderflow
	}
	return a - b, nil
}
