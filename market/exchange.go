// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/bitmark-inc/critterd/account"
	"github.com/bitmark-inc/critterd/critter"
	"github.com/bitmark-inc/critterd/fault"
	"github.com/bitmark-inc/critterd/messagebus"
	"github.com/bitmark-inc/critterd/registry"
	"github.com/bitmark-inc/critterd/storage"
)

// Exchange - consume the listing for a critter and settle against the
// balance ledger
//
// historical contract, kept bit for bit:
//   - the listing is removed as soon as it is read, even when the
//     exchange then fails, so a failed exchange unlists the critter
//   - the balance gate reads the counterparty's record, not the
//     initiator's, and a missing record reports NotForSale
//   - the price must be strictly below the counterparty's balance
//   - on success the critter is removed from the initiator and is not
//     inserted under the counterparty
// balance arithmetic is overflow checked, which the historical system
// did not do; a checked failure aborts everything but the listing
func Exchange(initiator account.Account, counterparty account.Account, id critter.Id) error {
	globalData.Lock()
	defer globalData.Unlock()

	if initiator == counterparty {
		return fault.ErrExchangeWithSelf
	}

	// destructive read: from here on the listing is gone whatever happens
	price, found := globalData.prices.GetN(id.Bytes())
	if !found {
		return fault.ErrNotForSale
	}
	globalData.prices.Delete(id.Bytes())

	counterpartyBalance, found := globalData.balances.GetN(counterparty.Bytes())
	if !found {
		return fault.ErrNotForSale
	}

	if price >= counterpartyBalance {
		return fault.ErrInsufficientBalance
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	// subtract from the initiator only if a record exists
	initiatorBalance, found := globalData.balances.GetN(initiator.Bytes())
	if found {
		newBalance, err := subChecked(initiatorBalance, price)
		if nil != err {
			trx.Abort()
			return err
		}
		trx.PutN(globalData.balances, initiator.Bytes(), newBalance)
	}

	newBalance, err := addChecked(counterpartyBalance, price)
	if nil != err {
		trx.Abort()
		return err
	}
	trx.PutN(globalData.balances, counterparty.Bytes(), newBalance)

	// the critter leaves the initiator and goes nowhere
	err = registry.Remove(trx, initiator, id)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("exchange: id: %s  %s → %s  price: %d", id, initiator, counterparty, price)
	messagebus.Send("market", messagebus.CritterExchanged{
		Id:           id,
		Initiator:    initiator,
		Counterparty: counterparty,
	})
	return nil
}
