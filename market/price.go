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
)

// SetPrice - overwrite the listing of an already listed critter
//
// historical contract: a price must already exist, so a critter can
// never receive its first listing through this call; the precondition
// is kept as is
func SetPrice(caller account.Account, id critter.Id, newPrice uint64) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !registry.IsOwner(caller, id) {
		return 0, fault.ErrInvalidCritterId
	}

	oldPrice, found := globalData.prices.GetN(id.Bytes())
	if !found {
		return 0, fault.ErrNotForSale
	}

	globalData.prices.PutN(id.Bytes(), newPrice)

	globalData.log.Infof("set price: caller: %s  id: %s  price: %d → %d", caller, id, oldPrice, newPrice)
	messagebus.Send("market", messagebus.PriceUpdated{
		Id:    id,
		Price: newPrice,
	})
	return oldPrice, nil
}
