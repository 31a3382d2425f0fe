// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/critterd/account"
	"github.com/bitmark-inc/critterd/critter"
	"github.com/bitmark-inc/critterd/fault"
	"github.com/bitmark-inc/critterd/messagebus"
	"github.com/bitmark-inc/critterd/storage"
)

// Transfer - move a critter to a new owner
//
// a transfer to self only validates existence and writes nothing; a
// real transfer replaces the record and both index entries in one
// batch so no intermediate ownership state is observable
func Transfer(from account.Account, to account.Account, id critter.Id) error {
	globalData.Lock()
	defer globalData.Unlock()

	if from == to {
		if !globalData.ownerIndex.Has(ownerIndexKey(from, id)) {
			return fault.ErrInvalidCritterId
		}
		return nil
	}

	record, ok := getRecord(id)
	if !ok || record.Owner != from {
		return fault.ErrInvalidCritterId
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	record.Owner = to
	trx.Put(globalData.critters, id.Bytes(), record.Pack())
	trx.Delete(globalData.ownerIndex, ownerIndexKey(from, id))
	trx.Put(globalData.ownerIndex, ownerIndexKey(to, id), []byte{})

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("transfer: %s → %s  id: %s", from, to, id)
	messagebus.Send("registry", messagebus.CritterTransferred{
		From: from,
		To:   to,
		Id:   id,
	})
	return nil
}

// Remove - delete a critter from its owner without a new owner
//
// only the market exchange uses this; the listing contract is that the
// critter leaves the initiator's table and is not inserted anywhere
func Remove(trx storage.Transaction, owner account.Account, id critter.Id) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.ownerIndex.Has(ownerIndexKey(owner, id)) {
		return fault.ErrInvalidCritterId
	}

	trx.Delete(globalData.critters, id.Bytes())
	trx.Delete(globalData.ownerIndex, ownerIndexKey(owner, id))
	return nil
}
