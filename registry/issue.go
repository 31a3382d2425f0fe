// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/critterd/account"
	"github.com/bitmark-inc/critterd/critter"
	"github.com/bitmark-inc/critterd/fault"
	"github.com/bitmark-inc/critterd/genome"
	"github.com/bitmark-inc/critterd/messagebus"
	"github.com/bitmark-inc/critterd/storage"
)

// Create - issue a brand new critter to owner
func Create(owner account.Account) (critter.Id, genome.Genome, error) {
	globalData.Lock()
	defer globalData.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, genome.Genome{}, err
	}

	id, err := globalData.ids.NextId(trx)
	if nil != err {
		trx.Abort()
		return 0, genome.Genome{}, err
	}

	g := globalData.rand.Random(owner)

	err = store(trx, id, owner, g)
	if nil != err {
		trx.Abort()
		return 0, genome.Genome{}, err
	}

	globalData.log.Infof("create: owner: %s  id: %s  genome: %s", owner, id, g)
	messagebus.Send("registry", messagebus.CritterCreated{
		Owner:  owner,
		Id:     id,
		Genome: g,
	})
	return id, g, nil
}

// Breed - derive a child from two critters held by the same owner
//
// the parents must have different genders; the child genome takes each
// bit from one parent or the other according to a random selector
func Breed(owner account.Account, idA critter.Id, idB critter.Id) (critter.Id, genome.Genome, error) {
	globalData.Lock()
	defer globalData.Unlock()

	genomeA, ok := ownedGenome(owner, idA)
	if !ok {
		return 0, genome.Genome{}, fault.ErrInvalidCritterId
	}
	genomeB, ok := ownedGenome(owner, idB)
	if !ok {
		return 0, genome.Genome{}, fault.ErrInvalidCritterId
	}

	if genomeA.Gender() == genomeB.Gender() {
		return 0, genome.Genome{}, fault.ErrSameGender
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, genome.Genome{}, err
	}

	id, err := globalData.ids.NextId(trx)
	if nil != err {
		trx.Abort()
		return 0, genome.Genome{}, err
	}

	selector := globalData.rand.Random(owner)
	child := genome.Combine(genomeA, genomeB, selector)

	err = store(trx, id, owner, child)
	if nil != err {
		trx.Abort()
		return 0, genome.Genome{}, err
	}

	globalData.log.Infof("breed: owner: %s  parents: %s + %s  id: %s  genome: %s", owner, idA, idB, id, child)
	messagebus.Send("registry", messagebus.CritterBred{
		Owner:  owner,
		Id:     id,
		Genome: child,
	})
	return id, child, nil
}

// write record and membership index together, then commit
func store(trx storage.Transaction, id critter.Id, owner account.Account, g genome.Genome) error {
	record := critter.Record{
		Owner:  owner,
		Genome: g,
	}
	trx.Put(globalData.critters, id.Bytes(), record.Pack())
	trx.Put(globalData.ownerIndex, ownerIndexKey(owner, id), []byte{})
	return trx.Commit()
}

// genome of a critter only if held by owner, must hold the lock
func ownedGenome(owner account.Account, id critter.Id) (genome.Genome, bool) {
	if !globalData.ownerIndex.Has(ownerIndexKey(owner, id)) {
		return genome.Genome{}, false
	}
	return cachedGenome(id)
}
