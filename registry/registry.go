// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the critter ownership ledger
//
// All mutations of the Critters and OwnerIndex pools happen here or in
// the market exchange, always inside one storage transaction and under
// the single writer lock, so the one-owner-per-identifier invariant
// holds at every observable point.
package registry

import (
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/critterd/account"
	"github.com/bitmark-inc/critterd/allocator"
	"github.com/bitmark-inc/critterd/critter"
	"github.com/bitmark-inc/critterd/fault"
	"github.com/bitmark-inc/critterd/genome"
	"github.com/bitmark-inc/critterd/random"
	"github.com/bitmark-inc/critterd/storage"
	"github.com/bitmark-inc/logger"
)

// globals
type registryData struct {
	sync.RWMutex
	log        *logger.L
	critters   storage.Handle
	ownerIndex storage.Handle
	ids        *allocator.Allocator
	rand       random.Source

	// genomes are immutable so cached entries can never go stale;
	// existence and ownership are always read from storage
	genomes *gocache.Cache

	// set once during initialise
	initialised bool
}

// global data
var globalData registryData

// Initialise - connect the ledger to its pools and randomness source
func Initialise(critters storage.Handle, ownerIndex storage.Handle, nextId storage.Handle, source random.Source) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("registry")
	globalData.log.Info("starting…")

	globalData.critters = critters
	globalData.ownerIndex = ownerIndex
	globalData.ids = allocator.New(nextId)
	globalData.rand = source
	globalData.genomes = gocache.New(gocache.NoExpiration, 0)

	globalData.initialised = true
	return nil
}

// Finalise - stop the ledger
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.genomes.Flush()
	globalData.initialised = false
	return nil
}

// IsOwner - check owner currently holds this identifier
func IsOwner(owner account.Account, id critter.Id) bool {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.ownerIndex.Has(ownerIndexKey(owner, id))
}

// Get - fetch the genome of a critter held by owner
func Get(owner account.Account, id critter.Id) (genome.Genome, bool) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.ownerIndex.Has(ownerIndexKey(owner, id)) {
		return genome.Genome{}, false
	}
	g, ok := cachedGenome(id)
	if !ok {
		return genome.Genome{}, false
	}
	return g, true
}

// OwnerOf - find the current owner of an identifier
func OwnerOf(id critter.Id) (account.Account, bool) {
	globalData.RLock()
	defer globalData.RUnlock()

	record, ok := getRecord(id)
	if !ok {
		return account.Account{}, false
	}
	return record.Owner, true
}

// membership index key: owner ⧺ id
func ownerIndexKey(owner account.Account, id critter.Id) []byte {
	return append(owner.Bytes(), id.Bytes()...)
}

// read and unpack one record, must hold at least a read lock
func getRecord(id critter.Id) (critter.Record, bool) {
	packed := globalData.critters.Get(id.Bytes())
	if nil == packed {
		return critter.Record{}, false
	}
	record, err := critter.RecordFromBytes(packed)
	if nil != err {
		logger.Panicf("registry: corrupt record for id: %s  error: %s", id, err)
	}
	globalData.genomes.Set(id.String(), record.Genome, gocache.NoExpiration)
	return record, true
}

// genome by identifier, served from cache when possible
func cachedGenome(id critter.Id) (genome.Genome, bool) {
	if cached, ok := globalData.genomes.Get(id.String()); ok {
		return cached.(genome.Genome), true
	}
	record, ok := getRecord(id)
	if !ok {
		return genome.Genome{}, false
	}
	return record.Genome, true
}
