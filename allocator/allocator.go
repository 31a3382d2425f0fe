// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package allocator - monotonic critter identifier source
//
// The next identifier lives in the NextId pool so allocation survives a
// restart.  The counter starts at zero, moves only forwards and is
// never reused.  The increment is overflow checked: at the maximum the
// allocation fails and the stored counter is left untouched.
package allocator

import (
	"github.com/bitmark-inc/critterd/critter"
	"github.com/bitmark-inc/critterd/fault"
	"github.com/bitmark-inc/critterd/storage"
)

// the single counter record
var nextIdKey = []byte("N")

// Allocator - identifier source bound to a storage pool
type Allocator struct {
	pool storage.Handle
}

// New - create an allocator over the NextId pool
func New(pool storage.Handle) *Allocator {
	return &Allocator{
		pool: pool,
	}
}

// NextId - allocate the next identifier inside a transaction
//
// returns the current counter value and stores counter+1; the write
// only becomes durable when the caller's transaction commits
func (a *Allocator) NextId(trx storage.Transaction) (critter.Id, error) {
	current, found := trx.GetN(a.pool, nextIdKey)
	if !found {
		current = 0
	}

	id := critter.Id(current)
	if critter.MaximumId == id {
		// no partial mutation, the stored counter stays at the maximum
		return 0, fault.ErrIdentifierOverflow
	}

	trx.PutN(a.pool, nextIdKey, current+1)
	return id, nil
}

// Current - read the counter without allocating
func (a *Allocator) Current() critter.Id {
	current, found := a.pool.GetN(nextIdKey)
	if !found {
		return 0
	}
	return critter.Id(current)
}
