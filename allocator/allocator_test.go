// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package allocator_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/critterd/allocator"
	"github.com/bitmark-inc/critterd/critter"
	"github.com/bitmark-inc/critterd/fault"
	"github.com/bitmark-inc/critterd/storage"
)

const databaseFileName = "test-allocator"

func removeFiles() {
	os.RemoveAll(databaseFileName + "-data.leveldb")
}

func setup(t *testing.T) {
	removeFiles()
	err := storage.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
}

func allocate(t *testing.T, a *allocator.Allocator) (critter.Id, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	id, err := a.NextId(trx)
	if nil != err {
		trx.Abort()
		return 0, err
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return id, nil
}

// identifiers start at zero and advance by exactly one
func TestMonotonicAllocation(t *testing.T) {
	setup(t)
	defer teardown(t)

	a := allocator.New(storage.Pool.NextId)

	for expected := critter.Id(0); expected < 5; expected += 1 {
		id, err := allocate(t, a)
		if nil != err {
			t.Fatalf("allocation error: %s", err)
		}
		if expected != id {
			t.Errorf("allocated: %s  expected: %s", id, expected)
		}
	}

	if critter.Id(5) != a.Current() {
		t.Errorf("counter: %s  expected: 5", a.Current())
	}
}

// at the maximum the allocation fails and the counter is unchanged
func TestOverflow(t *testing.T) {
	setup(t)
	defer teardown(t)

	// place the stored counter at the maximum
	storage.Pool.NextId.PutN([]byte("N"), ^uint64(0))

	a := allocator.New(storage.Pool.NextId)

	_, err := allocate(t, a)
	if fault.ErrIdentifierOverflow != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrIdentifierOverflow)
	}

	// no partial mutation
	if critter.MaximumId != a.Current() {
		t.Errorf("counter moved on overflow: %s", a.Current())
	}

	// still failing, still unchanged
	_, err = allocate(t, a)
	if fault.ErrIdentifierOverflow != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrIdentifierOverflow)
	}
	if critter.MaximumId != a.Current() {
		t.Errorf("counter moved on overflow: %s", a.Current())
	}
}

// an aborted allocation does not consume an identifier
func TestAbortedAllocation(t *testing.T) {
	setup(t)
	defer teardown(t)

	a := allocator.New(storage.Pool.NextId)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	id, err := a.NextId(trx)
	if nil != err {
		t.Fatalf("allocation error: %s", err)
	}
	if critter.Id(0) != id {
		t.Errorf("allocated: %s  expected: 0", id)
	}
	trx.Abort()

	id, err = allocate(t, a)
	if nil != err {
		t.Fatalf("allocation error: %s", err)
	}
	if critter.Id(0) != id {
		t.Errorf("aborted allocation consumed an identifier: %s", id)
	}
}
