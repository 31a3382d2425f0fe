// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/critterd/storage"
)

// main pool test
func TestPutGetDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	p.Put([]byte("key-one"), []byte("data-one"))
	p.Put([]byte("key-two"), []byte("data-two"))

	if !p.Has([]byte("key-one")) {
		t.Errorf("missing: key-one")
	}

	data := p.Get([]byte("key-one"))
	if !bytes.Equal([]byte("data-one"), data) {
		t.Errorf("key-one: actual: %q  expected: %q", data, "data-one")
	}

	p.Delete([]byte("key-one"))
	if p.Has([]byte("key-one")) {
		t.Errorf("key-one still present after delete")
	}
	if nil != p.Get([]byte("key-one")) {
		t.Errorf("key-one still readable after delete")
	}

	data = p.Get([]byte("key-two"))
	if !bytes.Equal([]byte("data-two"), data) {
		t.Errorf("key-two: actual: %q  expected: %q", data, "data-two")
	}
}

// numeric records
func TestPutNGetN(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	if _, found := p.GetN([]byte("counter")); found {
		t.Fatalf("unexpected counter record")
	}

	p.PutN([]byte("counter"), 0)
	n, found := p.GetN([]byte("counter"))
	if !found || 0 != n {
		t.Errorf("counter: actual: %d/%v  expected: 0/true", n, found)
	}

	p.PutN([]byte("counter"), 0xdeadbeef)
	n, found = p.GetN([]byte("counter"))
	if !found || 0xdeadbeef != n {
		t.Errorf("counter: actual: %d/%v  expected: %d/true", n, found, uint64(0xdeadbeef))
	}
}

// pools are isolated by their prefix byte
func TestPoolIsolation(t *testing.T) {
	setup(t)
	defer teardown(t)

	storage.Pool.Prices.PutN([]byte("k"), 100)
	storage.Pool.Balances.PutN([]byte("k"), 900)

	n, _ := storage.Pool.Prices.GetN([]byte("k"))
	if 100 != n {
		t.Errorf("prices: actual: %d  expected: 100", n)
	}
	n, _ = storage.Pool.Balances.GetN([]byte("k"))
	if 900 != n {
		t.Errorf("balances: actual: %d  expected: 900", n)
	}

	storage.Pool.Prices.Delete([]byte("k"))
	if storage.Pool.Prices.Has([]byte("k")) {
		t.Errorf("prices record survived delete")
	}
	if !storage.Pool.Balances.Has([]byte("k")) {
		t.Errorf("balances record was deleted through another pool")
	}
}

// cursor over a key range
func TestFetchCursor(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	elements := []struct {
		key   string
		value string
	}{
		{"aaa", "one"},
		{"bbb", "two"},
		{"ccc", "three"},
		{"ddd", "four"},
	}
	for _, e := range elements {
		p.Put([]byte(e.key), []byte(e.value))
	}

	cursor := p.NewFetchCursor()

	fetched, err := cursor.Fetch(3)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if 3 != len(fetched) {
		t.Fatalf("fetch count: actual: %d  expected: 3", len(fetched))
	}
	for i, e := range fetched {
		if elements[i].key != string(e.Key) || elements[i].value != string(e.Value) {
			t.Errorf("%d: %q → %q  expected: %q → %q", i, e.Key, e.Value, elements[i].key, elements[i].value)
		}
	}

	// continuation picks up after the previous fetch
	fetched, err = cursor.Fetch(3)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if 1 != len(fetched) {
		t.Fatalf("fetch count: actual: %d  expected: 1", len(fetched))
	}
	if "ddd" != string(fetched[0].Key) {
		t.Errorf("continuation key: %q  expected: ddd", fetched[0].Key)
	}

	if _, err := cursor.Fetch(0); nil == err {
		t.Errorf("zero count was accepted")
	}
}
