// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"testing"

	"github.com/bitmark-inc/critterd/critter"
)

// queued events arrive in order with their source tag
func TestSendReceive(t *testing.T) {
	Send("test", PriceUpdated{Id: 1, Price: 100})
	Send("test", PriceUpdated{Id: 2, Price: 200})

	m := <-Chan()
	if "test" != m.From {
		t.Errorf("from: %q  expected: test", m.From)
	}
	e, ok := m.Item.(PriceUpdated)
	if !ok {
		t.Fatalf("wrong event type: %T", m.Item)
	}
	if critter.Id(1) != e.Id || 100 != e.Price {
		t.Errorf("event: %+v", e)
	}

	m = <-Chan()
	e = m.Item.(PriceUpdated)
	if critter.Id(2) != e.Id {
		t.Errorf("out of order: %+v", e)
	}
}

// a full queue drops events instead of blocking
func TestSendNeverBlocks(t *testing.T) {
	for i := 0; i < queueSize+10; i += 1 {
		Send("test", PriceUpdated{Id: critter.Id(i), Price: 1})
	}
	// drain for other tests
drain:
	for {
		select {
		case <-Chan():
		default:
			break drain
		}
	}
}
