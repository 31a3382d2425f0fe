// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package critter_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/critterd/account"
	"github.com/bitmark-inc/critterd/critter"
	"github.com/bitmark-inc/critterd/genome"
)

// big endian keys must sort in identifier order
func TestIdOrdering(t *testing.T) {
	idList := []critter.Id{0, 1, 255, 256, 65535, 1 << 32, critter.MaximumId}

	previous := idList[0].Bytes()
	for _, id := range idList[1:] {
		current := id.Bytes()
		if bytes.Compare(previous, current) >= 0 {
			t.Errorf("key for %s does not sort after predecessor", id)
		}
		previous = current
	}
}

func TestIdRoundTrip(t *testing.T) {
	for _, id := range []critter.Id{0, 7, 1 << 40, critter.MaximumId} {
		back, err := critter.IdFromBytes(id.Bytes())
		if nil != err {
			t.Fatalf("id from bytes error: %s", err)
		}
		if id != back {
			t.Errorf("id failed to round trip: %s != %s", back, id)
		}
	}

	if _, err := critter.IdFromBytes([]byte{1, 2, 3}); nil == err {
		t.Errorf("short key was accepted")
	}
}

func TestIdText(t *testing.T) {
	id := critter.Id(12345)

	text, err := id.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	if "12345" != string(text) {
		t.Errorf("id text: %q", text)
	}

	var back critter.Id
	if err := back.UnmarshalText([]byte("9000")); nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if critter.Id(9000) != back {
		t.Errorf("id from text: %s", back)
	}

	if err := back.UnmarshalText([]byte("not a number")); nil == err {
		t.Errorf("junk text was accepted")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	owner := account.Account{}
	owner[0] = 0xa1
	owner[account.AccountLength-1] = 0xff

	record := critter.Record{
		Owner:  owner,
		Genome: genome.Genome{0x12, 0x34, 0x56},
	}

	packed := record.Pack()
	back, err := critter.RecordFromBytes(packed)
	if nil != err {
		t.Fatalf("record from bytes error: %s", err)
	}
	if record != back {
		t.Errorf("record failed to round trip: %+v != %+v", back, record)
	}

	if _, err := critter.RecordFromBytes(packed[:10]); nil == err {
		t.Errorf("truncated record was accepted")
	}
}
