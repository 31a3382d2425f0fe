// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"bytes"

	"github.com/bitmark-inc/critterd/account"
	"github.com/bitmark-inc/critterd/critter"
	"github.com/bitmark-inc/critterd/genome"
	"github.com/bitmark-inc/logger"
)

// Owned - one entry of an owner listing
type Owned struct {
	Id     critter.Id    `json:"id"`
	Genome genome.Genome `json:"genome"`
	Gender genome.Gender `json:"gender"`
}

// ListFor - fetch critters held by an owner, starting at an identifier
func ListFor(owner account.Account, start critter.Id, count int) ([]Owned, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	ownerBytes := owner.Bytes()

	cursor := globalData.ownerIndex.NewFetchCursor().Seek(ownerIndexKey(owner, start))

	// owner ⧺ id → (empty)
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]Owned, 0, len(items))

loop:
	for _, item := range items {
		n := len(item.Key)
		if n <= critter.IdLength {
			logger.Panicf("registry: truncated owner index key: %x", item.Key)
		}
		itemOwner := item.Key[:n-critter.IdLength]
		if !bytes.Equal(ownerBytes, itemOwner) {
			break loop
		}

		id, err := critter.IdFromBytes(item.Key[n-critter.IdLength:])
		if nil != err {
			logger.Panicf("registry: bad owner index key: %x  error: %s", item.Key, err)
		}

		g, ok := cachedGenome(id)
		if !ok {
			logger.Panicf("registry: owner index entry without record: %s", id)
		}

		records = append(records, Owned{
			Id:     id,
			Genome: g,
			Gender: g.Gender(),
		})
	}

	return records, nil
}
