// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// Single LevelDB database with a one byte prefix per logical table:
//
//   Critters:
//
//     C ⧺ id               - one record per critter, embeds the owner
//                            data: owner ⧺ genome
//     D ⧺ owner ⧺ id       - membership index, for O(1) "does owner hold id"
//                            data: (empty)
//
//   Identifier allocation:
//
//     N ⧺ "N"              - next identifier to allocate
//                            data: uint64 big endian
//
//   Marketplace:
//
//     P ⧺ id               - listing, present if and only if for sale
//                            data: price, uint64 big endian
//     B ⧺ owner            - marketplace balance ledger
//                            data: uint64 big endian
//
//   Testing:
//
//     Z ⧺ key              - scratch area for tests
//
// The C and D entries for an identifier are only ever written or
// deleted together inside one batch transaction, so a half transferred
// critter can never be observed.
package storage
