// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package critter - identifiers and packed storage records
//
// Identifiers are unsigned 64 bit, allocated monotonically and never
// reused.  The storage record embeds the owner so that the Critters
// pool alone enforces "exactly one owner per identifier".
package critter

import (
	"encoding/binary"
	"strconv"

	"github.com/bitmark-inc/critterd/account"
	"github.com/bitmark-inc/critterd/fault"
	"github.com/bitmark-inc/critterd/genome"
)

// IdLength - number of bytes in a packed identifier
const IdLength = 8

// Id - totally ordered critter identifier
type Id uint64

// MaximumId - last allocatable identifier
const MaximumId = Id(^uint64(0))

// IdFromBytes - decode a big endian stored key
func IdFromBytes(buffer []byte) (Id, error) {
	if IdLength != len(buffer) {
		return 0, fault.ErrKeyLength
	}
	return Id(binary.BigEndian.Uint64(buffer)), nil
}

// Bytes - big endian encoding, preserves ordering in leveldb keys
func (id Id) Bytes() []byte {
	buffer := make([]byte, IdLength)
	binary.BigEndian.PutUint64(buffer, uint64(id))
	return buffer
}

// String - decimal representation
func (id Id) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// MarshalText - convert id to text
func (id Id) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert text to id
func (id *Id) UnmarshalText(s []byte) error {
	n, err := strconv.ParseUint(string(s), 10, 64)
	if nil != err {
		return fault.ErrInvalidCritterId
	}
	*id = Id(n)
	return nil
}

// structure of the packed record
const (
	ownerStart  = 0
	ownerFinish = ownerStart + account.AccountLength

	genomeStart  = ownerFinish
	genomeFinish = genomeStart + genome.GenomeLength

	recordLength = genomeFinish
)

// Record - owner and genome of one critter
type Record struct {
	Owner  account.Account `json:"owner"`
	Genome genome.Genome   `json:"genome"`
}

// Pack - serialise for the Critters pool
func (record Record) Pack() []byte {
	buffer := make([]byte, 0, recordLength)
	buffer = append(buffer, record.Owner.Bytes()...)
	buffer = append(buffer, record.Genome.Bytes()...)
	return buffer
}

// RecordFromBytes - deserialise a stored record
func RecordFromBytes(buffer []byte) (Record, error) {
	record := Record{}
	if recordLength != len(buffer) {
		return record, fault.ErrKeyLength
	}

	owner, err := account.AccountFromBytes(buffer[ownerStart:ownerFinish])
	if nil != err {
		return record, err
	}
	g, err := genome.GenomeFromBytes(buffer[genomeStart:genomeFinish])
	if nil != err {
		return record, err
	}

	record.Owner = owner
	record.Genome = g
	return record, nil
}
