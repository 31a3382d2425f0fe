// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package random - the injected source of genome randomness
//
// The core never talks to an entropy device.  A Source is handed in at
// initialisation time and each draw is derived by a 128 bit BLAKE2b
// hash over the global seed, the caller identity and a per-call
// sequence number.  A fixed seed therefore gives a fully deterministic
// system, which is what the tests rely on.
package random

import (
	"encoding/binary"
	"sync/atomic"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/critterd/account"
	"github.com/bitmark-inc/critterd/genome"
)

// Source - capability to produce one 16 byte value per call
type Source interface {
	Random(caller account.Account) genome.Genome
}

// seeded - production source
type seeded struct {
	seed     []byte
	sequence uint64 // atomic, one increment per draw
}

// New - create a source from a global seed
func New(seed []byte) Source {
	s := &seeded{
		seed: make([]byte, len(seed)),
	}
	copy(s.seed, seed)
	return s
}

// Random - derive 16 bytes for one call
func (s *seeded) Random(caller account.Account) genome.Genome {
	sequence := atomic.AddUint64(&s.sequence, 1)

	sequenceBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(sequenceBytes, sequence)

	// 128 bit digest, size is always valid so error is impossible
	hasher, err := blake2b.New(genome.GenomeLength, nil)
	if nil != err {
		panic("random: blake2b size rejected")
	}
	hasher.Write(s.seed)
	hasher.Write(caller.Bytes())
	hasher.Write(sequenceBytes)

	g := genome.Genome{}
	copy(g[:], hasher.Sum(nil))
	return g
}
