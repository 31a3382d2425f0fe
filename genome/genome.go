// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genome - the genetic payload of a critter
//
// A genome is a fixed 16 byte value.  Gender is not stored anywhere, it
// is always derived from the parity of the first byte.  Breeding
// combines two parent genomes bit by bit under a random selector mask.
package genome

import (
	"encoding/hex"

	"github.com/bitmark-inc/critterd/fault"
)

// GenomeLength - number of bytes in a genome
const GenomeLength = 16

// Genome - the immutable genetic record of a critter
type Genome [GenomeLength]byte

// Gender - derived from a genome, never stored
type Gender int

// possible genders
const (
	Male Gender = iota
	Female
)

// Gender - even first byte is male, odd is female
func (genome Genome) Gender() Gender {
	if 0 == genome[0]%2 {
		return Male
	}
	return Female
}

// Combine - derive a child genome from two parents
//
// each selector bit picks the corresponding bit from parent b when set,
// from parent a when clear
func Combine(a Genome, b Genome, selector Genome) Genome {
	child := Genome{}
	for i := 0; i < GenomeLength; i += 1 {
		child[i] = (^selector[i] & a[i]) | (selector[i] & b[i])
	}
	return child
}

// GenomeFromBytes - convert a stored byte slice back to a genome
func GenomeFromBytes(buffer []byte) (Genome, error) {
	genome := Genome{}
	if GenomeLength != len(buffer) {
		return genome, fault.ErrInvalidGenomeLength
	}
	copy(genome[:], buffer)
	return genome, nil
}

// Bytes - byte slice for storage
func (genome Genome) Bytes() []byte {
	return genome[:]
}

// String - hex encoded
func (genome Genome) String() string {
	return hex.EncodeToString(genome[:])
}

// MarshalText - convert genome to hex text
func (genome Genome) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(GenomeLength))
	hex.Encode(buffer, genome[:])
	return buffer, nil
}

// UnmarshalText - convert hex text to genome
func (genome *Genome) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	g, err := GenomeFromBytes(buffer[:byteCount])
	if nil != err {
		return err
	}
	*genome = g
	return nil
}

// internal conversion
func toString(gender Gender) ([]byte, bool) {
	switch gender {
	case Male:
		return []byte("Male"), true
	case Female:
		return []byte("Female"), true
	default:
		return []byte{}, false
	}
}

// String - convert a gender to its name
func (gender Gender) String() string {
	s, ok := toString(gender)
	if !ok {
		return "*Unknown*"
	}
	return string(s)
}

// MarshalText - convert gender to text
func (gender Gender) MarshalText() ([]byte, error) {
	s, ok := toString(gender)
	if !ok {
		return nil, fault.ErrInvalidGender
	}
	return s, nil
}
