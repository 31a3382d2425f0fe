// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - identity of a caller
//
// The dispatcher in front of this module has already authenticated the
// caller, so an account here is only an opaque identifier.  No signature
// checking is performed anywhere in this code base.
package account

import (
	"bytes"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/critterd/fault"
)

// AccountLength - number of bytes in an account identifier
const AccountLength = 32

// Account - the opaque identity of a pre-authenticated caller
type Account [AccountLength]byte

// AccountFromBase58 - convert a Base58 encoded string to an account
func AccountFromBase58(accountBase58Encoded string) (Account, error) {
	account := Account{}

	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err {
		return account, fault.ErrCannotDecodeAccount
	}
	if AccountLength != len(accountDecoded) {
		return account, fault.ErrKeyLength
	}

	copy(account[:], accountDecoded)
	return account, nil
}

// AccountFromBytes - convert a byte slice to an account
func AccountFromBytes(accountBytes []byte) (Account, error) {
	account := Account{}
	if AccountLength != len(accountBytes) {
		return account, fault.ErrKeyLength
	}
	copy(account[:], accountBytes)
	return account, nil
}

// Bytes - byte slice for storage key construction
func (account Account) Bytes() []byte {
	return account[:]
}

// String - base58 encoded
func (account Account) String() string {
	return base58.Encode(account[:])
}

// MarshalText - convert account to text
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert text to account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	*account = a
	return nil
}

// IsZero - check for the all zero account
func (account Account) IsZero() bool {
	return bytes.Equal(account[:], make([]byte, AccountLength))
}
