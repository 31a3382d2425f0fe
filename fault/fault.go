// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised  = ExistsError("already initialised")
	ErrBalanceOverflow     = ProcessError("balance overflow")
	ErrBalanceUnderflow    = ProcessError("balance underflow")
	ErrCannotDecodeAccount = InvalidError("cannot decode account")
	ErrExchangeWithSelf    = InvalidError("cannot exchange with self")
	ErrIdentifierOverflow  = ProcessError("critter identifier overflow")
	ErrInsufficientBalance = InvalidError("insufficient balance")
	ErrInvalidCount        = InvalidError("invalid count")
	ErrInvalidCritterId    = NotFoundError("invalid critter identifier")
	ErrInvalidCursor       = InvalidError("invalid cursor")
	ErrInvalidGender       = InvalidError("invalid gender")
	ErrInvalidGenomeLength = InvalidError("invalid genome length")
	ErrKeyLength           = InvalidError("key length is invalid")
	ErrNotForSale          = NotFoundError("critter is not for sale")
	ErrNotInitialised      = NotFoundError("not initialised")
	ErrSameGender          = InvalidError("parents have the same gender")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
