// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/critterd/account"
	"github.com/bitmark-inc/critterd/critter"
	"github.com/bitmark-inc/critterd/genome"
)

// Event - any of the notification records below
type Event interface {
	EventName() string
}

// CritterCreated - a new critter was issued
type CritterCreated struct {
	Owner  account.Account `json:"owner"`
	Id     critter.Id      `json:"id"`
	Genome genome.Genome   `json:"genome"`
}

// CritterBred - a child critter was derived from two parents
type CritterBred struct {
	Owner  account.Account `json:"owner"`
	Id     critter.Id      `json:"id"`
	Genome genome.Genome   `json:"genome"`
}

// CritterTransferred - ownership moved between accounts
type CritterTransferred struct {
	From account.Account `json:"from"`
	To   account.Account `json:"to"`
	Id   critter.Id      `json:"id"`
}

// PriceUpdated - an existing listing was overwritten
type PriceUpdated struct {
	Id    critter.Id `json:"id"`
	Price uint64     `json:"price,string"`
}

// CritterExchanged - a marketplace exchange completed
type CritterExchanged struct {
	Id           critter.Id      `json:"id"`
	Initiator    account.Account `json:"initiator"`
	Counterparty account.Account `json:"counterparty"`
}

// EventName - event type tags for the broadcast stream
func (CritterCreated) EventName() string     { return "critter.created" }
func (CritterBred) EventName() string        { return "critter.bred" }
func (CritterTransferred) EventName() string { return "critter.transferred" }
func (PriceUpdated) EventName() string       { return "price.updated" }
func (CritterExchanged) EventName() string   { return "critter.exchanged" }
