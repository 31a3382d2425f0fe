// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

// internal constants
const (
	queueSize = 1000
)

// Message - one queued event
type Message struct {
	From string
	Item Event
}

var (
	// for queueing data
	queue = make(chan Message, queueSize)
)

// Send - queue an event, dropping it if the queue is full
func Send(from string, item Event) {
	select {
	case queue <- Message{From: from, Item: item}:
	default:
		// fire-and-forget: a slow consumer must not stall operations
	}
}

// Chan - channel to read from
func Chan() <-chan Message {
	return queue
}
