// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - fire-and-forget event side channel
//
// Successful operations queue one event each.  Delivery carries no
// correctness weight: when the queue is full the event is dropped
// rather than blocking the state transition that produced it.
package messagebus
