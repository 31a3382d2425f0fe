// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast successful operations over ZeroMQ
//
// Drains the messagebus queue and publishes each event as a two frame
// message: the event name and a JSON body.  Subscribers that fall
// behind simply miss events, state correctness never depends on
// delivery.
package publish

import (
	"encoding/json"
	"sync"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/critterd/fault"
	"github.com/bitmark-inc/critterd/messagebus"
	"github.com/bitmark-inc/logger"
)

// Configuration - a block of configuration data
// this is read from the configuration file
type Configuration struct {
	Broadcast []string `gluamapper:"broadcast" json:"broadcast"`
}

// globals for background process
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	socket *zmq.Socket

	shutdown chan struct{}
	finished chan struct{}

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - bind the broadcast socket and start draining events
func Initialise(configuration *Configuration) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return err
	}

	// high water mark, surplus events are dropped not queued forever
	err = socket.SetSndhwm(1000)
	if nil != err {
		socket.Close()
		return err
	}

	for _, address := range configuration.Broadcast {
		globalData.log.Infof("bind: %q", address)
		err = socket.Bind(address)
		if nil != err {
			globalData.log.Errorf("bind: %q  error: %s", address, err)
			socket.Close()
			return err
		}
	}

	globalData.socket = socket
	globalData.shutdown = make(chan struct{})
	globalData.finished = make(chan struct{})

	globalData.initialised = true

	// start background process
	globalData.log.Info("start background…")
	go broadcaster(globalData.log, socket, globalData.shutdown, globalData.finished)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	close(globalData.shutdown)
	<-globalData.finished

	globalData.socket.Close()
	globalData.socket = nil

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// background broadcaster
func broadcaster(log *logger.L, socket *zmq.Socket, shutdown <-chan struct{}, finished chan<- struct{}) {
	defer close(finished)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case message := <-messagebus.Chan():
			body, err := json.Marshal(message.Item)
			if nil != err {
				log.Errorf("marshal: %v  error: %s", message.Item, err)
				continue loop
			}

			log.Debugf("publish: %s  %s", message.Item.EventName(), body)

			_, err = socket.SendMessage(message.Item.EventName(), body)
			if nil != err {
				log.Errorf("send: %s  error: %s", message.Item.EventName(), err)
			}
		}
	}
}
