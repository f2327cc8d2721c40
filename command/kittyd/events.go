// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/registry"
)

const droppedCheckInterval = time.Minute

// background process logging every registry event from the queue
type eventLogger struct {
	log   *logger.L
	queue *messagebus.Queue
}

func newEventLogger(log *logger.L, queue *messagebus.Queue) *eventLogger {
	return &eventLogger{
		log:   log,
		queue: queue,
	}
}

// Run - drain the queue until shutdown
func (e *eventLogger) Run(_ interface{}, shutdown <-chan struct{}) {

	e.log.Info("starting…")

	ticker := time.NewTicker(droppedCheckInterval)
	defer ticker.Stop()

	reported := uint64(0)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case message := <-e.queue.Chan():
			e.record(message)

		case <-ticker.C:
			if dropped := e.queue.Dropped(); dropped != reported {
				e.log.Warnf("events dropped: %d", dropped-reported)
				reported = dropped
			}
		}
	}

	e.log.Info("shutting down…")
	e.log.Flush()
}

func (e *eventLogger) record(message messagebus.Message) {
	switch payload := message.Payload.(type) {
	case registry.KittyStored:
		e.log.Infof("%s: dna: %s  price: %d", message.Kind, payload.DNA, payload.Price)
	case registry.KittyTransferred:
		e.log.Infof("%s: dna: %s  new owner: %s", message.Kind, payload.DNA, payload.NewOwner)
	default:
		e.log.Warnf("unexpected event: %s  payload: %+v", message.Kind, message.Payload)
	}
}
