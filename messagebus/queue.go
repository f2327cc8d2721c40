// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/kittyd/counter"
)

// DefaultQueueSize - queue length when none is configured
const DefaultQueueSize = 1000

// Message - one queued event
type Message struct {
	Kind    string
	Payload interface{}
}

// Queue - a bounded message queue
type Queue struct {
	c       chan Message
	dropped counter.Counter
}

// New - create a queue, a size <= 0 selects the default
func New(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		c: make(chan Message, size),
	}
}

// Emit - queue an event without blocking
func (queue *Queue) Emit(kind string, payload interface{}) {
	select {
	case queue.c <- Message{Kind: kind, Payload: payload}:
	default:
		queue.dropped.Increment()
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - number of messages discarded because the queue was full
func (queue *Queue) Dropped() uint64 {
	return queue.dropped.Uint64()
}
