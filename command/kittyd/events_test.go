// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/background"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/kitty"
)

func TestEventLoggerDrainsQueue(t *testing.T) {
	r, queue, teardown := setupRegistry(t)
	defer teardown()

	bg := background.Start(background.Processes{
		newEventLogger(logger.New(fixtures.LogCategory), queue),
	}, nil)

	assert.Nil(t, r.Create(fixtures.Alice, kitty.DNA{0x01}, 1), "create")
	assert.Nil(t, r.Transfer(fixtures.Alice, kitty.DNA{0x01}, fixtures.Bob), "transfer")
	queue.Emit("Unknown", 7)

	deadline := time.Now().Add(5 * time.Second)
	for len(queue.Chan()) > 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 0, len(queue.Chan()), "queue not drained")

	bg.Stop()
	assert.Equal(t, uint64(0), queue.Dropped(), "events dropped")
}
