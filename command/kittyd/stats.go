// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// background process periodically logging memory use
type memoryStatistics struct {
	log *logger.L
}

// Run - log allocation figures until shutdown
func (m *memoryStatistics) Run(_ interface{}, shutdown <-chan struct{}) {

	ticker := time.NewTicker(statsDelay)
	defer ticker.Stop()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
		}

		var s runtime.MemStats
		runtime.ReadMemStats(&s)

		m.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M  goroutines: %d",
			s.Alloc/mega, s.TotalAlloc/mega, s.Sys/mega, runtime.NumGoroutine())
	}
}
