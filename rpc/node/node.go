// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - the Node RPC service
package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/registry"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Statistics - registry figures reported by the node
type Statistics interface {
	Count() uint64
	Counters() registry.Counters
}

// Node - type for RPC calls
type Node struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Chain      string
	Start      time.Time
	Version    string
	Statistics Statistics
	counter    *counter.Counter
}

// New - create the service
//
// rpcCount is the number of currently open client connections
func New(log *logger.L, chain string, start time.Time, version string, rpcCount *counter.Counter, statistics Statistics) *Node {
	return &Node{
		Log:        log,
		Limiter:    rate.NewLimiter(rateLimitNode, rateBurstNode),
		Chain:      chain,
		Start:      start,
		Version:    version,
		Statistics: statistics,
		counter:    rpcCount,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain    string            `json:"chain"`
	Version  string            `json:"version"`
	Uptime   string            `json:"uptime"`
	RPCs     uint64            `json:"rpcs"`
	Kitties  uint64            `json:"kitties"`
	Counters registry.Counters `json:"counters"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.Kitties = node.Statistics.Count()
	reply.Counters = node.Statistics.Counters()
	return nil
}
