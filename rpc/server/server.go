// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - build the RPC server holding all kittyd services
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/rpc/kitties"
	"github.com/bitmark-inc/kittyd/rpc/node"
	"github.com/bitmark-inc/kittyd/rpc/owner"
)

// Services - the back ends the RPC services call
type Services struct {
	Chain      string
	Registry   kitties.Registry
	Ownership  ownership.Ownership
	Statistics node.Statistics
}

// Create - an RPC server with Kitty, Owner and Node registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, services *Services) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(kitties.New(log, services.Registry))
	_ = server.Register(owner.New(log, services.Ownership))
	_ = server.Register(node.New(log, services.Chain, start, version, rpcCount, services.Statistics))

	return server
}
