// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring kittyd services
//
// services:
//
//   Kitty.Create    Kitty.Transfer    Kitty.Get
//   Owner.Kitties
//   Node.Info
//
// the same services are available as raw JSON RPC over TLS and as
// HTTP POST to /kittyd/rpc on the HTTPS listener
package rpc
