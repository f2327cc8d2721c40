// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -package mocks -destination registry.go github.com/bitmark-inc/kittyd/rpc/kitties Registry
//go:generate mockgen -package mocks -destination ownership.go github.com/bitmark-inc/kittyd/ownership Ownership
//go:generate mockgen -package mocks -destination handler.go github.com/bitmark-inc/kittyd/rpc/handler Handler
//go:generate mockgen -package mocks -destination statistics.go github.com/bitmark-inc/kittyd/rpc/node Statistics

package mocks
