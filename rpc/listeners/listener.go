// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS listeners for JSON-RPC and HTTPS clients
package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/fault"
)

// Listener - a set of network listeners started by Serve
type Listener interface {
	Serve() error
	Stop()
}

// validate listen addresses and determine the network for each
//
// "*:PORT" is rewritten in place to "[::]:PORT"
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Errorf("listen error: %s", fault.InvalidIpAddress)
			return nil, fault.InvalidIpAddress
		}

		switch listen[0] {
		case '*':
			// on the assumption that this will listen on tcp4 and tcp6
			addrs[i] = "[::]" + ":" + strings.Split(listen, ":")[1]
			listen = "::"
			parsed[i] = "tcp"
		case '[':
			listen = strings.Split(listen[1:], "]:")[0]
			parsed[i] = "tcp6"
		default:
			listen = strings.Split(listen, ":")[0]
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(listen); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("listen error: %s", err)
			return nil, err
		}
	}

	return parsed, nil
}
