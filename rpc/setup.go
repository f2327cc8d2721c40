// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/rpc/certificate"
	"github.com/bitmark-inc/kittyd/rpc/handler"
	"github.com/bitmark-inc/kittyd/rpc/listeners"
	"github.com/bitmark-inc/kittyd/rpc/metrics"
	"github.com/bitmark-inc/kittyd/rpc/node"
	"github.com/bitmark-inc/kittyd/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	rpcCount   counter.Counter
	httpsCount counter.Counter

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the JSON-RPC and HTTPS listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, services *server.Services) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Load(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return errors.Wrapf(err, "%s certificate", rpcName)
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&globalData.rpcCount,
		server.Create(log, version, &globalData.rpcCount, services),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return errors.Wrap(err, rpcName)
	}

	httpsListener, err := initialiseHTTPS(httpsConfiguration, version, services)
	if nil != err {
		return errors.Wrap(err, httpsName)
	}

	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if nil != httpsListener {
		err = httpsListener.Serve()
		if nil != err {
			rpcListener.Stop()
			globalData.listeners = nil
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

func initialiseHTTPS(configuration *listeners.HTTPSConfiguration, version string, services *server.Services) (listeners.Listener, error) {

	log := globalData.log

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil, nil
	}

	tlsConfig, fingerprint, err := certificate.Load(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, errors.Wrap(err, "certificate")
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	m, err := metrics.New(services.Statistics, &globalData.rpcCount, &globalData.httpsCount)
	if nil != err {
		return nil, err
	}

	s := server.Create(log, version, &globalData.rpcCount, services)
	n := node.New(log, services.Chain, time.Now().UTC(), version, &globalData.rpcCount, services.Statistics)

	h := handler.New(log, s, n, &globalData.httpsCount, configuration.MaximumConnections, m.Handler())

	return listeners.NewHTTPS(configuration, log, tlsConfig, h)
}

// Finalise - stop all listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	for _, l := range globalData.listeners {
		l.Stop()
	}
	globalData.listeners = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
