// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus exposition of registry and connection figures
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/registry"
)

const namespace = "kittyd"

// Statistics - source of the registry figures
type Statistics interface {
	Count() uint64
	Counters() registry.Counters
}

// Metrics - a private prometheus registry
//
// values are sampled on each scrape so nothing needs updating
type Metrics struct {
	registry *prometheus.Registry
}

// New - register collectors reading from statistics and the connection counters
func New(statistics Statistics, rpcCount *counter.Counter, httpsCount *counter.Counter) (*Metrics, error) {

	r := prometheus.NewRegistry()

	collectors := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "kitties",
			Help:      "Number of kitties in the registry.",
		}, func() float64 {
			return float64(statistics.Count())
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "created_total",
			Help:      "Kitties created since start.",
		}, func() float64 {
			return float64(statistics.Counters().Created)
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transferred_total",
			Help:      "Kitties transferred since start.",
		}, func() float64 {
			return float64(statistics.Counters().Transferred)
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_total",
			Help:      "Create or transfer requests rejected since start.",
		}, func() float64 {
			return float64(statistics.Counters().Rejected)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rpc_connections",
			Help:      "Open JSON-RPC client connections.",
		}, func() float64 {
			return float64(rpcCount.Uint64())
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "https_connections",
			Help:      "HTTPS requests in progress.",
		}, func() float64 {
			return float64(httpsCount.Uint64())
		}),
	}

	for _, c := range collectors {
		if err := r.Register(c); nil != err {
			return nil, err
		}
	}

	return &Metrics{
		registry: r,
	}, nil
}

// Handler - HTTP handler serving the text exposition
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer - for inspecting the current values
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
