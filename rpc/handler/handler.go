// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - HTTP handlers for the HTTPS listener
package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/rpc/node"
)

// paths that are restricted by the allow list
const (
	detailsPath = "details"
	metricsPath = "metrics"
)

// Handler - the HTTP endpoints served under /kittyd
type Handler interface {
	Root(http.ResponseWriter, *http.Request)
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Metrics(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

type handler struct {
	log                *logger.L
	server             *rpc.Server
	node               *node.Node
	metrics            http.Handler
	allow              map[string][]*net.IPNet
	connectionCount    *counter.Counter
	maximumConnections uint64
}

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}

func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}

func (c *internalConnection) Close() error {
	return nil
}

// New - create HTTP handlers
//
// node supplies the details response, count tracks requests in
// progress and metrics may be nil
func New(log *logger.L, server *rpc.Server, node *node.Node, count *counter.Counter, maximumConnections uint64, metrics http.Handler) Handler {
	return &handler{
		log:                log,
		server:             server,
		node:               node,
		metrics:            metrics,
		allow:              make(map[string][]*net.IPNet),
		connectionCount:    count,
		maximumConnections: maximumConnections,
	}
}

// SetAllow - replace the address allow list
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// Root - matches anything not matched and returns error
func (h *handler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.enter() {
		sendTooManyRequests(w)
		return
	}
	defer h.connectionCount.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Debugf("rpc request error: %s", err)
		sendInternalServerError(w)
		return
	}
}

// Details - GET for the same response as the Node.Info RPC
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if !h.permitted(detailsPath, w, r) {
		return
	}
	defer h.connectionCount.Decrement()

	var reply node.InfoReply
	err := h.node.Info(&node.InfoArguments{}, &reply)
	if nil != err {
		h.log.Errorf("details error: %s", err)
		sendInternalServerError(w)
		return
	}
	sendReply(w, reply)
}

// Metrics - GET the prometheus exposition
func (h *handler) Metrics(w http.ResponseWriter, r *http.Request) {
	if nil == h.metrics {
		sendNotFound(w)
		return
	}
	if !h.permitted(metricsPath, w, r) {
		return
	}
	defer h.connectionCount.Decrement()

	h.metrics.ServeHTTP(w, r)
}

// check method, allow list and connection limit for a restricted GET
//
// when true the caller must decrement the connection count
func (h *handler) permitted(path string, w http.ResponseWriter, r *http.Request) bool {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return false
	}

	if !h.allowed(path, r.RemoteAddr) {
		h.log.Warnf("deny access: %q  path: %s", r.RemoteAddr, path)
		sendForbidden(w)
		return false
	}

	if !h.enter() {
		sendTooManyRequests(w)
		return false
	}
	return true
}

func (h *handler) enter() bool {
	if h.connectionCount.Increment() > h.maximumConnections {
		h.connectionCount.Decrement()
		return false
	}
	return true
}

func (h *handler) allowed(path string, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}
	for _, cidr := range h.allow[path] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}

func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}

func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}

func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just in case JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
