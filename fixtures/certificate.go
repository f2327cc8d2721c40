// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
)

var generated struct {
	sync.Once
	certificate string
	key         string
}

func generate() {
	validUntil := time.Now().Add(24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair("kittyd test certificate", validUntil, false, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	generated.certificate = string(cert)
	generated.key = string(key)
}

// Certificate - PEM certificate of a self signed pair shared by all tests
func Certificate() string {
	generated.Do(generate)
	return generated.certificate
}

// Key - PEM private key matching Certificate
func Key() string {
	generated.Do(generate)
	return generated.key
}
