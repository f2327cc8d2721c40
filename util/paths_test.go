// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/util"
)

func TestMakeAbsolute(t *testing.T) {
	items := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/data", "kittyd.leveldb", "/data/kittyd.leveldb"},
		{"/data", "log/../rpc.crt", "/data/rpc.crt"},
		{"/data", "/etc/kittyd/rpc.key", "/etc/kittyd/rpc.key"},
		{"/data", "/etc//kittyd/", "/etc/kittyd"},
	}

	for i, item := range items {
		actual := util.MakeAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "%d: path: %q", i, item.path)
	}
}

func TestDirectories(t *testing.T) {
	dir, err := ioutil.TempDir("", "kittyd-paths")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	nested := filepath.Join(dir, "a", "b")
	file := filepath.Join(dir, "file")

	assert.False(t, util.FileExists(nested), "nested exists before create")
	assert.NotNil(t, util.CheckDirectory(nested), "missing directory accepted")

	assert.Nil(t, util.CreateDirectories(nested, dir), "create")
	assert.True(t, util.FileExists(nested), "nested not created")
	assert.Nil(t, util.CheckDirectory(nested), "nested directory")

	assert.Nil(t, ioutil.WriteFile(file, []byte("x"), 0600), "write file")
	assert.True(t, util.FileExists(file), "file")
	assert.NotNil(t, util.CheckDirectory(file), "file accepted as directory")
}
