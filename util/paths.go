// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// MakeAbsolute - a relative path is taken as relative to directory
func MakeAbsolute(directory string, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(directory, path)
}

// FileExists - true if anything exists at the path
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return nil == err
}

// CheckDirectory - the path must exist and be a directory
func CheckDirectory(path string) error {
	info, err := os.Stat(path)
	if nil != err {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("path: %q is not a directory", path)
	}
	return nil
}

// CreateDirectories - create each directory and any missing parents
func CreateDirectories(directories ...string) error {
	for _, d := range directories {
		if err := os.MkdirAll(d, 0700); nil != err {
			return err
		}
	}
	return nil
}
