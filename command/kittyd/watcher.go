// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

// watch the configuration file, changes only take effect on restart
type configurationWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
}

func newConfigurationWatcher(log *logger.L, fileName string) (*configurationWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	// watch the directory so editors that replace the file are seen
	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		_ = watcher.Close()
		return nil, err
	}

	return &configurationWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
	}, nil
}

// Run - log configuration changes until shutdown
func (w *configurationWatcher) Run(_ interface{}, shutdown <-chan struct{}) {

	w.log.Infof("watching: %q", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue loop
			}
			switch {
			case event.Op&fsnotify.Remove == fsnotify.Remove, event.Op&fsnotify.Rename == fsnotify.Rename:
				w.log.Warnf("configuration: %q removed", w.filePath)
			case event.Op&fsnotify.Write == fsnotify.Write, event.Op&fsnotify.Create == fsnotify.Create:
				w.log.Warnf("configuration: %q changed, restart to apply", w.filePath)
				w.notify()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}

	_ = w.watcher.Close()
}

// non-blocking so that unread notifications collapse into one
func (w *configurationWatcher) notify() {
	select {
	case w.change <- struct{}{}:
	default:
	}
}
