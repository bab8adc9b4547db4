// Copyright 2024 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// doWatch runs the pipeline once, then re-runs it whenever the input
// file is rewritten. A broken intermediate save is reported and
// skipped; the watch keeps going until interrupted. The parent
// directory is watched, not the file itself, so editors that replace
// the file on save are still seen.
func doWatch(ctx context.Context, inFile, outFile string, balance, roster bool) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	absIn, err := filepath.Abs(inFile)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(absIn)); err != nil {
		return err
	}

	rerun := func() {
		if err := doRun(absIn, outFile, balance, roster, false); err != nil {
			fmt.Println("Error: ", err)
			return
		}
		fmt.Println(absIn, "->", outFile)
	}
	rerun()

	// Editors often trigger multiple writes per save.
	const debounceInterval = 50 * time.Millisecond
	var lastEvent time.Time

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absIn {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			now := time.Now()
			if now.Sub(lastEvent) < debounceInterval {
				continue
			}
			lastEvent = now
			rerun()

		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// fsnotify recovers on its own

		case <-ctx.Done():
			return nil
		}
	}
}
