// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/strukturalab/gofea/inp"
)

func watchCmd() *cobra.Command {
	opts := inp.DefaultOptions()
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch <model.json>",
		Short: "Re-run the analysis whenever the model file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			runOnce := func() {
				if err := runAnalysis(path, opts); err != nil {
					io.PfRed("error: %v\n", err)
				}
			}
			runOnce()

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()

			// watch the directory: editors replace files on save
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				return err
			}
			io.Pf("watching %s\n", path)

			done := make(chan os.Signal, 1)
			signal.Notify(done, os.Interrupt, syscall.SIGTERM)

			var timer *time.Timer
			pending := make(chan struct{}, 1)
			for {
				select {
				case ev := <-watcher.Events:
					if filepath.Clean(ev.Name) != filepath.Clean(path) {
						continue
					}
					if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
						continue
					}
					if timer != nil {
						timer.Stop()
					}
					timer = time.AfterFunc(debounce, func() {
						select {
						case pending <- struct{}{}:
						default:
						}
					})
				case <-pending:
					io.Pf("\nmodel changed, re-running\n")
					runOnce()
				case err := <-watcher.Errors:
					io.PfRed("watch error: %v\n", err)
				case <-done:
					return nil
				}
			}
		},
	}
	analysisFlags(cmd, opts)
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "delay before re-running after a change")
	return cmd
}
