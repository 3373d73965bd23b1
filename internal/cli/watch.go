// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-arcade/aoc2021/internal/app"
	"github.com/go-arcade/aoc2021/internal/bootstrap"
	"github.com/go-arcade/aoc2021/internal/config"
	"github.com/go-arcade/aoc2021/pkg/log"
	"github.com/spf13/cobra"
)

const debounce = 100 * time.Millisecond

type watchOptions struct {
	input   string
	metrics bool
}

func newWatchCmd(root *rootOptions) *cobra.Command {
	opts := &watchOptions{}
	cmd := &cobra.Command{
		Use:   "watch <day>",
		Short: "Re-solve a day whenever its input file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}

			override := func(conf *config.AppConfig) {
				// answers for edited inputs are throwaway
				conf.Solver.Memoize = false
				if opts.metrics {
					conf.Metrics.Enable = true
				}
			}
			a, cleanup, loader, err := bootstrap.Bootstrap(root.configFile, root.initApp, override)
			if err != nil {
				return err
			}
			defer cleanup()

			loader.Watch(func(c config.AppConfig) {
				if err := log.Init(&c.Log); err != nil {
					log.Warnw("failed to apply new log config", "error", err)
				}
			})
			if err := a.Metrics.Start(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watch(ctx, cmd, a, day, opts.input)
		},
	}
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input file to watch")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "serve Prometheus metrics while watching")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// watch solves once, then again after every change to path until ctx ends.
// The parent directory is watched so editors that replace the file are seen.
func watch(ctx context.Context, cmd *cobra.Command, a *app.App, day int, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	solveOnce(ctx, cmd, a, day, abs)

	timer := time.NewTimer(debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Infow("watch stopped", "day", day)
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnw("watcher error", "error", err)
		case <-timer.C:
			solveOnce(ctx, cmd, a, day, abs)
		}
	}
}

func solveOnce(ctx context.Context, cmd *cobra.Command, a *app.App, day int, path string) {
	answer, err := a.Solve(ctx, day, path)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		return
	}
	_ = answer.Print(cmd.OutOrStdout())
}
