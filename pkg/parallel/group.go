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

package parallel

import (
	"context"
	"sync"
	"time"

	"github.com/go-arcade/aoc2021/pkg/safe"
)

// Group runs functions concurrently under a shared context. The first error
// cancels the context and is returned from Wait.
type Group struct {
	ctx    context.Context
	cancel func()

	wg  sync.WaitGroup
	sem chan struct{}

	errOnce sync.Once
	err     error
}

func GoGroup(ctx context.Context, opts ...RunOption) *Group {
	rOpts := newRunOptions(opts)
	g := &Group{}
	if rOpts.timeout > 0 {
		g.ctx, g.cancel = context.WithTimeout(ctx, rOpts.timeout)
	} else {
		g.ctx, g.cancel = context.WithCancel(ctx)
	}
	if rOpts.limit > 0 {
		g.sem = make(chan struct{}, rOpts.limit)
	}
	return g
}

// Wait blocks until all function calls from the Go method have returned, then
// returns the first non-nil error (if any) from them.
func (g *Group) Wait() error {
	g.wg.Wait()
	if g.cancel != nil {
		g.cancel()
	}
	return g.err
}

// Go calls fn in a new goroutine, blocking first while the group is at its
// concurrency limit. A panic in fn is reported as the group error.
func (g *Group) Go(fn func(ctx context.Context) error) {
	if g.sem != nil {
		select {
		case g.sem <- struct{}{}:
		case <-g.ctx.Done():
			g.setErr(g.ctx.Err())
			return
		}
	}
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if g.sem != nil {
			defer func() { <-g.sem }()
		}
		if err := safe.Do(func() error { return fn(g.ctx) }); err != nil {
			g.setErr(err)
		}
	}()
}

func (g *Group) setErr(err error) {
	g.errOnce.Do(func() {
		g.err = err
		if g.cancel != nil {
			g.cancel()
		}
	})
}

// RunOption .
type RunOption func(opts *runOptions)

type runOptions struct {
	timeout time.Duration
	limit   int
}

func newRunOptions(opts []RunOption) *runOptions {
	rOpts := &runOptions{}
	for _, opt := range opts {
		opt(rOpts)
	}
	return rOpts
}

// WithTimeout .
func WithTimeout(timeout time.Duration) RunOption {
	return func(opts *runOptions) {
		opts.timeout = timeout
	}
}

// WithLimit caps the number of goroutines a Group runs at once. Values below
// one mean no limit.
func WithLimit(n int) RunOption {
	return func(opts *runOptions) {
		opts.limit = n
	}
}
