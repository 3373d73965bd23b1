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

package solver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-arcade/aoc2021/pkg/cache"
	"github.com/go-arcade/aoc2021/pkg/log"
	"github.com/go-arcade/aoc2021/pkg/metrics"
)

// Runner looks up a solver, runs it and records the outcome.
type Runner struct {
	registry *Registry
	cache    cache.ICache
	metrics  *metrics.SolverMetrics
	memoize  bool
}

// NewRunner creates a Runner. Answers are memoized only when conf.Memoize is
// set and c is not nil; m may be nil.
func NewRunner(registry *Registry, conf Conf, c cache.ICache, m *metrics.SolverMetrics) *Runner {
	return &Runner{
		registry: registry,
		cache:    c,
		metrics:  m,
		memoize:  conf.Memoize && c != nil,
	}
}

// AnswerKey is the memo key of an answer for day and input.
func AnswerKey(day int, input string) string {
	sum := sha256.Sum256([]byte(input))
	return fmt.Sprintf("aoc:answer:%d:%s", day, hex.EncodeToString(sum[:]))
}

// Run solves day with input.
func (r *Runner) Run(ctx context.Context, day int, input string) (*Answer, error) {
	s, err := r.registry.Get(day)
	if err != nil {
		return nil, err
	}
	ctx = log.NewContext(ctx, "day", day)

	if !r.memoize {
		return r.solve(ctx, s, input)
	}

	computed := false
	query := cache.NewCachedQuery(r.cache,
		func(params ...any) string { return AnswerKey(day, input) },
		func(ctx context.Context) (*Answer, error) {
			computed = true
			return r.solve(ctx, s, input)
		},
		cache.WithLogPrefix[*Answer]("[answer]"),
	)
	answer, err := query.Get(ctx)
	if err != nil {
		return nil, err
	}
	answer.Cached = !computed
	if answer.Cached {
		log.WithContext(ctx).Infow("answer served from cache")
	}
	return answer, nil
}

func (r *Runner) solve(ctx context.Context, s Solver, input string) (*Answer, error) {
	start := time.Now()
	answer, err := s.Solve(ctx, input)
	elapsed := time.Since(start)
	if r.metrics != nil {
		r.metrics.ObserveSolve(s.Day(), err, elapsed)
	}
	if err != nil {
		log.WithContext(ctx).Warnw("solve failed", "error", err, "elapsed", elapsed)
		return nil, fmt.Errorf("solve day %d: %w", s.Day(), err)
	}

	answer.Day = s.Day()
	answer.Elapsed = elapsed
	log.WithContext(ctx).Infow("solved",
		"part1", answer.Part1,
		"part2", answer.Part2,
		"elapsed", elapsed,
	)
	return answer, nil
}
