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

// Package day18 solves "Snailfish": the magnitude of the homework sum and the
// largest magnitude of any two distinct numbers added together.
package day18

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"

	"github.com/go-arcade/aoc2021/internal/solver"
	"github.com/go-arcade/aoc2021/pkg/log"
	"github.com/go-arcade/aoc2021/pkg/metrics"
	"github.com/go-arcade/aoc2021/pkg/parallel"
	"github.com/go-arcade/aoc2021/pkg/snailfish"
)

const Day = 18

type Solver struct {
	conf    solver.Conf
	metrics *metrics.SolverMetrics
}

// New creates the day 18 solver. m may be nil.
func New(conf solver.Conf, m *metrics.SolverMetrics) *Solver {
	return &Solver{conf: conf, metrics: m}
}

func (s *Solver) Day() int {
	return Day
}

// Solve runs the homework sum and the pair search side by side.
func (s *Solver) Solve(ctx context.Context, input string) (*solver.Answer, error) {
	numbers, err := snailfish.ParseLines(input)
	if err != nil {
		return nil, err
	}
	log.WithContext(ctx).Debugw("parsed homework", "numbers", len(numbers))

	var part1Stats snailfish.Stats
	part1 := parallel.Go(ctx, func(ctx context.Context) (uint64, error) {
		magnitude, err := s.sumMagnitude(ctx, numbers, &part1Stats)
		if err != nil {
			return 0, fmt.Errorf("part 1: %w", err)
		}
		return magnitude, nil
	})

	best, part2Stats, err := s.maxPairMagnitude(ctx, numbers)
	if err != nil {
		part1.Cancel()
		return nil, fmt.Errorf("part 2: %w", err)
	}
	magnitude, err := part1.Get()
	if err != nil {
		return nil, err
	}

	part1Stats.Merge(part2Stats)
	if s.metrics != nil {
		s.metrics.AddReductions(part1Stats.Explodes, part1Stats.Splits, part1Stats.Additions)
	}
	log.WithContext(ctx).Debugw("snailfish work",
		"explodes", part1Stats.Explodes,
		"splits", part1Stats.Splits,
		"additions", part1Stats.Additions,
	)

	return &solver.Answer{
		Day:   Day,
		Part1: strconv.FormatUint(magnitude, 10),
		Part2: strconv.FormatUint(best, 10),
	}, nil
}

// maxPairMagnitude splits the ordered pair search by left operand across a
// bounded worker group. Operands are shared read-only since Add never
// mutates its inputs.
func (s *Solver) maxPairMagnitude(ctx context.Context, numbers []*snailfish.Number) (uint64, snailfish.Stats, error) {
	var total snailfish.Stats
	if len(numbers) < 2 {
		_, err := snailfish.MaxPairMagnitude(numbers)
		return 0, total, err
	}

	var (
		mu   sync.Mutex
		best uint64
	)
	g := parallel.GoGroup(ctx, parallel.WithLimit(s.workers()))
	for i := range numbers {
		i := i
		g.Go(func(ctx context.Context) error {
			var stats snailfish.Stats
			opts := s.reduceOptions(&stats)

			var rowBest uint64
			for j := range numbers {
				if i == j {
					continue
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				mag, err := snailfish.PairMagnitude(numbers[i], numbers[j], opts...)
				if err != nil {
					return fmt.Errorf("add numbers %d and %d: %w", i+1, j+1, err)
				}
				rowBest = max(rowBest, mag)
			}

			mu.Lock()
			best = max(best, rowBest)
			total.Merge(stats)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, total, err
	}
	return best, total, nil
}

// sumMagnitude folds the homework left to right, stopping between additions
// once ctx is done.
func (s *Solver) sumMagnitude(ctx context.Context, numbers []*snailfish.Number, stats *snailfish.Stats) (uint64, error) {
	if len(numbers) == 0 {
		return 0, snailfish.ErrEmptyInput
	}
	opts := s.reduceOptions(stats)
	acc := numbers[0].Clone()
	for i, n := range numbers[1:] {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		next, err := snailfish.Add(acc, n, opts...)
		if err != nil {
			return 0, fmt.Errorf("add number %d: %w", i+2, err)
		}
		acc = next
	}
	return acc.Magnitude(), nil
}

func (s *Solver) workers() int {
	if s.conf.Workers > 0 {
		return s.conf.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (s *Solver) reduceOptions(stats *snailfish.Stats) []snailfish.ReduceOption {
	opts := []snailfish.ReduceOption{snailfish.WithStats(stats)}
	if s.conf.MaxReduceSteps > 0 {
		opts = append(opts, snailfish.WithMaxSteps(s.conf.MaxReduceSteps))
	}
	return opts
}
