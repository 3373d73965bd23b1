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
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

// ErrNotImplemented is returned for a day with no registered solver.
var ErrNotImplemented = errors.New("not yet implemented")

// Solver solves both parts of one day's puzzle.
type Solver interface {
	Day() int
	Solve(ctx context.Context, input string) (*Answer, error)
}

// Answer is the result of one solve.
type Answer struct {
	Day     int           `json:"day"`
	Part1   string        `json:"part1"`
	Part2   string        `json:"part2"`
	Elapsed time.Duration `json:"elapsed"`
	Cached  bool          `json:"-"`
}

// Print writes the answer in the command line format.
func (a *Answer) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Part1: %s\nPart2: %s\nTime: %d us\n", a.Part1, a.Part2, a.Elapsed.Microseconds())
	return err
}

// Conf tunes how solvers run.
type Conf struct {
	Workers        int  // goroutines for parallel parts, 0 means one per CPU
	MaxReduceSteps int  // snailfish reduction cap per addition, 0 means the default
	Memoize        bool // cache answers keyed by input digest
}

// Registry maps days to solvers.
type Registry struct {
	mu      sync.RWMutex
	solvers map[int]Solver
}

func NewRegistry(solvers ...Solver) *Registry {
	r := &Registry{solvers: make(map[int]Solver)}
	for _, s := range solvers {
		r.Register(s)
	}
	return r
}

// Register adds s, replacing any solver already registered for its day.
func (r *Registry) Register(s Solver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.solvers[s.Day()] = s
}

// Get returns the solver for day, or an error wrapping ErrNotImplemented.
func (r *Registry) Get(day int) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("day %d %w", day, ErrNotImplemented)
	}
	return s, nil
}

// Days lists the registered days in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
