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

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SolverMetrics records puzzle solving activity.
type SolverMetrics struct {
	SolveTotal    *prometheus.CounterVec
	SolveDuration *prometheus.HistogramVec
	Reductions    *prometheus.CounterVec
	Additions     prometheus.Counter
}

// NewSolverMetrics creates the collectors and registers them with reg when
// reg is not nil.
func NewSolverMetrics(reg prometheus.Registerer) *SolverMetrics {
	m := &SolverMetrics{
		SolveTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aoc_solve_total",
				Help: "Total number of puzzle solves",
			},
			[]string{"day", "status"},
		),
		SolveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aoc_solve_duration_seconds",
				Help:    "Duration of puzzle solves in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 100us to ~3s
			},
			[]string{"day"},
		),
		Reductions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aoc_snailfish_reductions_total",
				Help: "Total number of snailfish reduction steps by rule",
			},
			[]string{"rule"},
		),
		Additions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "aoc_snailfish_additions_total",
				Help: "Total number of snailfish additions",
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.SolveTotal, m.SolveDuration, m.Reductions, m.Additions)
	}
	return m
}

// ObserveSolve records one solve attempt.
func (m *SolverMetrics) ObserveSolve(day int, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d := strconv.Itoa(day)
	m.SolveTotal.WithLabelValues(d, status).Inc()
	m.SolveDuration.WithLabelValues(d).Observe(elapsed.Seconds())
}

// AddReductions records snailfish work.
func (m *SolverMetrics) AddReductions(explodes, splits, additions int) {
	m.Reductions.WithLabelValues("explode").Add(float64(explodes))
	m.Reductions.WithLabelValues("split").Add(float64(splits))
	m.Additions.Add(float64(additions))
}
