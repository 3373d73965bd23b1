package main

import (
	"github.com/go-arcade/aoc2021/internal/solver"
	"github.com/go-arcade/aoc2021/internal/solver/day18"
	"github.com/go-arcade/aoc2021/pkg/metrics"
)

func provideDay18(conf solver.Conf, m *metrics.SolverMetrics) *day18.Solver {
	return day18.New(conf, m)
}

// provideRegistry registers every implemented day.
func provideRegistry(d18 *day18.Solver) *solver.Registry {
	return solver.NewRegistry(d18)
}
