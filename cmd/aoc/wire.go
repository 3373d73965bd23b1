//go:build wireinject
// +build wireinject

package main

import (
	"github.com/go-arcade/aoc2021/internal/app"
	"github.com/go-arcade/aoc2021/internal/config"
	"github.com/go-arcade/aoc2021/internal/pkg/input"
	"github.com/go-arcade/aoc2021/internal/solver"
	"github.com/go-arcade/aoc2021/pkg/cache"
	"github.com/go-arcade/aoc2021/pkg/log"
	"github.com/go-arcade/aoc2021/pkg/metrics"
	"github.com/google/wire"
)

func initApp(conf *config.AppConfig) (*app.App, func(), error) {
	panic(wire.Build(
		// 配置层
		config.ProviderSet,
		// 基础设施
		log.ProviderSet,
		cache.ProviderSet,
		metrics.ProviderSet,
		// 输入层
		input.ProviderSet,
		// 求解层
		solverProviderSet,
		// 应用层
		app.NewApp,
	))
}

// solverProviderSet 求解层 ProviderSet
var solverProviderSet = wire.NewSet(
	provideDay18,
	provideRegistry,
	solver.NewRunner,
)
