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

package config

import (
	"github.com/go-arcade/aoc2021/internal/pkg/input"
	"github.com/go-arcade/aoc2021/internal/solver"
	"github.com/go-arcade/aoc2021/pkg/cache"
	"github.com/go-arcade/aoc2021/pkg/log"
	"github.com/go-arcade/aoc2021/pkg/metrics"
	"github.com/google/wire"
)

// ProviderSet 提供配置层相关的依赖
var ProviderSet = wire.NewSet(
	ProvideLogConfig,
	ProvideInputConfig,
	ProvideCacheConfig,
	ProvideMetricsConfig,
	ProvideSolverConfig,
)

// ProvideLogConfig 提供日志配置
func ProvideLogConfig(appConf *AppConfig) *log.Conf {
	return &appConf.Log
}

// ProvideInputConfig 提供输入下载配置
func ProvideInputConfig(appConf *AppConfig) input.Conf {
	inputConf := appConf.Input
	inputConf.SetDefaults()
	return inputConf
}

// ProvideCacheConfig 提供缓存配置
func ProvideCacheConfig(appConf *AppConfig) cache.Conf {
	return appConf.Cache
}

// ProvideMetricsConfig 提供 Metrics 配置
func ProvideMetricsConfig(appConf *AppConfig) metrics.MetricsConfig {
	metricsConfig := appConf.Metrics
	metricsConfig.SetDefaults()
	return metricsConfig
}

// ProvideSolverConfig 提供求解配置
func ProvideSolverConfig(appConf *AppConfig) solver.Conf {
	return appConf.Solver
}
