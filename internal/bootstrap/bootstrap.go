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

package bootstrap

import (
	"github.com/go-arcade/aoc2021/internal/app"
	"github.com/go-arcade/aoc2021/internal/config"
	"github.com/go-arcade/aoc2021/pkg/log"
)

// InitAppFunc assembles the application from a resolved configuration.
type InitAppFunc func(conf *config.AppConfig) (*app.App, func(), error)

// Override adjusts the loaded configuration, typically from command line flags.
type Override func(conf *config.AppConfig)

// Bootstrap loads the configuration at configFile, applies overrides and
// assembles the application. The returned loader can watch the file.
func Bootstrap(configFile string, initApp InitAppFunc, overrides ...Override) (*app.App, func(), *config.Loader, error) {
	loader, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, err
	}

	appConf := loader.Config()
	for _, o := range overrides {
		o(&appConf)
	}

	a, cleanup, err := initApp(&appConf)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Debugw("application initialized",
		"config", loader.File(),
		"cache", appConf.Cache.Type,
		"workers", appConf.Solver.Workers,
	)
	return a, cleanup, loader, nil
}
