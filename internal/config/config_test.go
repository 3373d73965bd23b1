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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	l, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, l.File())

	conf := l.Config()
	assert.Equal(t, "stderr", conf.Log.Output)
	assert.Equal(t, 2021, conf.Input.Year)
	assert.Equal(t, 30*time.Second, conf.Input.Timeout)
	assert.Equal(t, 3, conf.Input.RetryCount)
	assert.Equal(t, "local", conf.Cache.Type)
	assert.True(t, conf.Solver.Memoize)
	assert.False(t, conf.Metrics.Enable)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "DEBUG"

[input]
year = 2022
timeout = "5s"
retrywait = "10ms"

[cache]
type = "redis"

[cache.redis]
address = "redis:6379"
dialtimeout = 2

[solver]
workers = 4
maxreducesteps = 500
`)

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, l.File())

	conf := l.Config()
	assert.Equal(t, "DEBUG", conf.Log.Level)
	assert.Equal(t, "stderr", conf.Log.Output)
	assert.Equal(t, 2022, conf.Input.Year)
	assert.Equal(t, 5*time.Second, conf.Input.Timeout)
	assert.Equal(t, 10*time.Millisecond, conf.Input.RetryWait)
	assert.Equal(t, "redis", conf.Cache.Type)
	assert.Equal(t, "redis:6379", conf.Cache.Redis.Address)
	assert.Equal(t, time.Duration(2), conf.Cache.Redis.DialTimeout)
	assert.Equal(t, 4, conf.Solver.Workers)
	assert.Equal(t, 500, conf.Solver.MaxReduceSteps)
}

func TestLoad_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("AOC_SESSION", "cookie")
	t.Setenv("AOC_SOLVER_WORKERS", "2")
	t.Setenv("AOC_LOG_LEVEL", "WARN")

	l, err := Load("")
	require.NoError(t, err)
	conf := l.Config()
	assert.Equal(t, "cookie", conf.Input.Session)
	assert.Equal(t, 2, conf.Solver.Workers)
	assert.Equal(t, "WARN", conf.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_RepositoryConfig(t *testing.T) {
	l, err := Load(filepath.Join("..", "..", DefaultConfigDir, DefaultConfigName+".toml"))
	require.NoError(t, err)
	conf := l.Config()
	assert.Equal(t, "https://adventofcode.com", conf.Input.BaseURL)
	assert.Equal(t, 500*time.Millisecond, conf.Input.RetryWait)
}

func TestProviders(t *testing.T) {
	chdir(t, t.TempDir())
	l, err := Load("")
	require.NoError(t, err)

	conf := l.Config()
	appConf := &conf
	assert.Equal(t, "stderr", ProvideLogConfig(appConf).Output)
	assert.Equal(t, 9090, ProvideMetricsConfig(appConf).Port)
	assert.Equal(t, "https://adventofcode.com", ProvideInputConfig(appConf).BaseURL)
	assert.Equal(t, "local", ProvideCacheConfig(appConf).Type)
	assert.True(t, ProvideSolverConfig(appConf).Memoize)
}

func TestWatch_Reloads(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"INFO\"\n")
	l, err := Load(path)
	require.NoError(t, err)

	changed := make(chan AppConfig, 16)
	l.Watch(func(c AppConfig) {
		select {
		case changed <- c:
		default:
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"DEBUG\"\n"), 0o644))
	// a write can surface as several events, some seeing a truncated file
	timeout := time.After(5 * time.Second)
	for {
		select {
		case c := <-changed:
			if c.Log.Level == "DEBUG" {
				return
			}
		case <-timeout:
			t.Fatal("config change not observed")
		}
	}
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
