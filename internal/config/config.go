package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-arcade/aoc2021/internal/pkg/input"
	"github.com/go-arcade/aoc2021/internal/solver"
	"github.com/go-arcade/aoc2021/pkg/cache"
	"github.com/go-arcade/aoc2021/pkg/log"
	"github.com/go-arcade/aoc2021/pkg/metrics"
	"github.com/spf13/viper"
)

/**
 * @author: gagral.x@gmail.com
 * @file: config.go
 * @description: application config
 */

const (
	DefaultConfigDir  = "conf.d"
	DefaultConfigName = "config"
	EnvPrefix         = "AOC"
)

type AppConfig struct {
	Log     log.Conf
	Input   input.Conf
	Cache   cache.Conf
	Metrics metrics.MetricsConfig
	Solver  solver.Conf
}

// Loader owns the viper instance behind an AppConfig.
type Loader struct {
	v    *viper.Viper
	mu   sync.RWMutex
	conf AppConfig
}

// Load reads configuration. An empty path searches conf.d/config.toml and
// falls back to defaults when it is absent; an explicit path must exist.
// Environment variables prefixed with AOC_ override file values.
func Load(path string) (*Loader, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// the session cookie is usually exported under its short name
	if err := v.BindEnv("input.session", "AOC_SESSION", "AOC_INPUT_SESSION"); err != nil {
		return nil, fmt.Errorf("bind session env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read configuration file: %w", err)
		}
	} else {
		v.AddConfigPath(DefaultConfigDir)
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read configuration file: %w", err)
			}
		}
	}

	l := &Loader{v: v}
	if err := l.reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Config returns a copy of the current configuration.
func (l *Loader) Config() AppConfig {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.conf
}

// File reports the config file in use, empty when running on defaults.
func (l *Loader) File() string {
	return l.v.ConfigFileUsed()
}

// Watch re-reads the file on change and hands the new config to onChange.
// It does nothing when no file was loaded.
func (l *Loader) Watch(onChange func(AppConfig)) {
	if l.File() == "" {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		log.Infow("configuration changed", "file", e.Name)
		if err := l.reload(); err != nil {
			log.Errorw("failed to reload configuration", "file", e.Name, "error", err)
			return
		}
		onChange(l.Config())
	})
	l.v.WatchConfig()
}

func (l *Loader) reload() error {
	var conf AppConfig
	if err := l.v.Unmarshal(&conf); err != nil {
		return fmt.Errorf("failed to unmarshal configuration file: %w", err)
	}
	l.mu.Lock()
	l.conf = conf
	l.mu.Unlock()
	return nil
}

func setDefaults(v *viper.Viper) {
	logConf := log.SetDefaults()
	v.SetDefault("log.output", logConf.Output)
	v.SetDefault("log.path", logConf.Path)
	v.SetDefault("log.filename", logConf.Filename)
	v.SetDefault("log.level", logConf.Level)
	v.SetDefault("log.keepdays", logConf.KeepDays)
	v.SetDefault("log.rotatesize", logConf.RotateSize)
	v.SetDefault("log.rotatenum", logConf.RotateNum)

	v.SetDefault("input.baseurl", "https://adventofcode.com")
	v.SetDefault("input.year", 2021)
	v.SetDefault("input.session", "")
	v.SetDefault("input.timeout", 30*time.Second)
	v.SetDefault("input.retrycount", 3)
	v.SetDefault("input.retrywait", 500*time.Millisecond)

	v.SetDefault("cache.type", "local")
	v.SetDefault("cache.dir", defaultCacheDir())
	v.SetDefault("cache.maxbytes", 32*1024*1024)
	v.SetDefault("cache.localttl", 3600)
	v.SetDefault("cache.redis.mode", "single")
	v.SetDefault("cache.redis.address", "127.0.0.1:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("cache.redis.poolsize", 4)
	v.SetDefault("cache.redis.dialtimeout", 5)
	v.SetDefault("cache.redis.readtimeout", 3)
	v.SetDefault("cache.redis.writetimeout", 3)

	v.SetDefault("metrics.enable", false)
	v.SetDefault("metrics.host", "127.0.0.1")
	v.SetDefault("metrics.port", 9090)

	v.SetDefault("solver.workers", 0)
	v.SetDefault("solver.maxreducesteps", 0)
	v.SetDefault("solver.memoize", true)
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".aoc-cache"
	}
	return dir + string(os.PathSeparator) + "aoc2021"
}
