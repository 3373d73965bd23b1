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

package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/bytedance/sonic"
	"github.com/go-arcade/aoc2021/pkg/safe"
	"github.com/redis/go-redis/v9"
)

// FastCacheConfig holds fastcache configuration
type FastCacheConfig struct {
	MaxBytes int    // Maximum bytes for fastcache, default 32MB
	Path     string // Directory the cache is loaded from and saved to; empty disables persistence
}

// FastCache is a local cache implementation using VictoriaMetrics fastcache.
// Expiration is tracked in memory only, so entries restored from disk never
// expire.
type FastCache struct {
	cache *fastcache.Cache
	path  string
	ttls  sync.Map // map[string]time.Time
	mu    sync.RWMutex
}

// NewFastCache creates a FastCache, restoring a previous snapshot from
// conf.Path when one exists.
func NewFastCache(conf FastCacheConfig) *FastCache {
	maxBytes := conf.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultLocalMaxBytes
	}

	var c *fastcache.Cache
	if conf.Path != "" {
		c = fastcache.LoadFromFileOrNew(conf.Path, maxBytes)
	} else {
		c = fastcache.New(maxBytes)
	}
	return &FastCache{cache: c, path: conf.Path}
}

// Get returns the value for the given key
func (fc *FastCache) Get(ctx context.Context, key string) *redis.StringCmd {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	cmd := redis.NewStringCmd(ctx, "get", key)
	if fc.expired(key) {
		cmd.SetErr(redis.Nil)
		return cmd
	}

	value, ok := fc.cache.HasGet(nil, []byte(key))
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(string(value))
	return cmd
}

// Set sets the value for the given key with expiration
func (fc *FastCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "set", key)

	valueBytes, err := toBytes(value)
	if err != nil {
		cmd.SetErr(err)
		return cmd
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	fc.cache.Set([]byte(key), valueBytes)
	if expiration > 0 {
		fc.ttls.Store(key, time.Now().Add(expiration))
		safe.Go(func() {
			fc.cleanupExpiredKeyWithDelay(key, expiration)
		})
	} else {
		fc.ttls.Delete(key)
	}

	cmd.SetVal("OK")
	return cmd
}

// Del deletes the given keys
func (fc *FastCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	count := int64(0)
	for _, key := range keys {
		if fc.cache.Has([]byte(key)) && !fc.expired(key) {
			count++
		}
		fc.cache.Del([]byte(key))
		fc.ttls.Delete(key)
	}

	cmd := redis.NewIntCmd(ctx, "del")
	cmd.SetVal(count)
	return cmd
}

// Save writes the cache to its configured path. It is a no-op without one.
func (fc *FastCache) Save() error {
	if fc.path == "" {
		return nil
	}
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	if err := fc.cache.SaveToFile(fc.path); err != nil {
		return fmt.Errorf("save cache to %s: %w", fc.path, err)
	}
	return nil
}

// Clear removes all items from the cache
func (fc *FastCache) Clear() {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	fc.cache.Reset()
	fc.ttls.Range(func(key, value any) bool {
		fc.ttls.Delete(key)
		return true
	})
}

// Stats returns cache statistics
func (fc *FastCache) Stats() fastcache.Stats {
	var stats fastcache.Stats
	fc.cache.UpdateStats(&stats)
	return stats
}

// expired reports whether key carries a deadline in the past. Callers hold mu.
func (fc *FastCache) expired(key string) bool {
	if exp, ok := fc.ttls.Load(key); ok {
		return time.Now().After(exp.(time.Time))
	}
	return false
}

func (fc *FastCache) cleanupExpiredKeyWithDelay(key string, delay time.Duration) {
	<-time.After(delay)

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.expired(key) {
		fc.cache.Del([]byte(key))
		fc.ttls.Delete(key)
	}
}

// toBytes converts a cache value, JSON-encoding anything that is not text.
func toBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		data, err := sonic.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode cache value: %w", err)
		}
		return data, nil
	}
}
