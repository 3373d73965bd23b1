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
	"fmt"
	"time"

	"github.com/go-arcade/aoc2021/pkg/log"
	"github.com/google/wire"
)

// defaultLocalMaxBytes is the default cache size (32MB)
const defaultLocalMaxBytes = 32 * 1024 * 1024

// ProviderSet 提供缓存依赖
var ProviderSet = wire.NewSet(NewCache)

// Conf selects and configures the cache backend.
type Conf struct {
	Type     string // local, redis or none
	Dir      string // snapshot directory for the local cache
	MaxBytes int
	LocalTTL time.Duration // local copy lifetime in redis mode, seconds
	Redis    Redis
}

// NewCache builds the configured cache. Type "none" yields a nil ICache,
// which every consumer treats as caching disabled. The cleanup function
// persists the local snapshot and closes connections.
func NewCache(conf Conf) (ICache, func(), error) {
	switch conf.Type {
	case "none":
		return nil, func() {}, nil
	case "", "local":
		local := NewFastCache(FastCacheConfig{MaxBytes: conf.MaxBytes, Path: conf.Dir})
		return local, func() { saveQuietly(local) }, nil
	case "redis":
		client, err := NewRedis(conf.Redis)
		if err != nil {
			return nil, nil, err
		}
		local := NewFastCache(FastCacheConfig{MaxBytes: conf.MaxBytes})
		hybrid := NewHybridCache(local, NewRedisCache(client), conf.LocalTTL*time.Second)
		return hybrid, func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache type %q", conf.Type)
	}
}

func saveQuietly(fc *FastCache) {
	if err := fc.Save(); err != nil {
		log.Warnw("failed to persist cache", "path", fc.path, "error", err)
	}
}
