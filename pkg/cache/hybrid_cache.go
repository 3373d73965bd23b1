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
	"errors"
	"time"

	"github.com/go-arcade/aoc2021/pkg/log"
	"github.com/redis/go-redis/v9"
)

// HybridCache puts a local FastCache in front of a remote cache. Reads try
// local first and backfill it on a remote hit; writes go to both.
type HybridCache struct {
	local    *FastCache
	remote   ICache
	localTTL time.Duration
}

// NewHybridCache creates a new HybridCache instance. localTTL bounds how long
// a backfilled entry lives locally; zero keeps it until evicted.
func NewHybridCache(local *FastCache, remote ICache, localTTL time.Duration) *HybridCache {
	return &HybridCache{local: local, remote: remote, localTTL: localTTL}
}

func (hc *HybridCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if cmd := hc.local.Get(ctx, key); cmd.Err() == nil {
		log.Debugw("hybrid cache hit (local)", "key", key)
		return cmd
	}

	cmd := hc.remote.Get(ctx, key)
	if err := cmd.Err(); err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			log.Warnw("hybrid cache remote get failed", "key", key, "error", err)
		}
		return cmd
	}
	log.Debugw("hybrid cache hit (remote)", "key", key)
	hc.local.Set(ctx, key, cmd.Val(), hc.localTTL)
	return cmd
}

func (hc *HybridCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	valueBytes, err := toBytes(value)
	if err != nil {
		cmd := redis.NewStatusCmd(ctx, "set", key)
		cmd.SetErr(err)
		return cmd
	}

	cmd := hc.remote.Set(ctx, key, valueBytes, expiration)
	if cmd.Err() != nil {
		return cmd
	}
	ttl := hc.localTTL
	if expiration > 0 && (ttl <= 0 || expiration < ttl) {
		ttl = expiration
	}
	hc.local.Set(ctx, key, valueBytes, ttl)
	return cmd
}

func (hc *HybridCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	hc.local.Del(ctx, keys...)
	return hc.remote.Del(ctx, keys...)
}
