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

package input

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-arcade/aoc2021/pkg/cache"
	"github.com/go-arcade/aoc2021/pkg/log"
	"github.com/go-resty/resty/v2"
)

// ErrMissingSession is returned when an input has to be downloaded but no
// session token is configured.
var ErrMissingSession = errors.New("input: no session token, set AOC_SESSION or input.session")

// Conf configures puzzle input retrieval.
type Conf struct {
	BaseURL    string
	Year       int
	Session    string
	Timeout    time.Duration
	RetryCount int
	RetryWait  time.Duration
}

// SetDefaults fills unset fields.
func (c *Conf) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://adventofcode.com"
	}
	if c.Year == 0 {
		c.Year = 2021
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.RetryCount < 0 {
		c.RetryCount = 0
	}
	if c.RetryWait <= 0 {
		c.RetryWait = 500 * time.Millisecond
	}
}

// Fetcher downloads puzzle inputs and keeps them in a cache, since an input
// never changes once published.
type Fetcher struct {
	conf   Conf
	client *resty.Client
	cache  cache.ICache
}

// NewFetcher creates a Fetcher. A nil cache downloads on every call.
func NewFetcher(conf Conf, c cache.ICache) *Fetcher {
	conf.SetDefaults()
	client := resty.New().
		SetBaseURL(strings.TrimRight(conf.BaseURL, "/")).
		SetTimeout(conf.Timeout).
		SetRetryCount(conf.RetryCount).
		SetRetryWaitTime(conf.RetryWait).
		SetRetryMaxWaitTime(conf.RetryWait*8).
		SetHeader("User-Agent", "github.com/go-arcade/aoc2021").
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})
	return &Fetcher{conf: conf, client: client, cache: c}
}

// Fetch returns the input for day, downloading it on a cache miss.
func (f *Fetcher) Fetch(ctx context.Context, day int) (string, error) {
	query := cache.NewCachedQuery(f.cache,
		func(params ...any) string {
			return fmt.Sprintf("aoc:input:%d:%d", f.conf.Year, params[0])
		},
		func(ctx context.Context) (string, error) {
			return f.download(ctx, day)
		},
		cache.WithLogPrefix[string]("[input]"),
	)
	return query.Get(ctx, day)
}

func (f *Fetcher) download(ctx context.Context, day int) (string, error) {
	if f.conf.Session == "" {
		return "", ErrMissingSession
	}

	log.WithContext(ctx).Infow("downloading puzzle input", "year", f.conf.Year, "day", day)
	resp, err := f.client.R().
		SetContext(ctx).
		SetCookie(&http.Cookie{Name: "session", Value: f.conf.Session}).
		SetPathParams(map[string]string{
			"year": strconv.Itoa(f.conf.Year),
			"day":  strconv.Itoa(day),
		}).
		Get("/{year}/day/{day}/input")
	if err != nil {
		return "", fmt.Errorf("download input for day %d: %w", day, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("download input for day %d: unexpected status %s", day, resp.Status())
	}

	body := string(resp.Body())
	if strings.TrimSpace(body) == "" {
		return "", fmt.Errorf("download input for day %d: empty body", day)
	}
	log.WithContext(ctx).Debugw("puzzle input downloaded", "day", day, "bytes", len(body), "attempts", resp.Request.Attempt)
	return body, nil
}
