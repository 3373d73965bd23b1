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
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-arcade/aoc2021/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "[[1,2],3]\n[4,[5,6]]\n"

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func testConf(baseURL string) Conf {
	return Conf{
		BaseURL:    baseURL,
		Year:       2021,
		Session:    "s3cr3t",
		Timeout:    2 * time.Second,
		RetryCount: 2,
		RetryWait:  time.Millisecond,
	}
}

func TestFetcher_Fetch(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2021/day/18/input", r.URL.Path)
		cookie, err := r.Cookie("session")
		require.NoError(t, err)
		assert.Equal(t, "s3cr3t", cookie.Value)
		_, _ = w.Write([]byte(sample))
	})

	got, err := NewFetcher(testConf(srv.URL), nil).Fetch(context.Background(), 18)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestFetcher_CachesInput(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(sample))
	})

	c := cache.NewFastCache(cache.FastCacheConfig{})
	f := NewFetcher(testConf(srv.URL), c)
	for i := 0; i < 3; i++ {
		got, err := f.Fetch(context.Background(), 18)
		require.NoError(t, err)
		assert.Equal(t, sample, got)
	}
	assert.Equal(t, int32(1), hits.Load())

	// stored as JSON text under the year/day key
	cached, err := c.Get(context.Background(), "aoc:input:2021:18").Result()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cached, `"`))
}

func TestFetcher_CacheHitNeedsNoSession(t *testing.T) {
	c := cache.NewFastCache(cache.FastCacheConfig{})
	c.Set(context.Background(), "aoc:input:2021:18", `"[1,1]\n"`, 0)

	conf := testConf("http://127.0.0.1:1")
	conf.Session = ""
	got, err := NewFetcher(conf, c).Fetch(context.Background(), 18)
	require.NoError(t, err)
	assert.Equal(t, "[1,1]\n", got)
}

func TestFetcher_MissingSession(t *testing.T) {
	conf := testConf("http://127.0.0.1:1")
	conf.Session = ""
	_, err := NewFetcher(conf, nil).Fetch(context.Background(), 18)
	assert.ErrorIs(t, err, ErrMissingSession)
}

func TestFetcher_RetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(sample))
	})

	got, err := NewFetcher(testConf(srv.URL), nil).Fetch(context.Background(), 18)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
	assert.Equal(t, int32(3), hits.Load())
}

func TestFetcher_ClientErrorsAreNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "Please log in to get your puzzle input.", http.StatusBadRequest)
	})

	_, err := NewFetcher(testConf(srv.URL), nil).Fetch(context.Background(), 18)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetcher_EmptyBody(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {})
	_, err := NewFetcher(testConf(srv.URL), nil).Fetch(context.Background(), 18)
	assert.ErrorContains(t, err, "empty body")
}

func TestConf_SetDefaults(t *testing.T) {
	var c Conf
	c.SetDefaults()
	assert.Equal(t, "https://adventofcode.com", c.BaseURL)
	assert.Equal(t, 2021, c.Year)
	assert.Equal(t, 30*time.Second, c.Timeout)
}

func TestSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day18.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[9,9]\n"))
	})
	s := &Source{
		Fetcher: NewFetcher(testConf(srv.URL), nil),
		Stdin:   strings.NewReader("[7,7]\n"),
	}
	ctx := context.Background()

	got, err := s.Load(ctx, 18, path)
	require.NoError(t, err)
	assert.Equal(t, sample, got)

	got, err = s.Load(ctx, 18, "-")
	require.NoError(t, err)
	assert.Equal(t, "[7,7]\n", got)

	got, err = s.Load(ctx, 18, "")
	require.NoError(t, err)
	assert.Equal(t, "[9,9]\n", got)

	_, err = s.Load(ctx, 18, filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "read input file")

	_, err = (&Source{}).Load(ctx, 18, "")
	assert.Error(t, err)
}

func TestFetcher_KeepsBodyVerbatim(t *testing.T) {
	body := "[1,1]\n[2,2]\n\n"
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})
	path := filepath.Join(t.TempDir(), "day18.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s := NewSource(NewFetcher(testConf(srv.URL), nil))
	fetched, err := s.Load(context.Background(), 18, "")
	require.NoError(t, err)
	fromFile, err := s.Load(context.Background(), 18, path)
	require.NoError(t, err)

	assert.Equal(t, body, fetched)
	assert.Equal(t, fromFile, fetched)
}
