// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheSearchAndGetCachedSearch(t *testing.T) {
	c := NewSearchCache(searchCacheExpiration)

	// Initially, a lookup misses.
	if _, ok := GetCachedSearch(c, 42); ok {
		t.Errorf("GetCachedSearch(42) hit on an empty cache")
	}

	want := searchResult{Found: true, Height: 2, Balance: -1}
	CacheSearch(c, 42, want)

	got, ok := GetCachedSearch(c, 42)
	if !ok || got != want {
		t.Errorf("GetCachedSearch(42) = %+v, %t; want %+v, true", got, ok, want)
	}

	// A remembered miss is still a hit in the memo.
	CacheSearch(c, 7, searchResult{})
	if got, ok := GetCachedSearch(c, 7); !ok || got.Found {
		t.Errorf("GetCachedSearch(7) = %+v, %t; want a cached miss", got, ok)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	CacheSearch(c, 1, searchResult{Found: true, Height: 1})

	// Immediately after caching, the result should be retrievable.
	if _, ok := GetCachedSearch(c, 1); !ok {
		t.Errorf("GetCachedSearch(1) missed right after caching")
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if _, ok := GetCachedSearch(c, 1); ok {
		t.Errorf("GetCachedSearch(1) hit after expiration")
	}
}

func TestSearchTTL(t *testing.T) {
	cfg := defaultConfig
	if got := cfg.SearchTTL(); got != 600*time.Second {
		t.Errorf("SearchTTL() = %s; want 10m0s", got)
	}

	cfg.Cache.SearchTTLSeconds = 0
	if got := cfg.SearchTTL(); got != searchCacheExpiration {
		t.Errorf("SearchTTL() with zero seconds = %s; want %s", got, searchCacheExpiration)
	}
}
