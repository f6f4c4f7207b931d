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
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	searchCacheExpiration = 10 * time.Minute
	// Clean up expired entries every 5 minutes
	searchCacheCleanup = 5 * time.Minute
)

// searchResult is what a memoised search remembers about a key.
type searchResult struct {
	Found   bool
	Height  int
	Balance int
}

// NewSearchCache creates the memo used for repeated search operations.
// Entries are only valid for one tree shape; callers flush on mutation.
func NewSearchCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, searchCacheCleanup)
}

func CacheSearch(c *cache.Cache, key int, res searchResult) {
	c.Set(strconv.Itoa(key), res, cache.DefaultExpiration)
}

func GetCachedSearch(c *cache.Cache, key int) (searchResult, bool) {
	val, ok := c.Get(strconv.Itoa(key))
	if !ok {
		return searchResult{}, false
	}
	return val.(searchResult), true
}
