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
	// Clean up expired entries every 5 minutes
	queryCacheCleanup = 5 * time.Minute
)

// NewQueryCache creates the cache shared by catalog queries and rendered
// artist cards. Loading a file flushes it.
func NewQueryCache(minutes int) *cache.Cache {
	if minutes <= 0 {
		minutes = defaultConfig.Display.CacheMinutes
	}
	return cache.New(time.Duration(minutes)*time.Minute, queryCacheCleanup)
}

func cardKey(id int) string {
	return "card:" + strconv.Itoa(id)
}

// CacheCard stores the rendered detail card of an artist.
func CacheCard(c *cache.Cache, id int, rendered string) {
	c.SetDefault(cardKey(id), rendered)
}

// GetCard returns a cached card, or "" when there is none.
func GetCard(c *cache.Cache, id int) string {
	val, ok := c.Get(cardKey(id))
	if !ok {
		return ""
	}
	return val.(string)
}
