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

	"github.com/cybrota/artistfinder/catalog"
)

func TestCacheCardAndGetCard(t *testing.T) {
	c := NewQueryCache(30)
	id := 42
	card := "# Mecano"

	// Initially, GetCard should return an empty string for a missing card.
	if got := GetCard(c, id); got != "" {
		t.Errorf("GetCard(%d) = %q; want empty string", id, got)
	}

	CacheCard(c, id, card)

	if got := GetCard(c, id); got != card {
		t.Errorf("GetCard(%d) = %q; want %q", id, got, card)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	CacheCard(c, 7, "short lived")

	if got := GetCard(c, 7); got != "short lived" {
		t.Errorf("GetCard(7) = %q; want %q", got, "short lived")
	}

	time.Sleep(150 * time.Millisecond)

	if got := GetCard(c, 7); got != "" {
		t.Errorf("After expiration, GetCard(7) = %q; want empty string", got)
	}
}

func TestLoadFlushesCards(t *testing.T) {
	c := NewQueryCache(0)
	f := catalog.NewFinder(catalog.Options{Cache: c})
	CacheCard(c, 3, "stale")

	if err := f.Add(catalog.Artist{ID: 3, Name: "Camarón"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if got := GetCard(c, 3); got != "" {
		t.Errorf("card survived a catalog change: %q", got)
	}
}
