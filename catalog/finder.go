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

package catalog

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"

	"github.com/cybrota/artistfinder/avl"
)

// Mode selects how rows are inserted into the tree.
type Mode string

const (
	// ModeBalanced keeps the tree AVL balanced.
	ModeBalanced Mode = "balanced"
	// ModePlain inserts without rebalancing, like a bare search tree.
	ModePlain Mode = "plain"
)

// ParseMode accepts "balanced"/"avl" and "plain"/"bst".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "balanced", "avl":
		return ModeBalanced, nil
	case "plain", "bst":
		return ModePlain, nil
	}
	return "", fmt.Errorf("unknown index mode %q (want balanced or plain)", s)
}

const (
	defaultBloomSize   = 1 << 16
	defaultBloomHashes = 4

	queryCacheExpiration = 30 * time.Minute
	queryCacheCleanup    = 5 * time.Minute
)

// Cache memoises query results. *cache.Cache satisfies it.
type Cache interface {
	Get(k string) (interface{}, bool)
	SetDefault(k string, x interface{})
	Flush()
}

// Options configure a Finder. Zero values select the defaults.
type Options struct {
	Mode        Mode
	BloomSize   uint
	BloomHashes uint
	Cache       Cache
}

// Finder is the artist catalog: artists keyed by ID in an AVL tree, a bloom
// filter over the loaded IDs and a cache of query results.
type Finder struct {
	mode   Mode
	tree   *avl.BalancedTree[int, Artist]
	filter *bloom.BloomFilter
	cache  Cache
}

// StyleCount is one bar of the style histogram.
type StyleCount struct {
	Style string
	Count int
}

// NewFinder creates an empty catalog.
func NewFinder(opts Options) *Finder {
	if opts.Mode == "" {
		opts.Mode = ModeBalanced
	}
	if opts.BloomSize == 0 {
		opts.BloomSize = defaultBloomSize
	}
	if opts.BloomHashes == 0 {
		opts.BloomHashes = defaultBloomHashes
	}
	if opts.Cache == nil {
		opts.Cache = cache.New(queryCacheExpiration, queryCacheCleanup)
	}

	return &Finder{
		mode:   opts.Mode,
		tree:   avl.NewBalanced[int, Artist](),
		filter: bloom.New(opts.BloomSize, opts.BloomHashes),
		cache:  opts.Cache,
	}
}

func idKey(id int) string {
	return strconv.Itoa(id)
}

func (f *Finder) insert(a Artist) error {
	var err error
	if f.mode == ModePlain {
		_, err = f.tree.Insert(a.ID, a)
	} else {
		_, err = f.tree.InsertBalanced(a.ID, a)
	}
	if err != nil {
		return err
	}
	f.filter.AddString(idKey(a.ID))
	return nil
}

// Add inserts one artist. A second artist with the same ID is rejected
// with an error wrapping avl.ErrDuplicateKey.
func (f *Finder) Add(a Artist) error {
	if err := f.insert(a); err != nil {
		return fmt.Errorf("add artist: %w", err)
	}
	f.cache.Flush()
	return nil
}

// LoadFile inserts every artist of the file at path into the catalog.
// Artists already present are counted in Stats.Duplicates and skipped.
func (f *Finder) LoadFile(path string, showProgress bool) (Stats, error) {
	start := time.Now()

	file, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("load artists: %w", err)
	}
	defer file.Close()
	defer f.cache.Flush()

	var bar *progressbar.ProgressBar
	if showProgress {
		total := -1
		if n, err := CountLines(path); err == nil && n > 1 {
			total = n - 1
		}
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetDescription("Loading artists..."),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
	}

	stats, err := ReadArtists(file, func(a Artist) error {
		if bar != nil {
			_ = bar.Add(1)
		}
		return f.insert(a)
	})
	if bar != nil {
		_ = bar.Finish()
	}
	stats.Elapsed = time.Since(start)
	if err != nil {
		return stats, fmt.Errorf("load %s: %w", path, err)
	}
	return stats, nil
}

// Reset empties the catalog.
func (f *Finder) Reset() {
	f.tree.Clear()
	f.filter.ClearAll()
	f.cache.Flush()
}

// Contains reports whether an artist with the given ID is loaded.
func (f *Finder) Contains(id int) bool {
	return f.tree.ContainsKey(id)
}

// Lookup returns the artist with the given ID, or an error wrapping
// avl.ErrKeyNotFound.
func (f *Finder) Lookup(id int) (Artist, error) {
	a, err := f.tree.ValueOf(id)
	if err != nil {
		return Artist{}, fmt.Errorf("artist %d: %w", id, err)
	}
	return a, nil
}

// Show renders the artist as "<id>::<artist>".
func (f *Finder) Show(id int) string {
	a, err := f.Lookup(id)
	if err != nil {
		return fmt.Sprintf("artist %d not found", id)
	}
	return idKey(id) + "::" + a.String()
}

// CountAtLeast counts the artists played at least playcount times.
func (f *Finder) CountAtLeast(playcount int) int {
	key := "count:" + strconv.Itoa(playcount)
	if v, ok := f.cache.Get(key); ok {
		return v.(int)
	}

	n := 0
	for _, a := range f.tree.All(avl.PreOrder) {
		if a.Playcount >= playcount {
			n++
		}
	}
	f.cache.SetDefault(key, n)
	return n
}

// IDsByStyle lists, in preorder, the IDs of the artists having style.
func (f *Finder) IDsByStyle(style string) []int {
	key := "style:" + strings.ToLower(strings.TrimSpace(style))
	if v, ok := f.cache.Get(key); ok {
		return slices.Clone(v.([]int))
	}

	ids := []int{}
	for id, a := range f.tree.All(avl.PreOrder) {
		if a.HasStyle(style) {
			ids = append(ids, id)
		}
	}
	f.cache.SetDefault(key, ids)
	return slices.Clone(ids)
}

// Sorted returns every loaded ID in ascending order.
func (f *Finder) Sorted() []int {
	return f.tree.Traverse(avl.InOrder)
}

// Pages returns how many pages of size IDs the catalog fills.
func (f *Finder) Pages(size int) int {
	if size <= 0 {
		return 0
	}
	return (f.tree.Len() + size - 1) / size
}

// Page returns the n-th (0 based) page of ascending IDs, or nil past the
// last page.
func (f *Finder) Page(n, size int) []int {
	if n < 0 || size <= 0 {
		return nil
	}
	start := n * size
	if start >= f.tree.Len() {
		return nil
	}

	page := make([]int, 0, size)
	i := 0
	for id := range f.tree.All(avl.InOrder) {
		if i >= start {
			page = append(page, id)
			if len(page) == size {
				break
			}
		}
		i++
	}
	return page
}

// CountPresent counts how many of ids are loaded. IDs the bloom filter has
// never seen are rejected without touching the tree.
func (f *Finder) CountPresent(ids []int) int {
	n := 0
	for _, id := range ids {
		if !f.filter.TestString(idKey(id)) {
			continue
		}
		if f.tree.ContainsKey(id) {
			n++
		}
	}
	return n
}

// TopStyles returns the n most common styles, most common first. Styles
// differing only in case are counted together.
func (f *Finder) TopStyles(n int) []StyleCount {
	counts := map[string]*StyleCount{}
	for _, a := range f.tree.All(avl.InOrder) {
		for _, s := range a.StyleList() {
			k := strings.ToLower(s)
			if c, ok := counts[k]; ok {
				c.Count++
			} else {
				counts[k] = &StyleCount{Style: s, Count: 1}
			}
		}
	}

	top := make([]StyleCount, 0, len(counts))
	for _, c := range counts {
		top = append(top, *c)
	}
	slices.SortFunc(top, func(a, b StyleCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Style, b.Style)
	})
	if n >= 0 && len(top) > n {
		top = top[:n]
	}
	return top
}

func (f *Finder) Height() int {
	return f.tree.Height()
}

func (f *Finder) Len() int {
	return f.tree.Len()
}

func (f *Finder) Mode() Mode {
	return f.mode
}

// Tree gives read access to the underlying tree. Callers must not insert
// into it directly.
func (f *Finder) Tree() *avl.BalancedTree[int, Artist] {
	return f.tree
}
