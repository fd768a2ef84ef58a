// results/cache.go
// Copyright(c) 2024-2025 DBF2025-SizingTool contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package results

import (
	"strconv"
	"time"

	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/airframe"
	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/log"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Cache stores analysis results keyed by the aircraft configuration's
// canonical fingerprint. Recently used results live in an in-memory LRU;
// if a cache directory is configured, results are also spilled to disk as
// zstd-compressed msgpack so they survive process restarts. Analysis runs
// are expensive, so GetOrCompute guarantees at-most-once computation per
// fingerprint even under concurrent callers.
type Cache struct {
	mem   *expirable.LRU[uint64, *airframe.AnalysisResults]
	group singleflight.Group
	dir   string // disk tier; empty disables it
	lg    *log.Logger
}

// New creates a Cache holding up to entries results in memory for at most
// ttl. dir names the disk spill directory; pass "" for a memory-only
// cache.
func New(entries int, ttl time.Duration, dir string, lg *log.Logger) *Cache {
	return &Cache{
		mem: expirable.NewLRU[uint64, *airframe.AnalysisResults](entries, nil, ttl),
		dir: dir,
		lg:  lg,
	}
}

// Get returns the cached results for the given fingerprint, consulting
// memory first and then the disk tier.
func (c *Cache) Get(fp uint64) (*airframe.AnalysisResults, bool) {
	if r, ok := c.mem.Get(fp); ok {
		return r, true
	}

	if c.dir != "" {
		if r, err := readResults(c.storePath(fp)); err == nil {
			c.mem.Add(fp, r)
			return r, true
		}
	}
	return nil, false
}

// Add stores results under the given fingerprint. Disk spill failures are
// logged but not returned; the memory tier is authoritative.
func (c *Cache) Add(fp uint64, r *airframe.AnalysisResults) {
	c.mem.Add(fp, r)

	if c.dir != "" {
		if err := writeResults(c.storePath(fp), r); err != nil {
			c.lg.Warnf("%016x: unable to spill analysis results: %v", fp, err)
		}
	}
}

// GetOrCompute returns the cached results for ac, computing them with
// compute on a miss. Concurrent callers with the same fingerprint share a
// single computation. A compute error is returned to every waiting caller
// and nothing is cached.
func (c *Cache) GetOrCompute(ac *airframe.Aircraft,
	compute func(*airframe.Aircraft) (*airframe.AnalysisResults, error)) (*airframe.AnalysisResults, error) {
	fp, err := ac.Fingerprint()
	if err != nil {
		return nil, err
	}

	if r, ok := c.Get(fp); ok {
		return r, nil
	}

	v, err, _ := c.group.Do(strconv.FormatUint(fp, 16), func() (any, error) {
		// Another caller may have finished while we waited for the
		// singleflight slot.
		if r, ok := c.Get(fp); ok {
			return r, nil
		}

		start := time.Now()
		r, err := compute(ac)
		if err != nil {
			return nil, err
		}
		c.lg.Debugf("%016x: analysis computed in %s", fp, time.Since(start))

		c.Add(fp, r)
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*airframe.AnalysisResults), nil
}

// Len returns the number of results resident in memory.
func (c *Cache) Len() int {
	return c.mem.Len()
}
