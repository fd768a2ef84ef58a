// results/store.go
// Copyright(c) 2024-2025 DBF2025-SizingTool contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package results

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/airframe"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Disk tier: one file per fingerprint, msgpack-encoded and
// zstd-compressed. The fingerprint is the filename, so a lookup is a
// single stat.

func (c *Cache) storePath(fp uint64) string {
	return filepath.Join(c.dir, fmt.Sprintf("%016x.msgpack.zst", fp))
}

func writeResults(path string, r *airframe.AnalysisResults) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return err
	}

	if err := msgpack.NewEncoder(zw).Encode(r); err != nil {
		return err
	}
	return zw.Close()
}

func readResults(path string) (*airframe.AnalysisResults, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var r airframe.AnalysisResults
	if err := msgpack.NewDecoder(zr).Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Cull removes spilled results, oldest first, until the disk tier is
// under maxBytes.
func (c *Cache) Cull(maxBytes int64) error {
	if c.dir == "" {
		return nil
	}
	if _, err := os.Stat(c.dir); os.IsNotExist(err) {
		return nil // Nothing to cull
	}

	type fileInfo struct {
		path    string
		size    int64
		modTime time.Time
	}
	var files []fileInfo
	var totalSize int64

	err := filepath.Walk(c.dir, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			files = append(files, fileInfo{
				path:    path,
				size:    info.Size(),
				modTime: info.ModTime(),
			})
			totalSize += info.Size()
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Sort files by modification time, oldest first
	slices.SortFunc(files, func(a, b fileInfo) int {
		return a.modTime.Compare(b.modTime)
	})

	// Remove files oldest to newest until we're under the limit
	for len(files) > 0 && totalSize > maxBytes {
		f := files[0]
		if err := os.Remove(f.path); err == nil {
			totalSize -= f.size
		}
		files = files[1:]
	}

	return nil
}
