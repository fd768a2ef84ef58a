// mission/snapshot.go
// Copyright(c) 2024-2025 DBF2025-SizingTool contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"compress/flate"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is a checkpoint of a mission run: the parameters it was
// started with, the phase profile, and the retained state history. The
// on-disk format is flate-compressed msgpack.
type Snapshot struct {
	Params  Parameters
	Profile []Config
	States  []PlaneState
}

func (s *Snapshot) Save(w io.Writer) error {
	fw, err := flate.NewWriter(w, flate.BestSpeed)
	if err != nil {
		return err
	}

	if err := msgpack.NewEncoder(fw).Encode(s); err != nil {
		return err
	}
	return fw.Close()
}

func LoadSnapshot(r io.Reader) (*Snapshot, error) {
	fr := flate.NewReader(r)
	defer fr.Close()

	var s Snapshot
	if err := msgpack.NewDecoder(fr).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Snapshot) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return s.Save(f)
}

func LoadSnapshotFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadSnapshot(f)
}
