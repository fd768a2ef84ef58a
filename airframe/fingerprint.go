// airframe/fingerprint.go
// Copyright(c) 2024-2025 DBF2025-SizingTool contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airframe

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/util"

	"github.com/iancoleman/orderedmap"
)

// Fingerprint returns the canonical 64-bit identity of the configuration,
// used to key cached analysis results. Two Aircraft that agree in every
// field to six decimal places fingerprint identically; any difference of
// 1e-6 or more in any field, or any reordering of the flap segments,
// yields a different value with overwhelming probability.
//
// The identity is computed from an explicit canonical serialization
// rather than from the struct's memory representation: every field is
// formatted as a fixed-point decimal string with six digits after the
// point, the name-to-string mapping is serialized as compact JSON with
// keys in bytewise-sorted order, and the fingerprint is the first eight
// bytes of the SHA-256 digest of those bytes, read big-endian. The same
// logical configuration therefore always produces the identical byte
// sequence, and the identical fingerprint, regardless of how or where it
// was constructed.
//
// Fingerprint fails with ErrInvalidConfiguration on NaN or infinite
// fields rather than hashing "NaN"/"Inf" strings, and with
// ErrLengthMismatch if the flap arrays disagree on the segment count.
//
// The fingerprint is truncated to 64 bits and is an identity, not an
// integrity check: collisions are astronomically unlikely but not
// cryptographically ruled out.
func (ac *Aircraft) Fingerprint() (uint64, error) {
	if err := ac.Validate(); err != nil {
		return 0, err
	}

	canonical := orderedmap.New()
	for _, f := range aircraftScalarFields {
		canonical.Set(f.name, formatFixed(f.get(ac)))
	}
	for _, f := range aircraftSequenceFields {
		// Segment order is semantically significant: only the keys are
		// sorted, never the sequences themselves.
		canonical.Set(f.name, util.MapSlice(f.get(ac), formatFixed))
	}
	canonical.SortKeys(sort.Strings)

	b, err := json.Marshal(canonical)
	if err != nil {
		return 0, err
	}

	digest := sha256.Sum256(b)
	return binary.BigEndian.Uint64(digest[:8]), nil
}

// formatFixed renders v with exactly six digits after the decimal point,
// rounding the exact IEEE-754 value of v to the nearest representable
// string. Six digits collapses float noise below 1e-6 while keeping every
// physically meaningful difference.
func formatFixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
