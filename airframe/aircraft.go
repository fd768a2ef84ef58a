// airframe/aircraft.go
// Copyright(c) 2024-2025 DBF2025-SizingTool contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airframe

import (
	"fmt"
	gomath "math"

	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/util"
)

// Aircraft describes a single aircraft design point: overall masses,
// material densities, main wing and tail geometry, and the per-segment
// flap layout. Instances are built once, by the configuration loader or
// by an optimizer, and are never mutated afterward; analysis results hold
// a reference back to the Aircraft they were computed for.
//
// The JSON tags double as the canonical field names used both for design
// files, for the flattened key-value representation, and for the
// fingerprint; they must not be renamed.
type Aircraft struct {
	MassTotal    float64 `json:"m_total"`
	MassFuselage float64 `json:"m_fuselage"`

	WingDensity float64 `json:"wing_density"`
	SparDensity float64 `json:"spar_density"`

	MainWingSpan      float64 `json:"mainwing_span"`
	MainWingAR        float64 `json:"mainwing_AR"`
	MainWingTaper     float64 `json:"mainwing_taper"`
	MainWingTwist     float64 `json:"mainwing_twist"`
	MainWingSweepback float64 `json:"mainwing_sweepback"`
	MainWingDihedral  float64 `json:"mainwing_dihedral"`
	MainWingIncidence float64 `json:"mainwing_incidence"`

	// One entry per flap segment; the four slices are index-aligned and
	// their order is part of the configuration's identity.
	FlapStart      []float64 `json:"flap_start"`
	FlapEnd        []float64 `json:"flap_end"`
	FlapAngle      []float64 `json:"flap_angle"`
	FlapChordRatio []float64 `json:"flap_c_ratio"`

	HTailVolumeRatio float64 `json:"horizontal_volume_ratio"`
	HTailAreaRatio   float64 `json:"horizontal_area_ratio"`
	HTailAR          float64 `json:"horizontal_AR"`
	HTailTaper       float64 `json:"horizontal_taper"`
	HTailThickChord  float64 `json:"horizontal_ThickChord"`
	VTailVolumeRatio float64 `json:"vertical_volume_ratio"`
	VTailTaper       float64 `json:"vertical_taper"`
	VTailThickChord  float64 `json:"vertical_ThickChord"`
}

// The field tables below are the single statically-enumerated description
// of the Aircraft field set; the fingerprint, the flat-map construction
// path, and flattening all walk these rather than reflecting over the
// struct, so the canonical name set lives in exactly one place.

type aircraftScalarField struct {
	name string
	get  func(*Aircraft) float64
	set  func(*Aircraft, float64)
}

type aircraftSequenceField struct {
	name string
	get  func(*Aircraft) []float64
	set  func(*Aircraft, []float64)
}

var aircraftScalarFields = []aircraftScalarField{
	{"m_total", func(a *Aircraft) float64 { return a.MassTotal }, func(a *Aircraft, v float64) { a.MassTotal = v }},
	{"m_fuselage", func(a *Aircraft) float64 { return a.MassFuselage }, func(a *Aircraft, v float64) { a.MassFuselage = v }},
	{"wing_density", func(a *Aircraft) float64 { return a.WingDensity }, func(a *Aircraft, v float64) { a.WingDensity = v }},
	{"spar_density", func(a *Aircraft) float64 { return a.SparDensity }, func(a *Aircraft, v float64) { a.SparDensity = v }},
	{"mainwing_span", func(a *Aircraft) float64 { return a.MainWingSpan }, func(a *Aircraft, v float64) { a.MainWingSpan = v }},
	{"mainwing_AR", func(a *Aircraft) float64 { return a.MainWingAR }, func(a *Aircraft, v float64) { a.MainWingAR = v }},
	{"mainwing_taper", func(a *Aircraft) float64 { return a.MainWingTaper }, func(a *Aircraft, v float64) { a.MainWingTaper = v }},
	{"mainwing_twist", func(a *Aircraft) float64 { return a.MainWingTwist }, func(a *Aircraft, v float64) { a.MainWingTwist = v }},
	{"mainwing_sweepback", func(a *Aircraft) float64 { return a.MainWingSweepback }, func(a *Aircraft, v float64) { a.MainWingSweepback = v }},
	{"mainwing_dihedral", func(a *Aircraft) float64 { return a.MainWingDihedral }, func(a *Aircraft, v float64) { a.MainWingDihedral = v }},
	{"mainwing_incidence", func(a *Aircraft) float64 { return a.MainWingIncidence }, func(a *Aircraft, v float64) { a.MainWingIncidence = v }},
	{"horizontal_volume_ratio", func(a *Aircraft) float64 { return a.HTailVolumeRatio }, func(a *Aircraft, v float64) { a.HTailVolumeRatio = v }},
	{"horizontal_area_ratio", func(a *Aircraft) float64 { return a.HTailAreaRatio }, func(a *Aircraft, v float64) { a.HTailAreaRatio = v }},
	{"horizontal_AR", func(a *Aircraft) float64 { return a.HTailAR }, func(a *Aircraft, v float64) { a.HTailAR = v }},
	{"horizontal_taper", func(a *Aircraft) float64 { return a.HTailTaper }, func(a *Aircraft, v float64) { a.HTailTaper = v }},
	{"horizontal_ThickChord", func(a *Aircraft) float64 { return a.HTailThickChord }, func(a *Aircraft, v float64) { a.HTailThickChord = v }},
	{"vertical_volume_ratio", func(a *Aircraft) float64 { return a.VTailVolumeRatio }, func(a *Aircraft, v float64) { a.VTailVolumeRatio = v }},
	{"vertical_taper", func(a *Aircraft) float64 { return a.VTailTaper }, func(a *Aircraft, v float64) { a.VTailTaper = v }},
	{"vertical_ThickChord", func(a *Aircraft) float64 { return a.VTailThickChord }, func(a *Aircraft, v float64) { a.VTailThickChord = v }},
}

var aircraftSequenceFields = []aircraftSequenceField{
	{"flap_start", func(a *Aircraft) []float64 { return a.FlapStart }, func(a *Aircraft, v []float64) { a.FlapStart = v }},
	{"flap_end", func(a *Aircraft) []float64 { return a.FlapEnd }, func(a *Aircraft, v []float64) { a.FlapEnd = v }},
	{"flap_angle", func(a *Aircraft) []float64 { return a.FlapAngle }, func(a *Aircraft, v []float64) { a.FlapAngle = v }},
	{"flap_c_ratio", func(a *Aircraft) []float64 { return a.FlapChordRatio }, func(a *Aircraft, v []float64) { a.FlapChordRatio = v }},
}

var aircraftFieldNames = func() map[string]bool {
	names := make(map[string]bool)
	for _, f := range aircraftScalarFields {
		names[f.name] = true
	}
	for _, f := range aircraftSequenceFields {
		names[f.name] = true
	}
	return names
}()

// Validate checks the invariants the rest of the system assumes: every
// scalar and sequence element is a finite number, and the four flap
// arrays describe the same number of segments. It returns
// ErrInvalidConfiguration or ErrLengthMismatch wrapped with the offending
// field's name.
func (ac *Aircraft) Validate() error {
	for _, f := range aircraftScalarFields {
		if v := f.get(ac); gomath.IsNaN(v) || gomath.IsInf(v, 0) {
			return fmt.Errorf("%s: %w", f.name, ErrInvalidConfiguration)
		}
	}

	nsegs := len(ac.FlapStart)
	for _, f := range aircraftSequenceFields {
		s := f.get(ac)
		if len(s) != nsegs {
			return fmt.Errorf("%s: %d flap segments, expected %d: %w", f.name, len(s), nsegs,
				ErrLengthMismatch)
		}
		for i, v := range s {
			if gomath.IsNaN(v) || gomath.IsInf(v, 0) {
				return fmt.Errorf("%s[%d]: %w", f.name, i, ErrInvalidConfiguration)
			}
		}
	}
	return nil
}

// NumFlapSegments returns the number of spanwise flap segments.
func (ac *Aircraft) NumFlapSegments() int {
	return len(ac.FlapStart)
}

// AircraftFromFields builds an Aircraft from a mapping of canonical field
// name to numeric value (scalars) or to an ordered sequence of numeric
// values (the flap fields). Construction is strict: every field of the
// enumerated field set must be present and keys outside it are rejected,
// so a misspelled entry fails loudly instead of silently producing a
// zero-valued field.
func AircraftFromFields(fields map[string]any) (*Aircraft, error) {
	for _, k := range util.SortedMapKeys(fields) {
		if !aircraftFieldNames[k] {
			return nil, fmt.Errorf("%s: %w", k, ErrUnexpectedField)
		}
	}

	ac := &Aircraft{}
	for _, f := range aircraftScalarFields {
		raw, ok := fields[f.name]
		if !ok {
			return nil, fmt.Errorf("%s: %w", f.name, ErrMissingField)
		}
		v, ok := coerceFloat(raw)
		if !ok {
			return nil, fmt.Errorf("%s: %T is not a number: %w", f.name, raw, ErrInvalidConfiguration)
		}
		f.set(ac, v)
	}
	for _, f := range aircraftSequenceFields {
		raw, ok := fields[f.name]
		if !ok {
			return nil, fmt.Errorf("%s: %w", f.name, ErrMissingField)
		}
		s, ok := coerceFloatSlice(raw)
		if !ok {
			return nil, fmt.Errorf("%s: %T is not a numeric sequence: %w", f.name, raw, ErrInvalidConfiguration)
		}
		f.set(ac, s)
	}

	if err := ac.Validate(); err != nil {
		return nil, err
	}
	return ac, nil
}

// coerceFloat converts the numeric representations we encounter in
// decoded JSON and in flattened records to float64.
func coerceFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// coerceFloatSlice converts []float64 or []any of numbers to a
// newly-allocated []float64, preserving element order.
func coerceFloatSlice(v any) ([]float64, bool) {
	switch v := v.(type) {
	case []float64:
		return util.DuplicateSlice(v), true
	case []any:
		s := make([]float64, 0, len(v))
		for _, e := range v {
			f, ok := coerceFloat(e)
			if !ok {
				return nil, false
			}
			s = append(s, f)
		}
		return s, true
	default:
		return nil, false
	}
}
