// airframe/results.go
// Copyright(c) 2024-2025 DBF2025-SizingTool contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airframe

import (
	"fmt"
	"strings"

	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/util"
)

// AircraftKeyPrefix marks the keys of a flattened AnalysisResults record
// that belong to the nested Aircraft.
const AircraftKeyPrefix = "aircraft."

// AnalysisResults aggregates an Aircraft with the aerodynamic and weight
// outputs computed for it by the analysis engine. The record is read-only
// once produced; the angle-of-attack thresholds are set by the caller's
// convention rather than derived here.
type AnalysisResults struct {
	Aircraft *Aircraft

	MassBoom float64 `json:"m_boom"`
	MassWing float64 `json:"m_wing"`
	MassFuel float64 `json:"m_fuel"`

	// Moment arms from the reference point to the wing and horizontal
	// tail aerodynamic centers.
	Lw float64 `json:"Lw"`
	Lh float64 `json:"Lh"`

	Span  float64 `json:"span"`
	AR    float64 `json:"AR"`
	Taper float64 `json:"taper"`
	Twist float64 `json:"twist"`

	Sref float64 `json:"Sref"`

	// AlphaList holds the angle-of-attack sample points; CL, CDWing,
	// CDFuse, and CDTotal are index-aligned with it.
	AlphaList []float64 `json:"alpha_list"`

	AOAStall      float64 `json:"AOA_stall"`
	AOATakeoffMax float64 `json:"AOA_takeoff_max"`
	AOAClimbMax   float64 `json:"AOA_climb_max"`
	AOATurnMax    float64 `json:"AOA_turn_max"`

	CL    []float64 `json:"CL"`
	CLMax float64   `json:"CL_max"`

	CDWing  []float64 `json:"CD_wing"`
	CDFuse  []float64 `json:"CD_fuse"`
	CDTotal []float64 `json:"CD_total"`

	CLFlapMax  float64 `json:"CL_flap_max"`
	CLFlapZero float64 `json:"CL_flap_zero"`
	CDFlapMax  float64 `json:"CD_flap_max"`
	CDFlapZero float64 `json:"CD_flap_zero"`
}

type resultScalarField struct {
	name string
	get  func(*AnalysisResults) float64
	set  func(*AnalysisResults, float64)
}

type resultSequenceField struct {
	name string
	get  func(*AnalysisResults) []float64
	set  func(*AnalysisResults, []float64)
}

var resultScalarFields = []resultScalarField{
	{"m_boom", func(r *AnalysisResults) float64 { return r.MassBoom }, func(r *AnalysisResults, v float64) { r.MassBoom = v }},
	{"m_wing", func(r *AnalysisResults) float64 { return r.MassWing }, func(r *AnalysisResults, v float64) { r.MassWing = v }},
	{"m_fuel", func(r *AnalysisResults) float64 { return r.MassFuel }, func(r *AnalysisResults, v float64) { r.MassFuel = v }},
	{"Lw", func(r *AnalysisResults) float64 { return r.Lw }, func(r *AnalysisResults, v float64) { r.Lw = v }},
	{"Lh", func(r *AnalysisResults) float64 { return r.Lh }, func(r *AnalysisResults, v float64) { r.Lh = v }},
	{"span", func(r *AnalysisResults) float64 { return r.Span }, func(r *AnalysisResults, v float64) { r.Span = v }},
	{"AR", func(r *AnalysisResults) float64 { return r.AR }, func(r *AnalysisResults, v float64) { r.AR = v }},
	{"taper", func(r *AnalysisResults) float64 { return r.Taper }, func(r *AnalysisResults, v float64) { r.Taper = v }},
	{"twist", func(r *AnalysisResults) float64 { return r.Twist }, func(r *AnalysisResults, v float64) { r.Twist = v }},
	{"Sref", func(r *AnalysisResults) float64 { return r.Sref }, func(r *AnalysisResults, v float64) { r.Sref = v }},
	{"AOA_stall", func(r *AnalysisResults) float64 { return r.AOAStall }, func(r *AnalysisResults, v float64) { r.AOAStall = v }},
	{"AOA_takeoff_max", func(r *AnalysisResults) float64 { return r.AOATakeoffMax }, func(r *AnalysisResults, v float64) { r.AOATakeoffMax = v }},
	{"AOA_climb_max", func(r *AnalysisResults) float64 { return r.AOAClimbMax }, func(r *AnalysisResults, v float64) { r.AOAClimbMax = v }},
	{"AOA_turn_max", func(r *AnalysisResults) float64 { return r.AOATurnMax }, func(r *AnalysisResults, v float64) { r.AOATurnMax = v }},
	{"CL_max", func(r *AnalysisResults) float64 { return r.CLMax }, func(r *AnalysisResults, v float64) { r.CLMax = v }},
	{"CL_flap_max", func(r *AnalysisResults) float64 { return r.CLFlapMax }, func(r *AnalysisResults, v float64) { r.CLFlapMax = v }},
	{"CL_flap_zero", func(r *AnalysisResults) float64 { return r.CLFlapZero }, func(r *AnalysisResults, v float64) { r.CLFlapZero = v }},
	{"CD_flap_max", func(r *AnalysisResults) float64 { return r.CDFlapMax }, func(r *AnalysisResults, v float64) { r.CDFlapMax = v }},
	{"CD_flap_zero", func(r *AnalysisResults) float64 { return r.CDFlapZero }, func(r *AnalysisResults, v float64) { r.CDFlapZero = v }},
}

var resultSequenceFields = []resultSequenceField{
	{"alpha_list", func(r *AnalysisResults) []float64 { return r.AlphaList }, func(r *AnalysisResults, v []float64) { r.AlphaList = v }},
	{"CL", func(r *AnalysisResults) []float64 { return r.CL }, func(r *AnalysisResults, v []float64) { r.CL = v }},
	{"CD_wing", func(r *AnalysisResults) []float64 { return r.CDWing }, func(r *AnalysisResults, v []float64) { r.CDWing = v }},
	{"CD_fuse", func(r *AnalysisResults) []float64 { return r.CDFuse }, func(r *AnalysisResults, v []float64) { r.CDFuse = v }},
	{"CD_total", func(r *AnalysisResults) []float64 { return r.CDTotal }, func(r *AnalysisResults, v []float64) { r.CDTotal = v }},
}

var resultFieldNames = func() map[string]bool {
	names := make(map[string]bool)
	for _, f := range resultScalarFields {
		names[f.name] = true
	}
	for _, f := range resultSequenceFields {
		names[f.name] = true
	}
	return names
}()

// Validate checks that the polar sample sequences are index-aligned with
// alpha_list and that the nested Aircraft satisfies its own invariants.
func (r *AnalysisResults) Validate() error {
	if r.Aircraft == nil {
		return fmt.Errorf("aircraft: %w", ErrMissingField)
	}
	if err := r.Aircraft.Validate(); err != nil {
		return err
	}

	n := len(r.AlphaList)
	for _, f := range resultSequenceFields {
		if len(f.get(r)) != n {
			return fmt.Errorf("%s: %d samples, alpha_list has %d: %w", f.name, len(f.get(r)), n,
				ErrLengthMismatch)
		}
	}
	return nil
}

// ResultsFromFlatMap rebuilds an AnalysisResults and its nested Aircraft
// from a single flat mapping, as stored in a de-normalized tabular row.
// Keys carrying the "aircraft." prefix are stripped and routed to the
// Aircraft; everything else belongs to the result record itself. Both
// records are constructed strictly over their enumerated field sets, so a
// missing field fails with ErrMissingField and a stray key with
// ErrUnexpectedField.
func ResultsFromFlatMap(flat map[string]any) (*AnalysisResults, error) {
	acFields := make(map[string]any)
	resFields := make(map[string]any)
	for k, v := range flat {
		if name, ok := strings.CutPrefix(k, AircraftKeyPrefix); ok {
			acFields[name] = v
		} else {
			resFields[k] = v
		}
	}

	ac, err := AircraftFromFields(acFields)
	if err != nil {
		return nil, fmt.Errorf("aircraft: %w", err)
	}

	for _, k := range util.SortedMapKeys(resFields) {
		if !resultFieldNames[k] {
			return nil, fmt.Errorf("%s: %w", k, ErrUnexpectedField)
		}
	}

	r := &AnalysisResults{Aircraft: ac}
	for _, f := range resultScalarFields {
		raw, ok := resFields[f.name]
		if !ok {
			return nil, fmt.Errorf("%s: %w", f.name, ErrMissingField)
		}
		v, ok := coerceFloat(raw)
		if !ok {
			return nil, fmt.Errorf("%s: %T is not a number: %w", f.name, raw, ErrInvalidConfiguration)
		}
		f.set(r, v)
	}
	for _, f := range resultSequenceFields {
		raw, ok := resFields[f.name]
		if !ok {
			return nil, fmt.Errorf("%s: %w", f.name, ErrMissingField)
		}
		s, ok := coerceFloatSlice(raw)
		if !ok {
			return nil, fmt.Errorf("%s: %T is not a numeric sequence: %w", f.name, raw, ErrInvalidConfiguration)
		}
		f.set(r, s)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// FlatMap flattens the record and its nested Aircraft into a single
// mapping, prefixing the aircraft's keys with "aircraft.". It is the
// inverse of ResultsFromFlatMap; sequences are copied so the flattened
// record does not alias the original.
func (r *AnalysisResults) FlatMap() map[string]any {
	flat := make(map[string]any)
	for _, f := range resultScalarFields {
		flat[f.name] = f.get(r)
	}
	for _, f := range resultSequenceFields {
		flat[f.name] = util.DuplicateSlice(f.get(r))
	}
	for _, f := range aircraftScalarFields {
		flat[AircraftKeyPrefix+f.name] = f.get(r.Aircraft)
	}
	for _, f := range aircraftSequenceFields {
		flat[AircraftKeyPrefix+f.name] = util.DuplicateSlice(f.get(r.Aircraft))
	}
	return flat
}
