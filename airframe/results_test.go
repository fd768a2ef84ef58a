// airframe/results_test.go
// Copyright(c) 2024-2025 DBF2025-SizingTool contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airframe

import (
	"errors"
	"reflect"
	"testing"
)

func testResults() *AnalysisResults {
	return &AnalysisResults{
		Aircraft: testAircraft(),

		MassBoom: 0.35,
		MassWing: 1.6,
		MassFuel: 0.8,

		Lw: 0.12,
		Lh: 0.95,

		Span:  2.0,
		AR:    8.0,
		Taper: 0.5,
		Twist: 0.0,

		Sref: 0.5,

		AlphaList: []float64{-2, 0, 2, 4, 6},

		AOAStall:      12,
		AOATakeoffMax: 10,
		AOAClimbMax:   8,
		AOATurnMax:    8,

		CL:    []float64{0.0, 0.2, 0.4, 0.6, 0.8},
		CLMax: 1.4,

		CDWing:  []float64{0.010, 0.011, 0.014, 0.019, 0.026},
		CDFuse:  []float64{0.008, 0.008, 0.009, 0.010, 0.012},
		CDTotal: []float64{0.018, 0.019, 0.023, 0.029, 0.038},

		CLFlapMax:  1.8,
		CLFlapZero: 0.5,
		CDFlapMax:  0.08,
		CDFlapZero: 0.02,
	}
}

func TestResultsFlatMapRoundTrip(t *testing.T) {
	r := testResults()

	got, err := ResultsFromFlatMap(r.FlatMap())
	if err != nil {
		t.Fatalf("ResultsFromFlatMap: %v", err)
	}
	if !reflect.DeepEqual(got, r) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, r)
	}
}

func TestResultsFromFlatMapMissing(t *testing.T) {
	for _, missing := range []string{"Sref", "alpha_list", "aircraft.m_total", "aircraft.flap_start"} {
		flat := testResults().FlatMap()
		delete(flat, missing)
		if _, err := ResultsFromFlatMap(flat); !errors.Is(err, ErrMissingField) {
			t.Errorf("missing %s: got error %v, want ErrMissingField", missing, err)
		}
	}
}

func TestResultsFromFlatMapUnexpected(t *testing.T) {
	testCases := []struct {
		name string
		key  string
	}{
		{"result key", "CL_cruise"},
		{"aircraft key", "aircraft.winglet_height"},
	}

	for _, tc := range testCases {
		flat := testResults().FlatMap()
		flat[tc.key] = 1.0
		if _, err := ResultsFromFlatMap(flat); !errors.Is(err, ErrUnexpectedField) {
			t.Errorf("%s: got error %v, want ErrUnexpectedField", tc.name, err)
		}
	}
}

func TestResultsValidateSampleAlignment(t *testing.T) {
	r := testResults()
	r.CDFuse = r.CDFuse[:3]

	if err := r.Validate(); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got error %v, want ErrLengthMismatch", err)
	}
}

func TestResultsValidateNestedAircraft(t *testing.T) {
	r := testResults()
	r.Aircraft = nil
	if err := r.Validate(); !errors.Is(err, ErrMissingField) {
		t.Errorf("nil aircraft: got error %v, want ErrMissingField", err)
	}

	r = testResults()
	r.Aircraft.FlapStart = []float64{0.1, 0.4}
	if err := r.Validate(); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("nested flap mismatch: got error %v, want ErrLengthMismatch", err)
	}
}

func TestFlatMapDoesNotAlias(t *testing.T) {
	r := testResults()
	flat := r.FlatMap()

	flat["CL"].([]float64)[0] = 99
	flat["aircraft.flap_start"].([]float64)[0] = 99

	if r.CL[0] == 99 || r.Aircraft.FlapStart[0] == 99 {
		t.Errorf("FlatMap aliases the record's sequences")
	}
}
