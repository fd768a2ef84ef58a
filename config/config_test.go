// config/config_test.go
// Copyright(c) 2024-2025 DBF2025-SizingTool contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/airframe"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("%s: %v", path, err)
	}
	return path
}

func TestLoadPresets(t *testing.T) {
	path := writeTempFile(t, "presets.json", `{
	"constants": {"g": 9.80665, "rho": 1.18},
	"m_fuselage": 1.2,
	"mission": {"max_speed": 35, "throttle_turn": 0.65}
}`)

	presets, err := LoadPresets(path, nil)
	if err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}

	if presets.Constants.Gravity != 9.80665 {
		t.Errorf("g = %v, want 9.80665", presets.Constants.Gravity)
	}
	if presets.MassFuselage != 1.2 {
		t.Errorf("m_fuselage = %v, want 1.2", presets.MassFuselage)
	}
	if presets.Mission.MaxSpeed != 35 || presets.Mission.ThrottleTurn != 0.65 {
		t.Errorf("mission overrides not applied: %+v", presets.Mission)
	}
	// Values absent from the file keep their defaults.
	if want := DefaultPresets(); presets.Mission.MaxClimbAngle != want.Mission.MaxClimbAngle {
		t.Errorf("max_climb_angle = %v, want default %v",
			presets.Mission.MaxClimbAngle, want.Mission.MaxClimbAngle)
	}
}

func TestLoadPresetsRejectsUnknownKey(t *testing.T) {
	path := writeTempFile(t, "presets.json", `{"m_fuselage": 1.2, "m_fuselge": 1.3}`)

	if _, err := LoadPresets(path, nil); err == nil {
		t.Errorf("misspelled preset key was accepted")
	}
}

func TestLoadPresetsRejectsDuplicateKey(t *testing.T) {
	path := writeTempFile(t, "presets.json", `{"m_fuselage": 1.2, "m_fuselage": 1.3}`)

	if _, err := LoadPresets(path, nil); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("got error %v, want duplicate key error", err)
	}
}

const testDesignJSON = `{
	"m_total": 5.0, "m_fuselage": 1.0,
	"wing_density": 0.1, "spar_density": 0.2,
	"mainwing_span": 2.0, "mainwing_AR": 8.0, "mainwing_taper": 0.5,
	"mainwing_twist": 0.0, "mainwing_sweepback": 0.0,
	"mainwing_dihedral": 0.0, "mainwing_incidence": 0.0,
	"flap_start": [0.1], "flap_end": [0.3],
	"flap_angle": [10.0], "flap_c_ratio": [0.2],
	"horizontal_volume_ratio": 0.5, "horizontal_area_ratio": 0.2,
	"horizontal_AR": 4.0, "horizontal_taper": 0.6, "horizontal_ThickChord": 0.12,
	"vertical_volume_ratio": 0.04, "vertical_taper": 0.6, "vertical_ThickChord": 0.12
}`

func TestLoadAircraft(t *testing.T) {
	path := writeTempFile(t, "design.json", testDesignJSON)

	ac, err := LoadAircraft(path, nil)
	if err != nil {
		t.Fatalf("LoadAircraft: %v", err)
	}

	// The loaded design must fingerprint to the pinned reference vector.
	fp, err := ac.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if want := uint64(0xe421d2505223595c); fp != want {
		t.Errorf("fingerprint = %016x, want %016x", fp, want)
	}
}

func TestLoadAircraftRejectsUnknownKey(t *testing.T) {
	bad := strings.Replace(testDesignJSON, `"mainwing_span"`, `"mainwing_spam"`, 1)
	path := writeTempFile(t, "design.json", bad)

	if _, err := LoadAircraft(path, nil); err == nil {
		t.Errorf("misspelled design key was accepted")
	}
}

func TestLoadAircraftRejectsFlapMismatch(t *testing.T) {
	bad := strings.Replace(testDesignJSON, `"flap_start": [0.1]`, `"flap_start": [0.1, 0.4]`, 1)
	path := writeTempFile(t, "design.json", bad)

	if _, err := LoadAircraft(path, nil); !errors.Is(err, airframe.ErrLengthMismatch) {
		t.Errorf("got error %v, want ErrLengthMismatch", err)
	}
}
