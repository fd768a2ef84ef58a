// config/config.go
// Copyright(c) 2024-2025 DBF2025-SizingTool contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package config

import (
	"fmt"
	"os"

	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/airframe"
	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/log"
	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/mission"
	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/util"
)

// PhysicalConstants holds the ambient physical values the analysis
// formulas consume.
type PhysicalConstants struct {
	Gravity      float64 `json:"g"`       // m/s^2
	AirDensity   float64 `json:"rho"`     // kg/m^3
	AirViscosity float64 `json:"mu"`      // kg/(m*s)
	SpeedOfSound float64 `json:"a_sound"` // m/s
}

// Presets is the table of preset values used to populate Aircraft and
// mission Parameters fields that the optimizer does not vary: structural
// masses, material densities, and the mission defaults.
type Presets struct {
	Constants PhysicalConstants `json:"constants"`

	MassFuselage float64 `json:"m_fuselage"` // kg
	WingDensity  float64 `json:"wing_density"`
	SparDensity  float64 `json:"spar_density"`

	Mission mission.Parameters `json:"mission"`
}

// DefaultPresets returns the built-in preset table; a presets file
// overrides it wholesale.
func DefaultPresets() Presets {
	return Presets{
		Constants: PhysicalConstants{
			Gravity:      9.81,
			AirDensity:   1.2,
			AirViscosity: 1.81e-5,
			SpeedOfSound: 340.3,
		},
		MassFuselage: 1.0,
		WingDensity:  0.1,
		SparDensity:  0.2,
		Mission: mission.Parameters{
			MaxClimbAngle:      40,
			MaxSpeed:           40,
			MaxLoadFactor:      4,
			FlapTransitionAlt:  5,
			ThrottleTakeoff:    0.9,
			ThrottleClimb:      0.9,
			ThrottleTurn:       0.7,
			ThrottleLevel:      0.6,
			MaxBatteryCapacity: 2250,
		},
	}
}

// LoadPresets reads a preset table from a JSON file. The file is checked
// for duplicate keys and typechecked against the Presets schema before
// decoding, so a misspelled entry is an error rather than a silently
// ignored one.
func LoadPresets(path string, lg *log.Logger) (Presets, error) {
	presets := DefaultPresets()

	contents, err := os.ReadFile(path)
	if err != nil {
		return presets, err
	}

	if err := checkConfigJSON[Presets](contents, lg); err != nil {
		return presets, err
	}
	if err := util.UnmarshalJSONBytes(contents, &presets); err != nil {
		return presets, err
	}

	lg.Infof("%s: loaded presets", path)
	return presets, nil
}

// LoadAircraft constructs an Aircraft from a JSON design file and
// validates it. This is the configuration-loader entry point; designs
// coming from the optimizer are constructed directly instead.
func LoadAircraft(path string, lg *log.Logger) (*airframe.Aircraft, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := checkConfigJSON[airframe.Aircraft](contents, lg); err != nil {
		return nil, err
	}

	var ac airframe.Aircraft
	if err := util.UnmarshalJSONBytes(contents, &ac); err != nil {
		return nil, err
	}
	if err := ac.Validate(); err != nil {
		return nil, err
	}

	lg.Infof("%s: loaded aircraft design", path)
	return &ac, nil
}

// checkConfigJSON rejects duplicate keys and entries that don't match
// type T's schema.
func checkConfigJSON[T any](contents []byte, lg *log.Logger) error {
	if dups := util.FindDuplicateJSONKeys(contents); len(dups) > 0 {
		for _, d := range dups {
			lg.Errorf("duplicate JSON key %q at %q", d.Key, d.Path)
		}
		return fmt.Errorf("%q: duplicate JSON key", dups[0].Key)
	}

	var e util.ErrorLogger
	util.CheckJSON[T](contents, &e)
	if e.HaveErrors() {
		e.PrintErrors(lg)
		return fmt.Errorf("invalid configuration: %s", e.String())
	}
	return nil
}
