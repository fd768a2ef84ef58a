// mission/mission.go
// Copyright(c) 2024-2025 DBF2025-SizingTool contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import "fmt"

// PhaseType identifies a mission phase. The ordinal values are stable
// identifiers: they appear in persisted PlaneStates and must not be
// renumbered.
type PhaseType int

const (
	PhaseTakeoff PhaseType = 0
	PhaseClimb   PhaseType = 1
	PhaseLevel   PhaseType = 2
	PhaseTurn    PhaseType = 3
)

func (p PhaseType) String() string {
	switch p {
	case PhaseTakeoff:
		return "TAKEOFF"
	case PhaseClimb:
		return "CLIMB"
	case PhaseLevel:
		return "LEVEL_FLIGHT"
	case PhaseTurn:
		return "TURN"
	default:
		return fmt.Sprintf("PhaseType(%d)", int(p))
	}
}

// ParsePhaseType returns the PhaseType named by s.
func ParsePhaseType(s string) (PhaseType, error) {
	for _, p := range []PhaseType{PhaseTakeoff, PhaseClimb, PhaseLevel, PhaseTurn} {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%q: unknown mission phase", s)
}

// Parameters bundles the mission-level tuning values for one simulation
// run: flight-envelope limits, the altitude at which flaps transition,
// per-phase throttle settings, and the battery budget. Built once per
// mission and not mutated afterward.
type Parameters struct {
	MaxClimbAngle float64 `json:"max_climb_angle"`
	MaxSpeed      float64 `json:"max_speed"`
	MaxLoadFactor float64 `json:"max_load_factor"`

	// Altitude below which the flaps stay in their takeoff setting.
	FlapTransitionAlt float64 `json:"h_flap_transition"`

	ThrottleTakeoff float64 `json:"throttle_takeoff"`
	ThrottleClimb   float64 `json:"throttle_climb"`
	ThrottleTurn    float64 `json:"throttle_turn"`
	ThrottleLevel   float64 `json:"throttle_level"`

	MaxBatteryCapacity float64 `json:"max_battery_capacity"`
}

// Config describes one phase of a mission profile: the phase type, its
// ordered numeric arguments (whose interpretation is up to the simulation
// driver), and an optional direction label for turns.
type Config struct {
	Phase     PhaseType `json:"phase"`
	Args      []float64 `json:"args"`
	Direction string    `json:"direction,omitempty"`
}
