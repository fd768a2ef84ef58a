// mission/mission_test.go
// Copyright(c) 2024-2025 DBF2025-SizingTool contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/math"
)

// Persisted states store phases by ordinal; these values are load-bearing
// and may not be renumbered.
func TestPhaseTypeOrdinals(t *testing.T) {
	testCases := []struct {
		phase   PhaseType
		ordinal int
		name    string
	}{
		{PhaseTakeoff, 0, "TAKEOFF"},
		{PhaseClimb, 1, "CLIMB"},
		{PhaseLevel, 2, "LEVEL_FLIGHT"},
		{PhaseTurn, 3, "TURN"},
	}

	for _, tc := range testCases {
		if int(tc.phase) != tc.ordinal {
			t.Errorf("%s: ordinal %d, want %d", tc.name, int(tc.phase), tc.ordinal)
		}
		if tc.phase.String() != tc.name {
			t.Errorf("PhaseType(%d).String() = %q, want %q", tc.ordinal, tc.phase.String(), tc.name)
		}
		if p, err := ParsePhaseType(tc.name); err != nil {
			t.Errorf("ParsePhaseType(%q): %v", tc.name, err)
		} else if p != tc.phase {
			t.Errorf("ParsePhaseType(%q) = %v, want %v", tc.name, p, tc.phase)
		}
	}

	if _, err := ParsePhaseType("LOITER"); err == nil {
		t.Errorf("ParsePhaseType accepted unknown phase")
	}
}

func TestPlaneStateDefaults(t *testing.T) {
	var s PlaneState
	if s.Position != (math.Vec3{}) || s.Velocity != (math.Vec3{}) || s.Acceleration != (math.Vec3{}) {
		t.Errorf("zero state has nonzero vectors: %+v", s)
	}
	if s.Time != 0 || s.Throttle != 0 || s.Phase != PhaseTakeoff {
		t.Errorf("zero state has nonzero scalars: %+v", s)
	}
}

func TestPlaneStateClone(t *testing.T) {
	s := &PlaneState{
		Position: math.Vec3{1, 2, 3},
		Velocity: math.Vec3{10, 0, 1},
		Time:     12.5,
		Phase:    PhaseClimb,
	}

	c := s.Clone()
	if !reflect.DeepEqual(s, c) {
		t.Fatalf("clone differs: %+v vs %+v", s, c)
	}

	c.Position[0] = 99
	c.Phase = PhaseTurn
	if s.Position[0] == 99 || s.Phase == PhaseTurn {
		t.Errorf("mutating clone changed the original state")
	}
}

func TestStateLog(t *testing.T) {
	sl := NewStateLog(3)
	if sl.Latest() != nil {
		t.Errorf("empty log returned a latest state")
	}

	for i := 0; i < 5; i++ {
		sl.Record(&PlaneState{Time: float64(i)})
	}

	if sl.Size() != 3 {
		t.Errorf("log size = %d, want 3", sl.Size())
	}

	states := sl.States()
	for i, want := range []float64{2, 3, 4} {
		if states[i].Time != want {
			t.Errorf("state %d time = %v, want %v", i, states[i].Time, want)
		}
	}

	if latest := sl.Latest(); latest == nil || latest.Time != 4 {
		t.Errorf("latest = %+v, want time 4", latest)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap := &Snapshot{
		Params: Parameters{
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
		Profile: []Config{
			{Phase: PhaseTakeoff, Args: []float64{100}},
			{Phase: PhaseClimb, Args: []float64{30, 0.9}},
			{Phase: PhaseTurn, Args: []float64{180}, Direction: "CCW"},
		},
		States: []PlaneState{
			{Time: 0, Phase: PhaseTakeoff},
			{Time: 1, Phase: PhaseClimb, Position: math.Vec3{0, 0, 10}, Velocity: math.Vec3{15, 0, 2}},
		},
	}

	path := filepath.Join(t.TempDir(), "mission.snap")
	if err := snap.SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	got, err := LoadSnapshotFile(path)
	if err != nil {
		t.Fatalf("LoadSnapshotFile: %v", err)
	}
	if !reflect.DeepEqual(got, snap) {
		t.Errorf("snapshot round trip mismatch:\ngot  %+v\nwant %+v", got, snap)
	}
}
