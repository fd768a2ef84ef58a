// mission/state.go
// Copyright(c) 2024-2025 DBF2025-SizingTool contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/math"
	"github.com/Gyeong-Rak/DBF2025-SizingTool-v2/util"

	"github.com/brunoga/deep"
)

// PlaneState is a snapshot of the simulated flight at one time instant.
// The simulation driver creates one state per timestep; a step never
// mutates the previous state in place but supersedes it with a new one,
// so states already handed out (e.g. to the state log) stay valid.
type PlaneState struct {
	Position     math.Vec3 `json:"position"`
	Velocity     math.Vec3 `json:"velocity"`
	Acceleration math.Vec3 `json:"acceleration"`

	Time float64 `json:"time"`

	Throttle float64 `json:"throttle"` // percent

	LoadFactor float64 `json:"load_factor"`
	AOA        float64 `json:"AOA"`

	ClimbPitchAngle float64 `json:"climb_pitch_angle"`
	BankAngle       float64 `json:"bank_angle"`

	Phase PhaseType `json:"phase"`

	BatteryCapacity float64 `json:"battery_capacity"`
	BatteryVoltage  float64 `json:"battery_voltage"`
	CurrentDraw     float64 `json:"current_draw"`
}

// Clone returns a deep copy of the state, the starting point for the next
// timestep.
func (s *PlaneState) Clone() *PlaneState {
	c := deep.MustCopy(*s)
	return &c
}

// Speed returns the magnitude of the velocity vector.
func (s *PlaneState) Speed() float64 {
	return math.Length3(s.Velocity)
}

// StateLog keeps the most recent states of a mission run for inspection
// and checkpointing; older states are discarded once the capacity is
// reached.
type StateLog struct {
	states *util.RingBuffer[PlaneState]
}

func NewStateLog(capacity int) *StateLog {
	return &StateLog{states: util.NewRingBuffer[PlaneState](capacity)}
}

func (sl *StateLog) Record(s *PlaneState) {
	sl.states.Add(*s)
}

func (sl *StateLog) Size() int {
	return sl.states.Size()
}

// States returns the retained states, oldest first.
func (sl *StateLog) States() []PlaneState {
	states := make([]PlaneState, sl.states.Size())
	for i := range states {
		states[i] = sl.states.Get(i)
	}
	return states
}

// Latest returns the most recently recorded state, or nil if none have
// been recorded.
func (sl *StateLog) Latest() *PlaneState {
	n := sl.states.Size()
	if n == 0 {
		return nil
	}
	s := sl.states.Get(n - 1)
	return &s
}
