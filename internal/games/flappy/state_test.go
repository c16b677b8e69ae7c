package flappy

import "testing"

func TestMachineTransitions(t *testing.T) {
	var m Machine

	if m.Phase() != PhaseIdle {
		t.Fatalf("Zero machine phase = %v, expected idle", m.Phase())
	}
	if m.End() {
		t.Error("End from idle should be refused")
	}
	if m.Phase() != PhaseIdle {
		t.Errorf("Phase after refused End = %v, expected idle", m.Phase())
	}

	if !m.Start() {
		t.Fatal("Start from idle should succeed")
	}
	if !m.Running() {
		t.Error("Machine should be running after Start")
	}
	if m.Start() {
		t.Error("Start while running should be refused")
	}

	if !m.End() {
		t.Fatal("End while running should succeed")
	}
	if m.End() {
		t.Error("Second End should be refused")
	}
	if m.Phase() != PhaseOver {
		t.Errorf("Phase = %v, expected over", m.Phase())
	}

	if !m.Start() {
		t.Fatal("Start from over should succeed")
	}
	if m.Phase() != PhaseRunning {
		t.Errorf("Phase after restart = %v, expected running", m.Phase())
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseIdle, "idle"},
		{PhaseRunning, "running"},
		{PhaseOver, "over"},
		{Phase(42), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.phase.String(); got != tc.expected {
			t.Errorf("Phase(%d).String() = %q, expected %q", tc.phase, got, tc.expected)
		}
	}
}
