package gocube

import (
	"testing"
)

func TestNewTrackerIsSolved(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Error("New tracker should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMove(R)
	if tr.IsSolved() {
		t.Error("Corners should not be solved after R move")
	}
}

func TestRRRR_ReturnsToSolved_AllFaces(t *testing.T) {
	for _, face := range Faces {
		tr := NewTracker()
		m := Move{Face: face, Turn: CW}
		tr.Apply(m, m, m, m)
		if !tr.IsSolved() {
			t.Errorf("%v x 4 should return to solved, got %v", face, tr.Perm())
		}
	}
}

func TestR2R2_ReturnsToSolved(t *testing.T) {
	tr := NewTracker()
	tr.Apply(R2, R2)
	if !tr.IsSolved() {
		t.Errorf("R2 R2 should return to solved, got %v", tr.Perm())
	}
}

func TestMoveThenInverse_ReturnsToSolved(t *testing.T) {
	for _, face := range Faces {
		for _, turn := range []Turn{CW, CCW, Double} {
			m := Move{Face: face, Turn: turn}
			tr := NewTracker()
			tr.Apply(m, m.Inverse())
			if !tr.IsSolved() {
				t.Errorf("%s %s should return to solved", m, m.Inverse())
			}
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	tr := NewTracker()
	tr.Apply(SexyMove...)
	if got := tr.Perm().String(); got != "(0 4)(2 3)" {
		t.Errorf("R U R' U' corners = %s, want (0 4)(2 3)", got)
	}

	tr.Reset()
	for i := 0; i < 6; i++ {
		tr.Apply(SexyMove...)
	}
	if !tr.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(tr.Perm())
	}
}

func TestApplyNotation(t *testing.T) {
	tr := NewTracker()
	if err := tr.ApplyNotation("R U R' U'"); err != nil {
		t.Fatalf("ApplyNotation failed: %v", err)
	}
	if FormatMoves(tr.Moves()) != "R U R' U'" {
		t.Errorf("Moves() = %q", FormatMoves(tr.Moves()))
	}

	if err := tr.ApplyNotation("R X"); err == nil {
		t.Error("ApplyNotation should reject unknown faces")
	}
}

func TestAlgorithmsProduceTheirStates(t *testing.T) {
	for _, alg := range Algorithms {
		tr := NewTracker()
		tr.Apply(alg.Formula...)

		state, err := Decode(alg.State)
		if err != nil {
			t.Fatalf("%s: decode failed: %v", alg.Name, err)
		}
		positions, err := state.Positions()
		if err != nil {
			t.Fatalf("%s: positions failed: %v", alg.Name, err)
		}
		if positions != tr.Cubies() {
			t.Errorf("%s: formula leaves cubies %v, state says %v", alg.Name, tr.Cubies(), positions)
		}
	}
}
