package gocube

// Tracker accumulates the corner permutation of a move sequence, starting
// from the solved cube.
type Tracker struct {
	perm  Perm
	moves []Move
}

// NewTracker creates a new tracker starting from a solved state.
func NewTracker() *Tracker {
	return &Tracker{perm: Identity()}
}

// Reset returns the tracker to the solved state.
func (t *Tracker) Reset() {
	t.perm = Identity()
	t.moves = nil
}

// ApplyMove applies a single move.
func (t *Tracker) ApplyMove(m Move) {
	t.perm = t.perm.Then(m.Perm())
	t.moves = append(t.moves, m)
}

// Apply applies moves in order.
func (t *Tracker) Apply(moves ...Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// ApplyNotation parses and applies a space-separated move sequence.
func (t *Tracker) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	t.Apply(moves...)
	return nil
}

// Perm returns the accumulated corner permutation.
func (t *Tracker) Perm() Perm {
	return t.perm
}

// Moves returns a copy of the applied moves.
func (t *Tracker) Moves() []Move {
	out := make([]Move, len(t.moves))
	copy(out, t.moves)
	return out
}

// IsSolved reports whether every corner is back in its own slot.
func (t *Tracker) IsSolved() bool {
	return t.perm.IsIdentity()
}

// Cubies returns, for each slot, the cubie it currently holds.
func (t *Tracker) Cubies() Perm {
	return t.perm.Inverse()
}
