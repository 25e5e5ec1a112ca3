package gocube

import (
	"fmt"
	"strings"
)

// Generator is one labeled edge type of the Cayley graph.
type Generator struct {
	Label string
	Move  Move
	Perm  Perm
}

// MoveSet is an ordered, fixed list of generators. Iteration order is the
// tie-break order of every search that uses the set.
type MoveSet struct {
	gens []Generator
}

// MoveSetFromFaces returns the generators for the enabled faces: first the
// clockwise turn of each face in the given order, then the counter-clockwise
// turn of each face in the same order. For U, F, R that is U F R U' F' R'.
func MoveSetFromFaces(faces ...Face) (MoveSet, error) {
	if len(faces) == 0 {
		return MoveSet{}, fmt.Errorf("%w: no faces enabled", ErrInvalidFaceSet)
	}
	seen := make(map[Face]bool, len(faces))
	for _, f := range faces {
		if !f.Valid() {
			return MoveSet{}, fmt.Errorf("%w: unknown face %q", ErrInvalidFaceSet, f)
		}
		if seen[f] {
			return MoveSet{}, fmt.Errorf("%w: face %s listed twice", ErrInvalidFaceSet, f)
		}
		seen[f] = true
	}

	gens := make([]Generator, 0, 2*len(faces))
	for _, turn := range []Turn{CW, CCW} {
		for _, f := range faces {
			m := Move{Face: f, Turn: turn}
			gens = append(gens, Generator{Label: m.Notation(), Move: m, Perm: m.Perm()})
		}
	}
	return MoveSet{gens: gens}, nil
}

// ParseFaces parses a face list such as "UFR" or "U,F,R".
func ParseFaces(s string) ([]Face, error) {
	var faces []Face
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', ',':
			continue
		}
		f, err := ParseFace(s[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFaceSet, err)
		}
		faces = append(faces, f)
	}
	return faces, nil
}

// Len returns the number of generators.
func (ms MoveSet) Len() int {
	return len(ms.gens)
}

// Generators returns a copy of the generators in iteration order.
func (ms MoveSet) Generators() []Generator {
	out := make([]Generator, len(ms.gens))
	copy(out, ms.gens)
	return out
}

// Lookup returns the generator with the given label.
func (ms MoveSet) Lookup(label string) (Generator, bool) {
	for _, g := range ms.gens {
		if g.Label == label {
			return g, true
		}
	}
	return Generator{}, false
}

// String returns the labels separated by spaces.
func (ms MoveSet) String() string {
	labels := make([]string, len(ms.gens))
	for i, g := range ms.gens {
		labels[i] = g.Label
	}
	return strings.Join(labels, " ")
}
