package gocube

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// SolvedState is the packed form of the solved cube: every corner in its
// own slot with orientation 0.
const SolvedState uint64 = 0x0706050403020100

// Corner is one corner's slot and twist.
type Corner struct {
	Position    uint8 // slot in [0,8)
	Orientation uint8 // in [0,8); physical cubes only use 0-2
}

// Byte returns the packed byte 8*orientation + position.
func (c Corner) Byte() byte {
	return NumOrient*c.Orientation + c.Position
}

// CornerState lists the eight corners in corner-index order.
type CornerState [NumCorners]Corner

// SolvedCorners returns the solved corner state.
func SolvedCorners() CornerState {
	var s CornerState
	for i := range s {
		s[i] = Corner{Position: uint8(i)}
	}
	return s
}

// Validate checks that positions form a permutation of the slots and that
// every orientation is below NumOrient.
func (s CornerState) Validate() error {
	seen := [NumCorners]bool{}
	for i, c := range s {
		if c.Position >= NumCorners {
			return fmt.Errorf("%w: corner %d position %d out of range", ErrInvalidState, i, c.Position)
		}
		if c.Orientation >= NumOrient {
			return fmt.Errorf("%w: corner %d orientation %d out of range", ErrInvalidState, i, c.Orientation)
		}
		if seen[c.Position] {
			return fmt.Errorf("%w: position %d used twice", ErrInvalidState, c.Position)
		}
		seen[c.Position] = true
	}
	return nil
}

// Encode packs the state into a little-endian uint64 whose byte i is
// 8*orientation[i] + position[i]. The state must be valid; Encode does not
// check it.
func Encode(s CornerState) uint64 {
	var b [NumCorners]byte
	for i, c := range s {
		b[i] = c.Byte()
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Decode unpacks a value produced by Encode.
func Decode(v uint64) (CornerState, error) {
	var b [NumCorners]byte
	binary.LittleEndian.PutUint64(b[:], v)

	var s CornerState
	for i, x := range b {
		s[i] = Corner{Position: x % NumOrient, Orientation: x / NumOrient}
	}
	if err := s.Validate(); err != nil {
		return CornerState{}, err
	}
	return s, nil
}

// Positions returns the permutation whose image of slot i is the cubie
// held in slot i. For a state reached from solved by moves whose corner
// permutation is p, this is p.Inverse().
func (s CornerState) Positions() (Perm, error) {
	images := make([]int, NumCorners)
	for i, c := range s {
		images[i] = int(c.Position)
	}
	return PermFromSlice(images)
}

// String prints one line per corner with its packed byte, orientation and
// cubie position.
func (s CornerState) String() string {
	var b strings.Builder
	for i, c := range s {
		fmt.Fprintf(&b, "Corner %d: %d (orient:%d, cubie:%d)\n", i, c.Byte(), c.Orientation, c.Position)
	}
	return b.String()
}
