package gocube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaceTablesAreExhaustive(t *testing.T) {
	require.Len(t, Faces, 6)
	for _, f := range Faces {
		assert.True(t, f.Valid(), f)
		assert.NotPanics(t, func() { f.Coord() }, "Coord(%s)", f)
		assert.NotPanics(t, func() { f.QuarterTurn() }, "QuarterTurn(%s)", f)
		assert.Equal(t, f, f.Opposite().Opposite(), "opposite of opposite of %s", f)
		assert.NotEqual(t, f, f.Opposite())
	}
	assert.False(t, Face("X").Valid())
	assert.Panics(t, func() { Face("X").Coord() })
}

// Every corner touches one face of each opposite pair; summing coordinates
// over its three faces must give a distinct slot in [0,8).
func TestFaceCoordsNumberCornersUniquely(t *testing.T) {
	seen := map[int]bool{}
	for _, ud := range []Face{FaceU, FaceD} {
		for _, fb := range []Face{FaceF, FaceB} {
			for _, rl := range []Face{FaceR, FaceL} {
				slot := ud.Coord() + fb.Coord() + rl.Coord()
				assert.GreaterOrEqual(t, slot, 0)
				assert.Less(t, slot, NumCorners)
				assert.False(t, seen[slot], "slot %d used twice", slot)
				seen[slot] = true
			}
		}
	}
	assert.Equal(t, AnchorSlot, FaceD.Coord()+FaceB.Coord()+FaceL.Coord())
}

// A quarter turn only moves the four corners that touch the face.
func TestQuarterTurnsMoveOwnCorners(t *testing.T) {
	touches := func(slot int, f Face) bool {
		switch f {
		case FaceU, FaceF, FaceR:
			return slot&f.Opposite().Coord() == 0
		default:
			return slot&f.Coord() != 0
		}
	}
	for _, f := range Faces {
		p := f.QuarterTurn()
		cycles := p.Cycles()
		require.Len(t, cycles, 1, f)
		require.Len(t, cycles[0], 4, f)
		for _, slot := range cycles[0] {
			assert.True(t, touches(slot, f), "%s moves slot %d", f, slot)
		}
	}
}
