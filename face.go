package gocube

// Corner slots are numbered by the faces they touch:
//
//	index = 4*[D] + 2*[B] + 1*[L]
//
// so 0=UFR 1=UFL 2=UBR 3=UBL 4=DFR 5=DFL 6=DBR 7=DBL. The same numbering
// is used by the search engine and by the state codec.
const (
	NumCorners = 8
	NumOrient  = 8

	// AnchorSlot is DBL, the corner assumed solved during label inference.
	AnchorSlot = 7
)

// Coord returns the face's contribution to a corner slot index.
// U, F and R contribute nothing; their opposites each contribute one bit.
func (f Face) Coord() int {
	switch f {
	case FaceU, FaceF, FaceR:
		return 0
	case FaceD:
		return 0b100
	case FaceB:
		return 0b010
	case FaceL:
		return 0b001
	}
	panic("gocube: unknown face " + string(f))
}

// Opposite returns the face across the cube.
func (f Face) Opposite() Face {
	switch f {
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	case FaceR:
		return FaceL
	case FaceL:
		return FaceR
	}
	panic("gocube: unknown face " + string(f))
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	switch f {
	case FaceU, FaceF, FaceR, FaceD, FaceB, FaceL:
		return true
	}
	return false
}

// QuarterTurn returns the corner permutation of a clockwise quarter turn,
// viewed from the face itself.
func (f Face) QuarterTurn() Perm {
	switch f {
	case FaceU:
		return MustPermFromCycles([]int{0, 1, 3, 2})
	case FaceF:
		return MustPermFromCycles([]int{0, 4, 5, 1})
	case FaceR:
		return MustPermFromCycles([]int{0, 2, 6, 4})
	case FaceD:
		return MustPermFromCycles([]int{4, 6, 7, 5})
	case FaceB:
		return MustPermFromCycles([]int{2, 3, 7, 6})
	case FaceL:
		return MustPermFromCycles([]int{1, 5, 7, 3})
	}
	panic("gocube: unknown face " + string(f))
}
