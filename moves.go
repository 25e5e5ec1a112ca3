package gocube

// Predefined moves for convenience.
//
// Example:
//
//	t := gocube.NewTracker()
//	t.Apply(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
var (
	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}
	UPrime = Move{Face: FaceU, Turn: CCW}
	U2     = Move{Face: FaceU, Turn: Double}

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW}
	FPrime = Move{Face: FaceF, Turn: CCW}
	F2     = Move{Face: FaceF, Turn: Double}

	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}
	RPrime = Move{Face: FaceR, Turn: CCW}
	R2     = Move{Face: FaceR, Turn: Double}

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW}
	DPrime = Move{Face: FaceD, Turn: CCW}
	D2     = Move{Face: FaceD, Turn: Double}

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW}
	BPrime = Move{Face: FaceB, Turn: CCW}
	B2     = Move{Face: FaceB, Turn: Double}

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}
	LPrime = Move{Face: FaceL, Turn: CCW}
	L2     = Move{Face: FaceL, Turn: Double}
)

// SexyMove is R U R' U'.
var SexyMove = []Move{R, U, RPrime, UPrime}

// Algorithm is a named move sequence together with the packed corner state
// it produces from a solved cube.
type Algorithm struct {
	Name    string
	Formula []Move
	State   uint64
}

// Known last-layer corner algorithms using only U, F and R.
var (
	// SwapFronts exchanges UFR and UFL, twisting both.
	SwapFronts = Algorithm{
		Name:    "swap fronts",
		Formula: []Move{U2, F, U, R2, U, R, F, UPrime, F, R, F},
		State:   0x0706050403021009,
	}

	// CornerCycleCCW cycles UFR, UFL and UBR counter-clockwise.
	CornerCycleCCW = Algorithm{
		Name:    "three corner counter-clockwise",
		Formula: []Move{F2, R, U, F2, UPrime, F, R, F, RPrime, F},
		State:   0x0706050403000201,
	}

	// CornerCycleCW cycles UFR, UFL and UBR clockwise.
	CornerCycleCW = Algorithm{
		Name:    "three corner clockwise",
		Formula: []Move{R, U, R, FPrime, R, F, R2, F, U, F2},
		State:   0x0706050403010002,
	}
)

// Algorithms lists the known algorithms.
var Algorithms = []Algorithm{SwapFronts, CornerCycleCCW, CornerCycleCW}
