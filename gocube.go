// Package gocube explores the corner permutations of a 2x2x2 pocket cube
// and packs corner configurations into 64-bit values.
//
// # Corner Search
//
// Face turns act on the eight corner slots as permutations. An Explorer
// runs breadth-first searches over the Cayley graph those turns generate:
//
//	moves, _ := gocube.MoveSetFromFaces(gocube.FaceU, gocube.FaceF, gocube.FaceR)
//	ex, _ := gocube.NewExplorer(moves)
//
//	// Shortest route to a permutation
//	route, err := ex.ShortestPath(gocube.MustPermFromCycles([]int{0, 1}))
//	if errors.Is(err, gocube.ErrNotFound) {
//	    fmt.Println("IMPOSSIBLE")
//	}
//	fmt.Println(route) // U F U' F' R' F' R
//
//	// Distance layering ("God's number")
//	layering, _ := ex.Diameter()
//	fmt.Println(layering.Diameter, layering.Counts())
//
// Orientation is not part of the search; only slot permutations are.
//
// # Corner State Codec
//
// A CornerState holds a position and orientation per corner. Encode packs
// it so that byte i (little-endian) is 8*orientation + position:
//
//	gocube.Encode(gocube.SolvedCorners()) == gocube.SolvedState // 0x0706050403020100
//
// InferFromLabels rebuilds a CornerState from the sticker colors of the
// eight corners, working out which color belongs to which face. The last
// label must be the corner already solved in slot 7 (DBL).
//
//	state, err := gocube.InferFromLabels([]string{
//	    "OGW", "OWB", "WGR", "YGO", "WRB", "RGY", "BYO", "YBR",
//	})
//	packed := gocube.Encode(state) // 0x070d160304020910
package gocube
