package gocube

import "errors"

// Sentinel errors for the gocube package.
var (
	// Notation and model errors
	ErrInvalidNotation    = errors.New("gocube: invalid move notation")
	ErrInvalidPermutation = errors.New("gocube: invalid permutation")
	ErrInvalidFaceSet     = errors.New("gocube: invalid face set")
	ErrInvalidState       = errors.New("gocube: invalid corner state")

	// Search errors
	ErrNotFound        = errors.New("gocube: target not reachable from identity")
	ErrOptionViolation = errors.New("gocube: invalid explorer option")

	// Label validation errors
	ErrWrongCornerCount = errors.New("gocube: wrong corner count")
	ErrWrongLabelLength = errors.New("gocube: wrong label length")
	ErrWrongColorCount  = errors.New("gocube: wrong color count")

	// Inference consistency errors
	ErrAmbiguousOpposite       = errors.New("gocube: inconsistent cube: ambiguous or contradictory opposite")
	ErrPositionsNotPermutation = errors.New("gocube: positions not a permutation")
	ErrAnchorMisplaced         = errors.New("gocube: anchor corner not in expected slot")
	ErrNoOrientationColor      = errors.New("gocube: corner has no orientation-determining color")
	ErrOrientationAmbiguous    = errors.New("gocube: corner has more than one orientation-determining color")
)
