package gocube

import (
	"fmt"
	"sort"
	"strings"
)

// Anchor faces, in sticker order of the last label.
var anchorFaces = [3]Face{FaceD, FaceL, FaceB}

// FaceAssignment maps each sticker color to the face it belongs to.
type FaceAssignment map[byte]Face

// ColorOf returns the color assigned to face f.
func (fa FaceAssignment) ColorOf(f Face) (byte, bool) {
	for c, face := range fa {
		if face == f {
			return c, true
		}
	}
	return 0, false
}

// OrientationColors returns the colors on the U and D faces, U first.
func (fa FaceAssignment) OrientationColors() []byte {
	var out []byte
	for _, f := range []Face{FaceU, FaceD} {
		if c, ok := fa.ColorOf(f); ok {
			out = append(out, c)
		}
	}
	return out
}

// String lists the assignment in face order, e.g. "U=W F=O R=G D=Y B=R L=B".
func (fa FaceAssignment) String() string {
	parts := make([]string, 0, len(Faces))
	for _, f := range Faces {
		if c, ok := fa.ColorOf(f); ok {
			parts = append(parts, fmt.Sprintf("%s=%c", f, c))
		}
	}
	return strings.Join(parts, " ")
}

// ValidateLabels checks the structure of a label set: eight labels of three
// stickers each, over exactly six colors. It returns the colors sorted.
func ValidateLabels(labels []string) ([]byte, error) {
	if len(labels) != NumCorners {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrWrongCornerCount, NumCorners, len(labels))
	}
	set := make(map[byte]bool)
	for i, label := range labels {
		if len(label) != 3 {
			return nil, fmt.Errorf("%w: corner %d %q has %d stickers", ErrWrongLabelLength, i, label, len(label))
		}
		for j := 0; j < len(label); j++ {
			set[label[j]] = true
		}
	}
	colors := make([]byte, 0, len(set))
	for c := range set {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })
	if len(colors) != len(Faces) {
		return nil, fmt.Errorf("%w: want %d, got %d (%s)", ErrWrongColorCount, len(Faces), len(colors), colors)
	}
	return colors, nil
}

// InferFaces derives the color of every face from the labels.
//
// The last label is taken as the anchor: its stickers are assigned to D, L
// and B in order. The opposite of each anchor color is the one color that
// never shares a corner with it.
func InferFaces(labels []string) (FaceAssignment, error) {
	colors, err := ValidateLabels(labels)
	if err != nil {
		return nil, err
	}

	anchor := labels[len(labels)-1]
	fa := make(FaceAssignment, len(Faces))
	for i, f := range anchorFaces {
		c := anchor[i]
		if _, dup := fa[c]; dup {
			return nil, fmt.Errorf("%w: anchor corner %q repeats color %c", ErrAmbiguousOpposite, anchor, c)
		}
		fa[c] = f
	}

	for i, f := range anchorFaces {
		c := anchor[i]
		candidates := make(map[byte]bool, len(colors))
		for _, x := range colors {
			candidates[x] = true
		}
		for _, label := range labels {
			if strings.IndexByte(label, c) < 0 {
				continue
			}
			for j := 0; j < len(label); j++ {
				delete(candidates, label[j])
			}
		}
		if len(candidates) != 1 {
			return nil, fmt.Errorf("%w: color %c has %d candidates %s", ErrAmbiguousOpposite, c, len(candidates), sortedKeys(candidates))
		}
		var opp byte
		for x := range candidates {
			opp = x
		}
		if prev, taken := fa[opp]; taken {
			return nil, fmt.Errorf("%w: color %c opposite %c already on %s", ErrAmbiguousOpposite, c, opp, prev)
		}
		fa[opp] = f.Opposite()
	}
	return fa, nil
}

// InferFromLabels reconstructs a corner state from eight corner labels.
//
// Each label names the three sticker colors of one physical corner, in
// corner-index order. The first sticker faces up or down and the rest are
// read counter-clockwise. The result keeps label order and is ready for
// Encode.
//
// The last label MUST describe the corner that already sits in slot 7
// (DBL) with its down sticker facing down. This is assumed, not detected:
// if another corner is supplied last the inference can still succeed and
// return a self-consistent state that does not match the physical cube.
// The only check is that the anchor lands back in slot 7, which it always
// does for a consistent label set.
func InferFromLabels(labels []string) (CornerState, error) {
	fa, err := InferFaces(labels)
	if err != nil {
		return CornerState{}, err
	}

	var s CornerState
	seen := [NumCorners]bool{}
	positions := make([]int, len(labels))
	for i, label := range labels {
		pos := 0
		for j := 0; j < len(label); j++ {
			pos += fa[label[j]].Coord()
		}
		positions[i] = pos
	}
	for _, pos := range positions {
		if pos >= NumCorners || seen[pos] {
			return CornerState{}, fmt.Errorf("%w: %v", ErrPositionsNotPermutation, positions)
		}
		seen[pos] = true
	}
	if anchor := positions[len(positions)-1]; anchor != AnchorSlot {
		return CornerState{}, fmt.Errorf("%w: anchor in slot %d, want %d", ErrAnchorMisplaced, anchor, AnchorSlot)
	}

	ocolors := string(fa.OrientationColors())
	for i, label := range labels {
		orient := -1
		for j := 0; j < len(label); j++ {
			if strings.IndexByte(ocolors, label[j]) < 0 {
				continue
			}
			if orient >= 0 {
				return CornerState{}, fmt.Errorf("%w: corner %d %q", ErrOrientationAmbiguous, i, label)
			}
			orient = j
		}
		if orient < 0 {
			return CornerState{}, fmt.Errorf("%w: corner %d %q lacks %s", ErrNoOrientationColor, i, label, ocolors)
		}
		s[i] = Corner{Position: uint8(positions[i]), Orientation: uint8(orient)}
	}
	return s, nil
}

func sortedKeys(m map[byte]bool) string {
	keys := make([]byte, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return "[" + string(keys) + "]"
}
