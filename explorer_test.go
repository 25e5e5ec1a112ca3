package gocube

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUFRExplorer(t *testing.T, opts ...Option) *Explorer {
	t.Helper()
	moves, err := MoveSetFromFaces(FaceU, FaceF, FaceR)
	require.NoError(t, err)
	ex, err := NewExplorer(moves, opts...)
	require.NoError(t, err)
	return ex
}

func TestNewExplorerOptions(t *testing.T) {
	moves, err := MoveSetFromFaces(FaceU)
	require.NoError(t, err)

	_, err = NewExplorer(moves, WithSampleSize(-1))
	assert.ErrorIs(t, err, ErrOptionViolation)

	_, err = NewExplorer(moves, WithMaxDepth(-2))
	assert.ErrorIs(t, err, ErrOptionViolation)

	_, err = NewExplorer(MoveSet{})
	assert.ErrorIs(t, err, ErrInvalidFaceSet)
}

func TestShortestPath_Identity(t *testing.T) {
	ex := newUFRExplorer(t)
	route, err := ex.ShortestPath(Identity())
	require.NoError(t, err)
	assert.Empty(t, route)
	assert.Equal(t, "", route.String())
}

func TestShortestPath_SingleGenerator(t *testing.T) {
	ex := newUFRExplorer(t)
	for _, g := range ex.Moves().Generators() {
		route, err := ex.ShortestPath(g.Perm)
		require.NoError(t, err, g.Label)
		assert.Equal(t, []string{g.Label}, route.Labels())
	}
}

func TestShortestPath_Transposition(t *testing.T) {
	ex := newUFRExplorer(t)
	target := MustPermFromCycles([]int{0, 1})

	route, err := ex.ShortestPath(target)
	require.NoError(t, err)
	assert.Equal(t, "U F U' F' R' F' R", route.String())
	assert.Equal(t, target, route.Perm())
}

// Equally short routes are resolved in generator order: R U R' U' and
// U R U' R' both give (0 4)(2 3), and U is tried before R.
func TestShortestPath_TieBreakFollowsGeneratorOrder(t *testing.T) {
	ex := newUFRExplorer(t)
	tr := NewTracker()
	tr.Apply(SexyMove...)

	route, err := ex.ShortestPath(tr.Perm())
	require.NoError(t, err)
	assert.Equal(t, "U R U' R'", route.String())
}

func TestShortestPath_NotFound(t *testing.T) {
	// U, F and R never move DBL
	ex := newUFRExplorer(t)
	_, err := ex.ShortestPath(MustPermFromCycles([]int{0, 7}))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestShortestPath_MaxDepth(t *testing.T) {
	ex := newUFRExplorer(t, WithMaxDepth(3))
	_, err := ex.ShortestPath(MustPermFromCycles([]int{0, 1}))
	assert.ErrorIs(t, err, ErrNotFound)

	route, err := ex.ShortestPath(FaceU.QuarterTurn().Then(FaceU.QuarterTurn()))
	require.NoError(t, err)
	assert.Equal(t, "U U", route.String())
}

func TestShortestPath_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ex := newUFRExplorer(t, WithContext(ctx))

	_, err := ex.ShortestPath(MustPermFromCycles([]int{0, 1}))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = ex.Diameter()
	assert.ErrorIs(t, err, context.Canceled)
}

// Brute force every generator sequence up to length 4 and check that no
// sequence reaches a state faster than ShortestPath claims.
func TestShortestPath_Optimal(t *testing.T) {
	ex := newUFRExplorer(t)
	gens := ex.Moves().Generators()

	best := map[Perm]int{Identity(): 0}
	frontier := []Perm{Identity()}
	for depth := 1; depth <= 4; depth++ {
		var next []Perm
		for _, p := range frontier {
			for _, g := range gens {
				n := p.Then(g.Perm)
				if _, ok := best[n]; !ok {
					best[n] = depth
				}
				next = append(next, n)
			}
		}
		frontier = next
	}

	for target, length := range best {
		route, err := ex.ShortestPath(target)
		require.NoError(t, err)
		assert.Len(t, route, length, "target %s", target)
		assert.Equal(t, target, route.Perm())
	}
}

func TestDiameter_SingleFace(t *testing.T) {
	moves, err := MoveSetFromFaces(FaceU)
	require.NoError(t, err)
	ex, err := NewExplorer(moves)
	require.NoError(t, err)

	layering, err := ex.Diameter()
	require.NoError(t, err)
	assert.Equal(t, 2, layering.Diameter)
	assert.Equal(t, []int{1, 2, 1}, layering.Counts())
	assert.Equal(t, 4, layering.Total)
}

func TestDiameter_UFR(t *testing.T) {
	var reported []int
	ex := newUFRExplorer(t, WithOnLayer(func(distance, count int) {
		assert.Equal(t, len(reported), distance)
		reported = append(reported, count)
	}))

	layering, err := ex.Diameter()
	require.NoError(t, err)

	want := []int{1, 6, 27, 114, 450, 1258, 1877, 1142, 165}
	assert.Equal(t, 8, layering.Diameter)
	assert.Equal(t, want, layering.Counts())
	assert.Equal(t, want, reported)
	assert.Equal(t, 5040, layering.Total)

	// layer 1 holds the generators in generator order
	require.Len(t, layering.Layers[1].Samples, 5)
	gens := ex.Moves().Generators()
	for i, s := range layering.Layers[1].Samples {
		assert.Equal(t, gens[i].Perm, s)
	}
	assert.Equal(t, []Perm{Identity()}, layering.Layers[0].Samples)
}

func TestDiameter_AllFaces(t *testing.T) {
	moves, err := MoveSetFromFaces(Faces...)
	require.NoError(t, err)
	ex, err := NewExplorer(moves, WithSampleSize(0))
	require.NoError(t, err)

	layering, err := ex.Diameter()
	require.NoError(t, err)
	assert.Equal(t, 40320, layering.Total)
	assert.Equal(t, 8, layering.Diameter)
	assert.Equal(t, []int{1, 12, 114, 876, 4931, 12972, 15066, 6300, 48}, layering.Counts())
	for _, layer := range layering.Layers {
		assert.Empty(t, layer.Samples)
	}
}

func TestDiameter_Deterministic(t *testing.T) {
	first, err := newUFRExplorer(t).Diameter()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := newUFRExplorer(t).Diameter()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDiameter_MaxDepthTruncates(t *testing.T) {
	layering, err := newUFRExplorer(t, WithMaxDepth(3)).Diameter()
	require.NoError(t, err)
	assert.Equal(t, 3, layering.Diameter)
	assert.Equal(t, []int{1, 6, 27, 114}, layering.Counts())
}

// Every neighbor of every reached state is itself reached.
func TestDiameter_Closure(t *testing.T) {
	ex := newUFRExplorer(t, WithSampleSize(5040))
	layering, err := ex.Diameter()
	require.NoError(t, err)

	reached := map[Perm]bool{}
	for _, layer := range layering.Layers {
		for _, s := range layer.Samples {
			reached[s] = true
		}
	}
	require.Len(t, reached, layering.Total)

	for s := range reached {
		for _, g := range ex.Moves().Generators() {
			assert.True(t, reached[s.Then(g.Perm)], "%s * %s not reached", s, g.Label)
		}
	}
}
