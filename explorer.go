package gocube

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Explorer runs breadth-first searches over the Cayley graph spanned by a
// MoveSet, starting from the identity permutation.
//
// Traversal order is fixed: a FIFO queue, and generators tried in MoveSet
// order. Ties between equally short routes therefore always resolve the
// same way, and repeated runs produce identical results.
type Explorer struct {
	moves MoveSet
	cfg   *config
}

// NewExplorer creates an Explorer for the given generators.
func NewExplorer(moves MoveSet, opts ...Option) (*Explorer, error) {
	if moves.Len() == 0 {
		return nil, fmt.Errorf("%w: move set is empty", ErrInvalidFaceSet)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	return &Explorer{moves: moves, cfg: cfg}, nil
}

// Moves returns the explorer's generators.
func (e *Explorer) Moves() MoveSet {
	return e.moves
}

// Route is a sequence of generators. Applied left to right to the
// identity, it produces the search target.
type Route []Generator

// Labels returns the generator labels in order.
func (r Route) Labels() []string {
	labels := make([]string, len(r))
	for i, g := range r {
		labels[i] = g.Label
	}
	return labels
}

// Moves returns the route as face moves.
func (r Route) Moves() []Move {
	moves := make([]Move, len(r))
	for i, g := range r {
		moves[i] = g.Move
	}
	return moves
}

// Perm composes the route left to right.
func (r Route) Perm() Perm {
	p := Identity()
	for _, g := range r {
		p = p.Then(g.Perm)
	}
	return p
}

// String returns the labels separated by spaces.
func (r Route) String() string {
	return strings.Join(r.Labels(), " ")
}

// ShortestPath returns a minimum-length route from the identity to target.
// Among routes of equal length, the one found first in generator order wins.
// ErrNotFound is returned when target lies outside the generated subgroup
// (or beyond the configured max depth).
func (e *Explorer) ShortestPath(target Perm) (Route, error) {
	w := e.newWalker()
	found := false
	err := w.run(func(item queueItem) bool {
		found = item.state == target
		return found
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s under %s", ErrNotFound, target, e.moves)
	}
	return w.routeTo(target), nil
}

// Layer is the set of states at one BFS distance from the identity.
type Layer struct {
	Distance int
	Count    int
	Samples  []Perm // first states discovered at this distance
}

// Layering is the outcome of a full breadth-first sweep.
type Layering struct {
	// Diameter is the largest distance of any reachable state from the
	// identity (the "God's number" of the generator set).
	Diameter int
	Layers   []Layer
	Total    int
}

// Counts returns the population of each layer in distance order.
func (l *Layering) Counts() []int {
	counts := make([]int, len(l.Layers))
	for i, layer := range l.Layers {
		counts[i] = layer.Count
	}
	return counts
}

// Diameter sweeps the whole reachable subgroup and reports the population
// of every distance layer.
func (e *Explorer) Diameter() (*Layering, error) {
	w := e.newWalker()
	var layers []Layer
	err := w.run(func(item queueItem) bool {
		for len(layers) <= item.depth {
			if n := len(layers); n > 0 {
				e.cfg.onLayer(n-1, layers[n-1].Count)
			}
			layers = append(layers, Layer{Distance: len(layers)})
		}
		layer := &layers[item.depth]
		layer.Count++
		if len(layer.Samples) < e.cfg.sampleSize {
			layer.Samples = append(layer.Samples, item.state)
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	last := len(layers) - 1
	e.cfg.onLayer(last, layers[last].Count)

	return &Layering{
		Diameter: last,
		Layers:   layers,
		Total:    len(w.parent),
	}, nil
}

type queueItem struct {
	state Perm
	depth int
}

// link records how a state was first reached. gen is -1 for the identity.
type link struct {
	gen  int
	prev Perm
}

// walker holds the mutable state of one breadth-first run.
type walker struct {
	cfg    *config
	gens   []Generator
	queue  *linkedlistqueue.Queue
	parent map[Perm]link
}

func (e *Explorer) newWalker() *walker {
	return &walker{
		cfg:    e.cfg,
		gens:   e.moves.gens,
		queue:  linkedlistqueue.New(),
		parent: make(map[Perm]link),
	}
}

func (w *walker) enqueue(state Perm, depth int, l link) {
	w.parent[state] = l
	w.queue.Enqueue(queueItem{state: state, depth: depth})
}

// run drives the search until the queue drains, visit returns true, or the
// context is cancelled.
func (w *walker) run(visit func(queueItem) bool) error {
	w.enqueue(Identity(), 0, link{gen: -1})
	for !w.queue.Empty() {
		select {
		case <-w.cfg.ctx.Done():
			return w.cfg.ctx.Err()
		default:
		}

		v, _ := w.queue.Dequeue()
		item := v.(queueItem)
		if visit(item) {
			return nil
		}

		next := item.depth + 1
		if w.cfg.maxDepth > 0 && next > w.cfg.maxDepth {
			continue
		}
		for i, g := range w.gens {
			n := item.state.Then(g.Perm)
			if _, seen := w.parent[n]; seen {
				continue
			}
			w.enqueue(n, next, link{gen: i, prev: item.state})
		}
	}
	return nil
}

// routeTo walks predecessor links back to the identity.
func (w *walker) routeTo(target Perm) Route {
	var route Route
	for cur := target; ; {
		l := w.parent[cur]
		if l.gen < 0 {
			break
		}
		route = append(route, w.gens[l.gen])
		cur = l.prev
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}
