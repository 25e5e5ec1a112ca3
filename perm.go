package gocube

import (
	"fmt"
	"strconv"
	"strings"
)

// Perm is a permutation of the eight corner slots. p[i] is the slot that
// the piece in slot i moves to.
//
// Perm is a comparable value: two permutations are equal when their arrays
// are equal, so a Perm can be used directly as a map key.
type Perm [NumCorners]uint8

// Identity returns the permutation that moves nothing.
func Identity() Perm {
	var p Perm
	for i := range p {
		p[i] = uint8(i)
	}
	return p
}

// PermFromCycles builds a permutation from disjoint cycles in 0-based
// notation. The cycle {0, 1, 3, 2} sends 0 to 1, 1 to 3, 3 to 2 and 2 to 0.
func PermFromCycles(cycles ...[]int) (Perm, error) {
	p := Identity()
	seen := [NumCorners]bool{}
	for _, c := range cycles {
		for i, x := range c {
			if x < 0 || x >= NumCorners {
				return Perm{}, fmt.Errorf("%w: index %d out of range", ErrInvalidPermutation, x)
			}
			if seen[x] {
				return Perm{}, fmt.Errorf("%w: index %d repeated", ErrInvalidPermutation, x)
			}
			seen[x] = true
			p[x] = uint8(c[(i+1)%len(c)])
		}
	}
	return p, nil
}

// MustPermFromCycles is like PermFromCycles but panics on invalid cycles.
func MustPermFromCycles(cycles ...[]int) Perm {
	p, err := PermFromCycles(cycles...)
	if err != nil {
		panic(err)
	}
	return p
}

// PermFromSlice builds a permutation from an explicit image list.
func PermFromSlice(images []int) (Perm, error) {
	if len(images) != NumCorners {
		return Perm{}, fmt.Errorf("%w: need %d images, got %d", ErrInvalidPermutation, NumCorners, len(images))
	}
	var p Perm
	seen := [NumCorners]bool{}
	for i, x := range images {
		if x < 0 || x >= NumCorners {
			return Perm{}, fmt.Errorf("%w: image %d out of range", ErrInvalidPermutation, x)
		}
		if seen[x] {
			return Perm{}, fmt.Errorf("%w: image %d repeated", ErrInvalidPermutation, x)
		}
		seen[x] = true
		p[i] = uint8(x)
	}
	return p, nil
}

// ParsePerm parses cycle notation such as "(0 1 3 2)(4 5)" or "(0,1)".
// The empty string and "()" both denote the identity.
func ParsePerm(s string) (Perm, error) {
	s = strings.TrimSpace(s)
	var cycles [][]int
	for len(s) > 0 {
		if s[0] != '(' {
			return Perm{}, fmt.Errorf("%w: expected '(' in %q", ErrInvalidPermutation, s)
		}
		end := strings.IndexByte(s, ')')
		if end < 0 {
			return Perm{}, fmt.Errorf("%w: unclosed cycle in %q", ErrInvalidPermutation, s)
		}
		body := strings.ReplaceAll(s[1:end], ",", " ")
		var cycle []int
		for _, tok := range strings.Fields(body) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return Perm{}, fmt.Errorf("%w: bad index %q", ErrInvalidPermutation, tok)
			}
			cycle = append(cycle, n)
		}
		if len(cycle) > 0 {
			cycles = append(cycles, cycle)
		}
		s = strings.TrimSpace(s[end+1:])
	}
	return PermFromCycles(cycles...)
}

// Then returns the permutation "p, then q". It matches left-to-right
// products: applying moves a, b, c in order gives a.Then(b).Then(c).
func (p Perm) Then(q Perm) Perm {
	var r Perm
	for i := range p {
		r[i] = q[p[i]]
	}
	return r
}

// Inverse returns the permutation that undoes p.
func (p Perm) Inverse() Perm {
	var r Perm
	for i, x := range p {
		r[x] = uint8(i)
	}
	return r
}

// IsIdentity reports whether p moves nothing.
func (p Perm) IsIdentity() bool {
	return p == Identity()
}

// Image returns the slot that slot i is sent to.
func (p Perm) Image(i int) int {
	return int(p[i])
}

// Cycles returns the non-trivial cycles of p, each starting at its
// smallest element, ordered by that element.
func (p Perm) Cycles() [][]int {
	var cycles [][]int
	seen := [NumCorners]bool{}
	for start := range p {
		if seen[start] || int(p[start]) == start {
			continue
		}
		var c []int
		for x := start; !seen[x]; x = int(p[x]) {
			seen[x] = true
			c = append(c, x)
		}
		cycles = append(cycles, c)
	}
	return cycles
}

// IsEven reports whether p is an even permutation.
func (p Perm) IsEven() bool {
	transpositions := 0
	for _, c := range p.Cycles() {
		transpositions += len(c) - 1
	}
	return transpositions%2 == 0
}

// String returns p in 0-based cycle notation, "()" for the identity.
func (p Perm) String() string {
	cycles := p.Cycles()
	if len(cycles) == 0 {
		return "()"
	}
	var b strings.Builder
	for _, c := range cycles {
		b.WriteByte('(')
		for i, x := range c {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(x))
		}
		b.WriteByte(')')
	}
	return b.String()
}
