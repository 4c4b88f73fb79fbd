package disjointset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlath-segment/disjointset"
)

// DisjointSetSuite groups behavioral tests for DisjointSet.
type DisjointSetSuite struct {
	suite.Suite
	d *disjointset.DisjointSet
}

func (s *DisjointSetSuite) SetupTest() {
	s.d = disjointset.New(6)
}

// TestInitialState: every element is its own root, rank 0, weight 0.
func (s *DisjointSetSuite) TestInitialState() {
	require.Equal(s.T(), 6, s.d.Len())
	require.Equal(s.T(), 6, s.d.Count())
	for i := 0; i < 6; i++ {
		require.Equal(s.T(), i, s.d.Find(i))
		require.Zero(s.T(), s.d.Rank(i))
		require.Zero(s.T(), s.d.Weight(i))
	}
}

// TestUnionJoins: after Union(x, y) the two share a root.
func (s *DisjointSetSuite) TestUnionJoins() {
	require.True(s.T(), s.d.Union(0, 1, 2.5))
	require.True(s.T(), s.d.Connected(0, 1))
	require.Equal(s.T(), s.d.Find(0), s.d.Find(1))
	require.False(s.T(), s.d.Connected(0, 2))
	require.Equal(s.T(), 5, s.d.Count())
}

// TestUnionNoOp: joining an already-joined pair changes nothing.
func (s *DisjointSetSuite) TestUnionNoOp() {
	s.d.Union(0, 1, 1)
	s.d.Union(1, 2, 1)
	before := s.d.Weight(0)

	require.False(s.T(), s.d.Union(2, 0, 100))
	require.Equal(s.T(), before, s.d.Weight(0), "weight unchanged on no-op")
	require.Equal(s.T(), 4, s.d.Count())
}

// TestRankTieBreak: equal ranks put y's root under x's root and bump rank.
func (s *DisjointSetSuite) TestRankTieBreak() {
	s.d.Union(0, 1, 0)
	require.Equal(s.T(), 0, s.d.Find(1))
	require.Equal(s.T(), 1, s.d.Rank(0))

	// rank(2)=0 < rank(0)=1: 2 goes under 0 even when passed first.
	s.d.Union(2, 0, 0)
	require.Equal(s.T(), 0, s.d.Find(2))
	require.Equal(s.T(), 1, s.d.Rank(0))
}

// TestWeightAccumulates: survivor weight = own + other + w.
func (s *DisjointSetSuite) TestWeightAccumulates() {
	s.d.Union(0, 1, 1.5) // {0,1}: 1.5
	s.d.Union(2, 3, 2.0) // {2,3}: 2.0
	s.d.Union(1, 3, 0.5) // {0,1,2,3}: 1.5 + 2.0 + 0.5
	require.InDelta(s.T(), 4.0, s.d.Weight(2), 1e-12)
	require.Zero(s.T(), s.d.Weight(4))
}

// TestRoots: Roots reports one root per element, consistent with Find.
func (s *DisjointSetSuite) TestRoots() {
	s.d.Union(4, 5, 0)
	roots := s.d.Roots()
	require.Len(s.T(), roots, 6)
	require.Equal(s.T(), roots[4], roots[5])
	for i, r := range roots {
		require.Equal(s.T(), s.d.Find(i), r)
	}
}

func TestDisjointSetSuite(t *testing.T) {
	suite.Run(t, new(DisjointSetSuite))
}

// TestFindIdempotentUnderRandomUnions checks find(find(x)) == find(x) and
// union-then-connected after a long random sequence of unions.
func TestFindIdempotentUnderRandomUnions(t *testing.T) {
	const n = 500
	r := rand.New(rand.NewSource(7))
	d := disjointset.New(n)

	for i := 0; i < 2*n; i++ {
		x, y := r.Intn(n), r.Intn(n)
		d.Union(x, y, r.Float64())
		require.True(t, d.Connected(x, y), "union(%d,%d) then connected", x, y)
	}

	roots := make(map[int]struct{})
	for x := 0; x < n; x++ {
		root := d.Find(x)
		require.Equal(t, root, d.Find(root), "idempotent find for %d", x)
		roots[root] = struct{}{}
	}
	require.Equal(t, len(roots), d.Count())
}

// TestEmpty: New(0) and negative sizes yield an empty set.
func TestEmpty(t *testing.T) {
	require.Zero(t, disjointset.New(0).Len())
	require.Zero(t, disjointset.New(-3).Count())
}
