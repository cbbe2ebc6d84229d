package routing

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lintang-b-s/cyclenav/pkg/costfunction"
	da "github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	baseE = 2_600_000.0
	baseN = 1_200_000.0
)

func addEdge(t *testing.T, b *da.GraphBuilder, from, to da.Index, length float64) {
	t.Helper()
	require.NoError(t, b.AddEdge(from, to, da.EdgeSpec{Length: length}))
}

// lineGraph: A -10- B -20- C along the east axis, edges in both directions.
func lineGraph(t *testing.T) *da.Graph {
	t.Helper()
	b := da.NewGraphBuilder()
	a := b.AddNode(geo.MustPointCh(baseE, baseN))
	bb := b.AddNode(geo.MustPointCh(baseE+10, baseN))
	c := b.AddNode(geo.MustPointCh(baseE+30, baseN))
	addEdge(t, b, a, bb, 10)
	addEdge(t, b, bb, a, 10)
	addEdge(t, b, bb, c, 20)
	addEdge(t, b, c, bb, 20)
	g, err := b.BuildGraph()
	require.NoError(t, err)
	return g
}

func TestBestRouteBetweenLine(t *testing.T) {
	rc := NewRouteComputer(lineGraph(t), costfunction.Uniform)

	r, found, err := rc.BestRouteBetween(0, 2)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 30.0, r.Length())

	edges := r.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, da.Index(0), edges[0].FromNodeId())
	assert.Equal(t, da.Index(1), edges[0].ToNodeId())
	assert.Equal(t, da.Index(1), edges[1].FromNodeId())
	assert.Equal(t, da.Index(2), edges[1].ToNodeId())
	assert.True(t, r.PointAt(0).Equal(geo.MustPointCh(baseE, baseN)))
	assert.True(t, r.PointAt(r.Length()).Equal(geo.MustPointCh(baseE+30, baseN)))

	back, found, err := rc.BestRouteBetween(2, 0)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, da.Index(2), back.Edges()[0].FromNodeId())
	assert.Equal(t, 30.0, back.Length())
}

func TestBestRouteBetweenInvalidNodes(t *testing.T) {
	rc := NewRouteComputer(lineGraph(t), costfunction.Uniform)

	_, _, err := rc.BestRouteBetween(1, 1)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)

	_, _, err = rc.BestRouteBetween(0, 3)
	assert.ErrorIs(t, err, util.ErrOutOfRange)

	_, _, err = rc.BestRouteBetween(da.INVALID_VERTEX_ID, 0)
	assert.ErrorIs(t, err, util.ErrOutOfRange)
}

func TestBestRouteBetweenDisconnected(t *testing.T) {
	b := da.NewGraphBuilder()
	a := b.AddNode(geo.MustPointCh(baseE, baseN))
	bb := b.AddNode(geo.MustPointCh(baseE+10, baseN))
	c := b.AddNode(geo.MustPointCh(baseE+20, baseN))
	d := b.AddNode(geo.MustPointCh(baseE+30, baseN))
	addEdge(t, b, a, bb, 10)
	addEdge(t, b, bb, a, 10)
	addEdge(t, b, c, d, 10)
	// one way from the second component into the first
	addEdge(t, b, c, bb, 10)
	g, err := b.BuildGraph()
	require.NoError(t, err)
	rc := NewRouteComputer(g, costfunction.Uniform)

	r, found, err := rc.BestRouteBetween(a, d)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, r)

	_, found, err = rc.BestRouteBetween(c, a)
	assert.NoError(t, err)
	assert.True(t, found)
}

func TestBestRouteBetweenAvoidsForbiddenEdges(t *testing.T) {
	b := da.NewGraphBuilder()
	a := b.AddNode(geo.MustPointCh(baseE, baseN))
	bb := b.AddNode(geo.MustPointCh(baseE+10, baseN+10))
	c := b.AddNode(geo.MustPointCh(baseE+20, baseN))
	addEdge(t, b, a, c, 20)  // edge 0
	addEdge(t, b, a, bb, 15) // edge 1
	addEdge(t, b, bb, c, 15) // edge 2
	g, err := b.BuildGraph()
	require.NoError(t, err)

	forbidDirect := costfunction.CostFunctionFunc(func(_, edgeId da.Index) float64 {
		if edgeId == 0 {
			return math.Inf(1)
		}
		return 1
	})
	r, found, err := NewRouteComputer(g, forbidDirect).BestRouteBetween(a, c)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 30.0, r.Length())
	assert.Len(t, r.Edges(), 2)

	direct, found, err := NewRouteComputer(g, costfunction.Uniform).BestRouteBetween(a, c)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 20.0, direct.Length())

	forbidAll := costfunction.CostFunctionFunc(func(_, _ da.Index) float64 {
		return math.Inf(1)
	})
	_, found, err = NewRouteComputer(g, forbidAll).BestRouteBetween(a, c)
	require.NoError(t, err)
	assert.False(t, found)
}

// randomGraph places nodes on the 1/16 m grid inside a single sector and links random pairs, without parallel
// edges. edge lengths are whole meters at least as long as the straight line.
func randomGraph(t *testing.T, rnd *rand.Rand, nodeCount, edgeCount int) *da.Graph {
	t.Helper()
	b := da.NewGraphBuilder()
	points := make([]geo.PointCh, nodeCount)
	for i := range points {
		points[i] = geo.MustPointCh(baseE+float64(rnd.Intn(16_000))/16, baseN+float64(rnd.Intn(16_000))/16)
		b.AddNode(points[i])
	}

	type pair struct{ from, to int }
	used := make(map[pair]bool)
	degree := make([]int, nodeCount)
	for len(used) < edgeCount {
		from, to := rnd.Intn(nodeCount), rnd.Intn(nodeCount)
		p := pair{from, to}
		if from == to || used[p] || degree[from] == da.MAX_OUT_DEGREE {
			continue
		}
		used[p] = true
		degree[from]++
		length := math.Ceil(points[from].DistanceTo(points[to])) + float64(rnd.Intn(200))
		addEdge(t, b, da.Index(from), da.Index(to), length)
	}
	g, err := b.BuildGraph()
	require.NoError(t, err)
	return g
}

type weightedEdge struct {
	from, to da.Index
	cost     float64
}

func graphEdges(t *testing.T, g *da.Graph, cf CostFunction) (map[[2]da.Index]float64, []weightedEdge) {
	t.Helper()
	costs := make(map[[2]da.Index]float64)
	var edges []weightedEdge
	for u := da.Index(0); int(u) < g.NodeCount(); u++ {
		degree, err := g.NodeOutDegree(u)
		require.NoError(t, err)
		for i := 0; i < degree; i++ {
			edgeId, err := g.NodeOutEdgeId(u, i)
			require.NoError(t, err)
			v, err := g.EdgeTargetNodeId(edgeId)
			require.NoError(t, err)
			length, err := g.EdgeLength(edgeId)
			require.NoError(t, err)
			cost := cf.CostFactor(u, edgeId) * length
			costs[[2]da.Index{u, v}] = cost
			edges = append(edges, weightedEdge{from: u, to: v, cost: cost})
		}
	}
	return costs, edges
}

// bellmanFord. exhaustive least costs from source.
func bellmanFord(nodeCount int, edges []weightedEdge, source da.Index) []float64 {
	dist := make([]float64, nodeCount)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0
	for round := 0; round < nodeCount; round++ {
		changed := false
		for _, e := range edges {
			if dist[e.from]+e.cost < dist[e.to] {
				dist[e.to] = dist[e.from] + e.cost
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return dist
}

func TestBestRouteBetweenIsOptimal(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	costFunctions := map[string]CostFunction{
		"uniform": costfunction.Uniform,
		"edge dependent": costfunction.CostFunctionFunc(func(_, edgeId da.Index) float64 {
			return 1 + float64(edgeId%5)*0.5
		}),
	}

	for name, cf := range costFunctions {
		t.Run(name, func(t *testing.T) {
			for graphIndex := 0; graphIndex < 20; graphIndex++ {
				g := randomGraph(t, rnd, 12, 30)
				costs, edges := graphEdges(t, g, cf)
				rc := NewRouteComputer(g, cf)

				for s := da.Index(0); int(s) < g.NodeCount(); s++ {
					want := bellmanFord(g.NodeCount(), edges, s)
					for e := da.Index(0); int(e) < g.NodeCount(); e++ {
						if s == e {
							continue
						}
						r, found, err := rc.BestRouteBetween(s, e)
						require.NoError(t, err)
						if math.IsInf(want[e], 1) {
							assert.False(t, found)
							continue
						}
						require.True(t, found)

						routeEdges := r.Edges()
						assert.Equal(t, s, routeEdges[0].FromNodeId())
						assert.Equal(t, e, routeEdges[len(routeEdges)-1].ToNodeId())
						got := 0.0
						for i, re := range routeEdges {
							if i > 0 {
								assert.Equal(t, routeEdges[i-1].ToNodeId(), re.FromNodeId())
							}
							got += costs[[2]da.Index{re.FromNodeId(), re.ToNodeId()}]
						}
						assert.InDelta(t, want[e], got, 1e-6)
					}
				}
			}
		})
	}
}
