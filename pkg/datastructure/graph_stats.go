package datastructure

// GraphStats summarizes the tables of a graph.
type GraphStats struct {
	Nodes           int
	Edges           int
	AttributeSets   int
	ElevationWords  int
	NonEmptySectors int
	MaxOutDegree    int
	InvertedEdges   int
	TotalLength     float64
	// EdgesByProfile[t]. number of edges whose profile has type t.
	EdgesByProfile [4]int
}

func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		Nodes:          g.NodeCount(),
		Edges:          g.EdgeCount(),
		AttributeSets:  len(g.attributeSets),
		ElevationWords: g.edges.ElevationCount(),
	}
	for i := 0; i < SECTOR_COUNT; i++ {
		s := g.sectors.sector(i)
		if s.EndNodeId > s.StartNodeId {
			stats.NonEmptySectors++
		}
	}
	for v := 0; v < stats.Nodes; v++ {
		stats.MaxOutDegree = max(stats.MaxOutDegree, g.nodes.OutDegree(Index(v)))
	}
	for e := 0; e < stats.Edges; e++ {
		edgeId := Index(e)
		if g.edges.IsInverted(edgeId) {
			stats.InvertedEdges++
		}
		stats.TotalLength += g.edges.Length(edgeId)
		stats.EdgesByProfile[g.edges.ProfileType(edgeId)]++
	}
	return stats
}
