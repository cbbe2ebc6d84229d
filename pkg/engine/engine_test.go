package engine

import (
	"testing"

	"github.com/lintang-b-s/cyclenav/pkg/costfunction"
	"github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeTestGraph(t *testing.T) string {
	t.Helper()
	b := datastructure.NewGraphBuilder()
	a := b.AddNode(geo.MustPointCh(2_600_000, 1_200_000))
	c := b.AddNode(geo.MustPointCh(2_600_040, 1_200_030))
	cycleway := datastructure.AttributeSetOf(datastructure.HIGHWAY_CYCLEWAY)
	require.NoError(t, b.AddEdgeBetween(a, c, cycleway))
	require.NoError(t, b.AddEdgeBetween(c, a, cycleway))
	tables, err := b.Build()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, datastructure.WriteGraph(dir, tables, false))
	return dir
}

func TestNewEngine(t *testing.T) {
	dir := writeTestGraph(t)

	for _, index := range []string{SPATIAL_INDEX_SECTORS, SPATIAL_INDEX_RTREE} {
		t.Run(index, func(t *testing.T) {
			e, err := NewEngine(util.EngineConfig{
				GraphDir:     dir,
				SpatialIndex: index,
				CostFunction: costfunction.CITY_BIKE,
			}, zap.NewNop())
			require.NoError(t, err)
			defer func() {
				assert.NoError(t, e.Close())
			}()

			assert.Equal(t, 2, e.GetGraph().NodeCount())
			nodeId, ok := e.GetLocator().NodeClosestTo(geo.MustPointCh(2_600_035, 1_200_030), 50)
			require.True(t, ok)
			assert.Equal(t, datastructure.Index(1), nodeId)

			r, found, err := e.GetRouteComputer().BestRouteBetween(0, 1)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, 50.0, r.Length())
			assert.Equal(t, 1.0, e.GetCostFunction().CostFactor(0, 0))
		})
	}
}

func TestNewEngineErrors(t *testing.T) {
	dir := writeTestGraph(t)

	testCases := []struct {
		name    string
		config  util.EngineConfig
		wantErr error
	}{
		{
			name:    "missing graph",
			config:  util.EngineConfig{GraphDir: t.TempDir(), SpatialIndex: SPATIAL_INDEX_SECTORS, CostFunction: "uniform"},
			wantErr: util.ErrResource,
		},
		{
			name:    "unknown spatial index",
			config:  util.EngineConfig{GraphDir: dir, SpatialIndex: "quadtree", CostFunction: "uniform"},
			wantErr: util.ErrInvalidArgument,
		},
		{
			name:    "unknown cost function",
			config:  util.EngineConfig{GraphDir: dir, SpatialIndex: SPATIAL_INDEX_RTREE, CostFunction: "fastest"},
			wantErr: util.ErrInvalidArgument,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(tt.config, zap.NewNop())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
