package datastructure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func buildLineTables(t *testing.T) GraphTables {
	t.Helper()
	b := NewGraphBuilder()
	a := b.AddNode(geo.MustPointCh(2_600_000, 1_200_000))
	c := b.AddNode(geo.MustPointCh(2_600_020, 1_200_000))
	require.NoError(t, b.AddEdge(a, c, EdgeSpec{
		Length: 20, Attributes: AttributeSetOf(HIGHWAY_RESIDENTIAL, SURFACE_ASPHALT),
		ProfileType: PROFILE_UNCOMPRESSED, Profile: []float64{400, 401, 402, 403, 404, 405, 406, 407, 408, 409, 410},
	}))
	require.NoError(t, b.AddEdge(c, a, EdgeSpec{Length: 20, Attributes: AttributeSetOf(HIGHWAY_RESIDENTIAL)}))
	tables, err := b.Build()
	require.NoError(t, err)
	return tables
}

func TestWriteAndLoadGraph(t *testing.T) {
	for _, compress := range []bool{false, true} {
		name := "raw"
		if compress {
			name = "bzip2"
		}
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			tables := buildLineTables(t)
			require.NoError(t, WriteGraph(dir, tables, compress))

			g, err := LoadGraph(dir, zap.NewNop())
			require.NoError(t, err)
			defer func() {
				assert.NoError(t, g.Close())
			}()

			assert.Equal(t, 2, g.NodeCount())
			assert.Equal(t, 2, g.EdgeCount())
			assert.Equal(t, tables.Edges, g.Tables().Edges)

			samples, err := g.EdgeProfileSamples(0)
			require.NoError(t, err)
			assert.Len(t, samples, 11)
			assert.Equal(t, 405.0, samples[5])

			attrs, err := g.EdgeAttributes(1)
			require.NoError(t, err)
			assert.Equal(t, AttributeSetOf(HIGHWAY_RESIDENTIAL), attrs)
		})
	}
}

func TestLoadGraphMissingTable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteGraph(dir, buildLineTables(t), false))
	require.NoError(t, os.Remove(filepath.Join(dir, ELEVATIONS_FILE)))

	_, err := LoadGraph(dir, zap.NewNop())
	assert.ErrorIs(t, err, util.ErrResource)
}

func TestLoadGraphTruncatedTable(t *testing.T) {
	dir := t.TempDir()
	tables := buildLineTables(t)
	tables.Edges = tables.Edges[:len(tables.Edges)-1]
	require.NoError(t, WriteGraph(dir, tables, false))

	_, err := LoadGraph(dir, zap.NewNop())
	assert.ErrorIs(t, err, util.ErrResource)
}

func TestLoadGraphCorruptCompressedTable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteGraph(dir, buildLineTables(t), true))
	require.NoError(t, os.WriteFile(filepath.Join(dir, NODES_FILE+COMPRESSED_SUFFIX), []byte("not bzip2"), 0o644))

	_, err := LoadGraph(dir, zap.NewNop())
	assert.ErrorIs(t, err, util.ErrResource)
}

func TestParseIndex(t *testing.T) {
	got, err := ParseIndex("42")
	require.NoError(t, err)
	assert.Equal(t, Index(42), got)

	_, err = ParseIndex("4294967296")
	assert.Error(t, err)
	_, err = ParseIndex("-1")
	assert.Error(t, err)
}
