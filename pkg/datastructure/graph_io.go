package datastructure

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/cyclenav/pkg/geo"
	"github.com/lintang-b-s/cyclenav/pkg/util"
	"go.uber.org/zap"
)

const (
	NODES_FILE       = "nodes.bin"
	SECTORS_FILE     = "sectors.bin"
	EDGES_FILE       = "edges.bin"
	PROFILE_IDS_FILE = "profile_ids.bin"
	ELEVATIONS_FILE  = "elevations.bin"
	ATTRIBUTES_FILE  = "attributes.bin"

	COMPRESSED_SUFFIX = ".bz2"
)

// GraphTables. raw big-endian tables of a graph, one per file.
type GraphTables struct {
	Nodes      []byte
	Sectors    []byte
	Edges      []byte
	ProfileIds []byte
	Elevations []byte
	Attributes []byte
}

func (t *GraphTables) byName() []struct {
	name  string
	table *[]byte
} {
	return []struct {
		name  string
		table *[]byte
	}{
		{NODES_FILE, &t.Nodes},
		{SECTORS_FILE, &t.Sectors},
		{EDGES_FILE, &t.Edges},
		{PROFILE_IDS_FILE, &t.ProfileIds},
		{ELEVATIONS_FILE, &t.Elevations},
		{ATTRIBUTES_FILE, &t.Attributes},
	}
}

// LoadGraph loads the graph tables of dir. a table is memory mapped when stored as is, and decompressed in memory
// when stored as <name>.bz2.
func LoadGraph(dir string, log *zap.Logger) (*Graph, error) {
	var (
		tables  GraphTables
		unmaps  []func() error
		loadErr error
	)
	closeAll := func() error {
		var errs []error
		for _, unmap := range unmaps {
			errs = append(errs, unmap())
		}
		return errors.Join(errs...)
	}

	for _, t := range tables.byName() {
		path := filepath.Join(dir, t.name)
		data, unmap, err := mapFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			data, err = readCompressed(path + COMPRESSED_SUFFIX)
			if err == nil {
				log.Info("decompressed graph table", zap.String("table", t.name), zap.Int("bytes", len(data)))
			}
		} else if err == nil {
			unmaps = append(unmaps, unmap)
		}
		if err != nil {
			loadErr = util.WrapErrorf(err, util.ErrResource, "load graph table %s", path)
			break
		}
		*t.table = data
	}
	if loadErr != nil {
		_ = closeAll()
		return nil, loadErr
	}

	g, err := NewGraph(tables)
	if err != nil {
		_ = closeAll()
		return nil, err
	}
	g.closer = closeAll

	log.Info("graph loaded", zap.String("dir", dir), zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()), zap.Int("attribute_sets", len(g.attributeSets)))
	return g, nil
}

func readCompressed(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	return io.ReadAll(bufio.NewReader(bz))
}

// WriteGraph writes the tables of a graph into dir, bzip2 compressed if compress is set.
func WriteGraph(dir string, tables GraphTables, compress bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, t := range tables.byName() {
		path := filepath.Join(dir, t.name)
		if !compress {
			if err := os.WriteFile(path, *t.table, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", t.name, err)
			}
			continue
		}
		if err := writeCompressed(path+COMPRESSED_SUFFIX, *t.table); err != nil {
			return fmt.Errorf("write %s: %w", t.name, err)
		}
	}
	return nil
}

func writeCompressed(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{Level: bzip2.BestCompression})
	if err != nil {
		return err
	}
	if _, err := io.Copy(bz, bytes.NewReader(data)); err != nil {
		bz.Close()
		return err
	}
	if err := bz.Close(); err != nil {
		return err
	}
	return f.Sync()
}

func malformed(format string, a ...interface{}) error {
	return util.WrapErrorf(nil, util.ErrResource, "malformed graph: "+format, a...)
}

// validate checks sizes and every stored reference once, so that accessors only need to check caller ids.
func (g *Graph) validate() error {
	t := g.tables
	switch {
	case len(t.Nodes)%NODE_BYTES != 0:
		return malformed("%s size %d is not a multiple of %d", NODES_FILE, len(t.Nodes), NODE_BYTES)
	case len(t.Sectors) != SECTOR_COUNT*SECTOR_BYTES:
		return malformed("%s size %d, want %d", SECTORS_FILE, len(t.Sectors), SECTOR_COUNT*SECTOR_BYTES)
	case len(t.Edges)%EDGE_BYTES != 0:
		return malformed("%s size %d is not a multiple of %d", EDGES_FILE, len(t.Edges), EDGE_BYTES)
	case len(t.ProfileIds) != g.edges.Count()*PROFILE_ID_BYTES:
		return malformed("%s size %d, want %d", PROFILE_IDS_FILE, len(t.ProfileIds), g.edges.Count()*PROFILE_ID_BYTES)
	case len(t.Elevations)%ELEVATION_BYTES != 0:
		return malformed("%s size %d is odd", ELEVATIONS_FILE, len(t.Elevations))
	case len(t.Attributes)%ATTRIBUTE_SET_BYTES != 0:
		return malformed("%s size %d is not a multiple of %d", ATTRIBUTES_FILE, len(t.Attributes), ATTRIBUTE_SET_BYTES)
	case g.edges.Count() > MAX_EDGE_ID+1:
		return malformed("%d edges do not fit the first edge field", g.edges.Count())
	}

	g.attributeSets = make([]AttributeSet, len(t.Attributes)/ATTRIBUTE_SET_BYTES)
	for i := range g.attributeSets {
		set, err := NewAttributeSet(binary.BigEndian.Uint64(t.Attributes[i*ATTRIBUTE_SET_BYTES:]))
		if err != nil {
			return util.WrapErrorf(err, util.ErrResource, "malformed graph: attribute set %d", i)
		}
		g.attributeSets[i] = set
	}

	nodeCount, edgeCount := g.nodes.Count(), g.edges.Count()
	for v := Index(0); int(v) < nodeCount; v++ {
		if !geo.ContainsEN(g.nodes.E(v), g.nodes.N(v)) {
			return malformed("node %d at (%v, %v) is outside the swiss bounds", v, g.nodes.E(v), g.nodes.N(v))
		}
		if int(g.nodes.firstEdgeId(v))+g.nodes.OutDegree(v) > edgeCount {
			return malformed("edges of node %d go past edge %d", v, edgeCount)
		}
	}

	for s := 0; s < SECTOR_COUNT; s++ {
		sector := g.sectors.sector(s)
		if int(sector.EndNodeId) > nodeCount || sector.StartNodeId > sector.EndNodeId {
			return malformed("sector %d nodes [%d, %d) out of [0, %d)", s, sector.StartNodeId, sector.EndNodeId, nodeCount)
		}
	}

	elevationCount := g.edges.ElevationCount()
	for e := Index(0); int(e) < edgeCount; e++ {
		if int(g.edges.TargetNodeId(e)) >= nodeCount {
			return malformed("edge %d targets node %d of %d", e, g.edges.TargetNodeId(e), nodeCount)
		}
		if g.edges.AttributesIndex(e) >= len(g.attributeSets) {
			return malformed("edge %d uses attribute set %d of %d", e, g.edges.AttributesIndex(e), len(g.attributeSets))
		}
		profileType := g.edges.ProfileType(e)
		words := profileType.wordCount(SampleCount(g.edges.lengthQ28(e)))
		if first := g.edges.firstSampleIndex(e); profileType != PROFILE_NONE && first+words > elevationCount {
			return malformed("profile of edge %d uses samples [%d, %d) of %d", e, first, first+words, elevationCount)
		}
	}
	return nil
}

func ParseIndex(s string) (Index, error) {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint32 {
		return 0, fmt.Errorf("value %s overflows uint32", s)
	}
	return Index(u), nil
}
