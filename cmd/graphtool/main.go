package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	da "github.com/lintang-b-s/cyclenav/pkg/datastructure"
	log "github.com/lintang-b-s/cyclenav/pkg/logger"
	"github.com/lintang-b-s/cyclenav/pkg/osmparser"
	"go.uber.org/zap"
)

const usage = `usage:
  graphtool import -pbf FILE -graph_dir DIR [-compress]
  graphtool info -graph_dir DIR
  graphtool compress -src DIR -dst DIR
  graphtool decompress -src DIR -dst DIR`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	switch cmd := os.Args[1]; cmd {
	case "import":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		pbf := fs.String("pbf", "./data/switzerland.osm.pbf", "openstreetmap pbf extract")
		graphDir := fs.String("graph_dir", "./data/graph", "output directory of the graph tables")
		compress := fs.Bool("compress", false, "bzip2 compress the graph tables")
		_ = fs.Parse(os.Args[2:])
		err = importOsm(*pbf, *graphDir, *compress, logger)
	case "info":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		graphDir := fs.String("graph_dir", "./data/graph", "directory of the graph tables")
		_ = fs.Parse(os.Args[2:])
		err = info(*graphDir, logger)
	case "compress", "decompress":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		src := fs.String("src", "./data/graph", "directory of the source graph tables")
		dst := fs.String("dst", "", "output directory")
		_ = fs.Parse(os.Args[2:])
		if *dst == "" {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		err = rewrite(*src, *dst, cmd == "compress", logger)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Fatal(os.Args[1]+" failed", zap.Error(err))
	}
}

func importOsm(pbf, dir string, compress bool, logger *zap.Logger) error {
	tables, _, err := osmparser.NewOsmParser().Parse(context.Background(), pbf, logger)
	if err != nil {
		return err
	}
	if err := da.WriteGraph(dir, tables, compress); err != nil {
		return err
	}
	logger.Info("graph written", zap.String("dir", dir), zap.Bool("compressed", compress))
	return nil
}

func info(dir string, logger *zap.Logger) error {
	g, err := da.LoadGraph(dir, logger)
	if err != nil {
		return err
	}
	defer g.Close()

	stats := g.Stats()
	logger.Info("graph info",
		zap.String("dir", dir),
		zap.Int("nodes", stats.Nodes),
		zap.Int("edges", stats.Edges),
		zap.Int("inverted_edges", stats.InvertedEdges),
		zap.Int("attribute_sets", stats.AttributeSets),
		zap.Int("elevation_words", stats.ElevationWords),
		zap.Int("non_empty_sectors", stats.NonEmptySectors),
		zap.Int("max_out_degree", stats.MaxOutDegree),
		zap.Float64("total_length_km", stats.TotalLength/1000),
		zap.Ints("edges_by_profile_type", stats.EdgesByProfile[:]),
	)
	return nil
}

// rewrite copies the graph of src into dst, bzip2 compressing every table when compress is set.
func rewrite(src, dst string, compress bool, logger *zap.Logger) error {
	g, err := da.LoadGraph(src, logger)
	if err != nil {
		return err
	}
	defer g.Close()

	if err := da.WriteGraph(dst, g.Tables(), compress); err != nil {
		return err
	}
	logger.Info("graph written", zap.String("src", src), zap.String("dst", dst), zap.Bool("compressed", compress))
	return nil
}
