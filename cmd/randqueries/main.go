package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/lintang-b-s/cyclenav/pkg/concurrent"
	da "github.com/lintang-b-s/cyclenav/pkg/datastructure"
	"github.com/lintang-b-s/cyclenav/pkg/engine"
	log "github.com/lintang-b-s/cyclenav/pkg/logger"
	"github.com/lintang-b-s/cyclenav/pkg/util"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

var (
	numQueries = flag.Int("n", 10000, "number of random queries")
	numWorkers = flag.Int("workers", 16, "number of concurrent searches")
	seed       = flag.Int64("seed", 1, "seed of the random query generator")
	outFile    = flag.String("out", "rand_queries_result.csv", "csv file of the query results")
)

type spParam struct {
	row int
	s   da.Index
	t   da.Index
}

type spResult struct {
	spParam
	found    bool
	length   float64
	duration time.Duration
	err      error
}

func main() {
	flag.Parse()
	_ = util.ReadConfig()
	config := util.NewEngineConfig()

	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	if err := run(config, logger); err != nil {
		logger.Error("random queries failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// run returns instead of exiting so that the graph is always unmapped.
func run(config util.EngineConfig, logger *zap.Logger) error {
	re, err := engine.NewEngine(config, logger)
	if err != nil {
		return fmt.Errorf("load route engine: %w", err)
	}
	defer re.Close()

	nodeCount := re.GetGraph().NodeCount()
	if nodeCount < 2 {
		return fmt.Errorf("graph needs at least 2 nodes, got %d", nodeCount)
	}

	rnd := rand.New(rand.NewSource(*seed))
	queries := make([]spParam, 0, *numQueries)
	for row := 0; row < *numQueries; row++ {
		s := da.Index(rnd.Intn(nodeCount))
		t := da.Index(rnd.Intn(nodeCount))
		for t == s {
			t = da.Index(rnd.Intn(nodeCount))
		}
		queries = append(queries, spParam{row, s, t})
	}

	rc := re.GetRouteComputer()
	calcSP := func(_ context.Context, p spParam) spResult {
		before := time.Now()
		r, found, err := rc.BestRouteBetween(p.s, p.t)
		res := spResult{spParam: p, found: found, duration: time.Since(before), err: err}
		if found {
			res.length = r.Length()
		}
		if (p.row+1)%1000 == 0 {
			logger.Sugar().Infof("done query %v", p.row+1)
		}
		return res
	}

	results, err := concurrent.Run(context.Background(), *numWorkers, queries, calcSP)
	if err != nil {
		return err
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].row < results[j].row
	})

	if err := writeResults(*outFile, results); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	durations := make([]float64, 0, len(results))
	found := 0
	for _, r := range results {
		if r.err != nil {
			logger.Error("query failed", zap.Int("row", r.row), zap.Error(r.err))
			continue
		}
		if r.found {
			found++
		}
		durations = append(durations, float64(r.duration.Microseconds())/1000)
	}
	sort.Float64s(durations)
	if len(durations) == 0 {
		return nil
	}
	logger.Info("random queries done",
		zap.Int("queries", len(results)),
		zap.Int("found", found),
		zap.Float64("mean_ms", stat.Mean(durations, nil)),
		zap.Float64("median_ms", stat.Quantile(0.5, stat.Empirical, durations, nil)),
		zap.Float64("p99_ms", stat.Quantile(0.99, stat.Empirical, durations, nil)),
		zap.String("out", *outFile),
	)
	return nil
}

func writeResults(path string, results []spResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := writeResultsCSV(f, results); err != nil {
		return err
	}
	return f.Sync()
}

func writeResultsCSV(out io.Writer, results []spResult) error {
	writer := csv.NewWriter(out)
	if err := writer.Write([]string{"s", "t", "found", "length", "duration_us"}); err != nil {
		return err
	}
	for _, r := range results {
		record := []string{
			strconv.FormatUint(uint64(r.s), 10),
			strconv.FormatUint(uint64(r.t), 10),
			strconv.FormatBool(r.found),
			strconv.FormatFloat(r.length, 'f', -1, 64),
			strconv.FormatInt(r.duration.Microseconds(), 10),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
