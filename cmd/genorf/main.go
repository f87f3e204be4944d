// genorf scans FASTA sequences for candidate genes: it extracts open
// reading frames across all six reading frames, rebalances the
// resulting candidates across a configurable number of simulated
// worker ranks, applies a gene predicate (a CpG-island heuristic by
// default), and writes the accepted regions back out as FASTA.
//
// A typical invocation using flags is:
//
//	genorf --input=sequences.fasta.sz --output=genes.fasta --workers=4
//
// To use a JSON config file instead:
//
//	genorf --config=run.json
//
// See internal/config/config.go for the full set of configuration
// parameters. genorf writes its log and (optionally) its CPU profile
// into genorf_logs/<run-id> in the local directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/profile"

	"genorf/internal/config"
	"genorf/internal/dispatch"
	"genorf/internal/emit"
	"genorf/internal/filter"
	"genorf/internal/orf"
	"genorf/internal/predicate"
	"genorf/internal/seqio"
	"genorf/internal/stats"
)

var (
	cfg          *config.Config
	logger       *log.Logger
	runLogDir    string
	configSource string
)

func handleArgs() {
	configFileName := flag.String("config", "", "JSON file containing configuration parameters")
	inputFileName := flag.String("input", "", "Input FASTA file (\".sz\" suffix is read as snappy-compressed)")
	outputFileName := flag.String("output", "", "Output FASTA file for accepted genes")
	predicateName := flag.String("predicate", "", "Gene predicate to apply: cpg-island, accept-all, or reject-all")
	numRanks := flag.Int("ranks", 0, "Number of simulated dispatch ranks")
	workers := flag.Int("workers", 0, "Number of goroutines used to filter each rank's candidates")
	pattern := flag.String("pattern", "", "Label template for emitted genes: parent label, frame, start, end")
	lineWidth := flag.Int("output-line-width", 0, "FASTA output line width")
	geneStats := flag.Bool("gene-stats", false, "Write a gene-statistics summary alongside the output")
	reportTime := flag.Bool("time", false, "Print total wall time in seconds on completion")
	cpuProfile := flag.Bool("cpuprofile", false, "Capture CPU profile data")
	noCleanTmp := flag.Bool("no-clean-tmp", false, "Do not delete temporary files on completion")

	flag.Parse()

	if *configFileName != "" {
		c, err := config.ReadConfig(*configFileName)
		if err != nil {
			fatal(err)
		}
		cfg = c
		configSource = *configFileName
	} else {
		cfg = new(config.Config)
	}

	if *inputFileName != "" {
		cfg.InputFileName = *inputFileName
	}
	if *outputFileName != "" {
		cfg.OutputFileName = *outputFileName
	}
	if *predicateName != "" {
		cfg.Predicate = *predicateName
	}
	if *numRanks != 0 {
		cfg.NumRanks = *numRanks
	}
	if *workers != 0 {
		cfg.FilterWorkers = *workers
	}
	if *pattern != "" {
		cfg.Pattern = *pattern
	}
	if *lineWidth != 0 {
		cfg.OutputLineWidth = *lineWidth
	}
	if *geneStats {
		cfg.GeneStats = true
	}
	if *reportTime {
		cfg.Time = true
	}
	if *cpuProfile {
		cpuProfileFlag = true
	}
	if *noCleanTmp {
		cfg.NoCleanTmp = true
	}

	if cfg.NumRanks <= 0 {
		cfg.NumRanks = runtime.NumCPU()
	}
	if cfg.OutputLineWidth <= 0 {
		cfg.OutputLineWidth = 70
	}
}

var cpuProfileFlag bool

func checkArgs() {
	if cfg.InputFileName == "" {
		fatal(fmt.Errorf("an input FASTA file must be given (--input or config InputFileName)"))
	}
	if cfg.OutputFileName == "" {
		fatal(fmt.Errorf("an output FASTA file must be given (--output or config OutputFileName)"))
	}
}

func makeLogDir() {
	xuid, err := uuid.NewUUID()
	if err != nil {
		fatal(err)
	}
	uid := xuid.String()

	if cfg.LogDir == "" {
		cfg.LogDir = "genorf_logs"
	}
	runLogDir = path.Join(cfg.LogDir, uid)
	if err := os.MkdirAll(runLogDir, os.ModePerm); err != nil {
		fatal(err)
	}
}

func setupLog() {
	logname := path.Join(runLogDir, "genorf.log")
	fid, err := os.Create(logname)
	if err != nil {
		fatal(err)
	}
	logger = log.New(fid, "", log.Ltime)
}

func saveConfig() {
	fid, err := os.Create(path.Join(runLogDir, "config.json"))
	if err != nil {
		fatal(err)
	}
	defer fid.Close()
	enc := json.NewEncoder(fid)
	if err := enc.Encode(cfg); err != nil {
		fatal(err)
	}
}

// fatal reports err on stderr and exits. It is the single point where
// a setup failure turns into process termination, so every other
// helper can just return an error up to here.
func fatal(err error) {
	io.WriteString(os.Stderr, fmt.Sprintf("genorf: %v\n", err))
	os.Exit(1)
}

// run is the recoverable core of the program: handleArgs/checkArgs
// have already validated configuration, so any panic here is treated
// as an internal error and reported through the log rather than a
// raw stack trace.
func run() (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("internal error: %v", p)
		}
	}()
	start := time.Now()

	predicate.Selected = defaultString(cfg.Predicate, predicate.Selected)
	fn, err := predicate.Resolve()
	if err != nil {
		return err
	}

	reader, closer, err := seqio.Open(cfg.InputFileName)
	if err != nil {
		return err
	}
	defer closer.Close()

	writer, outCloser, err := seqio.Create(cfg.OutputFileName, cfg.OutputLineWidth)
	if err != nil {
		return err
	}
	defer outCloser.Close()

	var allGenes []seqio.Sequence
	var nSeqs, nGenes int

	for {
		seq := reader.Next()
		if !seq.Valid {
			break
		}
		nSeqs++

		ranges := orf.ExtractAll(seq.Bases)
		shards := shardCandidates(ranges, seq, cfg.NumRanks)
		accepted := dispatch.Run(shards, fn, dispatch.Config{Workers: cfg.FilterWorkers})
		genes := emit.EmitAll(seq, accepted, cfg.Pattern)

		for _, g := range genes {
			if err := writer.Write(g); err != nil {
				return err
			}
		}
		nGenes += len(genes)
		if cfg.GeneStats {
			allGenes = append(allGenes, genes...)
		}
		logger.Printf("sequence %s: %d candidates, %d accepted\n", seq.Label, len(ranges), len(genes))
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	if cfg.GeneStats {
		if err := writeGeneStats(allGenes); err != nil {
			return err
		}
	}

	elapsed := time.Since(start)
	logger.Printf("processed %d sequences, accepted %d genes in %s\n", nSeqs, nGenes, elapsed)
	if cfg.Time {
		fmt.Printf("%f\n", elapsed.Seconds())
	}
	return nil
}

// shardCandidates splits ranges into numRanks near-equal slices,
// simulating the per-rank local extraction each dispatch rank would
// have produced from its own shard of the input in the distributed
// original.
func shardCandidates(ranges []orf.Range, seq seqio.Sequence, numRanks int) [][]filter.Candidate {
	if numRanks <= 0 {
		numRanks = 1
	}
	shards := make([][]filter.Candidate, numRanks)
	for i, r := range ranges {
		rank := i % numRanks
		shards[rank] = append(shards[rank], filter.Candidate{Range: r, Seq: seq})
	}
	return shards
}

func writeGeneStats(genes []seqio.Sequence) error {
	statsFileName := cfg.GeneStatsFileName
	if statsFileName == "" {
		statsFileName = cfg.OutputFileName + ".stats"
	}
	fid, err := os.Create(statsFileName)
	if err != nil {
		return fmt.Errorf("gene stats: %w", err)
	}
	defer fid.Close()

	s := stats.Summarize(genes)
	fmt.Fprintf(fid, "count\t%d\n", s.Count)
	fmt.Fprintf(fid, "mean_length\t%f\n", s.MeanLength)
	fmt.Fprintf(fid, "stddev_length\t%f\n", s.StdDevLength)
	fmt.Fprintf(fid, "min_length\t%f\n", s.MinLength)
	fmt.Fprintf(fid, "max_length\t%f\n", s.MaxLength)
	fmt.Fprintf(fid, "mean_gc\t%f\n", s.MeanGC)
	fmt.Fprintf(fid, "stddev_gc\t%f\n", s.StdDevGC)
	return nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func cleanTmp() {
	if cfg.NoCleanTmp {
		return
	}
	// genorf has no scratch directory of its own beyond the log
	// directory, which holds the run's config and log and is kept
	// regardless of NoCleanTmp.
}

func main() {
	handleArgs()
	checkArgs()
	makeLogDir()
	setupLog()
	defer cleanTmp()

	if cpuProfileFlag {
		p := profile.Start(profile.ProfilePath(runLogDir))
		defer p.Stop()
	}

	logger.Printf("starting genorf, config source %q\n", configSource)
	saveConfig()

	if err := run(); err != nil {
		logger.Printf("fatal: %v\n", err)
		fatal(err)
	}
}
