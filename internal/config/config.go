// Copyright 2017, Kerby Shedden and the Muscato contributors.

// Package config loads the JSON run configuration, the genorf
// analogue of muscato's utils.Config.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds every setting that controls a genorf run beyond what
// is already given as a command-line flag.
type Config struct {

	// The name of the FASTA file containing the input sequences.
	InputFileName string

	// The file path where accepted gene records are written.
	OutputFileName string

	// The name of the gene predicate linked into this build, e.g.
	// "cpg-island", "accept-all", "reject-all". Empty keeps the
	// build's default.
	Predicate string

	// The label template applied to each emitted gene record: parent
	// label, frame, start, end, in that order. Empty uses
	// emit.DefaultPattern.
	Pattern string

	// The number of simulated dispatch ranks to split each sequence's
	// candidate set across.
	NumRanks int

	// The number of goroutines used to filter each rank's share of
	// candidates. A value <= 0 runs each rank's share on one goroutine.
	FilterWorkers int

	// The line width used when writing FASTA output.
	OutputLineWidth int

	// If true, the total wall-clock time is reported on completion.
	Time bool

	// If true, a gene-statistics summary is written alongside the
	// output records.
	GeneStats bool

	// The file path where the gene-statistics summary is written, if
	// GeneStats is true. Defaults to OutputFileName + ".stats" when
	// blank.
	GeneStatsFileName string

	// The directory where log files are written. By default logs are
	// placed into genorf_logs/<run-id> in the local directory.
	LogDir string

	// If true, temporary files are not removed upon program
	// completion.
	NoCleanTmp bool
}

// ReadConfig decodes a JSON configuration file at filename.
func ReadConfig(filename string) (*Config, error) {
	fid, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("config: cannot open %s: %w", filename, err)
	}
	defer fid.Close()

	dec := json.NewDecoder(fid)
	cfg := new(Config)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: cannot decode %s: %w", filename, err)
	}
	return cfg, nil
}
