// Package integration runs the extract -> dispatch -> filter -> emit
// pipeline end to end against named scenarios, the genorf analogue of
// the toml-driven scenario runner the rest of the pack's test tooling
// uses.
package integration

import (
	"os"
	"testing"

	"github.com/BurntSushi/toml"

	"genorf/internal/dispatch"
	"genorf/internal/emit"
	"genorf/internal/filter"
	"genorf/internal/orf"
	"genorf/internal/predicate"
	"genorf/internal/seqio"
)

type scenario struct {
	Name          string
	Label         string
	Bases         string
	Predicate     string
	Ranks         int
	ExpectedGenes int
}

type scenarioFile struct {
	Scenario []scenario
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	data, err := os.ReadFile("scenarios.toml")
	if err != nil {
		t.Fatalf("reading scenarios.toml: %v", err)
	}
	var sf scenarioFile
	if _, err := toml.Decode(string(data), &sf); err != nil {
		t.Fatalf("decoding scenarios.toml: %v", err)
	}
	if len(sf.Scenario) == 0 {
		t.Fatalf("no scenarios found in scenarios.toml")
	}
	return sf.Scenario
}

func shardCandidates(ranges []orf.Range, seq seqio.Sequence, numRanks int) [][]filter.Candidate {
	shards := make([][]filter.Candidate, numRanks)
	for i, r := range ranges {
		rank := i % numRanks
		shards[rank] = append(shards[rank], filter.Candidate{Range: r, Seq: seq})
	}
	return shards
}

func TestPipelineScenarios(t *testing.T) {
	scenarios := loadScenarios(t)

	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			prevSelected := predicate.Selected
			defer func() { predicate.Selected = prevSelected }()
			predicate.Selected = sc.Predicate
			fn, err := predicate.Resolve()
			if err != nil {
				t.Fatalf("resolving predicate %q: %v", sc.Predicate, err)
			}

			seq := seqio.New(sc.Label, sc.Bases)
			ranges := orf.ExtractAll(seq.Bases)
			shards := shardCandidates(ranges, seq, sc.Ranks)
			accepted := dispatch.Run(shards, fn, dispatch.Config{})
			genes := emit.EmitAll(seq, accepted, "")

			if len(genes) != sc.ExpectedGenes {
				t.Fatalf("%s: got %d accepted genes, want %d (candidates=%d)", sc.Name, len(genes), sc.ExpectedGenes, len(ranges))
			}
		})
	}
}
