// Package stats summarizes the genes a run accepted, the genorf
// analogue of muscato's muscato_genestats reporting pass.
package stats

import (
	"gonum.org/v1/gonum/stat"

	"genorf/internal/seqio"
)

// Summary holds descriptive statistics over a batch of emitted gene
// records.
type Summary struct {
	Count        int
	MeanLength   float64
	StdDevLength float64
	MinLength    float64
	MaxLength    float64
	MeanGC       float64
	StdDevGC     float64
}

// Summarize computes length and GC-content statistics over genes.
// An empty input yields the zero Summary.
func Summarize(genes []seqio.Sequence) Summary {
	if len(genes) == 0 {
		return Summary{}
	}
	lengths := make([]float64, len(genes))
	gcs := make([]float64, len(genes))
	min, max := float64(len(genes[0].Bases)), float64(len(genes[0].Bases))
	for i, g := range genes {
		l := float64(len(g.Bases))
		lengths[i] = l
		gcs[i] = gcContent(g.Bases)
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	meanLen, stdLen := stat.MeanStdDev(lengths, nil)
	meanGC, stdGC := stat.MeanStdDev(gcs, nil)
	return Summary{
		Count:        len(genes),
		MeanLength:   meanLen,
		StdDevLength: stdLen,
		MinLength:    min,
		MaxLength:    max,
		MeanGC:       meanGC,
		StdDevGC:     stdGC,
	}
}

// gcContent returns the fraction of bases in s that are C or G.
func gcContent(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	var gc int
	for i := 0; i < len(s); i++ {
		if s[i] == 'C' || s[i] == 'G' {
			gc++
		}
	}
	return float64(gc) / float64(len(s))
}
