package match

import (
	"github.com/hscells/mutcompare"
	"github.com/xtgo/set"
	"gonum.org/v1/gonum/stat"
	"sort"
)

// Summary describes a Result for manual inspection.
type Summary struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int

	// MeanSimilarity is the mean similarity of the true positives, or zero when there are none.
	MeanSimilarity float64

	// ReferenceOnly and CandidateOnly are the documents annotated by only one of the two sets. Every mention of such
	// a document is a false negative or a false positive respectively.
	ReferenceOnly []string
	CandidateOnly []string
}

// Summarise computes a summary of the result of matching references against candidates.
func Summarise(result Result, references, candidates mutcompare.Mentions) Summary {
	s := Summary{
		TruePositives:  len(result.TruePositives),
		FalsePositives: len(result.FalsePositives),
		FalseNegatives: len(result.FalseNegatives),
	}

	if len(result.TruePositives) > 0 {
		similarities := make([]float64, len(result.TruePositives))
		for i, tp := range result.TruePositives {
			similarities[i] = tp.Similarity
		}
		s.MeanSimilarity = stat.Mean(similarities, nil)
	}

	r, c := references.DocumentIDs(), candidates.DocumentIDs()
	s.ReferenceOnly = difference(r, c)
	s.CandidateOnly = difference(c, r)
	return s
}

// difference returns the sorted ids in a that are not in b. Both inputs must be sorted and free of duplicates.
func difference(a, b []string) []string {
	data := make(sort.StringSlice, 0, len(a)+len(b))
	data = append(data, a...)
	data = append(data, b...)
	size := set.Diff(data, len(a))
	return data[:size]
}
