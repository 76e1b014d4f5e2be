// Package match pairs the mutation mentions of a reference annotation set with those of a candidate set, partitioning
// them into true positives, false positives, and false negatives.
//
// Matching is greedy: references are visited in input order and each one consumes at most one candidate from the
// same document. By default the first candidate scoring at least the threshold is taken (first-fit), which is what
// existing comparison results were produced with. BestFit takes the highest scoring candidate instead.
package match

import (
	"github.com/hscells/mutcompare"
)

// DefaultThreshold is the similarity a pair of normalised mentions must reach to be considered the same mutation.
const DefaultThreshold = 60

// TruePositive is a reference mention paired with the candidate mention it consumed.
type TruePositive struct {
	Reference  mutcompare.Mention
	Candidate  mutcompare.Mention
	Similarity float64
}

// FalsePositive is a candidate mention that no reference consumed.
type FalsePositive struct {
	Candidate mutcompare.Mention
}

// FalseNegative is a reference mention for which no candidate qualified.
type FalseNegative struct {
	Reference mutcompare.Mention
}

// Result is the partition of two mention sets.
type Result struct {
	TruePositives  []TruePositive
	FalsePositives []FalsePositive
	FalseNegatives []FalseNegative
}

// Strategy decides which candidate a reference consumes.
type Strategy int

const (
	// FirstFit takes the first candidate, in input order, at or above the threshold.
	FirstFit Strategy = iota
	// BestFit takes the highest scoring candidate at or above the threshold; ties go to the earliest candidate.
	BestFit
)

// Strategies maps the names accepted on the command line to strategies.
var Strategies = map[string]Strategy{
	"first": FirstFit,
	"best":  BestFit,
}

func (s Strategy) String() string {
	switch s {
	case BestFit:
		return "best"
	default:
		return "first"
	}
}

// pick returns the position in scores of the chosen candidate, or -1. scores holds the similarity of each
// unconsumed same-document candidate, in candidate input order.
func (s Strategy) pick(scores []float64, threshold float64) int {
	best := -1
	for i, score := range scores {
		if score < threshold {
			continue
		}
		if s == FirstFit {
			return i
		}
		if best == -1 || score > scores[best] {
			best = i
		}
	}
	return best
}

// Trace observes every reference and candidate pair that is scored.
type Trace func(reference, candidate mutcompare.Mention, similarity float64)

// Matcher compares two mention sets.
type Matcher struct {
	threshold float64
	strategy  Strategy
	similar   func(a, b string) float64
	trace     Trace
}

// Threshold sets the minimum similarity (0-100) of a match. The value is not validated: a threshold at or below
// zero pairs every reference with a same-document candidate, and 100 only pairs identical normalised text.
func Threshold(t float64) func(m *Matcher) {
	return func(m *Matcher) {
		m.threshold = t
	}
}

// WithStrategy sets how a candidate is chosen.
func WithStrategy(s Strategy) func(m *Matcher) {
	return func(m *Matcher) {
		m.strategy = s
	}
}

// WithSimilarity replaces Ratio as the similarity function.
func WithSimilarity(f func(a, b string) float64) func(m *Matcher) {
	return func(m *Matcher) {
		m.similar = f
	}
}

// WithTrace sets a function that observes each scored pair.
func WithTrace(t Trace) func(m *Matcher) {
	return func(m *Matcher) {
		m.trace = t
	}
}

// NewMatcher creates a first-fit matcher using Ratio and DefaultThreshold unless configured otherwise.
func NewMatcher(options ...func(m *Matcher)) Matcher {
	m := &Matcher{
		threshold: DefaultThreshold,
		strategy:  FirstFit,
		similar:   Ratio,
	}
	for _, option := range options {
		option(m)
	}
	return *m
}

// Match partitions the reference and candidate mentions. Only mentions with the same document id are compared, and
// only on their normalised text; offsets are carried into the result untouched.
func (m Matcher) Match(references, candidates mutcompare.Mentions) Result {
	var result Result

	// Bucketing by document keeps candidate input order within each document, so this does not change which
	// candidate a strategy sees first.
	byDocument := candidates.ByDocument()
	consumed := make([]bool, len(candidates))

	var (
		scores  []float64
		indices []int
	)
	for _, r := range references {
		scores, indices = scores[:0], indices[:0]
		for _, i := range byDocument[r.DocumentID] {
			if consumed[i] {
				continue
			}
			c := candidates[i]
			score := m.similar(r.Normalised, c.Normalised)
			if m.trace != nil {
				m.trace(r, c, score)
			}
			scores = append(scores, score)
			indices = append(indices, i)

			// First-fit stops scanning at the first qualifying candidate.
			if score >= m.threshold && m.strategy == FirstFit {
				break
			}
		}

		pick := m.strategy.pick(scores, m.threshold)
		if pick < 0 {
			result.FalseNegatives = append(result.FalseNegatives, FalseNegative{Reference: r})
			continue
		}
		i := indices[pick]
		consumed[i] = true
		result.TruePositives = append(result.TruePositives, TruePositive{
			Reference:  r,
			Candidate:  candidates[i],
			Similarity: scores[pick],
		})
	}

	for i, c := range candidates {
		if !consumed[i] {
			result.FalsePositives = append(result.FalsePositives, FalsePositive{Candidate: c})
		}
	}
	return result
}

// Match partitions references and candidates with a default first-fit matcher at the given threshold.
func Match(references, candidates mutcompare.Mentions, threshold float64) Result {
	return NewMatcher(Threshold(threshold)).Match(references, candidates)
}
