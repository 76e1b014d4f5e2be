package match_test

import (
	"github.com/hscells/mutcompare"
	"github.com/hscells/mutcompare/match"
	"github.com/hscells/mutcompare/normalise"
	"testing"
)

func mention(doc, text string, offset int) mutcompare.Mention {
	return mutcompare.NewMention(doc, text, mutcompare.Offset(offset), normalise.Default)
}

func TestRatio(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"Lys249E", "Lys249E", 100},
		{"abc", "xyz", 0},
		{"", "", 100},
		{"", "abc", 0},
		{"abcd", "abce", 75},
		{"Lys249E", "Lys249Glu", 75},
		{"αβ", "αβ", 100},
	}
	for _, c := range cases {
		if got := match.Ratio(c.a, c.b); got != c.want {
			t.Errorf("Ratio(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
	if d := match.Indel("abcd", "abce"); d != 2 {
		t.Errorf("Indel = %d, want 2", d)
	}
}

func TestMatchNormalisedMentions(t *testing.T) {
	r := mutcompare.Mentions{mention("1", "K249E", 10)}
	c := mutcompare.Mentions{mention("1", "Lys249Glu", 12)}

	result := match.Match(r, c, 60)
	if len(result.TruePositives) != 1 || len(result.FalsePositives) != 0 || len(result.FalseNegatives) != 0 {
		t.Fatalf("expected a single true positive, got %+v", result)
	}
	tp := result.TruePositives[0]
	if tp.Similarity < 60 {
		t.Errorf("similarity %v below threshold", tp.Similarity)
	}
	if tp.Reference.Offset != 10 || tp.Candidate.Offset != 12 {
		t.Errorf("offsets not carried through: %+v", tp)
	}
}

func TestMatchCaseVariantsExactly(t *testing.T) {
	r := mutcompare.Mentions{mention("1", "c.123a>g", 0)}
	c := mutcompare.Mentions{mention("1", "c.123A>G", 0)}

	result := match.Match(r, c, 100)
	if len(result.TruePositives) != 1 || len(result.FalsePositives) != 0 || len(result.FalseNegatives) != 0 {
		t.Errorf("expected case variants to match exactly, got %+v", result)
	}
}

func TestStrategyNames(t *testing.T) {
	for name, s := range match.Strategies {
		if s.String() != name {
			t.Errorf("strategy %q prints as %q", name, s.String())
		}
	}
}

func TestMatchEmptySets(t *testing.T) {
	result := match.Match(mutcompare.Mentions{mention("1", "K249E", 0)}, nil, 60)
	if len(result.TruePositives) != 0 || len(result.FalsePositives) != 0 || len(result.FalseNegatives) != 1 {
		t.Errorf("expected one false negative, got %+v", result)
	}

	result = match.Match(nil, mutcompare.Mentions{mention("1", "X1Y", 0)}, 60)
	if len(result.TruePositives) != 0 || len(result.FalsePositives) != 1 || len(result.FalseNegatives) != 0 {
		t.Errorf("expected one false positive, got %+v", result)
	}
}

func TestMatchFirstReferenceConsumesCandidate(t *testing.T) {
	r := mutcompare.Mentions{mention("1", "K249E", 10), mention("1", "K249E", 20)}
	c := mutcompare.Mentions{mention("1", "K249E", 30)}

	result := match.Match(r, c, 60)
	if len(result.TruePositives) != 1 || len(result.FalseNegatives) != 1 || len(result.FalsePositives) != 0 {
		t.Fatalf("unexpected partition %+v", result)
	}
	if result.TruePositives[0].Reference.Offset != 10 {
		t.Errorf("expected the first reference to match, got offset %v", result.TruePositives[0].Reference.Offset)
	}
	if result.FalseNegatives[0].Reference.Offset != 20 {
		t.Errorf("expected the second reference to be a false negative, got offset %v", result.FalseNegatives[0].Reference.Offset)
	}
}

func TestMatchDocumentMismatch(t *testing.T) {
	r := mutcompare.Mentions{mention("1", "K249E", 0)}
	c := mutcompare.Mentions{mention("2", "K249E", 0)}

	result := match.Match(r, c, 0)
	if len(result.TruePositives) != 0 || len(result.FalseNegatives) != 1 || len(result.FalsePositives) != 1 {
		t.Errorf("mentions in different documents matched: %+v", result)
	}
}

func TestMatchThresholdBoundary(t *testing.T) {
	// abcd and abce are left alone by the normaliser and score exactly 75.
	r := mutcompare.Mentions{mention("1", "abcd", 0)}
	c := mutcompare.Mentions{mention("1", "abce", 0)}

	if result := match.Match(r, c, 75); len(result.TruePositives) != 1 {
		t.Errorf("score equal to threshold did not match: %+v", result)
	}
	if result := match.Match(r, c, 76); len(result.TruePositives) != 0 || len(result.FalseNegatives) != 1 || len(result.FalsePositives) != 1 {
		t.Errorf("score below threshold matched: %+v", result)
	}
}

func TestMatchDegenerateThresholds(t *testing.T) {
	r := mutcompare.Mentions{mention("1", "K249E", 0)}
	c := mutcompare.Mentions{mention("1", "zzz", 1), mention("1", "K249E", 2)}

	result := match.Match(r, c, 0)
	if len(result.TruePositives) != 1 || result.TruePositives[0].Candidate.Offset != 1 {
		t.Errorf("threshold 0 should take the first same-document candidate: %+v", result)
	}

	c = mutcompare.Mentions{mention("1", "K249Q", 1), mention("1", "p.K249E", 2)}
	result = match.Match(r, c, 100)
	if len(result.TruePositives) != 0 || len(result.FalsePositives) != 2 {
		t.Errorf("threshold 100 should only match identical text: %+v", result)
	}
}

func TestMatchCandidateOrder(t *testing.T) {
	r := mutcompare.Mentions{mention("1", "K249E", 0)}
	c := mutcompare.Mentions{mention("2", "K249E", 0), mention("1", "V600E", 1), mention("1", "K249E", 2)}

	result := match.Match(r, c, 60)
	if len(result.TruePositives) != 1 || result.TruePositives[0].Candidate.Offset != 2 {
		t.Fatalf("unexpected true positives %+v", result.TruePositives)
	}
	if len(result.FalsePositives) != 2 ||
		result.FalsePositives[0].Candidate.DocumentID != "2" ||
		result.FalsePositives[1].Candidate.Offset != 1 {
		t.Errorf("false positives out of candidate order: %+v", result.FalsePositives)
	}
}

func TestBestFit(t *testing.T) {
	r := mutcompare.Mentions{mention("1", "K249E", 0)}
	c := mutcompare.Mentions{mention("1", "K249Q", 1), mention("1", "K249E", 2)}

	first := match.NewMatcher(match.Threshold(60)).Match(r, c)
	if first.TruePositives[0].Candidate.Offset != 1 {
		t.Errorf("first-fit should take the first qualifying candidate, got %+v", first.TruePositives[0])
	}

	best := match.NewMatcher(match.Threshold(60), match.WithStrategy(match.BestFit)).Match(r, c)
	if best.TruePositives[0].Candidate.Offset != 2 || best.TruePositives[0].Similarity != 100 {
		t.Errorf("best-fit should take the identical candidate, got %+v", best.TruePositives[0])
	}
	if len(best.FalsePositives) != 1 || best.FalsePositives[0].Candidate.Offset != 1 {
		t.Errorf("unexpected false positives %+v", best.FalsePositives)
	}
}

func TestTraceStopsAtFirstFit(t *testing.T) {
	r := mutcompare.Mentions{mention("1", "K249E", 0)}
	c := mutcompare.Mentions{mention("1", "K249E", 1), mention("1", "K249E", 2)}

	var n int
	m := match.NewMatcher(match.WithTrace(func(reference, candidate mutcompare.Mention, similarity float64) {
		n++
	}))
	m.Match(r, c)
	if n != 1 {
		t.Errorf("expected one scored pair, got %d", n)
	}
}

func TestSummarise(t *testing.T) {
	r := mutcompare.Mentions{mention("1", "K249E", 0), mention("1", "abcd", 1), mention("2", "V600E", 2)}
	c := mutcompare.Mentions{mention("1", "K249E", 0), mention("1", "abce", 1), mention("3", "V600E", 2)}

	result := match.Match(r, c, 60)
	s := match.Summarise(result, r, c)
	if s.TruePositives != 2 || s.FalsePositives != 1 || s.FalseNegatives != 1 {
		t.Errorf("unexpected counts %+v", s)
	}
	if s.MeanSimilarity != 87.5 {
		t.Errorf("mean similarity = %v, want 87.5", s.MeanSimilarity)
	}
	if len(s.ReferenceOnly) != 1 || s.ReferenceOnly[0] != "2" {
		t.Errorf("reference only = %v", s.ReferenceOnly)
	}
	if len(s.CandidateOnly) != 1 || s.CandidateOnly[0] != "3" {
		t.Errorf("candidate only = %v", s.CandidateOnly)
	}
}
