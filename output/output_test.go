package output_test

import (
	"bytes"
	"github.com/hscells/mutcompare"
	"github.com/hscells/mutcompare/match"
	"github.com/hscells/mutcompare/output"
	"io/ioutil"
	"path/filepath"
	"testing"
)

var (
	ref  = mutcompare.Mention{DocumentID: "1", Text: "K249E", Normalised: "Lys249E", Offset: 22}
	cand = mutcompare.Mention{DocumentID: "1", Text: "Lys249Glu", Normalised: "Lys249Glu", Offset: mutcompare.UnknownOffset}

	result = match.Result{
		TruePositives:  []match.TruePositive{{Reference: ref, Candidate: cand, Similarity: 75}},
		FalsePositives: []match.FalsePositive{{Candidate: cand}},
		FalseNegatives: []match.FalseNegative{{Reference: ref}},
	}
)

func TestTruePositivesCSV(t *testing.T) {
	var buff bytes.Buffer
	if err := output.TruePositivesCSV(&buff, result.TruePositives, output.ToolLabels); err != nil {
		t.Fatal(err)
	}
	want := "pmid,tmvar_text,tmvar_normalized,tmvar_offset,bionext_text,bionext_normalized,bionext_offset,similarity\n" +
		"1,K249E,Lys249E,22,Lys249Glu,Lys249Glu,,75\n"
	if buff.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buff.String(), want)
	}
}

func TestWriteResult(t *testing.T) {
	dir, err := ioutil.TempDir("", "output")
	if err != nil {
		t.Fatal(err)
	}
	prefix := filepath.Join(dir, "run")
	if err := output.WriteResult(prefix, result, output.DefaultLabels); err != nil {
		t.Fatal(err)
	}

	_, fp, fn := output.Files(prefix)
	b, err := ioutil.ReadFile(fp)
	if err != nil {
		t.Fatal(err)
	}
	if want := "pmid,candidate_text,candidate_normalized,candidate_offset\n1,Lys249Glu,Lys249Glu,\n"; string(b) != want {
		t.Errorf("got %q, want %q", string(b), want)
	}
	b, err = ioutil.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if want := "pmid,reference_text,reference_normalized,reference_offset\n1,K249E,Lys249E,22\n"; string(b) != want {
		t.Errorf("got %q, want %q", string(b), want)
	}
}

func TestWriteSummary(t *testing.T) {
	var buff bytes.Buffer
	s := match.Summary{TruePositives: 1, FalsePositives: 2, FalseNegatives: 3}
	if err := output.WriteSummary(&buff, s, output.ToolLabels); err != nil {
		t.Fatal(err)
	}
	want := "True positives: 1\nFalse positives (BioNext only): 2\nFalse negatives (tmVar only): 3\n"
	if buff.String() != want {
		t.Errorf("got %q, want %q", buff.String(), want)
	}
}

func TestFormatSimilarity(t *testing.T) {
	if s := output.FormatSimilarity(85.5); s != "85.5" {
		t.Errorf("got %s", s)
	}
}
