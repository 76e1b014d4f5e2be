// Package output writes the partitions produced by comparing two mention sets, as delimited tables for manual
// inspection and as a short printed summary.
package output

import (
	"encoding/csv"
	"fmt"
	"github.com/hscells/mutcompare"
	"github.com/hscells/mutcompare/match"
	"github.com/pkg/errors"
	"io"
	"os"
	"strconv"
)

// Labels name the two mention sets. Prefix forms column names (tmvar_text); Name is used in the summary.
type Labels struct {
	ReferencePrefix string
	CandidatePrefix string
	ReferenceName   string
	CandidateName   string
}

var (
	// DefaultLabels are used by the library.
	DefaultLabels = Labels{
		ReferencePrefix: "reference",
		CandidatePrefix: "candidate",
		ReferenceName:   "reference",
		CandidateName:   "candidate",
	}
	// ToolLabels name the sets after the tools compared by compare_mutations.
	ToolLabels = Labels{
		ReferencePrefix: "tmvar",
		CandidatePrefix: "bionext",
		ReferenceName:   "tmVar",
		CandidateName:   "BioNext",
	}
)

func columns(prefix string) []string {
	return []string{prefix + "_text", prefix + "_normalized", prefix + "_offset"}
}

func fields(m mutcompare.Mention) []string {
	return []string{m.Text, m.Normalised, m.Offset.String()}
}

// FormatSimilarity formats a similarity score for a table.
func FormatSimilarity(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}

func writeAll(w io.Writer, header []string, records [][]string) error {
	c := csv.NewWriter(w)
	if err := c.Write(header); err != nil {
		return err
	}
	if err := c.WriteAll(records); err != nil {
		return err
	}
	return c.Error()
}

// TruePositivesCSV writes one row per true positive: pmid, the reference text, normalised text, and offset, the
// same for the candidate, and the similarity.
func TruePositivesCSV(w io.Writer, tps []match.TruePositive, l Labels) error {
	header := []string{"pmid"}
	header = append(header, columns(l.ReferencePrefix)...)
	header = append(header, columns(l.CandidatePrefix)...)
	header = append(header, "similarity")

	records := make([][]string, len(tps))
	for i, tp := range tps {
		record := []string{tp.Reference.DocumentID}
		record = append(record, fields(tp.Reference)...)
		record = append(record, fields(tp.Candidate)...)
		records[i] = append(record, FormatSimilarity(tp.Similarity))
	}
	return writeAll(w, header, records)
}

// FalsePositivesCSV writes one row per unmatched candidate.
func FalsePositivesCSV(w io.Writer, fps []match.FalsePositive, l Labels) error {
	header := append([]string{"pmid"}, columns(l.CandidatePrefix)...)
	records := make([][]string, len(fps))
	for i, fp := range fps {
		records[i] = append([]string{fp.Candidate.DocumentID}, fields(fp.Candidate)...)
	}
	return writeAll(w, header, records)
}

// FalseNegativesCSV writes one row per unmatched reference.
func FalseNegativesCSV(w io.Writer, fns []match.FalseNegative, l Labels) error {
	header := append([]string{"pmid"}, columns(l.ReferencePrefix)...)
	records := make([][]string, len(fns))
	for i, fn := range fns {
		records[i] = append([]string{fn.Reference.DocumentID}, fields(fn.Reference)...)
	}
	return writeAll(w, header, records)
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0664)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Files are the paths a result is written to for an output prefix.
func Files(prefix string) (tp, fp, fn string) {
	return prefix + "_TP.csv", prefix + "_FP.csv", prefix + "_FN.csv"
}

// WriteResult writes the three partitions of a result to <prefix>_TP.csv, <prefix>_FP.csv, and <prefix>_FN.csv.
func WriteResult(prefix string, r match.Result, l Labels) error {
	tp, fp, fn := Files(prefix)
	err := writeFile(tp, func(w io.Writer) error { return TruePositivesCSV(w, r.TruePositives, l) })
	if err != nil {
		return errors.Wrapf(err, "could not write %s", tp)
	}
	err = writeFile(fp, func(w io.Writer) error { return FalsePositivesCSV(w, r.FalsePositives, l) })
	if err != nil {
		return errors.Wrapf(err, "could not write %s", fp)
	}
	err = writeFile(fn, func(w io.Writer) error { return FalseNegativesCSV(w, r.FalseNegatives, l) })
	if err != nil {
		return errors.Wrapf(err, "could not write %s", fn)
	}
	return nil
}

// WriteSummary prints the size of each partition.
func WriteSummary(w io.Writer, s match.Summary, l Labels) error {
	_, err := fmt.Fprintf(w, "True positives: %d\nFalse positives (%s only): %d\nFalse negatives (%s only): %d\n",
		s.TruePositives, l.CandidateName, s.FalsePositives, l.ReferenceName, s.FalseNegatives)
	return err
}
