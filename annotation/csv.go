// Package annotation reads the mutation mentions produced by annotation tools: the CSV tables written for tmVar3
// and BioNExt output, and BioC XML or JSON documents exported by PubTator3.
package annotation

import (
	"encoding/csv"
	"github.com/hscells/mutcompare"
	"github.com/pkg/errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Column names shared by the mention tables.
const (
	ColumnPMID       = "pmid"
	ColumnIdentifier = "identifier"
	ColumnText       = "text"
	ColumnOffset     = "offset"
	ColumnLength     = "length"
)

const bom = "\ufeff"

// table is a CSV file with a header row.
type table struct {
	columns map[string]int
	rows    [][]string
}

func (t table) get(row []string, column string) string {
	return row[t.columns[column]]
}

// readTable reads a CSV table, failing if any of the required columns are missing from the header.
func readTable(r io.Reader, required ...string) (table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return table{}, errors.Wrap(err, "malformed csv")
	}
	if len(records) == 0 {
		return table{}, errors.New("csv has no header")
	}

	t := table{columns: make(map[string]int), rows: records[1:]}
	for i, name := range records[0] {
		if i == 0 {
			name = strings.TrimPrefix(name, bom)
		}
		t.columns[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := t.columns[name]; !ok {
			return table{}, errors.Errorf("csv is missing the %q column", name)
		}
	}
	return t, nil
}

// ReadTmVarCSV reads the mentions in a tmVar3 table. These tables hold a single document, so every mention is
// assigned pmid regardless of any pmid column.
func ReadTmVarCSV(r io.Reader, pmid string, n mutcompare.Normaliser) (mutcompare.Mentions, error) {
	t, err := readTable(r, ColumnText, ColumnOffset)
	if err != nil {
		return nil, err
	}
	mentions := make(mutcompare.Mentions, len(t.rows))
	for i, row := range t.rows {
		mentions[i] = mutcompare.NewMention(pmid, t.get(row, ColumnText), mutcompare.ParseOffset(t.get(row, ColumnOffset)), n)
	}
	return mentions, nil
}

// ReadBioNExtCSV reads the mentions in a BioNExt table, which may hold many documents.
func ReadBioNExtCSV(r io.Reader, n mutcompare.Normaliser) (mutcompare.Mentions, error) {
	t, err := readTable(r, ColumnPMID, ColumnText, ColumnOffset)
	if err != nil {
		return nil, err
	}
	mentions := make(mutcompare.Mentions, len(t.rows))
	for i, row := range t.rows {
		mentions[i] = mutcompare.NewMention(
			strings.TrimSpace(t.get(row, ColumnPMID)),
			t.get(row, ColumnText),
			mutcompare.ParseOffset(t.get(row, ColumnOffset)),
			n)
	}
	return mentions, nil
}

// PMIDFromPath derives the document id of a tmVar3 table from its file name, so that 12345.xml.csv and
// 12345.txt.csv both belong to 12345.
func PMIDFromPath(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.Replace(stem, ".xml", "", -1)
	return strings.Replace(stem, ".txt", "", -1)
}

// LoadTmVarCSV reads a tmVar3 table from disk.
func LoadTmVarCSV(path string, n mutcompare.Normaliser) (mutcompare.Mentions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open tmVar3 table")
	}
	defer f.Close()
	m, err := ReadTmVarCSV(f, PMIDFromPath(path), n)
	return m, errors.Wrapf(err, "could not read tmVar3 table %s", path)
}

// LoadTmVar reads tmVar3 mentions from either a tmVar3 table or, for a .xml path, the BioC export the table would be
// extracted from. All mutation types of the export are read.
func LoadTmVar(path string, n mutcompare.Normaliser) (mutcompare.Mentions, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".xml") {
		return LoadTmVarCSV(path, n)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open BioC export")
	}
	defer f.Close()
	anns, err := ExtractXML(f, DNAMutation, ProteinMutation, SNP)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read BioC export %s", path)
	}
	return anns.Mentions(n), nil
}

// LoadBioNExtCSV reads a BioNExt table from disk.
func LoadBioNExtCSV(path string, n mutcompare.Normaliser) (mutcompare.Mentions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open BioNExt table")
	}
	defer f.Close()
	m, err := ReadBioNExtCSV(f, n)
	return m, errors.Wrapf(err, "could not read BioNExt table %s", path)
}
