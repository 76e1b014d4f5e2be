package fetch

import (
	"encoding/csv"
	"github.com/pkg/errors"
	"io"
	"os"
	"strings"
)

// Identifier columns of the input lists.
const (
	ColumnPMID  = "PMID"
	ColumnPMCID = "PMCID"
)

// ReadIDs reads the non-empty values of a column from a CSV file with a header. Spreadsheet exports often start with
// a byte order mark, which would otherwise become part of the first column name.
func ReadIDs(r io.Reader, column string) ([]string, error) {
	c := csv.NewReader(r)
	header, err := c.Read()
	if err == io.EOF {
		return nil, errors.New("id list is empty")
	}
	if err != nil {
		return nil, errors.Wrap(err, "malformed id list")
	}

	idx := -1
	for i, name := range header {
		if strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.Errorf("id list has no %s column", column)
	}

	var ids []string
	for {
		record, err := c.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "malformed id list")
		}
		if id := strings.TrimSpace(record[idx]); len(id) > 0 {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// LoadIDs reads a column of ids from a file.
func LoadIDs(path, column string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open id list")
	}
	defer f.Close()
	return ReadIDs(f, column)
}
