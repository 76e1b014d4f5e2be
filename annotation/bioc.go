package annotation

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"github.com/hscells/mutcompare"
	"github.com/pkg/errors"
	"io"
	"strconv"
)

// Annotation types assigned to mutations by tmVar3.
const (
	DNAMutation     = "DNAMutation"
	ProteinMutation = "ProteinMutation"
	SNP             = "SNP"
)

// Annotation is a located, typed annotation from a BioC document.
type Annotation struct {
	PMID       string
	Identifier string
	Type       string
	Text       string
	Offset     int
	Length     int
}

// Annotations is a list of annotations in document order.
type Annotations []Annotation

// Mentions converts the annotations into mentions.
func (a Annotations) Mentions(n mutcompare.Normaliser) mutcompare.Mentions {
	m := make(mutcompare.Mentions, len(a))
	for i, ann := range a {
		m[i] = mutcompare.NewMention(ann.PMID, ann.Text, mutcompare.Offset(ann.Offset), n)
	}
	return m
}

// WriteCSV writes the annotations as a table with the columns pmid, identifier, text, offset, and length.
func (a Annotations) WriteCSV(w io.Writer) error {
	c := csv.NewWriter(w)
	err := c.Write([]string{ColumnPMID, ColumnIdentifier, ColumnText, ColumnOffset, ColumnLength})
	if err != nil {
		return err
	}
	for _, ann := range a {
		err = c.Write([]string{ann.PMID, ann.Identifier, ann.Text, strconv.Itoa(ann.Offset), strconv.Itoa(ann.Length)})
		if err != nil {
			return err
		}
	}
	c.Flush()
	return c.Error()
}

func typeSet(types []string) map[string]bool {
	if len(types) == 0 {
		types = []string{DNAMutation}
	}
	m := make(map[string]bool, len(types))
	for _, t := range types {
		m[t] = true
	}
	return m
}

type biocInfon struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

type biocLocation struct {
	Offset int `xml:"offset,attr" json:"offset"`
	Length int `xml:"length,attr" json:"length"`
}

type biocAnnotation struct {
	Infons    []biocInfon    `xml:"infon"`
	Locations []biocLocation `xml:"location"`
	Text      string         `xml:"text"`
}

type biocPassage struct {
	Annotations []biocAnnotation `xml:"annotation"`
}

type biocDocument struct {
	ID       string        `xml:"id"`
	Passages []biocPassage `xml:"passage"`
}

func (a biocAnnotation) infon(key string) string {
	for _, i := range a.Infons {
		if i.Key == key {
			return i.Value
		}
	}
	return ""
}

// ExtractXML streams a BioC XML collection and returns the annotations of the given types, one per location. With no
// types, DNA mutations are extracted.
func ExtractXML(r io.Reader, types ...string) (Annotations, error) {
	want := typeSet(types)
	var anns Annotations

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "malformed BioC XML")
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "document" {
			continue
		}

		var doc biocDocument
		if err := dec.DecodeElement(&doc, &start); err != nil {
			return nil, errors.Wrap(err, "malformed BioC document")
		}
		for _, p := range doc.Passages {
			for _, a := range p.Annotations {
				t := a.infon("type")
				if !want[t] {
					continue
				}
				for _, loc := range a.Locations {
					anns = append(anns, Annotation{
						PMID:       doc.ID,
						Identifier: a.infon("identifier"),
						Type:       t,
						Text:       a.Text,
						Offset:     loc.Offset,
						Length:     loc.Length,
					})
				}
			}
		}
	}
	return anns, nil
}

type biocJSONAnnotation struct {
	Infons    map[string]interface{} `json:"infons"`
	Locations []biocLocation         `json:"locations"`
	Text      string                 `json:"text"`
}

type biocJSONDocument struct {
	ID       string `json:"id"`
	Passages []struct {
		Annotations []biocJSONAnnotation `json:"annotations"`
	} `json:"passages"`
}

type biocJSONCollection struct {
	Documents []biocJSONDocument `json:"documents"`
	// PubTator3 wraps the documents of an export in this key.
	PubTator3 []biocJSONDocument `json:"PubTator3"`
}

// infon formats an infon value; BioC JSON writers are not consistent about infons being strings.
func (a biocJSONAnnotation) infon(key string) string {
	v, ok := a.Infons[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// ExtractJSON reads a BioC JSON collection and returns the annotations of the given types, one per location. With no
// types, DNA mutations are extracted.
func ExtractJSON(r io.Reader, types ...string) (Annotations, error) {
	want := typeSet(types)

	var c biocJSONCollection
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, errors.Wrap(err, "malformed BioC JSON")
	}

	var anns Annotations
	for _, doc := range append(c.Documents, c.PubTator3...) {
		for _, p := range doc.Passages {
			for _, a := range p.Annotations {
				t := a.infon("type")
				if !want[t] {
					continue
				}
				for _, loc := range a.Locations {
					anns = append(anns, Annotation{
						PMID:       doc.ID,
						Identifier: a.infon("identifier"),
						Type:       t,
						Text:       a.Text,
						Offset:     loc.Offset,
						Length:     loc.Length,
					})
				}
			}
		}
	}
	return anns, nil
}
