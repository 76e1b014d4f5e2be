// Package mutcompare compares mutation mentions reported by two named-entity recognition tools. The root package
// holds the mention representation shared by the normaliser, the matcher, and the annotation readers.
package mutcompare

import (
	"sort"
	"strconv"
	"strings"
)

// Offset is the character offset of a mention in its document. Tools segment documents differently, so offsets are
// carried through to output but never compared.
type Offset int

// UnknownOffset is used when a tool does not report an offset, or reports one that is not an integer.
const UnknownOffset Offset = -1

// ParseOffset reads an offset from a table cell. Anything that is not a non-negative integer (including pandas'
// "nan") is an unknown offset rather than an error.
func ParseOffset(s string) Offset {
	s = strings.TrimSpace(s)
	// Offsets written by pandas after a float conversion look like "123.0".
	s = strings.TrimSuffix(s, ".0")
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return UnknownOffset
	}
	return Offset(v)
}

// Known reports whether the offset was supplied.
func (o Offset) Known() bool {
	return o >= 0
}

func (o Offset) String() string {
	if !o.Known() {
		return ""
	}
	return strconv.Itoa(int(o))
}

// Normaliser maps mention text to the canonical form used for similarity scoring.
type Normaliser interface {
	Normalise(text string) string
}

// Mention is a single occurrence of a mutation in a document, as reported by an annotation tool.
type Mention struct {
	DocumentID string
	Text       string
	Normalised string
	Offset     Offset
}

// NewMention creates a mention, normalising its text with n.
func NewMention(documentID, text string, offset Offset, n Normaliser) Mention {
	return Mention{
		DocumentID: documentID,
		Text:       text,
		Normalised: n.Normalise(text),
		Offset:     offset,
	}
}

// Mentions is a list of mentions in the order a tool reported them.
type Mentions []Mention

// DocumentIDs returns the distinct document ids in the list, sorted.
func (m Mentions) DocumentIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, mention := range m {
		if !seen[mention.DocumentID] {
			seen[mention.DocumentID] = true
			ids = append(ids, mention.DocumentID)
		}
	}
	sort.Strings(ids)
	return ids
}

// ByDocument groups the indices of the mentions by document id, keeping list order within each document.
func (m Mentions) ByDocument() map[string][]int {
	b := make(map[string][]int)
	for i, mention := range m {
		b[mention.DocumentID] = append(b[mention.DocumentID], i)
	}
	return b
}
