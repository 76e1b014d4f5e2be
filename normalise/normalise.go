// Package normalise canonicalises mutation mentions so that equivalent mentions written with different amino acid
// and nucleotide conventions compare as similar strings.
//
// Normalisation is five passes over the whole string, always in this order:
//
//	1. lowercase a, c, g, t, u with no letter on either side are upper-cased (c.123a>g -> C.123A>G)
//	2. standalone three-letter amino acid codes become one letter (Lys -> K)
//	3. a one-letter amino acid code at the start of a word followed by digits becomes three letters (K249 -> Lys249)
//	4. standalone nucleotide names become one letter (Guanine -> G)
//	5. standalone one-letter nucleotides, optionally followed by digits, become names (G -> Guanine)
//
// Passes 3 and 5 can re-expand what passes 2 and 4 contracted, so that "Ala" normalises to "Adenine". Both sides of a
// comparison must go through the same passes, so this order is kept as is.
package normalise

import (
	"fmt"
	"github.com/hscells/go-unidecode"
	"regexp"
	"strings"
	"unicode"
)

// AminoAcids maps one-letter amino acid codes to three-letter codes.
var AminoAcids = []struct{ One, Three string }{
	{"A", "Ala"}, {"R", "Arg"}, {"N", "Asn"}, {"D", "Asp"}, {"C", "Cys"},
	{"E", "Glu"}, {"Q", "Gln"}, {"G", "Gly"}, {"H", "His"}, {"I", "Ile"},
	{"L", "Leu"}, {"K", "Lys"}, {"M", "Met"}, {"F", "Phe"}, {"P", "Pro"},
	{"S", "Ser"}, {"T", "Thr"}, {"W", "Trp"}, {"Y", "Tyr"}, {"V", "Val"},
}

// Nucleotides maps one-letter nucleotide codes to their names.
var Nucleotides = []struct{ One, Name string }{
	{"A", "Adenine"}, {"C", "Cytosine"}, {"G", "Guanine"}, {"T", "Thymine"}, {"U", "Uracil"},
}

type rule struct {
	re   *regexp.Regexp
	repl string
}

var (
	aminoThreeToOne []rule
	aminoOneToThree []rule
	nucleoNameToOne []rule
	nucleoOneToName []rule
)

func init() {
	for _, aa := range AminoAcids {
		aminoThreeToOne = append(aminoThreeToOne, rule{
			re:   regexp.MustCompile(fmt.Sprintf(`(?i)\b%s\b`, aa.Three)),
			repl: aa.One,
		})
		aminoOneToThree = append(aminoOneToThree, rule{
			re:   regexp.MustCompile(fmt.Sprintf(`(?i)\b%s(\d+)`, aa.One)),
			repl: aa.Three + "${1}",
		})
	}
	for _, nt := range Nucleotides {
		nucleoNameToOne = append(nucleoNameToOne, rule{
			re:   regexp.MustCompile(fmt.Sprintf(`(?i)\b%s\b`, nt.Name)),
			repl: nt.One,
		})
		nucleoOneToName = append(nucleoOneToName, rule{
			re:   regexp.MustCompile(fmt.Sprintf(`\b%s(\d*)\b`, nt.One)),
			repl: nt.Name + "${1}",
		})
	}
}

// upperNucleotides upper-cases nucleotide letters that are not part of a longer word. Digits and punctuation
// separate, so both letters of c.123a>g are bare but none of those in Glu are.
func upperNucleotides(s string) string {
	r := []rune(s)
	for i, c := range r {
		if !strings.ContainsRune("acgtu", c) {
			continue
		}
		if i > 0 && unicode.IsLetter(r[i-1]) || i < len(r)-1 && unicode.IsLetter(r[i+1]) {
			continue
		}
		r[i] = unicode.ToUpper(c)
	}
	return string(r)
}

func apply(rules []rule, s string) string {
	for _, r := range rules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}

// Passes is the five-pass mutation normaliser.
type Passes struct {
	fold bool
}

// WithASCIIFolding transliterates text to ASCII before the first pass, e.g. for mentions containing Greek letters
// or typographic arrows.
func WithASCIIFolding() func(p *Passes) {
	return func(p *Passes) {
		p.fold = true
	}
}

// New creates a normaliser.
func New(options ...func(p *Passes)) Passes {
	p := &Passes{}
	for _, option := range options {
		option(p)
	}
	return *p
}

// Normalise canonicalises text. It never fails; text with nothing to rewrite is returned unchanged.
func (p Passes) Normalise(text string) string {
	s := text
	if p.fold {
		s = unidecode.Unidecode(s)
	}
	s = upperNucleotides(s)
	s = apply(aminoThreeToOne, s)
	s = apply(aminoOneToThree, s)
	s = apply(nucleoNameToOne, s)
	s = apply(nucleoOneToName, s)
	return s
}

// Default is the normaliser used when none is configured.
var Default = New()

// Normalise canonicalises text using the default normaliser.
func Normalise(text string) string {
	return Default.Normalise(text)
}
