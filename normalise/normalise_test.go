package normalise_test

import (
	"github.com/hscells/mutcompare/normalise"
	"testing"
)

func TestNormalise(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"K249E", "Lys249E"},
		{"p.K249E", "p.Lys249E"},
		{"k249e", "Lys249e"},
		{"V600E", "Val600E"},
		// Three-letter codes attached to digits are not standalone words.
		{"Lys249Glu", "Lys249Glu"},
		{"p.Val600Glu", "p.Val600Glu"},
		// Nucleotides next to digits or punctuation are upper-cased; only standalone ones are then expanded.
		{"c.123a>g", "Cytosine.123A>Guanine"},
		{"c.123A>G", "Cytosine.123A>Guanine"},
		{"c.35G>A", "Cytosine.35G>Adenine"},
		{"a123g", "Ala123G"},
		// A contracted amino acid is re-expanded as a nucleotide.
		{"Ala", "Adenine"},
		{"cys", "Cytosine"},
		{"Asp", "D"},
		{"Guanine", "Guanine"},
		{"THYMINE", "Thymine"},
		{"U12", "Uracil12"},
		{"rs121913529", "rs121913529"},
		{"", ""},
		{"...", "..."},
	}
	for _, c := range cases {
		if got := normalise.Normalise(c.in); got != c.want {
			t.Errorf("Normalise(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// Normalisation is not assumed to be idempotent. These pin what a second pass does to already normalised text.
func TestNormaliseTwice(t *testing.T) {
	cases := []struct {
		in, once, twice string
	}{
		{"Ala", "Adenine", "Adenine"},
		{"Asp", "D", "D"},
		{"K249E", "Lys249E", "Lys249E"},
		{"c.123a>g", "Cytosine.123A>Guanine", "Cytosine.123A>Guanine"},
	}
	for _, c := range cases {
		once := normalise.Normalise(c.in)
		if once != c.once {
			t.Errorf("once: Normalise(%q) = %q, want %q", c.in, once, c.once)
		}
		if twice := normalise.Normalise(once); twice != c.twice {
			t.Errorf("twice: Normalise(%q) = %q, want %q", once, twice, c.twice)
		}
	}
}

func TestNormaliseCaseVariants(t *testing.T) {
	for _, pair := range [][2]string{
		{"c.123a>g", "c.123A>G"},
		{"a123g", "A123G"},
		{"c.35g>a", "c.35G>A"},
	} {
		if a, b := normalise.Normalise(pair[0]), normalise.Normalise(pair[1]); a != b {
			t.Errorf("%q normalised to %q but %q normalised to %q", pair[0], a, pair[1], b)
		}
	}
}

func TestASCIIFolding(t *testing.T) {
	if got := normalise.Normalise("α"); got != "α" {
		t.Errorf("default normaliser changed %q to %q", "α", got)
	}
	n := normalise.New(normalise.WithASCIIFolding())
	if got := n.Normalise("α"); got != "Adenine" {
		t.Errorf("got %q, want %q", got, "Adenine")
	}
}

func TestCached(t *testing.T) {
	c, err := normalise.NewCached(normalise.Default, 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"K249E", "K249E", "c.123a>g", "Ala"} {
		if got, want := c.Normalise(s), normalise.Normalise(s); got != want {
			t.Errorf("cached Normalise(%q) = %q, want %q", s, got, want)
		}
	}
	if c.Len() != 2 {
		t.Errorf("expected cache to hold 2 entries, got %d", c.Len())
	}

	if _, err := normalise.NewCached(normalise.Default, 0); err == nil {
		t.Error("expected an error for a zero sized cache")
	}
}
