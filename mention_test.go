package mutcompare_test

import (
	"github.com/hscells/mutcompare"
	"testing"
)

func TestParseOffset(t *testing.T) {
	cases := map[string]mutcompare.Offset{
		"22":   22,
		" 7 ":  7,
		"10.0": 10,
		"nan":  mutcompare.UnknownOffset,
		"":     mutcompare.UnknownOffset,
		"-3":   mutcompare.UnknownOffset,
	}
	for in, want := range cases {
		if got := mutcompare.ParseOffset(in); got != want {
			t.Errorf("ParseOffset(%q) = %v, want %v", in, got, want)
		}
	}
	if s := mutcompare.UnknownOffset.String(); s != "" {
		t.Errorf("unknown offset printed as %q", s)
	}
}

type exclaim struct{}

func (exclaim) Normalise(text string) string {
	return text + "!"
}

func TestMentions(t *testing.T) {
	m := mutcompare.Mentions{
		mutcompare.NewMention("2", "a", 0, exclaim{}),
		mutcompare.NewMention("1", "b", 1, exclaim{}),
		mutcompare.NewMention("2", "c", 2, exclaim{}),
	}
	if m[0].Normalised != "a!" {
		t.Errorf("mention not normalised: %+v", m[0])
	}

	ids := m.DocumentIDs()
	if len(ids) != 2 || ids[0] != "1" || ids[1] != "2" {
		t.Errorf("unexpected document ids %v", ids)
	}

	b := m.ByDocument()
	if len(b["2"]) != 2 || b["2"][0] != 0 || b["2"][1] != 2 {
		t.Errorf("unexpected buckets %v", b)
	}
}
