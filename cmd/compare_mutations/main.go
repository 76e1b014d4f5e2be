package main

import (
	"fmt"
	"github.com/alexflint/go-arg"
	"github.com/hscells/mutcompare"
	"github.com/hscells/mutcompare/annotation"
	"github.com/hscells/mutcompare/match"
	"github.com/hscells/mutcompare/normalise"
	"github.com/hscells/mutcompare/output"
	"log"
	"os"
	"strings"
)

var (
	name    = "compare_mutations"
	version = "17.Oct.2026"
)

type args struct {
	TmVar     string  `help:"CSV file from tmVar3 (file name must include the pmid), or a BioC XML export" arg:"required"`
	BioNExt   string  `help:"CSV file from BioNExt" arg:"required"`
	Threshold float64 `help:"Fuzzy match threshold (0-100)"`
	Out       string  `help:"Optional output prefix for TP/FP/FN CSVs"`
	Mode      string  `help:"Matching mode: first (first-fit) or best (best-fit)"`
	ASCII     bool    `help:"Transliterate mention text to ASCII before normalising"`
	Verbose   bool    `help:"Log every scored pair" arg:"-v"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
Compare tmVar3 vs BioNExt mutations with normalisation and fuzzy matching.
# %s`, name, version)
}

func main() {
	args := args{
		Threshold: 85,
		Mode:      "first",
	}
	arg.MustParse(&args)

	strategy, ok := match.Strategies[args.Mode]
	if !ok {
		log.Fatalf("unknown matching mode %q", args.Mode)
	}

	var options []func(p *normalise.Passes)
	if args.ASCII {
		options = append(options, normalise.WithASCIIFolding())
	}
	n, err := normalise.NewCached(normalise.New(options...), 4096)
	if err != nil {
		log.Fatalln(err)
	}

	tmvar, err := annotation.LoadTmVar(args.TmVar, n)
	if err != nil {
		log.Fatalln(err)
	}
	bionext, err := annotation.LoadBioNExtCSV(args.BioNExt, n)
	if err != nil {
		log.Fatalln(err)
	}

	matcherOptions := []func(m *match.Matcher){
		match.Threshold(args.Threshold),
		match.WithStrategy(strategy),
	}
	if args.Verbose {
		matcherOptions = append(matcherOptions, match.WithTrace(func(r, c mutcompare.Mention, similarity float64) {
			log.Printf("%s\t%s\t%s", r.Normalised, c.Normalised, output.FormatSimilarity(similarity))
		}))
	}

	result := match.NewMatcher(matcherOptions...).Match(tmvar, bionext)
	summary := match.Summarise(result, tmvar, bionext)

	if args.Verbose {
		log.Printf("matched with %s-fit at threshold %v", strategy, args.Threshold)
		log.Printf("mean similarity of true positives: %.2f", summary.MeanSimilarity)
		if len(summary.ReferenceOnly) > 0 {
			log.Printf("documents only annotated by tmVar3: %s", strings.Join(summary.ReferenceOnly, ", "))
		}
		if len(summary.CandidateOnly) > 0 {
			log.Printf("documents only annotated by BioNExt: %s", strings.Join(summary.CandidateOnly, ", "))
		}
	}

	err = output.WriteSummary(os.Stdout, summary, output.ToolLabels)
	if err != nil {
		log.Fatalln(err)
	}

	if len(args.Out) > 0 {
		err = output.WriteResult(args.Out, result, output.ToolLabels)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("Results saved with prefix: %s\n", args.Out)
	}
}
