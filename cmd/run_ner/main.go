package main

import (
	"context"
	"fmt"
	"github.com/alexflint/go-arg"
	goerrors "github.com/go-errors/errors"
	"github.com/hscells/mutcompare/fetch"
	"gopkg.in/cheggaaa/pb.v1"
	"log"
	"os"
)

var (
	name    = "run_ner"
	version = "17.Oct.2026"
)

const (
	toolTmVar   = "tmVar3"
	toolBioNExt = "bionext"
)

type args struct {
	Input        string `help:"Path to CSV file with an id column" arg:"-i,required"`
	Output       string `help:"Directory to save annotations to" arg:"-o,required"`
	IgnoreErrors bool   `help:"Continue on errors" arg:"--ignore-errors"`
	Tool         string `help:"Annotation tool to use: tmVar3 or bionext"`
	PipenvDir    string `help:"Path to the Pipenv project for BioNExt" arg:"--pipenv-dir"`
	BioNExtPath  string `help:"Path to the BioNExt main" arg:"--bionext-path"`
	Column       string `help:"Id column of the input: PMID, or PMCID to resolve PubMed ids through Entrez"`
	Config       string `help:"Path to configuration file (default ~/.mutcompare)"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
Get the tmVar3 or BioNExt annotations for a list of articles.
# %s`, name, version)
}

func main() {
	args := args{
		Tool:        toolTmVar,
		PipenvDir:   ".",
		BioNExtPath: ".",
		Column:      fetch.ColumnPMID,
	}
	arg.MustParse(&args)

	if args.Tool != toolTmVar && args.Tool != toolBioNExt {
		log.Fatalf("unknown tool %q", args.Tool)
	}

	if len(args.Config) == 0 {
		var err error
		args.Config, err = fetch.DefaultConfigPath()
		if err != nil {
			log.Fatalln(err)
		}
	}
	c, err := fetch.LoadConfig(args.Config)
	if err != nil {
		log.Fatalln(err)
	}

	ids, err := fetch.LoadIDs(args.Input, args.Column)
	if err != nil {
		log.Fatalln(err)
	}

	err = os.MkdirAll(args.Output, 0775)
	if err != nil {
		log.Fatalln(err)
	}

	var resolver *fetch.EntrezResolver
	if args.Column == fetch.ColumnPMCID && args.Tool == toolTmVar {
		r := fetch.NewEntrezResolver(
			fetch.EntrezTool(c.Entrez.Tool),
			fetch.EntrezEmail(c.Entrez.Email),
			fetch.EntrezAPIKey(c.Entrez.Key))
		resolver = &r
	}

	store := fetch.NewStore(args.Output)
	pubtator := fetch.NewPubTator(store,
		fetch.PubTatorLimiter(fetch.NewLimiter(c.Delay())),
		fetch.PubTatorUserAgent(c.HTTP.UserAgent))
	bionext := fetch.NewBioNExt(args.BioNExtPath, args.PipenvDir, args.Output)

	ctx := context.Background()
	bar := pb.New(len(ids))
	bar.Start()
	for _, id := range ids {
		bar.Increment()
		log.Printf("processing %s with %s", id, args.Tool)

		var (
			skipped bool
			path    string
		)
		switch args.Tool {
		case toolTmVar:
			pmid := id
			if resolver != nil {
				pmid, err = resolver.PMID(id)
				if err != nil {
					break
				}
			}
			path = store.Path(pubtator.Key(pmid))
			skipped, err = pubtator.Download(ctx, pmid)
		case toolBioNExt:
			path = bionext.Output(id)
			skipped, err = bionext.Run(ctx, id)
		}

		if err != nil {
			if !args.IgnoreErrors {
				bar.Finish()
				log.Fatalf("%s: error - %v", id, err)
			}
			log.Printf("%s: error - %s", id, goerrors.Wrap(err, 0).ErrorStack())
			continue
		}
		if skipped {
			log.Printf("%s: %s already exists", id, path)
		}
	}
	bar.Finish()
}
