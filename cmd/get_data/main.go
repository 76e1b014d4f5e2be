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
	name    = "get_data"
	version = "17.Oct.2026"
)

type args struct {
	Input        string `help:"Path to CSV file with PMCID column" arg:"-i,required"`
	Output       string `help:"Directory to save extracted files" arg:"-o,required"`
	OnlyXML      bool   `help:"Extract only .nxml files" arg:"--only-xml"`
	OnlyXLS      bool   `help:"Extract only .xls and .xlsx files" arg:"--only-xls"`
	IgnoreErrors bool   `help:"Continue on errors" arg:"--ignore-errors"`
	Config       string `help:"Path to configuration file (default ~/.mutcompare)"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
Download PMC Open Access packages for the PMCIDs in a CSV file.
# %s`, name, version)
}

func main() {
	var args args
	arg.MustParse(&args)

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

	pmcids, err := fetch.LoadIDs(args.Input, fetch.ColumnPMCID)
	if err != nil {
		log.Fatalln(err)
	}

	err = os.MkdirAll(args.Output, 0775)
	if err != nil {
		log.Fatalln(err)
	}

	var suffixes []string
	if args.OnlyXML {
		suffixes = append(suffixes, fetch.ArticleFiles...)
	}
	if args.OnlyXLS {
		suffixes = append(suffixes, fetch.SpreadsheetFiles...)
	}

	oa := fetch.NewOA(
		fetch.OALimiter(fetch.NewLimiter(c.Delay())),
		fetch.OAUserAgent(c.HTTP.UserAgent))

	ctx := context.Background()
	bar := pb.New(len(pmcids))
	bar.Start()
	for _, pmcid := range pmcids {
		bar.Increment()
		err := oa.Download(ctx, pmcid, args.Output, suffixes...)
		switch err.(type) {
		case nil:
			log.Printf("extracted %s", pmcid)
			continue
		case fetch.OAServiceError:
			log.Printf("%s: %v", pmcid, err)
			continue
		}
		switch err {
		case fetch.ErrExists:
			log.Printf("skipping %s, already exists", pmcid)
		case fetch.ErrNoArchive:
			log.Printf("no archive found for %s, skipping", pmcid)
		default:
			if !args.IgnoreErrors {
				bar.Finish()
				log.Fatalln(err)
			}
			log.Println(goerrors.Wrap(err, 0).ErrorStack())
		}
	}
	bar.Finish()
}
