package main

import (
	"fmt"
	"github.com/alexflint/go-arg"
	"github.com/hscells/mutcompare/fetch"
	"io/ioutil"
	"log"
	"path/filepath"
)

var (
	name    = "extract_xls"
	version = "17.Oct.2026"
)

type args struct {
	Dir    string `help:"Directory of downloaded .tar.gz or .tgz packages" arg:"positional,required"`
	Output string `help:"Directory to save spreadsheets to" arg:"-o"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
Extract the supplementary .xls and .xlsx files of Open Access packages into one directory.
# %s`, name, version)
}

func main() {
	args := args{
		Output: "extracted_xls",
	}
	arg.MustParse(&args)

	files, err := ioutil.ReadDir(args.Dir)
	if err != nil {
		log.Fatalln(err)
	}

	for _, f := range files {
		if f.IsDir() || !fetch.IsPackage(f.Name()) {
			continue
		}
		names, err := fetch.ExtractFlatFile(filepath.Join(args.Dir, f.Name()), args.Output, fetch.SpreadsheetFiles...)
		if err != nil {
			log.Printf("error processing %s: %v", f.Name(), err)
			continue
		}
		for _, n := range names {
			log.Printf("extracted %s from %s", n, f.Name())
		}
	}
}
