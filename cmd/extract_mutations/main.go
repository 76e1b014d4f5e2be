package main

import (
	"fmt"
	"github.com/alexflint/go-arg"
	"github.com/hscells/mutcompare/annotation"
	"log"
	"os"
)

var (
	name    = "extract_mutations"
	version = "17.Oct.2026"
)

type args struct {
	File string   `help:"Path to BioC file" arg:"required"`
	Out  string   `help:"Optional output CSV file"`
	JSON bool     `help:"Read BioC JSON instead of BioC XML"`
	Type []string `help:"Annotation types to extract (default DNAMutation)" arg:"separate"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
Extract mutation annotations with their PMID from a BioC file.
# %s`, name, version)
}

func main() {
	var args args
	arg.MustParse(&args)

	f, err := os.Open(args.File)
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()

	var anns annotation.Annotations
	if args.JSON {
		anns, err = annotation.ExtractJSON(f, args.Type...)
	} else {
		anns, err = annotation.ExtractXML(f, args.Type...)
	}
	if err != nil {
		log.Fatalln(err)
	}

	if len(args.Out) == 0 {
		for _, a := range anns {
			fmt.Printf("%+v\n", a)
		}
		return
	}

	if len(anns) == 0 {
		fmt.Println("No mutations found.")
		return
	}

	o, err := os.OpenFile(args.Out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0664)
	if err != nil {
		log.Fatalln(err)
	}
	err = anns.WriteCSV(o)
	if err != nil {
		log.Fatalln(err)
	}
	err = o.Close()
	if err != nil {
		log.Fatalln(err)
	}
}
