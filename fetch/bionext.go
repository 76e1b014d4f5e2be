package fetch

import (
	"bytes"
	"context"
	"github.com/pkg/errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BioNExt runs the BioNExt tagger, linker, and extractor over a document. BioNExt is a Python project run through
// pipenv, so this shells out to it.
type BioNExt struct {
	// Main is the path to BioNExt's entry point script.
	Main string
	// PipenvDir is the pipenv project BioNExt is installed in.
	PipenvDir string
	// OutputDir receives <pmid>.txt with the run's standard output, and the tagger, linker, and extractor folders.
	OutputDir string
	// Timeout bounds a single run.
	Timeout time.Duration
	// Command is the interpreter invocation, by default pipenv run python.
	Command []string
}

// NewBioNExt creates a runner with the default command and timeout.
func NewBioNExt(main, pipenvDir, outputDir string) BioNExt {
	return BioNExt{
		Main:      main,
		PipenvDir: pipenvDir,
		OutputDir: outputDir,
		Timeout:   10000 * time.Second,
		Command:   []string{"pipenv", "run", "python"},
	}
}

// Folders are the BioNExt output folders.
func (b BioNExt) Folders() (tagger, linker, extractor string) {
	return filepath.Join(b.OutputDir, "tagger"), filepath.Join(b.OutputDir, "linker"), filepath.Join(b.OutputDir, "extractor")
}

// Args are the arguments of a run over pmid.
func (b BioNExt) Args(pmid string) []string {
	tagger, linker, extractor := b.Folders()
	args := append([]string{}, b.Command[1:]...)
	return append(args, b.Main, "PMID:"+pmid,
		"--tagger.output_folder", tagger,
		"--linker.output_folder", linker,
		"--extractor.output_folder", extractor)
}

// Output is where the standard output of a run over pmid is kept.
func (b BioNExt) Output(pmid string) string {
	return filepath.Join(b.OutputDir, pmid+".txt")
}

// Run runs BioNExt over pmid. Documents with existing output are not run again, in which case skipped is true.
func (b BioNExt) Run(ctx context.Context, pmid string) (skipped bool, err error) {
	out := b.Output(pmid)
	if _, err := os.Stat(out); err == nil {
		return true, nil
	}

	tagger, linker, extractor := b.Folders()
	for _, dir := range []string{tagger, linker, extractor} {
		if err := os.MkdirAll(dir, 0775); err != nil {
			return false, err
		}
	}

	if b.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, b.Command[0], b.Args(pmid)...)
	cmd.Dir = b.PipenvDir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return false, errors.Wrapf(err, "BioNExt failed on %s: %s", pmid, strings.TrimSpace(stderr.String()))
	}

	return false, errors.Wrapf(os.WriteFile(out, stdout.Bytes(), 0664), "could not write %s", out)
}
