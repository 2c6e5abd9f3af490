package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ccl-format/go-ccl/debug"
	"github.com/ccl-format/go-ccl/encode"
	"github.com/ccl-format/go-ccl/ir"
	"github.com/ccl-format/go-ccl/parse"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := 0
	for _, arg := range args {
		ok, err := checkArg(cfg, cc.Out, arg)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkArg parses a document, reprints its entries and parses the output
// again. The two entry sequences must match; a mismatch prints a diff of
// the two printed forms.
func checkArg(cfg *CheckConfig, w io.Writer, arg string) (bool, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return false, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return false, err
	}
	entries, err := parse.Parse(string(in), cfg.parseOpts()...)
	if err != nil {
		fmt.Fprintf(w, "%s: parse error: %v\n", arg, err)
		return false, nil
	}
	printed := encode.EntriesString(entries)
	if debug.Encode() {
		debug.Logf("check: reprinted %s:\n%s", arg, printed)
	}
	reparsed, err := parse.Parse(printed, cfg.parseOpts()...)
	if err != nil {
		fmt.Fprintf(w, "%s: reprint does not parse: %v\n", arg, err)
		return false, nil
	}
	if ir.EntriesEqual(entries, reparsed) {
		fmt.Fprintf(w, "%s: ok\n", arg)
		return true, nil
	}
	fmt.Fprintf(w, "%s: round trip mismatch\n", arg)
	if !cfg.Quiet {
		dmp := diffpatch.New()
		diffs := dmp.DiffMain(printed, encode.EntriesString(reparsed), false)
		fmt.Fprint(w, dmp.DiffPrettyText(diffs))
	}
	return false, nil
}
