package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ccl-format/go-ccl/debug"
	"github.com/ccl-format/go-ccl/encode"
	"github.com/ccl-format/go-ccl/gomap"
	"github.com/ccl-format/go-ccl/ir"
	"github.com/ccl-format/go-ccl/parse"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return viewReader(cfg, cc.Out, cc.In)
	}
	for _, file := range args {
		if err := viewFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := viewReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func viewReader(cfg *ViewConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	node, err := parse.Load(string(in), cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding: %w", err)
	}
	if debug.Parse() {
		debug.Logf("view: loaded:\n%s", debug.CCL{Node: node})
	}
	return writeNode(cfg.MainConfig, w, node, cfg.encOpts(w))
}

// writeNode prints a node in the selected output format. CCL is the
// canonical printer; JSON and YAML go through the untyped decode.
func writeNode(cfg *MainConfig, w io.Writer, node *ir.Node, encOpts []encode.EncodeOption) error {
	switch f := cfg.outFmt(); {
	case f.IsJSON():
		var v any
		if err := gomap.FromIR(node, &v); err != nil {
			return fmt.Errorf("error converting: %w", err)
		}
		d, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case f.IsYAML():
		var v any
		if err := gomap.FromIR(node, &v); err != nil {
			return fmt.Errorf("error converting: %w", err)
		}
		d, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		_, err = w.Write(d)
		return err
	default:
		if err := encode.Encode(node, w, encOpts...); err != nil {
			return fmt.Errorf("error encoding: %w", err)
		}
		return nil
	}
}
