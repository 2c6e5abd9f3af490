package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ccl-format/go-ccl/parse"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted key path", cli.ErrUsage)
	}
	path := strings.Split(args[0], ".")
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := getArg(cfg, cc.Out, arg, path); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, strings.Join(path, "."), err)
		}
	}
	return nil
}

func getArg(cfg *GetConfig, w io.Writer, arg string, path []string) error {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	node, err := parse.Load(string(in), cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	res, err := node.GetPath(path...)
	if err != nil {
		return err
	}
	return writeNode(cfg.MainConfig, w, res, cfg.encOpts(w))
}
