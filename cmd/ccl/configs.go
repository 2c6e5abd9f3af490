package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ccl-format/go-ccl/encode"
	"github.com/ccl-format/go-ccl/format"
	"github.com/ccl-format/go-ccl/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Loose bool `cli:"name=loose desc='split on any = instead of spaced delimiters'"`
	CRLF  bool `cli:"name=crlf desc='normalize CRLF line endings while parsing'"`
	Tabs  bool `cli:"name=tabs desc='treat tabs as spaces in values'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outFmt() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.CCLFormat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Loose {
		res = append(res, parse.LooseSpacing())
	}
	if cfg.CRLF {
		res = append(res, parse.NormalizeCRLF())
	}
	if cfg.Tabs {
		res = append(res, parse.TabsToSpaces())
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if !cfg.outFmt().IsCCL() {
		// Colors belong to the canonical printer; JSON and YAML
		// output is never colorized.
		return res
	}
	if cfg.Color {
		return append(res, encode.WithColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.WithColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Dup    bool `cli:"name=dup desc='print keyed scalar lists as repeated key = item lines'"`
	Indent int  `cli:"name=indent desc='indent width (default 2)'"`
	Ref    bool `cli:"name=ref desc='reverse duplicate key groups (reference ordering)'"`

	View *cli.Command
}

func (cfg *ViewConfig) parseOpts() []parse.ParseOption {
	res := cfg.MainConfig.parseOpts()
	if cfg.Ref {
		res = append(res, parse.ReferenceOrder())
	}
	return res
}

func (cfg *ViewConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.MainConfig.encOpts(w)
	if cfg.Dup {
		res = append(res, encode.DuplicateKeyLists())
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	return res
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='suppress diff output'"`

	Check *cli.Command
}
