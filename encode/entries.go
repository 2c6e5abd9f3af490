package encode

import (
	"io"
	"strings"

	"github.com/ccl-format/go-ccl/ir"
)

// EncodeEntries writes the flat entry form: one entry per line, with a
// multi-line value carrying its continuation lines through verbatim. Blank
// pseudo-entries become empty lines and comment entries print their key
// unchanged, so source order and spacing survive a parse/print cycle.
func EncodeEntries(entries []ir.Entry, w io.Writer) error {
	for _, e := range entries {
		if err := writeEntry(e, w); err != nil {
			return err
		}
	}
	return nil
}

func writeEntry(e ir.Entry, w io.Writer) error {
	var line string
	switch {
	case e.IsBlank():
		line = ""
	case e.IsComment():
		line = e.Key
	case e.Key == "":
		if strings.HasPrefix(e.Value, "\n") {
			line = "=" + e.Value
		} else {
			line = "= " + e.Value
		}
	case e.Value == "" || strings.HasPrefix(e.Value, "\n"):
		line = e.Key + " =" + e.Value
	default:
		line = e.Key + " = " + e.Value
	}
	_, err := io.WriteString(w, line+"\n")
	return err
}

// EntriesString prints entries to a string.
func EntriesString(entries []ir.Entry) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = EncodeEntries(entries, &sb)
	return sb.String()
}
