package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// OutputFormat selects how command results are rendered.
type OutputFormat string

const (
	// FormatText is human-readable text output
	FormatText OutputFormat = "text"
	// FormatJSON is structured JSON output
	FormatJSON OutputFormat = "json"
)

// Printer renders command results in the selected output format. The
// weft commands produce two shapes of result: tabular listings and
// arbitrary JSON-encodable values; Printer covers exactly those.
type Printer struct {
	w      io.Writer
	format OutputFormat
}

// NewPrinter creates a Printer for the given format. Unknown formats
// fall back to text; a nil writer falls back to stdout.
func NewPrinter(format OutputFormat, w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	if format != FormatJSON {
		format = FormatText
	}
	return &Printer{w: w, format: format}
}

// JSONOutput reports whether the printer renders JSON. Commands use it
// to pick between a JSON value and hand-formatted text.
func (p *Printer) JSONOutput() bool {
	return p.format == FormatJSON
}

// Encode writes v as indented JSON regardless of format. Callers gate
// on JSONOutput when the value should only appear in JSON mode.
func (p *Printer) Encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table writes rows under the given headers. In text mode columns are
// aligned with tabwriter and headers uppercased; in JSON mode each row
// becomes an object keyed by header.
func (p *Printer) Table(headers []string, rows [][]string) error {
	if p.format == FormatJSON {
		out := make([]map[string]string, 0, len(rows))
		for _, row := range rows {
			obj := make(map[string]string, len(headers))
			for i, h := range headers {
				var cell string
				if i < len(row) {
					cell = row[i]
				}
				obj[h] = cell
			}
			out = append(out, obj)
		}
		return p.Encode(out)
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.ToUpper(strings.Join(headers, "\t"))); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}
