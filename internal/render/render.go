// Package render writes command results in the output formats of the
// jpholiday command.
package render

import (
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format names an output encoding.
type Format string

// Supported formats. Text prints aligned columns; the others encode the
// rows with their struct tags.
const (
	Text    Format = "text"
	JSON    Format = "json"
	YAML    Format = "yaml"
	CSV     Format = "csv"
	MsgPack Format = "msgpack"
)

// Formats lists every supported format, default first.
var Formats = []Format{Text, JSON, YAML, CSV, MsgPack}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown output format %q (want one of %s)", s, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Renderer writes tables to w in one format.
type Renderer struct {
	w      io.Writer
	format Format
	header bool
}

// New creates a Renderer. Text output carries a header line only when w is
// a terminal.
func New(w io.Writer, format Format) *Renderer {
	return &Renderer{w: w, format: format, header: isTerminal(w)}
}

// SetHeader forces the text header on or off.
func (r *Renderer) SetHeader(on bool) {
	r.header = on
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Render writes t in the renderer's format.
func (r *Renderer) Render(t Table) error {
	switch r.format {
	case Text, "":
		return r.text(t)
	case JSON:
		b, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode json")
		}
		_, err = r.w.Write(append(b, '\n'))
		return err
	case YAML:
		b, err := yaml.Marshal(t)
		if err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		_, err = r.w.Write(b)
		return err
	case CSV:
		return errors.Wrap(gocsv.Marshal(t, r.w), "encode csv")
	case MsgPack:
		return errors.Wrap(msgpack.NewEncoder(r.w).Encode(t), "encode msgpack")
	}
	return errors.Errorf("unknown output format %q", r.format)
}

func (r *Renderer) text(t Table) error {
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	if r.header {
		if _, err := io.WriteString(tw, strings.Join(t.Header(), "\t")+"\n"); err != nil {
			return err
		}
	}
	for _, rec := range t.Records() {
		// Trailing empty cells would leave padding at the end of the line.
		for len(rec) > 0 && rec[len(rec)-1] == "" {
			rec = rec[:len(rec)-1]
		}
		if _, err := io.WriteString(tw, strings.Join(rec, "\t")+"\n"); err != nil {
			return err
		}
	}
	return tw.Flush()
}
