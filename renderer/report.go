package renderer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/tote"
	md "github.com/nao1215/markdown"
)

// Format is an output format for reports.
type Format int

const (
	// Text is the canonical line format, e.g. "Win:1:$1.28".
	Text Format = iota
	// Markdown renders a table per report.
	Markdown
	// JSON renders a machine readable object.
	JSON
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case Markdown:
		return "markdown"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "":
		return Text, nil
	case "markdown", "md":
		return Markdown, nil
	case "json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("unknown format: %q", s)
	}
}

// Render writes the report to w in the given format.
func Render(w io.Writer, r *tote.Report, f Format) error {
	var out string
	switch f {
	case Text:
		out = r.String()
	case Markdown:
		out = ReportMarkdown(r)
	case JSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("cannot encode report: %w", err)
		}
		out = string(b) + "\n"
	default:
		return fmt.Errorf("unsupported format %v", f)
	}
	_, err := io.WriteString(w, out)
	return err
}

// ReportMarkdown renders the dividends as a markdown table.
func ReportMarkdown(r *tote.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dividends")
	doc.PlainText(fmt.Sprintf("Result: %s, %s, %s", r.Result.First, r.Result.Second, r.Result.Third))

	rows := make([][]string, 0, len(r.Dividends))
	for _, d := range r.Dividends {
		rows = append(rows, []string{d.Product, d.Selection, d.Amount.String()})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Product", "Selection", "Dividend"},
		Rows:      rows,
	})
	return doc.String()
}

// ProductsMarkdown renders the product registry as a markdown table.
func ProductsMarkdown(products []tote.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Products")
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		commission := p.Commission.Shift(2).String() + "%"
		rows = append(rows, []string{md.Bold(p.Code), p.Name, commission, p.Rule.String()})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Code", "Name", "Commission", "Rule"},
		Rows:      rows,
	})
	return doc.String()
}
