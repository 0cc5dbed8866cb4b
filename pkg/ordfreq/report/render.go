package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/cognicore/ordfreq/pkg/ordfreq/config"
	"github.com/cognicore/ordfreq/pkg/ordfreq/freq"
	"github.com/cognicore/ordfreq/pkg/ordfreq/internalerr"
)

// plainWidth is the line width the plain listing wraps at.
const plainWidth = 80

// Render writes r to w as a table, JSON or a plain listing.
func Render(w io.Writer, r Report, format string) error {
	var out string
	switch format {
	case config.FormatTable, "":
		out = fmt.Sprintf("Top %d words in %s\n", len(r.Entries), r.Document) + renderTable(r) + "\n"
	case config.FormatPlain:
		out = renderPlain(r.Entries) + "\n"
	case config.FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		out = string(data) + "\n"
	default:
		return fmt.Errorf("output format %q: %w", format, internalerr.ErrInvalidConfig)
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func renderTable(r Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Word", "Count"})

	for i, e := range r.Entries {
		tw.AppendRow(table.Row{i + 1, e.Key, e.Count})
	}
	tw.AppendFooter(table.Row{"", "distinct", r.Stats.Distinct})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// renderPlain lists entries as [('word', n), ...], one entry per line when
// the single-line form is wider than plainWidth.
func renderPlain(entries []freq.Entry) string {
	items := make([]string, len(entries))
	for i, e := range entries {
		items[i] = "(" + quote(e.Key) + ", " + strconv.Itoa(e.Count) + ")"
	}

	line := "[" + strings.Join(items, ", ") + "]"
	if len(line) <= plainWidth {
		return line
	}
	return "[" + strings.Join(items, ",\n ") + "]"
}

func quote(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
