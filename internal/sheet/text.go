package sheet

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const minNameWidth = 8

// WriteText renders the calculation summary. Names are cut to keep lines
// within width when width is positive.
func WriteText(w io.Writer, t Table, width int) error {
	nameWidth := 0
	if width > 0 {
		nameWidth = width
		for _, c := range t.Columns {
			if c != ColName {
				nameWidth -= t.columnWidth(c) + 2
			}
		}
		if nameWidth < minNameWidth {
			nameWidth = minNameWidth
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = t.title(c)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return err
	}
	for _, r := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			s := r[c]
			if c == ColName && nameWidth > 0 {
				s = truncate(s, nameWidth)
			}
			cells[i] = s
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func (t Table) title(c Column) string {
	return string(c)
}

func (t Table) columnWidth(c Column) int {
	n := len([]rune(t.title(c)))
	for _, r := range t.Rows {
		if m := len([]rune(r[c])); m > n {
			n = m
		}
	}
	return n
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "…"
}
