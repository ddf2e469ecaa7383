// Package render writes entity lists to an io.Writer as an aligned text
// table, CSV, or JSON. Nothing here touches the filesystem; commands pass
// stdout.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Format selects the output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatTable, "":
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	}
	return "", fmt.Errorf("unknown output format %q (valid: table, json, csv)", s)
}

// write renders pre-marshaled rows under a comma-separated header string,
// or encodes v directly for JSON output.
func write(w io.Writer, f Format, header string, rows [][]string, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatCSV:
		cw := csv.NewWriter(w)
		defer cw.Flush()
		if err := cw.Write(strings.Split(header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		for i, row := range rows {
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing row %d: %w", i+1, err)
			}
		}
		return cw.Error()
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, strings.ReplaceAll(strings.ToUpper(header), ",", "\t"))
		for _, row := range rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		return tw.Flush()
	}
}
