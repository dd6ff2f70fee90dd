package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A"))
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printJSON writes v as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printRows renders a list. With --json the raw value is printed; on a terminal
// the rows become a bordered table, otherwise tab-aligned plain text.
func printRows(cmd *cobra.Command, v any, headers []string, rows [][]string) error {
	if jsonOutput {
		return printJSON(cmd, v)
	}
	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		cmd.Println("No records found.")
		return nil
	}

	if isTerminal(out) {
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(borderStyle).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			}).
			Headers(headers...).
			Rows(rows...)
		_, err := fmt.Fprintln(out, t)
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

// printSaved reports the id of a saved record.
func printSaved(cmd *cobra.Command, what string, id int64) error {
	if jsonOutput {
		return printJSON(cmd, map[string]int64{"id": id})
	}
	cmd.Printf("Saved %s %d\n", what, id)
	return nil
}

// printDone reports a completed write that returns no data.
func printDone(cmd *cobra.Command, format string, args ...any) error {
	if jsonOutput {
		return printJSON(cmd, map[string]bool{"ok": true})
	}
	cmd.Printf(format+"\n", args...)
	return nil
}

// readJSON decodes the record in path into v. A path of "-" reads stdin.
// Unknown fields are rejected.
func readJSON(cmd *cobra.Command, path string, v any) error {
	if path == "" {
		return fmt.Errorf("--file is required (use - for stdin)")
	}

	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// parseID parses a positive record id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return id, nil
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
