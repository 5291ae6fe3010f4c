package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/acceptance-map/internal/view"
)

var (
	showQuestion string
	showFormat   string
)

// showOutput is the machine-readable form of one selection.
type showOutput struct {
	Question string            `json:"question" yaml:"question"`
	Rows     []view.DisplayRow `json:"rows" yaml:"rows"`
	Unplaced []string          `json:"unplaced,omitempty" yaml:"unplaced,omitempty"`
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the acceptance table for one question",
	RunE: func(cmd *cobra.Command, _ []string) error {
		t, err := loadTable(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		label, err := resolveQuestion(t, showQuestion)
		if err != nil {
			return err
		}
		sel := view.Select(t, label)
		return writeSelection(cmd.OutOrStdout(), sel, showFormat)
	},
}

func writeSelection(w io.Writer, sel view.Selection, format string) error {
	out := showOutput{Question: sel.Label, Rows: sel.Table.Rows, Unplaced: sel.Map.Unplaced}

	switch strings.ToLower(format) {
	case "", "table":
		fmt.Fprintln(w, sel.Label)
		tw := tablewriter.NewWriter(w)
		tw.SetHeader(sel.Table.Columns)
		tw.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, r := range sel.Table.Rows {
			tw.Append([]string{r.Country, r.Acceptance})
		}
		tw.Render()
		if len(sel.Map.Unplaced) > 0 {
			fmt.Fprintf(w, "Not on map: %s\n", strings.Join(sel.Map.Unplaced, ", "))
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(out), "show: encode json")
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return eris.Wrap(err, "show: encode yaml")
		}
		return eris.Wrap(enc.Close(), "show: encode yaml")
	}
	return eris.Errorf("unknown format %q (want table, json, or yaml)", format)
}

func init() {
	showCmd.Flags().StringVarP(&showQuestion, "question", "q", "", "question label, 1-based index, or identifier (default first)")
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "table", "output format: table, json, yaml")
	rootCmd.AddCommand(showCmd)
}
