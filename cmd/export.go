package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/acceptance-map/internal/view"
)

var (
	exportQuestion string
	exportOut      string
	exportSheet    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the acceptance table for one question to CSV or XLSX",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ext := strings.ToLower(filepath.Ext(exportOut))
		if ext != ".csv" && ext != ".xlsx" {
			return eris.Errorf("export: unsupported output extension %q (want .csv or .xlsx)", ext)
		}

		t, err := loadTable(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		label, err := resolveQuestion(t, exportQuestion)
		if err != nil {
			return err
		}
		dt := view.BuildTable(t.FilterByQuestion(label))

		f, err := os.Create(exportOut)
		if err != nil {
			return eris.Wrap(err, "export: create output")
		}
		defer f.Close() //nolint:errcheck

		if ext == ".csv" {
			err = view.WriteCSV(f, dt)
		} else {
			err = view.WriteXLSX(f, exportSheet, dt)
		}
		if err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return eris.Wrap(err, "export: close output")
		}

		zap.L().Info("export complete",
			zap.String("question", label),
			zap.Int("rows", len(dt.Rows)),
			zap.String("out", exportOut),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportQuestion, "question", "q", "", "question label, 1-based index, or identifier (default first)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file, .csv or .xlsx (required)")
	exportCmd.Flags().StringVar(&exportSheet, "sheet", "Acceptance", "sheet name for .xlsx output")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}
