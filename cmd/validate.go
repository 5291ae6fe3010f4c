package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the data file and list rows that do not fit the expected shape",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c := *cfg
		c.Data.Strict = false

		t, err := loadTable(cmd.Context(), &c)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		issues := t.Meta().Issues
		fmt.Fprintf(out, "%s: %d rows, %d questions, %d issues\n", c.Data.Path, t.Len(), len(t.Labels()), len(issues))
		for _, is := range issues {
			fmt.Fprintf(out, "  %s\n", is)
		}
		if len(issues) > 0 {
			return eris.Errorf("validate: %d issues found", len(issues))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
