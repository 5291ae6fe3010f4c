package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the question labels in the data",
	RunE: func(cmd *cobra.Command, _ []string) error {
		t, err := loadTable(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for i, l := range t.Labels() {
			fmt.Fprintf(out, "%d. %s\n", i+1, l)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(questionsCmd)
}
