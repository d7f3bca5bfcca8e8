package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/session"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel := session.SelectionAll
		if raw, _ := cmd.Flags().GetString("category"); raw != "" {
			var err error
			if sel, err = session.ParseSelection(raw); err != nil {
				return err
			}
		}

		printQuestions(cmd.OutOrStdout(), questionbank.Default(), sel)
		return nil
	},
}

func init() {
	questionsCmd.Flags().StringP("category", "c", "", "Only list one category: geography or history")
}

// printQuestions writes the bank grouped by category, in bank order, with
// the answer marked.
func printQuestions(w io.Writer, bank *questionbank.Bank, sel session.Selection) {
	for _, c := range questionbank.Categories {
		if sel != session.SelectionAll && string(sel) != string(c) {
			continue
		}
		qs := bank.ByCategory(c)
		fmt.Fprintf(w, "%s (%d)\n", c, len(qs))
		for i, q := range qs {
			fmt.Fprintf(w, "  %2d. %s\n", i+1, q.Text)
			opts := make([]string, len(q.Options))
			for j, o := range q.Options {
				if o == q.Answer {
					o = "*" + o
				}
				opts[j] = o
			}
			fmt.Fprintf(w, "      %s\n", strings.Join(opts, " | "))
		}
		fmt.Fprintln(w)
	}
}
