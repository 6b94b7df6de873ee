package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbox/internal/quiz"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the built-in question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		showAnswers, _ := cmd.Flags().GetBool("answers")
		return printQuestions(cmd.OutOrStdout(), quiz.DefaultQuestions(), showAnswers)
	},
}

func init() {
	questionsCmd.Flags().Bool("answers", true, "Show the correct answer for each question")
}

// printQuestions writes the question bank as a table.
func printQuestions(w io.Writer, questions []quiz.Question, showAnswers bool) error {
	header := fmt.Sprintf("%3s  %-48s  %s", "#", "Question", "Options")
	if showAnswers {
		header += "  →  Answer"
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("─", 100))

	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
		prompt := q.Prompt
		if len(prompt) > 48 {
			prompt = prompt[:45] + "..."
		}
		line := fmt.Sprintf("%3d  %-48s  %s", i+1, prompt, strings.Join(q.Options, " | "))
		if showAnswers {
			line += "  →  " + q.CorrectOption()
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "\n%d questions\n", len(questions))
	return nil
}
