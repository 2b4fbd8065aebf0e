package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/preflighthq/preflight/pkg/domain/review"
	"github.com/spf13/cobra"
)

// Flag variables for questions command
var (
	questionsCategory string
	questionsRubric   string
	questionsJSON     bool
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questionnaire bank",
	Long: `List the questionnaire bank.

  --category, -c  Only show questions for one category
  --rubric        Custom rubric file (YAML)
  --json          Output in JSON format

Conditional questions note the answer that gates them. Trigger questions
answered "no" hide their dependents from scoring entirely.`,
	RunE: runQuestionsCmd,
}

func runQuestionsCmd(cmd *cobra.Command, args []string) error {
	svc, err := loadAnalysisService(questionsRubric)
	if err != nil {
		return err
	}
	rubric := svc.Rubric()

	if questionsCategory != "" && rubric.CategoryByID(questionsCategory) == nil {
		return fmt.Errorf("unknown category %q", questionsCategory)
	}

	questions := rubric.Questions
	if questionsCategory != "" {
		questions = rubric.QuestionsForCategory(questionsCategory)
	}

	if questionsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(questions)
	}

	fmt.Println(questionsTable(rubric, questions))
	return nil
}

// questionsTable renders the question bank as a static styled table.
func questionsTable(rubric *review.Rubric, questions []review.Question) string {
	columns := []table.Column{
		{Title: "ID", Width: 26},
		{Title: "Category", Width: 22},
		{Title: "Severity", Width: 8},
		{Title: "Safe", Width: 5},
		{Title: "Question", Width: 60},
	}

	rows := make([]table.Row, 0, len(questions))
	for _, q := range questions {
		id := q.ID
		if q.ConditionalOn != "" {
			id = id + " *"
		}
		rows = append(rows, table.Row{id, q.CategoryID, string(q.Severity), q.SafeAnswer, q.Text})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	out := t.View()
	for _, q := range questions {
		if q.ConditionalOn != "" {
			out += "\n* asked only when its parent question applies"
			break
		}
	}
	return out
}

func init() {
	questionsCmd.Flags().StringVarP(&questionsCategory, "category", "c", "", "Only show questions for one category")
	questionsCmd.Flags().StringVar(&questionsRubric, "rubric", "", "Custom rubric YAML file")
	questionsCmd.Flags().BoolVar(&questionsJSON, "json", false, "Output in JSON format")

	RootCmd.AddCommand(questionsCmd)
}
