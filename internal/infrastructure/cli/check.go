package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/preflighthq/preflight/pkg/application"
	"github.com/preflighthq/preflight/pkg/domain/review"
	"github.com/spf13/cobra"
)

var checkRubric string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Interactive submission check wizard",
	Long: `Interactive submission check wizard.

Walks through the submission package step by step: build files, App Store
metadata, then the questionnaire. Questions gated by a trigger question you
answer "no" are skipped. Leave any prompt blank to skip it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("PREFLIGHT_SKIP_CHECK_RUN") == "true" {
			return nil
		}

		svc, err := loadAnalysisService(checkRubric)
		if err != nil {
			return err
		}

		m, err := newCheckModel(svc)
		if err != nil {
			return err
		}

		p := tea.NewProgram(m)
		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("check wizard failed: %w", err)
		}

		if cm, ok := final.(checkModel); ok && cm.err != nil {
			return cm.err
		}
		return nil
	},
}

// filePrompts and metadataPrompts drive the first two wizard steps; each
// prompt fills one submission field in order.
var filePrompts = []string{
	"Info.plist path (blank to skip)",
	"Privacy manifest path (blank to skip)",
	"Screenshot dimensions JSON path (blank to skip)",
}

var metadataPrompts = []string{
	"App name",
	"Description",
	"Keywords (comma separated)",
	"Primary category",
	"Age rating (4+, 9+, 12+, 17+)",
}

type checkModel struct {
	svc  *application.AnalysisService
	flow *wizardFlow

	input textinput.Model
	field int

	fileValues []string
	metaValues []string
	answers    map[string]string

	// current is the question on screen during the questionnaire step.
	current *review.Question

	result *review.AnalysisResult
	err    error
}

func newCheckModel(svc *application.AnalysisService) (checkModel, error) {
	flow, err := newWizardFlow()
	if err != nil {
		return checkModel{}, err
	}

	ti := textinput.New()
	ti.Placeholder = filePrompts[0]
	ti.Focus()

	return checkModel{
		svc:     svc,
		flow:    flow,
		input:   ti,
		answers: map[string]string{},
	}, nil
}

func (m checkModel) Init() tea.Cmd { return textinput.Blink }

func (m checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.flow.Current() == StepResults {
				return m, tea.Quit
			}
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit records the current input value and advances the wizard.
func (m checkModel) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	switch m.flow.Current() {
	case StepFiles:
		m.fileValues = append(m.fileValues, value)
		m.field++
		if m.field >= len(filePrompts) {
			m.flow.Advance(EventNext)
			m.field = 0
			m.input.Placeholder = metadataPrompts[0]
		} else {
			m.input.Placeholder = filePrompts[m.field]
		}

	case StepMetadata:
		m.metaValues = append(m.metaValues, value)
		m.field++
		if m.field >= len(metadataPrompts) {
			m.flow.Advance(EventNext)
			m.current = m.nextQuestion()
			if m.current == nil {
				return m.finish()
			}
		} else {
			m.input.Placeholder = metadataPrompts[m.field]
		}

	case StepQuestionnaire:
		if m.current != nil {
			m.answers[m.current.ID] = value
		}
		m.current = m.nextQuestion()
		if m.current == nil {
			return m.finish()
		}
	}

	return m, nil
}

// nextQuestion returns the next unanswered applicable question. Visibility is
// recomputed on every call so answering a trigger "no" hides its dependents
// immediately.
func (m checkModel) nextQuestion() *review.Question {
	rubric := m.svc.Rubric()
	for i := range rubric.Questions {
		q := &rubric.Questions[i]
		if _, answered := m.answers[q.ID]; answered {
			continue
		}
		if rubric.Applicable(*q, m.answers) {
			return q
		}
	}
	return nil
}

// finish assembles the submission, runs the analysis, and moves to results.
func (m checkModel) finish() (tea.Model, tea.Cmd) {
	sub, err := m.buildSubmission()
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.result = m.svc.AnalyzeSubmission(*sub)
	m.flow.Advance(EventNext)
	m.input.Blur()
	return m, nil
}

func (m checkModel) buildSubmission() (*application.Submission, error) {
	sub := &application.Submission{Answers: m.answers}

	if path := m.fileValues[0]; path != "" {
		content, err := readInputFile(path)
		if err != nil {
			return nil, err
		}
		sub.InfoPlist = content
	}

	if path := m.fileValues[1]; path != "" {
		content, err := readInputFile(path)
		if err != nil {
			return nil, err
		}
		sub.PrivacyManifest = content
	}

	if path := m.fileValues[2]; path != "" {
		content, err := readInputFile(path)
		if err != nil {
			return nil, err
		}
		var shots []review.Screenshot
		if err := json.Unmarshal([]byte(content), &shots); err != nil {
			return nil, fmt.Errorf("invalid screenshots JSON in %s: %w", path, err)
		}
		sub.Screenshots = shots
		sub.HasScreenshots = true
	}

	sub.Metadata = &review.Metadata{
		AppName:         m.metaValues[0],
		Description:     m.metaValues[1],
		Keywords:        m.metaValues[2],
		PrimaryCategory: m.metaValues[3],
		AgeRating:       m.metaValues[4],
	}

	return sub, nil
}

func (m checkModel) View() string {
	var b strings.Builder

	switch m.flow.Current() {
	case StepFiles:
		b.WriteString(titleStyle.Render("Step 1/3: Build Files"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())

	case StepMetadata:
		b.WriteString(titleStyle.Render("Step 2/3: App Store Metadata"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())

	case StepQuestionnaire:
		b.WriteString(titleStyle.Render("Step 3/3: Questionnaire"))
		b.WriteString("\n\n")
		if m.current != nil {
			b.WriteString(m.current.Text)
			b.WriteString("\n")
			if m.current.HelpText != "" {
				b.WriteString(dimStyle.Render(m.current.HelpText))
				b.WriteString("\n")
			}
			if len(m.current.Options) > 0 {
				b.WriteString(dimStyle.Render("Options: " + strings.Join(m.current.Options, ", ")))
				b.WriteString("\n")
			}
			b.WriteString("\n")
			b.WriteString(m.input.View())
		}

	case StepResults:
		if m.result != nil {
			b.WriteString(renderResult(m.svc.Rubric(), m.result))
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("press q to quit"))
	}

	b.WriteString("\n")
	return b.String()
}

func init() {
	checkCmd.Flags().StringVar(&checkRubric, "rubric", "", "Custom rubric YAML file")

	RootCmd.AddCommand(checkCmd)
}
