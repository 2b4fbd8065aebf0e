package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/preflighthq/preflight/pkg/domain/review"
)

// Styles shared by the text renderers.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			PaddingLeft(1).
			PaddingRight(1)

	gradeGood = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	gradeWarn = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	gradeBad  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	sevCritical = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	sevHigh     = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	sevMedium   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	sevLow      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func gradeStyle(grade review.Grade) lipgloss.Style {
	switch grade {
	case review.GradeA, review.GradeB:
		return gradeGood
	case review.GradeC, review.GradeD:
		return gradeWarn
	default:
		return gradeBad
	}
}

func severityStyle(severity review.Severity) lipgloss.Style {
	switch severity {
	case review.SeverityCritical:
		return sevCritical
	case review.SeverityHigh:
		return sevHigh
	case review.SeverityMedium:
		return sevMedium
	default:
		return sevLow
	}
}

// severityRank orders findings worst first.
func severityRank(severity review.Severity) int {
	switch severity {
	case review.SeverityCritical:
		return 0
	case review.SeverityHigh:
		return 1
	case review.SeverityMedium:
		return 2
	default:
		return 3
	}
}

// renderResult renders a full analysis result for terminal output.
func renderResult(rubric *review.Rubric, result *review.AnalysisResult) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Submission Readiness Report"))
	b.WriteString("\n\n")

	style := gradeStyle(result.Grade)
	b.WriteString(fmt.Sprintf("Overall: %s  Grade: %s  Verdict: %s\n",
		style.Render(fmt.Sprintf("%d/100", result.OverallScore)),
		style.Render(string(result.Grade)),
		style.Render(string(result.Verdict))))
	b.WriteString(result.VerdictText)
	b.WriteString("\n\n")

	b.WriteString("Categories\n")
	b.WriteString("----------------\n")
	for _, cat := range result.Categories {
		name := cat.CategoryID
		if c := rubric.CategoryByID(cat.CategoryID); c != nil {
			name = c.Name
		}
		marker := " "
		for _, issue := range cat.Issues {
			if issue.Severity == review.SeverityCritical {
				marker = "!"
				break
			}
		}
		b.WriteString(fmt.Sprintf("%s %-28s %3d%%  (%d issues, %d checked)\n",
			marker, name, cat.Percentage, len(cat.Issues), cat.CheckedItems))
	}

	if len(result.Issues) > 0 {
		b.WriteString("\nFindings\n")
		b.WriteString("----------------\n")
		issues := make([]review.Issue, len(result.Issues))
		copy(issues, result.Issues)
		sort.SliceStable(issues, func(i, j int) bool {
			return severityRank(issues[i].Severity) < severityRank(issues[j].Severity)
		})
		for _, issue := range issues {
			b.WriteString(fmt.Sprintf("%s %s\n",
				severityStyle(issue.Severity).Render(fmt.Sprintf("[%s]", strings.ToUpper(string(issue.Severity)))),
				issue.Title))
			if issue.Recommendation != "" {
				b.WriteString(fmt.Sprintf("    %s\n", issue.Recommendation))
			}
			if issue.GuidelineSection != "" {
				b.WriteString(dimStyle.Render(fmt.Sprintf("    Guideline %s  %s", issue.GuidelineSection, issue.GuidelineURL)))
				b.WriteString("\n")
			}
		}
	}

	if result.HasCritical {
		b.WriteString("\n")
		b.WriteString(sevCritical.Render("Critical findings cap the overall score at 60."))
		b.WriteString("\n")
	}

	return b.String()
}
