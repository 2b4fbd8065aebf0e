// Package scoring turns questionnaire answers and analyzer issues into
// weighted category and overall scores.
package scoring

import (
	"math"

	"github.com/preflighthq/preflight/pkg/domain/review"
)

// answerPenalty is the score for an unsafe answer, by question severity.
var answerPenalty = map[review.Severity]int{
	review.SeverityCritical: 0,
	review.SeverityHigh:     25,
	review.SeverityMedium:   50,
	review.SeverityLow:      75,
}

// issueDeduction is the flat point deduction per issue, by severity.
var issueDeduction = map[review.Severity]int{
	review.SeverityCritical: 100,
	review.SeverityHigh:     75,
	review.SeverityMedium:   50,
	review.SeverityLow:      25,
}

// neutralScore is awarded when a question goes unanswered; reviewers abstain
// from judging what was not disclosed.
const neutralScore = 50

// criticalScoreCap caps the overall score whenever any critical issue exists.
const criticalScoreCap = 60

// Engine scores submissions against a fixed rubric. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	rubric *review.Rubric
}

// NewEngine creates a scoring engine over the given rubric.
func NewEngine(rubric *review.Rubric) *Engine {
	return &Engine{rubric: rubric}
}

// ScoreQuestion scores a single answer. Unknown question ids score 0, an
// unanswered question scores the neutral 50, the safe answer scores 100, and
// any other answer earns the severity-based penalty.
func (e *Engine) ScoreQuestion(questionID, answer string) int {
	question := e.rubric.QuestionByID(questionID)
	if question == nil {
		return 0
	}
	if answer == "" {
		return neutralScore
	}
	if answer == question.SafeAnswer {
		return 100
	}
	return answerPenalty[question.Severity]
}

// ScoreCategory aggregates one category: the applicable questions' scores
// minus flat deductions for the category's issues.
func (e *Engine) ScoreCategory(categoryID string, answers map[string]string, issues []review.Issue) review.CategoryResult {
	var applicable []review.Question
	for _, q := range e.rubric.QuestionsForCategory(categoryID) {
		if e.rubric.Applicable(q, answers) {
			applicable = append(applicable, q)
		}
	}

	checkedItems := 0
	questionScore := 0
	for _, q := range applicable {
		if answers[q.ID] != "" {
			checkedItems++
		}
		questionScore += e.ScoreQuestion(q.ID, answers[q.ID])
	}

	maxScore := len(applicable) * 100

	categoryIssues := make([]review.Issue, 0)
	deduction := 0
	for _, issue := range issues {
		if issue.CategoryID != categoryID {
			continue
		}
		categoryIssues = append(categoryIssues, issue)
		deduction += issueDeduction[issue.Severity]
	}

	score := questionScore - deduction
	if score < 0 {
		score = 0
	}

	// A category with no applicable questions defaults to 100 regardless of
	// deductions; the division guard below preserves that behavior.
	percentage := 100
	if maxScore > 0 {
		percentage = int(math.Round(float64(score) / float64(maxScore) * 100))
	}
	percentage = clamp(percentage, 0, 100)

	return review.CategoryResult{
		CategoryID:   categoryID,
		Score:        score,
		MaxScore:     maxScore,
		Percentage:   percentage,
		Issues:       categoryIssues,
		CheckedItems: checkedItems,
	}
}

// OverallScore combines category percentages through the rubric weights,
// normalizing against the weights actually present so partial category sets
// still score sensibly, and caps the result when a critical issue exists.
func (e *Engine) OverallScore(results []review.CategoryResult) (score int, hasCritical bool) {
	weightedSum := 0.0
	totalWeight := 0.0
	for _, result := range results {
		category := e.rubric.CategoryByID(result.CategoryID)
		if category == nil {
			continue
		}
		weightedSum += float64(result.Percentage) * category.Weight
		totalWeight += category.Weight
	}

	raw := 0
	if totalWeight > 0 {
		raw = int(math.Round(weightedSum / totalWeight))
	}

	for _, result := range results {
		for _, issue := range result.Issues {
			if issue.Severity == review.SeverityCritical {
				hasCritical = true
			}
		}
	}

	if hasCritical && raw > criticalScoreCap {
		raw = criticalScoreCap
	}
	return raw, hasCritical
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
