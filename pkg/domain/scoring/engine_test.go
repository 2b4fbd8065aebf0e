package scoring_test

import (
	"testing"

	"github.com/preflighthq/preflight/pkg/domain/review"
	"github.com/preflighthq/preflight/pkg/domain/scoring"
)

func TestScoreQuestion(t *testing.T) {
	engine := scoring.NewEngine(review.DefaultRubric())

	tests := []struct {
		name       string
		questionID string
		answer     string
		want       int
	}{
		{"unknown question", "no-such-question", "yes", 0},
		{"unanswered is neutral", "completeness-crashes", "", 50},
		{"safe answer", "completeness-crashes", "yes", 100},
		{"unsafe critical", "completeness-crashes", "no", 0},
		{"unsafe high", "completeness-placeholders", "no", 25},
		{"unsafe medium", "completeness-clean-install", "no", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.ScoreQuestion(tt.questionID, tt.answer); got != tt.want {
				t.Errorf("ScoreQuestion(%s, %q) = %d, want %d", tt.questionID, tt.answer, got, tt.want)
			}
		})
	}
}

func TestScoreCategory_Unanswered(t *testing.T) {
	engine := scoring.NewEngine(review.DefaultRubric())

	result := engine.ScoreCategory("app-completeness", map[string]string{}, nil)
	if result.MaxScore != 500 {
		t.Errorf("expected max score 500 for 5 questions, got %d", result.MaxScore)
	}
	if result.Score != 250 {
		t.Errorf("expected neutral score 250, got %d", result.Score)
	}
	if result.Percentage != 50 {
		t.Errorf("expected 50%%, got %d", result.Percentage)
	}
	if result.CheckedItems != 0 {
		t.Errorf("expected 0 checked items, got %d", result.CheckedItems)
	}
	if result.Issues == nil || len(result.Issues) != 0 {
		t.Errorf("expected an empty, non-nil issue list, got %v", result.Issues)
	}
}

func TestScoreCategory_TriggerSuppressesDependents(t *testing.T) {
	engine := scoring.NewEngine(review.DefaultRubric())

	// Trigger answered "no": only the trigger itself is applicable.
	suppressed := engine.ScoreCategory("iap-compliance", map[string]string{"iap-sells-digital": "no"}, nil)
	if suppressed.MaxScore != 100 {
		t.Errorf("expected max score 100 with dependents suppressed, got %d", suppressed.MaxScore)
	}
	if suppressed.Percentage != 100 {
		t.Errorf(`"no" is the safe answer, expected 100%%, got %d`, suppressed.Percentage)
	}

	// Trigger answered "yes": all four questions apply.
	active := engine.ScoreCategory("iap-compliance", map[string]string{"iap-sells-digital": "yes"}, nil)
	if active.MaxScore != 400 {
		t.Errorf("expected max score 400 with dependents active, got %d", active.MaxScore)
	}
}

func TestScoreCategory_IssueDeductions(t *testing.T) {
	engine := scoring.NewEngine(review.DefaultRubric())

	issues := []review.Issue{
		{ID: "a", CategoryID: "app-completeness", Severity: review.SeverityHigh},
		{ID: "b", CategoryID: "design-quality", Severity: review.SeverityCritical},
	}

	result := engine.ScoreCategory("app-completeness", map[string]string{}, issues)
	// Neutral 250 minus the high deduction of 75; the design issue belongs
	// elsewhere and is ignored.
	if result.Score != 175 {
		t.Errorf("expected score 175, got %d", result.Score)
	}
	if result.Percentage != 35 {
		t.Errorf("expected 35%%, got %d", result.Percentage)
	}
	if len(result.Issues) != 1 || result.Issues[0].ID != "a" {
		t.Errorf("expected only the category's own issue, got %v", result.Issues)
	}
}

func TestScoreCategory_ScoreFloorsAtZero(t *testing.T) {
	engine := scoring.NewEngine(review.DefaultRubric())

	var issues []review.Issue
	for i := 0; i < 10; i++ {
		issues = append(issues, review.Issue{CategoryID: "app-completeness", Severity: review.SeverityCritical})
	}

	result := engine.ScoreCategory("app-completeness", map[string]string{}, issues)
	if result.Score != 0 {
		t.Errorf("expected score floored at 0, got %d", result.Score)
	}
	if result.Percentage != 0 {
		t.Errorf("expected 0%%, got %d", result.Percentage)
	}
}

func TestScoreCategory_NoQuestionsDefaultsToFull(t *testing.T) {
	engine := scoring.NewEngine(review.DefaultRubric())

	// The privacy-manifest category has no questionnaire entries; its score
	// comes entirely from file analysis, and without issues it reads 100.
	result := engine.ScoreCategory("privacy-manifest", map[string]string{}, nil)
	if result.MaxScore != 0 {
		t.Errorf("expected max score 0, got %d", result.MaxScore)
	}
	if result.Percentage != 100 {
		t.Errorf("expected 100%%, got %d", result.Percentage)
	}
}

func TestOverallScore_Normalizes(t *testing.T) {
	engine := scoring.NewEngine(review.DefaultRubric())

	results := []review.CategoryResult{
		{CategoryID: "app-completeness", Percentage: 80},
		{CategoryID: "design-quality", Percentage: 40},
	}

	// Weighted by .18 and .07 then normalized over the present weights:
	// (80*.18 + 40*.07) / .25 = 68.8 which rounds to 69.
	score, hasCritical := engine.OverallScore(results)
	if score != 69 {
		t.Errorf("expected 69, got %d", score)
	}
	if hasCritical {
		t.Error("expected no critical flag")
	}
}

func TestOverallScore_SkipsUnknownCategories(t *testing.T) {
	engine := scoring.NewEngine(review.DefaultRubric())

	results := []review.CategoryResult{
		{CategoryID: "app-completeness", Percentage: 80},
		{CategoryID: "mystery-category", Percentage: 0},
	}

	score, _ := engine.OverallScore(results)
	if score != 80 {
		t.Errorf("expected unknown categories to be ignored, got %d", score)
	}
}

func TestOverallScore_CriticalCap(t *testing.T) {
	engine := scoring.NewEngine(review.DefaultRubric())

	results := []review.CategoryResult{
		{
			CategoryID: "app-completeness",
			Percentage: 95,
			Issues: []review.Issue{
				{ID: "fatal", CategoryID: "app-completeness", Severity: review.SeverityCritical},
			},
		},
	}

	score, hasCritical := engine.OverallScore(results)
	if !hasCritical {
		t.Error("expected the critical flag")
	}
	if score != 60 {
		t.Errorf("expected score capped at 60, got %d", score)
	}
}

func TestOverallScore_CapOnlyLowers(t *testing.T) {
	engine := scoring.NewEngine(review.DefaultRubric())

	results := []review.CategoryResult{
		{
			CategoryID: "app-completeness",
			Percentage: 20,
			Issues: []review.Issue{
				{ID: "fatal", CategoryID: "app-completeness", Severity: review.SeverityCritical},
			},
		},
	}

	score, _ := engine.OverallScore(results)
	if score != 20 {
		t.Errorf("a score already below the cap should be untouched, got %d", score)
	}
}

func TestOverallScore_Empty(t *testing.T) {
	engine := scoring.NewEngine(review.DefaultRubric())

	score, hasCritical := engine.OverallScore(nil)
	if score != 0 || hasCritical {
		t.Errorf("expected 0 and no critical flag, got %d, %v", score, hasCritical)
	}
}
