package review

import (
	"time"
)

// Severity ranks findings and drives both answer penalties and issue deductions.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Grade is the letter grade derived from the overall score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Verdict is the submission readiness call derived from score and critical findings.
type Verdict string

const (
	VerdictReady     Verdict = "ready"
	VerdictNeedsWork Verdict = "needs-work"
	VerdictHighRisk  Verdict = "high-risk"
)

// IssueSource tags where a finding came from.
type IssueSource string

const (
	SourceFileAnalysis  IssueSource = "file-analysis"
	SourceQuestionnaire IssueSource = "questionnaire"
)

// Issue represents a single finding against a submission.
type Issue struct {
	ID               string      `json:"id" yaml:"id"`
	CategoryID       string      `json:"categoryId" yaml:"category_id"`
	Severity         Severity    `json:"severity" yaml:"severity"`
	Title            string      `json:"title" yaml:"title"`
	Description      string      `json:"description" yaml:"description"`
	Recommendation   string      `json:"recommendation" yaml:"recommendation"`
	GuidelineSection string      `json:"guidelineSection" yaml:"guideline_section"`
	GuidelineURL     string      `json:"guidelineUrl" yaml:"guideline_url"`
	Source           IssueSource `json:"source" yaml:"source"`
}

// CategoryResult is the per-category aggregate for one analysis run.
type CategoryResult struct {
	CategoryID   string  `json:"categoryId" yaml:"category_id"`
	Score        int     `json:"score" yaml:"score"`
	MaxScore     int     `json:"maxScore" yaml:"max_score"`
	Percentage   int     `json:"percentage" yaml:"percentage"`
	Issues       []Issue `json:"issues" yaml:"issues"`
	CheckedItems int     `json:"checkedItems" yaml:"checked_items"`
}

// AnalysisResult is the top-level aggregate produced by one analysis run.
// It is ephemeral; nothing persists it.
type AnalysisResult struct {
	ID           string           `json:"id" yaml:"id"`
	OverallScore int              `json:"overallScore" yaml:"overall_score"`
	Grade        Grade            `json:"grade" yaml:"grade"`
	Verdict      Verdict          `json:"verdict" yaml:"verdict"`
	VerdictText  string           `json:"verdictText" yaml:"verdict_text"`
	Categories   []CategoryResult `json:"categories" yaml:"categories"`
	Issues       []Issue          `json:"issues" yaml:"issues"`
	HasCritical  bool             `json:"hasCritical" yaml:"has_critical"`
	GeneratedAt  time.Time        `json:"generatedAt" yaml:"generated_at"`
}

// Metadata is the descriptive App Store metadata a submission declares.
type Metadata struct {
	AppName         string `json:"appName" yaml:"app_name"`
	Description     string `json:"description" yaml:"description"`
	Keywords        string `json:"keywords" yaml:"keywords"`
	PrimaryCategory string `json:"primaryCategory" yaml:"primary_category"`
	AgeRating       string `json:"ageRating" yaml:"age_rating"`
}

// Screenshot carries externally supplied screenshot dimensions. Pixel data is
// never inspected.
type Screenshot struct {
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	Name   string `json:"name" yaml:"name"`
}
