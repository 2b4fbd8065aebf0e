// Package application composes the domain analyzers and scoring engine into
// the analysis entry points external surfaces call.
package application

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/preflighthq/preflight/pkg/domain/analyzer"
	"github.com/preflighthq/preflight/pkg/domain/review"
	"github.com/preflighthq/preflight/pkg/domain/scoring"
)

// Submission carries one fully decoded submission package. File contents are
// already text; screenshot dimensions are supplied, not measured.
type Submission struct {
	InfoPlist       string
	PrivacyManifest string
	Metadata        *review.Metadata
	Screenshots     []review.Screenshot
	// HasScreenshots distinguishes "no screenshots part at all" (skip the
	// check) from "screenshots declared but the list is empty" (critical).
	HasScreenshots bool
	Answers        map[string]string
}

// AnalysisService runs full submission analyses against one rubric. It is
// stateless apart from the injected rubric and clock and is safe to share
// across concurrent requests.
type AnalysisService struct {
	rubric *review.Rubric
	engine *scoring.Engine
	now    func() time.Time
}

// NewAnalysisService creates a service over the given rubric. A nil rubric
// falls back to the built-in default.
func NewAnalysisService(rubric *review.Rubric) (*AnalysisService, error) {
	if rubric == nil {
		rubric = review.DefaultRubric()
	}
	if errs := rubric.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid rubric: %v", errs[0])
	}
	return &AnalysisService{
		rubric: rubric,
		engine: scoring.NewEngine(rubric),
		now:    time.Now,
	}, nil
}

// Rubric exposes the service's reference data (read-only) to surfaces that
// list categories or questions.
func (s *AnalysisService) Rubric() *review.Rubric {
	return s.rubric
}

// WithClock overrides the timestamp source. Intended for tests.
func (s *AnalysisService) WithClock(now func() time.Time) *AnalysisService {
	s.now = now
	return s
}

// AnalyzeSubmission runs every applicable analyzer over the submission and
// aggregates the findings with the questionnaire answers into a full result.
func (s *AnalysisService) AnalyzeSubmission(sub Submission) *review.AnalysisResult {
	var fileIssues []review.Issue

	if sub.InfoPlist != "" {
		fileIssues = append(fileIssues, analyzer.AnalyzeInfoPlist(s.rubric, sub.InfoPlist)...)
	}
	if sub.PrivacyManifest != "" {
		fileIssues = append(fileIssues, analyzer.AnalyzePrivacyManifest(s.rubric, sub.PrivacyManifest)...)
	}
	if sub.Metadata != nil {
		fileIssues = append(fileIssues, analyzer.AnalyzeMetadata(s.rubric, *sub.Metadata)...)
	}
	if sub.HasScreenshots {
		fileIssues = append(fileIssues, analyzer.AnalyzeScreenshots(s.rubric, sub.Screenshots)...)
	}

	return s.Run(sub.Answers, fileIssues)
}

// Run scores every rubric category over the answers and pre-collected file
// issues and assembles the final result. It performs no I/O beyond one clock
// read.
func (s *AnalysisService) Run(answers map[string]string, fileIssues []review.Issue) *review.AnalysisResult {
	if answers == nil {
		answers = map[string]string{}
	}

	results := make([]review.CategoryResult, 0, len(s.rubric.Categories))
	for _, category := range s.rubric.Categories {
		results = append(results, s.engine.ScoreCategory(category.ID, answers, fileIssues))
	}

	score, hasCritical := s.engine.OverallScore(results)
	verdict, verdictText := scoring.VerdictFor(score, hasCritical)

	allIssues := make([]review.Issue, 0)
	for _, result := range results {
		allIssues = append(allIssues, result.Issues...)
	}

	return &review.AnalysisResult{
		ID:           uuid.NewString(),
		OverallScore: score,
		Grade:        scoring.GradeFor(score),
		Verdict:      verdict,
		VerdictText:  verdictText,
		Categories:   results,
		Issues:       allIssues,
		HasCritical:  hasCritical,
		GeneratedAt:  s.now().UTC(),
	}
}
