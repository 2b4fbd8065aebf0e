package application_test

import (
	"testing"
	"time"

	"github.com/preflighthq/preflight/pkg/application"
	"github.com/preflighthq/preflight/pkg/domain/review"
)

func newService(t *testing.T) *application.AnalysisService {
	t.Helper()
	svc, err := application.NewAnalysisService(nil)
	if err != nil {
		t.Fatalf("NewAnalysisService: %v", err)
	}
	return svc
}

func TestNewAnalysisService_RejectsInvalidRubric(t *testing.T) {
	_, err := application.NewAnalysisService(&review.Rubric{})
	if err == nil {
		t.Fatal("expected an error for an invalid rubric")
	}
}

func TestRun_EmptySubmission(t *testing.T) {
	svc := newService(t)

	result := svc.Run(nil, nil)

	if len(result.Categories) != 10 {
		t.Fatalf("expected 10 category results, got %d", len(result.Categories))
	}
	// Every questionnaire category sits at the neutral 50; the two
	// file-analysis-only categories read 100 without findings. Weighted
	// that lands at 61.
	if result.OverallScore != 61 {
		t.Errorf("expected overall score 61, got %d", result.OverallScore)
	}
	if result.Grade != review.GradeD {
		t.Errorf("expected grade D, got %s", result.Grade)
	}
	if result.Verdict != review.VerdictNeedsWork {
		t.Errorf("expected needs-work verdict, got %s", result.Verdict)
	}
	if result.HasCritical {
		t.Error("expected no critical flag")
	}
	if result.ID == "" {
		t.Error("expected a generated result id")
	}
	if result.Issues == nil {
		t.Error("expected a non-nil issue list")
	}
}

func TestRun_AllSafeAnswers(t *testing.T) {
	svc := newService(t)

	answers := map[string]string{}
	for _, q := range svc.Rubric().Questions {
		answers[q.ID] = q.SafeAnswer
	}

	result := svc.Run(answers, nil)

	if result.OverallScore != 100 {
		t.Errorf("expected a perfect score, got %d", result.OverallScore)
	}
	if result.Grade != review.GradeA {
		t.Errorf("expected grade A, got %s", result.Grade)
	}
	if result.Verdict != review.VerdictReady {
		t.Errorf("expected ready verdict, got %s", result.Verdict)
	}
	if len(result.Issues) != 0 {
		t.Errorf("expected no issues, got %v", result.Issues)
	}
}

func TestRun_FlattensIssues(t *testing.T) {
	svc := newService(t)

	issues := []review.Issue{
		{ID: "x", CategoryID: "app-completeness", Severity: review.SeverityLow},
		{ID: "y", CategoryID: "design-quality", Severity: review.SeverityMedium},
	}

	result := svc.Run(nil, issues)
	if len(result.Issues) != 2 {
		t.Errorf("expected 2 flattened issues, got %d", len(result.Issues))
	}

	other := svc.Run(nil, issues)
	if other.ID == result.ID {
		t.Error("expected a fresh result id per run")
	}
}

func TestAnalyzeSubmission_CriticalManifestCapsScore(t *testing.T) {
	svc := newService(t)

	answers := map[string]string{}
	for _, q := range svc.Rubric().Questions {
		answers[q.ID] = q.SafeAnswer
	}

	sub := application.Submission{
		InfoPlist: `<key>NSAppTransportSecurity</key>
		<dict>
			<key>NSAllowsArbitraryLoads</key>
			<true/>
		</dict>`,
		Answers: answers,
	}

	result := svc.AnalyzeSubmission(sub)

	if !result.HasCritical {
		t.Fatal("expected the critical flag from the disabled ATS finding")
	}
	if result.OverallScore > 60 {
		t.Errorf("expected the score capped at 60, got %d", result.OverallScore)
	}
	if result.Verdict == review.VerdictReady {
		t.Error("a critical finding must never yield a ready verdict")
	}
}

func TestAnalyzeSubmission_SkipsAbsentParts(t *testing.T) {
	svc := newService(t)

	// No files, no metadata, no screenshots part: nothing to analyze, so the
	// run matches a bare questionnaire run.
	result := svc.AnalyzeSubmission(application.Submission{})
	if len(result.Issues) != 0 {
		t.Errorf("expected no file issues, got %v", result.Issues)
	}

	// An empty-but-present screenshots part is a critical finding.
	withEmpty := svc.AnalyzeSubmission(application.Submission{HasScreenshots: true})
	if !withEmpty.HasCritical {
		t.Error("expected a critical finding for a declared empty screenshot list")
	}
}

func TestWithClock(t *testing.T) {
	svc := newService(t)
	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	svc.WithClock(func() time.Time { return fixed })

	result := svc.Run(nil, nil)
	if !result.GeneratedAt.Equal(fixed) {
		t.Errorf("expected generated at %v, got %v", fixed, result.GeneratedAt)
	}
}
