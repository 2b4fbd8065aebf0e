package scoring

import "github.com/preflighthq/preflight/pkg/domain/review"

// GradeFor maps an overall score to its letter grade.
func GradeFor(score int) review.Grade {
	switch {
	case score >= 90:
		return review.GradeA
	case score >= 80:
		return review.GradeB
	case score >= 65:
		return review.GradeC
	case score >= 50:
		return review.GradeD
	default:
		return review.GradeF
	}
}

// VerdictFor derives the readiness verdict and its user-facing text. The
// ready verdict requires both a high score and the absence of critical
// findings.
func VerdictFor(score int, hasCritical bool) (review.Verdict, string) {
	if score >= 85 && !hasCritical {
		return review.VerdictReady, "Your app looks ready for submission. Minor improvements suggested."
	}
	if score >= 60 {
		return review.VerdictNeedsWork, "Your app needs attention. Several issues may cause review delays."
	}
	return review.VerdictHighRisk, "High risk of rejection. Critical issues must be resolved before submitting."
}
