package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/preflighthq/preflight/pkg/domain/review"
)

// AnalyzeScreenshots validates externally supplied screenshot dimensions
// against the rubric's accepted sizes. An empty list is itself a critical
// finding and short-circuits the dimension checks.
func AnalyzeScreenshots(rubric *review.Rubric, files []review.Screenshot) []review.Issue {
	guideline := rubric.Guideline("2.3")

	if len(files) == 0 {
		return []review.Issue{{
			ID:               "screenshots-metadata-no-screenshots",
			CategoryID:       "accurate-metadata",
			Severity:         review.SeverityCritical,
			Title:            "No screenshots provided",
			Description:      "At least one screenshot is required for App Store submission. Screenshots help reviewers and users understand your app.",
			Recommendation:   `Upload at least one screenshot for each required device size. Apple requires screenshots for 6.7" and 5.5" iPhones at minimum.`,
			GuidelineSection: guideline.Section,
			GuidelineURL:     guideline.URL,
			Source:           review.SourceFileAnalysis,
		}}
	}

	valid := rubric.ValidDimensionSet()
	var issues []review.Issue
	for _, file := range files {
		key := fmt.Sprintf("%dx%d", file.Width, file.Height)
		if valid[key] {
			continue
		}
		issues = append(issues, review.Issue{
			ID:               "screenshots-metadata-invalid-dimensions-" + file.Name,
			CategoryID:       "accurate-metadata",
			Severity:         review.SeverityHigh,
			Title:            fmt.Sprintf("Invalid screenshot dimensions: %s", file.Name),
			Description:      fmt.Sprintf("Screenshot %q has dimensions %dx%d which does not match any accepted App Store screenshot size.", file.Name, file.Width, file.Height),
			Recommendation:   fmt.Sprintf("Resize the screenshot to one of the accepted dimensions. Accepted sizes: %s.", formatAcceptedDimensions(rubric)),
			GuidelineSection: guideline.Section,
			GuidelineURL:     guideline.URL,
			Source:           review.SourceFileAnalysis,
		})
	}
	return issues
}

// formatAcceptedDimensions renders the accepted dimension table per device
// family in a stable order.
func formatAcceptedDimensions(rubric *review.Rubric) string {
	devices := make([]string, 0, len(rubric.ScreenshotDimensions))
	for device := range rubric.ScreenshotDimensions {
		devices = append(devices, device)
	}
	sort.Strings(devices)

	parts := make([]string, 0, len(devices))
	for _, device := range devices {
		dims := rubric.ScreenshotDimensions[device]
		sizes := make([]string, 0, len(dims))
		for _, d := range dims {
			sizes = append(sizes, fmt.Sprintf("%dx%d", d.Width, d.Height))
		}
		parts = append(parts, fmt.Sprintf("%s: %s", device, strings.Join(sizes, ", ")))
	}
	return strings.Join(parts, "; ")
}
