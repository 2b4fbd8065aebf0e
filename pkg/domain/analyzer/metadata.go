package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/preflighthq/preflight/pkg/domain/review"
)

const (
	maxAppNameLength     = 30
	maxKeywordsLength    = 100
	minDescriptionLength = 100
	shortDescriptionCut  = 50
)

var keywordSplitPattern = regexp.MustCompile(`[,\s]+`)

// AnalyzeMetadata validates the descriptive metadata fields. Empty category
// and age rating values are treated as unspecified, not invalid.
func AnalyzeMetadata(rubric *review.Rubric, meta review.Metadata) []review.Issue {
	var issues []review.Issue
	guideline := rubric.Guideline("2.3")

	issue := func(id, title, description, recommendation string, severity review.Severity) review.Issue {
		return review.Issue{
			ID:               id,
			CategoryID:       "accurate-metadata",
			Severity:         severity,
			Title:            title,
			Description:      description,
			Recommendation:   recommendation,
			GuidelineSection: guideline.Section,
			GuidelineURL:     guideline.URL,
			Source:           review.SourceFileAnalysis,
		}
	}

	// App name.
	name := strings.TrimSpace(meta.AppName)
	if name == "" {
		issues = append(issues, issue(
			"metadata-accuracy-empty-app-name",
			"App name is empty",
			"No app name has been provided. An app name is required for App Store submission.",
			"Provide a descriptive app name that clearly represents your app. The name must be 30 characters or fewer.",
			review.SeverityCritical,
		))
	} else if nameLength := utf8.RuneCountInString(name); nameLength > maxAppNameLength {
		issues = append(issues, issue(
			"metadata-accuracy-long-app-name",
			"App name exceeds 30 characters",
			fmt.Sprintf("The app name %q is %d characters. Apple limits app names to 30 characters.", name, nameLength),
			"Shorten your app name to 30 characters or fewer.",
			review.SeverityHigh,
		))
	}

	// Description. Limits count characters, not bytes, so multi-byte
	// text measures the same as Latin text.
	descLength := utf8.RuneCountInString(strings.TrimSpace(meta.Description))
	switch {
	case descLength == 0:
		issues = append(issues, issue(
			"metadata-accuracy-empty-description",
			"App description is empty",
			"No app description has been provided. A description is required for App Store submission.",
			"Write a clear, informative description that explains what your app does and its key features.",
			review.SeverityCritical,
		))
	case descLength < shortDescriptionCut:
		issues = append(issues, issue(
			"metadata-accuracy-very-short-description",
			"App description is too short",
			fmt.Sprintf("The description is only %d characters. Extremely short descriptions may be flagged by App Review as insufficient.", descLength),
			"Expand your description to at least 100 characters. Include your app's purpose, key features, and what makes it valuable.",
			review.SeverityHigh,
		))
	case descLength < minDescriptionLength:
		issues = append(issues, issue(
			"metadata-accuracy-short-description",
			"App description could be more detailed",
			fmt.Sprintf("The description is %d characters. While not critically short, a more detailed description improves discoverability and gives reviewers confidence in your app.", descLength),
			"Consider expanding your description to clearly communicate your app's features, benefits, and target audience.",
			review.SeverityMedium,
		))
	}

	// Keywords, only evaluated when present.
	keywords := strings.TrimSpace(meta.Keywords)
	if keywords != "" {
		if keywordsLength := utf8.RuneCountInString(keywords); keywordsLength > maxKeywordsLength {
			issues = append(issues, issue(
				"metadata-accuracy-keywords-too-long",
				"Keywords exceed 100 character limit",
				fmt.Sprintf("Keywords are %d characters. Apple limits the keywords field to 100 characters.", keywordsLength),
				"Reduce your keywords to 100 characters or fewer. Focus on the most relevant, high-value terms.",
				review.SeverityHigh,
			))
		}

		if repeated := repeatedKeywords(keywords); len(repeated) > 0 {
			issues = append(issues, issue(
				"metadata-accuracy-keyword-stuffing-repeats",
				"Keyword stuffing detected: repeated words",
				fmt.Sprintf("The following keywords appear more than once: %s. Repeating keywords does not improve ranking and may trigger a rejection for keyword stuffing.", strings.Join(repeated, ", ")),
				"Remove duplicate keywords. Each keyword should appear only once. Use the space for additional unique, relevant terms.",
				review.SeverityHigh,
			))
		}

		commaCount := strings.Count(keywords, ",")
		termCount := 0
		for _, term := range strings.Split(keywords, ",") {
			if strings.TrimSpace(term) != "" {
				termCount++
			}
		}
		if commaCount > 0 && commaCount >= termCount {
			issues = append(issues, issue(
				"metadata-accuracy-keyword-stuffing-commas",
				"Keywords have excessive separators",
				"The keywords field has more commas than actual terms, suggesting empty entries or formatting issues.",
				"Clean up your keywords by removing empty entries, trailing commas, and unnecessary separators.",
				review.SeverityMedium,
			))
		}
	}

	// Primary category.
	if meta.PrimaryCategory != "" && !containsString(rubric.AppCategories, meta.PrimaryCategory) {
		sample := rubric.AppCategories
		if len(sample) > 5 {
			sample = sample[:5]
		}
		issues = append(issues, issue(
			"metadata-accuracy-invalid-category",
			"Invalid primary category",
			fmt.Sprintf("%q is not a recognized App Store category.", meta.PrimaryCategory),
			fmt.Sprintf("Choose a valid App Store category. Valid categories include: %s, and more.", strings.Join(sample, ", ")),
			review.SeverityHigh,
		))
	}

	// Age rating.
	if meta.AgeRating != "" && !containsString(rubric.AgeRatings, meta.AgeRating) {
		issues = append(issues, issue(
			"metadata-accuracy-invalid-age-rating",
			"Invalid age rating",
			fmt.Sprintf("%q is not a valid App Store age rating. Valid options are: %s.", meta.AgeRating, strings.Join(rubric.AgeRatings, ", ")),
			fmt.Sprintf("Select a valid age rating: %s. Ensure it accurately reflects your app's content.", strings.Join(rubric.AgeRatings, ", ")),
			review.SeverityHigh,
		))
	}

	return issues
}

// repeatedKeywords lists words (split on commas and whitespace, lowercased)
// that appear more than once, sorted for stable output.
func repeatedKeywords(keywords string) []string {
	counts := make(map[string]int)
	for _, word := range keywordSplitPattern.Split(strings.ToLower(keywords), -1) {
		if word == "" {
			continue
		}
		counts[word]++
	}
	var repeated []string
	for word, count := range counts {
		if count > 1 {
			repeated = append(repeated, word)
		}
	}
	sort.Strings(repeated)
	return repeated
}
