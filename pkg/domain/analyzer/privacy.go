package analyzer

import (
	"fmt"

	"github.com/preflighthq/preflight/pkg/domain/review"
)

// requiredReasonAPIs maps privacy manifest API categories to a reviewer-facing
// label.
var requiredReasonAPIs = map[string]string{
	"NSPrivacyAccessedAPICategoryFileTimestamp":   "File timestamp APIs",
	"NSPrivacyAccessedAPICategorySystemBootTime":  "System boot time APIs",
	"NSPrivacyAccessedAPICategoryDiskSpace":       "Disk space APIs",
	"NSPrivacyAccessedAPICategoryActiveKeyboards": "Active keyboards APIs",
	"NSPrivacyAccessedAPICategoryUserDefaults":    "UserDefaults APIs",
}

// AnalyzePrivacyManifest inspects a PrivacyInfo.xcprivacy document and returns
// the issues it finds.
func AnalyzePrivacyManifest(rubric *review.Rubric, content string) []review.Issue {
	var issues []review.Issue
	guideline := rubric.Guideline("5.1.1-5.1.2")

	// Accessed API types and their reason codes.
	apiTypesContent, hasAPITypes := plistArrayContent(content, "NSPrivacyAccessedAPITypes")
	if !hasAPITypes {
		issues = append(issues, review.Issue{
			ID:               "privacy-manifest-missing-api-types",
			CategoryID:       "privacy-manifest",
			Severity:         review.SeverityHigh,
			Title:            "Missing NSPrivacyAccessedAPITypes",
			Description:      "The privacy manifest does not declare NSPrivacyAccessedAPITypes. If your app or any included SDK uses required reason APIs, you must declare them with valid reasons.",
			Recommendation:   "Add NSPrivacyAccessedAPITypes to your PrivacyInfo.xcprivacy and declare each required reason API your app uses with the appropriate reason codes.",
			GuidelineSection: guideline.Section,
			GuidelineURL:     guideline.URL,
			Source:           review.SourceFileAnalysis,
		})
	} else {
		for _, dict := range extractDicts(apiTypesContent) {
			apiType, ok := plistStringValue(dict, "NSPrivacyAccessedAPIType")
			if !ok || apiType == "" {
				continue
			}
			reasonsContent, hasReasons := plistArrayContent(dict, "NSPrivacyAccessedAPITypeReasons")
			if hasReasons && len(allStrings(reasonsContent)) > 0 {
				continue
			}
			label := apiType
			if known, ok := requiredReasonAPIs[apiType]; ok {
				label = known
			}
			issues = append(issues, review.Issue{
				ID:               "privacy-manifest-missing-reason-" + apiType,
				CategoryID:       "privacy-manifest",
				Severity:         review.SeverityCritical,
				Title:            fmt.Sprintf("No reason declared for %s", label),
				Description:      fmt.Sprintf("The API category %q is declared in NSPrivacyAccessedAPITypes but has no reasons listed in NSPrivacyAccessedAPITypeReasons. Apple requires at least one valid reason for each declared API.", apiType),
				Recommendation:   fmt.Sprintf("Add a valid reason code to NSPrivacyAccessedAPITypeReasons for %s. See Apple's documentation for the list of approved reason codes.", apiType),
				GuidelineSection: guideline.Section,
				GuidelineURL:     guideline.URL,
				Source:           review.SourceFileAnalysis,
			})
		}
	}

	// Tracking declaration consistency.
	trackingEnabled, hasTrackingValue := plistBoolValue(content, "NSPrivacyTracking")
	var trackingDomains []string
	if domainsContent, ok := plistArrayContent(content, "NSPrivacyTrackingDomains"); ok {
		trackingDomains = allStrings(domainsContent)
	}

	if hasTrackingValue && trackingEnabled && len(trackingDomains) == 0 {
		issues = append(issues, review.Issue{
			ID:               "privacy-manifest-tracking-no-domains",
			CategoryID:       "privacy-manifest",
			Severity:         review.SeverityHigh,
			Title:            "Tracking enabled but no tracking domains declared",
			Description:      "NSPrivacyTracking is set to true but NSPrivacyTrackingDomains is empty or missing. If your app performs tracking, you must declare the domains used.",
			Recommendation:   "Add all tracking domains to NSPrivacyTrackingDomains, or set NSPrivacyTracking to false if no tracking occurs.",
			GuidelineSection: guideline.Section,
			GuidelineURL:     guideline.URL,
			Source:           review.SourceFileAnalysis,
		})
	}

	if hasTrackingValue && !trackingEnabled && len(trackingDomains) > 0 {
		issues = append(issues, review.Issue{
			ID:               "privacy-manifest-domains-no-tracking",
			CategoryID:       "privacy-manifest",
			Severity:         review.SeverityMedium,
			Title:            "Tracking domains declared but tracking is disabled",
			Description:      fmt.Sprintf("NSPrivacyTracking is false but NSPrivacyTrackingDomains contains %d domain(s). This is inconsistent and may cause confusion during review.", len(trackingDomains)),
			Recommendation:   "Either set NSPrivacyTracking to true if your app tracks users, or remove the entries from NSPrivacyTrackingDomains.",
			GuidelineSection: guideline.Section,
			GuidelineURL:     guideline.URL,
			Source:           review.SourceFileAnalysis,
		})
	}

	if !hasPlistKey(content, "NSPrivacyTracking") {
		issues = append(issues, review.Issue{
			ID:               "privacy-manifest-missing-tracking-key",
			CategoryID:       "privacy-manifest",
			Severity:         review.SeverityMedium,
			Title:            "NSPrivacyTracking key not declared",
			Description:      "The privacy manifest does not include the NSPrivacyTracking key. Apple expects this key to be present to indicate whether the app performs user tracking.",
			Recommendation:   "Add NSPrivacyTracking to your PrivacyInfo.xcprivacy and set it to true or false depending on whether your app tracks users as defined by Apple.",
			GuidelineSection: guideline.Section,
			GuidelineURL:     guideline.URL,
			Source:           review.SourceFileAnalysis,
		})
	}

	// Collected data type declarations.
	collectedContent, hasCollected := plistArrayContent(content, "NSPrivacyCollectedDataTypes")
	if !hasCollected {
		issues = append(issues, review.Issue{
			ID:               "privacy-manifest-missing-collected-data",
			CategoryID:       "privacy-manifest",
			Severity:         review.SeverityMedium,
			Title:            "Missing NSPrivacyCollectedDataTypes",
			Description:      "The privacy manifest does not declare NSPrivacyCollectedDataTypes. If your app collects any user data, this section must be present.",
			Recommendation:   "Add NSPrivacyCollectedDataTypes to your PrivacyInfo.xcprivacy and declare all data types your app collects, even if collected by third-party SDKs.",
			GuidelineSection: guideline.Section,
			GuidelineURL:     guideline.URL,
			Source:           review.SourceFileAnalysis,
		})
	} else if len(extractDicts(collectedContent)) == 0 {
		issues = append(issues, review.Issue{
			ID:               "privacy-manifest-empty-collected-data",
			CategoryID:       "privacy-manifest",
			Severity:         review.SeverityLow,
			Title:            "NSPrivacyCollectedDataTypes is empty",
			Description:      "NSPrivacyCollectedDataTypes is declared but contains no entries. If your app truly collects no data, this is fine. Otherwise, ensure all collected data types are declared.",
			Recommendation:   "Verify that your app (and all included SDKs) genuinely does not collect any user data. If it does, add the appropriate data type entries.",
			GuidelineSection: guideline.Section,
			GuidelineURL:     guideline.URL,
			Source:           review.SourceFileAnalysis,
		})
	}

	return issues
}
