package analyzer_test

import (
	"testing"

	"github.com/preflighthq/preflight/pkg/domain/analyzer"
	"github.com/preflighthq/preflight/pkg/domain/review"
)

const compliantManifest = `<dict>
	<key>NSPrivacyTracking</key>
	<false/>
	<key>NSPrivacyAccessedAPITypes</key>
	<array>
		<dict>
			<key>NSPrivacyAccessedAPIType</key>
			<string>NSPrivacyAccessedAPICategoryUserDefaults</string>
			<key>NSPrivacyAccessedAPITypeReasons</key>
			<array>
				<string>CA92.1</string>
			</array>
		</dict>
	</array>
	<key>NSPrivacyCollectedDataTypes</key>
	<array>
		<dict>
			<key>NSPrivacyCollectedDataType</key>
			<string>NSPrivacyCollectedDataTypeEmailAddress</string>
		</dict>
	</array>
</dict>`

func TestAnalyzePrivacyManifest_Compliant(t *testing.T) {
	rubric := review.DefaultRubric()
	issues := analyzer.AnalyzePrivacyManifest(rubric, compliantManifest)
	if len(issues) != 0 {
		t.Errorf("expected no issues for a compliant manifest, got %d: %v", len(issues), issues)
	}
}

func TestAnalyzePrivacyManifest_EmptyDocument(t *testing.T) {
	rubric := review.DefaultRubric()
	issues := analyzer.AnalyzePrivacyManifest(rubric, "<dict></dict>")

	for _, id := range []string{
		"privacy-manifest-missing-api-types",
		"privacy-manifest-missing-tracking-key",
		"privacy-manifest-missing-collected-data",
	} {
		if findIssue(issues, id) == nil {
			t.Errorf("expected %s finding for an empty manifest", id)
		}
	}
	if len(issues) != 3 {
		t.Errorf("expected exactly 3 issues, got %d: %v", len(issues), issues)
	}
}

func TestAnalyzePrivacyManifest_MissingReason(t *testing.T) {
	rubric := review.DefaultRubric()
	content := `<key>NSPrivacyTracking</key>
	<false/>
	<key>NSPrivacyAccessedAPITypes</key>
	<array>
		<dict>
			<key>NSPrivacyAccessedAPIType</key>
			<string>NSPrivacyAccessedAPICategoryFileTimestamp</string>
		</dict>
	</array>
	<key>NSPrivacyCollectedDataTypes</key>
	<array>
		<dict>
			<key>NSPrivacyCollectedDataType</key>
			<string>NSPrivacyCollectedDataTypeName</string>
		</dict>
	</array>`

	issues := analyzer.AnalyzePrivacyManifest(rubric, content)
	issue := findIssue(issues, "privacy-manifest-missing-reason-NSPrivacyAccessedAPICategoryFileTimestamp")
	if issue == nil {
		t.Fatalf("expected a missing reason finding, got %v", issues)
	}
	if issue.Severity != review.SeverityCritical {
		t.Errorf("expected critical severity, got %s", issue.Severity)
	}
}

func TestAnalyzePrivacyManifest_TrackingWithoutDomains(t *testing.T) {
	rubric := review.DefaultRubric()
	content := `<key>NSPrivacyTracking</key>
	<true/>`

	issues := analyzer.AnalyzePrivacyManifest(rubric, content)
	issue := findIssue(issues, "privacy-manifest-tracking-no-domains")
	if issue == nil {
		t.Fatalf("expected a tracking-without-domains finding, got %v", issues)
	}
	if issue.Severity != review.SeverityHigh {
		t.Errorf("expected high severity, got %s", issue.Severity)
	}
}

func TestAnalyzePrivacyManifest_DomainsWithoutTracking(t *testing.T) {
	rubric := review.DefaultRubric()
	content := `<key>NSPrivacyTracking</key>
	<false/>
	<key>NSPrivacyTrackingDomains</key>
	<array>
		<string>tracker.example.com</string>
	</array>`

	issues := analyzer.AnalyzePrivacyManifest(rubric, content)
	issue := findIssue(issues, "privacy-manifest-domains-no-tracking")
	if issue == nil {
		t.Fatalf("expected a domains-without-tracking finding, got %v", issues)
	}
	if issue.Severity != review.SeverityMedium {
		t.Errorf("expected medium severity, got %s", issue.Severity)
	}
}

func TestAnalyzePrivacyManifest_EmptyCollectedData(t *testing.T) {
	rubric := review.DefaultRubric()
	content := `<key>NSPrivacyTracking</key>
	<false/>
	<key>NSPrivacyAccessedAPITypes</key>
	<array>
		<dict>
			<key>NSPrivacyAccessedAPIType</key>
			<string>NSPrivacyAccessedAPICategoryDiskSpace</string>
			<key>NSPrivacyAccessedAPITypeReasons</key>
			<array>
				<string>E174.1</string>
			</array>
		</dict>
	</array>
	<key>NSPrivacyCollectedDataTypes</key>
	<array>
	</array>`

	issues := analyzer.AnalyzePrivacyManifest(rubric, content)
	issue := findIssue(issues, "privacy-manifest-empty-collected-data")
	if issue == nil {
		t.Fatalf("expected an empty collected data finding, got %v", issues)
	}
	if issue.Severity != review.SeverityLow {
		t.Errorf("expected low severity, got %s", issue.Severity)
	}
}
