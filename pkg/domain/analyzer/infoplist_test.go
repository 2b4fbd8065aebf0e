package analyzer_test

import (
	"strings"
	"testing"

	"github.com/preflighthq/preflight/pkg/domain/analyzer"
	"github.com/preflighthq/preflight/pkg/domain/review"
)

func findIssue(issues []review.Issue, id string) *review.Issue {
	for i := range issues {
		if issues[i].ID == id {
			return &issues[i]
		}
	}
	return nil
}

func hasIssuePrefix(issues []review.Issue, prefix string) bool {
	for _, issue := range issues {
		if strings.HasPrefix(issue.ID, prefix) {
			return true
		}
	}
	return false
}

func TestAnalyzeInfoPlist_EmptyDocument(t *testing.T) {
	rubric := review.DefaultRubric()
	issues := analyzer.AnalyzeInfoPlist(rubric, "<plist><dict></dict></plist>")
	if len(issues) != 0 {
		t.Errorf("expected no issues for an empty plist, got %d: %v", len(issues), issues)
	}
}

func TestAnalyzeInfoPlist_ShortUsageDescription(t *testing.T) {
	rubric := review.DefaultRubric()
	content := `<dict>
		<key>NSCameraUsageDescription</key>
		<string>scan</string>
		<key>NSMicrophoneUsageDescription</key>
		<string>We use the microphone to record your voice memos.</string>
	</dict>`

	issues := analyzer.AnalyzeInfoPlist(rubric, content)

	issue := findIssue(issues, "infoplist-privacy-short-description-NSCameraUsageDescription")
	if issue == nil {
		t.Fatalf("expected a short camera description issue, got %v", issues)
	}
	if issue.Severity != review.SeverityHigh {
		t.Errorf("expected high severity, got %s", issue.Severity)
	}
	if issue.CategoryID != "privacy-policy" {
		t.Errorf("expected privacy-policy category, got %s", issue.CategoryID)
	}
	if findIssue(issues, "infoplist-privacy-short-description-NSMicrophoneUsageDescription") != nil {
		t.Error("a sufficiently long description should not be flagged")
	}
}

func TestAnalyzeInfoPlist_ShortUsageDescriptionMultiByte(t *testing.T) {
	rubric := review.DefaultRubric()
	// 8 characters but 24 bytes. Still short.
	content := `<dict>
		<key>NSCameraUsageDescription</key>
		<string>カメラを使います</string>
		<key>NSMicrophoneUsageDescription</key>
		<string>音声メモを録音するためにマイクを使用します。</string>
	</dict>`

	issues := analyzer.AnalyzeInfoPlist(rubric, content)

	if findIssue(issues, "infoplist-privacy-short-description-NSCameraUsageDescription") == nil {
		t.Fatalf("expected a short camera description issue, got %v", issues)
	}
	if findIssue(issues, "infoplist-privacy-short-description-NSMicrophoneUsageDescription") != nil {
		t.Error("a 22 character Japanese description should not be flagged")
	}
}

func TestAnalyzeInfoPlist_MinimumOSVersion(t *testing.T) {
	rubric := review.DefaultRubric()

	tests := []struct {
		version string
		flagged bool
	}{
		{"14.0", true},
		{"15.6.1", true},
		{"16.0", false},
		{"17.2", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		content := "<key>MinimumOSVersion</key>\n<string>" + tt.version + "</string>"
		issues := analyzer.AnalyzeInfoPlist(rubric, content)
		got := findIssue(issues, "infoplist-software-low-min-os") != nil
		if got != tt.flagged {
			t.Errorf("version %s: flagged = %v, want %v", tt.version, got, tt.flagged)
		}
	}
}

func TestAnalyzeInfoPlist_BackgroundModes(t *testing.T) {
	rubric := review.DefaultRubric()

	normal := `<key>UIBackgroundModes</key>
	<array>
		<string>audio</string>
		<string>fetch</string>
	</array>`
	if issues := analyzer.AnalyzeInfoPlist(rubric, normal); findIssue(issues, "infoplist-software-unusual-background-modes") != nil {
		t.Error("known background modes should not be flagged")
	}

	unusual := `<key>UIBackgroundModes</key>
	<array>
		<string>audio</string>
		<string>continuous-tracking</string>
	</array>`
	issues := analyzer.AnalyzeInfoPlist(rubric, unusual)
	issue := findIssue(issues, "infoplist-software-unusual-background-modes")
	if issue == nil {
		t.Fatal("expected unusual background modes to be flagged")
	}
	if !strings.Contains(issue.Description, "continuous-tracking") {
		t.Errorf("expected the offending mode in the description, got %q", issue.Description)
	}
}

func TestAnalyzeInfoPlist_TransportSecurity(t *testing.T) {
	rubric := review.DefaultRubric()

	disabled := `<key>NSAppTransportSecurity</key>
	<dict>
		<key>NSAllowsArbitraryLoads</key>
		<true/>
	</dict>`
	issues := analyzer.AnalyzeInfoPlist(rubric, disabled)
	issue := findIssue(issues, "infoplist-software-ats-disabled")
	if issue == nil {
		t.Fatal("expected a finding when ATS is globally disabled")
	}
	if issue.Severity != review.SeverityCritical {
		t.Errorf("expected critical severity, got %s", issue.Severity)
	}

	enabled := `<key>NSAppTransportSecurity</key>
	<dict>
		<key>NSAllowsArbitraryLoads</key>
		<false/>
	</dict>`
	if issues := analyzer.AnalyzeInfoPlist(rubric, enabled); findIssue(issues, "infoplist-software-ats-disabled") != nil {
		t.Error("ATS enabled should not be flagged")
	}
}

func TestAnalyzeInfoPlist_IPadOrientations(t *testing.T) {
	rubric := review.DefaultRubric()

	universal := `<key>UIDeviceFamily</key>
	<array>
		<string>1</string>
		<string>2</string>
	</array>`
	issues := analyzer.AnalyzeInfoPlist(rubric, universal)
	issue := findIssue(issues, "infoplist-design-missing-ipad-orientations")
	if issue == nil {
		t.Fatal("expected a finding for a universal app without iPad orientations")
	}
	if issue.CategoryID != "design-quality" {
		t.Errorf("expected design-quality category, got %s", issue.CategoryID)
	}

	withOrientations := universal + `
	<key>UISupportedInterfaceOrientations~ipad</key>
	<array>
		<string>UIInterfaceOrientationPortrait</string>
	</array>`
	if issues := analyzer.AnalyzeInfoPlist(rubric, withOrientations); findIssue(issues, "infoplist-design-missing-ipad-orientations") != nil {
		t.Error("declared iPad orientations should not be flagged")
	}

	phoneOnly := `<key>UIDeviceFamily</key>
	<array>
		<string>1</string>
	</array>`
	if issues := analyzer.AnalyzeInfoPlist(rubric, phoneOnly); findIssue(issues, "infoplist-design-missing-ipad-orientations") != nil {
		t.Error("an iPhone-only app should not be flagged for iPad orientations")
	}
}

func TestAnalyzeInfoPlist_DeviceCapabilities(t *testing.T) {
	rubric := review.DefaultRubric()

	content := `<key>UIRequiredDeviceCapabilities</key>
	<array>
		<string>arm64</string>
		<string>quantum-coprocessor</string>
	</array>`
	issues := analyzer.AnalyzeInfoPlist(rubric, content)
	issue := findIssue(issues, "infoplist-software-unusual-capabilities")
	if issue == nil {
		t.Fatal("expected unusual capabilities to be flagged")
	}
	if strings.Contains(issue.Description, "arm64") {
		t.Error("known capabilities should not be listed as unusual")
	}
}

func TestAnalyzeInfoPlist_MultipleFindings(t *testing.T) {
	rubric := review.DefaultRubric()
	content := `<dict>
		<key>MinimumOSVersion</key>
		<string>13.0</string>
		<key>NSAppTransportSecurity</key>
		<dict>
			<key>NSAllowsArbitraryLoads</key>
			<true/>
		</dict>
	</dict>`

	issues := analyzer.AnalyzeInfoPlist(rubric, content)
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d: %v", len(issues), issues)
	}
	if findIssue(issues, "infoplist-software-low-min-os") == nil {
		t.Error("expected low minimum OS finding")
	}
	if findIssue(issues, "infoplist-software-ats-disabled") == nil {
		t.Error("expected ATS disabled finding")
	}
}
