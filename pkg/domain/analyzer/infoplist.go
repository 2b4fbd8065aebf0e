package analyzer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/preflighthq/preflight/pkg/domain/review"
)

// privacyUsageKeys maps Info.plist usage-description keys to the permission
// they cover.
var privacyUsageKeys = map[string]string{
	"NSCameraUsageDescription":                     "Camera",
	"NSMicrophoneUsageDescription":                 "Microphone",
	"NSLocationWhenInUseUsageDescription":          "Location (When In Use)",
	"NSLocationAlwaysAndWhenInUseUsageDescription": "Location (Always)",
	"NSPhotoLibraryUsageDescription":               "Photo Library",
	"NSPhotoLibraryAddUsageDescription":            "Photo Library (Add)",
	"NSContactsUsageDescription":                   "Contacts",
	"NSCalendarsUsageDescription":                  "Calendars",
	"NSRemindersUsageDescription":                  "Reminders",
	"NSBluetoothAlwaysUsageDescription":            "Bluetooth",
	"NSMotionUsageDescription":                     "Motion",
	"NSFaceIDUsageDescription":                     "Face ID",
	"NSSpeechRecognitionUsageDescription":          "Speech Recognition",
	"NSHealthShareUsageDescription":                "HealthKit",
	"NSAppleMusicUsageDescription":                 "Media Library",
	"NSSiriUsageDescription":                       "Siri",
	"NSLocalNetworkUsageDescription":               "Local Network",
	"NSUserTrackingUsageDescription":               "App Tracking Transparency",
}

var allowedBackgroundModes = map[string]bool{
	"voip":                 true,
	"location":             true,
	"fetch":                true,
	"remote-notification":  true,
	"audio":                true,
	"bluetooth-central":    true,
	"bluetooth-peripheral": true,
	"processing":           true,
}

var knownDeviceCapabilities = map[string]bool{
	"armv7":         true,
	"arm64":         true,
	"gamekit":       true,
	"accelerometer": true,
	"gyroscope":     true,
	"magnetometer":  true,
	"gps":           true,
	"metal":         true,
	"nfc":           true,
	"opengles-1":    true,
	"opengles-2":    true,
	"opengles-3":    true,
	"camera-flash":  true,
	"healthkit":     true,
	"arkit":         true,
	"bluetooth-le":  true,
	"wifi":          true,
	"telephony":     true,
}

// minSupportedOSVersion is the deployment target below which a finding is
// raised.
const minSupportedOSVersion = 16

// AnalyzeInfoPlist inspects an Info.plist document and returns the issues it
// finds. The checks are independent; an absent key simply produces no issue.
func AnalyzeInfoPlist(rubric *review.Rubric, content string) []review.Issue {
	var issues []review.Issue

	issues = append(issues, checkUsageDescriptions(rubric, content)...)
	issues = append(issues, checkMinimumOSVersion(rubric, content)...)
	issues = append(issues, checkBackgroundModes(rubric, content)...)
	issues = append(issues, checkTransportSecurity(rubric, content)...)
	issues = append(issues, checkIPadOrientations(rubric, content)...)
	issues = append(issues, checkDeviceCapabilities(rubric, content)...)

	return issues
}

// checkUsageDescriptions flags privacy usage descriptions too short to pass
// review, one issue per offending key.
func checkUsageDescriptions(rubric *review.Rubric, content string) []review.Issue {
	var issues []review.Issue
	guideline := rubric.Guideline("5.1.1")

	// Deterministic order across runs.
	keys := make([]string, 0, len(privacyUsageKeys))
	for key := range privacyUsageKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !hasPlistKey(content, key) {
			continue
		}
		value, ok := plistStringValue(content, key)
		if !ok || utf8.RuneCountInString(value) >= 10 {
			continue
		}
		label := privacyUsageKeys[key]
		issues = append(issues, review.Issue{
			ID:               "infoplist-privacy-short-description-" + key,
			CategoryID:       "privacy-policy",
			Severity:         review.SeverityHigh,
			Title:            fmt.Sprintf("%s usage description is too short", label),
			Description:      fmt.Sprintf("The value for %s is %q which may be considered insufficient by App Review. Apple requires meaningful descriptions explaining why the app needs this permission.", key, value),
			Recommendation:   fmt.Sprintf("Provide a clear, user-facing explanation for %s access that describes why your app needs it and how it will be used.", label),
			GuidelineSection: guideline.Section,
			GuidelineURL:     guideline.URL,
			Source:           review.SourceFileAnalysis,
		})
	}
	return issues
}

// checkMinimumOSVersion flags deployment targets older than iOS 16.
func checkMinimumOSVersion(rubric *review.Rubric, content string) []review.Issue {
	minOS, ok := plistStringValue(content, "MinimumOSVersion")
	if !ok {
		return nil
	}
	major, err := strconv.ParseFloat(majorVersionOf(minOS), 64)
	if err != nil || major >= minSupportedOSVersion {
		return nil
	}
	guideline := rubric.Guideline("2.5")
	return []review.Issue{{
		ID:               "infoplist-software-low-min-os",
		CategoryID:       "software-requirements",
		Severity:         review.SeverityMedium,
		Title:            fmt.Sprintf("Minimum OS version is %s", minOS),
		Description:      fmt.Sprintf("The app targets iOS %s. Supporting very old iOS versions may indicate outdated APIs and can lead to review issues. Apple encourages targeting recent OS versions.", minOS),
		Recommendation:   "Consider raising your minimum deployment target to iOS 16 or later to use modern APIs and ensure compatibility with current devices.",
		GuidelineSection: guideline.Section,
		GuidelineURL:     guideline.URL,
		Source:           review.SourceFileAnalysis,
	}}
}

// majorVersionOf keeps the leading numeric major.minor prefix of a version
// string so "14.0.1" parses like 14.0.
func majorVersionOf(version string) string {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) >= 2 {
		return parts[0] + "." + parts[1]
	}
	return parts[0]
}

// checkBackgroundModes flags declared background modes outside the known set.
func checkBackgroundModes(rubric *review.Rubric, content string) []review.Issue {
	modes := plistStringArray(content, "UIBackgroundModes")
	if len(modes) == 0 {
		return nil
	}
	var flagged []string
	for _, mode := range modes {
		if !allowedBackgroundModes[mode] {
			flagged = append(flagged, mode)
		}
	}
	if len(flagged) == 0 {
		return nil
	}
	guideline := rubric.Guideline("2.5")
	return []review.Issue{{
		ID:               "infoplist-software-unusual-background-modes",
		CategoryID:       "software-requirements",
		Severity:         review.SeverityHigh,
		Title:            "Unusual background modes declared",
		Description:      fmt.Sprintf("The app declares background modes that may trigger additional review scrutiny: %s. Apple closely reviews background mode usage.", strings.Join(flagged, ", ")),
		Recommendation:   "Remove any background modes your app does not actively use. Be prepared to justify each declared background mode during review.",
		GuidelineSection: guideline.Section,
		GuidelineURL:     guideline.URL,
		Source:           review.SourceFileAnalysis,
	}}
}

// checkTransportSecurity flags a globally disabled App Transport Security.
func checkTransportSecurity(rubric *review.Rubric, content string) []review.Issue {
	if !hasPlistKey(content, "NSAppTransportSecurity") {
		return nil
	}
	disabled, ok := plistBoolValue(content, "NSAllowsArbitraryLoads")
	if !ok || !disabled {
		return nil
	}
	guideline := rubric.Guideline("2.5")
	return []review.Issue{{
		ID:               "infoplist-software-ats-disabled",
		CategoryID:       "software-requirements",
		Severity:         review.SeverityCritical,
		Title:            "App Transport Security is globally disabled",
		Description:      "NSAllowsArbitraryLoads is set to true, which disables ATS for all network connections. Apple requires a justification for this and may reject apps that disable ATS without a valid reason.",
		Recommendation:   "Enable ATS and use NSExceptionDomains for specific domains that require exceptions, rather than disabling ATS globally. Provide a justification in the App Review notes if needed.",
		GuidelineSection: guideline.Section,
		GuidelineURL:     guideline.URL,
		Source:           review.SourceFileAnalysis,
	}}
}

// checkIPadOrientations flags universal apps that declare no iPad
// orientations.
func checkIPadOrientations(rubric *review.Rubric, content string) []review.Issue {
	deviceFamily := plistStringArray(content, "UIDeviceFamily")
	isUniversal := containsString(deviceFamily, "1") && containsString(deviceFamily, "2")
	if !isUniversal {
		return nil
	}
	if len(plistStringArray(content, "UISupportedInterfaceOrientations~ipad")) > 0 {
		return nil
	}
	guideline := rubric.Guideline("2.1")
	return []review.Issue{{
		ID:               "infoplist-design-missing-ipad-orientations",
		CategoryID:       "design-quality",
		Severity:         review.SeverityMedium,
		Title:            "Missing iPad orientation support",
		Description:      "The app appears to be universal (supports both iPhone and iPad) but does not declare UISupportedInterfaceOrientations~ipad. iPad apps are expected to support multiple orientations.",
		Recommendation:   "Add UISupportedInterfaceOrientations~ipad to your Info.plist with appropriate orientations, or ensure your iPad layout supports both portrait and landscape.",
		GuidelineSection: guideline.Section,
		GuidelineURL:     guideline.URL,
		Source:           review.SourceFileAnalysis,
	}}
}

// checkDeviceCapabilities flags required device capabilities outside the known
// set.
func checkDeviceCapabilities(rubric *review.Rubric, content string) []review.Issue {
	capabilities := plistStringArray(content, "UIRequiredDeviceCapabilities")
	var unusual []string
	for _, capability := range capabilities {
		if !knownDeviceCapabilities[capability] {
			unusual = append(unusual, capability)
		}
	}
	if len(unusual) == 0 {
		return nil
	}
	guideline := rubric.Guideline("2.5")
	return []review.Issue{{
		ID:               "infoplist-software-unusual-capabilities",
		CategoryID:       "software-requirements",
		Severity:         review.SeverityMedium,
		Title:            "Unusual required device capabilities",
		Description:      fmt.Sprintf("The app requires device capabilities that may limit compatibility: %s. This can restrict which devices can download your app.", strings.Join(unusual, ", ")),
		Recommendation:   "Review UIRequiredDeviceCapabilities and ensure each listed capability is truly required for your app to function. Unnecessary restrictions limit your potential audience.",
		GuidelineSection: guideline.Section,
		GuidelineURL:     guideline.URL,
		Source:           review.SourceFileAnalysis,
	}}
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
