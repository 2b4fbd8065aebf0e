// Package analyzer inspects submission artifacts and emits review issues.
// Plist-style artifacts are scanned with tolerant pattern extraction: a
// missing or malformed key yields no match, never an error.
package analyzer

import (
	"regexp"
	"strings"
)

var (
	dictPattern      = regexp.MustCompile(`(?s)<dict>(.*?)</dict>`)
	allStringPattern = regexp.MustCompile(`<string>([^<]*)</string>`)
)

// hasPlistKey reports whether a <key> element with the given name exists
// anywhere in the document.
func hasPlistKey(xml, key string) bool {
	pattern := regexp.MustCompile(`<key>\s*` + regexp.QuoteMeta(key) + `\s*</key>`)
	return pattern.MatchString(xml)
}

// plistStringValue extracts the text of the <string> element following the
// named <key>. The second return value is false when the key has no string
// value.
func plistStringValue(xml, key string) (string, bool) {
	pattern := regexp.MustCompile(`(?s)<key>\s*` + regexp.QuoteMeta(key) + `\s*</key>\s*<string>([^<]*)</string>`)
	m := pattern.FindStringSubmatch(xml)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// plistBoolValue extracts the <true/> or <false/> element following the named
// <key>. The second return value is false when the key has no boolean value.
func plistBoolValue(xml, key string) (bool, bool) {
	pattern := regexp.MustCompile(`(?s)<key>\s*` + regexp.QuoteMeta(key) + `\s*</key>\s*<(true|false)\s*/>`)
	m := pattern.FindStringSubmatch(xml)
	if m == nil {
		return false, false
	}
	return m[1] == "true", true
}

// plistArrayContent extracts the raw content of the <array> element following
// the named <key>. The second return value is false when the key has no array.
func plistArrayContent(xml, key string) (string, bool) {
	pattern := regexp.MustCompile(`(?s)<key>\s*` + regexp.QuoteMeta(key) + `\s*</key>\s*<array>(.*?)</array>`)
	m := pattern.FindStringSubmatch(xml)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// plistStringArray extracts all <string> values of the <array> following the
// named <key>. A missing key yields an empty slice.
func plistStringArray(xml, key string) []string {
	content, ok := plistArrayContent(xml, key)
	if !ok {
		return nil
	}
	return allStrings(content)
}

// allStrings collects every <string> value in the given fragment.
func allStrings(content string) []string {
	var out []string
	for _, m := range allStringPattern.FindAllStringSubmatch(content, -1) {
		out = append(out, strings.TrimSpace(m[1]))
	}
	return out
}

// extractDicts collects the inner content of every <dict> block in the
// fragment.
func extractDicts(content string) []string {
	var out []string
	for _, m := range dictPattern.FindAllStringSubmatch(content, -1) {
		out = append(out, m[1])
	}
	return out
}
