package review

// defaultCategories are the ten review dimensions the built-in rubric scores.
// Weights sum to 1.0.
func defaultCategories() []Category {
	return []Category{
		{
			ID:               "app-completeness",
			Name:             "App Completeness",
			Description:      "Your app must be fully functional before submission. No crashes, placeholder content, or broken features.",
			ShortDescription: "Crash-free, no placeholders, working links",
			GuidelineSection: "2.1",
			GuidelineURL:     "https://developer.apple.com/app-store/review/guidelines/#performance",
			Weight:           0.18,
			Icon:             "check-circle",
		},
		{
			ID:               "accurate-metadata",
			Name:             "Accurate Metadata",
			Description:      "App metadata must accurately reflect the app's functionality. No misleading descriptions, keyword stuffing, or invalid screenshots.",
			ShortDescription: "Description, keywords, screenshots validated",
			GuidelineSection: "2.3",
			GuidelineURL:     "https://developer.apple.com/app-store/review/guidelines/#performance",
			Weight:           0.12,
			Icon:             "file-text",
		},
		{
			ID:               "privacy-policy",
			Name:             "Privacy Policy & Data",
			Description:      "Apps must have a privacy policy and clearly disclose data collection, storage, and sharing practices.",
			ShortDescription: "Policy URL, data disclosure, permissions",
			GuidelineSection: "5.1.1",
			GuidelineURL:     "https://developer.apple.com/app-store/review/guidelines/#legal",
			Weight:           0.14,
			Icon:             "shield",
		},
		{
			ID:               "privacy-manifest",
			Name:             "Privacy Manifest",
			Description:      "Apps must include a valid PrivacyInfo.xcprivacy manifest declaring required reason APIs, tracking domains, and data collection types.",
			ShortDescription: "Required reason APIs, tracking domains",
			GuidelineSection: "5.1.1-5.1.2",
			GuidelineURL:     "https://developer.apple.com/documentation/bundleresources/privacy_manifest_files",
			Weight:           0.10,
			Icon:             "fingerprint",
		},
		{
			ID:               "iap-compliance",
			Name:             "IAP Compliance",
			Description:      "Digital goods and subscriptions must use Apple's In-App Purchase system. No external payment links for digital content.",
			ShortDescription: "Apple IAP, restore button, no external payments",
			GuidelineSection: "3.1",
			GuidelineURL:     "https://developer.apple.com/app-store/review/guidelines/#business",
			Weight:           0.10,
			Icon:             "credit-card",
		},
		{
			ID:               "minimum-functionality",
			Name:             "Minimum Functionality",
			Description:      "Apps must provide standalone value beyond a simple website wrapper and offer meaningful native functionality.",
			ShortDescription: "Not a web wrapper, standalone value",
			GuidelineSection: "4.2",
			GuidelineURL:     "https://developer.apple.com/app-store/review/guidelines/#design",
			Weight:           0.08,
			Icon:             "zap",
		},
		{
			ID:               "user-generated-content",
			Name:             "User Generated Content",
			Description:      "Apps with user-generated content must include reporting, filtering, and user blocking capabilities.",
			ShortDescription: "Report mechanism, moderation, blocking",
			GuidelineSection: "1.2",
			GuidelineURL:     "https://developer.apple.com/app-store/review/guidelines/#safety",
			Weight:           0.07,
			Icon:             "users",
		},
		{
			ID:               "software-requirements",
			Name:             "Software Requirements",
			Description:      "Apps must meet technical requirements including minimum OS version, App Transport Security, proper background mode usage, and IPv6 support.",
			ShortDescription: "iOS version, ATS, background modes",
			GuidelineSection: "2.5",
			GuidelineURL:     "https://developer.apple.com/app-store/review/guidelines/#performance",
			Weight:           0.08,
			Icon:             "cpu",
		},
		{
			ID:               "intellectual-property",
			Name:             "Intellectual Property",
			Description:      "Apps must use original content or properly licensed assets. No trademark infringement or unauthorized third-party content.",
			ShortDescription: "Original assets, trademark compliance",
			GuidelineSection: "5.2",
			GuidelineURL:     "https://developer.apple.com/app-store/review/guidelines/#legal",
			Weight:           0.06,
			Icon:             "scale",
		},
		{
			ID:               "design-quality",
			Name:             "Design Quality",
			Description:      "Apps must have a polished, professional UI that follows Human Interface Guidelines and supports all target screen sizes.",
			ShortDescription: "Polished UI, HIG, screen sizes",
			GuidelineSection: "4.1/4.3",
			GuidelineURL:     "https://developer.apple.com/app-store/review/guidelines/#design",
			Weight:           0.07,
			Icon:             "palette",
		},
	}
}
