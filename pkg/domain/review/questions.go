package review

// defaultQuestions is the built-in questionnaire bank.
func defaultQuestions() []Question {
	return []Question{
		// App Completeness (2.1)
		{
			ID:         "completeness-crashes",
			CategoryID: "app-completeness",
			Text:       "Have you thoroughly tested your app for crashes and bugs?",
			HelpText:   "Apple will reject apps that crash during review.",
			Severity:   SeverityCritical,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},
		{
			ID:         "completeness-placeholders",
			CategoryID: "app-completeness",
			Text:       "Have you removed all placeholder content (lorem ipsum, test data, sample images)?",
			HelpText:   "Apps with placeholder content are considered incomplete.",
			Severity:   SeverityHigh,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},
		{
			ID:         "completeness-demo-credentials",
			CategoryID: "app-completeness",
			Text:       "If your app requires login, have you provided demo credentials in App Store Connect?",
			HelpText:   "Reviewers need access to test your app. Provide a demo account in the review notes.",
			Severity:   SeverityCritical,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},
		{
			ID:         "completeness-broken-links",
			CategoryID: "app-completeness",
			Text:       "Have you verified all links and buttons in the app are functional?",
			HelpText:   "Broken links or dead-end screens will cause rejection.",
			Severity:   SeverityHigh,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},
		{
			ID:         "completeness-clean-install",
			CategoryID: "app-completeness",
			Text:       "Have you tested the app on a clean install (no prior data)?",
			HelpText:   "Reviewers start with a fresh install. Ensure onboarding works without existing data.",
			Severity:   SeverityMedium,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},

		// Privacy Policy & Data (5.1.1)
		{
			ID:         "privacy-policy-url",
			CategoryID: "privacy-policy",
			Text:       "Do you have a publicly accessible privacy policy URL?",
			HelpText:   "A privacy policy is required for all apps. It must be accessible without login.",
			Severity:   SeverityCritical,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},
		{
			ID:         "privacy-in-app",
			CategoryID: "privacy-policy",
			Text:       "Is the privacy policy accessible from within the app?",
			HelpText:   "Users must be able to view the privacy policy inside the app.",
			Severity:   SeverityHigh,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},
		{
			ID:         "privacy-data-disclosure",
			CategoryID: "privacy-policy",
			Text:       "Have you accurately filled out the App Privacy section in App Store Connect?",
			HelpText:   "The nutrition label must reflect actual data collection practices.",
			Severity:   SeverityHigh,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},
		{
			ID:         "privacy-data-deletion",
			CategoryID: "privacy-policy",
			Text:       "Do you offer a way for users to request deletion of their data?",
			HelpText:   "Apps that collect user data must provide a data deletion mechanism.",
			Severity:   SeverityHigh,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},

		// IAP Compliance (3.1)
		{
			ID:         "iap-sells-digital",
			CategoryID: "iap-compliance",
			Text:       "Does your app sell digital goods or subscriptions?",
			HelpText:   "Digital goods include premium content, subscriptions, virtual currency, etc.",
			Severity:   SeverityCritical,
			Type:       QuestionBoolean,
			SafeAnswer: "no",
		},
		{
			ID:            "iap-uses-apple",
			CategoryID:    "iap-compliance",
			Text:          "Are all digital purchases made through Apple's In-App Purchase system?",
			HelpText:      "Digital goods must use Apple IAP. External payment for digital content is not allowed.",
			Severity:      SeverityCritical,
			Type:          QuestionBoolean,
			ConditionalOn: "iap-sells-digital",
			SafeAnswer:    "yes",
		},
		{
			ID:            "iap-restore-button",
			CategoryID:    "iap-compliance",
			Text:          "Does your app have a 'Restore Purchases' button?",
			HelpText:      "Apps with IAP must include a mechanism to restore previous purchases.",
			Severity:      SeverityHigh,
			Type:          QuestionBoolean,
			ConditionalOn: "iap-sells-digital",
			SafeAnswer:    "yes",
		},
		{
			ID:            "iap-no-external",
			CategoryID:    "iap-compliance",
			Text:          "Have you removed all external payment links or prompts for digital goods?",
			HelpText:      "You cannot direct users outside the app to purchase digital content.",
			Severity:      SeverityCritical,
			Type:          QuestionBoolean,
			ConditionalOn: "iap-sells-digital",
			SafeAnswer:    "yes",
		},

		// Minimum Functionality (4.2)
		{
			ID:         "min-func-not-web-wrapper",
			CategoryID: "minimum-functionality",
			Text:       "Is your app more than a simple website wrapped in a native shell?",
			HelpText:   "Apps that are merely web views without native functionality may be rejected.",
			Severity:   SeverityHigh,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},
		{
			ID:         "min-func-standalone",
			CategoryID: "minimum-functionality",
			Text:       "Does your app provide standalone value beyond what a website offers?",
			HelpText:   "The app should leverage native capabilities like push notifications, camera, etc.",
			Severity:   SeverityMedium,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},

		// User Generated Content (1.2)
		{
			ID:         "ugc-has-content",
			CategoryID: "user-generated-content",
			Text:       "Does your app allow users to post content visible to other users?",
			HelpText:   "This includes comments, photos, videos, messages, or any shared content.",
			Severity:   SeverityHigh,
			Type:       QuestionBoolean,
			SafeAnswer: "no",
		},
		{
			ID:            "ugc-report",
			CategoryID:    "user-generated-content",
			Text:          "Can users report objectionable content?",
			HelpText:      "A reporting mechanism is required for apps with UGC.",
			Severity:      SeverityCritical,
			Type:          QuestionBoolean,
			ConditionalOn: "ugc-has-content",
			SafeAnswer:    "yes",
		},
		{
			ID:            "ugc-moderation",
			CategoryID:    "user-generated-content",
			Text:          "Do you have content moderation or filtering in place?",
			HelpText:      "Apps must filter objectionable content to protect users.",
			Severity:      SeverityHigh,
			Type:          QuestionBoolean,
			ConditionalOn: "ugc-has-content",
			SafeAnswer:    "yes",
		},
		{
			ID:            "ugc-block",
			CategoryID:    "user-generated-content",
			Text:          "Can users block other users?",
			HelpText:      "A blocking mechanism is required for social/UGC apps.",
			Severity:      SeverityMedium,
			Type:          QuestionBoolean,
			ConditionalOn: "ugc-has-content",
			SafeAnswer:    "yes",
		},

		// Intellectual Property (5.2)
		{
			ID:         "ip-original-assets",
			CategoryID: "intellectual-property",
			Text:       "Are all assets in your app original or properly licensed?",
			HelpText:   "Using copyrighted images, music, or content without permission will cause rejection.",
			Severity:   SeverityHigh,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},
		{
			ID:         "ip-trademark",
			CategoryID: "intellectual-property",
			Text:       "Have you verified your app name and branding don't infringe on existing trademarks?",
			HelpText:   "Apple rejects apps with names or icons too similar to established brands.",
			Severity:   SeverityHigh,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},

		// Design Quality (4.1/4.3)
		{
			ID:         "design-polished",
			CategoryID: "design-quality",
			Text:       "Does your app have a polished, professional user interface?",
			HelpText:   "Apple may reject apps that appear unfinished or have poor visual design.",
			Severity:   SeverityMedium,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},
		{
			ID:         "design-hig",
			CategoryID: "design-quality",
			Text:       "Does your app follow Apple's Human Interface Guidelines?",
			HelpText:   "Apps should use standard UI patterns and navigation that iOS users expect.",
			Severity:   SeverityMedium,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},
		{
			ID:         "design-screen-sizes",
			CategoryID: "design-quality",
			Text:       "Does your app support all screen sizes for its target devices?",
			HelpText:   "If you target iPad, the app must work properly on all iPad sizes.",
			Severity:   SeverityMedium,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},

		// Software Requirements (2.5)
		{
			ID:         "sw-private-apis",
			CategoryID: "software-requirements",
			Text:       "Have you verified your app doesn't use any private Apple APIs?",
			HelpText:   "Using undocumented APIs will cause automatic rejection.",
			Severity:   SeverityCritical,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},
		{
			ID:         "sw-ipv6",
			CategoryID: "software-requirements",
			Text:       "Have you tested your app on an IPv6-only network?",
			HelpText:   "Apps must work on IPv6 networks. Apple's review network is IPv6.",
			Severity:   SeverityMedium,
			Type:       QuestionBoolean,
			SafeAnswer: "yes",
		},
	}
}
