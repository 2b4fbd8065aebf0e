package review

// defaultGuidelines cites the review guideline sections issues link to.
func defaultGuidelines() map[string]GuidelineReference {
	return map[string]GuidelineReference{
		"1.2": {
			Section: "1.2",
			Title:   "User Generated Content",
			URL:     "https://developer.apple.com/app-store/review/guidelines/#safety",
		},
		"2.1": {
			Section: "2.1",
			Title:   "App Completeness",
			URL:     "https://developer.apple.com/app-store/review/guidelines/#performance",
		},
		"2.3": {
			Section: "2.3",
			Title:   "Accurate Metadata",
			URL:     "https://developer.apple.com/app-store/review/guidelines/#performance",
		},
		"2.5": {
			Section: "2.5",
			Title:   "Software Requirements",
			URL:     "https://developer.apple.com/app-store/review/guidelines/#performance",
		},
		"3.1": {
			Section: "3.1",
			Title:   "In-App Purchase",
			URL:     "https://developer.apple.com/app-store/review/guidelines/#business",
		},
		"4.1": {
			Section: "4.1",
			Title:   "Copycats",
			URL:     "https://developer.apple.com/app-store/review/guidelines/#design",
		},
		"4.2": {
			Section: "4.2",
			Title:   "Minimum Functionality",
			URL:     "https://developer.apple.com/app-store/review/guidelines/#design",
		},
		"4.3": {
			Section: "4.3",
			Title:   "Spam",
			URL:     "https://developer.apple.com/app-store/review/guidelines/#design",
		},
		"5.1.1": {
			Section: "5.1.1",
			Title:   "Data Collection and Storage",
			URL:     "https://developer.apple.com/app-store/review/guidelines/#legal",
		},
		"5.1.2": {
			Section: "5.1.2",
			Title:   "Data Use and Sharing",
			URL:     "https://developer.apple.com/app-store/review/guidelines/#legal",
		},
		"5.1.1-5.1.2": {
			Section: "5.1.1-5.1.2",
			Title:   "Privacy Manifest Files",
			URL:     "https://developer.apple.com/documentation/bundleresources/privacy_manifest_files",
		},
		"5.2": {
			Section: "5.2",
			Title:   "Intellectual Property",
			URL:     "https://developer.apple.com/app-store/review/guidelines/#legal",
		},
	}
}

// defaultScreenshotDimensions lists the accepted screenshot sizes per device
// family, portrait and landscape.
func defaultScreenshotDimensions() map[string][]Dimension {
	return map[string][]Dimension{
		`iPhone 6.7"`: {
			{Width: 1290, Height: 2796},
			{Width: 2796, Height: 1290},
		},
		`iPhone 6.5"`: {
			{Width: 1242, Height: 2688},
			{Width: 2688, Height: 1242},
			{Width: 1284, Height: 2778},
			{Width: 2778, Height: 1284},
		},
		`iPhone 5.5"`: {
			{Width: 1242, Height: 2208},
			{Width: 2208, Height: 1242},
		},
		`iPad Pro 12.9"`: {
			{Width: 2048, Height: 2732},
			{Width: 2732, Height: 2048},
		},
		`iPad Pro 11"`: {
			{Width: 1668, Height: 2388},
			{Width: 2388, Height: 1668},
		},
	}
}

// defaultAppCategories enumerates the valid App Store categories.
func defaultAppCategories() []string {
	return []string{
		"Books",
		"Business",
		"Developer Tools",
		"Education",
		"Entertainment",
		"Finance",
		"Food & Drink",
		"Games",
		"Graphics & Design",
		"Health & Fitness",
		"Lifestyle",
		"Magazines & Newspapers",
		"Medical",
		"Music",
		"Navigation",
		"News",
		"Photo & Video",
		"Productivity",
		"Reference",
		"Shopping",
		"Social Networking",
		"Sports",
		"Travel",
		"Utilities",
		"Weather",
	}
}

// DefaultRubric builds the built-in review rubric. Callers must treat the
// returned value as read-only.
func DefaultRubric() *Rubric {
	return &Rubric{
		Categories:           defaultCategories(),
		Questions:            defaultQuestions(),
		TriggerQuestions:     []string{"iap-sells-digital", "ugc-has-content"},
		Guidelines:           defaultGuidelines(),
		ScreenshotDimensions: defaultScreenshotDimensions(),
		AppCategories:        defaultAppCategories(),
		AgeRatings:           []string{"4+", "9+", "12+", "17+"},
	}
}
