package review

import (
	"fmt"
	"math"
)

// QuestionType describes how a question is answered.
type QuestionType string

const (
	QuestionBoolean QuestionType = "boolean"
	QuestionSelect  QuestionType = "select"
	QuestionText    QuestionType = "text"
)

// Category is one weighted review dimension.
type Category struct {
	ID               string  `json:"id" yaml:"id"`
	Name             string  `json:"name" yaml:"name"`
	Description      string  `json:"description" yaml:"description"`
	ShortDescription string  `json:"shortDescription" yaml:"short_description"`
	GuidelineSection string  `json:"guidelineSection" yaml:"guideline_section"`
	GuidelineURL     string  `json:"guidelineUrl" yaml:"guideline_url"`
	Weight           float64 `json:"weight" yaml:"weight"`
	Icon             string  `json:"icon" yaml:"icon"`
}

// Question is one item in the questionnaire bank.
type Question struct {
	ID         string       `json:"id" yaml:"id"`
	CategoryID string       `json:"categoryId" yaml:"category_id"`
	Text       string       `json:"text" yaml:"text"`
	HelpText   string       `json:"helpText,omitempty" yaml:"help_text,omitempty"`
	Severity   Severity     `json:"severity" yaml:"severity"`
	Type       QuestionType `json:"type" yaml:"type"`
	Options    []string     `json:"options,omitempty" yaml:"options,omitempty"`
	// ConditionalOn names another question whose answer gates this one.
	ConditionalOn string `json:"conditionalOn,omitempty" yaml:"conditional_on,omitempty"`
	// SafeAnswer is the answer value that earns full score.
	SafeAnswer string `json:"safeAnswer" yaml:"safe_answer"`
}

// GuidelineReference cites a section of the review guidelines.
type GuidelineReference struct {
	Section string `json:"section" yaml:"section"`
	Title   string `json:"title" yaml:"title"`
	URL     string `json:"url" yaml:"url"`
}

// Dimension is an accepted screenshot width/height pair.
type Dimension struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Rubric is the full reference data set an analysis runs against. It is
// constructed once (built-in default or loaded from yaml) and treated as
// read-only afterwards, so it is safe to share across concurrent runs.
type Rubric struct {
	Categories []Category `json:"categories" yaml:"categories"`
	Questions  []Question `json:"questions" yaml:"questions"`

	// TriggerQuestions are gating questions whose "no" answer suppresses
	// every question conditioned on them.
	TriggerQuestions []string `json:"triggerQuestions" yaml:"trigger_questions"`

	Guidelines map[string]GuidelineReference `json:"guidelines" yaml:"guidelines"`

	// ScreenshotDimensions maps a device family label to its accepted sizes.
	ScreenshotDimensions map[string][]Dimension `json:"screenshotDimensions" yaml:"screenshot_dimensions"`

	AppCategories []string `json:"appCategories" yaml:"app_categories"`
	AgeRatings    []string `json:"ageRatings" yaml:"age_ratings"`
}

// CategoryByID returns the category with the given id, or nil.
func (r *Rubric) CategoryByID(id string) *Category {
	for i := range r.Categories {
		if r.Categories[i].ID == id {
			return &r.Categories[i]
		}
	}
	return nil
}

// QuestionByID returns the question with the given id, or nil.
func (r *Rubric) QuestionByID(id string) *Question {
	for i := range r.Questions {
		if r.Questions[i].ID == id {
			return &r.Questions[i]
		}
	}
	return nil
}

// QuestionsForCategory returns the bank questions owned by a category, in
// declaration order.
func (r *Rubric) QuestionsForCategory(categoryID string) []Question {
	var out []Question
	for _, q := range r.Questions {
		if q.CategoryID == categoryID {
			out = append(out, q)
		}
	}
	return out
}

// IsTrigger reports whether the question id is a gating trigger question.
func (r *Rubric) IsTrigger(questionID string) bool {
	for _, id := range r.TriggerQuestions {
		if id == questionID {
			return true
		}
	}
	return false
}

// Applicable reports whether a question is visible given the current answers.
// A question without a condition is always applicable. A question conditioned
// on a trigger question is suppressed when the trigger is answered "no";
// otherwise a conditional question is applicable whenever its parent has a
// non-empty answer.
func (r *Rubric) Applicable(q Question, answers map[string]string) bool {
	if q.ConditionalOn == "" {
		return true
	}
	if r.QuestionByID(q.ConditionalOn) == nil {
		return true
	}
	parentAnswer := answers[q.ConditionalOn]
	if r.IsTrigger(q.ConditionalOn) && parentAnswer == "no" {
		return false
	}
	return parentAnswer != ""
}

// TotalWeight sums the weights of every category in the rubric.
func (r *Rubric) TotalWeight() float64 {
	total := 0.0
	for _, c := range r.Categories {
		total += c.Weight
	}
	return total
}

// ValidDimensionSet flattens the per-device dimension table into a set keyed
// by "WxH".
func (r *Rubric) ValidDimensionSet() map[string]bool {
	set := make(map[string]bool)
	for _, dims := range r.ScreenshotDimensions {
		for _, d := range dims {
			set[fmt.Sprintf("%dx%d", d.Width, d.Height)] = true
		}
	}
	return set
}

// Guideline returns the cited guideline reference, falling back to a bare
// section citation when the rubric does not carry the section.
func (r *Rubric) Guideline(section string) GuidelineReference {
	if g, ok := r.Guidelines[section]; ok {
		return g
	}
	return GuidelineReference{Section: section}
}

// Validate checks the rubric for structural integrity.
func (r *Rubric) Validate() []error {
	var errs []error

	if len(r.Categories) == 0 {
		errs = append(errs, fmt.Errorf("rubric must define at least one category"))
	}

	seen := make(map[string]bool)
	for i, c := range r.Categories {
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("category at index %d missing ID", i))
		}
		if seen[c.ID] {
			errs = append(errs, fmt.Errorf("duplicate category ID: %s", c.ID))
		}
		seen[c.ID] = true
		if c.Weight <= 0 {
			errs = append(errs, fmt.Errorf("category '%s' must have a positive weight", c.ID))
		}
	}

	if total := r.TotalWeight(); math.Abs(total-1.0) > 0.001 {
		errs = append(errs, fmt.Errorf("category weights must sum to 1.0, got %.3f", total))
	}

	seenQ := make(map[string]bool)
	for i, q := range r.Questions {
		if q.ID == "" {
			errs = append(errs, fmt.Errorf("question at index %d missing ID", i))
			continue
		}
		if seenQ[q.ID] {
			errs = append(errs, fmt.Errorf("duplicate question ID: %s", q.ID))
		}
		seenQ[q.ID] = true
		if r.CategoryByID(q.CategoryID) == nil {
			errs = append(errs, fmt.Errorf("question '%s' references unknown category '%s'", q.ID, q.CategoryID))
		}
		if q.ConditionalOn != "" && r.QuestionByID(q.ConditionalOn) == nil {
			errs = append(errs, fmt.Errorf("question '%s' is conditional on unknown question '%s'", q.ID, q.ConditionalOn))
		}
		if q.SafeAnswer == "" {
			errs = append(errs, fmt.Errorf("question '%s' missing safe answer", q.ID))
		}
	}

	for _, id := range r.TriggerQuestions {
		if r.QuestionByID(id) == nil {
			errs = append(errs, fmt.Errorf("trigger question '%s' not found in question bank", id))
		}
	}

	return errs
}
