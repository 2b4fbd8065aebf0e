package cli

import "testing"

func TestWizardFlow_HappyPath(t *testing.T) {
	flow, err := newWizardFlow()
	if err != nil {
		t.Fatalf("newWizardFlow: %v", err)
	}

	if got := flow.Current(); got != StepFiles {
		t.Fatalf("expected initial step %s, got %s", StepFiles, got)
	}

	steps := []string{StepMetadata, StepQuestionnaire, StepResults}
	for _, want := range steps {
		if !flow.Advance(EventNext) {
			t.Fatalf("expected to advance from %s", flow.Current())
		}
		if got := flow.Current(); got != want {
			t.Fatalf("expected step %s, got %s", want, got)
		}
	}
}

func TestWizardFlow_BackNavigation(t *testing.T) {
	flow, err := newWizardFlow()
	if err != nil {
		t.Fatalf("newWizardFlow: %v", err)
	}

	flow.Advance(EventNext)
	flow.Advance(EventNext)
	if got := flow.Current(); got != StepQuestionnaire {
		t.Fatalf("expected questionnaire step, got %s", got)
	}

	if !flow.Advance(EventBack) {
		t.Fatal("expected to step back to metadata")
	}
	if got := flow.Current(); got != StepMetadata {
		t.Errorf("expected metadata step, got %s", got)
	}
}

func TestWizardFlow_InvalidEventsStay(t *testing.T) {
	flow, err := newWizardFlow()
	if err != nil {
		t.Fatalf("newWizardFlow: %v", err)
	}

	// No back transition from the first step.
	if flow.Advance(EventBack) {
		t.Error("expected back from the first step to be a no-op")
	}

	flow.Advance(EventNext)
	flow.Advance(EventNext)
	flow.Advance(EventNext)
	if got := flow.Current(); got != StepResults {
		t.Fatalf("expected results step, got %s", got)
	}

	// Results is terminal.
	if flow.Advance(EventNext) || flow.Advance(EventBack) {
		t.Error("expected the results step to be terminal")
	}
}
