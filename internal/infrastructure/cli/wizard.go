package cli

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Step constants for statekit integration.
// These must remain as untyped string constants for statekit.StateID compatibility.
const (
	StepFiles         = "files"
	StepMetadata      = "metadata"
	StepQuestionnaire = "questionnaire"
	StepResults       = "results"
)

// Wizard events.
const (
	EventNext = "next"
	EventBack = "back"
)

type wizardContext struct{}

// wizardFlow defines the valid step transitions of the check wizard.
type wizardFlow struct {
	interpreter *statekit.Interpreter[wizardContext]
}

func newWizardFlow() (*wizardFlow, error) {
	builder := statekit.NewMachine[wizardContext]("check-wizard").
		WithInitial(statekit.StateID(StepFiles)).
		WithContext(wizardContext{})

	builder.State(StepFiles).
		On(EventNext).Target(StepMetadata).
		Done()

	builder.State(StepMetadata).
		On(EventNext).Target(StepQuestionnaire).
		On(EventBack).Target(StepFiles).
		Done()

	builder.State(StepQuestionnaire).
		On(EventNext).Target(StepResults).
		On(EventBack).Target(StepMetadata).
		Done()

	// Results is terminal; the wizard quits from here.
	builder.State(StepResults).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build wizard flow: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &wizardFlow{interpreter: interpreter}, nil
}

// Advance attempts to move the wizard with the given event and reports
// whether the step changed.
func (f *wizardFlow) Advance(event string) bool {
	before := f.Current()
	f.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	return f.Current() != before
}

func (f *wizardFlow) Current() string {
	return string(f.interpreter.State().Value)
}
