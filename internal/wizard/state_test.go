package wizard

import "testing"

func TestAdvanceWalksEveryScreen(t *testing.T) {
	state := NewState()
	want := []Section{
		SectionBasicDetails,
		SectionEducationalDetails,
		SectionAddressDetails,
		SectionFamilyDetails,
		SectionEmergencyContactDetails,
		SectionProfessionalBasics,
		SectionExperienceDetails,
		SectionDocuments,
	}

	for i, section := range want {
		if got := state.CurrentSection(); got != section {
			t.Fatalf("screen %d: got %v want %v", i, got, section)
		}
		var event Event
		state, event = state.Advance()
		if i < len(want)-1 && event != EventNone {
			t.Fatalf("screen %d: unexpected event %v", i, event)
		}
		if i == len(want)-1 && event != EventSubmit {
			t.Fatalf("final screen: got event %v want submit", event)
		}
	}
}

func TestAdvanceFromLastScreenStaysPut(t *testing.T) {
	state := State{Step: StepDocuments, SubStep: 0}
	next, event := state.Advance()
	if event != EventSubmit {
		t.Fatalf("got event %v want submit", event)
	}
	if next.Step != StepDocuments || next.SubStep != 0 {
		t.Fatalf("submit must not move the wizard, got %+v", next)
	}
}

func TestRetreatIsInverseOfAdvance(t *testing.T) {
	state := NewState()
	var trail []State
	for i := 0; i < 7; i++ {
		trail = append(trail, state)
		state, _ = state.Advance()
	}

	for i := len(trail) - 1; i >= 0; i-- {
		var event Event
		state, event = state.Retreat()
		if event != EventNone {
			t.Fatalf("step %d: unexpected event %v", i, event)
		}
		if state.Step != trail[i].Step || state.SubStep != trail[i].SubStep {
			t.Fatalf("step %d: got %+v want %+v", i, state, trail[i])
		}
	}
}

func TestRetreatFromFirstScreenExits(t *testing.T) {
	state := NewState()
	next, event := state.Retreat()
	if event != EventExit {
		t.Fatalf("got event %v want exit", event)
	}
	if next.Step != StepPersonalDetails || next.SubStep != 0 {
		t.Fatalf("exit must not move the wizard, got %+v", next)
	}
}

func TestStepBoundaries(t *testing.T) {
	// Last personal screen advances into the first professional screen.
	state := State{Step: StepPersonalDetails, SubStep: 4}
	next, event := state.Advance()
	if event != EventNone || next.Step != StepProfessionalDetails || next.SubStep != 0 {
		t.Fatalf("got %+v event %v", next, event)
	}

	// And retreating from there lands back on the last personal screen.
	back, event := next.Retreat()
	if event != EventNone || back.Step != StepPersonalDetails || back.SubStep != 4 {
		t.Fatalf("got %+v event %v", back, event)
	}
}

func TestJumpToResetsSubStep(t *testing.T) {
	state := State{Step: StepPersonalDetails, SubStep: 3}
	jumped := state.JumpTo(StepDocuments)
	if jumped.Step != StepDocuments || jumped.SubStep != 0 {
		t.Fatalf("got %+v", jumped)
	}
}

func TestJumpPreservesAggregate(t *testing.T) {
	state := NewState()
	merged, issues, err := state.Aggregate.Merge(SectionEmergencyContactDetails, []byte(`{
		"contactName": "Ravi Verma",
		"contactAddress": "12 MG Road, Pune",
		"relationToEmployee": "Spouse",
		"contactNumber": "9876543210"
	}`))
	if err != nil || len(issues) > 0 {
		t.Fatalf("merge failed: %v %v", err, issues)
	}
	state.Aggregate = merged

	jumped := state.JumpTo(StepProfessionalDetails)
	if len(jumped.Aggregate.EmergencyContactDetails) != 1 {
		t.Fatal("jump must not drop merged sections")
	}
}

func TestParseSectionRoundTrip(t *testing.T) {
	for _, step := range []MainStep{StepPersonalDetails, StepProfessionalDetails, StepDocuments} {
		for _, section := range step.SubSteps() {
			parsed, err := ParseSection(section.String())
			if err != nil {
				t.Fatalf("ParseSection(%q): %v", section.String(), err)
			}
			if parsed != section {
				t.Fatalf("round trip mismatch: %v != %v", parsed, section)
			}
		}
		parsedStep, err := ParseMainStep(step.String())
		if err != nil || parsedStep != step {
			t.Fatalf("ParseMainStep(%q): %v %v", step.String(), parsedStep, err)
		}
	}

	if _, err := ParseSection("bogus"); err == nil {
		t.Fatal("expected error for unknown section")
	}
}
