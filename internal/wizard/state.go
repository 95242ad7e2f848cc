// Package wizard models the add-employee multi-step form: a three-step
// wizard with ordered sub-steps, a partial aggregate of section
// payloads, and pure transition functions over both.
package wizard

import "fmt"

// MainStep is a top-level wizard step.
type MainStep int

const (
	StepPersonalDetails MainStep = iota
	StepProfessionalDetails
	StepDocuments
)

func (s MainStep) String() string {
	switch s {
	case StepPersonalDetails:
		return "PersonalDetails"
	case StepProfessionalDetails:
		return "ProfessionalDetails"
	case StepDocuments:
		return "Documents"
	}
	return "Unknown"
}

func (s MainStep) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *MainStep) UnmarshalText(text []byte) error {
	parsed, err := ParseMainStep(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func ParseMainStep(value string) (MainStep, error) {
	switch value {
	case "PersonalDetails":
		return StepPersonalDetails, nil
	case "ProfessionalDetails":
		return StepProfessionalDetails, nil
	case "Documents":
		return StepDocuments, nil
	}
	return 0, fmt.Errorf("unknown step %q", value)
}

// Section identifies one form screen's payload.
type Section int

const (
	SectionBasicDetails Section = iota
	SectionEducationalDetails
	SectionAddressDetails
	SectionFamilyDetails
	SectionEmergencyContactDetails
	SectionProfessionalBasics
	SectionExperienceDetails
	SectionDocuments
)

func (s Section) String() string {
	switch s {
	case SectionBasicDetails:
		return "basicDetails"
	case SectionEducationalDetails:
		return "educationalDetails"
	case SectionAddressDetails:
		return "addressDetails"
	case SectionFamilyDetails:
		return "familyDetails"
	case SectionEmergencyContactDetails:
		return "emergencyContactDetails"
	case SectionProfessionalBasics:
		return "professionalBasicDetails"
	case SectionExperienceDetails:
		return "experienceDetails"
	case SectionDocuments:
		return "documentUrls"
	}
	return "unknown"
}

func (s Section) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Section) UnmarshalText(text []byte) error {
	parsed, err := ParseSection(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func ParseSection(value string) (Section, error) {
	for _, section := range []Section{
		SectionBasicDetails, SectionEducationalDetails, SectionAddressDetails,
		SectionFamilyDetails, SectionEmergencyContactDetails,
		SectionProfessionalBasics, SectionExperienceDetails, SectionDocuments,
	} {
		if section.String() == value {
			return section, nil
		}
	}
	return 0, fmt.Errorf("unknown section %q", value)
}

// SubSteps returns the ordered screens of a main step.
func (s MainStep) SubSteps() []Section {
	switch s {
	case StepPersonalDetails:
		return []Section{
			SectionBasicDetails,
			SectionEducationalDetails,
			SectionAddressDetails,
			SectionFamilyDetails,
			SectionEmergencyContactDetails,
		}
	case StepProfessionalDetails:
		return []Section{
			SectionProfessionalBasics,
			SectionExperienceDetails,
		}
	case StepDocuments:
		return []Section{SectionDocuments}
	}
	return nil
}

// Event is the side signal of a transition.
type Event int

const (
	// EventNone: the wizard simply moved.
	EventNone Event = iota
	// EventSubmit: advancing past the last screen; the caller should
	// build and persist the aggregate.
	EventSubmit
	// EventExit: retreating from the very first screen leaves the wizard.
	EventExit
)

// State is the in-memory wizard position plus the partial aggregate.
// Transitions return a new value; State is never mutated in place.
type State struct {
	Step      MainStep  `json:"step"`
	SubStep   int       `json:"subStep"`
	Aggregate Aggregate `json:"aggregate"`
}

func NewState() State {
	return State{Step: StepPersonalDetails, SubStep: 0}
}

// CurrentSection is the screen the wizard points at.
func (s State) CurrentSection() Section {
	return s.Step.SubSteps()[s.SubStep]
}

// Advance moves to the next sub-step, or to the next main step's first
// sub-step, or signals submission from the final screen.
func (s State) Advance() (State, Event) {
	if s.SubStep < len(s.Step.SubSteps())-1 {
		s.SubStep++
		return s, EventNone
	}
	switch s.Step {
	case StepPersonalDetails:
		s.Step = StepProfessionalDetails
	case StepProfessionalDetails:
		s.Step = StepDocuments
	case StepDocuments:
		return s, EventSubmit
	}
	s.SubStep = 0
	return s, EventNone
}

// Retreat mirrors Advance; from the very first screen it signals exit.
func (s State) Retreat() (State, Event) {
	if s.SubStep > 0 {
		s.SubStep--
		return s, EventNone
	}
	switch s.Step {
	case StepPersonalDetails:
		return s, EventExit
	case StepProfessionalDetails:
		s.Step = StepPersonalDetails
	case StepDocuments:
		s.Step = StepProfessionalDetails
	}
	s.SubStep = len(s.Step.SubSteps()) - 1
	return s, EventNone
}

// JumpTo navigates directly to a main step, resetting its sub-step.
// Navigation is deliberately ungated; the final submit re-validates the
// whole aggregate.
func (s State) JumpTo(step MainStep) State {
	s.Step = step
	s.SubStep = 0
	return s
}
