package wizard

import (
	"encoding/json"
	"errors"
	"fmt"

	"peoplehub/internal/validation"
)

// ErrNotRepeatable rejects positional removal on single-valued sections.
var ErrNotRepeatable = errors.New("section does not hold a list")

// Aggregate accumulates validated section payloads across the wizard.
// Scalar sections are replaced on merge; list sections append.
type Aggregate struct {
	BasicDetails            *validation.BasicDetails       `json:"basicDetails,omitempty"`
	EducationalDetails      []validation.Education         `json:"educationalDetails,omitempty"`
	AddressDetails          []validation.Address           `json:"addressDetails,omitempty"`
	FamilyDetails           []validation.FamilyMember      `json:"familyDetails,omitempty"`
	EmergencyContactDetails []validation.EmergencyContact  `json:"emergencyContactDetails,omitempty"`
	ProfessionalBasics      *validation.ProfessionalBasics `json:"professionalBasicDetails,omitempty"`
	ExperienceDetails       []validation.Experience        `json:"experienceDetails,omitempty"`
	DocumentURLs            []validation.Document          `json:"documentUrls,omitempty"`
}

// Merge validates one raw section payload and folds it into the
// aggregate. Validation issues leave the aggregate untouched.
func (a Aggregate) Merge(section Section, raw json.RawMessage) (Aggregate, []validation.Issue, error) {
	switch section {
	case SectionBasicDetails:
		var payload validation.BasicDetails
		if err := json.Unmarshal(raw, &payload); err != nil {
			return a, nil, fmt.Errorf("decode %s: %w", section, err)
		}
		if issues := payload.Validate(); len(issues) > 0 {
			return a, issues, nil
		}
		a.BasicDetails = &payload
	case SectionEducationalDetails:
		var payload validation.Education
		if err := json.Unmarshal(raw, &payload); err != nil {
			return a, nil, fmt.Errorf("decode %s: %w", section, err)
		}
		if issues := payload.Validate(); len(issues) > 0 {
			return a, issues, nil
		}
		a.EducationalDetails = append(a.EducationalDetails[:len(a.EducationalDetails):len(a.EducationalDetails)], payload)
	case SectionAddressDetails:
		var payload validation.Address
		if err := json.Unmarshal(raw, &payload); err != nil {
			return a, nil, fmt.Errorf("decode %s: %w", section, err)
		}
		if issues := payload.Validate(); len(issues) > 0 {
			return a, issues, nil
		}
		a.AddressDetails = append(a.AddressDetails[:len(a.AddressDetails):len(a.AddressDetails)], payload)
	case SectionFamilyDetails:
		var payload validation.FamilyMember
		if err := json.Unmarshal(raw, &payload); err != nil {
			return a, nil, fmt.Errorf("decode %s: %w", section, err)
		}
		if issues := payload.Validate(); len(issues) > 0 {
			return a, issues, nil
		}
		a.FamilyDetails = append(a.FamilyDetails[:len(a.FamilyDetails):len(a.FamilyDetails)], payload)
	case SectionEmergencyContactDetails:
		var payload validation.EmergencyContact
		if err := json.Unmarshal(raw, &payload); err != nil {
			return a, nil, fmt.Errorf("decode %s: %w", section, err)
		}
		if issues := payload.Validate(); len(issues) > 0 {
			return a, issues, nil
		}
		a.EmergencyContactDetails = append(a.EmergencyContactDetails[:len(a.EmergencyContactDetails):len(a.EmergencyContactDetails)], payload)
	case SectionProfessionalBasics:
		var payload validation.ProfessionalBasics
		if err := json.Unmarshal(raw, &payload); err != nil {
			return a, nil, fmt.Errorf("decode %s: %w", section, err)
		}
		if issues := payload.Validate(); len(issues) > 0 {
			return a, issues, nil
		}
		a.ProfessionalBasics = &payload
	case SectionExperienceDetails:
		var payload validation.Experience
		if err := json.Unmarshal(raw, &payload); err != nil {
			return a, nil, fmt.Errorf("decode %s: %w", section, err)
		}
		if issues := payload.Validate(); len(issues) > 0 {
			return a, issues, nil
		}
		a.ExperienceDetails = append(a.ExperienceDetails[:len(a.ExperienceDetails):len(a.ExperienceDetails)], payload)
	case SectionDocuments:
		var payload validation.Document
		if err := json.Unmarshal(raw, &payload); err != nil {
			return a, nil, fmt.Errorf("decode %s: %w", section, err)
		}
		if issues := payload.Validate(); len(issues) > 0 {
			return a, issues, nil
		}
		a.DocumentURLs = append(a.DocumentURLs[:len(a.DocumentURLs):len(a.DocumentURLs)], payload)
	default:
		return a, nil, fmt.Errorf("unknown section %d", section)
	}
	return a, nil, nil
}

// RemoveAt deletes one entry of a list section by position.
func (a Aggregate) RemoveAt(section Section, index int) (Aggregate, error) {
	switch section {
	case SectionEducationalDetails:
		list, err := removeIndex(a.EducationalDetails, index)
		if err != nil {
			return a, err
		}
		a.EducationalDetails = list
	case SectionAddressDetails:
		list, err := removeIndex(a.AddressDetails, index)
		if err != nil {
			return a, err
		}
		a.AddressDetails = list
	case SectionFamilyDetails:
		list, err := removeIndex(a.FamilyDetails, index)
		if err != nil {
			return a, err
		}
		a.FamilyDetails = list
	case SectionEmergencyContactDetails:
		list, err := removeIndex(a.EmergencyContactDetails, index)
		if err != nil {
			return a, err
		}
		a.EmergencyContactDetails = list
	case SectionExperienceDetails:
		list, err := removeIndex(a.ExperienceDetails, index)
		if err != nil {
			return a, err
		}
		a.ExperienceDetails = list
	case SectionDocuments:
		list, err := removeIndex(a.DocumentURLs, index)
		if err != nil {
			return a, err
		}
		a.DocumentURLs = list
	default:
		return a, ErrNotRepeatable
	}
	return a, nil
}

func removeIndex[T any](list []T, index int) ([]T, error) {
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("index %d out of range (%d entries)", index, len(list))
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...), nil
}
