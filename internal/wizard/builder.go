package wizard

import (
	"peoplehub/internal/domain/employee"
	"peoplehub/internal/validation"
)

// SectionIssues names a failing section in the final aggregate check.
type SectionIssues struct {
	Section string             `json:"section"`
	Issues  []validation.Issue `json:"issues"`
}

// Build re-runs the combined schema over the whole aggregate and returns
// an immutable create-employee command, or the failing sections. It
// never attempts a partial command.
func (a Aggregate) Build() (employee.CreateCommand, []SectionIssues) {
	var failures []SectionIssues
	var cmd employee.CreateCommand

	if a.BasicDetails == nil {
		failures = append(failures, missing(SectionBasicDetails))
	} else {
		cmd.Basic = *a.BasicDetails
		if issues := cmd.Basic.Validate(); len(issues) > 0 {
			failures = append(failures, SectionIssues{Section: SectionBasicDetails.String(), Issues: issues})
		}
	}

	cmd.Addresses = append([]validation.Address(nil), a.AddressDetails...)
	for i := range cmd.Addresses {
		if issues := cmd.Addresses[i].Validate(); len(issues) > 0 {
			failures = append(failures, SectionIssues{Section: SectionAddressDetails.String(), Issues: issues})
		}
	}

	cmd.Education = append([]validation.Education(nil), a.EducationalDetails...)
	for i := range cmd.Education {
		if issues := cmd.Education[i].Validate(); len(issues) > 0 {
			failures = append(failures, SectionIssues{Section: SectionEducationalDetails.String(), Issues: issues})
		}
	}

	cmd.Family = append([]validation.FamilyMember(nil), a.FamilyDetails...)
	for i := range cmd.Family {
		if issues := cmd.Family[i].Validate(); len(issues) > 0 {
			failures = append(failures, SectionIssues{Section: SectionFamilyDetails.String(), Issues: issues})
		}
	}

	if len(a.EmergencyContactDetails) == 0 {
		failures = append(failures, missing(SectionEmergencyContactDetails))
	}
	cmd.EmergencyContacts = append([]validation.EmergencyContact(nil), a.EmergencyContactDetails...)
	for i := range cmd.EmergencyContacts {
		if issues := cmd.EmergencyContacts[i].Validate(); len(issues) > 0 {
			failures = append(failures, SectionIssues{Section: SectionEmergencyContactDetails.String(), Issues: issues})
		}
	}

	if a.ProfessionalBasics == nil {
		failures = append(failures, missing(SectionProfessionalBasics))
	} else {
		cmd.Professional = *a.ProfessionalBasics
		if issues := cmd.Professional.Validate(); len(issues) > 0 {
			failures = append(failures, SectionIssues{Section: SectionProfessionalBasics.String(), Issues: issues})
		}
	}

	cmd.Experiences = append([]validation.Experience(nil), a.ExperienceDetails...)
	for i := range cmd.Experiences {
		if issues := cmd.Experiences[i].Validate(); len(issues) > 0 {
			failures = append(failures, SectionIssues{Section: SectionExperienceDetails.String(), Issues: issues})
		}
	}

	cmd.Documents = append([]validation.Document(nil), a.DocumentURLs...)
	for i := range cmd.Documents {
		if issues := cmd.Documents[i].Validate(); len(issues) > 0 {
			failures = append(failures, SectionIssues{Section: SectionDocuments.String(), Issues: issues})
		}
	}

	if len(failures) > 0 {
		return employee.CreateCommand{}, failures
	}
	return cmd, nil
}

func missing(section Section) SectionIssues {
	return SectionIssues{
		Section: section.String(),
		Issues:  []validation.Issue{{Field: "", Reason: "section is required"}},
	}
}
