package employee

import (
	"time"

	"peoplehub/internal/validation"
)

// CreateCommand is the fully validated onboarding aggregate, ready for
// one transactional write. Build it through the wizard; the store
// trusts its contents apart from referential checks.
type CreateCommand struct {
	Basic             validation.BasicDetails
	Addresses         []validation.Address
	Education         []validation.Education
	Family            []validation.FamilyMember
	EmergencyContacts []validation.EmergencyContact
	Professional      validation.ProfessionalBasics
	Experiences       []validation.Experience
	Documents         []validation.Document
}

// Account is the identity half of a created employee.
type Account struct {
	ID           string   `json:"id"`
	FirstName    string   `json:"firstName"`
	MiddleName   string   `json:"middleName,omitempty"`
	LastName     string   `json:"lastName"`
	MobileNo     string   `json:"mobileNo"`
	Email        string   `json:"email"`
	ProfileURL   string   `json:"profileUrl"`
	IsActive     bool     `json:"isActive"`
	ShowActivity bool     `json:"showActivity"`
	EmployeeID   string   `json:"employeeId,omitempty"`
	Roles        []string `json:"roles"`
}

type PersonalDetail struct {
	DateOfBirth   time.Time `json:"dateOfBirth"`
	Age           int       `json:"age"`
	Gender        string    `json:"gender"`
	MaritalStatus string    `json:"maritalStatus"`
	BloodGroup    string    `json:"bloodGroup"`
	BirthCountry  string    `json:"birthCountry"`
	BirthState    string    `json:"birthState"`
	BirthLocation string    `json:"birthLocation"`
	PanNo         string    `json:"panNo"`
	Caste         string    `json:"caste"`
	Religion      string    `json:"religion"`
	Domicile      string    `json:"domicile"`
}

type Address struct {
	ID              string `json:"id"`
	AddressType     string `json:"addressType"`
	BuildingName    string `json:"buildingName"`
	FlatNumber      string `json:"flatNumber"`
	StreetName      string `json:"streetName"`
	Landmark        string `json:"landmark"`
	City            string `json:"city"`
	State           string `json:"state"`
	Pincode         string `json:"pincode"`
	TelephoneNumber string `json:"telephoneNumber,omitempty"`
	MobileNumber    string `json:"mobileNumber"`
}

type Education struct {
	ID                      string    `json:"id"`
	Course                  string    `json:"course"`
	DegreeSpecialization    string    `json:"degreeSpecialization"`
	InstituteUniversityName string    `json:"instituteUniversityName"`
	FromDate                time.Time `json:"fromDate"`
	ToDate                  time.Time `json:"toDate"`
	Status                  string    `json:"status"`
	StudyMode               string    `json:"studyMode"`
	Percentage              float64   `json:"percentage"`
}

type FamilyMember struct {
	ID             string    `json:"id"`
	RelationType   string    `json:"relationType"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	DateOfBirth    time.Time `json:"dateOfBirth"`
	CurrentAddress string    `json:"currentAddress"`
	BirthCountry   string    `json:"birthCountry"`
	BirthState     string    `json:"birthState"`
	BirthLocation  string    `json:"birthLocation"`
	Occupation     string    `json:"occupation"`
	MobileNumber   string    `json:"mobileNumber"`
}

type EmergencyContact struct {
	ID                 string `json:"id"`
	ContactName        string `json:"contactName"`
	ContactAddress     string `json:"contactAddress"`
	RelationToEmployee string `json:"relationToEmployee"`
	ContactNumber      string `json:"contactNumber"`
}

type Experience struct {
	ID              string    `json:"id"`
	EmployerName    string    `json:"empName"`
	EmployerID      string    `json:"empId"`
	JobTitle        string    `json:"jobTitle"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Country         string    `json:"country"`
	State           string    `json:"state"`
	City            string    `json:"city"`
	EmploymentType  string    `json:"employmentType"`
	SupervisorName  string    `json:"supervisorName,omitempty"`
	SupervisorMobNo string    `json:"supervisorMobNo,omitempty"`
}

type Attachment struct {
	ID             string     `json:"id"`
	DocumentType   string     `json:"documentType"`
	DocumentURL    string     `json:"documentUrl"`
	Submitted      bool       `json:"submitted"`
	SubmissionDate *time.Time `json:"submissionDate,omitempty"`
}

// Record is one employee with every child collection, as returned by
// Store.Get.
type Record struct {
	ID                string             `json:"id"`
	Designation       string             `json:"designation"`
	DateOfJoin        time.Time          `json:"dateOfJoin"`
	EmploymentType    string             `json:"employmentType"`
	WorkingType       string             `json:"workingType"`
	SignatureURL      string             `json:"signatureUrl"`
	CreatedAt         time.Time          `json:"createdAt"`
	Account           Account            `json:"account"`
	PersonalDetail    PersonalDetail     `json:"personalDetails"`
	Addresses         []Address          `json:"addressDetails"`
	Education         []Education        `json:"educationalDetails"`
	Family            []FamilyMember     `json:"familyDetails"`
	EmergencyContacts []EmergencyContact `json:"emergencyContactDetails"`
	Experiences       []Experience       `json:"experienceDetails"`
	Attachments       []Attachment       `json:"attachments"`
}

// Summary is the employee-list row.
type Summary struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Designation    string    `json:"designation"`
	EmploymentType string    `json:"employmentType"`
	WorkingType    string    `json:"workingType"`
	DateOfJoin     time.Time `json:"dateOfJoin"`
}
