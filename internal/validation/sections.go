package validation

import "time"

const minEmployeeAge = 18

// RoleRef assigns one role to the account being created.
type RoleRef struct {
	RoleID string `json:"roleId" validate:"required,uuid"`
}

// BasicDetails is the first personal-details screen: the account fields
// plus birth and demographic data.
type BasicDetails struct {
	FirstName     string    `json:"firstName" validate:"required"`
	MiddleName    string    `json:"middleName"`
	LastName      string    `json:"lastName" validate:"required"`
	MobileNo      string    `json:"mobileNo" validate:"required,len=10,numeric"`
	EmailID       string    `json:"emailId" validate:"required,email"`
	Password      string    `json:"password" validate:"required,min=8"`
	ProfileURL    string    `json:"profileUrl" validate:"required,url"`
	Roles         []RoleRef `json:"roles" validate:"required,min=1,dive"`
	IsActive      *bool     `json:"isActive"`
	ShowActivity  *bool     `json:"showActivity"`
	DateOfBirth   string    `json:"dateOfBirth" validate:"required"`
	Age           int       `json:"age" validate:"required,gte=18"`
	Gender        string    `json:"gender" validate:"required,oneof=Male Female Other"`
	MaritalStatus string    `json:"maritalStatus" validate:"required,oneof=Single Married Divorced Widowed"`
	BloodGroup    string    `json:"bloodGroup" validate:"required,oneof=APlus AMinus BPlus BMinus ABPlus ABMinus OPlus OMinus"`
	BirthCountry  string    `json:"birthCountry" validate:"required"`
	BirthState    string    `json:"birthState" validate:"required"`
	BirthLocation string    `json:"birthLocation" validate:"required"`
	PanNo         string    `json:"panNo" validate:"required,len=10"`
	Caste         string    `json:"caste" validate:"required"`
	Religion      string    `json:"religion" validate:"required"`
	Domicile      string    `json:"domicile" validate:"required"`

	BirthDate time.Time `json:"-"`
}

func (b *BasicDetails) Validate() []Issue {
	issues := check(b)
	issues = parseDateField(issues, "dateOfBirth", b.DateOfBirth, true, &b.BirthDate)
	if !b.BirthDate.IsZero() && yearsSince(b.BirthDate, time.Now()) < minEmployeeAge {
		issues = append(issues, Issue{Field: "dateOfBirth", Reason: "must be at least 18 years old"})
	}
	return issues
}

// Active defaults to true when the flag is omitted.
func (b BasicDetails) Active() bool {
	if b.IsActive == nil {
		return true
	}
	return *b.IsActive
}

func (b BasicDetails) ActivityVisible() bool {
	if b.ShowActivity == nil {
		return true
	}
	return *b.ShowActivity
}

type Address struct {
	AddressType     string `json:"addressType" validate:"required,oneof=Present Permanent"`
	BuildingName    string `json:"buildingName" validate:"required"`
	FlatNumber      string `json:"flatNumber" validate:"required"`
	StreetName      string `json:"streetName" validate:"required"`
	Landmark        string `json:"landmark" validate:"required"`
	City            string `json:"city" validate:"required"`
	State           string `json:"state" validate:"required"`
	Pincode         string `json:"pincode" validate:"required,len=6,numeric"`
	TelephoneNumber string `json:"telephoneNumber"`
	MobileNumber    string `json:"mobileNumber" validate:"required,len=10,numeric"`
}

func (a *Address) Validate() []Issue {
	return check(a)
}

type Education struct {
	Course                  string  `json:"course" validate:"required,oneof=Std10th Std12th Graduation PostGraduation Others"`
	DegreeSpecialization    string  `json:"degreeSpecialization" validate:"required"`
	InstituteUniversityName string  `json:"instituteUniversityName" validate:"required"`
	FromDate                string  `json:"fromDate" validate:"required"`
	ToDate                  string  `json:"toDate" validate:"required"`
	Status                  string  `json:"status" validate:"required,oneof=Completed InProcess Dropped"`
	StudyMode               string  `json:"studyMode" validate:"required,oneof=FullTime Correspondence PartTime"`
	Percentage              float64 `json:"percentage" validate:"gte=0,lte=100"`

	From time.Time `json:"-"`
	To   time.Time `json:"-"`
}

func (e *Education) Validate() []Issue {
	issues := check(e)
	issues = parseDateField(issues, "fromDate", e.FromDate, true, &e.From)
	issues = parseDateField(issues, "toDate", e.ToDate, true, &e.To)
	if !e.From.IsZero() && !e.To.IsZero() && e.To.Before(e.From) {
		issues = append(issues, Issue{Field: "toDate", Reason: "must be on or after fromDate"})
	}
	return issues
}

type FamilyMember struct {
	RelationType   string `json:"relationType" validate:"required,oneof=Father Mother Brother Sister Spouse Other"`
	Name           string `json:"name" validate:"required"`
	Age            int    `json:"age" validate:"required,gte=1"`
	DateOfBirth    string `json:"dateOfBirth" validate:"required"`
	CurrentAddress string `json:"currentAddress" validate:"required"`
	BirthCountry   string `json:"birthCountry" validate:"required"`
	BirthState     string `json:"birthState" validate:"required"`
	BirthLocation  string `json:"birthLocation" validate:"required"`
	Occupation     string `json:"occupation" validate:"required"`
	MobileNo       string `json:"mobileNo" validate:"required,len=10,numeric"`

	BirthDate time.Time `json:"-"`
}

func (f *FamilyMember) Validate() []Issue {
	issues := check(f)
	return parseDateField(issues, "dateOfBirth", f.DateOfBirth, true, &f.BirthDate)
}

type EmergencyContact struct {
	ContactName        string `json:"contactName" validate:"required"`
	ContactAddress     string `json:"contactAddress" validate:"required"`
	RelationToEmployee string `json:"relationToEmployee" validate:"required"`
	ContactNumber      string `json:"contactNumber" validate:"required,len=10,numeric"`
}

func (e *EmergencyContact) Validate() []Issue {
	return check(e)
}

// ProfessionalBasics is the first professional-details screen.
type ProfessionalBasics struct {
	Designation    string `json:"designation" validate:"required"`
	EmploymentType string `json:"employmentType" validate:"required,oneof=FullTime PartTime Internship"`
	WorkingType    string `json:"workingType" validate:"required,oneof=Office Remote Hybrid"`
	DateOfJoin     string `json:"dateOfJoin" validate:"required"`
	SignatureURL   string `json:"signatureUrl" validate:"required,url"`

	JoinDate time.Time `json:"-"`
}

func (p *ProfessionalBasics) Validate() []Issue {
	return parseDateField(check(p), "dateOfJoin", p.DateOfJoin, true, &p.JoinDate)
}

type Experience struct {
	EmpName         string `json:"empName" validate:"required"`
	EmpID           string `json:"empId" validate:"required"`
	JobTitle        string `json:"jobTitle" validate:"required"`
	StartDate       string `json:"startDate" validate:"required"`
	EndDate         string `json:"endDate" validate:"required"`
	Country         string `json:"country" validate:"required"`
	State           string `json:"state" validate:"required"`
	City            string `json:"city" validate:"required"`
	EmploymentType  string `json:"employmentType" validate:"required,oneof=FullTime PartTime Internship"`
	SupervisorName  string `json:"supervisorName"`
	SupervisorMobNo string `json:"supervisorMobNo" validate:"omitempty,len=10,numeric"`

	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (e *Experience) Validate() []Issue {
	issues := check(e)
	issues = parseDateField(issues, "startDate", e.StartDate, true, &e.Start)
	issues = parseDateField(issues, "endDate", e.EndDate, true, &e.End)
	if !e.Start.IsZero() && !e.End.IsZero() && e.End.Before(e.Start) {
		issues = append(issues, Issue{Field: "endDate", Reason: "must be on or after startDate"})
	}
	return issues
}

type Document struct {
	DocumentType   string `json:"documentType" validate:"required,oneof=DegreeCertificatesMarksheets BirthProof ExperienceCertificate RelievingLetter AadharPhotoCopy PanPhotoCopy"`
	DocumentURL    string `json:"documentUrl" validate:"required,url"`
	Submitted      bool   `json:"submitted"`
	SubmissionDate string `json:"submissionDate" validate:"required"`

	SubmittedOn time.Time `json:"-"`
}

func (d *Document) Validate() []Issue {
	return parseDateField(check(d), "submissionDate", d.SubmissionDate, true, &d.SubmittedOn)
}
