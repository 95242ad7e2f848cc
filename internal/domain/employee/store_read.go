package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Get returns the employee with all child collections.
func (s *Store) Get(ctx context.Context, employeeID string) (*Record, error) {
	var rec Record
	err := s.DB.QueryRow(ctx, `
    SELECT e.id, d.name, e.date_of_join, e.employment_type, e.working_type, e.signature_url, e.created_at
    FROM employees e
    JOIN designations d ON e.designation_id = d.id
    WHERE e.id = $1
  `, employeeID).Scan(&rec.ID, &rec.Designation, &rec.DateOfJoin, &rec.EmploymentType, &rec.WorkingType, &rec.SignatureURL, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.loadAccount(ctx, &rec); err != nil {
		return nil, err
	}
	if err := s.loadPersonal(ctx, &rec); err != nil {
		return nil, err
	}
	if err := s.loadAddresses(ctx, &rec); err != nil {
		return nil, err
	}
	if err := s.loadEducation(ctx, &rec); err != nil {
		return nil, err
	}
	if err := s.loadFamily(ctx, &rec); err != nil {
		return nil, err
	}
	if err := s.loadEmergencyContacts(ctx, &rec); err != nil {
		return nil, err
	}
	if err := s.loadExperiences(ctx, &rec); err != nil {
		return nil, err
	}
	if err := s.loadAttachments(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) loadAccount(ctx context.Context, rec *Record) error {
	err := s.DB.QueryRow(ctx, `
    SELECT id, first_name, middle_name, last_name, mobile_no, email, profile_url, is_active, show_activity, COALESCE(employee_id::text, '')
    FROM users
    WHERE employee_id = $1
  `, rec.ID).Scan(&rec.Account.ID, &rec.Account.FirstName, &rec.Account.MiddleName, &rec.Account.LastName,
		&rec.Account.MobileNo, &rec.Account.Email, &rec.Account.ProfileURL,
		&rec.Account.IsActive, &rec.Account.ShowActivity, &rec.Account.EmployeeID)
	if err != nil {
		return err
	}

	rows, err := s.DB.Query(ctx, `
    SELECT r.name
    FROM user_roles ur
    JOIN roles r ON ur.role_id = r.id
    WHERE ur.user_id = $1
    ORDER BY r.name
  `, rec.Account.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		rec.Account.Roles = append(rec.Account.Roles, name)
	}
	return rows.Err()
}

func (s *Store) loadPersonal(ctx context.Context, rec *Record) error {
	return s.DB.QueryRow(ctx, `
    SELECT date_of_birth, age, gender, marital_status, blood_group, birth_country, birth_state, birth_location, pan_no, caste, religion, domicile
    FROM personal_details
    WHERE employee_id = $1
  `, rec.ID).Scan(&rec.PersonalDetail.DateOfBirth, &rec.PersonalDetail.Age, &rec.PersonalDetail.Gender,
		&rec.PersonalDetail.MaritalStatus, &rec.PersonalDetail.BloodGroup, &rec.PersonalDetail.BirthCountry,
		&rec.PersonalDetail.BirthState, &rec.PersonalDetail.BirthLocation, &rec.PersonalDetail.PanNo,
		&rec.PersonalDetail.Caste, &rec.PersonalDetail.Religion, &rec.PersonalDetail.Domicile)
}

func (s *Store) loadAddresses(ctx context.Context, rec *Record) error {
	rows, err := s.DB.Query(ctx, `
    SELECT id, address_type, building_name, flat_number, street_name, landmark, city, state, pincode, COALESCE(telephone_number, ''), mobile_number
    FROM addresses
    WHERE employee_id = $1
    ORDER BY id
  `, rec.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var a Address
		if err := rows.Scan(&a.ID, &a.AddressType, &a.BuildingName, &a.FlatNumber, &a.StreetName,
			&a.Landmark, &a.City, &a.State, &a.Pincode, &a.TelephoneNumber, &a.MobileNumber); err != nil {
			return err
		}
		rec.Addresses = append(rec.Addresses, a)
	}
	return rows.Err()
}

func (s *Store) loadEducation(ctx context.Context, rec *Record) error {
	rows, err := s.DB.Query(ctx, `
    SELECT id, course, degree_specialization, institute_university_name, from_date, to_date, status, study_mode, percentage
    FROM educational_details
    WHERE employee_id = $1
    ORDER BY from_date
  `, rec.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var e Education
		if err := rows.Scan(&e.ID, &e.Course, &e.DegreeSpecialization, &e.InstituteUniversityName,
			&e.FromDate, &e.ToDate, &e.Status, &e.StudyMode, &e.Percentage); err != nil {
			return err
		}
		rec.Education = append(rec.Education, e)
	}
	return rows.Err()
}

func (s *Store) loadFamily(ctx context.Context, rec *Record) error {
	rows, err := s.DB.Query(ctx, `
    SELECT id, relation_type, name, age, date_of_birth, current_address, birth_country, birth_state, birth_location, occupation, mobile_number
    FROM family_details
    WHERE employee_id = $1
    ORDER BY id
  `, rec.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var f FamilyMember
		if err := rows.Scan(&f.ID, &f.RelationType, &f.Name, &f.Age, &f.DateOfBirth, &f.CurrentAddress,
			&f.BirthCountry, &f.BirthState, &f.BirthLocation, &f.Occupation, &f.MobileNumber); err != nil {
			return err
		}
		rec.Family = append(rec.Family, f)
	}
	return rows.Err()
}

func (s *Store) loadEmergencyContacts(ctx context.Context, rec *Record) error {
	rows, err := s.DB.Query(ctx, `
    SELECT id, contact_name, contact_address, relation_to_employee, contact_number
    FROM emergency_contacts
    WHERE employee_id = $1
    ORDER BY id
  `, rec.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var c EmergencyContact
		if err := rows.Scan(&c.ID, &c.ContactName, &c.ContactAddress, &c.RelationToEmployee, &c.ContactNumber); err != nil {
			return err
		}
		rec.EmergencyContacts = append(rec.EmergencyContacts, c)
	}
	return rows.Err()
}

func (s *Store) loadExperiences(ctx context.Context, rec *Record) error {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employer_name, employer_id, job_title, start_date, end_date, country, state, city, employment_type, supervisor_name, supervisor_mobile_no
    FROM experience_details
    WHERE employee_id = $1
    ORDER BY start_date
  `, rec.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var e Experience
		if err := rows.Scan(&e.ID, &e.EmployerName, &e.EmployerID, &e.JobTitle, &e.StartDate, &e.EndDate,
			&e.Country, &e.State, &e.City, &e.EmploymentType, &e.SupervisorName, &e.SupervisorMobNo); err != nil {
			return err
		}
		rec.Experiences = append(rec.Experiences, e)
	}
	return rows.Err()
}

func (s *Store) loadAttachments(ctx context.Context, rec *Record) error {
	rows, err := s.DB.Query(ctx, `
    SELECT id, document_type, document_url, submitted, submission_date
    FROM attachments
    WHERE employee_id = $1
    ORDER BY document_type
  `, rec.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var a Attachment
		if err := rows.Scan(&a.ID, &a.DocumentType, &a.DocumentURL, &a.Submitted, &a.SubmissionDate); err != nil {
			return err
		}
		rec.Attachments = append(rec.Attachments, a)
	}
	return rows.Err()
}

// List returns employee summaries ordered by name.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.id, u.first_name, u.last_name, u.email, d.name, e.employment_type, e.working_type, e.date_of_join
    FROM employees e
    JOIN designations d ON e.designation_id = d.id
    JOIN users u ON u.employee_id = e.id
    ORDER BY u.last_name, u.first_name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.FirstName, &sum.LastName, &sum.Email, &sum.Designation,
			&sum.EmploymentType, &sum.WorkingType, &sum.DateOfJoin); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}
