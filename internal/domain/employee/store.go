package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const uniqueViolation = "23505"

// Create persists the whole onboarding aggregate as one transaction:
// account, employee, and every child collection, or nothing at all.
// The unique index on users.email is the authoritative duplicate guard;
// the pre-check only gives a cleaner error before any row is written.
func (s *Store) Create(ctx context.Context, cmd CreateCommand, passwordHash string) (string, Account, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return "", Account{}, err
	}
	defer tx.Rollback(ctx)

	var designationID string
	err = tx.QueryRow(ctx, "SELECT id FROM designations WHERE name = $1", cmd.Professional.Designation).Scan(&designationID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", Account{}, ErrDesignationNotFound
	}
	if err != nil {
		return "", Account{}, err
	}

	var emailCount int
	if err := tx.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE email = $1", cmd.Basic.EmailID).Scan(&emailCount); err != nil {
		return "", Account{}, err
	}
	if emailCount > 0 {
		return "", Account{}, ErrEmailExists
	}

	var userID string
	err = tx.QueryRow(ctx, `
    INSERT INTO users (first_name, middle_name, last_name, mobile_no, email, password_hash, profile_url, is_active, show_activity)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id
  `, cmd.Basic.FirstName, cmd.Basic.MiddleName, cmd.Basic.LastName, cmd.Basic.MobileNo, cmd.Basic.EmailID,
		passwordHash, cmd.Basic.ProfileURL, cmd.Basic.Active(), cmd.Basic.ActivityVisible(),
	).Scan(&userID)
	if err != nil {
		return "", Account{}, mapEmailConflict(err)
	}

	for _, role := range cmd.Basic.Roles {
		if _, err := tx.Exec(ctx, "INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)", userID, role.RoleID); err != nil {
			return "", Account{}, err
		}
	}

	var employeeID string
	err = tx.QueryRow(ctx, `
    INSERT INTO employees (designation_id, date_of_join, employment_type, working_type, signature_url)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, designationID, cmd.Professional.JoinDate, cmd.Professional.EmploymentType, cmd.Professional.WorkingType, cmd.Professional.SignatureURL,
	).Scan(&employeeID)
	if err != nil {
		return "", Account{}, err
	}

	if _, err := tx.Exec(ctx, "UPDATE users SET employee_id = $1, updated_at = now() WHERE id = $2", employeeID, userID); err != nil {
		return "", Account{}, err
	}

	if _, err := tx.Exec(ctx, `
    INSERT INTO personal_details (employee_id, date_of_birth, age, gender, marital_status, blood_group,
      birth_country, birth_state, birth_location, pan_no, caste, religion, domicile)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
  `, employeeID, cmd.Basic.BirthDate, cmd.Basic.Age, cmd.Basic.Gender, cmd.Basic.MaritalStatus, cmd.Basic.BloodGroup,
		cmd.Basic.BirthCountry, cmd.Basic.BirthState, cmd.Basic.BirthLocation, cmd.Basic.PanNo,
		cmd.Basic.Caste, cmd.Basic.Religion, cmd.Basic.Domicile); err != nil {
		return "", Account{}, err
	}

	for _, address := range cmd.Addresses {
		if _, err := tx.Exec(ctx, `
      INSERT INTO addresses (employee_id, address_type, building_name, flat_number, street_name, landmark, city, state, pincode, telephone_number, mobile_number)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
    `, employeeID, address.AddressType, address.BuildingName, address.FlatNumber, address.StreetName,
			address.Landmark, address.City, address.State, address.Pincode,
			nullIfEmpty(address.TelephoneNumber), address.MobileNumber); err != nil {
			return "", Account{}, err
		}
	}

	for _, education := range cmd.Education {
		if _, err := tx.Exec(ctx, `
      INSERT INTO educational_details (employee_id, course, degree_specialization, institute_university_name, from_date, to_date, status, study_mode, percentage)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    `, employeeID, education.Course, education.DegreeSpecialization, education.InstituteUniversityName,
			education.From, education.To, education.Status, education.StudyMode, education.Percentage); err != nil {
			return "", Account{}, err
		}
	}

	for _, member := range cmd.Family {
		if _, err := tx.Exec(ctx, `
      INSERT INTO family_details (employee_id, relation_type, name, age, date_of_birth, current_address, birth_country, birth_state, birth_location, occupation, mobile_number)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
    `, employeeID, member.RelationType, member.Name, member.Age, member.BirthDate, member.CurrentAddress,
			member.BirthCountry, member.BirthState, member.BirthLocation, member.Occupation, member.MobileNo); err != nil {
			return "", Account{}, err
		}
	}

	for _, contact := range cmd.EmergencyContacts {
		if _, err := tx.Exec(ctx, `
      INSERT INTO emergency_contacts (employee_id, contact_name, contact_address, relation_to_employee, contact_number)
      VALUES ($1,$2,$3,$4,$5)
    `, employeeID, contact.ContactName, contact.ContactAddress, contact.RelationToEmployee, contact.ContactNumber); err != nil {
			return "", Account{}, err
		}
	}

	var professionalDetailID string
	if err := tx.QueryRow(ctx, "INSERT INTO professional_details (employee_id) VALUES ($1) RETURNING id", employeeID).Scan(&professionalDetailID); err != nil {
		return "", Account{}, err
	}

	for _, exp := range cmd.Experiences {
		if _, err := tx.Exec(ctx, `
      INSERT INTO experience_details (professional_detail_id, employee_id, employer_name, employer_id, job_title, start_date, end_date, country, state, city, employment_type, supervisor_name, supervisor_mobile_no)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    `, professionalDetailID, employeeID, exp.EmpName, exp.EmpID, exp.JobTitle, exp.Start, exp.End,
			exp.Country, exp.State, exp.City, exp.EmploymentType, exp.SupervisorName, exp.SupervisorMobNo); err != nil {
			return "", Account{}, err
		}
	}

	for _, doc := range cmd.Documents {
		if _, err := tx.Exec(ctx, `
      INSERT INTO attachments (employee_id, document_type, document_url, submitted, submission_date)
      VALUES ($1,$2,$3,$4,$5)
    `, employeeID, doc.DocumentType, doc.DocumentURL, doc.Submitted, doc.SubmittedOn); err != nil {
			return "", Account{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", Account{}, mapEmailConflict(err)
	}

	account := Account{
		ID:           userID,
		FirstName:    cmd.Basic.FirstName,
		MiddleName:   cmd.Basic.MiddleName,
		LastName:     cmd.Basic.LastName,
		MobileNo:     cmd.Basic.MobileNo,
		Email:        cmd.Basic.EmailID,
		ProfileURL:   cmd.Basic.ProfileURL,
		IsActive:     cmd.Basic.Active(),
		ShowActivity: cmd.Basic.ActivityVisible(),
		EmployeeID:   employeeID,
	}
	return employeeID, account, nil
}

// Delete removes the employee and every dependent row in one
// transaction. A half-deleted employee is never observable.
func (s *Store) Delete(ctx context.Context, employeeID string) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var exists int
	if err := tx.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE id = $1", employeeID).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}

	childTables := []string{
		"attachments",
		"experience_details",
		"professional_details",
		"emergency_contacts",
		"family_details",
		"educational_details",
		"addresses",
		"personal_details",
	}
	for _, table := range childTables {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table+" WHERE employee_id = $1", employeeID); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, "DELETE FROM user_roles WHERE user_id IN (SELECT id FROM users WHERE employee_id = $1)", employeeID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, "DELETE FROM users WHERE employee_id = $1", employeeID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, "DELETE FROM employees WHERE id = $1", employeeID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func mapEmailConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == "users_email_key" {
		return ErrEmailExists
	}
	return err
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
