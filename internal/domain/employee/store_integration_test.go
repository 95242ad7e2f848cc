package employee_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"peoplehub/internal/domain/employee"
	"peoplehub/internal/platform/db"
	"peoplehub/internal/validation"
	"peoplehub/internal/wizard"
)

var trackedTables = []string{
	"users",
	"user_roles",
	"employees",
	"personal_details",
	"addresses",
	"educational_details",
	"family_details",
	"emergency_contacts",
	"professional_details",
	"experience_details",
	"attachments",
}

func integrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Migrate(ctx, pool, "../../../migrations"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return pool
}

func ensureLookup(t *testing.T, pool *pgxpool.Pool, table, name string) string {
	t.Helper()
	ctx := context.Background()
	if _, err := pool.Exec(ctx,
		"INSERT INTO "+table+" (name, description) VALUES ($1, $1) ON CONFLICT (name) DO NOTHING", name); err != nil {
		t.Fatalf("ensure %s: %v", table, err)
	}
	var id string
	if err := pool.QueryRow(ctx, "SELECT id FROM "+table+" WHERE name = $1", name).Scan(&id); err != nil {
		t.Fatalf("lookup %s: %v", table, err)
	}
	return id
}

func tableCounts(t *testing.T, pool *pgxpool.Pool) map[string]int {
	t.Helper()
	counts := make(map[string]int, len(trackedTables))
	for _, table := range trackedTables {
		var n int
		if err := pool.QueryRow(context.Background(), "SELECT COUNT(1) FROM "+table).Scan(&n); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		counts[table] = n
	}
	return counts
}

func requireZeroDelta(t *testing.T, before, after map[string]int) {
	t.Helper()
	for _, table := range trackedTables {
		if before[table] != after[table] {
			t.Fatalf("table %s changed: %d -> %d", table, before[table], after[table])
		}
	}
}

// onboardingCommand builds a fully validated create command through the
// aggregate builder, the same path the submit endpoint takes.
func onboardingCommand(t *testing.T, roleID, designation, email string) employee.CreateCommand {
	t.Helper()
	agg := wizard.Aggregate{
		BasicDetails: &validation.BasicDetails{
			FirstName:     "Asha",
			LastName:      "Verma",
			MobileNo:      "9876543210",
			EmailID:       email,
			Password:      "s3cret-pass",
			ProfileURL:    "https://cdn.example.com/profiles/asha.png",
			Roles:         []validation.RoleRef{{RoleID: roleID}},
			DateOfBirth:   "1992-03-14",
			Age:           34,
			Gender:        "Female",
			MaritalStatus: "Married",
			BloodGroup:    "OPlus",
			BirthCountry:  "India",
			BirthState:    "Maharashtra",
			BirthLocation: "Pune",
			PanNo:         "ABCDE1234F",
			Caste:         "General",
			Religion:      "Hindu",
			Domicile:      "Maharashtra",
		},
		AddressDetails: []validation.Address{
			{
				AddressType:  "Present",
				BuildingName: "Sunrise Towers",
				FlatNumber:   "B-404",
				StreetName:   "MG Road",
				Landmark:     "Opposite City Mall",
				City:         "Pune",
				State:        "Maharashtra",
				Pincode:      "411001",
				MobileNumber: "9876543210",
			},
			{
				AddressType:  "Permanent",
				BuildingName: "Green Villa",
				FlatNumber:   "7",
				StreetName:   "Station Road",
				Landmark:     "Near Temple",
				City:         "Nashik",
				State:        "Maharashtra",
				Pincode:      "422001",
				MobileNumber: "9123456780",
			},
		},
		EducationalDetails: []validation.Education{{
			Course:                  "Graduation",
			DegreeSpecialization:    "Computer Science",
			InstituteUniversityName: "Pune University",
			FromDate:                "2010-06-01",
			ToDate:                  "2014-05-31",
			Status:                  "Completed",
			StudyMode:               "FullTime",
			Percentage:              81.5,
		}},
		FamilyDetails: []validation.FamilyMember{{
			RelationType:   "Father",
			Name:           "Suresh Verma",
			Age:            62,
			DateOfBirth:    "1964-01-20",
			CurrentAddress: "Green Villa, Nashik",
			BirthCountry:   "India",
			BirthState:     "Maharashtra",
			BirthLocation:  "Nashik",
			Occupation:     "Retired",
			MobileNo:       "9988776655",
		}},
		EmergencyContactDetails: []validation.EmergencyContact{
			{
				ContactName:        "Ravi Verma",
				ContactAddress:     "12 MG Road, Pune",
				RelationToEmployee: "Spouse",
				ContactNumber:      "9123456780",
			},
			{
				ContactName:        "Suresh Verma",
				ContactAddress:     "Green Villa, Nashik",
				RelationToEmployee: "Father",
				ContactNumber:      "9988776655",
			},
		},
		ProfessionalBasics: &validation.ProfessionalBasics{
			Designation:    designation,
			EmploymentType: "FullTime",
			WorkingType:    "Office",
			DateOfJoin:     "2026-02-02",
			SignatureURL:   "https://cdn.example.com/sign/asha.png",
		},
		ExperienceDetails: []validation.Experience{{
			EmpName:        "Acme Corp",
			EmpID:          "E-1001",
			JobTitle:       "Backend Engineer",
			StartDate:      "2019-01-07",
			EndDate:        "2022-12-30",
			Country:        "India",
			State:          "Karnataka",
			City:           "Bengaluru",
			EmploymentType: "FullTime",
		}},
		DocumentURLs: []validation.Document{{
			DocumentType:   "PanPhotoCopy",
			DocumentURL:    "https://cdn.example.com/docs/pan.pdf",
			Submitted:      true,
			SubmissionDate: "2026-01-15",
		}},
	}

	cmd, failures := agg.Build()
	if len(failures) > 0 {
		t.Fatalf("aggregate invalid: %v", failures)
	}
	return cmd
}

func uniqueEmail() string {
	return fmt.Sprintf("onboarding-%d@example.com", time.Now().UnixNano())
}

func TestCreateRollsBackOnMissingDesignation(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()
	roleID := ensureLookup(t, pool, "roles", "Employee")
	ensureLookup(t, pool, "designations", "Software Engineer")
	service := employee.NewService(employee.NewStore(pool))

	cmd := onboardingCommand(t, roleID, "Software Engineer", uniqueEmail())
	cmd.Professional.Designation = "Chief Imaginary Officer"

	before := tableCounts(t, pool)
	_, _, err := service.Create(ctx, cmd)
	if !errors.Is(err, employee.ErrDesignationNotFound) {
		t.Fatalf("expected ErrDesignationNotFound, got %v", err)
	}
	requireZeroDelta(t, before, tableCounts(t, pool))
}

func TestCreateRejectsDuplicateEmailWithoutSideEffects(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()
	roleID := ensureLookup(t, pool, "roles", "Employee")
	ensureLookup(t, pool, "designations", "Software Engineer")
	service := employee.NewService(employee.NewStore(pool))

	email := uniqueEmail()
	first := onboardingCommand(t, roleID, "Software Engineer", email)
	employeeID, _, err := service.Create(ctx, first)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	defer func() {
		if err := service.Delete(ctx, employeeID); err != nil {
			t.Errorf("cleanup delete: %v", err)
		}
	}()

	before := tableCounts(t, pool)
	_, _, err = service.Create(ctx, onboardingCommand(t, roleID, "Software Engineer", email))
	if !errors.Is(err, employee.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	requireZeroDelta(t, before, tableCounts(t, pool))
}

func TestCreateGetDeleteRoundTrip(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()
	roleID := ensureLookup(t, pool, "roles", "Employee")
	ensureLookup(t, pool, "designations", "Software Engineer")
	service := employee.NewService(employee.NewStore(pool))

	baseline := tableCounts(t, pool)
	email := uniqueEmail()
	cmd := onboardingCommand(t, roleID, "Software Engineer", email)

	employeeID, account, err := service.Create(ctx, cmd)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if employeeID == "" || account.ID == "" {
		t.Fatalf("expected identifiers, got employee %q account %q", employeeID, account.ID)
	}
	if account.Email != email || account.EmployeeID != employeeID {
		t.Fatalf("account not linked: %+v", account)
	}

	rec, err := service.Get(ctx, employeeID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Designation != "Software Engineer" {
		t.Fatalf("designation mismatch: %q", rec.Designation)
	}
	// Every child collection comes back with the count that went in.
	if len(rec.Addresses) != len(cmd.Addresses) {
		t.Fatalf("addresses: got %d want %d", len(rec.Addresses), len(cmd.Addresses))
	}
	if len(rec.Education) != len(cmd.Education) {
		t.Fatalf("education: got %d want %d", len(rec.Education), len(cmd.Education))
	}
	if len(rec.Family) != len(cmd.Family) {
		t.Fatalf("family: got %d want %d", len(rec.Family), len(cmd.Family))
	}
	if len(rec.EmergencyContacts) != len(cmd.EmergencyContacts) {
		t.Fatalf("emergency contacts: got %d want %d", len(rec.EmergencyContacts), len(cmd.EmergencyContacts))
	}
	if len(rec.Experiences) != len(cmd.Experiences) {
		t.Fatalf("experiences: got %d want %d", len(rec.Experiences), len(cmd.Experiences))
	}
	if len(rec.Attachments) != len(cmd.Documents) {
		t.Fatalf("attachments: got %d want %d", len(rec.Attachments), len(cmd.Documents))
	}

	if err := service.Delete(ctx, employeeID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := service.Get(ctx, employeeID); !errors.Is(err, employee.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	requireZeroDelta(t, baseline, tableCounts(t, pool))
}
