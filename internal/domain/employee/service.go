package employee

import (
	"context"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"peoplehub/internal/domain/auth"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Create hashes the account password and runs the one-shot onboarding
// transaction. The plaintext never reaches the store.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (string, Account, error) {
	hash, err := auth.HashPassword(cmd.Basic.Password)
	if err != nil {
		return "", Account{}, fmt.Errorf("hash password: %w", err)
	}
	return s.store.Create(ctx, cmd, hash)
}

func (s *Service) Get(ctx context.Context, employeeID string) (*Record, error) {
	return s.store.Get(ctx, employeeID)
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.store.List(ctx)
}

func (s *Service) Delete(ctx context.Context, employeeID string) error {
	return s.store.Delete(ctx, employeeID)
}

// WriteProfilePDF renders a one-page profile summary for the employee.
func (s *Service) WriteProfilePDF(ctx context.Context, employeeID string, w io.Writer) error {
	rec, err := s.store.Get(ctx, employeeID)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Employee Profile")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	name := rec.Account.FirstName
	if rec.Account.MiddleName != "" {
		name += " " + rec.Account.MiddleName
	}
	name += " " + rec.Account.LastName
	pdf.Cell(0, 8, fmt.Sprintf("Name: %s", name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", rec.Account.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Mobile: %s", rec.Account.MobileNo))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Designation: %s", rec.Designation))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Joined: %s", rec.DateOfJoin.Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employment: %s (%s)", rec.EmploymentType, rec.WorkingType))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Records on file")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Addresses: %d", len(rec.Addresses)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Education entries: %d", len(rec.Education)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Family members: %d", len(rec.Family)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Emergency contacts: %d", len(rec.EmergencyContacts)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Prior experiences: %d", len(rec.Experiences)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Documents: %d", len(rec.Attachments)))

	return pdf.Output(w)
}
