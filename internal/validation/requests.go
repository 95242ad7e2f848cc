package validation

// Request payloads outside the onboarding wizard share the same
// issue-reporting contract as the section validators.

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Remember bool   `json:"remember"`
}

func (l *Login) Validate() []Issue {
	return check(l)
}

type ForgotPassword struct {
	EmailID string `json:"emailId" validate:"required,email"`
}

func (f *ForgotPassword) Validate() []Issue {
	return check(f)
}

type ResetPassword struct {
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,min=8"`
}

func (r *ResetPassword) Validate() []Issue {
	issues := check(r)
	if r.NewPassword != "" && r.ConfirmPassword != "" && r.NewPassword != r.ConfirmPassword {
		issues = append(issues, Issue{Field: "confirmPassword", Reason: "must match newPassword"})
	}
	return issues
}

// LookupInput covers both role and designation create/update forms.
type LookupInput struct {
	Name        string `json:"name" validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=3"`
}

func (l *LookupInput) Validate() []Issue {
	return check(l)
}
