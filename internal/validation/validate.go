package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Issue is one field-level validation failure, addressed by the field's
// json name.
type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check runs struct-tag validation and converts the result into issues.
// It never panics on expected bad input; only a non-struct value would
// make validator error out, and that is a programming mistake.
func check(value any) []Issue {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Issue{{Field: "", Reason: err.Error()}}
	}

	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, Issue{Field: fieldPath(fe), Reason: reasonFor(fe)})
	}
	return issues
}

// fieldPath trims the root struct name from the namespace so callers see
// "roles[0].roleId" rather than "BasicDetails.roles[0].roleId".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid identifier"
	case "numeric":
		return "must contain only digits"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "len":
		if fe.Kind() == reflect.String {
			return "must be exactly " + fe.Param() + " characters"
		}
		return "must have exactly " + fe.Param() + " entries"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		if fe.Kind() == reflect.Slice {
			return "must have at least " + fe.Param() + " entries"
		}
		return "must be at least " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
