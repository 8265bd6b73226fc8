// Package forms validates HTML form submissions and carries the form state
// rendered back into the page. Validation never calls the network and never
// panics; it always yields a State or a field-error map.
package forms

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// State is the result every form action hands back to its template. Exactly
// one of the three constructors builds it.
type State struct {
	Message string
	Success bool
	Errors  map[string][]string
}

// Ok marks a successful mutation.
func Ok(message string) State {
	return State{Message: message, Success: true}
}

// Invalid carries per-field validation messages; no mutation was attempted.
func Invalid(errors map[string][]string) State {
	return State{Message: "Validation failed", Errors: errors}
}

// Failed carries a terminal failure message, usually the backend's own.
func Failed(message string) State {
	return State{Message: message}
}

// FieldErrors returns the messages for one field, for template convenience.
func (s State) FieldErrors(field string) []string {
	return s.Errors[field]
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Error keys use the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Check validates a form struct and returns field-keyed messages, or nil
// when the form is valid.
func Check(form any) map[string][]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"form": {"Invalid submission"}}
	}
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	label := labelFor(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "oneof":
		return label + " has an unexpected value"
	default:
		return label + " is invalid"
	}
}

func labelFor(field string) string {
	if field == "" {
		return "Field"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

// Article is the admin create/edit article form.
type Article struct {
	Title    string `form:"title" validate:"required"`
	Content  string `form:"content" validate:"required"`
	Author   string `form:"author" validate:"required"`
	Category string `form:"category" validate:"required"`
	Status   string `form:"status" validate:"omitempty,oneof=PENDING APPROVED"`
}

// Contact is the public contact form.
type Contact struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,email"`
	Message string `form:"message" validate:"required"`
}

// Editor is the admin-only create-editor form.
type Editor struct {
	Username string `form:"username" validate:"required,min=3"`
	Password string `form:"password" validate:"required,min=6"`
}

// Login is the admin login form.
type Login struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Category is the admin category form.
type Category struct {
	Name string `form:"name" validate:"required"`
}

// Blog is the admin blog form.
type Blog struct {
	Title   string `form:"title" validate:"required"`
	Content string `form:"content" validate:"required"`
}

// Advertisement is the admin advertisement form.
type Advertisement struct {
	Title     string `form:"title" validate:"required"`
	ImageURL  string `form:"imageUrl" validate:"omitempty,url"`
	LinkURL   string `form:"linkUrl" validate:"omitempty,url"`
	Placement string `form:"placement"`
	IsActive  bool   `form:"isActive"`
}

// Profile is the self-service profile form. The password pair is validated
// separately since both fields must travel together.
type Profile struct {
	FullName        string `form:"fullName" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	Phone           string `form:"phone"`
	Bio             string `form:"bio"`
	CurrentPassword string `form:"currentPassword"`
	NewPassword     string `form:"newPassword" validate:"omitempty,min=6"`
}

// CheckProfile validates the profile form including the both-or-neither
// password pair rule.
func CheckProfile(form Profile) map[string][]string {
	errs := Check(form)
	hasCurrent := strings.TrimSpace(form.CurrentPassword) != ""
	hasNew := strings.TrimSpace(form.NewPassword) != ""
	if hasCurrent != hasNew {
		if errs == nil {
			errs = make(map[string][]string)
		}
		if !hasCurrent {
			errs["currentPassword"] = append(errs["currentPassword"], "Current password is required to change your password")
		} else {
			errs["newPassword"] = append(errs["newPassword"], "New password is required to change your password")
		}
	}
	return errs
}
