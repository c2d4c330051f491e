package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/chamada/core"
)

// Student is immutable once created. ID is an opaque, stable key.
type Student struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Registration string `json:"registration"`
}

// NewStudent contains information needed to add a Student to the roster.
type NewStudent struct {
	ID           string `json:"id" validate:"omitempty,max=64"`
	Name         string `json:"name" validate:"required,max=120"`
	Registration string `json:"registration" validate:"required,digits,max=20"`
}

func (ns *NewStudent) Validate(validate *validator.Validate, repo Repository) error {
	ns.ID = core.CleanString(ns.ID)
	ns.Name = core.CleanString(ns.Name)
	ns.Registration = core.CleanString(ns.Registration)

	if err := validate.Struct(ns); err != nil {
		return err
	}
	return checkUniqueness(repo, ns.ID, ns.Registration)
}

func checkUniqueness(repo Repository, id, registration string) error {
	return UniquenessError(repo.CheckUniqueness(id, registration))
}

// UniquenessError turns ErrIDExists & ErrRegistrationExists into a validation error on the
// offending field; any other error is returned as is.
func UniquenessError(err error) error {
	var field string
	switch err {
	case ErrIDExists:
		field = "id"
	case ErrRegistrationExists:
		field = "registration"
	default:
		return err
	}
	return core.NewValidationError(err, core.FieldError{Field: field, Error: err.Error()})
}

// IDs returns the ids of `students`, in order.
func IDs(students []Student) []string {
	ids := make([]string, len(students))
	for i, s := range students {
		ids[i] = s.ID
	}
	return ids
}
