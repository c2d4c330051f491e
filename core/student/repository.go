package student

import "errors"

var (
	// errors
	ErrNotFound           = errors.New("student not found")
	ErrIDExists           = errors.New("a student with this id already exists")
	ErrRegistrationExists = errors.New("a student with this registration already exists")
)

// Repository is the roster collaborator: students are only ever added, never edited or removed.
type Repository interface {
	// CheckUniqueness fails with ErrIDExists or ErrRegistrationExists. An empty id is not checked.
	CheckUniqueness(id, registration string) error
	// CreateStudent assigns a new id when Student.ID is empty.
	CreateStudent(s Student) (Student, error)
	GetStudentByID(id string) (Student, error)
	// QueryAllStudents returns the roster ordered by name.
	QueryAllStudents() ([]Student, error)
}
