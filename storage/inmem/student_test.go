package inmemdb

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/chamada/core/student"
)

func setup(t *testing.T) student.Repository {
	db, err := Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return NewStudentRepository(db)
}

func TestStudentRepository_CreateStudent(t *testing.T) {
	repo := setup(t)

	std, err := repo.CreateStudent(student.Student{Name: "Ana", Registration: "1"})
	require.NoError(t, err)
	_, err = uuid.Parse(std.ID)
	assert.NoError(t, err, "generated id should be a uuid")

	got, err := repo.GetStudentByID(std.ID)
	require.NoError(t, err)
	assert.Equal(t, std, got)

	tests := []struct {
		name    string
		std     student.Student
		wantErr error
	}{
		{name: "explicit id", std: student.Student{ID: "x1", Name: "Bia", Registration: "2"}},
		{name: "duplicate id", std: student.Student{ID: "x1", Name: "Caio", Registration: "3"}, wantErr: student.ErrIDExists},
		{name: "duplicate registration", std: student.Student{Name: "Duda", Registration: "1"}, wantErr: student.ErrRegistrationExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.CreateStudent(tt.std)
			assert.Equal(t, tt.wantErr, err)
		})
	}

	assert.NoError(t, repo.CheckUniqueness("", "42"))
	assert.Equal(t, student.ErrIDExists, repo.CheckUniqueness("x1", "42"))
	assert.Equal(t, student.ErrRegistrationExists, repo.CheckUniqueness("", "2"))

	_, err = repo.GetStudentByID("nope")
	assert.Equal(t, student.ErrNotFound, err)
}

func TestStudentRepository_QueryAllStudents(t *testing.T) {
	repo := setup(t)

	for i, name := range []string{"bruno", "Álvaro", "Ana", "Érica", "Eduardo", "Ana"} {
		_, err := repo.CreateStudent(student.Student{Name: name, Registration: string(rune('9' - i))})
		require.NoError(t, err)
	}

	students, err := repo.QueryAllStudents()
	require.NoError(t, err)

	names := make([]string, len(students))
	for i, s := range students {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"Álvaro", "Ana", "Ana", "bruno", "Eduardo", "Érica"}, names)
	// same names: by registration
	assert.Equal(t, "4", students[1].Registration)
	assert.Equal(t, "7", students[2].Registration)
}

func TestSeed(t *testing.T) {
	repo := setup(t)
	require.NoError(t, Seed(repo))
	require.NoError(t, Seed(repo)) // already seeded

	students, err := repo.QueryAllStudents()
	require.NoError(t, err)
	assert.Len(t, students, len(DemoRoster))
	assert.Equal(t, "Ana Souza", students[0].Name)
}
