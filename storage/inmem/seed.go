package inmemdb

import (
	"github.com/pkg/errors"

	"github.com/trezcool/chamada/core/student"
)

// DemoRoster is the class loaded by Seed.
var DemoRoster = []student.Student{
	{ID: "1", Name: "João Silva", Registration: "2023001"},
	{ID: "2", Name: "Maria Oliveira", Registration: "2023002"},
	{ID: "3", Name: "Pedro Santos", Registration: "2023003"},
	{ID: "4", Name: "Ana Souza", Registration: "2023004"},
	{ID: "5", Name: "Lucas Ferreira", Registration: "2023005"},
}

// Seed adds the DemoRoster students missing from `repo`.
func Seed(repo student.Repository) error {
	for _, s := range DemoRoster {
		if _, err := repo.GetStudentByID(s.ID); err == nil {
			continue
		}
		if _, err := repo.CreateStudent(s); err != nil {
			return errors.Wrapf(err, "seeding student %s", s.ID)
		}
	}
	return nil
}
