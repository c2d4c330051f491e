package inmemdb

import (
	"sort"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/trezcool/chamada/core/student"
)

type studentRepository struct {
	db *studentTable
}

var _ student.Repository = (*studentRepository)(nil)

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) query() []student.Student {
	students := make([]student.Student, 0, len(repo.db.table))
	for _, s := range repo.db.table {
		students = append(students, *s)
	}
	return students
}

func (repo *studentRepository) CheckUniqueness(id, registration string) error {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.checkUniqueness(id, registration)
}

func (repo *studentRepository) checkUniqueness(id, registration string) error {
	if _, ok := repo.db.table[id]; ok && id != "" {
		return student.ErrIDExists
	}
	for _, s := range repo.db.table {
		if s.Registration == registration {
			return student.ErrRegistrationExists
		}
	}
	return nil
}

func (repo *studentRepository) CreateStudent(s student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// re-check under the write lock: Validate only held a read lock
	if err := repo.checkUniqueness(s.ID, s.Registration); err != nil {
		return student.Student{}, err
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	repo.db.table[s.ID] = &s
	return s, nil
}

func (repo *studentRepository) GetStudentByID(id string) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if s, ok := repo.db.table[id]; ok {
		return *s, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.RLock()
	students := repo.query()
	repo.db.RUnlock()

	sortByName(students)
	return students, nil
}

// sortByName orders students the way a Brazilian class list is read ("Ângela" before "Bruno"),
// breaking ties by registration.
func sortByName(students []student.Student) {
	col := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.SliceStable(students, func(i, j int) bool {
		if c := col.CompareString(students[i].Name, students[j].Name); c != 0 {
			return c < 0
		}
		return students[i].Registration < students[j].Registration
	})
}
