package attendance

import (
	"sync"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/chamada/core"
	"github.com/trezcool/chamada/core/student"
)

// Notifier is the notification collaborator (eg. a toast on the front-end).
type Notifier interface {
	Notify(n Notification)
}

type (
	SessionDeps struct {
		Roster     student.Repository
		Notifier   Notifier
		Logger     core.Logger
		Validate   *validator.Validate
		Translator ut.Translator
	}

	// Session is one attendance editing session: it owns its Store for its whole lifetime.
	Session struct {
		deps  SessionDeps
		store *Store

		mu       sync.RWMutex
		selected DateKey
	}

	Row struct {
		Student student.Student `json:"student"`
		Status  Status          `json:"status"`
	}

	List struct {
		Date    DateKey `json:"date"`
		Caption string  `json:"caption"`
		Rows    []Row   `json:"rows"`
	}

	Calendar struct {
		Counts map[DateKey]int `json:"counts"`
		Days   []DateKey       `json:"days"`
	}
)

// NewSession starts a session with an empty Store, viewing `date`.
func NewSession(deps SessionDeps, date DateKey) *Session {
	return &Session{
		deps:     deps,
		store:    NewStore(),
		selected: date,
	}
}

func (s *Session) Store() *Store { return s.store }

func (s *Session) SelectedDate() DateKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

func (s *Session) Students() ([]student.Student, error) {
	students, err := s.deps.Roster.QueryAllStudents()
	if err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	return students, nil
}

// OnDateChange selects `date` and marks every roster student not yet marked on it Present.
func (s *Session) OnDateChange(date DateKey) error {
	if date.Time().IsZero() {
		return ErrInvalidDate
	}
	s.mu.Lock()
	s.selected = date
	s.mu.Unlock()

	students, err := s.Students()
	if err != nil {
		return err
	}
	if n := EnsurePresent(s.store, student.IDs(students), date); n > 0 {
		s.deps.Logger.Debug("attendance initialized", map[string]interface{}{"date": date, "students": n})
	}
	return nil
}

// AddStudent adds a student to the roster and marks them Present on the selected date.
func (s *Session) AddStudent(ns student.NewStudent) (student.Student, error) {
	if err := ns.Validate(s.deps.Validate, s.deps.Roster); err != nil {
		return student.Student{}, err
	}
	std, err := s.deps.Roster.CreateStudent(student.Student{
		ID:           ns.ID,
		Name:         ns.Name,
		Registration: ns.Registration,
	})
	if err != nil {
		// the roster re-checks uniqueness on create, a concurrent add may have won
		if err = student.UniquenessError(err); core.IsValidationError(err) {
			return student.Student{}, err
		}
		return student.Student{}, errors.Wrap(err, "creating student")
	}
	EnsurePresent(s.store, []string{std.ID}, s.SelectedDate())
	return std, nil
}

// List returns the attendance of the roster on `date`; students not yet marked are marked Present first.
func (s *Session) List(date DateKey) (List, error) {
	students, err := s.Students()
	if err != nil {
		return List{}, err
	}
	EnsurePresent(s.store, student.IDs(students), date)

	sheet := s.store.Snapshot()
	list := List{
		Date: date,
		Rows: make([]Row, 0, len(students)),
	}
	for _, std := range students {
		list.Rows = append(list.Rows, Row{Student: std, Status: sheet.Status(std.ID, date)})
	}
	if len(students) == 0 {
		list.Caption = EmptyRosterText(s.deps.Translator)
	} else {
		list.Caption = Caption(s.deps.Translator, date)
	}
	return list, nil
}

// SetStatus records `status` and sends its confirmation to the notifier.
// Unknown student ids are accepted.
func (s *Session) SetStatus(studentID string, date DateKey, status Status) (Notification, error) {
	if err := s.store.SetStatus(studentID, date, status); err != nil {
		return Notification{}, err
	}

	name := studentID
	if std, err := s.deps.Roster.GetStudentByID(studentID); err == nil {
		name = std.Name
	} else if errors.Cause(err) != student.ErrNotFound {
		s.deps.Logger.Error("getting student", errors.Wrap(err, studentID))
	}

	n, err := NewNotification(s.deps.Translator, status, name)
	if err != nil {
		return Notification{}, errors.Wrap(err, "building notification")
	}
	s.deps.Notifier.Notify(n)
	return n, nil
}

// SetAttendance writes the presence ledger only and returns the resulting status.
func (s *Session) SetAttendance(studentID string, date DateKey, isPresent bool) Status {
	s.store.SetAttendance(studentID, date, isPresent)
	return s.store.Status(studentID, date)
}

// SetJustified writes the justification ledger only and returns the resulting status.
func (s *Session) SetJustified(studentID string, date DateKey, isJustified bool) Status {
	s.store.SetJustified(studentID, date, isJustified)
	return s.store.Status(studentID, date)
}

// Calendar returns the absence counts, restricted to `rng` when it is not nil.
func (s *Session) Calendar(rng *DateRange) Calendar {
	sheet := s.store.Snapshot()

	var counts map[DateKey]int
	if rng != nil {
		counts = AbsenceCountsIn(sheet, *rng)
	} else {
		counts = AbsenceCounts(sheet)
	}
	return Calendar{Counts: counts, Days: AbsenceDays(counts)}
}

// Stats summarizes the roster's attendance over `rng`.
func (s *Session) Stats(rng DateRange) (Report, error) {
	students, err := s.Students()
	if err != nil {
		return Report{}, err
	}
	return Summarize(s.store.Snapshot(), student.IDs(students), rng), nil
}
