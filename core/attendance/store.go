package attendance

import (
	"sort"
	"sync"
)

type cellKey struct {
	studentID string
	date      DateKey
}

// Record is one written cell of a Store.
type Record struct {
	StudentID string  `json:"student_id"`
	Date      DateKey `json:"date"`
	Status    Status  `json:"status"`
}

// Ledger is a per-student, per-day boolean record: {studentID: {date: value}}.
type Ledger map[string]map[DateKey]bool

// Store is the attendance of one editing session.
// Presence and justification live in a single cell per (student, day), so a cell can never be
// both present and justified. Cells are only ever written, never removed.
// A Store is safe for concurrent use; both ledger values of a cell change under one lock.
type Store struct {
	mu      sync.RWMutex
	cells   map[cellKey]Status
	version uint64
}

func NewStore() *Store {
	return &Store{cells: make(map[cellKey]Status)}
}

// Status returns Unset when the cell was never written. Unknown students are not an error.
func (s *Store) Status(studentID string, date DateKey) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cells[cellKey{studentID, date}]
}

// SetAttendance writes the presence ledger. Marking present clears any justification.
func (s *Store) SetAttendance(studentID string, date DateKey, isPresent bool) {
	s.write(studentID, date, func(cur Status) Status {
		return presenceWrite(cur, isPresent)
	})
}

// SetJustified writes the justification ledger. Justifying forces the student absent;
// removing a justification leaves presence as is, so a justified cell becomes Absent.
func (s *Store) SetJustified(studentID string, date DateKey, isJustified bool) {
	s.write(studentID, date, func(cur Status) Status {
		return justificationWrite(cur, isJustified)
	})
}

// SetStatus writes both ledgers of the cell: presence first, then justification.
func (s *Store) SetStatus(studentID string, date DateKey, status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	s.write(studentID, date, func(cur Status) Status {
		switch status {
		case Present:
			return presenceWrite(cur, true)
		case Absent:
			return justificationWrite(presenceWrite(cur, false), false)
		default: // Justified
			return justificationWrite(presenceWrite(cur, false), true)
		}
	})
	return nil
}

// InitPresent marks the cell Present if it is Unset, and reports whether it did.
func (s *Store) InitPresent(studentID string, date DateKey) bool {
	key := cellKey{studentID, date}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cells[key] != Unset {
		return false
	}
	s.cells[key] = Present
	s.version++
	return true
}

func (s *Store) write(studentID string, date DateKey, fn func(cur Status) Status) {
	key := cellKey{studentID, date}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(s.cells[key])
	if next == Unset {
		// a justification removed from a never-marked cell: nothing to record
		return
	}
	s.cells[key] = next
	s.version++
}

// Version increases on every write.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Snapshot returns a copy of the current cells.
func (s *Store) Snapshot() Sheet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cells := make(map[cellKey]Status, len(s.cells))
	for k, v := range s.cells {
		cells[k] = v
	}
	return Sheet{cells: cells, version: s.version}
}

// PresenceLedger returns {studentID: {date: isPresent}} for every written cell.
func (s *Store) PresenceLedger() Ledger {
	return s.Snapshot().PresenceLedger()
}

// JustificationLedger returns {studentID: {date: isJustified}} for every written cell.
func (s *Store) JustificationLedger() Ledger {
	return s.Snapshot().JustificationLedger()
}

// Sheet is a point-in-time, read-only copy of a Store.
type Sheet struct {
	cells   map[cellKey]Status
	version uint64
}

func (sh Sheet) Status(studentID string, date DateKey) Status {
	return sh.cells[cellKey{studentID, date}]
}

func (sh Sheet) Len() int { return len(sh.cells) }

// Version is the Store version the Sheet was taken at.
func (sh Sheet) Version() uint64 { return sh.version }

// Records lists the cells ordered by date, then student id.
func (sh Sheet) Records() []Record {
	records := make([]Record, 0, len(sh.cells))
	for k, v := range sh.cells {
		records = append(records, Record{StudentID: k.studentID, Date: k.date, Status: v})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].StudentID < records[j].StudentID
	})
	return records
}

func (sh Sheet) PresenceLedger() Ledger {
	return sh.ledger(func(st Status) bool {
		present, _ := st.Presence()
		return present
	})
}

func (sh Sheet) JustificationLedger() Ledger {
	return sh.ledger(Status.Justification)
}

func (sh Sheet) ledger(value func(Status) bool) Ledger {
	l := make(Ledger)
	for k, v := range sh.cells {
		days, ok := l[k.studentID]
		if !ok {
			days = make(map[DateKey]bool)
			l[k.studentID] = days
		}
		days[k.date] = value(v)
	}
	return l
}
