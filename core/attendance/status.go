package attendance

import (
	"errors"
	"fmt"

	"github.com/trezcool/chamada/core"
)

var ErrInvalidStatus = errors.New("invalid attendance status")

// Status is the attendance of one student on one day.
// Unset is the state of a cell that was never written; it is not a storable status.
type Status uint8

const (
	Unset Status = iota
	Present
	Absent
	Justified
)

var statusNames = [...]string{
	Unset:     "unset",
	Present:   "present",
	Absent:    "absent",
	Justified: "justified",
}

// Statuses lists the storable statuses.
var Statuses = []Status{Present, Absent, Justified}

func ParseStatus(s string) (Status, error) {
	s = core.CleanString(s, true /* lower */)
	for _, st := range Statuses {
		if statusNames[st] == s {
			return st, nil
		}
	}
	return Unset, ErrInvalidStatus
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// IsValid reports whether s may be written to a Store.
func (s Status) IsValid() bool {
	return s == Present || s == Absent || s == Justified
}

// Presence is the presence ledger value of the status; ok is false for Unset.
func (s Status) Presence() (present, ok bool) {
	return s == Present, s != Unset
}

// Justification is the justification ledger value of the status.
func (s Status) Justification() bool {
	return s == Justified
}

func (s Status) MarshalText() ([]byte, error) {
	if int(s) >= len(statusNames) {
		return nil, ErrInvalidStatus
	}
	return []byte(statusNames[s]), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	if core.CleanString(string(text), true) == statusNames[Unset] {
		*s = Unset
		return nil
	}
	st, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// presenceWrite is the cell after writing presence=`present`.
// Marking absent keeps a justification: the justification ledger is left untouched.
func presenceWrite(cur Status, present bool) Status {
	if present {
		return Present
	}
	if cur == Justified {
		return Justified
	}
	return Absent
}

// justificationWrite is the cell after writing justification=`justified`.
// A justification forces presence=false; removing one leaves presence untouched.
func justificationWrite(cur Status, justified bool) Status {
	if justified {
		return Justified
	}
	if cur == Justified {
		return Absent
	}
	return cur
}
