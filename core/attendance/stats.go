package attendance

// Summary counts statuses. Unset cells are counted apart and never enter the rate.
type Summary struct {
	Present   int     `json:"present"`
	Absent    int     `json:"absent"`
	Justified int     `json:"justified"`
	Unset     int     `json:"unset"`
	Rate      float64 `json:"rate"`
}

func (s *Summary) add(st Status) {
	switch st {
	case Present:
		s.Present++
	case Absent:
		s.Absent++
	case Justified:
		s.Justified++
	default:
		s.Unset++
	}
}

// Marked is the number of resolved cells.
func (s Summary) Marked() int {
	return s.Present + s.Absent + s.Justified
}

func (s *Summary) computeRate() {
	if total := s.Marked(); total > 0 {
		s.Rate = float64(s.Present) / float64(total)
	} else {
		s.Rate = 0
	}
}

type StudentSummary struct {
	StudentID string `json:"student_id"`
	Summary
}

type DateSummary struct {
	Date DateKey `json:"date"`
	Summary
}

type Report struct {
	Range     DateRange        `json:"range"`
	Totals    Summary          `json:"totals"`
	ByStudent []StudentSummary `json:"by_student"`
	ByDate    []DateSummary    `json:"by_date"`
}

// Summarize computes the attendance of `studentIDs` over every day of `rng`.
func Summarize(sheet Sheet, studentIDs []string, rng DateRange) Report {
	days := rng.Days()
	rep := Report{
		Range:     rng,
		ByStudent: make([]StudentSummary, len(studentIDs)),
		ByDate:    make([]DateSummary, len(days)),
	}
	for i, id := range studentIDs {
		rep.ByStudent[i].StudentID = id
	}

	for j, d := range days {
		rep.ByDate[j].Date = d
		for i, id := range studentIDs {
			st := sheet.Status(id, d)
			rep.Totals.add(st)
			rep.ByStudent[i].add(st)
			rep.ByDate[j].add(st)
		}
	}

	rep.Totals.computeRate()
	for i := range rep.ByStudent {
		rep.ByStudent[i].computeRate()
	}
	for j := range rep.ByDate {
		rep.ByDate[j].computeRate()
	}
	return rep
}
