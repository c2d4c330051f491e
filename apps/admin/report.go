package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/chamada/core"
	"github.com/trezcool/chamada/core/attendance"
	"github.com/trezcool/chamada/core/student"
	notifysvc "github.com/trezcool/chamada/services/notify"
	inmemdb "github.com/trezcool/chamada/storage/inmem"
)

// newSession opens a session on `date`: the roster is defaulted Present on that day only.
func (cli *commandLine) newSession(date attendance.DateKey) (*attendance.Session, error) {
	db, err := inmemdb.Open()
	if err != nil {
		return nil, errors.Wrap(err, "opening roster")
	}

	validate := validator.New()
	translator := core.NewTranslator(cli.conf.Locale)
	core.InitValidators(validate, translator)
	attendance.InitValidators(validate, translator)
	if err = attendance.RegisterMessages(translator); err != nil {
		return nil, err
	}

	return attendance.NewSession(
		attendance.SessionDeps{
			Roster:     inmemdb.NewStudentRepository(db),
			Notifier:   notifysvc.NewConsoleServiceMock(),
			Logger:     cli.logger,
			Validate:   validate,
			Translator: translator,
		},
		date,
	), nil
}

// report replays the marks of a class into a new session and prints its statistics.
func (cli *commandLine) report(rosterPath, marksPath, from, to string) error {
	marks, marked, err := readMarks(marksPath)
	if err != nil {
		return err
	}

	// open on the first marked day, which the marks default to Present anyway
	session, err := cli.newSession(marked.From)
	if err != nil {
		return err
	}
	if err = loadRoster(session, rosterPath); err != nil {
		return err
	}
	if err = applyMarks(session, marks, marksPath); err != nil {
		return err
	}

	rng := marked
	if from != "" {
		if rng.From, err = attendance.ParseDateKey(from); err != nil {
			return errors.Wrap(err, "-from")
		}
	}
	if to != "" {
		if rng.To, err = attendance.ParseDateKey(to); err != nil {
			return errors.Wrap(err, "-to")
		}
	}
	if rng, err = attendance.NewDateRange(rng.From, rng.To); err != nil {
		return err
	}

	students, err := session.Students()
	if err != nil {
		return err
	}
	rep, err := session.Stats(rng)
	if err != nil {
		return err
	}
	printReport(cli.out, rep, students, session.Calendar(&rng))
	return nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return rows, nil
}

// loadRoster expects `id,name,registration` rows, with an optional header.
func loadRoster(session *attendance.Session, path string) error {
	rows, err := readCSV(path)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if i == 0 && strings.EqualFold(row[0], "id") {
			continue
		}
		ns := student.NewStudent{ID: row[0], Name: row[1], Registration: row[2]}
		if _, err = session.AddStudent(ns); err != nil {
			return errors.Wrapf(err, "%s:%d", path, i+1)
		}
	}
	return nil
}

type mark struct {
	line      int
	date      attendance.DateKey
	studentID string
	status    attendance.Status
}

// readMarks expects `date,student_id,status` rows, with an optional header, and returns the
// marks in file order along with the range of marked days.
func readMarks(path string) ([]mark, attendance.DateRange, error) {
	var rng attendance.DateRange
	rows, err := readCSV(path)
	if err != nil {
		return nil, rng, err
	}

	marks := make([]mark, 0, len(rows))
	for i, row := range rows {
		if i == 0 && strings.EqualFold(row[0], "date") {
			continue
		}
		date, err := attendance.ParseDateKey(row[0])
		if err != nil {
			return nil, rng, errors.Wrapf(err, "%s:%d", path, i+1)
		}
		status, err := attendance.ParseStatus(row[2])
		if err != nil {
			return nil, rng, errors.Wrapf(err, "%s:%d", path, i+1)
		}
		marks = append(marks, mark{line: i + 1, date: date, studentID: core.CleanString(row[1]), status: status})

		if rng.From.IsZero() || date < rng.From {
			rng.From = date
		}
		if date > rng.To {
			rng.To = date
		}
	}
	if len(marks) == 0 {
		return nil, rng, errors.Errorf("%s: no attendance marks", path)
	}
	return marks, rng, nil
}

// applyMarks opens each day of `marks` once, defaulting the roster Present on it, before its
// first mark is applied.
func applyMarks(session *attendance.Session, marks []mark, path string) error {
	opened := make(map[attendance.DateKey]bool)
	for _, m := range marks {
		if !opened[m.date] {
			if err := session.OnDateChange(m.date); err != nil {
				return err
			}
			opened[m.date] = true
		}
		if _, err := session.SetStatus(m.studentID, m.date, m.status); err != nil {
			return errors.Wrapf(err, "%s:%d", path, m.line)
		}
	}
	return nil
}

func printReport(out io.Writer, rep attendance.Report, students []student.Student, cal attendance.Calendar) {
	names := make(map[string]string, len(students))
	for _, s := range students {
		names[s.ID] = s.Name
	}
	row := func(w io.Writer, label string, s attendance.Summary) {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.1f%%\n", label, s.Present, s.Absent, s.Justified, s.Unset, s.Rate*100)
	}

	_, _ = fmt.Fprintf(out, "Attendance report %s .. %s\n\n", rep.Range.From, rep.Range.To)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DATE\tPRESENT\tABSENT\tJUSTIFIED\tUNSET\tRATE")
	for _, d := range rep.ByDate {
		row(w, d.Date.String(), d.Summary)
	}
	row(w, "TOTAL", rep.Totals)
	_ = w.Flush()
	_, _ = fmt.Fprintln(out)

	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "STUDENT\tPRESENT\tABSENT\tJUSTIFIED\tUNSET\tRATE")
	for _, s := range rep.ByStudent {
		row(w, names[s.StudentID], s.Summary)
	}
	_ = w.Flush()

	if len(cal.Days) > 0 {
		days := make([]string, len(cal.Days))
		for i, d := range cal.Days {
			days[i] = fmt.Sprintf("%s (%d)", d, cal.Counts[d])
		}
		_, _ = fmt.Fprintf(out, "\nDays with absences: %s\n", strings.Join(days, ", "))
	}
}
