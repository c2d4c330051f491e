package attendance

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDate = DateKey("2024-03-10")

// checkInvariants fails if any written cell is both present and justified.
func checkInvariants(t *testing.T, s *Store) {
	t.Helper()
	presence, justification := s.PresenceLedger(), s.JustificationLedger()
	for id, days := range justification {
		for d, justified := range days {
			if justified && presence[id][d] {
				t.Errorf("%s on %s: present and justified", id, d)
			}
		}
	}
}

func TestStore_SetStatus(t *testing.T) {
	all := []Status{Unset, Present, Absent, Justified}

	for _, from := range all {
		for _, to := range Statuses {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				s := NewStore()
				if from != Unset {
					require.NoError(t, s.SetStatus("s1", testDate, from))
				}
				require.NoError(t, s.SetStatus("s1", testDate, to))

				assert.Equal(t, to, s.Status("s1", testDate))
				present, ok := s.PresenceLedger()["s1"][testDate]
				assert.True(t, ok)
				assert.Equal(t, to == Present, present)
				assert.Equal(t, to == Justified, s.JustificationLedger()["s1"][testDate])
				checkInvariants(t, s)
			})
		}
	}
}

func TestStore_SetStatus_invalid(t *testing.T) {
	s := NewStore()
	for _, st := range []Status{Unset, Status(42)} {
		assert.Equal(t, ErrInvalidStatus, s.SetStatus("s1", testDate, st))
	}
	assert.Equal(t, Unset, s.Status("s1", testDate))
	assert.Zero(t, s.Version())
}

func TestStore_SetStatus_idempotent(t *testing.T) {
	for _, st := range Statuses {
		t.Run(st.String(), func(t *testing.T) {
			once, twice := NewStore(), NewStore()
			require.NoError(t, once.SetStatus("s1", testDate, st))
			require.NoError(t, twice.SetStatus("s1", testDate, st))
			require.NoError(t, twice.SetStatus("s1", testDate, st))

			assert.Equal(t, once.PresenceLedger(), twice.PresenceLedger())
			assert.Equal(t, once.JustificationLedger(), twice.JustificationLedger())
		})
	}
}

func TestStore_SetAttendance(t *testing.T) {
	tests := []struct {
		name      string
		from      Status
		isPresent bool
		want      Status
	}{
		{name: "unset: present", from: Unset, isPresent: true, want: Present},
		{name: "unset: absent", from: Unset, isPresent: false, want: Absent},
		{name: "absent: present", from: Absent, isPresent: true, want: Present},
		{name: "present: absent", from: Present, isPresent: false, want: Absent},
		{name: "justified: present clears justification", from: Justified, isPresent: true, want: Present},
		{name: "justified: absent keeps justification", from: Justified, isPresent: false, want: Justified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			if tt.from != Unset {
				require.NoError(t, s.SetStatus("s1", testDate, tt.from))
			}
			s.SetAttendance("s1", testDate, tt.isPresent)
			assert.Equal(t, tt.want, s.Status("s1", testDate))
			checkInvariants(t, s)
		})
	}
}

func TestStore_SetJustified(t *testing.T) {
	tests := []struct {
		name        string
		from        Status
		isJustified bool
		want        Status
	}{
		{name: "unset: justify", from: Unset, isJustified: true, want: Justified},
		{name: "unset: unjustify stays unset", from: Unset, isJustified: false, want: Unset},
		{name: "present: justify forces absence", from: Present, isJustified: true, want: Justified},
		{name: "present: unjustify", from: Present, isJustified: false, want: Present},
		{name: "absent: justify", from: Absent, isJustified: true, want: Justified},
		{name: "absent: unjustify", from: Absent, isJustified: false, want: Absent},
		{name: "justified: unjustify leaves presence", from: Justified, isJustified: false, want: Absent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			if tt.from != Unset {
				require.NoError(t, s.SetStatus("s1", testDate, tt.from))
			}
			s.SetJustified("s1", testDate, tt.isJustified)
			assert.Equal(t, tt.want, s.Status("s1", testDate))
			checkInvariants(t, s)
		})
	}
}

func TestStore_unknownStudent(t *testing.T) {
	s := NewStore()
	assert.Equal(t, Unset, s.Status("nobody", testDate))

	require.NoError(t, s.SetStatus("nobody", testDate, Absent))
	assert.Equal(t, Absent, s.Status("nobody", testDate))
}

func TestStore_InitPresent(t *testing.T) {
	s := NewStore()
	assert.True(t, s.InitPresent("s1", testDate))
	assert.Equal(t, Present, s.Status("s1", testDate))

	require.NoError(t, s.SetStatus("s1", testDate, Absent))
	assert.False(t, s.InitPresent("s1", testDate))
	assert.Equal(t, Absent, s.Status("s1", testDate))
}

func TestStore_Version(t *testing.T) {
	s := NewStore()
	v0 := s.Version()

	s.SetJustified("s1", testDate, false) // unset cell: nothing written
	assert.Equal(t, v0, s.Version())

	s.SetAttendance("s1", testDate, true)
	v1 := s.Version()
	assert.Greater(t, v1, v0)

	sheet := s.Snapshot()
	require.NoError(t, s.SetStatus("s1", testDate, Absent))
	assert.Greater(t, s.Version(), v1)

	// snapshots do not see later writes
	assert.Equal(t, v1, sheet.Version())
	assert.Equal(t, Present, sheet.Status("s1", testDate))
}

func TestSheet_Records(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetStatus("b", "2024-03-11", Absent))
	require.NoError(t, s.SetStatus("a", "2024-03-11", Justified))
	require.NoError(t, s.SetStatus("b", "2024-03-10", Present))

	want := []Record{
		{StudentID: "b", Date: "2024-03-10", Status: Present},
		{StudentID: "a", Date: "2024-03-11", Status: Justified},
		{StudentID: "b", Date: "2024-03-11", Status: Absent},
	}
	assert.Equal(t, want, s.Snapshot().Records())
	assert.Equal(t, 3, s.Snapshot().Len())
}

func TestStore_concurrentWriters(t *testing.T) {
	s := NewStore()
	students := []string{"s1", "s2", "s3"}
	days := []DateKey{"2024-03-10", "2024-03-11"}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed))
			for i := 0; i < 500; i++ {
				id, d := students[rnd.Intn(len(students))], days[rnd.Intn(len(days))]
				switch rnd.Intn(3) {
				case 0:
					_ = s.SetStatus(id, d, Statuses[rnd.Intn(len(Statuses))])
				case 1:
					s.SetAttendance(id, d, rnd.Intn(2) == 0)
				default:
					s.SetJustified(id, d, rnd.Intn(2) == 0)
				}
			}
		}(int64(w))
	}
	wg.Wait()
	checkInvariants(t, s)
}
