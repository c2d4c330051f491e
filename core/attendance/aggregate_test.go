package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsurePresent(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetStatus("s2", testDate, Justified))

	assert.Equal(t, Unset, s.Status("s1", testDate))

	n := EnsurePresent(s, []string{"s1", "s2", "s3"}, testDate)
	assert.Equal(t, 2, n)
	assert.Equal(t, Present, s.Status("s1", testDate))
	assert.Equal(t, Justified, s.Status("s2", testDate))
	assert.Equal(t, Present, s.Status("s3", testDate))

	// runs once per pair
	require.NoError(t, s.SetStatus("s1", testDate, Absent))
	assert.Zero(t, EnsurePresent(s, []string{"s1", "s2", "s3"}, testDate))
	assert.Equal(t, Absent, s.Status("s1", testDate))

	// other days are untouched
	assert.Equal(t, Unset, s.Status("s1", testDate.AddDays(1)))
	assert.Equal(t, 2, EnsurePresent(s, []string{"s1", "s2"}, testDate, testDate.AddDays(1)))
}

func TestAbsenceCounts(t *testing.T) {
	s := NewStore()
	set := func(id string, d DateKey, st Status) {
		require.NoError(t, s.SetStatus(id, d, st))
	}
	set("a", "2024-03-10", Justified)
	set("b", "2024-03-10", Present)
	set("a", "2024-03-11", Absent)
	set("b", "2024-03-11", Absent)
	set("c", "2024-03-11", Justified)
	set("a", "2024-03-12", Present)
	set("a", "2024-04-01", Absent)

	counts := AbsenceCounts(s.Snapshot())
	assert.Equal(t, map[DateKey]int{"2024-03-11": 2, "2024-04-01": 1}, counts)
	_, ok := counts["2024-03-10"]
	assert.False(t, ok, "justified-only day must be omitted")

	assert.Equal(t, []DateKey{"2024-03-11", "2024-04-01"}, AbsenceDays(counts))

	march, err := NewDateRange("2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, map[DateKey]int{"2024-03-11": 2}, AbsenceCountsIn(s.Snapshot(), march))

	assert.Empty(t, AbsenceCounts(NewStore().Snapshot()))
}

func TestScenario(t *testing.T) {
	const d = DateKey("2024-03-10")
	s := NewStore()
	EnsurePresent(s, []string{"S1", "S2"}, d)
	assert.Equal(t, Present, s.Status("S1", d))
	assert.Equal(t, Present, s.Status("S2", d))

	require.NoError(t, s.SetStatus("S1", d, Absent))
	assert.Equal(t, Absent, s.Status("S1", d))
	assert.Equal(t, 1, AbsenceCounts(s.Snapshot())[d])

	require.NoError(t, s.SetStatus("S1", d, Justified))
	assert.Equal(t, Justified, s.Status("S1", d))
	_, ok := AbsenceCounts(s.Snapshot())[d]
	assert.False(t, ok)

	require.NoError(t, s.SetStatus("S1", d, Present))
	assert.Equal(t, Present, s.Status("S1", d))
	justified, ok := s.JustificationLedger()["S1"][d]
	assert.True(t, ok)
	assert.False(t, justified)
}

func TestSummarize(t *testing.T) {
	s := NewStore()
	students := []string{"s1", "s2", "s3", "s4", "s5"}
	EnsurePresent(s, students, testDate)
	require.NoError(t, s.SetStatus("s4", testDate, Absent))
	require.NoError(t, s.SetStatus("s5", testDate, Justified))

	t.Run("single date", func(t *testing.T) {
		rep := Summarize(s.Snapshot(), students, SingleDay(testDate))
		assert.Equal(t, Summary{Present: 3, Absent: 1, Justified: 1, Rate: 0.6}, rep.Totals)
		require.Len(t, rep.ByDate, 1)
		assert.Equal(t, rep.Totals, rep.ByDate[0].Summary)
		require.Len(t, rep.ByStudent, 5)
		assert.Equal(t, "s4", rep.ByStudent[3].StudentID)
		assert.Equal(t, Summary{Absent: 1}, rep.ByStudent[3].Summary)
	})

	t.Run("unset cells are excluded from the rate", func(t *testing.T) {
		rng, err := NewDateRange(testDate, testDate.AddDays(1))
		require.NoError(t, err)
		rep := Summarize(s.Snapshot(), students, rng)
		assert.Equal(t, Summary{Present: 3, Absent: 1, Justified: 1, Unset: 5, Rate: 0.6}, rep.Totals)
		require.Len(t, rep.ByDate, 2)
		assert.Equal(t, Summary{Unset: 5}, rep.ByDate[1].Summary)
		assert.Equal(t, Summary{Present: 1, Unset: 1, Rate: 1}, rep.ByStudent[0].Summary)
	})

	t.Run("no students", func(t *testing.T) {
		rep := Summarize(s.Snapshot(), nil, SingleDay(testDate))
		assert.Equal(t, Summary{}, rep.Totals)
		assert.Empty(t, rep.ByStudent)
	})
}
