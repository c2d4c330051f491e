package attendance

// PresenceInitializer is implemented by *Store.
type PresenceInitializer interface {
	InitPresent(studentID string, date DateKey) bool
}

// EnsurePresent marks every Unset (student, day) pair of the visible set Present,
// and returns how many cells it initialized. Marked cells are never overwritten.
func EnsurePresent(store PresenceInitializer, studentIDs []string, dates ...DateKey) int {
	var n int
	for _, date := range dates {
		for _, id := range studentIDs {
			if store.InitPresent(id, date) {
				n++
			}
		}
	}
	return n
}
