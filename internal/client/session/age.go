package session

import "time"

// birthDateLayout is the wire format the backend expects for birth dates.
const birthDateLayout = "2006-01-02"

// completedYears returns the number of full years between birth and now.
// A birthday falling exactly on now counts as already completed.
func completedYears(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
