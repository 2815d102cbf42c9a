package catalog

import (
	"time"

	"github.com/BruksfildServices01/profile-catalog/internal/timezone"
)

// DaysPerYear is the fixed year length used for age: leap days are not
// counted separately.
const DaysPerYear = 365

// Age returns floor((today - birthDate) / 365 days). Birth dates after
// today yield 0.
func Age(birthDate, today time.Time) int {
	days := daysBetween(birthDate, today)
	if days < 0 {
		return 0
	}
	return days / DaysPerYear
}

// OldestBirthDateForAge is the earliest birth date whose Age is still
// exactly years: anyone born on or after it is at most years old.
func OldestBirthDateForAge(years int, today time.Time) time.Time {
	return timezone.DateOf(today).AddDate(0, 0, -(years+1)*DaysPerYear+1)
}

// LatestBirthDateForAge is the latest birth date whose Age reaches years.
func LatestBirthDateForAge(years int, today time.Time) time.Time {
	return timezone.DateOf(today).AddDate(0, 0, -years*DaysPerYear)
}

func daysBetween(from, to time.Time) int {
	d := timezone.DateOf(to).Sub(timezone.DateOf(from))
	return int(d.Hours() / 24)
}
