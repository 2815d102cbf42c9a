package profile

import (
	"time"

	"github.com/BruksfildServices01/profile-catalog/internal/timezone"
)

// todayIn returns a clock yielding the current calendar date in tz.
func todayIn(tz string) func() time.Time {
	return func() time.Time {
		return timezone.DateOf(timezone.NowIn(tz))
	}
}
