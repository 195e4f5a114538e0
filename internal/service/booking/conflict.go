package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/bassemzed/scheduleback/internal/domain"
)

// hasConflict reports whether the half-open interval [start, end) intersects
// any existing appointment other than excludeID. Two intervals [a,b) and
// [c,d) intersect iff a < d && c < b, so slots that merely touch are fine.
//
// This is a full scan of the schedule per call. Fine at the current scale;
// switch to a sorted-by-start window if the table ever grows past that.
func hasConflict(start, end time.Time, existing []domain.Appointment, excludeID uuid.UUID) bool {
	for _, a := range existing {
		if excludeID != uuid.Nil && a.ID == excludeID {
			continue
		}
		if start.Before(a.DateTimeTo) && a.DateTimeFrom.Before(end) {
			return true
		}
	}
	return false
}
