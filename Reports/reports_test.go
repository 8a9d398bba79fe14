package Reports

import (
	"testing"
	"time"

	"MediCarePro/Models"

	"github.com/stretchr/testify/assert"
)

func appointmentAt(year int, month time.Month, status string) Models.Appointment {
	return Models.Appointment{
		DateTime: time.Date(year, month, 15, 10, 0, 0, 0, time.UTC),
		Status:   status,
	}
}

func TestCountByStatusDefaultsToZero(t *testing.T) {
	counts := CountByStatus(nil)
	assert.Equal(t, 0, counts.Pending)
	assert.Equal(t, 0, counts.Confirmed)
	assert.Equal(t, 0, counts.Completed)
	assert.Equal(t, 0, counts.Rejected)
}

func TestCountByStatusNeverOmitsAKey(t *testing.T) {
	appointments := []Models.Appointment{
		appointmentAt(2025, time.December, Models.StatusPending),
		appointmentAt(2025, time.December, Models.StatusPending),
		appointmentAt(2026, time.January, Models.StatusConfirmed),
	}
	counts := CountByStatus(appointments)
	assert.Equal(t, 2, counts.Pending)
	assert.Equal(t, 1, counts.Confirmed)
	assert.Equal(t, 0, counts.Completed)
	assert.Equal(t, 0, counts.Rejected)
}

func TestCountByMonthFirstSeenOrder(t *testing.T) {
	appointments := []Models.Appointment{
		appointmentAt(2025, time.November, Models.StatusPending),
		appointmentAt(2025, time.December, Models.StatusConfirmed),
		appointmentAt(2025, time.December, Models.StatusRejected),
		appointmentAt(2026, time.January, Models.StatusPending),
		appointmentAt(2026, time.January, Models.StatusPending),
		appointmentAt(2026, time.January, Models.StatusConfirmed),
	}

	monthly := CountByMonth(appointments)
	assert.Equal(t, []string{"Nov 2025", "Dec 2025", "Jan 2026"}, monthly.Labels)
	assert.Equal(t, []int{1, 2, 3}, monthly.Counts)
}

func TestCountByMonthEmpty(t *testing.T) {
	monthly := CountByMonth(nil)
	assert.Empty(t, monthly.Labels)
	assert.Empty(t, monthly.Counts)
	assert.NotNil(t, monthly.Labels)
	assert.NotNil(t, monthly.Counts)
}
