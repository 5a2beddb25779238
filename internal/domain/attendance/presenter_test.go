package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestStyle_EveryStatusHasDistinctStyle(t *testing.T) {
	t.Parallel()

	seenColors := make(map[string]AttendanceStatus)
	seenOrders := make(map[int]AttendanceStatus)
	for _, status := range Statuses {
		style := status.Style()
		assert.NotEmpty(t, style.Color, "status %s has no color", status)
		assert.NotEmpty(t, style.Icon, "status %s has no icon", status)

		if prev, dup := seenOrders[style.Order]; dup {
			t.Errorf("statuses %s and %s share order %d", prev, status, style.Order)
		}
		seenOrders[style.Order] = status

		if prev, dup := seenColors[style.Color]; dup {
			t.Errorf("statuses %s and %s share color %s", prev, status, style.Color)
		}
		seenColors[style.Color] = status
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	status, err := ParseStatus("Late")
	assert.NoError(t, err)
	assert.Equal(t, StatusLate, status)

	_, err = ParseStatus("waiting_approval")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	days := []AttendanceDay{
		{Status: StatusPresent, TotalWorkHours: floatPtr(8), OvertimeHours: floatPtr(1.5)},
		{Status: StatusPresent, TotalWorkHours: floatPtr(7.5)},
		{Status: StatusLate, TotalWorkHours: floatPtr(6)},
		{Status: StatusAbsent},
		{Status: StatusWeekOff},
	}

	summary := Summarize(days)

	assert.Equal(t, 2, summary.Counts[StatusPresent])
	assert.Equal(t, 1, summary.Counts[StatusLate])
	assert.Equal(t, 1, summary.Counts[StatusAbsent])
	assert.Equal(t, 1, summary.Counts[StatusWeekOff])
	assert.InDelta(t, 21.5, summary.TotalHours, 1e-9)
	assert.InDelta(t, 1.5, summary.TotalOvertime, 1e-9)
}

func TestSummarize_AbsentHoursCountAsZero(t *testing.T) {
	t.Parallel()

	// Records straight off the wire may omit hour fields entirely.
	days := []AttendanceDay{
		{Status: StatusPresent},
		{Status: StatusHalfDay},
	}

	summary := Summarize(days)
	assert.Zero(t, summary.TotalHours)
	assert.Zero(t, summary.TotalOvertime)
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	summary := Summarize(nil)
	assert.Empty(t, summary.Counts)
	assert.Zero(t, summary.TotalHours)
}
