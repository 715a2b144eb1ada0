package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wrapads/internal/models"
)

func day(s string) time.Time {
	return models.MustParseDate(s).Time
}

func TestDays(t *testing.T) {
	table := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"january", "2025-01-01", "2025-01-31", 30},
		{"ten days", "2025-01-01", "2025-01-11", 10},
		{"same day", "2025-01-01", "2025-01-01", 0},
		{"reversed", "2025-01-31", "2025-01-01", 30},
		{"partial day rounds up", "2025-01-01", "2025-01-02T01:00:00Z", 2},
		{"leap year february", "2024-02-01", "2024-03-01", 29},
	}

	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			assert.Equal(t, e.want, Days(day(e.start), day(e.end)))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1 days", FormatDuration(1))
	assert.Equal(t, "29 days", FormatDuration(29))
	assert.Equal(t, "1 month", FormatDuration(30))
	assert.Equal(t, "1 month 5 days", FormatDuration(35))
	assert.Equal(t, "2 months", FormatDuration(60))
	assert.Equal(t, "3 months 1 days", FormatDuration(91))

	assert.Equal(t, "1 month", Duration(day("2025-01-01"), day("2025-01-31")))
}

func TestTotalCost(t *testing.T) {
	cost := TotalCost(models.AmountFromInt(50), day("2025-01-01"), day("2025-01-11"), 3)
	assert.Equal(t, "1500.00", Money(cost))

	amount, err := models.ParseAmount("12.5")
	assert.NoError(t, err)
	cost = TotalCost(amount, day("2025-03-01"), day("2025-03-04"), 2)
	assert.Equal(t, "75.00", Money(cost))

	assert.Equal(t, "0.00", Money(TotalCost(models.Amount{}, day("2025-01-01"), day("2025-02-01"), 5)))
}

func TestDriverEarnings(t *testing.T) {
	earnings := DriverEarnings(models.AmountFromFloat(49.99), day("2025-01-01"), day("2025-01-11"))
	assert.Equal(t, "499.90", Money(earnings))
}

func TestSpotsLeftAndAvailability(t *testing.T) {
	assert.Equal(t, 0, SpotsLeft(10, 10))
	assert.Equal(t, -2, SpotsLeft(3, 5))

	full := AvailabilityFor(SpotsLeft(10, 10))
	assert.False(t, full.CanApply)
	assert.Equal(t, "Fully Booked", full.Label)

	over := AvailabilityFor(-2)
	assert.False(t, over.CanApply)
	assert.Equal(t, "Fully Booked", over.Label)

	hot := AvailabilityFor(3)
	assert.True(t, hot.CanApply)
	assert.True(t, hot.Hot)
	assert.Equal(t, "Only 3 spots left!", hot.Notice)

	open := AvailabilityFor(4)
	assert.True(t, open.CanApply)
	assert.False(t, open.Hot)
	assert.Equal(t, "Apply Now", open.Label)
	assert.Empty(t, open.Notice)
}

func TestNewQuote(t *testing.T) {
	q := NewQuote(models.AmountFromInt(50), day("2025-01-01"), day("2025-01-11"), 3)
	assert.Equal(t, Quote{
		Days:            10,
		Duration:        "10 days",
		PaymentPerDay:   "50.00",
		RequiredDrivers: 3,
		DriverEarnings:  "500.00",
		TotalCost:       "1500.00",
	}, q)
}
