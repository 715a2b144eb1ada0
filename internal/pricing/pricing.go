// Package pricing derives campaign durations, costs and driver earnings
// from date ranges and daily rates. Everything here is a pure function.
package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"wrapads/internal/models"
)

const (
	dayMillis   = int64(24 * time.Hour / time.Millisecond)
	daysInMonth = 30
	hotSpots    = 3
)

// Days is the inclusive day count between start and end: the absolute
// difference in milliseconds divided by one day, rounded up.
func Days(start, end time.Time) int {
	ms := end.Sub(start).Milliseconds()
	if ms < 0 {
		ms = -ms
	}
	return int((ms + dayMillis - 1) / dayMillis)
}

// FormatDuration renders a day count as "N days" below 30 days, otherwise
// as 30-day months plus the remaining days.
func FormatDuration(days int) string {
	if days < daysInMonth {
		return fmt.Sprintf("%d days", days)
	}
	months := days / daysInMonth
	rest := days % daysInMonth
	unit := "months"
	if months == 1 {
		unit = "month"
	}
	if rest > 0 {
		return fmt.Sprintf("%d %s %d days", months, unit, rest)
	}
	return fmt.Sprintf("%d %s", months, unit)
}

func Duration(start, end time.Time) string {
	return FormatDuration(Days(start, end))
}

// TotalCost is what an advertiser pays for the whole campaign:
// paymentPerDay × days × requiredDrivers.
func TotalCost(paymentPerDay models.Amount, start, end time.Time, requiredDrivers int) decimal.Decimal {
	return paymentPerDay.Decimal().
		Mul(decimal.NewFromInt(int64(Days(start, end)))).
		Mul(decimal.NewFromInt(int64(requiredDrivers)))
}

// DriverEarnings is what one driver earns over the campaign.
func DriverEarnings(paymentPerDay models.Amount, start, end time.Time) decimal.Decimal {
	return paymentPerDay.Decimal().Mul(decimal.NewFromInt(int64(Days(start, end))))
}

func SpotsLeft(requiredDrivers, applicationCount int) int {
	return requiredDrivers - applicationCount
}

type Availability struct {
	SpotsLeft int    `json:"spotsLeft"`
	CanApply  bool   `json:"canApply"`
	Label     string `json:"label"`
	Hot       bool   `json:"hot"`
	Notice    string `json:"notice,omitempty"`
}

// AvailabilityFor decides whether the apply action is enabled and how it
// is labelled.
func AvailabilityFor(spotsLeft int) Availability {
	if spotsLeft <= 0 {
		return Availability{SpotsLeft: spotsLeft, Label: "Fully Booked"}
	}
	a := Availability{SpotsLeft: spotsLeft, CanApply: true, Label: "Apply Now"}
	if spotsLeft <= hotSpots {
		a.Hot = true
		a.Notice = fmt.Sprintf("Only %d spots left!", spotsLeft)
	}
	return a
}

// Quote is the cost preview shown while a campaign is being drafted.
type Quote struct {
	Days            int    `json:"days"`
	Duration        string `json:"duration"`
	PaymentPerDay   string `json:"paymentPerDay"`
	RequiredDrivers int    `json:"requiredDrivers"`
	DriverEarnings  string `json:"driverEarnings"`
	TotalCost       string `json:"totalCost"`
}

func NewQuote(paymentPerDay models.Amount, start, end time.Time, requiredDrivers int) Quote {
	days := Days(start, end)
	return Quote{
		Days:            days,
		Duration:        FormatDuration(days),
		PaymentPerDay:   paymentPerDay.String(),
		RequiredDrivers: requiredDrivers,
		DriverEarnings:  Money(DriverEarnings(paymentPerDay, start, end)),
		TotalCost:       Money(TotalCost(paymentPerDay, start, end, requiredDrivers)),
	}
}

// Money formats a monetary value with two decimal places.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
