// Package due computes when a maintenance service is next due.
package due

import (
	"fmt"
	"math"
	"time"

	appErrors "carcare/internal/pkg/errors"
)

// TimeBasedIntervalYears is the fixed replacement period for time-based
// services such as batteries.
const TimeBasedIntervalYears = 2

// ServiceRecord describes the last time a service was performed.
type ServiceRecord struct {
	ServiceName            string
	IsTimeBased            bool
	LastServiceDate        time.Time
	OdometerAtService      *float64 // required for distance-based services
	IntervalDistance       *float64 // required for distance-based services
	AverageMonthlyDistance *float64 // optional usage rate used to project a date
}

// Due is the next due date and, for distance-based services, the next due distance.
type Due struct {
	DueDate     time.Time
	DueDistance *float64
}

// ComputeNextDue returns the next due date/distance for the record.
// LastServiceDate is taken as-is; callers reject future dates.
func ComputeNextDue(record ServiceRecord) (Due, error) {
	if record.IsTimeBased {
		return Due{DueDate: record.LastServiceDate.AddDate(TimeBasedIntervalYears, 0, 0)}, nil
	}

	odometer, err := requirePositive("odometerAtService", record.OdometerAtService)
	if err != nil {
		return Due{}, err
	}
	interval, err := requirePositive("intervalDistance", record.IntervalDistance)
	if err != nil {
		return Due{}, err
	}

	dueDistance := odometer + interval
	result := Due{DueDate: record.LastServiceDate, DueDistance: &dueDistance}

	if record.AverageMonthlyDistance == nil {
		return result, nil
	}
	avg := *record.AverageMonthlyDistance
	if math.IsNaN(avg) || math.IsInf(avg, 0) || avg < 0 {
		return Due{}, fmt.Errorf("%w: averageMonthlyDistance must be a non-negative number", appErrors.ErrInvalidInput)
	}
	if avg == 0 {
		return result, nil
	}

	result.DueDate = record.LastServiceDate.AddDate(0, MonthsUntilDue(interval, avg), 0)
	return result, nil
}

// MonthsUntilDue converts a distance interval into whole months at the given
// usage rate, never less than one month.
func MonthsUntilDue(interval, averageMonthly float64) int {
	months := int(math.Round(interval / averageMonthly))
	if months < 1 {
		return 1
	}
	return months
}

func requirePositive(field string, v *float64) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: %s is required for distance-based services", appErrors.ErrInvalidInput, field)
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive number", appErrors.ErrInvalidInput, field)
	}
	return *v, nil
}
