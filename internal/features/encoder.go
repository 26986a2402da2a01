package features

import (
	"errors"
	"time"

	"github.com/Domenick1991/farecast/internal/domain"
)

// DurationHours stands in for flight duration, which the form never asks for.
// It is the training-set mean and must stay fixed for predictions to line up.
const DurationHours = 12.22

const (
	ColumnStops       = "stops"
	ColumnDuration    = "duration"
	ColumnDaysLeft    = "days_left"
	ColumnClass       = "class"
	ColumnSeasonality = "seasonality_score"

	PrefixRoute         = "route"
	PrefixBookingWindow = "booking_window"
	PrefixAirline       = "airline"
)

// Derived holds the intermediate values computed while encoding a request.
type Derived struct {
	DaysLeft      int
	Duration      float64
	Class         int
	Seasonality   int
	Route         string
	BookingWindow BookingWindow
}

// Row is one encoded request. Values is aligned with the schema it was encoded against.
type Row struct {
	Values  []float64
	Derived Derived
	schema  *Schema
}

// Value returns the encoded value of a column; false when the schema has no such column.
func (r Row) Value(column string) (float64, bool) {
	if r.schema == nil {
		return 0, false
	}
	i, ok := r.schema.Index(column)
	if !ok {
		return 0, false
	}
	return r.Values[i], true
}

func RouteOf(origin, destination domain.City) string {
	return string(origin) + "_" + string(destination)
}

// IndicatorColumn names the one-hot column for a categorical value.
func IndicatorColumn(field, value string) string {
	return field + "_" + value
}

// Encode turns a booking request into the row the model expects. Columns the schema does
// not know are dropped and schema columns the request does not produce stay zero.
// Callers validate the request first.
func Encode(req domain.BookingRequest, today time.Time, schema *Schema) (Row, error) {
	if schema == nil {
		return Row{}, errors.New("encode: nil schema")
	}

	daysLeft := DaysLeft(req.DepartureDate, today)
	derived := Derived{
		DaysLeft:      daysLeft,
		Duration:      DurationHours,
		Seasonality:   SeasonalityScore(req.DepartureDate),
		Route:         RouteOf(req.Origin, req.Destination),
		BookingWindow: BookingWindowFor(daysLeft),
	}
	if req.Class == domain.CabinBusiness {
		derived.Class = 1
	}

	values := make([]float64, schema.Len())
	set := func(column string, v float64) {
		if i, ok := schema.Index(column); ok {
			values[i] = v
		}
	}

	set(ColumnStops, float64(req.Stops))
	set(ColumnDuration, derived.Duration)
	set(ColumnDaysLeft, float64(derived.DaysLeft))
	set(ColumnClass, float64(derived.Class))
	set(ColumnSeasonality, float64(derived.Seasonality))
	set(IndicatorColumn(PrefixRoute, derived.Route), 1)
	set(IndicatorColumn(PrefixBookingWindow, string(derived.BookingWindow)), 1)
	set(IndicatorColumn(PrefixAirline, string(req.Airline)), 1)

	return Row{Values: values, Derived: derived, schema: schema}, nil
}
