package domain

import "time"

type Airline string

const (
	AirlineVistara  Airline = "Vistara"
	AirlineAirIndia Airline = "Air_India"
	AirlineIndigo   Airline = "Indigo"
	AirlineGoFirst  Airline = "GO_FIRST"
	AirlineAirAsia  Airline = "AirAsia"
	AirlineSpiceJet Airline = "SpiceJet"
)

// Airlines lists the carriers the model knows, in display order.
var Airlines = []Airline{AirlineVistara, AirlineAirIndia, AirlineIndigo, AirlineGoFirst, AirlineAirAsia, AirlineSpiceJet}

func (a Airline) Valid() bool {
	for _, known := range Airlines {
		if a == known {
			return true
		}
	}
	return false
}

type City string

const (
	CityDelhi     City = "Delhi"
	CityMumbai    City = "Mumbai"
	CityBangalore City = "Bangalore"
	CityKolkata   City = "Kolkata"
	CityHyderabad City = "Hyderabad"
	CityChennai   City = "Chennai"
)

var Cities = []City{CityDelhi, CityMumbai, CityBangalore, CityKolkata, CityHyderabad, CityChennai}

func (c City) Valid() bool {
	for _, known := range Cities {
		if c == known {
			return true
		}
	}
	return false
}

type CabinClass string

const (
	CabinEconomy  CabinClass = "Economy"
	CabinBusiness CabinClass = "Business"
)

var CabinClasses = []CabinClass{CabinEconomy, CabinBusiness}

func (c CabinClass) Valid() bool {
	return c == CabinEconomy || c == CabinBusiness
}

const MaxStops = 2

var StopCounts = []int{0, 1, 2}

// BookingRequest is the set of values a user submits for one estimate.
type BookingRequest struct {
	Airline       Airline    `json:"airline"`
	Origin        City       `json:"origin"`
	Destination   City       `json:"destination"`
	Class         CabinClass `json:"class"`
	Stops         int        `json:"stops"`
	DepartureDate time.Time  `json:"departure_date"`
}

// Validate checks enums, the distinct-cities rule and that departure is not before today.
func (r BookingRequest) Validate(today time.Time) error {
	if !r.Airline.Valid() {
		return ErrUnknownAirline
	}
	if !r.Origin.Valid() || !r.Destination.Valid() {
		return ErrUnknownCity
	}
	if !r.Class.Valid() {
		return ErrUnknownCabinClass
	}
	if r.Stops < 0 || r.Stops > MaxStops {
		return ErrInvalidStops
	}
	if r.Origin == r.Destination {
		return ErrSameCity
	}
	if r.DepartureDate.IsZero() || DateOf(r.DepartureDate).Before(DateOf(today)) {
		return ErrDepartureInPast
	}
	return nil
}

// DateOf drops the clock part of t, keeping the calendar date as seen in t's location.
// The result is midnight UTC so that date arithmetic never crosses a DST shift.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Quote struct {
	ID            string         `json:"id"`
	Request       BookingRequest `json:"request"`
	PriceINR      float64        `json:"price_inr"`
	PriceIDR      float64        `json:"price_idr"`
	DaysLeft      int            `json:"days_left"`
	Seasonality   int            `json:"seasonality_score"`
	BookingWindow string         `json:"booking_window"`
	Route         string         `json:"route"`
	ModelType     string         `json:"model_type"`
	QuotedOn      time.Time      `json:"quoted_on"`
	ExpiresAt     time.Time      `json:"expires_at"`
}
