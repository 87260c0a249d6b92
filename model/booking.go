package model

import (
	"fmt"
	"time"
)

// FareClass selects the price multiplier applied to a seat's base price.
type FareClass string

const (
	Economy  FareClass = "Economy"
	Business FareClass = "Business"
	First    FareClass = "First"
)

var FareClasses = []FareClass{Economy, Business, First}

func (f FareClass) Valid() bool {
	switch f {
	case Economy, Business, First:
		return true
	default:
		return false
	}
}

// Booking is a confirmed reservation. Bookings handed out by the booking
// system carry a copy of the seat as it was when read.
type Booking struct {
	ID        int       `json:"id"`
	Passenger string    `json:"passenger"`
	Seat      *Seat     `json:"seat"`
	FareClass FareClass `json:"fare_class"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// Code renders the booking id as shown to passengers, e.g. BK001.
func (b Booking) Code() string {
	return FormatBookingCode(b.ID)
}

func FormatBookingCode(id int) string {
	return fmt.Sprintf("BK%03d", id)
}
