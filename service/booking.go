package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"seat-booking-cli/model"
	"seat-booking-cli/pricing"
)

const (
	cabinRows    = 5
	cabinColumns = 6
)

// columnCategories is the per-row layout, column A first.
var columnCategories = [cabinColumns]model.Category{
	model.Window, model.Middle, model.Aisle, model.Aisle, model.Middle, model.Window,
}

var (
	ErrPassengerRequired = errors.New("passenger name is required")
	ErrUnknownCategory   = errors.New("unknown seat category")
	ErrUnknownFareClass  = errors.New("unknown fare class")
	ErrNoSeatAvailable   = errors.New("no seat available")
)

// BookingSystem owns the cabin's seats and the booking ledger. It is not safe
// for concurrent use; one operator drives it from a single goroutine.
type BookingSystem struct {
	seats        []*model.Seat
	bookings     []model.Booking
	totalRevenue float64
	lastID       int

	now    func() time.Time
	logger *slog.Logger
}

type Option func(*BookingSystem)

// WithClock overrides the time source used for booking timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *BookingSystem) {
		s.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *BookingSystem) {
		s.logger = logger
	}
}

// Availability lists the free seat ids per category in cabin order.
type Availability struct {
	Window    []string
	Aisle     []string
	Middle    []string
	Available int
	Total     int
}

// ByCategory returns the free seat ids for category.
func (a Availability) ByCategory(category model.Category) []string {
	switch category {
	case model.Window:
		return a.Window
	case model.Aisle:
		return a.Aisle
	case model.Middle:
		return a.Middle
	default:
		return nil
	}
}

type Summary struct {
	Bookings   int
	Revenue    float64
	TotalSeats int
	Occupancy  int
}

// NewBookingSystem creates a system with a fresh 30-seat cabin.
func NewBookingSystem(opts ...Option) *BookingSystem {
	s := &BookingSystem{
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.createSeats()
	return s
}

func (s *BookingSystem) createSeats() {
	s.seats = make([]*model.Seat, 0, cabinRows*cabinColumns)
	for row := 1; row <= cabinRows; row++ {
		for col := 1; col <= cabinColumns; col++ {
			seat := &model.Seat{
				Row:      row,
				Column:   col,
				Category: columnCategories[col-1],
			}
			seat.ID = fmt.Sprintf("%d%s", row, seat.ColumnLetter())
			s.seats = append(s.seats, seat)
		}
	}
	s.logger.Debug("cabin created", "seats", len(s.seats))
}

// BookSeat reserves the first free seat of category, in cabin order, for
// passenger. When no seat of that category is free the returned error wraps
// ErrNoSeatAvailable and nothing changes.
func (s *BookingSystem) BookSeat(passenger string, category model.Category, fare model.FareClass) (model.Booking, error) {
	name := strings.TrimSpace(passenger)
	if name == "" {
		return model.Booking{}, ErrPassengerRequired
	}
	base, ok := pricing.BasePrice(category)
	if !ok {
		return model.Booking{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	multiplier, ok := pricing.Multiplier(fare)
	if !ok {
		return model.Booking{}, fmt.Errorf("%w: %q", ErrUnknownFareClass, fare)
	}

	seat := s.firstAvailable(category)
	if seat == nil {
		s.logger.Info("booking rejected", "passenger", name, "category", category, "fare_class", fare)
		return model.Booking{}, fmt.Errorf("%w: no %s seats left", ErrNoSeatAvailable, category)
	}

	price := pricing.CalculatePrice(base, multiplier)
	if !seat.Book(name) {
		return model.Booking{}, fmt.Errorf("%w: seat %s already taken", ErrNoSeatAvailable, seat.ID)
	}

	s.lastID++
	booking := model.Booking{
		ID:        s.lastID,
		Passenger: name,
		Seat:      seat,
		FareClass: fare,
		Price:     price,
		CreatedAt: s.now(),
	}
	s.bookings = append(s.bookings, booking)
	s.totalRevenue += price
	booking = snapshot(booking)

	s.logger.Info("booking created",
		"booking", booking.Code(),
		"passenger", name,
		"seat", seat.ID,
		"category", category,
		"fare_class", fare,
		"price", price,
	)
	return booking, nil
}

func (s *BookingSystem) firstAvailable(category model.Category) *model.Seat {
	for _, seat := range s.seats {
		if seat.IsAvailable() && seat.Category == category {
			return seat
		}
	}
	return nil
}

// AvailableSeats partitions the free seats by category.
func (s *BookingSystem) AvailableSeats() Availability {
	a := Availability{Total: len(s.seats)}
	for _, seat := range s.seats {
		if !seat.IsAvailable() {
			continue
		}
		switch seat.Category {
		case model.Window:
			a.Window = append(a.Window, seat.ID)
		case model.Aisle:
			a.Aisle = append(a.Aisle, seat.ID)
		default:
			a.Middle = append(a.Middle, seat.ID)
		}
	}
	a.Available = len(a.Window) + len(a.Aisle) + len(a.Middle)
	return a
}

// Bookings returns the ledger in the order bookings were made. Each booking
// carries its own copy of the seat.
func (s *BookingSystem) Bookings() []model.Booking {
	out := make([]model.Booking, len(s.bookings))
	for i, b := range s.bookings {
		out[i] = snapshot(b)
	}
	return out
}

func snapshot(b model.Booking) model.Booking {
	if b.Seat != nil {
		seat := *b.Seat
		b.Seat = &seat
	}
	return b
}

func (s *BookingSystem) HasBookings() bool {
	return len(s.bookings) > 0
}

func (s *BookingSystem) TotalRevenue() float64 {
	return s.totalRevenue
}

// Seats returns a copy of every seat in cabin order.
func (s *BookingSystem) Seats() []model.Seat {
	out := make([]model.Seat, len(s.seats))
	for i, seat := range s.seats {
		out[i] = *seat
	}
	return out
}

// Summary reports totals for the bookings view. Occupancy is truncated, so
// 3 of 30 seats is 10 and 1 of 30 is 3.
func (s *BookingSystem) Summary() Summary {
	total := len(s.seats)
	occupancy := 0
	if total > 0 {
		occupancy = len(s.bookings) * 100 / total
	}
	return Summary{
		Bookings:   len(s.bookings),
		Revenue:    s.totalRevenue,
		TotalSeats: total,
		Occupancy:  occupancy,
	}
}
