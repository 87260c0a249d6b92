// Package report renders the booking system's state as terminal text.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"seat-booking-cli/model"
	"seat-booking-cli/pricing"
	"seat-booking-cli/service"
)

const ruleWidth = 50

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

func rule(char string) string {
	return strings.Repeat(char, ruleWidth)
}

// Section frames title between two heavy rules.
func Section(title string) string {
	return rule("=") + "\n" + titleStyle.Render(title) + "\n" + rule("=")
}

func Hint(s string) string {
	return faintStyle.Render(s)
}

func Success(s string) string {
	return successStyle.Render("✓ " + s)
}

func Error(s string) string {
	return errorStyle.Render("✗ " + s)
}

func Banner() string {
	return rule("=") + "\n" + titleStyle.Render("   AIRLINE SEAT BOOKING SYSTEM  ") + "\n" + rule("=")
}

func Menu() string {
	lines := []string{
		rule("-"),
		titleStyle.Render("MAIN MENU:"),
		rule("-"),
		"1. Book a Seat",
		"2. View Available Seats",
		"3. View All Bookings",
		"4. Exit",
		rule("-"),
	}
	return strings.Join(lines, "\n")
}

// CategoryLabel is the option text for a seat category, with its base price.
func CategoryLabel(category model.Category) string {
	base, _ := pricing.BasePrice(category)
	return fmt.Sprintf("%s (%s)", category, pricing.FormatWholeCurrency(base))
}

func FareLabel(fare model.FareClass) string {
	switch fare {
	case model.Economy:
		return "Economy (Base Price)"
	case model.First:
		return "First Class (4x Price)"
	default:
		m, _ := pricing.Multiplier(fare)
		return fmt.Sprintf("%s (%gx Price)", fare, m)
	}
}

func CategoryOptions() string {
	lines := []string{"Available Seat Types:"}
	for i, category := range model.Categories {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, CategoryLabel(category)))
	}
	return strings.Join(lines, "\n")
}

func FareOptions() string {
	lines := []string{"Fare Classes:"}
	for i, fare := range model.FareClasses {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, FareLabel(fare)))
	}
	return strings.Join(lines, "\n")
}

// Confirmation is the card shown after a successful booking.
func Confirmation(b model.Booking) string {
	seatID, category := "", ""
	if b.Seat != nil {
		seatID = b.Seat.ID
		category = string(b.Seat.Category)
	}
	lines := []string{
		rule("="),
		successStyle.Render("BOOKING CONFIRMED!"),
		rule("="),
		fmt.Sprintf("Booking ID    : %s", b.Code()),
		fmt.Sprintf("Passenger     : %s", b.Passenger),
		fmt.Sprintf("Seat Number   : %s", seatID),
		fmt.Sprintf("Seat Type     : %s", category),
		fmt.Sprintf("Fare Class    : %s", b.FareClass),
		fmt.Sprintf("Price         : %s", pricing.FormatCurrency(b.Price)),
		rule("="),
	}
	return strings.Join(lines, "\n")
}

func Unavailable(category model.Category) string {
	return Error(fmt.Sprintf("Sorry, no %s seats available!", category))
}

// Availability lists free seats per category, followed by the cabin map.
func Availability(a service.Availability, seats []model.Seat) string {
	var b strings.Builder
	b.WriteString(Section("AVAILABLE SEATS"))
	b.WriteString("\n")
	for _, category := range model.Categories {
		ids := a.ByCategory(category)
		if len(ids) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("\n%s Seats (%s): %s", category, pricing.FormatWholeCurrency(basePrice(category)), strings.Join(ids, ", ")))
	}
	b.WriteString(fmt.Sprintf("\n\nTotal Available: %d/%d", a.Available, a.Total))
	if len(seats) > 0 {
		b.WriteString("\n\n")
		b.WriteString(SeatMap(seats))
	}
	return b.String()
}

func basePrice(category model.Category) float64 {
	p, _ := pricing.BasePrice(category)
	return p
}

// Bookings renders the ledger table and the totals below it.
func Bookings(bookings []model.Booking, summary service.Summary) string {
	var b strings.Builder
	b.WriteString(Section("ALL BOOKINGS"))
	b.WriteString("\n")
	if len(bookings) == 0 {
		b.WriteString("\nNo bookings yet!")
		return b.String()
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Passenger", "Seat", "Class", "Price"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 20},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})
	for _, booking := range bookings {
		seatID := ""
		if booking.Seat != nil {
			seatID = booking.Seat.ID
		}
		t.AppendRow(table.Row{
			booking.Code(),
			booking.Passenger,
			seatID,
			string(booking.FareClass),
			pricing.FormatCurrency(booking.Price),
		})
	}

	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(Totals(summary))
	return b.String()
}

func Totals(s service.Summary) string {
	return strings.Join([]string{
		fmt.Sprintf("Total Bookings: %d", s.Bookings),
		fmt.Sprintf("Total Revenue: %s", pricing.FormatCurrency(s.Revenue)),
		fmt.Sprintf("Occupancy: %d/%d seats (%d%%)", s.Bookings, s.TotalSeats, s.Occupancy),
	}, "\n")
}

// Affirmative reports whether answer accepts a yes/no question: "yes" or "y"
// in any case.
func Affirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true
	default:
		return false
	}
}

// ExportResult reports the outcome of saving the ledger to path.
func ExportResult(path string, err error) string {
	if err != nil {
		return Error(fmt.Sprintf("Error saving: %v", err))
	}
	return Success(fmt.Sprintf("Data saved to %s", path))
}

func Farewell() string {
	return strings.Join([]string{
		rule("="),
		"Thank you for using our system!",
		" Safe travels! Goodbye!",
		rule("="),
	}, "\n")
}
