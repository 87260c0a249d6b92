package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"seat-booking-cli/model"
)

var (
	seatStyleAvailable = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatStyleOccupied  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

const cellWidth = 2

// SeatMap draws the cabin row by row, front row on top, with the aisle
// between the two aisle seats of each row.
func SeatMap(seats []model.Seat) string {
	if len(seats) == 0 {
		return "No seat map data."
	}

	rows, cols := 0, 0
	for _, seat := range seats {
		rows = max(rows, seat.Row)
		cols = max(cols, seat.Column)
	}
	if rows == 0 || cols == 0 {
		return "No seat map data."
	}

	grid := make([][]*model.Seat, rows)
	for i := range grid {
		grid[i] = make([]*model.Seat, cols)
	}
	available, occupied := 0, 0
	for i := range seats {
		seat := seats[i]
		if seat.Row < 1 || seat.Column < 1 {
			continue
		}
		grid[seat.Row-1][seat.Column-1] = &seat
		if seat.IsAvailable() {
			available++
		} else {
			occupied++
		}
	}

	aisleAfter := aisleColumn(grid)
	rowWidth := len(fmt.Sprintf("%d", rows))

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", rowWidth+1))
	for c := 0; c < cols; c++ {
		b.WriteString(padCell(string(rune('A'+c)), cellWidth))
		if c < cols-1 {
			b.WriteString(gap(c, aisleAfter))
		}
	}
	b.WriteString("\n")

	for r := 0; r < rows; r++ {
		label := fmt.Sprintf("%d", r+1)
		b.WriteString(fmt.Sprintf("%*s ", rowWidth, label))
		for c := 0; c < cols; c++ {
			b.WriteString(seatCell(grid[r][c]))
			if c < cols-1 {
				b.WriteString(gap(c, aisleAfter))
			}
		}
		b.WriteString(fmt.Sprintf(" %-*s\n", rowWidth, label))
	}

	total := available + occupied
	percent := float64(available) / float64(max(1, total)) * 100
	legend := "Legend: [] available • XX booked"
	counts := fmt.Sprintf("Available: %d • Booked: %d • Total: %d • %.0f%% available", available, occupied, total, percent)
	return b.String() + "\n" + Hint(legend) + "\n" + Hint(counts)
}

func seatCell(seat *model.Seat) string {
	if seat == nil {
		return padCell("", cellWidth)
	}
	if seat.IsAvailable() {
		return seatStyleAvailable.Render("[]")
	}
	return seatStyleOccupied.Render("XX")
}

// aisleColumn finds the zero-based column after which the aisle runs: the
// first pair of neighbouring aisle seats in the first row.
func aisleColumn(grid [][]*model.Seat) int {
	if len(grid) == 0 {
		return -1
	}
	row := grid[0]
	for c := 0; c < len(row)-1; c++ {
		if row[c] != nil && row[c+1] != nil && row[c].Category == model.Aisle && row[c+1].Category == model.Aisle {
			return c
		}
	}
	return -1
}

func gap(col int, aisleAfter int) string {
	if col == aisleAfter {
		return "   "
	}
	return " "
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}
