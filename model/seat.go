package model

// Category is the physical position of a seat in its row.
type Category string

const (
	Window Category = "Window"
	Aisle  Category = "Aisle"
	Middle Category = "Middle"
)

// Categories lists the seat categories in the order they are offered to the operator.
var Categories = []Category{Window, Aisle, Middle}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case Window, Aisle, Middle:
		return true
	default:
		return false
	}
}

type Seat struct {
	ID        string   `json:"id"`
	Row       int      `json:"row"`
	Column    int      `json:"column"`
	Category  Category `json:"category"`
	Booked    bool     `json:"booked"`
	Passenger string   `json:"passenger,omitempty"`
}

// Book marks the seat as taken by passenger. It returns false and leaves the
// seat untouched when the seat is already booked.
func (s *Seat) Book(passenger string) bool {
	if s.Booked {
		return false
	}
	s.Booked = true
	s.Passenger = passenger
	return true
}

func (s *Seat) IsAvailable() bool {
	return !s.Booked
}

// ColumnLetter returns the letter used in the seat id for its column (A for 1).
func (s Seat) ColumnLetter() string {
	if s.Column < 1 || s.Column > 26 {
		return ""
	}
	return string(rune('A' + s.Column - 1))
}
