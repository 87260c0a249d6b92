package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"seat-booking-cli/model"
)

var csvHeader = []string{"Booking ID", "Passenger", "Seat", "Type", "Class", "Price"}

// EnsureDirs creates every directory in dirs that does not exist yet.
func EnsureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// SaveBookingsCSV writes the ledger to path, replacing any previous export.
// The file is closed on every return path.
func SaveBookingsCSV(path string, bookings []model.Booking) (err error) {
	if path == "" {
		return errors.New("export path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close export file: %w", closeErr)
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, booking := range bookings {
		if err := w.Write(bookingRecord(booking)); err != nil {
			return fmt.Errorf("write %s: %w", booking.Code(), err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}
	return nil
}

// Export saves the ledger to path and logs the outcome.
func Export(path string, bookings []model.Booking, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := SaveBookingsCSV(path, bookings); err != nil {
		logger.Error("export failed", "path", path, "err", err)
		return err
	}
	logger.Info("bookings exported", "path", path, "bookings", len(bookings))
	return nil
}

func bookingRecord(booking model.Booking) []string {
	seatID, category := "", ""
	if booking.Seat != nil {
		seatID = booking.Seat.ID
		category = string(booking.Seat.Category)
	}
	return []string{
		booking.Code(),
		booking.Passenger,
		seatID,
		category,
		string(booking.FareClass),
		FormatRawPrice(booking.Price),
	}
}

// FormatRawPrice renders a price without grouping or symbol. Whole amounts
// keep one decimal (4500.0) so the column always reads as a decimal.
func FormatRawPrice(price float64) string {
	if price == math.Trunc(price) && !math.IsInf(price, 0) {
		return strconv.FormatFloat(price, 'f', 1, 64)
	}
	return strconv.FormatFloat(price, 'f', -1, 64)
}
