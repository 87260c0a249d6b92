// Package chart renders the bookings-per-fare-class bar chart.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"seat-booking-cli/model"
)

// FareCount is one bar of the chart.
type FareCount struct {
	FareClass model.FareClass
	Bookings  int
}

// SampleCounts are the fixed figures the chart is drawn from; it does not
// read the live ledger.
var SampleCounts = []FareCount{
	{FareClass: model.Economy, Bookings: 5},
	{FareClass: model.Business, Bookings: 3},
	{FareClass: model.First, Bookings: 2},
}

var barColors = map[model.FareClass]drawing.Color{
	model.Economy:  drawing.ColorFromHex("008000"),
	model.Business: drawing.ColorFromHex("0000ff"),
	model.First:    drawing.ColorFromHex("ffd700"),
}

// Render writes a PNG bar chart of counts to w.
func Render(w io.Writer, counts []FareCount) error {
	if len(counts) == 0 {
		return errors.New("no data to chart")
	}
	bars := make([]gochart.Value, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, gochart.Value{
			Label: string(c.FareClass),
			Value: float64(c.Bookings),
			Style: gochart.Style{
				FillColor:   barColors[c.FareClass],
				StrokeColor: barColors[c.FareClass],
				StrokeWidth: 1,
			},
		})
	}

	graph := gochart.BarChart{
		Title:  "Bookings by Fare Class",
		Width:  800,
		Height: 600,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20},
		},
		BarWidth: 120,
		Bars:     bars,
	}
	return graph.Render(gochart.PNG, w)
}

// Save renders the chart to path, creating its directory if needed.
func Save(path string, counts []FareCount) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create chart dir: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close chart file: %w", closeErr)
		}
	}()
	if err := Render(file, counts); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
