package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seat-booking-cli/model"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "₹"

var basePrices = map[model.Category]float64{
	model.Aisle:  5000,
	model.Window: 4500,
	model.Middle: 4000,
}

var multipliers = map[model.FareClass]float64{
	model.Economy:  1.0,
	model.Business: 2.5,
	model.First:    4.0,
}

var printer = message.NewPrinter(language.English)

// BasePrice returns the seat price for category before the fare multiplier.
func BasePrice(category model.Category) (float64, bool) {
	price, ok := basePrices[category]
	return price, ok
}

// Multiplier returns the factor applied to the base price for fare.
func Multiplier(fare model.FareClass) (float64, bool) {
	m, ok := multipliers[fare]
	return m, ok
}

func CalculatePrice(base float64, multiplier float64) float64 {
	return base * multiplier
}

// Quote prices a seat category in a fare class.
func Quote(category model.Category, fare model.FareClass) (float64, bool) {
	base, ok := BasePrice(category)
	if !ok {
		return 0, false
	}
	m, ok := Multiplier(fare)
	if !ok {
		return 0, false
	}
	return CalculatePrice(base, m), true
}

// FormatCurrency renders amount with the currency symbol, thousands
// separators and two decimals, e.g. ₹11,250.00.
func FormatCurrency(amount float64) string {
	return CurrencySymbol + FormatAmount(amount)
}

// FormatAmount is FormatCurrency without the symbol.
func FormatAmount(amount float64) string {
	return printer.Sprintf("%.2f", amount)
}

// FormatWholeCurrency drops the decimals, used in menu hints like ₹4,500.
func FormatWholeCurrency(amount float64) string {
	return CurrencySymbol + printer.Sprintf("%.0f", amount)
}
