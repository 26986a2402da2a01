package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// INRToIDR is a fixed display rate, not a live quote.
const INRToIDR = 196

func ToIDR(inr float64) float64 {
	return inr * INRToIDR
}

var printer = message.NewPrinter(language.English)

// FormatINR renders a rupee amount with thousands grouping and no fraction, e.g. "₹ 12,345".
func FormatINR(amount float64) string {
	return "₹ " + group(amount)
}

// FormatIDR renders a rupiah amount, e.g. "Rp 2,419,620".
func FormatIDR(amount float64) string {
	return "Rp " + group(amount)
}

func group(amount float64) string {
	return printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
}
