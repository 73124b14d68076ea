package cli

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// moneyFormatter renders currency values per the deployment locale:
// decimal grouping, decimal separator, and currency symbol all follow the
// configured BCP 47 tag. This is a presentation rule only.
type moneyFormatter struct {
	printer *message.Printer
	unit    currency.Unit
}

func newMoneyFormatter(locale string) *moneyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		unit = currency.BRL
	}
	return &moneyFormatter{printer: message.NewPrinter(tag), unit: unit}
}

// Format renders v as a localized currency string, e.g. "R$ 1.234,56" for
// pt-BR or "$ 1,234.56" for en-US.
func (m *moneyFormatter) Format(v float64) string {
	return m.printer.Sprintf("%v %v",
		currency.Symbol(m.unit), number.Decimal(v, number.Scale(2)))
}
