package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Config controls locale-aware number rendering in reports.
type Config struct {
	Locale language.Tag
	Symbol string
}

// DefaultConfig renders US dollars with English digit grouping.
func DefaultConfig() Config {
	return Config{Locale: language.English, Symbol: "$"}
}

// Currency renders v as a grouped money amount, e.g. "$1,234.50".
func Currency(cfg Config, v float64) string {
	p := message.NewPrinter(cfg.Locale)
	return cfg.Symbol + p.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Percent renders v, already expressed in percent points, as "11.40%".
func Percent(cfg Config, v float64) string {
	p := message.NewPrinter(cfg.Locale)
	return p.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	)) + "%"
}
