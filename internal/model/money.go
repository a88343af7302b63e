package model

import "fmt"

// FormatMoney renders an amount in minor units as a major-unit string with
// two decimals and the configured currency symbol, e.g. 1234 -> "£12.34".
func FormatMoney(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, Settings().CurrencySymbol, minor/100, minor%100)
}
