package services

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var krPrinter = message.NewPrinter(language.Korean)

// FormatKRW formats a whole-won amount the way ko-KR currency formatting does:
// a ₩ prefix and comma-grouped thousands, no decimals (e.g. ₩37,400,000).
func FormatKRW(amount int64) string {
	if amount < 0 {
		return "-₩" + krPrinter.Sprintf("%d", -amount)
	}
	return "₩" + krPrinter.Sprintf("%d", amount)
}

// FormatKRWCode is FormatKRW with the ISO code instead of the ₩ sign, for
// outputs whose fonts carry no won glyph (the PDF core fonts).
func FormatKRWCode(amount int64) string {
	if amount < 0 {
		return "-KRW " + krPrinter.Sprintf("%d", -amount)
	}
	return "KRW " + krPrinter.Sprintf("%d", amount)
}
