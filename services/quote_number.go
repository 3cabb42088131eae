package services

import (
	"fmt"
	"strings"
	"time"
)

// FormatQuoteNumber builds the reference printed on an issued quote.
// Format: KH-Q-{compact equipment id}-{yyyymmdd}-{hhmmss}. Quotes are not
// stored, so the issue time is what keeps two quotes for the same machine apart.
func FormatQuoteNumber(equipmentID string, issued time.Time) string {
	compact := strings.NewReplacer(".", "", "-", "").Replace(equipmentID)
	return fmt.Sprintf("KH-Q-%s-%s", compact, issued.Format("20060102-150405"))
}
