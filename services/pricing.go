// Package services provides the pure pricing, search and export functions
// behind the configurator views.
package services

import (
	"karcherhub/catalog"
	"karcherhub/state"
)

// QuoteTotal is the configured price: base price, plus every selected option,
// plus the selected battery. Mandatory items are already part of the base
// price and are never added again.
func QuoteTotal(cfg state.Configuration) int64 {
	if cfg.Empty() {
		return 0
	}
	sum := cfg.Equipment.Price
	for _, opt := range cfg.Options {
		sum += opt.Price
	}
	if cfg.Battery != nil {
		sum += cfg.Battery.Price
	}
	return sum
}

// LineKind tells quote lines apart for display and export.
type LineKind string

const (
	LineBase      LineKind = "base"
	LineBattery   LineKind = "battery"
	LineOption    LineKind = "option"
	LineMandatory LineKind = "mandatory"
)

// QuoteLine is one row of an itemised quote.
type QuoteLine struct {
	Kind       LineKind
	Label      string
	PartNumber string
	Detail     string
	Qty        int
	Price      int64
}

// Quote is the itemised form of a configuration. Lines add up to Total;
// Mandatory is informational only.
type Quote struct {
	EquipmentID   string
	EquipmentName string
	Category      string
	Specs         []catalog.Spec
	Lines         []QuoteLine
	Mandatory     []QuoteLine
	Total         int64
}

// BuildQuote itemises cfg: the base unit, the battery (labelled with its
// variant label) and the options in the order they were selected.
func BuildQuote(cfg state.Configuration) Quote {
	if cfg.Empty() {
		return Quote{}
	}
	eq := cfg.Equipment

	q := Quote{
		EquipmentID:   eq.ID,
		EquipmentName: eq.Name,
		Category:      eq.Category,
		Specs:         eq.Specs,
		Total:         QuoteTotal(cfg),
	}

	q.Lines = append(q.Lines, QuoteLine{
		Kind:       LineBase,
		Label:      eq.Name,
		PartNumber: eq.ID,
		Qty:        1,
		Price:      eq.Price,
	})
	if b := cfg.Battery; b != nil {
		q.Lines = append(q.Lines, QuoteLine{
			Kind:       LineBattery,
			Label:      b.Label,
			PartNumber: b.PartNumber,
			Detail:     b.Name,
			Qty:        1,
			Price:      b.Price,
		})
	}
	for _, opt := range cfg.Options {
		q.Lines = append(q.Lines, QuoteLine{
			Kind:       LineOption,
			Label:      opt.Name,
			PartNumber: opt.PartNumber,
			Qty:        1,
			Price:      opt.Price,
		})
	}
	for _, m := range eq.Mandatory {
		q.Mandatory = append(q.Mandatory, QuoteLine{
			Kind:       LineMandatory,
			Label:      m.Name,
			PartNumber: m.PartNumber,
			Qty:        m.Qty,
			Price:      m.Price,
		})
	}
	return q
}
