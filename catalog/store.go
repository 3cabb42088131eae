package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotFound is returned when a lookup names an id the catalog does not hold.
var ErrNotFound = errors.New("not found")

// Store is the immutable, in-memory catalog. It is safe for concurrent use
// because nothing mutates it after Load returns.
type Store struct {
	version      string
	currency     string
	equipment    []Equipment
	byID         map[string]int
	spareParts   []SparePart
	stock        map[string]StockRecord
	batteryGuide []BatteryGuideEntry
	statCards    []StatCard
	faq          []FAQEntry
}

func newStore(f dataFile) *Store {
	s := &Store{
		version:      f.Version,
		currency:     f.Currency,
		equipment:    f.Equipment,
		byID:         make(map[string]int, len(f.Equipment)),
		spareParts:   f.SpareParts,
		stock:        f.Stock,
		batteryGuide: f.BatteryGuide,
		statCards:    f.StatCards,
		faq:          f.FAQ,
	}
	for i, e := range f.Equipment {
		s.byID[e.ID] = i
	}
	if s.stock == nil {
		s.stock = map[string]StockRecord{}
	}
	return s
}

// Version is the data file's version string.
func (s *Store) Version() string { return s.version }

// Currency is the ISO code every price in the catalog is denominated in.
func (s *Store) Currency() string { return s.currency }

// Equipment returns every equipment record in data file order.
func (s *Store) Equipment() []Equipment { return slices.Clone(s.equipment) }

// EquipmentByID looks up an equipment record by its part number.
func (s *Store) EquipmentByID(id string) (Equipment, error) {
	i, ok := s.byID[id]
	if !ok {
		return Equipment{}, fmt.Errorf("equipment %q: %w", id, ErrNotFound)
	}
	return s.equipment[i], nil
}

// SpareParts returns every spare part in data file order.
func (s *Store) SpareParts() []SparePart { return slices.Clone(s.spareParts) }

// Stock returns the stock position for an equipment id. The second result is
// false when the stock table has no row for it.
func (s *Store) Stock(id string) (StockRecord, bool) {
	r, ok := s.stock[id]
	return r, ok
}

// StockRecords returns a copy of the whole stock table.
func (s *Store) StockRecords() map[string]StockRecord {
	out := make(map[string]StockRecord, len(s.stock))
	for k, v := range s.stock {
		out[k] = v
	}
	return out
}

func (s *Store) BatteryGuide() []BatteryGuideEntry { return slices.Clone(s.batteryGuide) }

func (s *Store) StatCards() []StatCard { return slices.Clone(s.statCards) }

func (s *Store) FAQ() []FAQEntry { return slices.Clone(s.faq) }
