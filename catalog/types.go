// Package catalog holds the read-only equipment, spare-part and stock reference
// data that every view and the configurator work from.
package catalog

// Status is the sales status of an equipment record.
type Status string

const (
	StatusOnSale       Status = "on_sale"
	StatusDiscontinued Status = "discontinued"
)

// Label returns the Korean display label used on catalog cards.
func (s Status) Label() string {
	if s == StatusDiscontinued {
		return "단종"
	}
	return "판매중"
}

// Spec is one key/value line of an equipment's technical specification.
// Specs are kept as an ordered list so the data file controls display order.
type Spec struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// MandatoryItem is a component always bundled with the equipment. Its price is
// shown for transparency but is already part of the equipment's base price.
type MandatoryItem struct {
	Name       string `json:"name" validate:"required"`
	PartNumber string `json:"pn" validate:"required"`
	Qty        int    `json:"qty" validate:"gte=1"`
	Price      int64  `json:"price" validate:"gte=0"`
}

// OptionItem is an independently toggleable add-on.
type OptionItem struct {
	Name       string `json:"name" validate:"required"`
	PartNumber string `json:"pn" validate:"required"`
	Price      int64  `json:"price" validate:"gte=0"`
}

// BatteryVariant is one mutually exclusive power-source choice.
type BatteryVariant struct {
	Label      string `json:"label" validate:"required"`
	Name       string `json:"name" validate:"required"`
	PartNumber string `json:"pn" validate:"required"`
	Price      int64  `json:"price" validate:"gte=0"`
	Charger    string `json:"charger"`
}

// Equipment is a sellable machine with its fixed attributes.
type Equipment struct {
	ID        string           `json:"id" validate:"required"`
	Name      string           `json:"name" validate:"required"`
	Category  string           `json:"category" validate:"required"`
	Price     int64            `json:"price" validate:"gte=0"`
	Origin    string           `json:"origin"`
	Status    Status           `json:"status" validate:"oneof=on_sale discontinued"`
	Specs     []Spec           `json:"specs" validate:"dive"`
	Mandatory []MandatoryItem  `json:"mandatory" validate:"dive"`
	Options   []OptionItem     `json:"options" validate:"unique=PartNumber,dive"`
	Batteries []BatteryVariant `json:"batteries" validate:"unique=PartNumber,dive"`
}

// Spec returns the value of the named spec key, or "" when the record has none.
func (e Equipment) Spec(key string) string {
	for _, s := range e.Specs {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

// SummarySpec is the single spec line shown on catalog cards: the footprint,
// falling back to the working pressure for machines without one.
func (e Equipment) SummarySpec() string {
	if v := e.Spec("size"); v != "" {
		return v
	}
	return e.Spec("pressure")
}

// Option looks up one of the equipment's own option items by part number.
func (e Equipment) Option(pn string) (OptionItem, bool) {
	for _, o := range e.Options {
		if o.PartNumber == pn {
			return o, true
		}
	}
	return OptionItem{}, false
}

// Battery looks up one of the equipment's own battery variants by part number.
func (e Equipment) Battery(pn string) (BatteryVariant, bool) {
	for _, b := range e.Batteries {
		if b.PartNumber == pn {
			return b, true
		}
	}
	return BatteryVariant{}, false
}

// DefaultBattery is the variant preselected when the equipment is chosen.
func (e Equipment) DefaultBattery() (BatteryVariant, bool) {
	if len(e.Batteries) == 0 {
		return BatteryVariant{}, false
	}
	return e.Batteries[0], true
}

// SparePart is a standalone part browsed in the spare-parts table.
type SparePart struct {
	PartNumber  string `json:"pn" validate:"required"`
	Description string `json:"desc" validate:"required"`
	Price       int64  `json:"price" validate:"gte=0"`
	Category    string `json:"category"`
}

// StockRecord is the stock position for one equipment id.
type StockRecord struct {
	OnHand            int    `json:"stock" validate:"gte=0"`
	PendingInspection int    `json:"pdi" validate:"gte=0"`
	InTransit         int    `json:"in_transit" validate:"gte=0"`
	ETA               string `json:"eta"`
}

// BatteryGuideEntry is one card of the local battery reference guide.
type BatteryGuideEntry struct {
	Maker      string `json:"maker" validate:"required"`
	Model      string `json:"model" validate:"required"`
	Chemistry  string `json:"chemistry"`
	Dimensions string `json:"dimensions"`
}

// StatCard is one aggregate card on the dashboard.
type StatCard struct {
	Key   string `json:"key" validate:"required"`
	Label string `json:"label" validate:"required"`
	Value string `json:"value"`
	Trend string `json:"trend"`
}

// FAQEntry is one question/answer pair on the FAQ page.
type FAQEntry struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}
