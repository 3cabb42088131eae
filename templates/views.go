// Package templates renders the hub's pages. Handlers build the view structs
// below and pass them to the templ components, either wrapped in Page or as a
// bare HTMX fragment.
package templates

import "strings"

// NavItem is one sidebar link.
type NavItem struct {
	Tab    string
	Label  string
	Href   string
	Active bool
}

// ShellData drives the sidebar and header around every tab.
type ShellData struct {
	ActiveTab      string
	Collapsed      bool
	SearchQuery    string
	CatalogVersion string
	Nav            []NavItem
}

type StatCardView struct {
	Label string
	Value string
	Trend string
}

// Negative reports whether the trend points down.
func (c StatCardView) Negative() bool { return strings.HasPrefix(c.Trend, "-") }

type StockRowView struct {
	EquipmentID       string
	Name              string
	OnHand            int
	PendingInspection int
	InTransit         int
	ETA               string
	Status            string
}

type DashboardData struct {
	Cards []StatCardView
	Stock []StockRowView
}

// EquipmentCard is one tile of the catalog grid. Prices arrive formatted.
type EquipmentCard struct {
	ID          string
	Name        string
	Category    string
	StatusLabel string
	OnSale      bool
	Price       string
	SummarySpec string
	Origin      string
	SelectURL   string
}

type CatalogData struct {
	Query string
	Cards []EquipmentCard
}

// EmptyConfiguratorMessage is shown until a catalog item is chosen.
const EmptyConfiguratorMessage = "먼저 카탈로그에서 제품을 선택해 주세요."

type SpecView struct {
	Key   string
	Value string
}

type MandatoryView struct {
	Name       string
	PartNumber string
	Qty        int
	Price      string
}

type BatteryView struct {
	Label      string
	Name       string
	PartNumber string
	Price      string
	Charger    string
	Selected   bool
	SelectURL  string
}

type OptionView struct {
	Name       string
	PartNumber string
	Price      string
	Selected   bool
	ToggleURL  string
}

// SummaryLine is one row of the live quote panel.
type SummaryLine struct {
	Label  string
	Detail string
	Price  string
}

// ConfiguratorData is nil-equipment safe: an empty ID renders the prompt.
type ConfiguratorData struct {
	ID        string
	Name      string
	Category  string
	Specs     []SpecView
	BasePrice string
	Mandatory []MandatoryView
	Batteries []BatteryView
	Options   []OptionView
	Summary   []SummaryLine
	Total     string
	PDFURL    string
	ExcelURL  string
}

type SparePartView struct {
	PartNumber  string
	Description string
	Category    string
	Price       string
}

type SparePartsData struct {
	Query     string
	Rows      []SparePartView
	ExportURL string
}

type BatteryGuideCard struct {
	Maker      string
	Model      string
	Chemistry  string
	Dimensions string
}

type BatteryGuideData struct {
	Cards []BatteryGuideCard
}

type FAQItem struct {
	Question string
	Answer   string
}

type FAQData struct {
	Items []FAQItem
}
