package handlers

import (
	"net/url"

	"karcherhub/catalog"
	"karcherhub/services"
	"karcherhub/state"
	"karcherhub/templates"
)

var navLabels = map[state.Tab]string{
	state.TabDashboard:    "대시보드",
	state.TabCatalog:      "제품 카탈로그",
	state.TabConfigurator: "구성 및 견적",
	state.TabSpare:        "스페어 부품",
	state.TabBattery:      "배터리 가이드",
	state.TabFAQ:          "FAQ",
}

func tabPath(tab state.Tab) string { return "/" + string(tab) }

func buildShellData(h *Hub, sel state.Selection) templates.ShellData {
	nav := make([]templates.NavItem, 0, len(state.Tabs))
	for _, tab := range state.Tabs {
		nav = append(nav, templates.NavItem{
			Tab:    string(tab),
			Label:  navLabels[tab],
			Href:   tabPath(tab),
			Active: tab == sel.ActiveTab,
		})
	}
	return templates.ShellData{
		ActiveTab:      string(sel.ActiveTab),
		Collapsed:      sel.SidebarCollapsed,
		SearchQuery:    sel.SearchQuery,
		CatalogVersion: h.Catalog.Version(),
		Nav:            nav,
	}
}

func buildDashboardData(h *Hub) templates.DashboardData {
	var data templates.DashboardData
	for _, c := range services.BuildStatCards(h.Catalog) {
		data.Cards = append(data.Cards, templates.StatCardView{Label: c.Label, Value: c.Value, Trend: c.Trend})
	}
	for _, r := range services.BuildStockRows(h.Catalog) {
		data.Stock = append(data.Stock, templates.StockRowView(r))
	}
	return data
}

func buildCatalogData(h *Hub, sel state.Selection) templates.CatalogData {
	data := templates.CatalogData{Query: sel.SearchQuery}
	for _, eq := range services.FilterCatalog(sel.SearchQuery, h.Catalog.Equipment()) {
		data.Cards = append(data.Cards, templates.EquipmentCard{
			ID:          eq.ID,
			Name:        eq.Name,
			Category:    eq.Category,
			StatusLabel: eq.Status.Label(),
			OnSale:      eq.Status == catalog.StatusOnSale,
			Price:       services.FormatKRW(eq.Price),
			SummarySpec: eq.SummarySpec(),
			Origin:      eq.Origin,
			SelectURL:   "/configurator/equipment/" + url.PathEscape(eq.ID),
		})
	}
	return data
}

func buildConfiguratorData(h *Hub, sel state.Selection) templates.ConfiguratorData {
	cfg := sel.Resolve(h.Catalog)
	if cfg.Empty() {
		return templates.ConfiguratorData{}
	}
	eq := cfg.Equipment

	data := templates.ConfiguratorData{
		ID:        eq.ID,
		Name:      eq.Name,
		Category:  eq.Category,
		BasePrice: services.FormatKRW(eq.Price),
		PDFURL:    "/configurator/quote.pdf",
		ExcelURL:  "/configurator/quote.xlsx",
	}
	for _, s := range eq.Specs {
		data.Specs = append(data.Specs, templates.SpecView{Key: s.Key, Value: s.Value})
	}
	for _, m := range eq.Mandatory {
		data.Mandatory = append(data.Mandatory, templates.MandatoryView{
			Name:       m.Name,
			PartNumber: m.PartNumber,
			Qty:        m.Qty,
			Price:      services.FormatKRW(m.Price),
		})
	}
	for _, b := range eq.Batteries {
		data.Batteries = append(data.Batteries, templates.BatteryView{
			Label:      b.Label,
			Name:       b.Name,
			PartNumber: b.PartNumber,
			Price:      services.FormatKRW(b.Price),
			Charger:    b.Charger,
			Selected:   cfg.Battery != nil && cfg.Battery.PartNumber == b.PartNumber,
			SelectURL:  "/configurator/battery/" + url.PathEscape(b.PartNumber),
		})
	}
	for _, o := range eq.Options {
		data.Options = append(data.Options, templates.OptionView{
			Name:       o.Name,
			PartNumber: o.PartNumber,
			Price:      services.FormatKRW(o.Price),
			Selected:   sel.HasOption(o.PartNumber),
			ToggleURL:  "/configurator/options/" + url.PathEscape(o.PartNumber),
		})
	}

	quote := services.BuildQuote(cfg)
	for _, l := range quote.Lines {
		line := templates.SummaryLine{Label: l.Label, Detail: l.Detail, Price: services.FormatKRW(l.Price)}
		if l.Kind == services.LineBase {
			line.Label = "기본 장비 본체"
			line.Detail = ""
		}
		data.Summary = append(data.Summary, line)
	}
	data.Total = services.FormatKRW(quote.Total)
	return data
}

func buildSparePartsData(h *Hub, sel state.Selection) templates.SparePartsData {
	data := templates.SparePartsData{
		Query:     sel.SparePartsQuery,
		ExportURL: "/spare/export.xlsx",
	}
	if sel.SparePartsQuery != "" {
		data.ExportURL += "?q=" + url.QueryEscape(sel.SparePartsQuery)
	}
	for _, p := range services.FilterSpareParts(sel.SparePartsQuery, h.Catalog.SpareParts()) {
		data.Rows = append(data.Rows, templates.SparePartView{
			PartNumber:  p.PartNumber,
			Description: p.Description,
			Category:    p.Category,
			Price:       services.FormatKRW(p.Price),
		})
	}
	return data
}

func buildBatteryGuideData(h *Hub) templates.BatteryGuideData {
	var data templates.BatteryGuideData
	for _, g := range h.Catalog.BatteryGuide() {
		data.Cards = append(data.Cards, templates.BatteryGuideCard(g))
	}
	return data
}

func buildFAQData(h *Hub) templates.FAQData {
	var data templates.FAQData
	for _, f := range h.Catalog.FAQ() {
		data.Items = append(data.Items, templates.FAQItem(f))
	}
	return data
}
