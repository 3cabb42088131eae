package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	return sb.String()
}

func TestPage_WrapsContent(t *testing.T) {
	shell := ShellData{
		ActiveTab:      "faq",
		CatalogVersion: "2026.01",
		Nav: []NavItem{
			{Tab: "catalog", Label: "제품 카탈로그", Href: "/catalog"},
			{Tab: "faq", Label: "FAQ", Href: "/faq", Active: true},
		},
	}
	body := renderString(t, FAQPage(shell, FAQData{Items: []FAQItem{{Question: "문의처", Answer: "관리자"}}}))

	for _, want := range []string{
		"<!doctype html>",
		`<h1 class="text-xl font-black capitalize">faq</h1>`,
		`href="/faq" data-tab="faq"`,
		`aria-current="page"`,
		"DATA 2026.01",
		`<div id="content"`,
		"<summary class=\"font-black cursor-pointer\">문의처</summary>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
	if strings.Count(body, `aria-current="page"`) != 1 {
		t.Error("expected exactly one active nav item")
	}
}

func TestHeaderSearch_LiveOnlyOnCatalog(t *testing.T) {
	onCatalog := renderString(t, Page(ShellData{ActiveTab: "catalog", SearchQuery: "km"}, templ.NopComponent))
	if !strings.Contains(onCatalog, `hx-get="/catalog"`) {
		t.Error("expected live search on the catalog tab")
	}
	if !strings.Contains(onCatalog, `value="km"`) {
		t.Error("expected the saved query in the search box")
	}

	onDashboard := renderString(t, Page(ShellData{ActiveTab: "dashboard"}, templ.NopComponent))
	if strings.Contains(onDashboard, `hx-get="/catalog"`) {
		t.Error("expected a plain form outside the catalog tab")
	}
}

func TestContent_EscapesData(t *testing.T) {
	body := renderString(t, CatalogContent(CatalogData{Cards: []EquipmentCard{{
		ID:        "1.000-000.0",
		Name:      `<script>alert("x")</script>`,
		Origin:    `"quoted"`,
		SelectURL: "/configurator/equipment/1.000-000.0",
	}}}))

	if strings.Contains(body, "<script>") {
		t.Error("equipment name was not escaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("expected escaped equipment name")
	}
	if !strings.Contains(body, "&#34;quoted&#34;") {
		t.Error("expected escaped quotes")
	}
}

func TestConfiguratorContent_EmptyState(t *testing.T) {
	body := renderString(t, ConfiguratorContent(ConfiguratorData{}))
	if !strings.Contains(body, EmptyConfiguratorMessage) {
		t.Errorf("expected empty-state prompt, got %s", body)
	}
	if strings.Contains(body, "총 합계액") {
		t.Error("empty configurator must not show a total")
	}
}

func TestConfiguratorContent_HidesEmptySections(t *testing.T) {
	body := renderString(t, ConfiguratorContent(ConfiguratorData{
		ID:        "1.520-820.0",
		Name:      "HD 4/10 X Classic *KR",
		BasePrice: "₩700,000",
		Total:     "₩700,000",
		PDFURL:    "/configurator/quote.pdf",
		ExcelURL:  "/configurator/quote.xlsx",
	}))
	if strings.Contains(body, "배터리 및 충전기") {
		t.Error("battery section shown for equipment without batteries")
	}
	if strings.Contains(body, "추가 옵션") {
		t.Error("option section shown for equipment without options")
	}
	if !strings.Contains(body, "₩700,000") {
		t.Error("expected total")
	}
}

func TestConfiguratorContent_OptionFormSubmitsWithoutScript(t *testing.T) {
	body := renderString(t, ConfiguratorContent(ConfiguratorData{
		ID:   "1.280-170.0",
		Name: "KM 100/120 R Bp",
		Options: []OptionView{
			{Name: "Add-on kit side broom left", PartNumber: "2.852-913.0", Price: "₩3,274,300", ToggleURL: "/configurator/options/2.852-913.0"},
			{Name: "Vacuum hose", PartNumber: "2.852-914.0", Price: "₩100,000", Selected: true, ToggleURL: "/configurator/options/2.852-914.0"},
		},
	}))

	if got := strings.Count(body, `<noscript><button type="submit"`); got != 2 {
		t.Errorf("expected a fallback submit button per option form, got %d", got)
	}
	for _, want := range []string{
		`action="/configurator/options/2.852-913.0"`,
		`hx-trigger="change"`,
		`value="2.852-913.0">`,
		`value="2.852-914.0" checked>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected option form to contain %q", want)
		}
	}
}

func TestPageComponents_WrapContentInShell(t *testing.T) {
	shell := ShellData{ActiveTab: "dashboard", Nav: []NavItem{{Tab: "dashboard", Label: "대시보드", Href: "/dashboard", Active: true}}}
	pages := map[string]templ.Component{
		"dashboard":    DashboardPage(shell, DashboardData{}),
		"catalog":      CatalogPage(shell, CatalogData{}),
		"configurator": ConfiguratorPage(shell, ConfiguratorData{}),
		"spare":        SparePartsPage(shell, SparePartsData{}),
		"battery":      BatteryGuidePage(shell, BatteryGuideData{}),
		"faq":          FAQPage(shell, FAQData{}),
	}

	for name, page := range pages {
		t.Run(name, func(t *testing.T) {
			body := renderString(t, page)
			if !strings.HasPrefix(body, "<!doctype html>") {
				t.Errorf("expected a full document, got %.40q", body)
			}
			if !strings.Contains(body, `<aside id="sidebar"`) {
				t.Error("expected the sidebar")
			}
			if !strings.HasSuffix(body, "</body></html>") {
				t.Error("expected the document to close")
			}
		})
	}
}

func TestStatCardView_Negative(t *testing.T) {
	if !(StatCardView{Trend: "-2%"}).Negative() {
		t.Error("-2% should be negative")
	}
	if (StatCardView{Trend: "+5%"}).Negative() {
		t.Error("+5% should not be negative")
	}
}
