package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karcherhub/state"
	"karcherhub/testhelpers"
)

func TestHandleTab_FullPage(t *testing.T) {
	hub := newTestHub(t)

	req := newSessionRequest(http.MethodGet, "/dashboard")
	rec := httptest.NewRecorder()
	require.NoError(t, HandleTab(hub, state.TabDashboard)(newTestRequestEvent(req, rec)))

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"<!doctype html>",
		"대시보드", "제품 카탈로그", "구성 및 견적", "스페어 부품", "배터리 가이드", "FAQ",
		`data-tab="dashboard" class="w-full flex items-center gap-4 p-3.5 rounded-2xl bg-[#FFED00] text-black font-black" aria-current="page"`,
		`id="content"`,
		"실시간 재고 현황",
	)
	assert.Equal(t, state.TabDashboard, currentSelection(hub).ActiveTab)
}

func TestHandleTab_FullPageEveryTab(t *testing.T) {
	tests := []struct {
		tab  state.Tab
		path string
		want string
	}{
		{state.TabDashboard, "/dashboard", "실시간 재고 현황"},
		{state.TabCatalog, "/catalog", "세부 구성 확인"},
		{state.TabConfigurator, "/configurator", "먼저 카탈로그에서 제품을 선택해 주세요."},
		{state.TabSpare, "/spare", "Spareparts &amp; Accessories"},
		{state.TabBattery, "/battery", "로컬 배터리 스펙"},
		{state.TabFAQ, "/faq", "문의처"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tab), func(t *testing.T) {
			hub := newTestHub(t)

			req := newSessionRequest(http.MethodGet, tt.path)
			rec := httptest.NewRecorder()
			require.NoError(t, HandleTab(hub, tt.tab)(newTestRequestEvent(req, rec)))

			body := rec.Body.String()
			testhelpers.AssertHTMLContains(t, body, "<!doctype html>", `id="sidebar"`, `<div id="content"`, tt.want)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		})
	}
}

func TestHandleTab_HTMXPartial(t *testing.T) {
	hub := newTestHub(t)

	req := htmx(newSessionRequest(http.MethodGet, "/faq"))
	rec := httptest.NewRecorder()
	require.NoError(t, HandleTab(hub, state.TabFAQ)(newTestRequestEvent(req, rec)))

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "문의처")
	testhelpers.AssertHTMLNotContains(t, body, "<!doctype html>", `id="sidebar"`)
}

func TestHandleTab_BoostedGetsFullPage(t *testing.T) {
	hub := newTestHub(t)

	req := htmx(newSessionRequest(http.MethodGet, "/battery"))
	req.Header.Set("HX-Boosted", "true")
	rec := httptest.NewRecorder()
	require.NoError(t, HandleTab(hub, state.TabBattery)(newTestRequestEvent(req, rec)))

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "<!doctype html>", "로컬 배터리 스펙", "BTS-LFP-24V 105AH")
}

func TestHandleTab_DashboardMissingStock(t *testing.T) {
	hub := newTestHub(t)

	req := htmx(newSessionRequest(http.MethodGet, "/dashboard"))
	rec := httptest.NewRecorder()
	require.NoError(t, HandleTab(hub, state.TabDashboard)(newTestRequestEvent(req, rec)))

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"1.520-820.0",
		`<td class="p-6 text-center font-black">0</td>`,
		`<td class="p-6 text-center text-xs font-bold text-blue-500">-</td>`,
		`<td class="p-6 text-center font-black">62</td>`,
		"2026.01.28",
		"가용 재고 (주요모델)",
	)
}

func TestHandleTab_CatalogSearch(t *testing.T) {
	hub := newTestHub(t)

	req := htmx(newSessionRequest(http.MethodGet, "/catalog?q=classic"))
	rec := httptest.NewRecorder()
	require.NoError(t, HandleTab(hub, state.TabCatalog)(newTestRequestEvent(req, rec)))

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"HD 4/10 X Classic *KR", "BD 50/50 C Bp Classic",
		"₩700,000", "350x330x880mm", "판매중",
		`hx-post="/configurator/equipment/1.520-820.0"`,
	)
	testhelpers.AssertHTMLNotContains(t, body, "KM 100/120 R Bp")
	assert.Equal(t, "classic", currentSelection(hub).SearchQuery)

	// Without q the saved query still applies.
	req = htmx(newSessionRequest(http.MethodGet, "/catalog"))
	rec = httptest.NewRecorder()
	require.NoError(t, HandleTab(hub, state.TabCatalog)(newTestRequestEvent(req, rec)))
	testhelpers.AssertHTMLNotContains(t, rec.Body.String(), "KM 100/120 R Bp")
}

func TestHandleTab_CatalogNoMatches(t *testing.T) {
	hub := newTestHub(t)

	req := htmx(newSessionRequest(http.MethodGet, "/catalog?q=%3Cb%3E"))
	rec := httptest.NewRecorder()
	require.NoError(t, HandleTab(hub, state.TabCatalog)(newTestRequestEvent(req, rec)))

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "검색 결과가 없습니다.", "&lt;b&gt;")
	testhelpers.AssertHTMLNotContains(t, body, "<b>")
}

func TestHandleTab_SpareSearch(t *testing.T) {
	hub := newTestHub(t)

	req := htmx(newSessionRequest(http.MethodGet, "/spare?q=eco"))
	rec := httptest.NewRecorder()
	require.NoError(t, HandleTab(hub, state.TabSpare)(newTestRequestEvent(req, rec)))

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"Spareparts &amp; Accessories",
		"21130840", "Eco!Booster TR 030", "₩182,500",
		`href="/spare/export.xlsx?q=eco"`,
	)
	testhelpers.AssertHTMLNotContains(t, body, "20420220")

	sel := currentSelection(hub)
	assert.Equal(t, "eco", sel.SparePartsQuery)
	assert.Empty(t, sel.SearchQuery, "spare-parts search leaves the catalog query alone")
}

func TestHandleTab_ConfiguratorEmptyState(t *testing.T) {
	hub := newTestHub(t)

	req := htmx(newSessionRequest(http.MethodGet, "/configurator"))
	rec := httptest.NewRecorder()
	require.NoError(t, HandleTab(hub, state.TabConfigurator)(newTestRequestEvent(req, rec)))

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "먼저 카탈로그에서 제품을 선택해 주세요.")
}

func TestHandleHome_RedirectsToActiveTab(t *testing.T) {
	hub := newTestHub(t)

	req := newSessionRequest(http.MethodGet, "/")
	rec := httptest.NewRecorder()
	require.NoError(t, HandleHome(hub)(newTestRequestEvent(req, rec)))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/catalog", rec.Header().Get("Location"))

	seedSelection(t, hub, func(s state.Selection) (state.Selection, error) {
		return s.SetActiveTab(state.TabSpare)
	})
	rec = httptest.NewRecorder()
	require.NoError(t, HandleHome(hub)(newTestRequestEvent(req, rec)))
	assert.Equal(t, "/spare", rec.Header().Get("Location"))
}

func TestHandleSidebarToggle(t *testing.T) {
	hub := newTestHub(t)

	req := htmx(newSessionRequest(http.MethodPost, "/sidebar/toggle"))
	rec := httptest.NewRecorder()
	require.NoError(t, HandleSidebarToggle(hub)(newTestRequestEvent(req, rec)))

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/catalog")
	assert.True(t, currentSelection(hub).SidebarCollapsed)

	req = newSessionRequest(http.MethodPost, "/sidebar/toggle")
	rec = httptest.NewRecorder()
	require.NoError(t, HandleSidebarToggle(hub)(newTestRequestEvent(req, rec)))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.False(t, currentSelection(hub).SidebarCollapsed)
}

func TestHandleTab_CollapsedSidebar(t *testing.T) {
	hub := newTestHub(t)
	seedSelection(t, hub, func(s state.Selection) (state.Selection, error) {
		return s.ToggleSidebar(), nil
	})

	req := newSessionRequest(http.MethodGet, "/catalog")
	rec := httptest.NewRecorder()
	require.NoError(t, HandleTab(hub, state.TabCatalog)(newTestRequestEvent(req, rec)))

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, `class="bg-[#1A1A1A] text-white flex flex-col shadow-2xl z-20 transition-all duration-300 w-20"`, `<span class="sr-only">대시보드</span>`)
	testhelpers.AssertHTMLNotContains(t, body, "Kärcher Hub</span>")
}
