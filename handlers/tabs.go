package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"karcherhub/state"
	"karcherhub/templates"
)

// isPartial reports whether HTMX asked for the tab content only. Boosted
// navigations still want the whole document.
func isPartial(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Boosted") != "true"
}

// tabContent returns the content component for the selection's active tab.
func tabContent(h *Hub, sel state.Selection) templ.Component {
	switch sel.ActiveTab {
	case state.TabDashboard:
		return templates.DashboardContent(buildDashboardData(h))
	case state.TabConfigurator:
		return templates.ConfiguratorContent(buildConfiguratorData(h, sel))
	case state.TabSpare:
		return templates.SparePartsContent(buildSparePartsData(h, sel))
	case state.TabBattery:
		return templates.BatteryGuideContent(buildBatteryGuideData(h))
	case state.TabFAQ:
		return templates.FAQContent(buildFAQData(h))
	default:
		return templates.CatalogContent(buildCatalogData(h, sel))
	}
}

// tabPage returns the active tab as a full document.
func tabPage(h *Hub, sel state.Selection) templ.Component {
	shell := buildShellData(h, sel)
	switch sel.ActiveTab {
	case state.TabDashboard:
		return templates.DashboardPage(shell, buildDashboardData(h))
	case state.TabConfigurator:
		return templates.ConfiguratorPage(shell, buildConfiguratorData(h, sel))
	case state.TabSpare:
		return templates.SparePartsPage(shell, buildSparePartsData(h, sel))
	case state.TabBattery:
		return templates.BatteryGuidePage(shell, buildBatteryGuideData(h))
	case state.TabFAQ:
		return templates.FAQPage(shell, buildFAQData(h))
	default:
		return templates.CatalogPage(shell, buildCatalogData(h, sel))
	}
}

// render writes the active tab: the content alone for HTMX partials,
// otherwise the whole page.
func render(e *core.RequestEvent, h *Hub, sel state.Selection) error {
	var component templ.Component
	if isPartial(e.Request) {
		component = tabContent(h, sel)
	} else {
		component = tabPage(h, sel)
	}
	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(e.Request.Context(), e.Response)
}

// HandleTab switches the visitor to tab and renders it. On the catalog and
// spare-parts tabs a q parameter also replaces that tab's search query.
func HandleTab(h *Hub, tab state.Tab) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := e.Request.URL.Query()
		sel, err := h.update(e.Request, func(s state.Selection) (state.Selection, error) {
			s, err := s.SetActiveTab(tab)
			if err != nil {
				return s, err
			}
			if query.Has("q") {
				switch tab {
				case state.TabCatalog:
					s = s.SetSearchQuery(query.Get("q"))
				case state.TabSpare:
					s = s.SetSparePartsQuery(query.Get("q"))
				}
			}
			return s, nil
		})
		if err != nil {
			logger.WithError(err).WithField("tab", tab).Error("tabs: failed to switch tab")
			return e.String(http.StatusInternalServerError, "Failed to open tab")
		}
		return render(e, h, sel)
	}
}

// HandleHome redirects to the visitor's active tab.
func HandleHome(h *Hub) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sel := h.selection(e.Request)
		return e.Redirect(http.StatusFound, tabPath(sel.ActiveTab))
	}
}

// HandleSidebarToggle collapses or expands the sidebar and reloads the page.
func HandleSidebarToggle(h *Hub) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sel, err := h.update(e.Request, func(s state.Selection) (state.Selection, error) {
			return s.ToggleSidebar(), nil
		})
		if err != nil {
			logger.WithError(err).Error("sidebar: failed to toggle")
			return ErrorToast(e, http.StatusInternalServerError, "Failed to toggle sidebar")
		}
		return redirect(e, tabPath(sel.ActiveTab))
	}
}

// redirect sends HTMX callers an HX-Redirect and everyone else a 302.
func redirect(e *core.RequestEvent, url string) error {
	if e.Request.Header.Get("HX-Request") == "true" {
		e.Response.Header().Set("HX-Redirect", url)
		return e.String(http.StatusOK, "OK")
	}
	return e.Redirect(http.StatusFound, url)
}
