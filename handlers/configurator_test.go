package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karcherhub/state"
	"karcherhub/testhelpers"
)

func post(t *testing.T, h *Hub, handler func(*Hub) func(*core.RequestEvent) error, target, key, value string) *httptest.ResponseRecorder {
	t.Helper()
	req := htmx(newSessionRequest(http.MethodPost, target))
	req.SetPathValue(key, value)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(h)(newTestRequestEvent(req, rec)))
	return rec
}

func TestHandleSelectEquipment_Success(t *testing.T) {
	hub := newTestHub(t)
	seedSelection(t, hub, func(s state.Selection) (state.Selection, error) {
		return s.SetActiveTab(state.TabCatalog)
	})

	rec := post(t, hub, HandleSelectEquipment, "/configurator/equipment/1.280-170.0", "id", "1.280-170.0")

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/configurator")
	sel := currentSelection(hub)
	assert.Equal(t, "1.280-170.0", sel.EquipmentID)
	assert.Equal(t, state.TabConfigurator, sel.ActiveTab)
	assert.Equal(t, "9.711-153.0", sel.BatteryPN, "first battery variant is the default")
	assert.Empty(t, sel.OptionPNs)
}

func TestHandleSelectEquipment_NotFound(t *testing.T) {
	hub := newTestHub(t)

	rec := post(t, hub, HandleSelectEquipment, "/configurator/equipment/nope", "id", "nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "none", rec.Header().Get("HX-Reswap"))
	assert.False(t, currentSelection(hub).HasEquipment())
}

func TestHandleSelectEquipment_PlainFormRedirects(t *testing.T) {
	hub := newTestHub(t)

	req := newSessionRequest(http.MethodPost, "/configurator/equipment/1.520-820.0")
	req.SetPathValue("id", "1.520-820.0")
	rec := httptest.NewRecorder()
	require.NoError(t, HandleSelectEquipment(hub)(newTestRequestEvent(req, rec)))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/configurator", rec.Header().Get("Location"))
	assert.Empty(t, currentSelection(hub).BatteryPN, "equipment without batteries has none selected")
}

func TestHandleSelectEquipment_ResetsPreviousConfiguration(t *testing.T) {
	hub := newTestHub(t)
	selectEquipment(t, hub, "1.280-170.0")
	post(t, hub, HandleToggleOption, "/configurator/options/2.852-913.0", "pn", "2.852-913.0")
	post(t, hub, HandleSetBattery, "/configurator/battery/9.711-036.0", "pn", "9.711-036.0")

	post(t, hub, HandleSelectEquipment, "/configurator/equipment/1.127-007.0", "id", "1.127-007.0")

	sel := currentSelection(hub)
	assert.Equal(t, "1.127-007.0", sel.EquipmentID)
	assert.Empty(t, sel.OptionPNs)
	assert.Equal(t, "9.711-136.0", sel.BatteryPN)
}

func TestHandleToggleOption_NoEquipment(t *testing.T) {
	hub := newTestHub(t)

	rec := post(t, hub, HandleToggleOption, "/configurator/options/2.852-913.0", "pn", "2.852-913.0")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "먼저 카탈로그에서 제품을 선택해 주세요.", rec.Body.String())
}

func TestHandleToggleOption_ForeignOption(t *testing.T) {
	hub := newTestHub(t)
	selectEquipment(t, hub, "1.280-170.0")

	// Eco!Booster belongs to the pressure washer.
	rec := post(t, hub, HandleToggleOption, "/configurator/options/2.113-084.0", "pn", "2.113-084.0")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, currentSelection(hub).OptionPNs)
}

func TestHandleToggleOption_RendersLiveTotal(t *testing.T) {
	hub := newTestHub(t)
	selectEquipment(t, hub, "1.280-170.0")

	rec := post(t, hub, HandleToggleOption, "/configurator/options/2.852-913.0", "pn", "2.852-913.0")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		`id="quote-total" class="text-3xl font-black text-[#FFED00]">₩40,674,300</p>`,
		`value="2.852-913.0" checked`,
		"기본 장비 본체",
		"Add-on kit side broom left",
	)
	testhelpers.AssertHTMLNotContains(t, body, "<!doctype html>")
	assert.Equal(t, []string{"2.852-913.0"}, currentSelection(hub).OptionPNs)

	// Toggling again removes it.
	rec = post(t, hub, HandleToggleOption, "/configurator/options/2.852-913.0", "pn", "2.852-913.0")
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "₩37,400,000</p>")
	assert.Empty(t, currentSelection(hub).OptionPNs)
}

func TestHandleSetBattery(t *testing.T) {
	hub := newTestHub(t)
	selectEquipment(t, hub, "1.280-170.0")
	post(t, hub, HandleToggleOption, "/configurator/options/2.852-913.0", "pn", "2.852-913.0")

	rec := post(t, hub, HandleSetBattery, "/configurator/battery/9.711-036.0", "pn", "9.711-036.0")

	require.Equal(t, http.StatusOK, rec.Code)
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"₩41,774,300</p>",
		"옵션 2_리튬",
		"Battery BTS-LFP 24V300Ah",
		"충전기 9.711-121.0",
		`aria-pressed="true"`,
	)
	assert.Equal(t, "9.711-036.0", currentSelection(hub).BatteryPN)

	// Dropping the option leaves base plus lithium battery.
	rec = post(t, hub, HandleToggleOption, "/configurator/options/2.852-913.0", "pn", "2.852-913.0")
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "₩38,500,000</p>")
}

func TestHandleSetBattery_ForeignBattery(t *testing.T) {
	hub := newTestHub(t)
	selectEquipment(t, hub, "1.280-170.0")

	// The walk-behind scrubber's battery.
	rec := post(t, hub, HandleSetBattery, "/configurator/battery/9.711-031.0", "pn", "9.711-031.0")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "9.711-153.0", currentSelection(hub).BatteryPN)
}

func TestHandleSetBattery_NoEquipment(t *testing.T) {
	hub := newTestHub(t)

	rec := post(t, hub, HandleSetBattery, "/configurator/battery/9.711-036.0", "pn", "9.711-036.0")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleToggleOption_PlainFormRedirects(t *testing.T) {
	hub := newTestHub(t)
	selectEquipment(t, hub, "1.520-820.0")

	req := newSessionRequest(http.MethodPost, "/configurator/options/4.767-144.0")
	req.SetPathValue("pn", "4.767-144.0")
	rec := httptest.NewRecorder()
	require.NoError(t, HandleToggleOption(hub)(newTestRequestEvent(req, rec)))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/configurator", rec.Header().Get("Location"))
	assert.True(t, currentSelection(hub).HasOption("4.767-144.0"))
}

func TestHandleTab_ConfiguratorBreakdown(t *testing.T) {
	hub := newTestHub(t)
	selectEquipment(t, hub, "1.280-170.0")

	req := htmx(newSessionRequest(http.MethodGet, "/configurator"))
	rec := httptest.NewRecorder()
	require.NoError(t, HandleTab(hub, state.TabConfigurator)(newTestRequestEvent(req, rec)))

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"KM 100/120 R Bp",
		"1700x1195x1370mm",
		"필수 구성품 (가격 포함)",
		"Filter element", "6.414-532.0", "₩438,300",
		"배터리 및 충전기",
		"추가 옵션",
		"총 합계액",
		`href="/configurator/quote.pdf"`,
		`href="/configurator/quote.xlsx"`,
	)
	testhelpers.AssertHTMLContains(t, body, `id="quote-total" class="text-3xl font-black text-[#FFED00]">₩37,400,000</p>`)
}
