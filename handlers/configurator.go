package handlers

import (
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase/core"
	"github.com/sirupsen/logrus"

	"karcherhub/catalog"
	"karcherhub/state"
	"karcherhub/templates"
)

const (
	msgEquipmentNotFound = "장비를 찾을 수 없습니다."
	msgOptionNotOffered  = "선택한 장비에서 제공하지 않는 옵션입니다."
	msgBatteryNotOffered = "선택한 장비에서 제공하지 않는 배터리입니다."
	msgEquipmentChanged  = "선택한 장비가 변경되었습니다. 화면을 새로 고쳐 주세요."
)

// selectionError maps a Selection mutation error onto a status and message.
func selectionError(err error) (int, string) {
	switch {
	case errors.Is(err, state.ErrNoEquipment):
		return http.StatusConflict, templates.EmptyConfiguratorMessage
	case errors.Is(err, state.ErrNotSelected):
		return http.StatusConflict, msgEquipmentChanged
	case errors.Is(err, state.ErrOptionNotOffered):
		return http.StatusUnprocessableEntity, msgOptionNotOffered
	case errors.Is(err, state.ErrBatteryNotOffered):
		return http.StatusUnprocessableEntity, msgBatteryNotOffered
	}
	return http.StatusInternalServerError, "Failed to update configuration"
}

// selectedEquipment resolves the equipment the visitor is configuring.
func (h *Hub) selectedEquipment(sel state.Selection) (catalog.Equipment, error) {
	if !sel.HasEquipment() {
		return catalog.Equipment{}, state.ErrNoEquipment
	}
	eq, err := h.Catalog.EquipmentByID(sel.EquipmentID)
	if err != nil {
		// The catalog never shrinks at runtime, so this is a stale cookie
		// from before a restart with a different data file.
		return catalog.Equipment{}, state.ErrNoEquipment
	}
	return eq, nil
}

// HandleSelectEquipment starts a new configuration for the equipment in the
// path and sends the visitor to the configurator.
func HandleSelectEquipment(h *Hub) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		eq, err := h.Catalog.EquipmentByID(id)
		if err != nil {
			logger.WithField("equipment", id).Info("configurator: unknown equipment")
			return ErrorToast(e, http.StatusNotFound, msgEquipmentNotFound)
		}

		_, err = h.update(e.Request, func(s state.Selection) (state.Selection, error) {
			return s.SelectEquipment(eq), nil
		})
		if err != nil {
			logger.WithError(err).WithField("equipment", id).Error("configurator: failed to select equipment")
			return ErrorToast(e, http.StatusInternalServerError, "Failed to select equipment")
		}
		return redirect(e, tabPath(state.TabConfigurator))
	}
}

// HandleToggleOption adds or removes the option in the path.
func HandleToggleOption(h *Hub) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		pn := e.Request.PathValue("pn")
		eq, err := h.selectedEquipment(h.selection(e.Request))
		if err != nil {
			status, msg := selectionError(err)
			return ErrorToast(e, status, msg)
		}
		opt, ok := eq.Option(pn)
		if !ok {
			logger.WithFields(logrus.Fields{"equipment": eq.ID, "part_number": pn}).Info("configurator: option not offered")
			return ErrorToast(e, http.StatusUnprocessableEntity, msgOptionNotOffered)
		}

		sel, err := h.update(e.Request, func(s state.Selection) (state.Selection, error) {
			return s.ToggleOption(eq, opt)
		})
		if err != nil {
			status, msg := selectionError(err)
			return ErrorToast(e, status, msg)
		}
		return renderConfigurator(e, h, sel)
	}
}

// HandleSetBattery selects the battery variant in the path.
func HandleSetBattery(h *Hub) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		pn := e.Request.PathValue("pn")
		eq, err := h.selectedEquipment(h.selection(e.Request))
		if err != nil {
			status, msg := selectionError(err)
			return ErrorToast(e, status, msg)
		}
		variant, ok := eq.Battery(pn)
		if !ok {
			logger.WithFields(logrus.Fields{"equipment": eq.ID, "part_number": pn}).Info("configurator: battery not offered")
			return ErrorToast(e, http.StatusUnprocessableEntity, msgBatteryNotOffered)
		}

		sel, err := h.update(e.Request, func(s state.Selection) (state.Selection, error) {
			return s.SetBattery(eq, variant)
		})
		if err != nil {
			status, msg := selectionError(err)
			return ErrorToast(e, status, msg)
		}
		return renderConfigurator(e, h, sel)
	}
}

// renderConfigurator answers a configurator form post: HTMX gets the fresh
// configurator content, plain forms are sent back to the page.
func renderConfigurator(e *core.RequestEvent, h *Hub, sel state.Selection) error {
	if e.Request.Header.Get("HX-Request") != "true" {
		return e.Redirect(http.StatusFound, tabPath(state.TabConfigurator))
	}
	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	return templates.ConfiguratorContent(buildConfiguratorData(h, sel)).Render(e.Request.Context(), e.Response)
}
