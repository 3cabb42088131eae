// Package state holds the per-visitor selection: which tab is open, which
// equipment is being configured with which add-ons, and the search strings.
//
// A Selection is a plain value. Every mutator returns a new snapshot and
// leaves the receiver untouched, so a snapshot can be stored, compared and
// replayed without a rendering layer.
package state

import (
	"errors"
	"fmt"
	"slices"

	"karcherhub/catalog"
)

var (
	ErrUnknownTab        = errors.New("unknown tab")
	ErrNoEquipment       = errors.New("no equipment selected")
	ErrOptionNotOffered  = errors.New("option not offered for the selected equipment")
	ErrBatteryNotOffered = errors.New("battery not offered for the selected equipment")
	ErrNotSelected       = errors.New("equipment is not the selected one")
)

// Tab is one of the sidebar views.
type Tab string

const (
	TabDashboard    Tab = "dashboard"
	TabCatalog      Tab = "catalog"
	TabConfigurator Tab = "configurator"
	TabSpare        Tab = "spare"
	TabBattery      Tab = "battery"
	TabFAQ          Tab = "faq"
)

// Tabs lists every tab in sidebar order.
var Tabs = []Tab{TabDashboard, TabCatalog, TabConfigurator, TabSpare, TabBattery, TabFAQ}

// ParseTab validates a tab name.
func ParseTab(s string) (Tab, error) {
	t := Tab(s)
	if !slices.Contains(Tabs, t) {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownTab)
	}
	return t, nil
}

// Selection is the complete mutable UI state of one visitor.
type Selection struct {
	ActiveTab        Tab      `json:"active_tab"`
	EquipmentID      string   `json:"equipment_id,omitempty"`
	OptionPNs        []string `json:"option_pns,omitempty"`
	BatteryPN        string   `json:"battery_pn,omitempty"`
	SearchQuery      string   `json:"search_query,omitempty"`
	SparePartsQuery  string   `json:"spare_parts_query,omitempty"`
	SidebarCollapsed bool     `json:"sidebar_collapsed,omitempty"`
}

// Default is the state of a first visit: catalog open, nothing selected.
func Default() Selection {
	return Selection{ActiveTab: TabCatalog}
}

// HasEquipment reports whether an equipment record is being configured.
func (s Selection) HasEquipment() bool { return s.EquipmentID != "" }

// HasOption reports whether the option part number is in the selected set.
func (s Selection) HasOption(pn string) bool { return slices.Contains(s.OptionPNs, pn) }

// SetActiveTab switches the visible view. Any tab is reachable from any tab.
func (s Selection) SetActiveTab(tab Tab) (Selection, error) {
	if _, err := ParseTab(string(tab)); err != nil {
		return s, err
	}
	s.OptionPNs = slices.Clone(s.OptionPNs)
	s.ActiveTab = tab
	return s, nil
}

// SelectEquipment starts a fresh configuration for eq: no options, the first
// battery variant (if eq has any), and the configurator tab opened.
func (s Selection) SelectEquipment(eq catalog.Equipment) Selection {
	s.EquipmentID = eq.ID
	s.OptionPNs = nil
	s.BatteryPN = ""
	if b, ok := eq.DefaultBattery(); ok {
		s.BatteryPN = b.PartNumber
	}
	s.ActiveTab = TabConfigurator
	return s
}

// ToggleOption adds opt to the selected set, or removes it when already
// present. eq must be the currently selected equipment and must offer opt.
func (s Selection) ToggleOption(eq catalog.Equipment, opt catalog.OptionItem) (Selection, error) {
	if err := s.owns(eq); err != nil {
		return s, err
	}
	if _, ok := eq.Option(opt.PartNumber); !ok {
		return s, fmt.Errorf("%s: %w", opt.PartNumber, ErrOptionNotOffered)
	}

	if i := slices.Index(s.OptionPNs, opt.PartNumber); i >= 0 {
		s.OptionPNs = slices.Delete(slices.Clone(s.OptionPNs), i, i+1)
	} else {
		s.OptionPNs = append(slices.Clone(s.OptionPNs), opt.PartNumber)
	}
	if len(s.OptionPNs) == 0 {
		s.OptionPNs = nil
	}
	return s, nil
}

// SetBattery replaces the selected battery. Variants that eq does not offer
// are rejected so the configuration never mixes parts of two machines.
func (s Selection) SetBattery(eq catalog.Equipment, variant catalog.BatteryVariant) (Selection, error) {
	if err := s.owns(eq); err != nil {
		return s, err
	}
	if _, ok := eq.Battery(variant.PartNumber); !ok {
		return s, fmt.Errorf("%s: %w", variant.PartNumber, ErrBatteryNotOffered)
	}
	s.OptionPNs = slices.Clone(s.OptionPNs)
	s.BatteryPN = variant.PartNumber
	return s, nil
}

// SetSearchQuery replaces the catalog search text verbatim.
func (s Selection) SetSearchQuery(q string) Selection {
	s.OptionPNs = slices.Clone(s.OptionPNs)
	s.SearchQuery = q
	return s
}

// SetSparePartsQuery replaces the spare-parts search text verbatim.
func (s Selection) SetSparePartsQuery(q string) Selection {
	s.OptionPNs = slices.Clone(s.OptionPNs)
	s.SparePartsQuery = q
	return s
}

func (s Selection) ToggleSidebar() Selection {
	s.OptionPNs = slices.Clone(s.OptionPNs)
	s.SidebarCollapsed = !s.SidebarCollapsed
	return s
}

func (s Selection) owns(eq catalog.Equipment) error {
	if !s.HasEquipment() {
		return ErrNoEquipment
	}
	if eq.ID != s.EquipmentID {
		return fmt.Errorf("%s (selected %s): %w", eq.ID, s.EquipmentID, ErrNotSelected)
	}
	return nil
}
