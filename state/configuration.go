package state

import (
	"karcherhub/catalog"
)

// EquipmentSource is the slice of the catalog that Resolve needs.
type EquipmentSource interface {
	EquipmentByID(id string) (catalog.Equipment, error)
}

// Configuration is a Selection resolved against the catalog: the chosen
// equipment with its chosen options (in selection order) and battery.
type Configuration struct {
	Equipment *catalog.Equipment
	Options   []catalog.OptionItem
	Battery   *catalog.BatteryVariant
}

// Empty reports whether no equipment is being configured.
func (c Configuration) Empty() bool { return c.Equipment == nil }

// Resolve looks up every reference held by s. References the catalog no
// longer knows are dropped rather than reported.
func (s Selection) Resolve(src EquipmentSource) Configuration {
	if !s.HasEquipment() {
		return Configuration{}
	}
	eq, err := src.EquipmentByID(s.EquipmentID)
	if err != nil {
		return Configuration{}
	}

	cfg := Configuration{Equipment: &eq}
	for _, pn := range s.OptionPNs {
		if opt, ok := eq.Option(pn); ok {
			cfg.Options = append(cfg.Options, opt)
		}
	}
	if s.BatteryPN != "" {
		if b, ok := eq.Battery(s.BatteryPN); ok {
			cfg.Battery = &b
		}
	}
	return cfg
}
