package services

import (
	"testing"

	"karcherhub/catalog"
	"karcherhub/state"
)

func loadCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return store
}

func mustEquipment(t *testing.T, store *catalog.Store, id string) catalog.Equipment {
	t.Helper()
	eq, err := store.EquipmentByID(id)
	if err != nil {
		t.Fatalf("equipment %s: %v", id, err)
	}
	return eq
}

// configure selects id and applies the given battery and option part numbers.
func configure(t *testing.T, store *catalog.Store, id, batteryPN string, optionPNs ...string) (state.Selection, state.Configuration) {
	t.Helper()
	eq := mustEquipment(t, store, id)
	sel := state.Default().SelectEquipment(eq)
	var err error
	if batteryPN != "" {
		b, _ := eq.Battery(batteryPN)
		if sel, err = sel.SetBattery(eq, b); err != nil {
			t.Fatalf("SetBattery(%s): %v", batteryPN, err)
		}
	}
	for _, pn := range optionPNs {
		opt, _ := eq.Option(pn)
		if sel, err = sel.ToggleOption(eq, opt); err != nil {
			t.Fatalf("ToggleOption(%s): %v", pn, err)
		}
	}
	return sel, sel.Resolve(store)
}
