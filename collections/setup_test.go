package collections_test

import (
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"karcherhub/collections"
	"karcherhub/testhelpers"
)

var expectedCollections = []string{
	collections.Equipment,
	collections.SpareParts,
	collections.Stock,
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	if err := collections.Setup(app); err != nil {
		t.Fatalf("second Setup(): %v", err)
	}

	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q was recreated: id %q -> %q", name, ids[name], col.Id)
		}
	}
}

func TestSetup_PublicReadOnly(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Fatalf("collection %q: %v", name, err)
		}
		if col.ListRule == nil || *col.ListRule != "" {
			t.Errorf("%s: expected public list rule", name)
		}
		if col.ViewRule == nil || *col.ViewRule != "" {
			t.Errorf("%s: expected public view rule", name)
		}
		if col.CreateRule != nil || col.UpdateRule != nil || col.DeleteRule != nil {
			t.Errorf("%s: expected writes to be superuser only", name)
		}
	}
}

func TestSetup_EquipmentFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, err := app.FindCollectionByNameOrId(collections.Equipment)
	if err != nil {
		t.Fatalf("equipment collection: %v", err)
	}
	for _, field := range []string{"part_number", "name", "category", "origin", "status", "price", "specs", "mandatory", "options", "batteries", "sort_order"} {
		if col.Fields.GetByName(field) == nil {
			t.Errorf("expected field %q on equipment", field)
		}
	}
}

func TestSetup_StockCascadesWithEquipment(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	equipment, _ := app.FindCollectionByNameOrId(collections.Equipment)
	stock, err := app.FindCollectionByNameOrId(collections.Stock)
	if err != nil {
		t.Fatalf("stock collection: %v", err)
	}

	rel, ok := stock.Fields.GetByName("equipment").(*core.RelationField)
	if !ok {
		t.Fatal("expected stock.equipment to be a relation field")
	}
	if rel.CollectionId != equipment.Id {
		t.Errorf("expected relation to equipment (%s), got %s", equipment.Id, rel.CollectionId)
	}
	if !rel.CascadeDelete {
		t.Error("expected stock rows to be deleted with their equipment")
	}
}
