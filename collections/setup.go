// Package collections mirrors the loaded catalog into PocketBase so it can be
// browsed through the admin dashboard and the public records API.
package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"karcherhub/config"
)

// Collection names.
const (
	Equipment  = "equipment"
	SpareParts = "spare_parts"
	Stock      = "stock"
)

var logger = config.GetLogger()

// Setup ensures the equipment, spare_parts and stock collections exist.
// Anyone may list and view them; only superusers may write.
func Setup(app core.App) error {
	equipment, err := ensureCollection(app, Equipment, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "part_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "category"})
		c.Fields.Add(&core.TextField{Name: "origin"})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"on_sale", "discontinued"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "price", OnlyInt: true})
		c.Fields.Add(&core.JSONField{Name: "specs"})
		c.Fields.Add(&core.JSONField{Name: "mandatory"})
		c.Fields.Add(&core.JSONField{Name: "options"})
		c.Fields.Add(&core.JSONField{Name: "batteries"})
		c.Fields.Add(&core.NumberField{Name: "sort_order", OnlyInt: true})
		c.AddIndex("idx_equipment_part_number", true, "part_number", "")
	})
	if err != nil {
		return err
	}

	_, err = ensureCollection(app, SpareParts, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "part_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.TextField{Name: "category"})
		c.Fields.Add(&core.NumberField{Name: "price", OnlyInt: true})
		c.Fields.Add(&core.NumberField{Name: "sort_order", OnlyInt: true})
		c.AddIndex("idx_spare_parts_part_number", true, "part_number", "")
	})
	if err != nil {
		return err
	}

	_, err = ensureCollection(app, Stock, func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "equipment",
			Required:      true,
			CollectionId:  equipment.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "on_hand", OnlyInt: true})
		c.Fields.Add(&core.NumberField{Name: "pending_inspection", OnlyInt: true})
		c.Fields.Add(&core.NumberField{Name: "in_transit", OnlyInt: true})
		c.Fields.Add(&core.TextField{Name: "eta"})
		c.AddIndex("idx_stock_equipment", true, "equipment", "")
	})
	return err
}

// ensureCollection returns the named collection, creating it as a public
// read-only base collection when it does not exist yet.
func ensureCollection(app core.App, name string, addFields func(*core.Collection)) (*core.Collection, error) {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		logger.WithField("collection", name).Debug("collections: already exists")
		return existing, nil
	}

	collection := core.NewBaseCollection(name)
	collection.ListRule = types.Pointer("")
	collection.ViewRule = types.Pointer("")
	addFields(collection)

	if err := app.Save(collection); err != nil {
		return nil, fmt.Errorf("create collection %q: %w", name, err)
	}

	logger.WithField("collection", name).WithField("id", collection.Id).Info("collections: created")
	return collection, nil
}
