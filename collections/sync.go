package collections

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pocketbase/pocketbase/core"
	"github.com/sirupsen/logrus"

	"karcherhub/catalog"
)

// SyncCatalog makes the mirror equal to store: records are upserted by part
// number and records the store no longer has are deleted. It runs in one
// transaction.
func SyncCatalog(app core.App, store *catalog.Store) error {
	var stats syncStats
	err := app.RunInTransaction(func(txApp core.App) error {
		equipmentIDs, err := syncEquipment(txApp, store.Equipment(), &stats)
		if err != nil {
			return err
		}
		if err := syncSpareParts(txApp, store.SpareParts(), &stats); err != nil {
			return err
		}
		return syncStock(txApp, store.StockRecords(), equipmentIDs, &stats)
	})
	if err != nil {
		return fmt.Errorf("sync catalog %s: %w", store.Version(), err)
	}

	logger.WithFields(logrus.Fields{
		"version":  store.Version(),
		"upserted": stats.upserted,
		"deleted":  stats.deleted,
	}).Info("collections: catalog mirror synced")
	return nil
}

type syncStats struct {
	upserted int
	deleted  int
}

// findOrNew returns the record whose key field equals value, or a new
// unsaved record when there is none.
func findOrNew(app core.App, collection, key string, value any) (*core.Record, error) {
	rec, err := app.FindFirstRecordByData(collection, key, value)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find %s %s=%v: %w", collection, key, value, err)
	}
	col, err := app.FindCollectionByNameOrId(collection)
	if err != nil {
		return nil, fmt.Errorf("find collection %s: %w", collection, err)
	}
	return core.NewRecord(col), nil
}

// prune deletes every record of collection whose id is not in keep.
func prune(app core.App, collection string, keep map[string]bool, stats *syncStats) error {
	all, err := app.FindAllRecords(collection)
	if err != nil {
		return fmt.Errorf("list %s: %w", collection, err)
	}
	for _, rec := range all {
		if keep[rec.Id] {
			continue
		}
		if err := app.Delete(rec); err != nil {
			return fmt.Errorf("delete %s %s: %w", collection, rec.Id, err)
		}
		stats.deleted++
	}
	return nil
}

// syncEquipment returns the mirror record id of every equipment part number.
func syncEquipment(app core.App, equipment []catalog.Equipment, stats *syncStats) (map[string]string, error) {
	ids := make(map[string]string, len(equipment))
	keep := make(map[string]bool, len(equipment))
	for i, eq := range equipment {
		rec, err := findOrNew(app, Equipment, "part_number", eq.ID)
		if err != nil {
			return nil, err
		}
		rec.Set("part_number", eq.ID)
		rec.Set("name", eq.Name)
		rec.Set("category", eq.Category)
		rec.Set("origin", eq.Origin)
		rec.Set("status", string(eq.Status))
		rec.Set("price", eq.Price)
		rec.Set("specs", eq.Specs)
		rec.Set("mandatory", eq.Mandatory)
		rec.Set("options", eq.Options)
		rec.Set("batteries", eq.Batteries)
		rec.Set("sort_order", i)
		if err := app.Save(rec); err != nil {
			return nil, fmt.Errorf("save equipment %s: %w", eq.ID, err)
		}
		ids[eq.ID] = rec.Id
		keep[rec.Id] = true
		stats.upserted++
	}
	return ids, prune(app, Equipment, keep, stats)
}

func syncSpareParts(app core.App, parts []catalog.SparePart, stats *syncStats) error {
	keep := make(map[string]bool, len(parts))
	for i, p := range parts {
		rec, err := findOrNew(app, SpareParts, "part_number", p.PartNumber)
		if err != nil {
			return err
		}
		rec.Set("part_number", p.PartNumber)
		rec.Set("description", p.Description)
		rec.Set("category", p.Category)
		rec.Set("price", p.Price)
		rec.Set("sort_order", i)
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("save spare part %s: %w", p.PartNumber, err)
		}
		keep[rec.Id] = true
		stats.upserted++
	}
	return prune(app, SpareParts, keep, stats)
}

func syncStock(app core.App, stock map[string]catalog.StockRecord, equipmentIDs map[string]string, stats *syncStats) error {
	keep := make(map[string]bool, len(stock))
	for pn, s := range stock {
		recID, ok := equipmentIDs[pn]
		if !ok {
			return fmt.Errorf("stock %s: no such equipment", pn)
		}
		rec, err := findOrNew(app, Stock, "equipment", recID)
		if err != nil {
			return err
		}
		rec.Set("equipment", recID)
		rec.Set("on_hand", s.OnHand)
		rec.Set("pending_inspection", s.PendingInspection)
		rec.Set("in_transit", s.InTransit)
		rec.Set("eta", s.ETA)
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("save stock %s: %w", pn, err)
		}
		keep[rec.Id] = true
		stats.upserted++
	}
	return prune(app, Stock, keep, stats)
}
