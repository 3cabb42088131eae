package services

import (
	"strconv"

	"karcherhub/catalog"
)

// NoETA is shown when an equipment has no stock row or no arrival date.
const NoETA = "-"

// Stock status labels.
const (
	StockAvailable = "Available"
	StockInTransit = "In transit"
	StockBackorder = "Backorder"
)

// StockRow is one line of the dashboard stock table.
type StockRow struct {
	EquipmentID       string
	Name              string
	OnHand            int
	PendingInspection int
	InTransit         int
	ETA               string
	Status            string
}

// StockSource is the slice of the catalog the dashboard reads.
type StockSource interface {
	Equipment() []catalog.Equipment
	Stock(id string) (catalog.StockRecord, bool)
	StatCards() []catalog.StatCard
	StockRecords() map[string]catalog.StockRecord
}

// BuildStockRows joins every equipment record with its stock row. Equipment
// without a stock row shows zero quantities and the NoETA placeholder.
func BuildStockRows(src StockSource) []StockRow {
	equipment := src.Equipment()
	rows := make([]StockRow, 0, len(equipment))
	for _, eq := range equipment {
		rec, _ := src.Stock(eq.ID)
		eta := rec.ETA
		if eta == "" {
			eta = NoETA
		}
		rows = append(rows, StockRow{
			EquipmentID:       eq.ID,
			Name:              eq.Name,
			OnHand:            rec.OnHand,
			PendingInspection: rec.PendingInspection,
			InTransit:         rec.InTransit,
			ETA:               eta,
			Status:            stockStatus(rec),
		})
	}
	return rows
}

func stockStatus(rec catalog.StockRecord) string {
	switch {
	case rec.OnHand > 0:
		return StockAvailable
	case rec.InTransit > 0:
		return StockInTransit
	default:
		return StockBackorder
	}
}

// StatCardAvailableStock is the stat card whose value is computed from the
// stock table instead of being read from the data file.
const StatCardAvailableStock = "available_stock"

// BuildStatCards returns the dashboard stat cards with computed values filled in.
func BuildStatCards(src StockSource) []catalog.StatCard {
	cards := src.StatCards()
	for i := range cards {
		if cards[i].Key == StatCardAvailableStock {
			total := 0
			for _, rec := range src.StockRecords() {
				total += rec.OnHand
			}
			cards[i].Value = strconv.Itoa(total)
		}
	}
	return cards
}
