package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStockRows(t *testing.T) {
	store := loadCatalog(t)

	rows := BuildStockRows(store)
	require.Len(t, rows, 3)

	km := rows[0]
	assert.Equal(t, "1.280-170.0", km.EquipmentID)
	assert.Equal(t, 62, km.OnHand)
	assert.Equal(t, 1, km.PendingInspection)
	assert.Equal(t, "2026.01.28", km.ETA)
	assert.Equal(t, StockAvailable, km.Status)

	hd := rows[1]
	assert.Equal(t, "1.520-820.0", hd.EquipmentID)
	assert.Equal(t, 0, hd.OnHand)
	assert.Equal(t, NoETA, hd.ETA)
	assert.Equal(t, "-", hd.ETA)
}

func TestBuildStatCards(t *testing.T) {
	store := loadCatalog(t)

	cards := BuildStatCards(store)
	require.Len(t, cards, 4)
	assert.Equal(t, "124", cards[0].Value)
	assert.Equal(t, StatCardAvailableStock, cards[1].Key)
	assert.Equal(t, "62", cards[1].Value)
}
