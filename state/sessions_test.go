package state

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_GetUnknown(t *testing.T) {
	s, err := NewSessions(4)
	require.NoError(t, err)

	sel, ok := s.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, Default(), sel)
}

func TestSessions_Update(t *testing.T) {
	s, err := NewSessions(4)
	require.NoError(t, err)
	id := s.NewID()
	assert.True(t, ValidID(id))

	sel, err := s.Update(id, func(cur Selection) (Selection, error) {
		return cur.SelectEquipment(sweeper), nil
	})
	require.NoError(t, err)
	assert.Equal(t, sweeper.ID, sel.EquipmentID)

	stored, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, sel, stored)
}

func TestSessions_UpdateErrorKeepsState(t *testing.T) {
	s, err := NewSessions(4)
	require.NoError(t, err)
	id := s.NewID()

	_, err = s.Update(id, func(cur Selection) (Selection, error) {
		return cur.SelectEquipment(sweeper), nil
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	got, err := s.Update(id, func(cur Selection) (Selection, error) {
		return cur.SelectEquipment(washer), boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, sweeper.ID, got.EquipmentID)

	stored, _ := s.Get(id)
	assert.Equal(t, sweeper.ID, stored.EquipmentID)
}

func TestSessions_EvictsLeastRecentlyUsed(t *testing.T) {
	s, err := NewSessions(2)
	require.NoError(t, err)

	touch := func(id string) {
		_, err := s.Update(id, func(cur Selection) (Selection, error) { return cur.ToggleSidebar(), nil })
		require.NoError(t, err)
	}
	touch("a")
	touch("b")
	s.Get("a")
	touch("c")

	assert.Equal(t, 2, s.Len())
	_, ok := s.Get("b")
	assert.False(t, ok, "b was least recently used")
	_, ok = s.Get("a")
	assert.True(t, ok)
}

func TestSessions_ConcurrentToggles(t *testing.T) {
	s, err := NewSessions(8)
	require.NoError(t, err)
	id := s.NewID()
	_, err = s.Update(id, func(cur Selection) (Selection, error) { return cur.SelectEquipment(sweeper), nil })
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Update(id, func(cur Selection) (Selection, error) {
				return cur.ToggleOption(sweeper, sweeper.Options[0])
			})
		}()
	}
	wg.Wait()

	sel, _ := s.Get(id)
	assert.Empty(t, sel.OptionPNs, "an even number of toggles cancels out")
}

func TestNewSessions_InvalidCapacity(t *testing.T) {
	_, err := NewSessions(0)
	assert.Error(t, err)
}

func TestValidID(t *testing.T) {
	assert.False(t, ValidID(""))
	assert.False(t, ValidID("not-a-uuid"))
}
