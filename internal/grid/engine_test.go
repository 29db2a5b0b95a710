package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandicon/jam-schedule-service/internal/domain"
)

func click(e *Engine, h domain.HourSlot) {
	e.PointerDown(h)
	e.Release()
}

func TestEngine_PointerDownTogglesAnchor(t *testing.T) {
	e := NewEngine("20261016")
	e.PointerDown(5)
	e.Release()
	e.PointerDown(7)
	e.Release()

	before := e.Selection()

	click(e, 9)
	assert.True(t, e.IsSelected(9))
	assert.Equal(t, before.Len()+1, e.Selection().Len())

	click(e, 9)
	assert.Equal(t, before.Hours(), e.Selection().Hours())

	// выбранный якорь снимает выделение
	click(e, 5)
	assert.False(t, e.IsSelected(5))
	assert.True(t, e.IsSelected(7))
}

func TestEngine_DragFillsToIntent(t *testing.T) {
	orders := [][]domain.HourSlot{
		{4, 5, 6},
		{6, 4, 5},
		{5, 6, 4, 5},
	}

	for _, order := range orders {
		e := NewEngine("20261016")
		require.True(t, e.PointerDown(3))
		assert.Equal(t, IntentSelect, e.Gesture().Intent)

		for _, h := range order {
			e.PointerEnter(h)
		}
		e.Release()

		for _, h := range []domain.HourSlot{3, 4, 5, 6} {
			assert.True(t, e.IsSelected(h), "hour %d order %v", h, order)
		}
	}
}

func TestEngine_DragDeselectDoesNotToggleBack(t *testing.T) {
	e := NewEngine("20261016")
	for _, h := range []domain.HourSlot{10, 11, 12} {
		click(e, h)
	}

	e.PointerDown(10)
	assert.Equal(t, IntentDeselect, e.Gesture().Intent)
	e.PointerEnter(11)
	e.PointerEnter(13) // уже снят, остается снятым
	e.PointerEnter(11) // повторный заход задает, а не переключает
	e.Release()

	assert.False(t, e.IsSelected(10))
	assert.False(t, e.IsSelected(11))
	assert.True(t, e.IsSelected(12))
	assert.False(t, e.IsSelected(13))
}

func TestEngine_PointerEnterSameSlotIsNoop(t *testing.T) {
	e := NewEngine("20261016")
	e.PointerDown(8)
	assert.False(t, e.PointerEnter(8))
	assert.True(t, e.IsSelected(8))
	assert.True(t, e.PointerEnter(9))
	assert.False(t, e.PointerEnter(9))
}

func TestEngine_PointerEnterWhileIdleIgnored(t *testing.T) {
	e := NewEngine("20261016")
	assert.False(t, e.PointerEnter(4))
	assert.Equal(t, 0, e.Selection().Len())
}

func TestEngine_ReleaseKeepsSelection(t *testing.T) {
	e := NewEngine("20261016")
	e.PointerDown(1)
	e.PointerEnter(2)
	e.Release()

	g := e.Gesture()
	assert.False(t, g.Active)
	assert.False(t, g.HasLast)
	assert.Equal(t, []domain.HourSlot{1, 2}, e.Selection().Hours())
}

func TestEngine_InvalidSlotIgnored(t *testing.T) {
	e := NewEngine("20261016")
	assert.False(t, e.PointerDown(24))
	assert.False(t, e.PointerDown(-1))
	assert.False(t, e.Dragging())
}

func TestEngine_SetDateResetsGesture(t *testing.T) {
	e := NewEngine("20261016")
	click(e, 14)
	click(e, 15)

	e.PointerDown(14) // идет жест снятия
	require.True(t, e.Dragging())
	require.Equal(t, IntentDeselect, e.Gesture().Intent)

	e.SetDate("20261017")

	assert.False(t, e.Dragging())
	assert.Equal(t, "20261017", e.Date())
	assert.Equal(t, 0, e.Selection().Len())

	// намерение снятия не переходит на новую дату
	assert.False(t, e.PointerEnter(15))
	e.PointerDown(15)
	assert.Equal(t, IntentSelect, e.Gesture().Intent)
	assert.True(t, e.IsSelected(15))
}

func TestEngine_TouchMoveUsesLocator(t *testing.T) {
	e := NewEngine("20261016")
	loc := DefaultRowLocator(0, 0, 4, 1)

	e.PointerDown(0)
	assert.True(t, e.TouchMove(5, 0, loc))  // час 1
	assert.False(t, e.TouchMove(6, 0, loc)) // все еще час 1
	assert.True(t, e.TouchMove(9, 1, loc))  // час 14
	assert.False(t, e.TouchMove(-3, 0, loc))
	e.Release()

	assert.Equal(t, []domain.HourSlot{0, 1, 14}, e.Selection().Hours())
}

func TestEngine_Confirm(t *testing.T) {
	e := NewEngine("20261016")

	_, _, err := e.Confirm()
	assert.ErrorIs(t, err, ErrEmptySelection)

	e.PointerDown(9)
	e.PointerEnter(10)
	e.PointerEnter(11)
	e.Release()
	click(e, 15)

	date, ranges, err := e.Confirm()
	require.NoError(t, err)
	assert.Equal(t, "20261016", date)
	assert.Equal(t, []domain.CoverageRange{{StartHour: 9, EndHour: 11}, {StartHour: 15, EndHour: 15}}, ranges)
	assert.Equal(t, 0, e.Selection().Len())
}

func TestEngine_Cancel(t *testing.T) {
	e := NewEngine("20261016")
	e.PointerDown(3)
	e.Cancel()

	assert.False(t, e.Dragging())
	assert.Equal(t, 0, e.Selection().Len())
	assert.Equal(t, "20261016", e.Date())
}

func TestEngine_MountReleasesFromHub(t *testing.T) {
	hub := NewReleaseHub()
	e := NewEngine("20261016")
	unmount := e.Mount(hub)

	e.PointerDown(6)
	hub.Release()
	assert.False(t, e.Dragging())

	unmount()
	assert.Equal(t, 0, hub.Subscribers())

	e.PointerDown(7)
	hub.Release()
	assert.True(t, e.Dragging(), "unmounted engine must not react")
}
