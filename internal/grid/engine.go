package grid

import (
	"errors"
	"sync"

	"github.com/bandicon/jam-schedule-service/internal/domain"
)

var ErrEmptySelection = errors.New("grid: nothing selected")

// Intent направление закраски жеста, задается первым слотом
type Intent int

const (
	IntentSelect Intent = iota
	IntentDeselect
)

func (i Intent) String() string {
	if i == IntentDeselect {
		return "deselect"
	}
	return "select"
}

// Gesture состояние перетаскивания между нажатием и отпусканием
type Gesture struct {
	Active      bool
	Intent      Intent
	LastTouched domain.HourSlot
	HasLast     bool
}

// Engine сетка доступности одной даты: выделение и автомат перетаскивания.
//
// Idle -> Dragging на PointerDown; Dragging -> Dragging на PointerEnter и
// TouchMove; Dragging -> Idle на Release и при любой смене даты.
// Методы можно вызывать из горутины ReleaseHub.
type Engine struct {
	mu        sync.Mutex
	selection Selection
	gesture   Gesture
}

// NewEngine создает движок в состоянии Idle с пустым выделением на дату
func NewEngine(date string) *Engine {
	return &Engine{selection: Selection{Date: date}}
}

// Date активная дата
func (e *Engine) Date() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selection.Date
}

// SetDate переключает дату. Начатый жест сбрасывается,
// выделение заменяется пустым для новой даты.
func (e *Engine) SetDate(date string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gesture = Gesture{}
	e.selection = Selection{Date: date}
}

// PointerDown начинает жест на h. Слот переключается, его новое состояние
// становится намерением до конца жеста.
func (e *Engine) PointerDown(h domain.HourSlot) bool {
	if !h.Valid() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	intent := IntentSelect
	if e.selection.IsSelected(h) {
		intent = IntentDeselect
	}

	e.gesture = Gesture{Active: true, Intent: intent, LastTouched: h, HasLast: true}
	e.selection.set(h, intent == IntentSelect)
	return true
}

// PointerEnter приводит h к намерению жеста. Ничего не делает в Idle
// и для последнего затронутого слота.
func (e *Engine) PointerEnter(h domain.HourSlot) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enter(h)
}

// TouchMove находит слот под (x, y) и продолжает на нем жест.
// У касаний нет событий входа в ячейку, поэтому каждое движение разрешается здесь.
func (e *Engine) TouchMove(x, y int, locator SlotLocator) bool {
	h, ok := locator.SlotAt(x, y)
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enter(h)
}

func (e *Engine) enter(h domain.HourSlot) bool {
	if !e.gesture.Active || !h.Valid() {
		return false
	}
	if e.gesture.HasLast && e.gesture.LastTouched == h {
		return false
	}

	e.gesture.LastTouched = h
	e.gesture.HasLast = true
	e.selection.set(h, e.gesture.Intent == IntentSelect)
	return true
}

// Release завершает жест, выделение не меняется
func (e *Engine) Release() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gesture = Gesture{}
}

// Dragging идет ли жест
func (e *Engine) Dragging() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gesture.Active
}

// Gesture снимок состояния жеста
func (e *Engine) Gesture() Gesture {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gesture
}

// IsSelected выделен ли h на активной дате
func (e *Engine) IsSelected(h domain.HourSlot) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selection.IsSelected(h)
}

// Selection снимок текущего выделения
func (e *Engine) Selection() Selection {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selection
}

// Confirm возвращает слитые диапазоны выделения и очищает его.
// Пустое выделение отклоняется, состояние не меняется.
func (e *Engine) Confirm() (string, []domain.CoverageRange, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.selection.Len() == 0 {
		return e.selection.Date, nil, ErrEmptySelection
	}

	ranges := MergeRanges(e.selection.Hours())
	date := e.selection.Date
	e.selection = Selection{Date: date}
	e.gesture = Gesture{}
	return date, ranges, nil
}

// Cancel очищает выделение без сохранения
func (e *Engine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selection = Selection{Date: e.selection.Date}
	e.gesture = Gesture{}
}

// Mount подписывает движок на глобальный ReleaseHub. Возвращаемая функция
// отписывает, ее нужно вызвать при закрытии сетки.
func (e *Engine) Mount(hub *ReleaseHub) (unmount func()) {
	return hub.Subscribe(e.Release)
}
