package grid

import "github.com/bandicon/jam-schedule-service/internal/domain"

// SlotLocator определяет слот, нарисованный в точке экрана
type SlotLocator interface {
	SlotAt(x, y int) (domain.HourSlot, bool)
}

// LocatorFunc адаптер функции к SlotLocator
type LocatorFunc func(x, y int) (domain.HourSlot, bool)

func (f LocatorFunc) SlotAt(x, y int) (domain.HourSlot, bool) {
	return f(x, y)
}

// RowLocator геометрия сетки из рядов одинаковых ячеек, заполняемых слева
// направо и сверху вниз начиная с FirstHour. По умолчанию два ряда по двенадцать.
type RowLocator struct {
	OriginX    int
	OriginY    int
	CellWidth  int
	CellHeight int
	Columns    int
	FirstHour  domain.HourSlot
	Hours      int
}

// DefaultRowLocator два ряда (до и после полудня) с заданным началом и размером ячейки
func DefaultRowLocator(originX, originY, cellWidth, cellHeight int) RowLocator {
	return RowLocator{
		OriginX:    originX,
		OriginY:    originY,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Columns:    12,
		FirstHour:  domain.MinHour,
		Hours:      domain.HoursPerDay,
	}
}

func (l RowLocator) SlotAt(x, y int) (domain.HourSlot, bool) {
	if l.CellWidth <= 0 || l.CellHeight <= 0 || l.Columns <= 0 {
		return 0, false
	}
	dx, dy := x-l.OriginX, y-l.OriginY
	if dx < 0 || dy < 0 {
		return 0, false
	}

	col := dx / l.CellWidth
	row := dy / l.CellHeight
	if col >= l.Columns {
		return 0, false
	}

	idx := row*l.Columns + col
	if idx >= l.Hours {
		return 0, false
	}

	h := l.FirstHour + domain.HourSlot(idx)
	if !h.Valid() {
		return 0, false
	}
	return h, true
}

// CellOrigin левый верхний угол ячейки слота h
func (l RowLocator) CellOrigin(h domain.HourSlot) (int, int, bool) {
	idx := int(h - l.FirstHour)
	if idx < 0 || idx >= l.Hours || l.Columns <= 0 {
		return 0, 0, false
	}
	return l.OriginX + (idx%l.Columns)*l.CellWidth, l.OriginY + (idx/l.Columns)*l.CellHeight, true
}
