package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bandicon/jam-schedule-service/internal/api/handlers"
	"github.com/bandicon/jam-schedule-service/internal/apiclient"
	"github.com/bandicon/jam-schedule-service/internal/domain"
	"github.com/bandicon/jam-schedule-service/internal/grid"
	"github.com/bandicon/jam-schedule-service/pkg/types"
)

// Геометрия сетки на экране: два ряда по двенадцать ячеек под заголовком из трех строк
const (
	gridOriginX = 0
	gridOriginY = 3
	cellWidth   = 6
	cellHeight  = 2
)

// GridClient API сервиса расписаний, нужное сетке
type GridClient interface {
	GetDayGrid(ctx context.Context, jamID int64, date string, editing []domain.HourSlot) (*apiclient.DayGrid, error)
	ConfirmSelection(ctx context.Context, jamID int64, date string, hours []domain.HourSlot) (*apiclient.ConfirmResult, error)
	ClearDay(ctx context.Context, jamID int64, date string) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarning
	statusError
)

type gridLoadedMsg struct {
	date string
	grid *apiclient.DayGrid
	err  error
}

type confirmedMsg struct {
	date   string
	result *apiclient.ConfirmResult
	err    error
}

type clearedMsg struct {
	date    string
	deleted int64
	err     error
}

// App bubbletea модель сетки доступности одного джема
type App struct {
	ctx    context.Context
	client GridClient
	log    Logger
	jamID  int64

	engine  *grid.Engine
	hub     *grid.ReleaseHub
	unmount func()
	locator grid.RowLocator

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	day        *apiclient.DayGrid
	loading    bool
	status     string
	statusKind statusKind
}

// NewApp монтирует новый движок на дату в hub. Отпускание, опубликованное в hub,
// завершает жест, даже если указатель отпущен вне сетки.
func NewApp(ctx context.Context, client GridClient, jamID int64, date string, hub *grid.ReleaseHub, log Logger) *App {
	engine := grid.NewEngine(date)

	s := spinner.New()
	s.Spinner = spinner.Dot

	return &App{
		ctx:     ctx,
		client:  client,
		log:     log,
		jamID:   jamID,
		engine:  engine,
		hub:     hub,
		unmount: engine.Mount(hub),
		locator: grid.DefaultRowLocator(gridOriginX, gridOriginY, cellWidth, cellHeight),
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: s,
		loading: true,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadGrid(a.engine.Date()))
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		a.handleMouse(msg)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case gridLoadedMsg:
		return a.handleGridLoaded(msg)

	case confirmedMsg:
		return a.handleConfirmed(msg)

	case clearedMsg:
		return a.handleCleared(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

// Close снимает подписку на отпускания
func (a *App) Close() {
	a.unmount()
}

func (a *App) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if h, ok := a.locator.SlotAt(msg.X, msg.Y); ok {
			a.engine.PointerDown(h)
		}

	case tea.MouseActionMotion:
		a.engine.TouchMove(msg.X, msg.Y, a.locator)

	case tea.MouseActionRelease:
		a.hub.Release()
	}
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.Close()
		return a, tea.Quit

	case key.Matches(msg, a.keys.PrevDay):
		return a, a.moveDate(-1)

	case key.Matches(msg, a.keys.NextDay):
		return a, a.moveDate(1)

	case key.Matches(msg, a.keys.Cancel):
		a.engine.Cancel()
		a.setStatus(statusInfo, "Selection cleared")
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		return a, a.confirm()

	case key.Matches(msg, a.keys.Clear):
		date := a.engine.Date()
		a.loading = true
		a.setStatus(statusInfo, "Deleting your schedules for "+date+"...")
		return a, a.clearDay(date)
	}

	return a, nil
}

func (a *App) moveDate(days int) tea.Cmd {
	next, err := types.DateString(a.engine.Date()).AddDays(days)
	if err != nil {
		a.setStatus(statusError, err.Error())
		return nil
	}

	a.engine.SetDate(next.String())
	a.day = nil
	a.loading = true
	a.status = ""
	return a.loadGrid(next.String())
}

func (a *App) confirm() tea.Cmd {
	hours := a.engine.Selection().Hours()

	date, ranges, err := a.engine.Confirm()
	if errors.Is(err, grid.ErrEmptySelection) {
		a.setStatus(statusWarning, "Select at least one hour first")
		return nil
	}

	a.loading = true
	a.setStatus(statusInfo, fmt.Sprintf("Saving %d hours as %d ranges...", len(hours), len(ranges)))
	return a.submit(date, hours)
}

func (a *App) handleGridLoaded(msg gridLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.date != a.engine.Date() {
		return a, nil
	}
	a.loading = false

	if msg.err != nil {
		a.log.Error("grid load failed for jam=%d date=%s: %v", a.jamID, msg.date, msg.err)
		a.setStatus(statusError, "Could not load the grid: "+describe(msg.err))
		return a, nil
	}

	a.day = msg.grid
	if a.day.RosterDegraded {
		a.setStatus(statusWarning, "Roster unavailable, showing schedules without members")
	}
	return a, nil
}

func (a *App) handleConfirmed(msg confirmedMsg) (tea.Model, tea.Cmd) {
	a.loading = false

	if msg.err != nil {
		a.log.Error("confirm failed for jam=%d date=%s: %v", a.jamID, msg.date, msg.err)
		a.setStatus(statusError, "Could not save: "+describe(msg.err))
		return a, nil
	}

	res := msg.result
	saved := 0
	var failed []string
	for _, r := range res.Ranges {
		if r.Status == "ok" {
			saved++
			continue
		}
		failed = append(failed, fmt.Sprintf("%02d:00-%02d:59", r.StartHour, r.EndHour))
	}

	switch {
	case len(failed) == 0:
		a.setStatus(statusSuccess, fmt.Sprintf("Saved %d ranges", saved))
	case saved == 0:
		a.setStatus(statusError, "Nothing saved, failed: "+strings.Join(failed, ", "))
	default:
		a.setStatus(statusWarning, fmt.Sprintf("Saved %d/%d ranges, failed: %s",
			saved, len(res.Ranges), strings.Join(failed, ", ")))
	}

	if msg.date != a.engine.Date() {
		return a, nil
	}
	if res.GridStale {
		a.loading = true
		return a, a.loadGrid(msg.date)
	}

	if a.day == nil {
		a.day = &apiclient.DayGrid{JamID: a.jamID, Date: msg.date}
	}
	a.day.Slots = res.Slots
	a.day.Unscheduled = res.Unscheduled
	return a, nil
}

func (a *App) handleCleared(msg clearedMsg) (tea.Model, tea.Cmd) {
	a.loading = false

	if msg.err != nil {
		a.log.Error("clear day failed for jam=%d date=%s: %v", a.jamID, msg.date, msg.err)
		a.setStatus(statusError, "Could not delete: "+describe(msg.err))
		return a, nil
	}

	a.setStatus(statusSuccess, fmt.Sprintf("Deleted %d schedules", msg.deleted))
	if msg.date != a.engine.Date() {
		return a, nil
	}
	a.loading = true
	return a, a.loadGrid(msg.date)
}

func (a *App) loadGrid(date string) tea.Cmd {
	ctx, client, jamID := a.ctx, a.client, a.jamID
	return func() tea.Msg {
		g, err := client.GetDayGrid(ctx, jamID, date, nil)
		return gridLoadedMsg{date: date, grid: g, err: err}
	}
}

func (a *App) submit(date string, hours []domain.HourSlot) tea.Cmd {
	ctx, client, jamID := a.ctx, a.client, a.jamID
	return func() tea.Msg {
		res, err := client.ConfirmSelection(ctx, jamID, date, hours)
		return confirmedMsg{date: date, result: res, err: err}
	}
}

func (a *App) clearDay(date string) tea.Cmd {
	ctx, client, jamID := a.ctx, a.client, a.jamID
	return func() tea.Msg {
		n, err := client.ClearDay(ctx, jamID, date)
		return clearedMsg{date: date, deleted: n, err: err}
	}
}

func (a *App) setStatus(kind statusKind, text string) {
	a.statusKind = kind
	a.status = text
}

func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Jam #%d  %s", a.jamID, formatDate(a.engine.Date()))))
	if a.loading {
		b.WriteString(" " + a.spinner.View())
	}
	b.WriteString("\n")
	b.WriteString(a.legend())
	b.WriteString("\n\n")

	for row := 0; row < domain.HoursPerDay/a.locator.Columns; row++ {
		var labels, icons strings.Builder
		for col := 0; col < a.locator.Columns; col++ {
			h := domain.HourSlot(row*a.locator.Columns + col)
			top, bottom := a.renderCell(h)
			labels.WriteString(top + " ")
			icons.WriteString(bottom + " ")
		}
		b.WriteString(labels.String() + "\n")
		b.WriteString(icons.String() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(a.unscheduledLine())
	b.WriteString("\n")
	b.WriteString(a.statusLine())
	b.WriteString(helpStyle.Render(a.help.View(a.keys)))

	return b.String()
}

func (a *App) renderCell(h domain.HourSlot) (string, string) {
	tier := domain.TierEmpty
	var icons []string

	if slot, ok := a.slot(h); ok {
		tier = domain.Tier(slot.Tier)
		icons = slot.Icons
	}
	if a.engine.IsSelected(h) {
		tier = domain.TierEditing
	}

	style := tierStyle(tier).Width(cellWidth - 1).MaxWidth(cellWidth - 1)
	return style.Render(fmt.Sprintf("%02d", h)), style.Render(glyphs(icons, cellWidth-1))
}

func (a *App) slot(h domain.HourSlot) (handlers.SlotResponse, bool) {
	if a.day == nil || int(h) >= len(a.day.Slots) {
		return handlers.SlotResponse{}, false
	}
	return a.day.Slots[h], true
}

func (a *App) legend() string {
	parts := make([]string, 0, 5)
	for _, t := range []domain.Tier{domain.TierFull, domain.TierPartialHigh, domain.TierPartialLow, domain.TierEmpty, domain.TierEditing} {
		parts = append(parts, tierStyle(t).Render(" "+string(t)+" "))
	}
	line := strings.Join(parts, " ")
	if a.day != nil {
		line += dimStyle.Render(fmt.Sprintf("  roster: %d", a.day.RosterSize))
	}
	return line
}

// unscheduledLine пусто, если состав неизвестен или пуст, а также если все участники записаны
func (a *App) unscheduledLine() string {
	if a.day == nil || a.day.RosterSize == 0 || len(a.day.Unscheduled) == 0 {
		return ""
	}

	names := make([]string, len(a.day.Unscheduled))
	for i, m := range a.day.Unscheduled {
		name := m.Nickname
		if name == "" {
			name = fmt.Sprintf("#%d", m.OwnerID)
		}
		names[i] = fmt.Sprintf("%s(%s)", name, glyph(m.Icon))
	}
	return "Not scheduled: " + strings.Join(names, ", ")
}

func (a *App) statusLine() string {
	if a.status == "" {
		return ""
	}
	switch a.statusKind {
	case statusSuccess:
		return successStyle.Render(a.status)
	case statusWarning:
		return warningStyle.Render(a.status)
	case statusError:
		return errorStyle.Render(a.status)
	default:
		return dimStyle.Render(a.status)
	}
}

// glyphs по букве на участника, "+n" когда ячейка заполнена
func glyphs(icons []string, width int) string {
	if len(icons) <= width {
		var b strings.Builder
		for _, icon := range icons {
			b.WriteString(glyph(icon))
		}
		return b.String()
	}

	var b strings.Builder
	for _, icon := range icons[:width-2] {
		b.WriteString(glyph(icon))
	}
	return b.String() + fmt.Sprintf("+%d", len(icons)-(width-2))
}

func formatDate(date string) string {
	t, err := types.DateString(date).Time()
	if err != nil {
		return date
	}
	return t.Format("2006-01-02 Mon")
}

func describe(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, apiclient.ErrUnavailable) {
		return "service unavailable"
	}
	return err.Error()
}
