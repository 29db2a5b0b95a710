package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bandicon/jam-schedule-service/internal/api/handlers"
	confirmSelectionHandler "github.com/bandicon/jam-schedule-service/internal/api/handlers/confirm_selection"
	getDayGridHandler "github.com/bandicon/jam-schedule-service/internal/api/handlers/get_day_grid"
	"github.com/bandicon/jam-schedule-service/internal/api/middleware"
	"github.com/bandicon/jam-schedule-service/internal/domain"
	"github.com/bandicon/jam-schedule-service/internal/service/schedules/models"
)

// DayGrid сетка доступности в формате API
type DayGrid = getDayGridHandler.DayGridResponse

// ConfirmResult результат подтверждения в формате API
type ConfirmResult = confirmSelectionHandler.ConfirmSelectionResponse

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client HTTP клиент сервиса расписаний джемов
type Client struct {
	baseURL    string
	userID     int64
	httpClient *http.Client
	log        Logger
}

// NewClient создает клиента от имени участника userID
func NewClient(baseURL string, userID int64, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api/v1",
		userID:  userID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetDayGrid получает сетку на дату. editing - часы, подсвечиваемые как редактируемые
func (c *Client) GetDayGrid(ctx context.Context, jamID int64, date string, editing []domain.HourSlot) (*DayGrid, error) {
	path := fmt.Sprintf("/jams/%d/schedules/%s/grid", jamID, date)
	if len(editing) > 0 {
		parts := make([]string, len(editing))
		for i, h := range editing {
			parts[i] = strconv.Itoa(int(h))
		}
		path += "?hours=" + strings.Join(parts, ",")
	}

	var grid DayGrid
	status, err := c.do(ctx, http.MethodGet, path, nil, &grid)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrInvalidResponse, status)
	}
	return &grid, nil
}

// ConfirmSelection сохраняет выбранные часы.
// Частичный или полный отказ по диапазонам не считается ошибкой: смотрите Status и Ranges.
func (c *Client) ConfirmSelection(ctx context.Context, jamID int64, date string, hours []domain.HourSlot) (*ConfirmResult, error) {
	body := confirmSelectionHandler.ConfirmSelectionRequest{Hours: make([]int, len(hours))}
	for i, h := range hours {
		body.Hours[i] = int(h)
	}

	var result ConfirmResult
	path := fmt.Sprintf("/jams/%d/schedules/%s/selection", jamID, date)
	if _, err := c.do(ctx, http.MethodPost, path, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ClearDay удаляет свои интервалы за дату, возвращает количество удаленных
func (c *Client) ClearDay(ctx context.Context, jamID int64, date string) (int64, error) {
	var result models.ClearDayResponse
	path := fmt.Sprintf("/jams/%d/schedules/%s", jamID, date)
	if _, err := c.do(ctx, http.MethodDelete, path, nil, &result); err != nil {
		return 0, err
	}
	return result.Deleted, nil
}

// GetRoster получает состав джема
func (c *Client) GetRoster(ctx context.Context, jamID int64) (*models.RosterResponse, error) {
	var roster models.RosterResponse
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/jams/%d/roster", jamID), nil, &roster); err != nil {
		return nil, err
	}
	return &roster, nil
}

// do выполняет запрос и декодирует тело в out.
// Ответ подтверждения с результатами по диапазонам (207 и 500) декодируется как успешный.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) (int, error) {
	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("%w: failed to encode request: %v", ErrInvalidResponse, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.UserIDHeader, strconv.FormatInt(c.userID, 10))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("%s %s failed: %v", method, path, err)
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: failed to read body: %v", ErrInvalidResponse, err)
	}

	switch {
	case resp.StatusCode < 300, resp.StatusCode == http.StatusMultiStatus:
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
		return resp.StatusCode, nil

	case resp.StatusCode == http.StatusInternalServerError && hasRanges(data):
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
		return resp.StatusCode, nil
	}

	apiErr := &APIError{Status: resp.StatusCode, kind: kindFor(resp.StatusCode)}
	var body handlers.ErrorResponse
	if err := json.Unmarshal(data, &body); err == nil {
		apiErr.Message = body.Message
	}

	c.log.Warn("%s %s returned %d: %s", method, path, resp.StatusCode, apiErr.Message)
	return resp.StatusCode, apiErr
}

func hasRanges(data []byte) bool {
	var probe struct {
		Ranges []json.RawMessage `json:"ranges"`
	}
	return json.Unmarshal(data, &probe) == nil && len(probe.Ranges) > 0
}

func kindFor(status int) error {
	switch {
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status >= 500:
		return ErrUnavailable
	default:
		return ErrBadRequest
	}
}
