package bandicon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bandicon/jam-schedule-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент основного API Bandicon
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRoster получает подтвержденных участников джема в порядке, который вернул API
func (c *Client) GetRoster(ctx context.Context, jamID int64) ([]domain.RosterMember, error) {
	url := fmt.Sprintf("%s/internal/jams/%d/members", c.baseURL, jamID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrJamNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload MembersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	roster := make([]domain.RosterMember, 0, len(payload.Members))
	for _, m := range payload.Members {
		if m.Status != "" && !strings.EqualFold(m.Status, StatusConfirmed) {
			continue
		}
		roster = append(roster, domain.RosterMember{
			OwnerID:         m.UserID,
			SessionTypeCode: m.SessionTypeCode,
			PartLabel:       m.PartLabel,
			Nickname:        m.Nickname,
		})
	}

	return roster, nil
}

// GetRosterWithGracefulDegradation получает состав джема с graceful degradation
// При недоступности API возвращает пустой состав и ErrServiceDegraded:
// сетка всё равно строится, просто без иконок сессий и без уровня "full"
func (c *Client) GetRosterWithGracefulDegradation(ctx context.Context, jamID int64) ([]domain.RosterMember, error) {
	c.log.Info("Fetching roster for jam_id=%d", jamID)

	roster, err := c.GetRoster(ctx, jamID)
	if err != nil {
		// Джем не найден - бизнес-ошибка, пробрасываем
		if errors.Is(err, ErrJamNotFound) {
			c.log.Info("Jam not found, jam_id=%d", jamID)
			return nil, err
		}

		c.log.Error("Bandicon API unavailable, applying graceful degradation for jam_id=%d: %v", jamID, err)
		return []domain.RosterMember{}, fmt.Errorf("%w: jam_id=%d, error=%v", ErrServiceDegraded, jamID, err)
	}

	c.log.Info("Successfully fetched roster for jam_id=%d, members=%d", jamID, len(roster))
	return roster, nil
}
