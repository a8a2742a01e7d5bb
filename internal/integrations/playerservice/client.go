package playerservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с PlayerService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PlayerService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetPlayer получает профиль игрока по ID
func (c *Client) GetPlayer(ctx context.Context, userID int64) (*Player, error) {
	url := fmt.Sprintf("%s/internal/players/%d", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid player ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrPlayerNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var player Player
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &player, nil
}

// GetPlayerWithGracefulDegradation получает профиль игрока с graceful degradation
// При недоступности PlayerService возвращает ErrServiceDegraded - бронирование
// в этом случае создается без денормализованных данных игрока
func (c *Client) GetPlayerWithGracefulDegradation(ctx context.Context, userID int64) (*Player, error) {
	c.log.Info("Fetching player profile for user_id=%d", userID)

	player, err := c.GetPlayer(ctx, userID)
	if err != nil {
		// Отсутствие профиля - бизнес-факт, пробрасываем как есть
		if errors.Is(err, ErrPlayerNotFound) {
			c.log.Info("No player profile found for user_id=%d", userID)
			return nil, err
		}

		// Для остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation
		c.log.Error("PlayerService unavailable, applying graceful degradation for user_id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: user_id=%d, error=%v", ErrServiceDegraded, userID, err)
	}

	c.log.Info("Successfully fetched player profile for user_id=%d", userID)
	return player, nil
}
