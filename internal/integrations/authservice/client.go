package authservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент для работы с AuthService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента AuthService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetUser получает профиль пользователя по его UID
func (c *Client) GetUser(ctx context.Context, uid string) (*UserProfile, error) {
	requestURL := fmt.Sprintf("%s/internal/users/%s", c.baseURL, url.PathEscape(uid))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
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
		return nil, fmt.Errorf("%w: invalid user uid format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrUserNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var profile UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &profile, nil
}

// GetUserWithGracefulDegradation получает профиль пользователя с graceful degradation
// При недоступности AuthService возвращает ErrServiceDegraded, что позволяет
// отдавать страницу бронирования без имени и фотографии владельца
func (c *Client) GetUserWithGracefulDegradation(ctx context.Context, uid string) (*UserProfile, error) {
	c.log.Info("Fetching user profile for uid=%s", uid)

	profile, err := c.GetUser(ctx, uid)
	if err != nil {
		// Бизнес-ошибку "не найден" пробрасываем дальше
		if err == ErrUserNotFound {
			c.log.Info("No user profile found for uid=%s", uid)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation и возвращаем ErrServiceDegraded с контекстом
		c.log.Error("AuthService unavailable, applying graceful degradation for uid=%s: %v", uid, err)
		return nil, fmt.Errorf("%w: uid=%s, error=%v", ErrServiceDegraded, uid, err)
	}

	c.log.Info("Successfully fetched user profile for uid=%s", uid)
	return profile, nil
}
