package profileservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с ProfileService (лояльность, баллы, рефералы)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ProfileService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetLoyaltyProfile получает профиль лояльности пользователя
func (c *Client) GetLoyaltyProfile(ctx context.Context, userID int64) (*LoyaltyProfile, error) {
	url := fmt.Sprintf("%s/internal/users/%d/loyalty", c.baseURL, userID)

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

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrProfileNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var profile LoyaltyProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &profile, nil
}

// GetLoyaltyProfileWithGracefulDegradation получает профиль лояльности с graceful degradation.
// При недоступности ProfileService возвращает ErrServiceDegraded, что позволяет
// посчитать цену без скидок лояльности вместо отказа в бронировании.
func (c *Client) GetLoyaltyProfileWithGracefulDegradation(ctx context.Context, userID int64) (*LoyaltyProfile, error) {
	profile, err := c.GetLoyaltyProfile(ctx, userID)
	if err != nil {
		// Отсутствие профиля - бизнес-ошибка, пробрасываем дальше
		if errors.Is(err, ErrProfileNotFound) {
			c.log.Info("No loyalty profile found for user_id=%d", userID)
			return nil, err
		}

		// Инфраструктурная ошибка - деградируем до базовых цен
		c.log.Warn("ProfileService unavailable for user_id=%d, degrading to base prices: %v", userID, err)
		return nil, ErrServiceDegraded
	}

	return profile, nil
}

// RedeemPoints списывает баллы лояльности пользователя.
// Атомарность списания обеспечивается на стороне ProfileService.
func (c *Client) RedeemPoints(ctx context.Context, userID int64, points int, reservationID int64) error {
	url := fmt.Sprintf("%s/internal/users/%d/loyalty/redeem", c.baseURL, userID)

	payload, err := json.Marshal(map[string]interface{}{
		"points":         points,
		"reservation_id": reservationID,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrProfileNotFound
	case http.StatusConflict:
		return ErrInsufficientPoints
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
