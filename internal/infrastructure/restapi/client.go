package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/restauratings/internal/config"
	"github.com/restauratings/internal/domain"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// APIError - ответ сервиса с кодом не 2xx
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("restaurant API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("restaurant API error: status %d, %s: %s", e.StatusCode, e.Code, e.Message)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client ходит в REST API ресторанов
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient создает клиент REST API
func NewClient(cfg *config.ExplorerConfig, logger *zap.Logger) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.APIURL, "/"),
		logger:     logger,
	}
}

// ListRestaurants возвращает рестораны; пустой style - все рестораны
func (c *Client) ListRestaurants(ctx context.Context, style string) ([]domain.Restaurant, error) {
	path := "/api/restaurants"
	if style != "" {
		path += "?" + url.Values{"style": {style}}.Encode()
	}

	restaurants := make([]domain.Restaurant, 0)
	if err := c.do(ctx, http.MethodGet, path, nil, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

// GetRestaurant возвращает ресторан вместе с отзывами
func (c *Client) GetRestaurant(ctx context.Context, id uuid.UUID) (*domain.RestaurantDetail, error) {
	var detail domain.RestaurantDetail
	if err := c.do(ctx, http.MethodGet, "/api/restaurants/"+id.String(), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ListReviews возвращает отзывы ресторана, новые первыми
func (c *Client) ListReviews(ctx context.Context, restaurantID uuid.UUID) ([]domain.Review, error) {
	reviews := make([]domain.Review, 0)
	if err := c.do(ctx, http.MethodGet, reviewsPath(restaurantID), nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview публикует отзыв
func (c *Client) CreateReview(ctx context.Context, restaurantID uuid.UUID, review domain.NewReview) (*domain.Review, error) {
	var created domain.Review
	if err := c.do(ctx, http.MethodPost, reviewsPath(restaurantID), review, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func reviewsPath(restaurantID uuid.UUID) string {
	return "/api/restaurants/" + restaurantID.String() + "/reviews"
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("Calling restaurant API",
		zap.String("method", method),
		zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr == nil && env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		c.logger.Warn("Restaurant API returned error",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("code", apiErr.Code))
		return apiErr
	}

	if decodeErr != nil {
		return fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}

	return nil
}
