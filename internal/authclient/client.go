package authclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/store-admin-service/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

const recoveryPath = "/account/recovery"

// APIError is an error response of the auth service.
type APIError struct {
	StatusCode int    `json:"code"`
	Type       string `json:"type"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("auth service responded with status %d", e.StatusCode)
	}
	return e.Message
}

type Client struct {
	logger  *slog.Logger
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
}

func New(logger *slog.Logger, cfg config.Recovery) *Client {
	logger = logger.With(slog.String("client", "auth"))

	httpClient := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Appwrite-Project", cfg.ProjectID)
	if cfg.APIKey != "" {
		httpClient.SetHeader("X-Appwrite-Key", cfg.APIKey)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "auth",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			setBreakerState(to)
			logger.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	setBreakerState(gobreaker.StateClosed)

	return &Client{
		logger:  logger,
		http:    httpClient,
		breaker: breaker,
	}
}

type recoveryBody struct {
	Email string `json:"email"`
	URL   string `json:"url"`
}

// CreateRecovery asks the auth service to email a password-reset link that
// points at callbackURL. The call is made once and never retried.
func (c *Client) CreateRecovery(ctx context.Context, email, callbackURL string) error {
	// Ошибки клиента (4xx) не должны размыкать цепь, поэтому возвращаем их как результат
	res, err := c.breaker.Execute(func() (any, error) {
		var apiErr APIError
		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(recoveryBody{Email: email, URL: callbackURL}).
			SetError(&apiErr).
			Post(recoveryPath)
		if err != nil {
			return nil, err
		}

		if !resp.IsError() {
			return nil, nil
		}

		if apiErr.StatusCode == 0 {
			apiErr.StatusCode = resp.StatusCode()
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return nil, &apiErr
		}
		return &apiErr, nil
	})
	if err != nil {
		return err
	}

	if apiErr, ok := res.(*APIError); ok && apiErr != nil {
		return apiErr
	}
	return nil
}

// IsUnavailable reports whether err means the circuit breaker rejected the call.
func IsUnavailable(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
