package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SergeyBogomolovv/store-admin-service/internal/authclient"
	"github.com/SergeyBogomolovv/store-admin-service/internal/config"
	"github.com/SergeyBogomolovv/store-admin-service/internal/recovery"
)

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrRecoveryInProgress = errors.New("recovery already in progress")
	ErrRecoveryFailed     = errors.New("recovery request failed")
)

type RecoveryClient interface {
	CreateRecovery(ctx context.Context, email, callbackURL string) error
}

type recoveryService struct {
	logger *slog.Logger
	client RecoveryClient

	publicOrigin   string
	resetPath      string
	allowedOrigins map[string]struct{}

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewRecoveryService(logger *slog.Logger, client RecoveryClient, cfg config.Recovery, allowedOrigins []string) *recoveryService {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[strings.TrimRight(origin, "/")] = struct{}{}
	}

	return &recoveryService{
		logger:         logger.With(slog.String("service", "recovery")),
		client:         client,
		publicOrigin:   cfg.PublicOrigin,
		resetPath:      cfg.ResetPath,
		allowedOrigins: allowed,
		inFlight:       make(map[string]struct{}),
	}
}

// RequestRecovery submits form to the auth service and returns the form as
// it should look after the attempt.
func (s *recoveryService) RequestRecovery(ctx context.Context, form recovery.Form, origin string) (recovery.Form, error) {
	if !form.CanSubmit() {
		recoveryRequests.WithLabelValues("invalid").Inc()
		form.Error = recovery.InvalidEmailMsg
		return form, ErrInvalidEmail
	}

	key := strings.ToLower(form.Email)
	if !s.acquire(key) {
		recoveryRequests.WithLabelValues("in_progress").Inc()
		return form, ErrRecoveryInProgress
	}
	defer s.release(key)

	form.Begin()

	callbackURL, err := recovery.CallbackURL(s.resolveOrigin(origin), s.resetPath)
	if err == nil {
		err = s.client.CreateRecovery(ctx, form.Email, callbackURL)
	}
	if err != nil {
		recoveryRequests.WithLabelValues("failed").Inc()
		s.logger.ErrorContext(ctx, "failed to request password recovery", slog.Any("error", err))
		form.Fail(failureMessage(err))
		return form, fmt.Errorf("%w: %w", ErrRecoveryFailed, err)
	}

	recoveryRequests.WithLabelValues("sent").Inc()
	form.Succeed()
	return form, nil
}

func (s *recoveryService) resolveOrigin(origin string) string {
	origin = strings.TrimRight(origin, "/")
	if _, ok := s.allowedOrigins[origin]; ok && origin != "" {
		return origin
	}
	return s.publicOrigin
}

func (s *recoveryService) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *recoveryService) release(key string) {
	s.mu.Lock()
	delete(s.inFlight, key)
	s.mu.Unlock()
}

// Сообщение сервиса авторизации показываем как есть
func failureMessage(err error) string {
	var apiErr *authclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if authclient.IsUnavailable(err) {
		return ""
	}
	return err.Error()
}
