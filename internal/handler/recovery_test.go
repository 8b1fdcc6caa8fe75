package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/store-admin-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/store-admin-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/store-admin-service/internal/recovery"
	"github.com/SergeyBogomolovv/store-admin-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecoveryHandler_RequestRecovery(t *testing.T) {
	form := recovery.Form{Email: "user@example.com"}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockRecoveryRequester)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "sent",
			body: `{"email":"user@example.com"}`,
			mockBehavior: func(svc *mocks.MockRecoveryRequester) {
				svc.EXPECT().
					RequestRecovery(mock.Anything, form, "http://localhost:3000").
					Return(recovery.Form{Message: recovery.SuccessMessage}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"message":"Password reset link has been sent to your email!"`,
		},
		{
			name:         "invalid email",
			body:         `{"email":"user@example"}`,
			mockBehavior: func(*mocks.MockRecoveryRequester) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Email":"recovery_email"`,
		},
		{
			name:         "empty email",
			body:         `{}`,
			mockBehavior: func(*mocks.MockRecoveryRequester) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Email":"required"`,
		},
		{
			name: "already in progress",
			body: `{"email":"user@example.com"}`,
			mockBehavior: func(svc *mocks.MockRecoveryRequester) {
				svc.EXPECT().
					RequestRecovery(mock.Anything, form, mock.Anything).
					Return(form, service.ErrRecoveryInProgress).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"recovery request already in progress"`,
		},
		{
			name: "upstream failure keeps email",
			body: `{"email":"user@example.com"}`,
			mockBehavior: func(svc *mocks.MockRecoveryRequester) {
				svc.EXPECT().
					RequestRecovery(mock.Anything, form, mock.Anything).
					Return(recovery.Form{Email: "user@example.com", Error: "User not found"},
						fmt.Errorf("%w: %w", service.ErrRecoveryFailed, errors.New("User not found"))).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"email":"user@example.com","busy":false,"error":"User not found"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockRecoveryRequester(t)
			tc.mockBehavior(svc)

			h := handler.NewRecoveryHandler(newTestLogger(), svc, "yourapp://login")

			req := httptest.NewRequest(http.MethodPost, "/recovery", strings.NewReader(tc.body))
			req.Header.Set("Origin", "http://localhost:3000")
			res, body := serve(h, req)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestRecoveryHandler_Return(t *testing.T) {
	testCases := []struct {
		query    string
		wantBody string
	}{
		{query: "?redirect=app", wantBody: `{"action":"deep_link","url":"yourapp://login"}`},
		{query: "?redirect=https%3A%2F%2Fshop.example.com%2Flogin", wantBody: `{"action":"redirect","url":"https://shop.example.com/login"}`},
		{query: "?redirect=%2Flogin", wantBody: `{"action":"redirect","url":"/login"}`},
		{query: "?redirect=javascript%3Aalert(1)", wantBody: `{"action":"back"}`},
		{query: "", wantBody: `{"action":"back"}`},
	}

	h := handler.NewRecoveryHandler(newTestLogger(), mocks.NewMockRecoveryRequester(t), "yourapp://login")

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			res, body := serve(h, httptest.NewRequest(http.MethodGet, "/recovery/return"+tc.query, nil))

			assert.Equal(t, http.StatusOK, res.StatusCode)
			assert.JSONEq(t, tc.wantBody, string(body))
		})
	}
}
