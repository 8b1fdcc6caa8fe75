package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/store-admin-service/internal/recovery"
	"github.com/SergeyBogomolovv/store-admin-service/internal/service"
	"github.com/SergeyBogomolovv/store-admin-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type RecoveryRequester interface {
	RequestRecovery(ctx context.Context, form recovery.Form, origin string) (recovery.Form, error)
}

type RecoveryHandler struct {
	logger      *slog.Logger
	validate    *validator.Validate
	svc         RecoveryRequester
	appDeepLink string
}

func NewRecoveryHandler(logger *slog.Logger, svc RecoveryRequester, appDeepLink string) *RecoveryHandler {
	return &RecoveryHandler{
		logger:      logger.With(slog.String("handler", "recovery")),
		validate:    newValidator(),
		svc:         svc,
		appDeepLink: appDeepLink,
	}
}

func (h *RecoveryHandler) Init(r chi.Router) {
	r.Post("/recovery", h.RequestRecovery)
	r.Get("/recovery/return", h.Return)
}

// RequestRecovery отправляет письмо со ссылкой для сброса пароля.
// @Summary      Восстановление пароля
// @Description  Просит сервис авторизации отправить письмо со ссылкой для сброса пароля
// @Tags         recovery
// @Accept       json
// @Produce      json
// @Param        request  body      RecoveryRequest  true  "Email пользователя"
// @Success      200  {object}  RecoveryForm
// @Failure      400  {object}  utils.ValidationErrorResponse "Некорректный email"
// @Failure      409  {object}  utils.ErrorResponse "Запрос уже выполняется"
// @Failure      502  {object}  RecoveryForm "Ошибка сервиса авторизации"
// @Router       /recovery [post]
func (h *RecoveryHandler) RequestRecovery(w http.ResponseWriter, r *http.Request) {
	done := trackRequest(opRecovery)
	status := http.StatusOK
	defer func() { done(status) }()

	ctx := r.Context()

	var req RecoveryRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		status = http.StatusBadRequest
		utils.WriteError(w, "invalid request body", status)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		status = http.StatusBadRequest
		utils.WriteValidationError(w, err)
		return
	}

	form, err := h.svc.RequestRecovery(ctx, recovery.Form{Email: req.Email}, r.Header.Get("Origin"))
	switch {
	case err == nil:
		utils.WriteJSON(w, formToJSON(form), status)
	case errors.Is(err, service.ErrInvalidEmail):
		status = http.StatusBadRequest
		utils.WriteError(w, recovery.InvalidEmailMsg, status)
	case errors.Is(err, service.ErrRecoveryInProgress):
		status = http.StatusConflict
		utils.WriteError(w, "recovery request already in progress", status)
	case errors.Is(err, service.ErrRecoveryFailed):
		status = http.StatusBadGateway
		utils.WriteJSON(w, formToJSON(form), status)
	default:
		status = http.StatusInternalServerError
		h.logger.ErrorContext(ctx, "failed to request recovery", slog.Any("error", err))
		utils.WriteError(w, "internal server error", status)
	}
}

// Return сообщает, куда перейти со страницы восстановления.
// @Summary      Выход со страницы восстановления
// @Description  redirect=app ведёт в приложение, http(s)-URL или путь от корня открываются как есть, иначе шаг назад
// @Tags         recovery
// @Produce      json
// @Param        redirect  query     string  false  "Куда вернуться"
// @Success      200  {object}  recovery.Navigation
// @Router       /recovery/return [get]
func (h *RecoveryHandler) Return(w http.ResponseWriter, r *http.Request) {
	nav := recovery.ResolveReturn(r.URL.Query().Get("redirect"), h.appDeepLink)
	utils.WriteJSON(w, nav, http.StatusOK)
}

func formToJSON(f recovery.Form) RecoveryForm {
	return RecoveryForm{
		Email:   f.Email,
		Busy:    f.Busy,
		Message: f.Message,
		Error:   f.Error,
	}
}
