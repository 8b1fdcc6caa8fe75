package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/store-admin-service/internal/entities"
	"github.com/SergeyBogomolovv/store-admin-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderGetter interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderGetter
}

func NewOrderHandler(logger *slog.Logger, svc OrderGetter) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "order")),
		validate: newValidator(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Get("/orders/{order_id}", h.GetOrderByID)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ по ID
// @Description  Возвращает информацию о заказе по его идентификатору
// @Tags         orders
// @Produce      json
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	done := trackRequest(opGetOrder)
	status := http.StatusOK
	defer func() { done(status) }()

	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		status = http.StatusBadRequest
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrderByID(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		status = http.StatusNotFound
		utils.WriteError(w, "order not found", status)
		return
	}

	if err != nil {
		status = http.StatusInternalServerError
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", status)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), status)
}
