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

type InvoiceGenerator interface {
	GenerateInvoice(ctx context.Context, orderID string) (entities.Invoice, error)
	RenderInvoice(ctx context.Context, order entities.Order) (entities.Invoice, error)
}

type InvoiceHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      InvoiceGenerator
}

func NewInvoiceHandler(logger *slog.Logger, svc InvoiceGenerator) *InvoiceHandler {
	return &InvoiceHandler{
		logger:   logger.With(slog.String("handler", "invoice")),
		validate: newValidator(),
		svc:      svc,
	}
}

func (h *InvoiceHandler) Init(r chi.Router) {
	r.Get("/orders/{order_id}/invoice", h.DownloadInvoice)
	r.Post("/invoices", h.RenderInvoice)
}

// DownloadInvoice отдаёт PDF-счёт по сохранённому заказу.
// @Summary      Скачать счёт по заказу
// @Description  Формирует одностраничный PDF-счёт и отдаёт его как файл
// @Tags         invoices
// @Produce      application/pdf
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {file}    file
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/invoice [get]
func (h *InvoiceHandler) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
	done := trackRequest(opDownloadInvoice)
	status := http.StatusOK
	defer func() { done(status) }()

	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		status = http.StatusBadRequest
		utils.WriteValidationError(w, err)
		return
	}

	inv, err := h.svc.GenerateInvoice(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		status = http.StatusNotFound
		utils.WriteError(w, "order not found", status)
		return
	}

	if err != nil {
		status = http.StatusInternalServerError
		h.logger.ErrorContext(ctx, "failed to generate invoice", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "failed to generate invoice", status)
		return
	}

	h.write(ctx, w, inv)
}

// RenderInvoice формирует счёт по переданному заказу.
// @Summary      Сформировать счёт
// @Description  Формирует PDF-счёт по заказу из тела запроса
// @Tags         invoices
// @Accept       json
// @Produce      application/pdf
// @Param        order  body      Order  true  "Заказ"
// @Success      200  {file}    file
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /invoices [post]
func (h *InvoiceHandler) RenderInvoice(w http.ResponseWriter, r *http.Request) {
	done := trackRequest(opRenderInvoice)
	status := http.StatusOK
	defer func() { done(status) }()

	ctx := r.Context()

	var order Order
	if err := utils.DecodeBody(r, &order); err != nil {
		status = http.StatusBadRequest
		utils.WriteError(w, "invalid request body", status)
		return
	}

	if err := h.validate.Struct(order); err != nil {
		status = http.StatusBadRequest
		utils.WriteValidationError(w, err)
		return
	}

	inv, err := h.svc.RenderInvoice(ctx, OrderJSONToEntity(order))
	if err != nil {
		status = http.StatusInternalServerError
		h.logger.ErrorContext(ctx, "failed to render invoice", slog.Any("error", err), slog.String("order_id", order.OrderID))
		utils.WriteError(w, "failed to generate invoice", status)
		return
	}

	h.write(ctx, w, inv)
}

func (h *InvoiceHandler) write(ctx context.Context, w http.ResponseWriter, inv entities.Invoice) {
	if err := utils.WriteAttachment(w, inv.Filename, inv.ContentType, inv.Content); err != nil {
		h.logger.WarnContext(ctx, "failed to write invoice", slog.Any("error", err))
	}
}
