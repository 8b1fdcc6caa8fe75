package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/store-admin-service/internal/dashboard"
	"github.com/SergeyBogomolovv/store-admin-service/internal/entities"
	"github.com/SergeyBogomolovv/store-admin-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	defaultOrdersLimit = 20
	maxOrdersLimit     = 100
)

type OrderLister interface {
	LatestOrders(ctx context.Context, limit int) ([]entities.Order, error)
}

type AdminHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderLister
}

func NewAdminHandler(logger *slog.Logger, orders OrderLister) *AdminHandler {
	return &AdminHandler{
		logger:   logger.With(slog.String("handler", "admin")),
		validate: newValidator(),
		orders:   orders,
	}
}

func (h *AdminHandler) Init(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/tabs", h.Tabs)
		r.Get("/tabs/{tab}", h.Tab)
		r.Get("/overview", h.Overview)
		r.Get("/orders", h.LatestOrders)
	})
}

// TabView выбранная вкладка
type TabView struct {
	Tab      dashboard.TabInfo        `json:"tab"`
	Overview *dashboard.OverviewPanel `json:"overview,omitempty"`
}

// Tabs возвращает вкладки панели администратора.
// @Summary      Вкладки панели
// @Tags         admin
// @Produce      json
// @Success      200  {array}   dashboard.TabInfo
// @Router       /admin/tabs [get]
func (h *AdminHandler) Tabs(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, dashboard.Tabs(), http.StatusOK)
}

// Tab возвращает выбранную вкладку.
// @Summary      Выбрать вкладку
// @Description  Вкладка dashboard содержит обзорную панель
// @Tags         admin
// @Produce      json
// @Param        tab   path      string  true  "Вкладка"
// @Success      200  {object}  TabView
// @Failure      404  {object}  utils.ErrorResponse "Неизвестная вкладка"
// @Router       /admin/tabs/{tab} [get]
func (h *AdminHandler) Tab(w http.ResponseWriter, r *http.Request) {
	tab, err := dashboard.ParseTab(chi.URLParam(r, "tab"))
	if errors.Is(err, dashboard.ErrUnknownTab) {
		utils.WriteError(w, "unknown tab", http.StatusNotFound)
		return
	}

	view := TabView{Tab: tab.Info()}
	if tab == dashboard.TabDashboard {
		overview := dashboard.Overview()
		view.Overview = &overview
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

// Overview возвращает обзорную панель.
// @Summary      Обзор магазина
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dashboard.OverviewPanel
// @Router       /admin/overview [get]
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, dashboard.Overview(), http.StatusOK)
}

// LatestOrders возвращает последние заказы.
// @Summary      Последние заказы
// @Tags         admin
// @Produce      json
// @Param        limit  query     int  false  "Количество заказов (1-100)"  default(20)
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders [get]
func (h *AdminHandler) LatestOrders(w http.ResponseWriter, r *http.Request) {
	done := trackRequest(opAdminOrders)
	status := http.StatusOK
	defer func() { done(status) }()

	ctx := r.Context()

	limit := defaultOrdersLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			status = http.StatusBadRequest
			utils.WriteError(w, "limit must be a number", status)
			return
		}
		limit = n
	}

	if err := h.validate.Var(limit, "gte=1,lte="+strconv.Itoa(maxOrdersLimit)); err != nil {
		status = http.StatusBadRequest
		utils.WriteValidationError(w, err)
		return
	}

	orders, err := h.orders.LatestOrders(ctx, limit)
	if err != nil {
		status = http.StatusInternalServerError
		h.logger.ErrorContext(ctx, "failed to get latest orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", status)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), status)
}
