package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	bookmodel "bookstore-backoffice/internal/domains/book/model"
	customermodel "bookstore-backoffice/internal/domains/customer/model"
	"bookstore-backoffice/internal/domains/order/model"
	"bookstore-backoffice/internal/domains/order/service"
	"bookstore-backoffice/internal/shared/response"
	"bookstore-backoffice/pkg/logger"
)

type OrderHandler struct {
	service service.ServiceInterface
}

func NewOrderHandler(svc service.ServiceInterface) *OrderHandler {
	return &OrderHandler{service: svc}
}

// POST /api/complete-orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, order)
}

// POST /api/complete-orders/simple
func (h *OrderHandler) CreateSimpleOrder(c *gin.Context) {
	var req model.SimpleOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), req.ToCreateOrderRequest())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, order)
}

// GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

// GET /api/orders/by-number/:orderNumber
func (h *OrderHandler) GetOrderByNumber(c *gin.Context) {
	orderNumber := c.Param("orderNumber")
	if orderNumber == "" {
		response.BadRequest(c, "order number is required")
		return
	}

	order, err := h.service.GetOrderByNumber(c.Request.Context(), orderNumber)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

// GET /api/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter := &model.OrderFilter{
		Status: c.Query("status"),
	}
	filter.CustomerID, _ = strconv.ParseInt(c.Query("customerId"), 10, 64)
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	orders, total, err := h.service.ListOrders(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, orders, &response.Meta{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
	})
}

// PUT /api/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid order id")
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	order, err := h.service.UpdateOrderStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

func (h *OrderHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
	case errors.Is(err, model.ErrEmptyItems),
		errors.Is(err, model.ErrInvalidQuantity),
		errors.Is(err, model.ErrInvalidStatus),
		errors.Is(err, model.ErrInvalidTransition):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrOrderNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, bookmodel.ErrBookNotFound):
		response.BadRequest(c, "order references an unknown book")
	case errors.Is(err, bookmodel.ErrInsufficientStock):
		response.BadRequest(c, err.Error())
	case errors.Is(err, customermodel.ErrCustomerResolution):
		response.InternalServerError(c, err.Error())
	default:
		logger.Error("order handler error", err)
		response.InternalServerError(c, "something went wrong")
	}
}
