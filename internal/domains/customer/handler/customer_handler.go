package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"bookstore-backoffice/internal/domains/customer/model"
	"bookstore-backoffice/internal/domains/customer/service"
	"bookstore-backoffice/internal/shared/response"
	"bookstore-backoffice/pkg/logger"
)

type CustomerHandler struct {
	service service.ServiceInterface
}

func NewCustomerHandler(svc service.ServiceInterface) *CustomerHandler {
	return &CustomerHandler{service: svc}
}

// POST /api/customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req model.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	customer, err := h.service.CreateCustomer(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, customer)
}

// PUT /api/customers/:id
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}

	var req model.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	customer, err := h.service.UpdateCustomer(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, customer)
}

// GET /api/customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}

	customer, err := h.service.GetCustomer(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, customer)
}

// GET /api/customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	filter := &model.CustomerFilter{
		Keyword:    c.Query("keyword"),
		City:       c.Query("city"),
		Country:    c.Query("country"),
		ActiveOnly: c.Query("active") == "true",
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	customers, total, err := h.service.ListCustomers(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, customers, &response.Meta{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
	})
}

// GET /api/customers/active
func (h *CustomerHandler) ListActiveCustomers(c *gin.Context) {
	customers, err := h.service.ListActiveCustomers(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, customers)
}

// GET /api/customers/search?keyword=...
func (h *CustomerHandler) SearchCustomers(c *gin.Context) {
	customers, err := h.service.SearchCustomers(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, customers)
}

// GET /api/customers/by-city?city=...
func (h *CustomerHandler) ListCustomersByCity(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		response.BadRequest(c, "city is required")
		return
	}

	customers, err := h.service.ListCustomersByCity(c.Request.Context(), city)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, customers)
}

// GET /api/customers/by-country?country=...
func (h *CustomerHandler) ListCustomersByCountry(c *gin.Context) {
	country := c.Query("country")
	if country == "" {
		response.BadRequest(c, "country is required")
		return
	}

	customers, err := h.service.ListCustomersByCountry(c.Request.Context(), country)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, customers)
}

// DELETE /api/customers/:id (soft delete)
func (h *CustomerHandler) DeactivateCustomer(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}

	if err := h.service.DeactivateCustomer(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

// PUT /api/customers/:id/toggle-status
func (h *CustomerHandler) ToggleCustomerStatus(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}

	customer, err := h.service.ToggleCustomerStatus(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, customer)
}

// DELETE /api/customers/:id/permanent
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteCustomer(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *CustomerHandler) customerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid customer id")
		return 0, false
	}
	return id, true
}

func (h *CustomerHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
	case errors.Is(err, model.ErrCustomerNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrEmailTaken), errors.Is(err, model.ErrPhoneTaken):
		response.Conflict(c, err.Error())
	default:
		logger.Error("customer handler error", err)
		response.InternalServerError(c, "something went wrong")
	}
}
