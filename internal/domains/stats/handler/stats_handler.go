package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-backoffice/internal/domains/stats/service"
	"bookstore-backoffice/internal/shared/response"
	"bookstore-backoffice/pkg/logger"
)

type StatsHandler struct {
	service service.ServiceInterface
}

func NewStatsHandler(svc service.ServiceInterface) *StatsHandler {
	return &StatsHandler{service: svc}
}

// GET /api/statistics/dashboard
func (h *StatsHandler) Dashboard(c *gin.Context) {
	d, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		logger.Error("dashboard aggregation failed", err)
		response.InternalServerError(c, "could not load dashboard")
		return
	}
	response.Success(c, http.StatusOK, d)
}

// GET /api/statistics/books
func (h *StatsHandler) BookCounts(c *gin.Context) {
	d, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		logger.Error("dashboard aggregation failed", err)
		response.InternalServerError(c, "could not load statistics")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"totalBooks":  d.TotalBooks,
		"activeBooks": d.ActiveBooks,
	})
}

// GET /api/statistics/customers
func (h *StatsHandler) CustomerCounts(c *gin.Context) {
	d, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		logger.Error("dashboard aggregation failed", err)
		response.InternalServerError(c, "could not load statistics")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"totalCustomers":  d.TotalCustomers,
		"activeCustomers": d.ActiveCustomers,
	})
}

// GET /api/statistics/orders
func (h *StatsHandler) OrderCounts(c *gin.Context) {
	d, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		logger.Error("dashboard aggregation failed", err)
		response.InternalServerError(c, "could not load statistics")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"totalOrders":   d.TotalOrders,
		"pendingOrders": d.PendingOrders,
		"totalRevenue":  d.TotalRevenue,
	})
}
