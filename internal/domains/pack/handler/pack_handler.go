package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"bookstore-backoffice/internal/domains/pack/model"
	"bookstore-backoffice/internal/domains/pack/service"
	"bookstore-backoffice/internal/shared/response"
	"bookstore-backoffice/pkg/logger"
)

type PackHandler struct {
	service service.ServiceInterface
}

func NewPackHandler(svc service.ServiceInterface) *PackHandler {
	return &PackHandler{service: svc}
}

// POST /api/packs
func (h *PackHandler) CreatePack(c *gin.Context) {
	var req model.CreatePackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	p, err := h.service.CreatePack(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// PUT /api/packs/:id
func (h *PackHandler) UpdatePack(c *gin.Context) {
	id, ok := h.packID(c)
	if !ok {
		return
	}

	var req model.UpdatePackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	p, err := h.service.UpdatePack(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// GET /api/packs/:id
func (h *PackHandler) GetPack(c *gin.Context) {
	id, ok := h.packID(c)
	if !ok {
		return
	}

	p, err := h.service.GetPack(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// GET /api/packs
func (h *PackHandler) ListPacks(c *gin.Context) {
	packs, err := h.service.ListPacks(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, packs)
}

// GET /api/packs/active
func (h *PackHandler) ListActivePacks(c *gin.Context) {
	packs, err := h.service.ListActivePacks(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, packs)
}

// GET /api/packs/featured
func (h *PackHandler) ListFeaturedPacks(c *gin.Context) {
	packs, err := h.service.ListFeaturedPacks(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, packs)
}

// GET /api/packs/categories
func (h *PackHandler) ListPackCategories(c *gin.Context) {
	categories, err := h.service.ListPackCategories(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, categories)
}

// GET /api/packs/by-category?category=...
func (h *PackHandler) ListPacksByCategory(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		response.BadRequest(c, "category is required")
		return
	}

	packs, err := h.service.ListPacksByCategory(c.Request.Context(), category)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, packs)
}

// GET /api/packs/search?keyword=...
func (h *PackHandler) SearchPacks(c *gin.Context) {
	packs, err := h.service.SearchPacks(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, packs)
}

// DELETE /api/packs/:id (soft delete)
func (h *PackHandler) DeactivatePack(c *gin.Context) {
	id, ok := h.packID(c)
	if !ok {
		return
	}

	if err := h.service.DeactivatePack(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

// PUT /api/packs/:id/toggle-featured
func (h *PackHandler) ToggleFeatured(c *gin.Context) {
	id, ok := h.packID(c)
	if !ok {
		return
	}

	p, err := h.service.ToggleFeatured(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *PackHandler) packID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid pack id")
		return 0, false
	}
	return id, true
}

func (h *PackHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
	case errors.Is(err, model.ErrPackNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("pack handler error", err)
		response.InternalServerError(c, "something went wrong")
	}
}
