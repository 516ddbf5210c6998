package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"bookstore-backoffice/internal/domains/offer/model"
	"bookstore-backoffice/internal/domains/offer/service"
	"bookstore-backoffice/internal/shared/response"
	"bookstore-backoffice/pkg/logger"
)

type OfferHandler struct {
	service service.ServiceInterface
}

func NewOfferHandler(svc service.ServiceInterface) *OfferHandler {
	return &OfferHandler{service: svc}
}

// POST /api/daily-offers
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req model.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	o, err := h.service.CreateOffer(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, o)
}

// PUT /api/daily-offers/:id
func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	id, ok := h.offerID(c)
	if !ok {
		return
	}

	var req model.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	o, err := h.service.UpdateOffer(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, o)
}

// GET /api/daily-offers/:id
func (h *OfferHandler) GetOffer(c *gin.Context) {
	id, ok := h.offerID(c)
	if !ok {
		return
	}

	o, err := h.service.GetOffer(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, o)
}

// DELETE /api/daily-offers/:id
func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	id, ok := h.offerID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteOffer(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// GET /api/daily-offers
func (h *OfferHandler) ListOffers(c *gin.Context) {
	offers, err := h.service.ListOffers(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, offers)
}

// GET /api/daily-offers/active
func (h *OfferHandler) ListActiveOffers(c *gin.Context) {
	offers, err := h.service.ListActiveOffers(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, offers)
}

// GET /api/daily-offers/current
func (h *OfferHandler) ListCurrentOffers(c *gin.Context) {
	offers, err := h.service.ListCurrentOffers(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, offers)
}

// GET /api/daily-offers/by-book/:bookId
func (h *OfferHandler) ListOffersByBook(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil || bookID < 1 {
		response.BadRequest(c, "invalid book id")
		return
	}

	offers, err := h.service.ListOffersByBook(c.Request.Context(), bookID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, offers)
}

// GET /api/daily-offers/by-pack/:packId
func (h *OfferHandler) ListOffersByPack(c *gin.Context) {
	packID, err := strconv.ParseInt(c.Param("packId"), 10, 64)
	if err != nil || packID < 1 {
		response.BadRequest(c, "invalid pack id")
		return
	}

	offers, err := h.service.ListOffersByPack(c.Request.Context(), packID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, offers)
}

func (h *OfferHandler) offerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid offer id")
		return 0, false
	}
	return id, true
}

func (h *OfferHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
	case errors.Is(err, model.ErrInvalidDateSpan):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrOfferNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("offer handler error", err)
		response.InternalServerError(c, "something went wrong")
	}
}
