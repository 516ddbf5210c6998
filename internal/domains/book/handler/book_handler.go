package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bookstore-backoffice/internal/domains/book/model"
	"bookstore-backoffice/internal/domains/book/service"
	"bookstore-backoffice/internal/shared/response"
	"bookstore-backoffice/pkg/logger"
)

type BookHandler struct {
	service       service.ServiceInterface
	imageService  service.ImageServiceInterface
	importService service.ImportServiceInterface
}

func NewBookHandler(
	svc service.ServiceInterface,
	imageSvc service.ImageServiceInterface,
	importSvc service.ImportServiceInterface,
) *BookHandler {
	return &BookHandler{
		service:       svc,
		imageService:  imageSvc,
		importService: importSvc,
	}
}

// POST /api/books
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	b, err := h.service.CreateBook(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

// PUT /api/books/:id
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	b, err := h.service.UpdateBook(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// GET /api/books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	b, err := h.service.GetBook(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// DELETE /api/books/:id
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// GET /api/books
func (h *BookHandler) ListBooks(c *gin.Context) {
	filter := &model.BookFilter{
		Keyword:       c.Query("keyword"),
		Category:      c.Query("category"),
		Language:      c.Query("language"),
		AvailableOnly: c.Query("available") == "true",
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	if raw := c.Query("priceMin"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			filter.PriceMin = &v
		}
	}
	if raw := c.Query("priceMax"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			filter.PriceMax = &v
		}
	}

	books, total, err := h.service.ListBooks(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
	})
}

// GET /api/books/all
func (h *BookHandler) ListAllBooks(c *gin.Context) {
	books, err := h.service.ListAllBooks(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, books)
}

// GET /api/books/available
func (h *BookHandler) ListAvailableBooks(c *gin.Context) {
	books, err := h.service.ListAvailableBooks(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, books)
}

// GET /api/books/featured
func (h *BookHandler) ListFeaturedBooks(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	books, err := h.service.ListFeaturedBooks(c.Request.Context(), limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, books)
}

// GET /api/books/search?keyword=...
func (h *BookHandler) SearchBooks(c *gin.Context) {
	books, err := h.service.SearchBooks(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, books)
}

// GET /api/books/price-range?min=...&max=...
func (h *BookHandler) ListBooksByPriceRange(c *gin.Context) {
	min, err := decimal.NewFromString(c.DefaultQuery("min", "0"))
	if err != nil {
		response.BadRequest(c, "invalid min price")
		return
	}
	max, err := decimal.NewFromString(c.DefaultQuery("max", "0"))
	if err != nil {
		response.BadRequest(c, "invalid max price")
		return
	}

	books, err := h.service.ListBooksByPriceRange(c.Request.Context(), min, max)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, books)
}

// GET /api/books/categories
func (h *BookHandler) ListCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.ListCategories())
}

// PUT /api/books/:id/stock
func (h *BookHandler) UpdateStock(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	var req model.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	b, err := h.service.UpdateStock(c.Request.Context(), id, req.Stock)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// PUT /api/books/:id/toggle-availability
func (h *BookHandler) ToggleAvailability(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	b, err := h.service.ToggleAvailability(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// POST /api/books/:id/image
func (h *BookHandler) UploadImage(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}

	url, err := h.imageService.UploadCover(c.Request.Context(), id, file)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"imageUrl": url})
}

// POST /api/books/bulk-import
func (h *BookHandler) ImportBooks(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "spreadsheet file is required")
		return
	}

	report, err := h.importService.ImportBooks(c.Request.Context(), file)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, report)
}

func (h *BookHandler) bookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid book id")
		return 0, false
	}
	return id, true
}

func (h *BookHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
	case errors.Is(err, model.ErrBookNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrISBNTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, model.ErrNoStockAvailability), errors.Is(err, model.ErrInsufficientStock):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("book handler error", err)
		response.InternalServerError(c, "something went wrong")
	}
}
