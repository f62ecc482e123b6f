package api

import (
	"errors"
	"fmt"
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogUseCase usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalogUseCase.ListServices(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	setCacheControl(c, int(h.catalogUseCase.ServicesMaxAge().Seconds()))
	c.JSON(http.StatusOK, resdto.FromServiceViews(services))
}

func (h *CatalogHandler) ListEmployees(c *gin.Context) {
	employees, err := h.catalogUseCase.ListEmployees(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	setCacheControl(c, int(h.catalogUseCase.EmployeesMaxAge().Seconds()))
	c.JSON(http.StatusOK, resdto.FromEmployeeViews(employees))
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID format")
		return
	}

	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	if err := h.catalogUseCase.UpdateService(c.Request.Context(), id, req.ToInput()); err != nil {
		switch {
		case errors.Is(err, errs.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "updated",
	})
}

// setCacheControl mirrors the server-side TTL on the HTTP response so edge
// caches and browsers expire together with the in-process cache.
func setCacheControl(c *gin.Context, maxAgeSeconds int) {
	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAgeSeconds))
}
