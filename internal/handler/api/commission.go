package api

import (
	"net/http"

	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CommissionHandler struct {
	commissionUseCase usecase.CommissionUsecase
}

func NewCommissionHandler(commissionUseCase usecase.CommissionUsecase) *CommissionHandler {
	return &CommissionHandler{
		commissionUseCase: commissionUseCase,
	}
}

func (h *CommissionHandler) ListCommissions(c *gin.Context) {
	var filter usecase.CommissionFilter

	if raw := c.Query("professional_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid professional ID format")
			return
		}
		filter.ProfessionalID = &id
	}
	filter.Period = c.Query("period")
	filter.Status = c.Query("status")

	report, err := h.commissionUseCase.ListCommissions(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCommissionReport(report))
}
