package api

import (
	"errors"
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUsecase
}

func NewBookingHandler(bookingUseCase usecase.BookingUsecase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.bookingUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD")
		case errors.Is(err, errs.ErrInvalidTime):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or off-grid time")
		case errors.Is(err, errs.ErrPastDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking date is in the past")
		case errors.Is(err, errs.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found")
		case errors.Is(err, errs.ErrSlotTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Time slot is already taken")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format")
		return
	}

	if err := h.bookingUseCase.Cancel(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
		case errors.Is(err, errs.ErrAlreadyCancelled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking is already cancelled")
		case errors.Is(err, errs.ErrRefundFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Refund failed, booking was not cancelled")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "cancelled",
	})
}
