//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"salon-booking/internal/handler/api"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/pkg/errs"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/common/testutil"
	usecasemock "salon-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUsecase *usecasemock.MockAvailabilityUsecase
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsecase = usecasemock.NewMockAvailabilityUsecase(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockUsecase)

	s.router.POST("/api/public/availability", s.handler.GetAvailableSlots)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailableSlots() {
	url := "/api/public/availability"
	shopID := uuid.New()
	reqBody := map[string]any{
		"barbershop_id": shopID.String(),
		"date":          "2026-09-01",
	}

	s.Run("success: returns the free slots", func() {
		s.mockUsecase.EXPECT().
			AvailableSlots(gomock.Any(), shopID, "2026-09-01").
			Return([]string{"08:00", "08:30", "10:30"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]string{"08:00", "08:30", "10:30"}, response.Slots)
		s.Equal("2026-09-01", response.Date)
	})

	s.Run("success: empty slot list stays a JSON array", func() {
		s.mockUsecase.EXPECT().
			AvailableSlots(gomock.Any(), shopID, "2026-09-01").
			Return([]string{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Contains(rec.Body.String(), `"available_time_slots":[]`)
	})

	s.Run("error: 400 on malformed date", func() {
		s.mockUsecase.EXPECT().
			AvailableSlots(gomock.Any(), shopID, "not-a-date").
			Return(nil, errs.ErrInvalidDate).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("date", "not-a-date"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("error: 400 on missing fields", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("barbershop_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockUsecase.EXPECT().
			AvailableSlots(gomock.Any(), shopID, "2026-09-01").
			Return(nil, errs.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
