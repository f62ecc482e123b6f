//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"salon-booking/internal/handler/api"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase"
	"salon-booking/internal/usecase/readmodel"
	"salon-booking/tests/common/httptest"
	usecasemock "salon-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CommissionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUsecase *usecasemock.MockCommissionUsecase
	handler     *api.CommissionHandler
}

func (s *CommissionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsecase = usecasemock.NewMockCommissionUsecase(s.mockCtrl)
	s.handler = api.NewCommissionHandler(s.mockUsecase)

	s.router.GET("/api/commissions", s.handler.ListCommissions)
}

func (s *CommissionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCommissionHandlerSuite(t *testing.T) {
	suite.Run(t, new(CommissionHandlerTestSuite))
}

func (s *CommissionHandlerTestSuite) TestListCommissions() {
	professionalID := uuid.New()

	report := &readmodel.CommissionReport{
		Commissions: []*readmodel.CommissionView{
			{ID: uuid.New(), ProfessionalID: professionalID, ProfessionalName: "Carlos", AmountCents: 2000, Rate: 40, Status: "pending"},
		},
		Summary: readmodel.CommissionSummary{TotalCents: 2000, PendingCents: 2000, Count: 1, AverageRate: 40},
		ProfessionalStats: []*readmodel.ProfessionalStats{
			{ProfessionalID: professionalID, ProfessionalName: "Carlos", TotalCents: 2000, PendingCents: 2000, AppointmentCount: 1, AverageRate: 40},
		},
	}

	s.Run("success: returns the full report", func() {
		s.mockUsecase.EXPECT().
			ListCommissions(gomock.Any(), usecase.CommissionFilter{}).
			Return(report, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/commissions", nil, "")

		var response resdto.CommissionReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(2000), response.Summary.TotalCents)
		s.Len(response.Commissions, 1)
		s.Len(response.ProfessionalStats, 1)
	})

	s.Run("success: query params become the filter", func() {
		s.mockUsecase.EXPECT().
			ListCommissions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filter usecase.CommissionFilter) (*readmodel.CommissionReport, error) {
				s.Require().NotNil(filter.ProfessionalID)
				s.Equal(professionalID, *filter.ProfessionalID)
				s.Equal("2026-08", filter.Period)
				s.Equal("pending", filter.Status)
				return report, nil
			}).Times(1)

		url := "/api/commissions?professional_id=" + professionalID.String() + "&period=2026-08&status=pending"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed professional ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/commissions?professional_id=nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid professional ID format")
	})
}
