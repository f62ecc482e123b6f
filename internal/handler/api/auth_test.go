//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"salon-booking/internal/handler/api"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase"
	"salon-booking/internal/usecase/readmodel"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/common/testutil"
	usecasemock "salon-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUsecase *usecasemock.MockAuthUsecase
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsecase = usecasemock.NewMockAuthUsecase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUsecase)

	s.router.POST("/api/auth/login", s.handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/auth/login"
	reqBody := map[string]any{
		"email":    "admin@example.com",
		"password": "correct-horse",
	}

	s.Run("success: returns token and user", func() {
		userID := uuid.New()
		s.mockUsecase.EXPECT().
			Login(gomock.Any(), "admin@example.com", "correct-horse").
			Return(&usecase.LoginResult{
				Token: "test-jwt-token",
				User:  &readmodel.UserView{ID: userID, Email: "admin@example.com", Role: "admin"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal("admin@example.com", response.User.Email)
		s.Equal("admin", response.User.Role)
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockUsecase.EXPECT().
			Login(gomock.Any(), "admin@example.com", "correct-horse").
			Return(nil, errs.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 400 on validation failures", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})
}
