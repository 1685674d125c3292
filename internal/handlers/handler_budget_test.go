package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
	portssvc "github.com/obracontrol/budget_control_app/internal/core/ports/services"
	"github.com/obracontrol/budget_control_app/internal/dto"
	"github.com/obracontrol/budget_control_app/internal/handlers"
	"github.com/obracontrol/budget_control_app/internal/middleware"
)

// --- Mock AvailabilityService ---
type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) GetAvailability(ctx context.Context, companyID, projectID, partidaCode string) (*domain.AvailabilityView, error) {
	args := m.Called(ctx, companyID, projectID, partidaCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityView), args.Error(1)
}

func (m *MockAvailabilityService) GetAvailabilityForDirection(ctx context.Context, companyID, projectID string, direction domain.Direction, partidaCode string) (*domain.AvailabilityView, error) {
	args := m.Called(ctx, companyID, projectID, direction, partidaCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityView), args.Error(1)
}

var _ portssvc.AvailabilitySvcFacade = (*MockAvailabilityService)(nil)

// --- Mock ValidationService ---
type MockValidationService struct {
	mock.Mock
}

func (m *MockValidationService) ValidateVoucher(ctx context.Context, req dto.ValidateVoucherRequest) (*dto.ValidationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ValidationResponse), args.Error(1)
}

var _ portssvc.ValidationSvcFacade = (*MockValidationService)(nil)

// --- Mock AlertService ---
type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) GetProjectAlerts(ctx context.Context, companyID, projectID string) ([]domain.Alert, error) {
	args := m.Called(ctx, companyID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alert), args.Error(1)
}

var _ portssvc.AlertSvcFacade = (*MockAlertService)(nil)

// --- Mock BudgetReportService ---
type MockBudgetReportService struct {
	mock.Mock
}

func (m *MockBudgetReportService) GetBudgetVsActualReport(ctx context.Context, companyID, projectID string, year int) (*domain.BudgetVsActualReport, error) {
	args := m.Called(ctx, companyID, projectID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetVsActualReport), args.Error(1)
}

var _ portssvc.BudgetReportSvcFacade = (*MockBudgetReportService)(nil)

// --- Test Suite ---
type BudgetHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockAvailability *MockAvailabilityService
	mockValidation   *MockValidationService
	mockAlerts       *MockAlertService
	mockReport       *MockBudgetReportService
	jwtSecret        string
}

func (suite *BudgetHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "obracontrol-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *BudgetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockAvailability = new(MockAvailabilityService)
	suite.mockValidation = new(MockValidationService)
	suite.mockAlerts = new(MockAlertService)
	suite.mockReport = new(MockBudgetReportService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterBudgetRoutes(v1, suite.mockAvailability, suite.mockValidation, suite.mockAlerts, suite.mockReport)
}

func (suite *BudgetHandlerTestSuite) authedRequest(method, url string) *http.Request {
	req := httptest.NewRequest(method, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("u1"))
	req.Header.Set("Accept", "application/json")
	return req
}

// --- Test Cases ---

func (suite *BudgetHandlerTestSuite) TestGetAvailability_Success() {
	view := &domain.AvailabilityView{
		PartidaCode:     "03.01",
		Name:            "Hormigón",
		Direction:       domain.Expense,
		Allocated:       decimal.NewFromInt(10000),
		Executed:        decimal.NewFromInt(7600),
		Available:       decimal.NewFromInt(2400),
		PercentExecuted: decimal.RequireFromString("76.00"),
		Tier:            domain.TierYellow,
	}
	suite.mockAvailability.On("GetAvailability",
		mock.Anything, "c1", "p1", "03.01").Return(view, nil).Once()

	url := "/api/v1/budget/availability?companyID=c1&projectID=p1&partidaCode=03.01"
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, url))

	suite.Equal(http.StatusOK, w.Code)

	var body dto.AvailabilityResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("03.01", body.PartidaCode)
	suite.Equal("Hormigón", body.Name)
	suite.Equal(string(domain.TierYellow), body.Tier)
	suite.True(body.Available.Equal(decimal.NewFromInt(2400)))
	suite.mockAvailability.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestGetAvailability_ExplicitDirectionSkipsProbe() {
	view := &domain.AvailabilityView{
		PartidaCode: "01.05",
		Name:        "Ventas",
		Direction:   domain.Income,
		Tier:        domain.TierGreen,
	}
	suite.mockAvailability.On("GetAvailabilityForDirection",
		mock.Anything, "c1", "p1", domain.Income, "01.05").Return(view, nil).Once()

	url := "/api/v1/budget/availability?companyID=c1&projectID=p1&partidaCode=01.05&direction=INCOME"
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, url))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockAvailability.AssertNotCalled(suite.T(), "GetAvailability",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BudgetHandlerTestSuite) TestGetAvailability_BadDirection() {
	url := "/api/v1/budget/availability?companyID=c1&projectID=p1&partidaCode=01.05&direction=SIDEWAYS"
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, url))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *BudgetHandlerTestSuite) TestGetAvailability_MissingParams() {
	url := "/api/v1/budget/availability?companyID=c1"
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, url))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAvailability.AssertNotCalled(suite.T(), "GetAvailability",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BudgetHandlerTestSuite) TestGetAvailability_Unauthorized() {
	url := "/api/v1/budget/availability?companyID=c1&projectID=p1&partidaCode=03.01"
	req := httptest.NewRequest(http.MethodGet, url, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *BudgetHandlerTestSuite) TestGetAlerts_Success() {
	alerts := []domain.Alert{
		{
			AlertID:         "a1",
			Severity:        "CRITICAL",
			Tier:            domain.TierRed,
			Message:         "Partida Fierro has exceeded budget, overrun amount 20.00",
			PartidaCode:     "03.02",
			PercentExecuted: decimal.RequireFromString("120.00"),
			GeneratedAt:     time.Now().UTC(),
		},
	}
	suite.mockAlerts.On("GetProjectAlerts", mock.Anything, "c1", "p1").Return(alerts, nil).Once()

	url := "/api/v1/budget/alerts?companyID=c1&projectID=p1"
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, url))

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.AlertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal("CRITICAL", body[0].Severity)
	suite.Equal("03.02", body[0].PartidaCode)
}

func (suite *BudgetHandlerTestSuite) TestGetReport_YearPassedThrough() {
	report := &domain.BudgetVsActualReport{Year: 2024}
	suite.mockReport.On("GetBudgetVsActualReport", mock.Anything, "c1", "p1", 2024).Return(report, nil).Once()

	url := fmt.Sprintf("/api/v1/budget/report?companyID=c1&projectID=p1&year=%d", 2024)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, url))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReport.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestGetReport_InvalidYear() {
	url := "/api/v1/budget/report?companyID=c1&projectID=p1&year=next"
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, url))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReport.AssertNotCalled(suite.T(), "GetBudgetVsActualReport",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestBudgetHandler(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}
