package services_test

import (
	"context"
	"testing"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
	portssvc "github.com/obracontrol/budget_control_app/internal/core/ports/services"
	"github.com/obracontrol/budget_control_app/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type AlertServiceTestSuite struct {
	suite.Suite
	mockAllocations  *MockAllocationReader
	mockAvailability *MockAvailabilityService
	service          portssvc.AlertSvcFacade
}

func (suite *AlertServiceTestSuite) SetupTest() {
	suite.mockAllocations = new(MockAllocationReader)
	suite.mockAvailability = new(MockAvailabilityService)
	suite.service = services.NewAlertService(suite.mockAllocations, suite.mockAvailability, &seqIDGenerator{})
}

func viewWithPercent(code, name, percent string, allocated, executed string) *domain.AvailabilityView {
	v := &domain.AvailabilityView{
		PartidaCode:     code,
		Name:            name,
		Direction:       domain.Expense,
		Allocated:       mustDecimal(allocated),
		Executed:        mustDecimal(executed),
		Available:       mustDecimal(allocated).Sub(mustDecimal(executed)),
		PercentExecuted: mustDecimal(percent),
	}
	v.Tier = domain.TierForPercent(v.PercentExecuted)
	return v
}

func (suite *AlertServiceTestSuite) TestGetProjectAlerts_OrderedBySeverityThenPercent() {
	ctx := context.Background()
	suite.mockAllocations.On("ListProjectAllocations", ctx, "c1", "p1").Return([]domain.ProjectAllocation{
		{Direction: domain.Expense, PartidaCode: "A", Amount: mustDecimal("100")},
		{Direction: domain.Expense, PartidaCode: "B", Amount: mustDecimal("100")},
		{Direction: domain.Expense, PartidaCode: "C", Amount: mustDecimal("100")},
		{Direction: domain.Expense, PartidaCode: "D", Amount: mustDecimal("100")},
	}, nil).Once()

	suite.mockAvailability.On("GetAvailabilityForDirection", ctx, "c1", "p1", domain.Expense, "A").
		Return(viewWithPercent("A", "Moldajes", "80.00", "100", "80"), nil).Once()
	suite.mockAvailability.On("GetAvailabilityForDirection", ctx, "c1", "p1", domain.Expense, "B").
		Return(viewWithPercent("B", "Fierro", "120.00", "100", "120"), nil).Once()
	suite.mockAvailability.On("GetAvailabilityForDirection", ctx, "c1", "p1", domain.Expense, "C").
		Return(viewWithPercent("C", "Hormigón", "95.00", "100", "95"), nil).Once()
	suite.mockAvailability.On("GetAvailabilityForDirection", ctx, "c1", "p1", domain.Expense, "D").
		Return(viewWithPercent("D", "Excavación", "40.00", "100", "40"), nil).Once()

	alerts, err := suite.service.GetProjectAlerts(ctx, "c1", "p1")

	suite.Require().NoError(err)
	// Green is filtered; red outranks orange outranks yellow.
	suite.Require().Len(alerts, 3)
	suite.Equal("B", alerts[0].PartidaCode)
	suite.Equal(domain.TierRed, alerts[0].Tier)
	suite.Equal("CRITICAL", alerts[0].Severity)
	suite.Equal("C", alerts[1].PartidaCode)
	suite.Equal("HIGH", alerts[1].Severity)
	suite.Equal("A", alerts[2].PartidaCode)
	suite.Equal("MEDIUM", alerts[2].Severity)

	suite.Equal("Partida Fierro has exceeded budget, overrun amount 20.00", alerts[0].Message)
	suite.Equal("URGENT: partida Hormigón is 95.00% executed, available 5.00", alerts[1].Message)
	suite.Equal("Attention: partida Moldajes is 80.00% executed, available 20.00", alerts[2].Message)
}

func (suite *AlertServiceTestSuite) TestGetProjectAlerts_SamePercentTiesBrokenByCode() {
	ctx := context.Background()
	suite.mockAllocations.On("ListProjectAllocations", ctx, "c1", "p1").Return([]domain.ProjectAllocation{
		{Direction: domain.Expense, PartidaCode: "Z", Amount: mustDecimal("100")},
		{Direction: domain.Expense, PartidaCode: "M", Amount: mustDecimal("100")},
	}, nil).Once()

	suite.mockAvailability.On("GetAvailabilityForDirection", ctx, "c1", "p1", domain.Expense, "Z").
		Return(viewWithPercent("Z", "Pinturas", "95.00", "100", "95"), nil).Once()
	suite.mockAvailability.On("GetAvailabilityForDirection", ctx, "c1", "p1", domain.Expense, "M").
		Return(viewWithPercent("M", "Ventanas", "95.00", "100", "95"), nil).Once()

	alerts, err := suite.service.GetProjectAlerts(ctx, "c1", "p1")

	suite.Require().NoError(err)
	suite.Require().Len(alerts, 2)
	suite.Equal("M", alerts[0].PartidaCode)
	suite.Equal("Z", alerts[1].PartidaCode)
}

func (suite *AlertServiceTestSuite) TestGetProjectAlerts_DeduplicatesBudgetVersions() {
	ctx := context.Background()
	// The same (direction, partida) pair can appear once per budget version;
	// only one availability computation and at most one alert result.
	suite.mockAllocations.On("ListProjectAllocations", ctx, "c1", "p1").Return([]domain.ProjectAllocation{
		{Direction: domain.Expense, PartidaCode: "A", Amount: mustDecimal("60")},
		{Direction: domain.Expense, PartidaCode: "A", Amount: mustDecimal("40")},
	}, nil).Once()

	suite.mockAvailability.On("GetAvailabilityForDirection", ctx, "c1", "p1", domain.Expense, "A").
		Return(viewWithPercent("A", "Moldajes", "110.00", "100", "110"), nil).Once()

	alerts, err := suite.service.GetProjectAlerts(ctx, "c1", "p1")

	suite.Require().NoError(err)
	suite.Len(alerts, 1)
	suite.mockAvailability.AssertNumberOfCalls(suite.T(), "GetAvailabilityForDirection", 1)
}

func (suite *AlertServiceTestSuite) TestGetProjectAlerts_AllGreenYieldsEmptySet() {
	ctx := context.Background()
	suite.mockAllocations.On("ListProjectAllocations", ctx, "c1", "p1").Return([]domain.ProjectAllocation{
		{Direction: domain.Expense, PartidaCode: "A", Amount: mustDecimal("100")},
	}, nil).Once()
	suite.mockAvailability.On("GetAvailabilityForDirection", ctx, "c1", "p1", domain.Expense, "A").
		Return(viewWithPercent("A", "Moldajes", "10.00", "100", "10"), nil).Once()

	alerts, err := suite.service.GetProjectAlerts(ctx, "c1", "p1")

	suite.Require().NoError(err)
	suite.Empty(alerts)
}

func TestAlertService(t *testing.T) {
	suite.Run(t, new(AlertServiceTestSuite))
}
