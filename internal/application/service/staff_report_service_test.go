package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/domain/entity"
	domainRepo "github.com/nywele/salon-api/internal/domain/repository"
	"github.com/nywele/salon-api/pkg/apperror"
	"github.com/nywele/salon-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAppointmentRepo struct{ mock.Mock }

func (m *mockAppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *mockAppointmentRepo) Update(ctx context.Context, a *entity.Appointment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAppointmentRepo) List(ctx context.Context, params *domainRepo.AppointmentFilterParams) ([]entity.Appointment, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]entity.Appointment), args.Get(1).(int64), args.Error(2)
}

func (m *mockAppointmentRepo) ListForStaffBetween(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	args := m.Called(ctx, staffID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *mockAppointmentRepo) ListAllBetween(ctx context.Context, from, to time.Time) ([]entity.Appointment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

type mockSaleRepo struct{ mock.Mock }

func (m *mockSaleRepo) ListLineItemsForPOSStaffBetween(ctx context.Context, posStaffID string, from, to time.Time) ([]entity.SaleLineItem, error) {
	args := m.Called(ctx, posStaffID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SaleLineItem), args.Error(1)
}

type mockMetricRepo struct{ mock.Mock }

func (m *mockMetricRepo) ListForStaffBetween(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]entity.StaffWeeklyMetric, error) {
	args := m.Called(ctx, staffID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StaffWeeklyMetric), args.Error(1)
}

func (m *mockMetricRepo) ListAllBetween(ctx context.Context, from, to time.Time) ([]entity.StaffWeeklyMetric, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StaffWeeklyMetric), args.Error(1)
}

type mockEmployeeRepo struct{ mock.Mock }

func (m *mockEmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEmployeeRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Employee, int64, error) {
	args := m.Called(ctx, params, search)
	return args.Get(0).([]entity.Employee), args.Get(1).(int64), args.Error(2)
}

func (m *mockEmployeeRepo) GetPOSLink(ctx context.Context, employeeID uuid.UUID) (*entity.StaffPOSLink, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StaffPOSLink), args.Error(1)
}

func (m *mockEmployeeRepo) UpsertPOSLink(ctx context.Context, link *entity.StaffPOSLink) error {
	return m.Called(ctx, link).Error(0)
}

type mockClientRepo struct{ mock.Mock }

func (m *mockClientRepo) Create(ctx context.Context, c *entity.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *mockClientRepo) Update(ctx context.Context, c *entity.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockClientRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error) {
	args := m.Called(ctx, params, search)
	return args.Get(0).([]entity.Client), args.Get(1).(int64), args.Error(2)
}

func (m *mockClientRepo) GetNamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]string), args.Error(1)
}

type mockLocationRepo struct{ mock.Mock }

func (m *mockLocationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Location), args.Error(1)
}

type mockTierRepo struct{ mock.Mock }

func (m *mockTierRepo) ListActive(ctx context.Context) ([]entity.CommissionTier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CommissionTier), args.Error(1)
}

type mockReportCache struct{ mock.Mock }

func (m *mockReportCache) Get(ctx context.Context, staffID uuid.UUID, from, to time.Time) (*StaffReport, error) {
	args := m.Called(ctx, staffID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StaffReport), args.Error(1)
}

func (m *mockReportCache) Set(ctx context.Context, staffID uuid.UUID, from, to time.Time, report *StaffReport) error {
	return m.Called(ctx, staffID, from, to, report).Error(0)
}

type reportMocks struct {
	appointments *mockAppointmentRepo
	sales        *mockSaleRepo
	metrics      *mockMetricRepo
	employees    *mockEmployeeRepo
	clients      *mockClientRepo
	locations    *mockLocationRepo
	tiers        *mockTierRepo
}

func newReportService(cache ReportCache) (*StaffReportService, *reportMocks) {
	m := &reportMocks{
		appointments: &mockAppointmentRepo{},
		sales:        &mockSaleRepo{},
		metrics:      &mockMetricRepo{},
		employees:    &mockEmployeeRepo{},
		clients:      &mockClientRepo{},
		locations:    &mockLocationRepo{},
		tiers:        &mockTierRepo{},
	}
	svc := NewStaffReportService(
		m.appointments, m.sales, m.metrics, m.employees,
		m.clients, m.locations, m.tiers, cache, nil,
	)
	svc.now = func() time.Time { return day(2024, time.March, 20) }
	return svc, m
}

func testEmployee(staffID uuid.UUID) *entity.Employee {
	return &entity.Employee{
		ID:         staffID,
		LocationID: uuid.New(),
		FirstName:  "Wanja",
		LastName:   "Kamau",
		Role:       "stylist",
		Active:     true,
	}
}

func TestBuildReport_InvalidRange(t *testing.T) {
	svc, _ := newReportService(nil)

	_, err := svc.BuildReport(context.Background(), uuid.New(), day(2024, time.March, 14), day(2024, time.March, 8))
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestBuildReport_UnknownStaff(t *testing.T) {
	svc, m := newReportService(nil)
	staffID := uuid.New()
	m.employees.On("GetByID", mock.Anything, staffID).Return(nil, nil)

	_, err := svc.BuildReport(context.Background(), staffID, day(2024, time.March, 8), day(2024, time.March, 14))
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestBuildReport_UnmappedStaffGetsZeroedReport(t *testing.T) {
	svc, m := newReportService(nil)
	staffID := uuid.New()
	employee := testEmployee(staffID)

	m.employees.On("GetByID", mock.Anything, staffID).Return(employee, nil)
	m.locations.On("GetByID", mock.Anything, employee.LocationID).
		Return(&entity.Location{ID: employee.LocationID, Name: "Westlands"}, nil)
	m.employees.On("GetPOSLink", mock.Anything, staffID).Return(nil, nil)

	report, err := svc.BuildReport(context.Background(), staffID, day(2024, time.March, 8), day(2024, time.March, 14))
	require.NoError(t, err)

	assert.Equal(t, "Wanja Kamau", report.Profile.Name)
	assert.Equal(t, "Westlands", report.Profile.LocationName)
	assert.False(t, report.Profile.POSConnected)

	assert.True(t, report.Revenue.Total.IsZero())
	assert.Equal(t, 0, report.Productivity.TotalAppointments)
	assert.Equal(t, 0.0, report.Experience.Score)
	assert.Equal(t, "needs-attention", report.Experience.Status)
	assert.Empty(t, report.TopServices)
	assert.Empty(t, report.TopClients)
	assert.Equal(t, "", report.Commission.TierName)

	require.Len(t, report.Trend, 3)
	assert.Equal(t, "two_prior", report.Trend[0].Period)
	assert.Equal(t, "current", report.Trend[2].Period)
	assert.Equal(t, "2024-03-08", report.DateFrom)
	assert.Equal(t, "2024-03-14", report.DateTo)

	// Raw-data fetchers are never touched for an unmapped identity.
	m.appointments.AssertNotCalled(t, "ListForStaffBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.sales.AssertNotCalled(t, "ListLineItemsForPOSStaffBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBuildReport_FullReport(t *testing.T) {
	svc, m := newReportService(nil)
	staffID := uuid.New()
	clientID := uuid.New()
	employee := testEmployee(staffID)

	from, to := day(2024, time.March, 8), day(2024, time.March, 14)
	current, prior, twoPrior, err := ResolveReportPeriods(from, to)
	require.NoError(t, err)

	m.employees.On("GetByID", mock.Anything, staffID).Return(employee, nil)
	m.locations.On("GetByID", mock.Anything, employee.LocationID).
		Return(&entity.Location{ID: employee.LocationID, Name: "Westlands"}, nil)
	m.employees.On("GetPOSLink", mock.Anything, staffID).
		Return(&entity.StaffPOSLink{EmployeeID: staffID, POSStaffID: "pos-77", Active: true}, nil)
	m.tiers.On("ListActive", mock.Anything).Return(testTiers(), nil)

	currentAppts := []entity.Appointment{
		clientAppt(clientID, "completed", "100.00", day(2024, time.March, 11)),
		clientAppt(clientID, "completed", "50.00", day(2024, time.March, 12)),
	}
	for i := range currentAppts {
		currentAppts[i].StaffID = staffID
	}
	m.appointments.On("ListForStaffBetween", mock.Anything, staffID, current.From, current.To).Return(currentAppts, nil)
	m.appointments.On("ListForStaffBetween", mock.Anything, staffID, prior.From, prior.To).
		Return([]entity.Appointment{appt("completed", "100.00", "0", prior.From)}, nil)
	m.appointments.On("ListForStaffBetween", mock.Anything, staffID, twoPrior.From, twoPrior.To).
		Return([]entity.Appointment{}, nil)

	m.sales.On("ListLineItemsForPOSStaffBetween", mock.Anything, "pos-77", current.From, current.To).
		Return([]entity.SaleLineItem{
			lineItem("tx-1", "Braids", "service", 1, "100.00"),
			lineItem("tx-1", "Hair Oil", "product", 1, "20.00"),
		}, nil)

	m.metrics.On("ListForStaffBetween", mock.Anything, staffID, mock.Anything, mock.Anything).
		Return([]entity.StaffWeeklyMetric{}, nil)
	m.appointments.On("ListAllBetween", mock.Anything, current.From, current.To).Return(currentAppts, nil)
	m.metrics.On("ListAllBetween", mock.Anything, current.From, current.To).
		Return([]entity.StaffWeeklyMetric{}, nil)

	m.clients.On("GetNamesByIDs", mock.Anything, []uuid.UUID{clientID}).
		Return(map[uuid.UUID]string{clientID: "Amina Odhiambo"}, nil)

	report, err := svc.BuildReport(context.Background(), staffID, from, to)
	require.NoError(t, err)

	assert.True(t, report.Profile.POSConnected)
	assert.Equal(t, "150", report.Revenue.Total.String())
	// 150 current vs 100 prior
	assert.Equal(t, 50.0, report.Revenue.ChangePct)
	assert.Equal(t, 2, report.Productivity.Completed)
	assert.Equal(t, 1, report.Productivity.UniqueClients)

	assert.Equal(t, "100", report.Retail.ServiceRevenue.String())
	assert.Equal(t, "20", report.Retail.ProductRevenue.String())
	assert.Equal(t, 100, report.Retail.AttachmentRate)

	// 120 total revenue across the split qualifies only for Base.
	assert.Equal(t, "Base", report.Commission.TierName)
	assert.Equal(t, "10", report.Commission.ServiceCommission.String())
	assert.Equal(t, "1", report.Commission.ProductCommission.String())

	require.Len(t, report.TopServices, 1)
	assert.Equal(t, "Braids", report.TopServices[0].Name)
	require.Len(t, report.TopClients, 1)
	assert.Equal(t, "Amina Odhiambo", report.TopClients[0].Name)

	// Fewer than five appointments in the period: score gated to zero.
	assert.Equal(t, 0.0, report.Experience.Score)

	require.Len(t, report.Trend, 3)
	assert.True(t, report.Trend[0].Revenue.IsZero())
	assert.Equal(t, "100", report.Trend[1].Revenue.String())
	assert.Equal(t, "150", report.Trend[2].Revenue.String())

	assert.Equal(t, 1, report.TeamAverages.StaffWithAppointments)
}

func TestBuildReport_FetchErrorPropagates(t *testing.T) {
	svc, m := newReportService(nil)
	staffID := uuid.New()
	employee := testEmployee(staffID)
	boom := errors.New("connection reset")

	m.employees.On("GetByID", mock.Anything, staffID).Return(employee, nil)
	m.locations.On("GetByID", mock.Anything, employee.LocationID).Return(nil, nil)
	m.employees.On("GetPOSLink", mock.Anything, staffID).
		Return(&entity.StaffPOSLink{EmployeeID: staffID, POSStaffID: "pos-77", Active: true}, nil)
	m.tiers.On("ListActive", mock.Anything).Return(testTiers(), nil)

	m.appointments.On("ListForStaffBetween", mock.Anything, staffID, mock.Anything, mock.Anything).Return(nil, boom)
	m.sales.On("ListLineItemsForPOSStaffBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.SaleLineItem{}, nil)
	m.metrics.On("ListForStaffBetween", mock.Anything, staffID, mock.Anything, mock.Anything).
		Return([]entity.StaffWeeklyMetric{}, nil)
	m.appointments.On("ListAllBetween", mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.Appointment{}, nil)
	m.metrics.On("ListAllBetween", mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.StaffWeeklyMetric{}, nil)

	_, err := svc.BuildReport(context.Background(), staffID, day(2024, time.March, 8), day(2024, time.March, 14))
	require.ErrorIs(t, err, boom)
}

func TestBuildReport_CacheHitSkipsFetches(t *testing.T) {
	cache := &mockReportCache{}
	svc, m := newReportService(cache)
	staffID := uuid.New()
	from, to := day(2024, time.March, 8), day(2024, time.March, 14)

	cached := &StaffReport{DateFrom: "2024-03-08", DateTo: "2024-03-14"}
	cache.On("Get", mock.Anything, staffID, from, to).Return(cached, nil)

	report, err := svc.BuildReport(context.Background(), staffID, from, to)
	require.NoError(t, err)
	assert.Same(t, cached, report)

	m.employees.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestBuildReport_CacheWriteFailureIsIgnored(t *testing.T) {
	cache := &mockReportCache{}
	svc, m := newReportService(cache)
	staffID := uuid.New()
	employee := testEmployee(staffID)
	from, to := day(2024, time.March, 8), day(2024, time.March, 14)

	cache.On("Get", mock.Anything, staffID, from, to).Return(nil, nil)
	cache.On("Set", mock.Anything, staffID, from, to, mock.Anything).Return(errors.New("redis down"))

	m.employees.On("GetByID", mock.Anything, staffID).Return(employee, nil)
	m.locations.On("GetByID", mock.Anything, employee.LocationID).Return(nil, nil)
	m.employees.On("GetPOSLink", mock.Anything, staffID).Return(nil, nil)

	report, err := svc.BuildReport(context.Background(), staffID, from, to)
	require.NoError(t, err)
	assert.NotNil(t, report)
	cache.AssertCalled(t, "Set", mock.Anything, staffID, from, to, mock.Anything)
}

func TestBuildReport_Idempotent(t *testing.T) {
	build := func() *StaffReport {
		svc, m := newReportService(nil)
		staffID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
		employee := testEmployee(staffID)

		m.employees.On("GetByID", mock.Anything, staffID).Return(employee, nil)
		m.locations.On("GetByID", mock.Anything, employee.LocationID).Return(nil, nil)
		m.employees.On("GetPOSLink", mock.Anything, staffID).Return(nil, nil)

		report, err := svc.BuildReport(context.Background(), staffID, day(2024, time.March, 8), day(2024, time.March, 14))
		require.NoError(t, err)
		return report
	}

	first := build()
	second := build()
	// Same inputs, same clock, same report.
	assert.Equal(t, first.Trend, second.Trend)
	assert.Equal(t, first.DateFrom, second.DateFrom)
	assert.Equal(t, first.Experience, second.Experience)
}
