package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/nywele/salon-api/internal/domain/repository"
	"github.com/nywele/salon-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	topServicesLimit = 5
	topClientsLimit  = 10
)

// ReportCache stores finished staff reports keyed by (staff, from, to).
// Implementations set their own TTL. A nil cache disables caching; cache
// failures are never allowed to fail a report.
type ReportCache interface {
	// Get returns the cached report, or (nil, nil) on a miss.
	Get(ctx context.Context, staffID uuid.UUID, from, to time.Time) (*StaffReport, error)
	Set(ctx context.Context, staffID uuid.UUID, from, to time.Time, report *StaffReport) error
}

// StaffReportService builds multi-period staff performance reports. All
// of its inputs are read-only rows from the upstream stores; the service
// itself never writes anything except the report cache.
type StaffReportService struct {
	appointmentRepo repository.AppointmentRepository
	saleRepo        repository.SaleRepository
	metricRepo      repository.WeeklyMetricRepository
	employeeRepo    repository.EmployeeRepository
	clientRepo      repository.ClientRepository
	locationRepo    repository.LocationRepository
	tierRepo        repository.CommissionTierRepository
	cache           ReportCache
	logger          *zap.Logger
	now             func() time.Time
}

// NewStaffReportService creates a new staff report service. cache may be
// nil to disable report caching.
func NewStaffReportService(
	appointmentRepo repository.AppointmentRepository,
	saleRepo repository.SaleRepository,
	metricRepo repository.WeeklyMetricRepository,
	employeeRepo repository.EmployeeRepository,
	clientRepo repository.ClientRepository,
	locationRepo repository.LocationRepository,
	tierRepo repository.CommissionTierRepository,
	cache ReportCache,
	logger *zap.Logger,
) *StaffReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffReportService{
		appointmentRepo: appointmentRepo,
		saleRepo:        saleRepo,
		metricRepo:      metricRepo,
		employeeRepo:    employeeRepo,
		clientRepo:      clientRepo,
		locationRepo:    locationRepo,
		tierRepo:        tierRepo,
		cache:           cache,
		logger:          logger,
		now:             time.Now,
	}
}

// BuildReport reconstructs the performance report for one staff member
// over an inclusive date range, benchmarked against the team and the two
// preceding equal-length periods.
//
// An employee that was never connected to the POS system yields a fully
// shaped, fully zeroed report carrying only the profile — a normal
// "no data yet" state, not an error. Upstream fetch failures propagate
// without retry: retrying against a shifted "now" could silently change
// what "current period" means.
func (s *StaffReportService) BuildReport(ctx context.Context, staffID uuid.UUID, from, to time.Time) (*StaffReport, error) {
	current, prior, twoPrior, err := ResolveReportPeriods(from, to)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, staffID, current.From, current.To)
		if err != nil {
			s.logger.Warn("report cache read failed", zap.Error(err), zap.String("staff_id", staffID.String()))
		} else if cached != nil {
			return cached, nil
		}
	}

	employee, err := s.employeeRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	profile := StaffProfile{
		StaffID: employee.ID,
		Name:    employee.FullName(),
		Role:    employee.Role,
	}
	if location, err := s.locationRepo.GetByID(ctx, employee.LocationID); err != nil {
		s.logger.Warn("location lookup failed", zap.Error(err), zap.String("staff_id", staffID.String()))
	} else if location != nil {
		profile.LocationName = location.Name
	}

	link, err := s.employeeRepo.GetPOSLink(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		report := zeroedReport(profile, current, prior, twoPrior)
		s.storeInCache(ctx, staffID, current, report)
		return report, nil
	}
	profile.POSConnected = true

	tiers, err := s.tierRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	// The five raw-data fetches are mutually independent; issue them
	// concurrently and join before any aggregation. Each task writes
	// only its own result variables.
	var (
		currentAppts, priorAppts, twoPriorAppts       []entity.Appointment
		lineItems                                     []entity.SaleLineItem
		currentMetrics, priorMetrics, twoPriorMetrics []entity.StaffWeeklyMetric
		teamAppts                                     []entity.Appointment
		teamMetrics                                   []entity.StaffWeeklyMetric
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if currentAppts, err = s.appointmentRepo.ListForStaffBetween(gctx, staffID, current.From, current.To); err != nil {
			return err
		}
		if priorAppts, err = s.appointmentRepo.ListForStaffBetween(gctx, staffID, prior.From, prior.To); err != nil {
			return err
		}
		twoPriorAppts, err = s.appointmentRepo.ListForStaffBetween(gctx, staffID, twoPrior.From, twoPrior.To)
		return err
	})
	g.Go(func() error {
		var err error
		lineItems, err = s.saleRepo.ListLineItemsForPOSStaffBetween(gctx, link.POSStaffID, current.From, current.To)
		return err
	})
	g.Go(func() error {
		var err error
		if currentMetrics, err = s.metricRepo.ListForStaffBetween(gctx, staffID, current.From, current.To); err != nil {
			return err
		}
		if priorMetrics, err = s.metricRepo.ListForStaffBetween(gctx, staffID, prior.From, prior.To); err != nil {
			return err
		}
		twoPriorMetrics, err = s.metricRepo.ListForStaffBetween(gctx, staffID, twoPrior.From, twoPrior.To)
		return err
	})
	g.Go(func() error {
		var err error
		teamAppts, err = s.appointmentRepo.ListAllBetween(gctx, current.From, current.To)
		return err
	})
	g.Go(func() error {
		var err error
		teamMetrics, err = s.metricRepo.ListAllBetween(gctx, current.From, current.To)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Everything below is pure, synchronous aggregation over the rows.
	currentRevenue := summarizeRevenue(currentAppts)
	priorRevenue := summarizeRevenue(priorAppts)
	twoPriorRevenue := summarizeRevenue(twoPriorAppts)

	productivity := summarizeProductivity(currentAppts, current)
	split := splitLineItems(lineItems)
	attachmentRate := split.AttachmentRate()

	currentEngagement := engagementForPeriod(currentMetrics, currentAppts)
	priorEngagement := engagementForPeriod(priorMetrics, priorAppts)
	twoPriorEngagement := engagementForPeriod(twoPriorMetrics, twoPriorAppts)

	tipRate := 0.0
	if currentRevenue.Total.IsPositive() {
		tipRate = currentRevenue.Tips.Div(currentRevenue.Total).InexactFloat64() * 100
	}
	experience := calculateExperience(experienceInputs{
		RebookingRate:     currentEngagement.RebookingRate,
		TipRate:           tipRate,
		RetentionRate:     currentEngagement.RetentionRate,
		AttachmentRate:    float64(attachmentRate),
		TotalAppointments: productivity.Total,
	})

	names, err := s.clientRepo.GetNamesByIDs(ctx, collectClientIDs(currentAppts))
	if err != nil {
		s.logger.Warn("client name lookup failed", zap.Error(err), zap.String("staff_id", staffID.String()))
		names = map[uuid.UUID]string{}
	}

	report := &StaffReport{
		Profile:  profile,
		DateFrom: current.From.Format(dateLayout),
		DateTo:   current.To.Format(dateLayout),
		Revenue: RevenueReport{
			Total:      currentRevenue.Total,
			Tips:       currentRevenue.Tips,
			AvgTicket:  currentRevenue.AvgTicket,
			ChangePct:  revenueChangePct(currentRevenue.Total, priorRevenue.Total),
			DailyTrend: dailyRevenueTrend(currentAppts),
		},
		Productivity: ProductivityReport{
			TotalAppointments: productivity.Total,
			Completed:         productivity.Completed,
			NoShows:           productivity.NoShows,
			Cancelled:         productivity.Cancelled,
			Other:             productivity.Other,
			WorkingDays:       productivity.WorkingDays,
			AvgPerDay:         productivity.AvgPerDay,
			UniqueClients:     productivity.UniqueClients,
		},
		Engagement: currentEngagement,
		Retail: RetailReport{
			ServiceRevenue: split.ServiceRevenue,
			ProductRevenue: split.ProductRevenue,
			AttachmentRate: attachmentRate,
		},
		Experience:   experience,
		TopServices:  topServices(lineItems, topServicesLimit),
		TopClients:   topClients(currentAppts, names, s.now(), topClientsLimit),
		Commission:   calculateCommission(tiers, split.ServiceRevenue, split.ProductRevenue),
		TeamAverages: summarizeTeam(teamAppts, teamMetrics),
		Trend: buildTrend(
			[3]ReportPeriod{twoPrior, prior, current},
			[3]revenueTotals{twoPriorRevenue, priorRevenue, currentRevenue},
			[3]EngagementReport{twoPriorEngagement, priorEngagement, currentEngagement},
		),
	}

	s.storeInCache(ctx, staffID, current, report)
	return report, nil
}

func (s *StaffReportService) storeInCache(ctx context.Context, staffID uuid.UUID, current ReportPeriod, report *StaffReport) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, staffID, current.From, current.To, report); err != nil {
		s.logger.Warn("report cache write failed", zap.Error(err), zap.String("staff_id", staffID.String()))
	}
}

// collectClientIDs returns the distinct non-nil client ids, ordered by
// first appearance.
func collectClientIDs(appointments []entity.Appointment) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)
	for _, a := range appointments {
		if a.ClientID == nil {
			continue
		}
		if _, ok := seen[*a.ClientID]; ok {
			continue
		}
		seen[*a.ClientID] = struct{}{}
		ids = append(ids, *a.ClientID)
	}
	return ids
}

var trendLabels = [3]string{"two_prior", "prior", "current"}

// buildTrend assembles the three-point sparkline series, ordered
// two-prior, prior, current.
func buildTrend(periods [3]ReportPeriod, revenues [3]revenueTotals, engagements [3]EngagementReport) []TrendPoint {
	trend := make([]TrendPoint, 0, len(periods))
	for i := range periods {
		trend = append(trend, TrendPoint{
			Period:        trendLabels[i],
			From:          periods[i].From.Format(dateLayout),
			To:            periods[i].To.Format(dateLayout),
			Revenue:       revenues[i].Total,
			RebookingRate: engagements[i].RebookingRate,
			RetentionRate: engagements[i].RetentionRate,
		})
	}
	return trend
}

// zeroedReport is the "no data yet" shape returned when the staff member
// has never been connected to the POS system: the same report with every
// numeric leaf at zero and empty top-lists, but a populated profile.
func zeroedReport(profile StaffProfile, current, prior, twoPrior ReportPeriod) *StaffReport {
	zeroRevenue := revenueTotals{Total: decimal.Zero, Tips: decimal.Zero, AvgTicket: decimal.Zero}
	return &StaffReport{
		Profile:  profile,
		DateFrom: current.From.Format(dateLayout),
		DateTo:   current.To.Format(dateLayout),
		Revenue: RevenueReport{
			Total:      decimal.Zero,
			Tips:       decimal.Zero,
			AvgTicket:  decimal.Zero,
			DailyTrend: []DailyRevenuePoint{},
		},
		Retail: RetailReport{
			ServiceRevenue: decimal.Zero,
			ProductRevenue: decimal.Zero,
		},
		Experience:  ExperienceReport{Score: 0, Status: experienceBand(0)},
		TopServices: []ServiceRanking{},
		TopClients:  []ClientRanking{},
		Commission: CommissionReport{
			ServiceCommission: decimal.Zero,
			ProductCommission: decimal.Zero,
			Total:             decimal.Zero,
		},
		TeamAverages: TeamAverages{AvgRevenue: decimal.Zero},
		Trend: buildTrend(
			[3]ReportPeriod{twoPrior, prior, current},
			[3]revenueTotals{zeroRevenue, zeroRevenue, zeroRevenue},
			[3]EngagementReport{{}, {}, {}},
		),
	}
}
