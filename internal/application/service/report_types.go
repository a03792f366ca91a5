package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StaffProfile identifies the staff member a report describes. It is
// populated even when the rest of the report is zeroed because the
// employee was never connected to the POS system.
type StaffProfile struct {
	StaffID      uuid.UUID `json:"staff_id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	LocationName string    `json:"location_name"`
	POSConnected bool      `json:"pos_connected"`
}

// DailyRevenuePoint is one day of the current-period revenue series
type DailyRevenuePoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// RevenueReport summarizes appointment revenue for the current period
type RevenueReport struct {
	Total      decimal.Decimal     `json:"total"`
	Tips       decimal.Decimal     `json:"tips"`
	AvgTicket  decimal.Decimal     `json:"avg_ticket"`
	ChangePct  float64             `json:"change_pct"`
	DailyTrend []DailyRevenuePoint `json:"daily_trend"`
}

// ProductivityReport summarizes appointment volume for the current period
type ProductivityReport struct {
	TotalAppointments int     `json:"total_appointments"`
	Completed         int     `json:"completed"`
	NoShows           int     `json:"no_shows"`
	Cancelled         int     `json:"cancelled"`
	Other             int     `json:"other"`
	WorkingDays       int     `json:"working_days"`
	AvgPerDay         float64 `json:"avg_per_day"`
	UniqueClients     int     `json:"unique_clients"`
}

// EngagementReport holds the client-engagement rates for one period
type EngagementReport struct {
	RebookingRate float64 `json:"rebooking_rate"`
	RetentionRate float64 `json:"retention_rate"`
	NewClients    int     `json:"new_clients"`
}

// RetailReport splits POS revenue into service and product streams.
// AttachmentRate is the percentage of service-containing transactions
// that also included a product, rounded to an integer.
type RetailReport struct {
	ServiceRevenue decimal.Decimal `json:"service_revenue"`
	ProductRevenue decimal.Decimal `json:"product_revenue"`
	AttachmentRate int             `json:"attachment_rate"`
}

// ExperienceReport is the weighted composite client-experience score
type ExperienceReport struct {
	Score  float64 `json:"score"`
	Status string  `json:"status"`
}

// ServiceRanking is one entry of the top-services list
type ServiceRanking struct {
	Name     string          `json:"name"`
	Count    int             `json:"count"`
	Revenue  decimal.Decimal `json:"revenue"`
	AvgPrice decimal.Decimal `json:"avg_price"`
}

// ClientRanking is one entry of the top-clients list
type ClientRanking struct {
	ClientID  uuid.UUID       `json:"client_id"`
	Name      string          `json:"name"`
	Visits    int             `json:"visits"`
	Revenue   decimal.Decimal `json:"revenue"`
	LastVisit string          `json:"last_visit"`
	AtRisk    bool            `json:"at_risk"`
}

// CommissionReport is the tiered commission breakdown for the period
type CommissionReport struct {
	TierName          string          `json:"tier_name"`
	ServiceCommission decimal.Decimal `json:"service_commission"`
	ProductCommission decimal.Decimal `json:"product_commission"`
	Total             decimal.Decimal `json:"total"`
}

// TeamAverages contextualizes an individual's numbers against the whole
// team for the same period. The two denominators are independent:
// revenue and appointment averages divide by the staff contributing
// appointments, rate averages by the staff contributing weekly metrics.
type TeamAverages struct {
	AvgRevenue             decimal.Decimal `json:"avg_revenue"`
	AvgAppointments        float64         `json:"avg_appointments"`
	AvgRebookingRate       float64         `json:"avg_rebooking_rate"`
	AvgRetentionRate       float64         `json:"avg_retention_rate"`
	AvgNewClients          float64         `json:"avg_new_clients"`
	StaffWithAppointments  int             `json:"staff_with_appointments"`
	StaffWithWeeklyMetrics int             `json:"staff_with_weekly_metrics"`
}

// TrendPoint is one of the three period points consumers render as
// sparklines, ordered two_prior, prior, current.
type TrendPoint struct {
	Period        string          `json:"period"`
	From          string          `json:"from"`
	To            string          `json:"to"`
	Revenue       decimal.Decimal `json:"revenue"`
	RebookingRate float64         `json:"rebooking_rate"`
	RetentionRate float64         `json:"retention_rate"`
}

// StaffReport is the complete multi-period performance report for one
// staff member. It is built once per request and never partially
// updated: for a resolved identity every field is computed even when it
// evaluates to zero, and for an unresolved identity every numeric leaf
// is zero with empty top-lists.
type StaffReport struct {
	Profile      StaffProfile       `json:"profile"`
	DateFrom     string             `json:"date_from"`
	DateTo       string             `json:"date_to"`
	Revenue      RevenueReport      `json:"revenue"`
	Productivity ProductivityReport `json:"productivity"`
	Engagement   EngagementReport   `json:"engagement"`
	Retail       RetailReport       `json:"retail"`
	Experience   ExperienceReport   `json:"experience"`
	TopServices  []ServiceRanking   `json:"top_services"`
	TopClients   []ClientRanking    `json:"top_clients"`
	Commission   CommissionReport   `json:"commission"`
	TeamAverages TeamAverages       `json:"team_averages"`
	Trend        []TrendPoint       `json:"trend"`
}
