package ports

import (
	"context"

	"github.com/soaeast/crm-api/internal/core/domain"
)

// DashboardStats is the headline KPI block. The *_change deltas are static
// demo values, not computed from history.
type DashboardStats struct {
	TotalRevenue  float64 `json:"total_revenue"`
	OpenOrders    int     `json:"open_orders"`
	NewClients    int     `json:"new_clients"`
	AvgOrderValue float64 `json:"avg_order_value"`
	RevenueChange float64 `json:"revenue_change"`
	OrdersChange  int     `json:"orders_change"`
	ClientsChange int     `json:"clients_change"`
	AOVChange     float64 `json:"aov_change"`
}

// PipelineSummary sums deal amounts per stage.
type PipelineSummary struct {
	Prospecting float64 `json:"prospecting"`
	Proposal    float64 `json:"proposal"`
	Negotiation float64 `json:"negotiation"`
	Won         float64 `json:"won"`
	Lost        float64 `json:"lost"`
}

// TrendPoint is one month in the sales-trend series.
type TrendPoint struct {
	Month         string `json:"month"`
	NewClients    int    `json:"new_clients"`
	RepeatClients int    `json:"repeat_clients"`
}

type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	PipelineSummary(ctx context.Context) (*PipelineSummary, error)
	SalesTrend(ctx context.Context) ([]TrendPoint, error)
	RecentDeals(ctx context.Context) ([]*domain.Deal, error)
}
