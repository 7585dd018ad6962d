package service

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/soaeast/crm-api/internal/core/domain"
	"github.com/soaeast/crm-api/internal/core/ports"
)

// Demo deltas shown next to the live KPI figures. Computing real
// period-over-period changes would need a history the store doesn't keep.
const (
	mockRevenueChange = 12.4
	mockOrdersChange  = 8
	mockClientsChange = 3
	mockAOVChange     = -2.1
)

var trendMonths = []string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// DashboardService computes read-only aggregates over orders, clients and
// deals. Everything is derived on demand; nothing is cached.
type DashboardService struct {
	orders  ports.OrderRepository
	clients ports.ClientRepository
	deals   ports.DealRepository
	logger  zerolog.Logger
}

func NewDashboardService(orders ports.OrderRepository, clients ports.ClientRepository, deals ports.DealRepository, logger zerolog.Logger) *DashboardService {
	return &DashboardService{orders: orders, clients: clients, deals: deals, logger: logger}
}

func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	orders, err := s.orders.List(ctx, ports.OrderFilter{})
	if err != nil {
		return nil, err
	}

	var totalRevenue float64
	openOrders := 0
	for _, o := range orders {
		totalRevenue += o.Total
		if o.Status != domain.OrderStatusDelivered && o.Status != domain.OrderStatusCancelled {
			openOrders++
		}
	}

	clients, err := s.clients.List(ctx, ports.ClientFilter{})
	if err != nil {
		return nil, err
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -30)
	newClients := 0
	for _, c := range clients {
		if c.CreatedAt.After(cutoff) {
			newClients++
		}
	}

	avgOrderValue := 0.0
	if len(orders) > 0 {
		avgOrderValue = math.Round(totalRevenue/float64(len(orders))*100) / 100
	}

	return &ports.DashboardStats{
		TotalRevenue:  totalRevenue,
		OpenOrders:    openOrders,
		NewClients:    newClients,
		AvgOrderValue: avgOrderValue,
		RevenueChange: mockRevenueChange,
		OrdersChange:  mockOrdersChange,
		ClientsChange: mockClientsChange,
		AOVChange:     mockAOVChange,
	}, nil
}

func (s *DashboardService) PipelineSummary(ctx context.Context) (*ports.PipelineSummary, error) {
	deals, err := s.deals.List(ctx, ports.DealFilter{})
	if err != nil {
		return nil, err
	}

	var summary ports.PipelineSummary
	for _, d := range deals {
		switch d.Stage {
		case domain.StageProspecting:
			summary.Prospecting += d.Amount
		case domain.StageProposal:
			summary.Proposal += d.Amount
		case domain.StageNegotiation:
			summary.Negotiation += d.Amount
		case domain.StageWon:
			summary.Won += d.Amount
		case domain.StageLost:
			summary.Lost += d.Amount
		}
	}
	return &summary, nil
}

// SalesTrend serves a randomized 12-month demo series; there is no monthly
// rollup collection to draw real numbers from.
func (s *DashboardService) SalesTrend(_ context.Context) ([]ports.TrendPoint, error) {
	points := make([]ports.TrendPoint, 0, len(trendMonths))
	for _, m := range trendMonths {
		points = append(points, ports.TrendPoint{
			Month:         m,
			NewClients:    rand.Intn(13) + 3,
			RepeatClients: rand.Intn(16) + 5,
		})
	}
	return points, nil
}

func (s *DashboardService) RecentDeals(ctx context.Context) ([]*domain.Deal, error) {
	return s.deals.List(ctx, ports.DealFilter{Limit: 10})
}
