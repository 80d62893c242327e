package workflow

import (
	"context"
	"time"

	"github.com/rifat-hossain/matricheck/internal/bridge"
)

// RiskCounts is the dashboard's distribution over the three levels.
type RiskCounts struct {
	Low      int `json:"low"`
	Moderate int `json:"moderate"`
	High     int `json:"high"`
}

// TrendPoint is one day of the weekly assessment series.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

const trendDateLayout = "2006-01-02"

func (p TrendPoint) Day() (time.Time, bool) {
	t, err := time.Parse(trendDateLayout, p.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FactorCount is one ranked risk factor. Code is a stable identifier the
// client resolves to a label through the string tables.
type FactorCount struct {
	Code  string  `json:"code"`
	Count int     `json:"count"`
	Pct   float64 `json:"pct"`
}

// DashboardStats is the full get_dashboard_stats payload.
type DashboardStats struct {
	Counts  RiskCounts    `json:"risk_counts"`
	Total   int           `json:"total"`
	Trend   []TrendPoint  `json:"weekly_trend"`
	Factors []FactorCount `json:"top_factors"`
}

type statsPayload struct {
	Error string `json:"error"`
	DashboardStats
}

// Stats fetches the dashboard aggregates.
func Stats(ctx context.Context, caller bridge.Caller) (DashboardStats, error) {
	if caller == nil {
		return DashboardStats{}, ErrBridgeUnavailable
	}
	payload, err := caller.DashboardStats(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	var resp statsPayload
	if err := parsePayload(bridge.CallDashboardStats, payload, &resp); err != nil {
		return DashboardStats{}, err
	}
	if resp.Error != "" {
		return DashboardStats{}, &BusinessError{Call: bridge.CallDashboardStats, Message: resp.Error}
	}
	return resp.DashboardStats, nil
}
