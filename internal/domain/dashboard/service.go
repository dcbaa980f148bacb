package dashboard

import (
	"context"
	"time"
)

const DefaultLeaderboardSize = 5

type DashboardService interface {
	GetDashboard(ctx context.Context, asOf time.Time) (*DashboardResponse, error)
	GetOvertimeLeaderboard(ctx context.Context, asOf time.Time, limit int) ([]LeaderboardEntry, error)
}
