// Package usecases implements the admin dashboard summary.
package usecases

import (
	"context"
	"time"

	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

// RecentWindow is how far back the "recent" counters look.
const RecentWindow = 7 * 24 * time.Hour

type TicketStats struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
	ByPriority map[string]int64 `json:"by_priority"`
	Recent     int64            `json:"recent"`
}

type FeatureRequestStats struct {
	Total        int64            `json:"total"`
	ByStatus     map[string]int64 `json:"by_status"`
	ByPriority   map[string]int64 `json:"by_priority"`
	Recent       int64            `json:"recent"`
	TotalUpvotes int64            `json:"total_upvotes"`
}

type UserStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

type SummaryResult struct {
	Tickets         TicketStats         `json:"tickets"`
	FeatureRequests FeatureRequestStats `json:"feature_requests"`
	Users           UserStats           `json:"users"`
	GeneratedAt     time.Time           `json:"generated_at"`
}

// StatsRepository aggregates counters straight from storage; nothing here
// goes through the domain aggregates.
type StatsRepository interface {
	TicketStats(ctx context.Context, since time.Time) (*TicketStats, error)
	FeatureRequestStats(ctx context.Context, since time.Time) (*FeatureRequestStats, error)
	UserStats(ctx context.Context) (*UserStats, error)
}

type SummaryQuery struct {
	SubjectRole authorization.UserRole
}

type SummaryUseCase struct {
	statsRepo StatsRepository
	logger    logger.Interface
}

func NewSummaryUseCase(statsRepo StatsRepository, logger logger.Interface) *SummaryUseCase {
	return &SummaryUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

type SummaryExecutor interface {
	Execute(ctx context.Context, query SummaryQuery) (*SummaryResult, error)
}

// Execute builds the admin overview. Only admins may read it; everyone else
// gets a flat forbidden error regardless of what the numbers would show.
func (uc *SummaryUseCase) Execute(ctx context.Context, query SummaryQuery) (*SummaryResult, error) {
	if !query.SubjectRole.IsAdmin() {
		return nil, errors.NewForbiddenError("dashboard is restricted to administrators")
	}

	now := time.Now().UTC()
	since := now.Add(-RecentWindow)

	ticketStats, err := uc.statsRepo.TicketStats(ctx, since)
	if err != nil {
		uc.logger.Errorw("failed to aggregate ticket stats", "error", err)
		return nil, err
	}

	frStats, err := uc.statsRepo.FeatureRequestStats(ctx, since)
	if err != nil {
		uc.logger.Errorw("failed to aggregate feature request stats", "error", err)
		return nil, err
	}

	userStats, err := uc.statsRepo.UserStats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to aggregate user stats", "error", err)
		return nil, err
	}

	return &SummaryResult{
		Tickets:         *ticketStats,
		FeatureRequests: *frStats,
		Users:           *userStats,
		GeneratedAt:     now,
	}, nil
}
