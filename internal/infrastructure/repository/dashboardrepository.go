package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/supportsync-io/supportsync/internal/application/dashboard/usecases"
	"github.com/supportsync-io/supportsync/internal/infrastructure/persistence/models"
)

// DashboardRepository answers the admin summary with aggregate queries; it
// never materializes domain aggregates.
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(database *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: database}
}

type groupCount struct {
	Label string
	Count int64
}

func (r *DashboardRepository) groupBy(model any, column string) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.
		Model(model).
		Select(fmt.Sprintf("%s AS label, COUNT(*) AS count", column)).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group by %s: %w", column, err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Label] = row.Count
	}
	return counts, nil
}

func (r *DashboardRepository) TicketStats(ctx context.Context, since time.Time) (*usecases.TicketStats, error) {
	stats := &usecases.TicketStats{}

	if err := r.db.WithContext(ctx).Model(&models.TicketModel{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	byStatus, err := r.groupBy(&models.TicketModel{}, "status")
	if err != nil {
		return nil, err
	}
	stats.ByStatus = byStatus

	byPriority, err := r.groupBy(&models.TicketModel{}, "priority")
	if err != nil {
		return nil, err
	}
	stats.ByPriority = byPriority

	err = r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("created_at >= ?", since.UnixMilli()).
		Count(&stats.Recent).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count recent tickets: %w", err)
	}

	return stats, nil
}

func (r *DashboardRepository) FeatureRequestStats(ctx context.Context, since time.Time) (*usecases.FeatureRequestStats, error) {
	stats := &usecases.FeatureRequestStats{}

	if err := r.db.WithContext(ctx).Model(&models.FeatureRequestModel{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count feature requests: %w", err)
	}

	byStatus, err := r.groupBy(&models.FeatureRequestModel{}, "status")
	if err != nil {
		return nil, err
	}
	stats.ByStatus = byStatus

	byPriority, err := r.groupBy(&models.FeatureRequestModel{}, "priority")
	if err != nil {
		return nil, err
	}
	stats.ByPriority = byPriority

	err = r.db.WithContext(ctx).
		Model(&models.FeatureRequestModel{}).
		Where("created_at >= ?", since.UnixMilli()).
		Count(&stats.Recent).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count recent feature requests: %w", err)
	}

	err = r.db.WithContext(ctx).
		Model(&models.FeatureRequestUpvoteModel{}).
		Count(&stats.TotalUpvotes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count upvotes: %w", err)
	}

	return stats, nil
}

func (r *DashboardRepository) UserStats(ctx context.Context) (*usecases.UserStats, error) {
	stats := &usecases.UserStats{}

	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("is_active = ?", true).
		Count(&stats.Active).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}

	return stats, nil
}
