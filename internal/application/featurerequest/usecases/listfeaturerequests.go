package usecases

import (
	"context"

	"github.com/supportsync-io/supportsync/internal/domain/featurerequest"
	vo "github.com/supportsync-io/supportsync/internal/domain/featurerequest/valueobjects"
	"github.com/supportsync-io/supportsync/internal/shared/errors"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

type ListFeatureRequestsQuery struct {
	Status      string
	Priority    string
	RequesterID *uint
	Search      string
	Page        int
	PageSize    int
}

type ListFeatureRequestsResult struct {
	FeatureRequests []FeatureRequestDTO `json:"feature_requests"`
	Total           int64               `json:"total"`
	Page            int                 `json:"page"`
	PageSize        int                 `json:"page_size"`
}

type ListFeatureRequestsUseCase struct {
	frRepo featurerequest.Repository
	logger logger.Interface
}

func NewListFeatureRequestsUseCase(frRepo featurerequest.Repository, logger logger.Interface) *ListFeatureRequestsUseCase {
	return &ListFeatureRequestsUseCase{
		frRepo: frRepo,
		logger: logger,
	}
}

// Execute lists feature requests for any authenticated user. The board is
// shared, so no ownership constraint is folded into the filter; upvote counts
// for the page are resolved in one batch query against the ledger.
func (uc *ListFeatureRequestsUseCase) Execute(ctx context.Context, query ListFeatureRequestsQuery) (*ListFeatureRequestsResult, error) {
	filter := featurerequest.Filter{
		RequesterID: query.RequesterID,
		Search:      query.Search,
		Page:        query.Page,
		PageSize:    query.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	items, total, err := uc.frRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list feature requests", "error", err)
		return nil, err
	}

	ids := make([]uint, 0, len(items))
	for _, fr := range items {
		ids = append(ids, fr.ID())
	}

	counts := map[uint]int64{}
	if len(ids) > 0 {
		counts, err = uc.frRepo.CountUpvotesBatch(ctx, ids)
		if err != nil {
			uc.logger.Errorw("failed to count upvotes", "error", err)
			return nil, err
		}
	}

	dtos := make([]FeatureRequestDTO, 0, len(items))
	for _, fr := range items {
		dtos = append(dtos, toFeatureRequestDTO(fr, counts[fr.ID()]))
	}

	return &ListFeatureRequestsResult{
		FeatureRequests: dtos,
		Total:           total,
		Page:            filter.Page,
		PageSize:        filter.PageSize,
	}, nil
}
