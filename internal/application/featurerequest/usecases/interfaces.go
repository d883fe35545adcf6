package usecases

import "context"

type CreateFeatureRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateFeatureRequestCommand) (*FeatureRequestDTO, error)
}

type GetFeatureRequestExecutor interface {
	Execute(ctx context.Context, query GetFeatureRequestQuery) (*FeatureRequestDTO, error)
}

type ListFeatureRequestsExecutor interface {
	Execute(ctx context.Context, query ListFeatureRequestsQuery) (*ListFeatureRequestsResult, error)
}

type UpdateFeatureRequestExecutor interface {
	Execute(ctx context.Context, cmd UpdateFeatureRequestCommand) (*FeatureRequestDTO, error)
}

type DeleteFeatureRequestExecutor interface {
	Execute(ctx context.Context, cmd DeleteFeatureRequestCommand) error
}

type UpvoteExecutor interface {
	Execute(ctx context.Context, cmd UpvoteCommand) (*UpvoteResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*CommentDTO, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]CommentDTO, error)
}
