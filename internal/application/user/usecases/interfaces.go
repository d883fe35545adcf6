package usecases

import "context"

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*UserDTO, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*UserDTO, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*UserDTO, error)
}
