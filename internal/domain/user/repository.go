package user

import "context"

// Filter narrows List queries. Zero values mean "no constraint".
type Filter struct {
	Role     string
	IsActive *bool
	Page     int
	PageSize int
}

// Repository is the persistence contract for the user aggregate.
type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
