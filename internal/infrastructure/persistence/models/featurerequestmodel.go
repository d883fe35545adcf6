package models

type FeatureRequestModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Priority    string `gorm:"size:20;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	RequesterID uint   `gorm:"not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (FeatureRequestModel) TableName() string {
	return "feature_requests"
}

type FeatureRequestCommentModel struct {
	ID               uint   `gorm:"primaryKey"`
	FeatureRequestID uint   `gorm:"not null;index"`
	AuthorID         uint   `gorm:"not null;index"`
	Content          string `gorm:"type:text;not null"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (FeatureRequestCommentModel) TableName() string {
	return "feature_request_comments"
}

// FeatureRequestUpvoteModel is the upvote ledger. The composite unique index
// is what makes upvoting idempotency enforceable: a second insert for the
// same (feature_request_id, user_id) pair fails at the storage layer.
type FeatureRequestUpvoteModel struct {
	ID               uint  `gorm:"primaryKey"`
	FeatureRequestID uint  `gorm:"not null;uniqueIndex:idx_fr_upvote_once"`
	UserID           uint  `gorm:"not null;uniqueIndex:idx_fr_upvote_once"`
	CreatedAt        int64 `gorm:"autoCreateTime:milli;not null"`
}

func (FeatureRequestUpvoteModel) TableName() string {
	return "feature_request_upvotes"
}
