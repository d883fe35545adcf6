package models

type AttachmentModel struct {
	ID               uint   `gorm:"primaryKey"`
	Filename         string `gorm:"size:255;not null"`
	StoredName       string `gorm:"uniqueIndex;size:255;not null"`
	FileType         string `gorm:"size:100"`
	FileSize         int64  `gorm:"not null"`
	OwnerID          uint   `gorm:"not null;index"`
	TicketID         *uint  `gorm:"index"`
	FeatureRequestID *uint  `gorm:"index"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "attachments"
}
