package history

import (
	"time"
)

// QueryEvent is one immutable record of a completed scrape. Rows are
// written once and never updated or deleted.
type QueryEvent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Query       string    `gorm:"not null" json:"query"`
	ResultCount int       `gorm:"not null" json:"result_count"`
	Timestamp   time.Time `gorm:"not null" json:"timestamp"`
}

func (QueryEvent) TableName() string {
	return "scraped_queries"
}
