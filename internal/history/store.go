package history

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Store is the append-only history log. No update or delete is exposed.
type Store interface {
	Append(ctx context.Context, userID uint, query string, resultCount int) error
	ByUser(ctx context.Context, userID uint) ([]QueryEvent, error)
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Append writes one record; the timestamp is assigned here, at write
// time, from the server clock.
func (s *gormStore) Append(ctx context.Context, userID uint, query string, resultCount int) error {
	event := QueryEvent{
		UserID:      userID,
		Query:       query,
		ResultCount: resultCount,
		Timestamp:   time.Now().UTC(),
	}
	return s.db.WithContext(ctx).Create(&event).Error
}

// ByUser returns the user's events newest-first.
func (s *gormStore) ByUser(ctx context.Context, userID uint) ([]QueryEvent, error) {
	var events []QueryEvent
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
