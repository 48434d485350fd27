package deadletterrepo

import (
	"context"
	"time"

	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeadLetterSink implements DeadLetterSink using GORM.
// Unlike the order and outbox repositories it operates outside the unit of
// work: a dead letter must survive even when the transaction that discovered
// the failure rolls back.
type GormDeadLetterSink struct {
	db *gorm.DB
}

// NewGormDeadLetterSink creates a new GORM dead letter sink.
func NewGormDeadLetterSink(db *gorm.DB) *GormDeadLetterSink {
	return &GormDeadLetterSink{db: db}
}

// Add appends a dead letter to the sink. A zero OccurredAt is stamped with
// the current UTC time.
func (s *GormDeadLetterSink) Add(ctx context.Context, letter ports.DeadLetter) error {
	dto := fromPort(letter)
	if dto.OccurredAt.IsZero() {
		dto.OccurredAt = time.Now().UTC()
	}

	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("dead_letters.add", err)
	}

	return nil
}

// GetAll retrieves all stored dead letters, newest first.
func (s *GormDeadLetterSink) GetAll(ctx context.Context) ([]ports.DeadLetter, error) {
	var dtos []DeadLetterDTO
	if err := s.db.WithContext(ctx).Order("occurred_at DESC, id DESC").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("dead_letters.get_all", err)
	}

	letters := make([]ports.DeadLetter, 0, len(dtos))
	for _, dto := range dtos {
		letters = append(letters, toPort(dto))
	}

	return letters, nil
}
