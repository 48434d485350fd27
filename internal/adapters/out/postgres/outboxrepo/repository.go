package outboxrepo

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/outbox"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB, tracker aggregateTracker) *GormOutboxRepository {
	return &GormOutboxRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new outbox record to the database.
func (r *GormOutboxRepository) Add(ctx context.Context, record *outbox.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("outbox.add", err)
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Update saves an existing outbox record to the database.
// Attempts and LastError are written explicitly so that resetting them to
// zero values is not silently skipped.
func (r *GormOutboxRepository) Update(ctx context.Context, record *outbox.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).Model(&RecordDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "Attempts", "LastError", "SentAt").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewPersistenceError("outbox.update", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetPending retrieves up to limit pending records in creation order.
// Rows are locked with SKIP LOCKED so overlapping relay passes drain
// disjoint batches instead of double-publishing.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]*outbox.Record, error) {
	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ?", int(outbox.Pending)).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewPersistenceError("outbox.get_pending", err)
	}

	records := make([]*outbox.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, toDomainErr := toDomain(dto)
		if toDomainErr != nil {
			return nil, toDomainErr
		}
		records = append(records, record)
	}

	return records, nil
}
