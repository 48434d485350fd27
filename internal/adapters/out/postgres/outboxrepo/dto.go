// Package outboxrepo persists outbox records alongside the order rows whose
// events they carry. Records are written inside the order transaction and
// drained by the relay, which locks pending rows so concurrent passes never
// publish the same record twice.
package outboxrepo

import (
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for persisting outbox records.
type RecordDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Payload       []byte    `gorm:"type:jsonb"`
	CorrelationID string    `gorm:"index"`
	EventType     string
	Status        int `gorm:"index"`
	Attempts      int
	LastError     string
	CreatedAt     time.Time `gorm:"index"`
	SentAt        *time.Time
}

// TableName specifies the database table name for outbox records.
func (RecordDTO) TableName() string {
	return "outbox"
}

// fromDomain converts an outbox record to its database representation.
func fromDomain(record *outbox.Record) RecordDTO {
	return RecordDTO{
		ID:            record.ID().Bytes(),
		Payload:       record.Payload(),
		CorrelationID: record.CorrelationID(),
		EventType:     record.EventType(),
		Status:        int(record.Status()),
		Attempts:      record.Attempts(),
		LastError:     record.LastError(),
		CreatedAt:     record.CreatedAt(),
		SentAt:        record.SentAt(),
	}
}

// toDomain converts a database DTO to an outbox record using RestoreRecord.
func toDomain(dto RecordDTO) (*outbox.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return outbox.RestoreRecord(
		id,
		dto.Payload,
		dto.CorrelationID,
		dto.EventType,
		outbox.Status(dto.Status),
		dto.Attempts,
		dto.LastError,
		dto.CreatedAt,
		dto.SentAt,
	)
}
