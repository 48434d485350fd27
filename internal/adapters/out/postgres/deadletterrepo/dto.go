// Package deadletterrepo stores messages that could not be processed.
// The table is append-only: the consumer writes a row for every message it
// removes from the queue as unprocessable, and nothing reads the rows back
// into the pipeline.
package deadletterrepo

import (
	"time"

	"ordertrack/internal/core/ports"
)

// DeadLetterDTO represents the database structure for dead-lettered messages.
type DeadLetterDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Body          []byte `gorm:"type:bytea"`
	CorrelationID string `gorm:"index"`
	EventType     string
	Reason        string
	OccurredAt    time.Time `gorm:"index"`
}

// TableName specifies the database table name for dead letters.
func (DeadLetterDTO) TableName() string {
	return "dead_letters"
}

func fromPort(letter ports.DeadLetter) DeadLetterDTO {
	return DeadLetterDTO{
		Body:          letter.Body,
		CorrelationID: letter.CorrelationID,
		EventType:     letter.EventType,
		Reason:        letter.Reason,
		OccurredAt:    letter.OccurredAt,
	}
}

func toPort(dto DeadLetterDTO) ports.DeadLetter {
	return ports.DeadLetter{
		Body:          dto.Body,
		CorrelationID: dto.CorrelationID,
		EventType:     dto.EventType,
		Reason:        dto.Reason,
		OccurredAt:    dto.OccurredAt,
	}
}
