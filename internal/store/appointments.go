package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bassemzed/scheduleback/internal/domain"
)

type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	ListInRange(ctx context.Context, windowStart, windowEnd time.Time) ([]domain.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error

	InScheduleTransaction(ctx context.Context, fn func(ctx context.Context, tx ScheduleTx) error) error
}
