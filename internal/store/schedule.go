package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/bassemzed/scheduleback/internal/domain"
)

// ScheduleTx is the view of the schedule inside a single serialized
// transaction. The conflict scan and the write that follows it must both
// happen through the same ScheduleTx.
type ScheduleTx interface {
	CreateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	UpdateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	ListAppointments(ctx context.Context) ([]domain.Appointment, error)
}
