package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bassemzed/scheduleback/internal/domain"
	"github.com/bassemzed/scheduleback/internal/store"
)

type Service struct {
	repo store.AppointmentRepository
	now  func() time.Time
}

func NewService(repo store.AppointmentRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SlotInput carries the raw request fields for a create or update. Date and
// times stay separate strings because that is the API shape; the validator
// combines them into one interval.
type SlotInput struct {
	Date      string
	TimeFrom  string
	TimeTo    string
	FirstName string
	LastName  string
	Title     string
}

func (s *Service) Create(ctx context.Context, in SlotInput) (domain.Appointment, error) {
	start, end, err := validateSlot(s.now(), in.Date, in.TimeFrom, in.TimeTo)
	if err != nil {
		return domain.Appointment{}, err
	}

	appt := domain.Appointment{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Title:        in.Title,
		DateTimeFrom: start,
		DateTimeTo:   end,
	}

	var out domain.Appointment
	err = s.repo.InScheduleTransaction(ctx, func(ctx context.Context, tx store.ScheduleTx) error {
		existing, err := tx.ListAppointments(ctx)
		if err != nil {
			return err
		}
		if hasConflict(start, end, existing, uuid.Nil) {
			return store.ErrConflict
		}
		created, err := tx.CreateAppointment(ctx, appt)
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in SlotInput) (domain.Appointment, error) {
	var out domain.Appointment
	err := s.repo.InScheduleTransaction(ctx, func(ctx context.Context, tx store.ScheduleTx) error {
		// Missing record wins over invalid input, so look up first.
		current, err := tx.GetAppointment(ctx, id)
		if err != nil {
			return err
		}

		start, end, err := validateSlot(s.now(), in.Date, in.TimeFrom, in.TimeTo)
		if err != nil {
			return err
		}

		existing, err := tx.ListAppointments(ctx)
		if err != nil {
			return err
		}
		// A booking never conflicts with its own prior version.
		if hasConflict(start, end, existing, id) {
			return store.ErrConflict
		}

		current.FirstName = in.FirstName
		current.LastName = in.LastName
		current.Title = in.Title
		current.DateTimeFrom = start
		current.DateTimeTo = end

		updated, err := tx.UpdateAppointment(ctx, current)
		if err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return out, nil
}

// List returns appointments whose start falls within
// [dateFrom 09:00, dateTo 17:00], both bounds inclusive, sorted ascending by
// start time. Blank bounds default to today.
func (s *Service) List(ctx context.Context, dateFrom, dateTo string) ([]domain.Appointment, error) {
	today := s.now().Format(dateLayout)
	if dateFrom == "" {
		dateFrom = today
	}
	if dateTo == "" {
		dateTo = today
	}

	from, err := time.ParseInLocation(dateLayout, dateFrom, time.Local)
	if err != nil {
		return nil, validationError(RejectBlankField, msgBlank)
	}
	to, err := time.ParseInLocation(dateLayout, dateTo, time.Local)
	if err != nil {
		return nil, validationError(RejectBlankField, msgBlank)
	}

	windowStart := time.Date(from.Year(), from.Month(), from.Day(), openingHour, 0, 0, 0, time.Local)
	windowEnd := time.Date(to.Year(), to.Month(), to.Day(), closingHour, 0, 0, 0, time.Local)

	return s.repo.ListInRange(ctx, windowStart, windowEnd)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
