package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bassemzed/scheduleback/internal/domain"
	"github.com/bassemzed/scheduleback/internal/service/booking"
	"github.com/bassemzed/scheduleback/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeBookingService struct {
	createFn func(ctx context.Context, in booking.SlotInput) (domain.Appointment, error)
	updateFn func(ctx context.Context, id uuid.UUID, in booking.SlotInput) (domain.Appointment, error)
	listFn   func(ctx context.Context, dateFrom, dateTo string) ([]domain.Appointment, error)
	getFn    func(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeBookingService) Create(ctx context.Context, in booking.SlotInput) (domain.Appointment, error) {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, in)
}

func (f *fakeBookingService) Update(ctx context.Context, id uuid.UUID, in booking.SlotInput) (domain.Appointment, error) {
	if f.updateFn == nil {
		panic("Update not configured")
	}
	return f.updateFn(ctx, id, in)
}

func (f *fakeBookingService) List(ctx context.Context, dateFrom, dateTo string) ([]domain.Appointment, error) {
	if f.listFn == nil {
		panic("List not configured")
	}
	return f.listFn(ctx, dateFrom, dateTo)
}

func (f *fakeBookingService) Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	if f.getFn == nil {
		panic("Get not configured")
	}
	return f.getFn(ctx, id)
}

func (f *fakeBookingService) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		panic("Delete not configured")
	}
	return f.deleteFn(ctx, id)
}

func newTestRouter(svc *fakeBookingService) *gin.Engine {
	h := NewAppointmentsHandler(svc, slog.Default())
	return NewRouter(h, slog.Default(), RouterConfig{})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testAppointment() domain.Appointment {
	return domain.Appointment{
		ID:           uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Title:        "intro",
		DateTimeFrom: time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local),
		DateTimeTo:   time.Date(2024, 1, 2, 10, 0, 0, 0, time.Local),
	}
}

func TestCreate_Returns201WithRepresentation(t *testing.T) {
	var gotInput booking.SlotInput
	router := newTestRouter(&fakeBookingService{
		createFn: func(ctx context.Context, in booking.SlotInput) (domain.Appointment, error) {
			gotInput = in
			return testAppointment(), nil
		},
	})

	w := doJSON(t, router, http.MethodPost, "/add_appointments",
		`{"date":"2024-01-02","time_from":"09:00","time_to":"10:00","first_name":"Ada","last_name":"Lovelace","title":"intro"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if gotInput.Date != "2024-01-02" || gotInput.TimeFrom != "09:00" || gotInput.FirstName != "Ada" {
		t.Fatalf("input not forwarded: %+v", gotInput)
	}

	var resp struct {
		Message     string              `json:"message"`
		Appointment appointmentResponse `json:"appointment"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Message == "" {
		t.Fatalf("expected message in body")
	}
	if resp.Appointment.DateTimeFrom != "2024-01-02T09:00:00" {
		t.Fatalf("date_time_from = %q, want %q", resp.Appointment.DateTimeFrom, "2024-01-02T09:00:00")
	}
	if resp.Appointment.DateTimeTo != "2024-01-02T10:00:00" {
		t.Fatalf("date_time_to = %q, want %q", resp.Appointment.DateTimeTo, "2024-01-02T10:00:00")
	}
}

func TestCreate_ValidationRejectionIs406(t *testing.T) {
	router := newTestRouter(&fakeBookingService{
		createFn: func(ctx context.Context, in booking.SlotInput) (domain.Appointment, error) {
			return domain.Appointment{}, &booking.ValidationError{Kind: booking.RejectBlankField}
		},
	})

	w := doJSON(t, router, http.MethodPost, "/add_appointments",
		`{"date":"","time_from":"","time_to":""}`)
	if w.Code != http.StatusNotAcceptable {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotAcceptable)
	}
}

func TestCreate_ConflictIs409(t *testing.T) {
	router := newTestRouter(&fakeBookingService{
		createFn: func(ctx context.Context, in booking.SlotInput) (domain.Appointment, error) {
			return domain.Appointment{}, store.ErrConflict
		},
	})

	w := doJSON(t, router, http.MethodPost, "/add_appointments",
		`{"date":"2024-01-02","time_from":"09:30","time_to":"10:30"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestUpdate_Returns202(t *testing.T) {
	router := newTestRouter(&fakeBookingService{
		updateFn: func(ctx context.Context, id uuid.UUID, in booking.SlotInput) (domain.Appointment, error) {
			return testAppointment(), nil
		},
	})

	w := doJSON(t, router, http.MethodPut,
		"/update_appointments/00000000-0000-0000-0000-000000000001",
		`{"date":"2024-01-02","time_from":"09:00","time_to":"10:00","first_name":"Ada","last_name":"Lovelace","title":"intro"}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusAccepted)
	}
}

func TestUpdate_UnknownRecordIs404(t *testing.T) {
	router := newTestRouter(&fakeBookingService{
		updateFn: func(ctx context.Context, id uuid.UUID, in booking.SlotInput) (domain.Appointment, error) {
			return domain.Appointment{}, store.ErrNotFound
		},
	})

	w := doJSON(t, router, http.MethodPut,
		"/update_appointments/00000000-0000-0000-0000-000000000009",
		`{"date":"2024-01-02","time_from":"09:00","time_to":"10:00"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestUpdate_MalformedIDIs404(t *testing.T) {
	router := newTestRouter(&fakeBookingService{})

	w := doJSON(t, router, http.MethodPut, "/update_appointments/42",
		`{"date":"2024-01-02","time_from":"09:00","time_to":"10:00"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestList_ForwardsBoundsAndRendersArray(t *testing.T) {
	var gotFrom, gotTo string
	router := newTestRouter(&fakeBookingService{
		listFn: func(ctx context.Context, dateFrom, dateTo string) ([]domain.Appointment, error) {
			gotFrom, gotTo = dateFrom, dateTo
			return []domain.Appointment{testAppointment()}, nil
		},
	})

	w := doJSON(t, router, http.MethodPost, "/show_appointments",
		`{"date_from":"2024-01-02","date_to":"2024-01-03"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotFrom != "2024-01-02" || gotTo != "2024-01-03" {
		t.Fatalf("bounds = %q..%q", gotFrom, gotTo)
	}

	var out []appointmentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 1 || out[0].FirstName != "Ada" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestList_BlankBoundsReachServiceBlank(t *testing.T) {
	var gotFrom, gotTo string
	router := newTestRouter(&fakeBookingService{
		listFn: func(ctx context.Context, dateFrom, dateTo string) ([]domain.Appointment, error) {
			gotFrom, gotTo = dateFrom, dateTo
			return nil, nil
		},
	})

	w := doJSON(t, router, http.MethodPost, "/show_appointments", `{"date_from":"","date_to":""}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotFrom != "" || gotTo != "" {
		t.Fatalf("expected blank bounds to pass through, got %q..%q", gotFrom, gotTo)
	}
}

func TestGet_RendersWireShape(t *testing.T) {
	router := newTestRouter(&fakeBookingService{
		getFn: func(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
			return testAppointment(), nil
		},
	})

	w := doJSON(t, router, http.MethodGet,
		"/appointment_details/00000000-0000-0000-0000-000000000001", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"id", "first_name", "last_name", "title", "date_time_from", "date_time_to"} {
		if _, ok := out[key]; !ok {
			t.Fatalf("missing %q in body: %s", key, w.Body.String())
		}
	}
	if len(out) != 6 {
		t.Fatalf("wire shape has %d fields, want 6: %s", len(out), w.Body.String())
	}
}

func TestGet_UnknownRecordIs404(t *testing.T) {
	router := newTestRouter(&fakeBookingService{
		getFn: func(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
			return domain.Appointment{}, store.ErrNotFound
		},
	})

	w := doJSON(t, router, http.MethodGet,
		"/appointment_details/00000000-0000-0000-0000-000000000009", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestDelete_Returns202(t *testing.T) {
	var gotID uuid.UUID
	router := newTestRouter(&fakeBookingService{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			gotID = id
			return nil
		},
	})

	w := doJSON(t, router, http.MethodDelete,
		"/delete_appointments/00000000-0000-0000-0000-000000000001", "")
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusAccepted)
	}
	if gotID != uuid.MustParse("00000000-0000-0000-0000-000000000001") {
		t.Fatalf("id = %s", gotID)
	}
}

func TestDelete_UnknownRecordIs404(t *testing.T) {
	router := newTestRouter(&fakeBookingService{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			return store.ErrNotFound
		},
	})

	w := doJSON(t, router, http.MethodDelete,
		"/delete_appointments/00000000-0000-0000-0000-000000000009", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestHome(t *testing.T) {
	router := newTestRouter(&fakeBookingService{})

	w := doJSON(t, router, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Booking API") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
