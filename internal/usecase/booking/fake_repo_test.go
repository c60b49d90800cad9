package booking

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

const salonTZ = "America/Sao_Paulo"

// fakeRepo guarda a agenda em memória e respeita o mesmo contrato do gorm.
type fakeRepo struct {
	mu sync.Mutex

	salon    models.Salon
	services map[uuid.UUID]models.Service
	staff    map[uuid.UUID]models.Staff

	salonHours []scheduling.SalonDayRule
	staffHours []scheduling.StaffDayRule
	timeOff    []scheduling.TimeOff
	bookings   []models.Booking

	createErr error
}

func newFakeRepo() *fakeRepo {
	salon := models.Salon{
		ID:                uuid.New(),
		Name:              "Studio Bela",
		Slug:              "studio-bela",
		Timezone:          salonTZ,
		MinAdvanceMinutes: 15,
	}

	hours := make([]scheduling.SalonDayRule, 0, 7)
	for d := 0; d < 7; d++ {
		hours = append(hours, scheduling.SalonDayRule{
			DayOfWeek: d,
			OpenTime:  "09:00",
			CloseTime: "18:00",
			IsClosed:  d == int(time.Sunday),
		})
	}

	return &fakeRepo{
		salon:      salon,
		services:   map[uuid.UUID]models.Service{},
		staff:      map[uuid.UUID]models.Staff{},
		salonHours: hours,
	}
}

func (r *fakeRepo) addService(minutes int) models.Service {
	s := models.Service{ID: uuid.New(), SalonID: r.salon.ID, Name: "Corte", DurationMinutes: minutes, Active: true}
	r.services[s.ID] = s
	return s
}

func (r *fakeRepo) addStaff(name string) models.Staff {
	s := models.Staff{ID: uuid.New(), SalonID: r.salon.ID, Name: name, Active: true}
	r.staff[s.ID] = s
	return s
}

func (r *fakeRepo) addBooking(staffID uuid.UUID, status scheduling.Status, start, end time.Time) models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := models.Booking{
		ID:               uuid.New(),
		SalonID:          r.salon.ID,
		StaffID:          staffID,
		Staff:            r.staff[staffID],
		CustomerName:     "Cliente",
		AppointmentStart: start,
		AppointmentEnd:   end,
		Status:           string(status),
	}
	r.bookings = append(r.bookings, b)
	return b
}

func (r *fakeRepo) GetSalonByID(_ context.Context, id uuid.UUID) (*models.Salon, error) {
	if id != r.salon.ID {
		return nil, httperr.ErrBusiness("salon_not_found")
	}
	s := r.salon
	return &s, nil
}

func (r *fakeRepo) GetSalonBySlug(_ context.Context, slug string) (*models.Salon, error) {
	if slug != r.salon.Slug {
		return nil, httperr.ErrBusiness("salon_not_found")
	}
	s := r.salon
	return &s, nil
}

func (r *fakeRepo) GetService(_ context.Context, _ uuid.UUID, id uuid.UUID) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return &s, nil
}

func (r *fakeRepo) GetStaff(_ context.Context, _ uuid.UUID, id uuid.UUID) (*models.Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, httperr.ErrBusiness("staff_not_found")
	}
	return &s, nil
}

func (r *fakeRepo) LoadSnapshot(
	_ context.Context,
	_ uuid.UUID,
	staffID uuid.UUID,
	from, to time.Time,
) (*domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := &domain.Snapshot{SalonHours: r.salonHours}
	if staffID == uuid.Nil {
		return snap, nil
	}

	window := scheduling.Interval{Start: from, End: to}
	for _, h := range r.staffHours {
		if h.StaffID == staffID {
			snap.StaffHours = append(snap.StaffHours, h)
		}
	}
	for _, b := range r.bookings {
		rec := domain.Record(b)
		if b.StaffID == staffID && rec.Status.Busy() && rec.Interval().Overlaps(window) {
			snap.Bookings = append(snap.Bookings, rec)
		}
	}
	for _, t := range r.timeOff {
		if t.StaffID == staffID && t.Interval().Overlaps(window) {
			snap.TimeOff = append(snap.TimeOff, t)
		}
	}
	return snap, nil
}

func (r *fakeRepo) GetBooking(_ context.Context, _ uuid.UUID, id uuid.UUID) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, httperr.ErrBusiness("booking_not_found")
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i] = *b
			return nil
		}
	}
	return httperr.ErrBusiness("booking_not_found")
}

func (r *fakeRepo) ListBookingsForPeriod(
	_ context.Context,
	_ uuid.UUID,
	staffID uuid.UUID,
	from, to time.Time,
) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Booking{}
	for _, b := range r.bookings {
		if staffID != uuid.Nil && b.StaffID != staffID {
			continue
		}
		if b.AppointmentStart.Before(from) || !b.AppointmentStart.Before(to) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------------------------------------------------
// audit
// --------------------------------------------------

type memorySink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *memorySink) Log(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *memorySink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}

func newAudit(t *testing.T) (*audit.Dispatcher, *memorySink) {
	t.Helper()

	sink := &memorySink{}
	d := audit.NewDispatcher(sink, zerolog.New(io.Discard))
	t.Cleanup(d.Close)
	return d, sink
}

// --------------------------------------------------
// time helpers (segunda-feira, 2 de março de 2026)
// --------------------------------------------------

const monday = "2026-03-02"

func local(date, hm string) time.Time {
	t, err := timezone.ParseDateTime(date, hm, salonTZ)
	if err != nil {
		panic(err)
	}
	return t
}

// sundayNoon fica bem antes de qualquer slot de segunda.
func sundayNoon() time.Time {
	return local("2026-03-01", "12:00")
}
