package select_day

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdo0422/GestionReservation/internal/calendar"
	"github.com/Abdo0422/GestionReservation/internal/domain"
	"github.com/Abdo0422/GestionReservation/internal/service/reservations"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type fakeService struct {
	reservations []*domain.Reservation
	err          error
	requested    []calendar.Cursor
}

func (f *fakeService) GetDepartment(_ context.Context, id int64) (*domain.Department, error) {
	if id != 3 {
		return nil, fmt.Errorf("%w: id=%d", reservations.ErrDepartmentNotFound, id)
	}
	return &domain.Department{ID: 3, Name: "Greffe"}, nil
}

func (f *fakeService) GetMonthReservations(_ context.Context, _ string, month calendar.Cursor) ([]*domain.Reservation, error) {
	f.requested = append(f.requested, month)
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

func newTestUseCase(svc *fakeService) *UseCase {
	uc := NewUseCase(svc, time.UTC, domain.LanguageFrench, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2025, time.February, 20, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_ReturnsOnlyClickedDay(t *testing.T) {
	svc := &fakeService{reservations: []*domain.Reservation{
		{ID: 1, Date: "2025-02-07", Time: "15:00"},
		{ID: 2, Date: "2025-02-08", Time: "09:00"},
		{ID: 3, Date: "2025-02-07T10:30:00", Time: "10:30"},
		{ID: 4, Date: "garbage", Time: "08:00"},
	}}
	uc := newTestUseCase(svc)

	resp, err := uc.Execute(context.Background(), &Request{DepartmentID: 3, Month: "2025-02", Day: 7})
	require.NoError(t, err)

	assert.Equal(t, "2025-02-07", calendar.FormatDate(resp.Selected))
	assert.Equal(t, "7 févr. 2025", resp.FormattedDate)
	require.Len(t, resp.Reservations, 2)
	assert.Equal(t, int64(3), resp.Reservations[0].ID)
	assert.Equal(t, int64(1), resp.Reservations[1].ID)
}

func TestExecute_DefaultsToCurrentMonth(t *testing.T) {
	svc := &fakeService{}
	uc := newTestUseCase(svc)

	resp, err := uc.Execute(context.Background(), &Request{DepartmentID: 3, Day: 28, Language: "ar"})
	require.NoError(t, err)

	assert.Equal(t, "2025-02-28", calendar.FormatDate(resp.Selected))
	assert.Equal(t, []calendar.Cursor{{Year: 2025, Month: time.February}}, svc.requested)
	assert.True(t, resp.Locale.RightToLeft)
	assert.Empty(t, resp.Reservations)
}

func TestExecute_DayOutsideMonth(t *testing.T) {
	for _, day := range []int{0, -1, 29, 32} {
		t.Run(fmt.Sprintf("day %d", day), func(t *testing.T) {
			svc := &fakeService{}
			uc := newTestUseCase(svc)

			_, err := uc.Execute(context.Background(), &Request{DepartmentID: 3, Month: "2025-02", Day: day})
			assert.ErrorIs(t, err, ErrInvalidDay)
			assert.Empty(t, svc.requested)
		})
	}
}

func TestExecute_LeapDay(t *testing.T) {
	uc := newTestUseCase(&fakeService{})

	resp, err := uc.Execute(context.Background(), &Request{DepartmentID: 3, Month: "2024-02", Day: 29})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", calendar.FormatDate(resp.Selected))
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		svcErr  error
		wantErr error
	}{
		{name: "invalid department id", req: &Request{DepartmentID: -1, Day: 1}, wantErr: ErrInvalidInput},
		{name: "malformed month", req: &Request{DepartmentID: 3, Month: "février", Day: 1}, wantErr: ErrInvalidInput},
		{name: "unknown department", req: &Request{DepartmentID: 4, Day: 1}, wantErr: ErrDepartmentNotFound},
		{
			name:    "source unavailable",
			req:     &Request{DepartmentID: 3, Day: 1},
			svcErr:  fmt.Errorf("%w: status 503", reservations.ErrSourceUnavailable),
			wantErr: ErrSourceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeService{err: tt.svcErr})

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
