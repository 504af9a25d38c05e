package select_day

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cloudeng.io/datetime"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdo0422/GestionReservation/internal/calendar"
	"github.com/Abdo0422/GestionReservation/internal/domain"
	"github.com/Abdo0422/GestionReservation/internal/locale"
	selectDay "github.com/Abdo0422/GestionReservation/internal/usecase/select_day"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp    *selectDay.Response
	err     error
	lastReq *selectDay.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *selectDay.Request) (*selectDay.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/departments/{departmentId}/calendar/days/{day}", h.Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	loc := locale.Get(domain.LanguageArabic)
	selected := datetime.CalendarDate{Year: 2025, Month: 2, Day: 7}
	uc := &fakeUseCase{resp: &selectDay.Response{
		Department:    &domain.Department{ID: 3, Name: "Greffe"},
		Locale:        loc,
		Selected:      selected,
		FormattedDate: loc.FormatDate(selected),
		Reservations: []*domain.Reservation{
			{ID: 1, Date: "2025-02-07", Time: "09:00", Status: domain.StatusPending},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, "/api/v1/departments/3/calendar/days/7?month=2025-02&lang=ar")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(3), uc.lastReq.DepartmentID)
	assert.Equal(t, 7, uc.lastReq.Day)
	assert.Equal(t, "2025-02", uc.lastReq.Month)
	assert.Equal(t, "ar", uc.lastReq.Language)

	var body SelectDayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, calendar.FormatDate(selected), body.SelectedDate)
	assert.Equal(t, "7 فبراير 2025", body.FormattedDate)
	assert.Equal(t, "rtl", body.Direction)
	require.Len(t, body.Reservations, 1)
	assert.Equal(t, "pending", body.Reservations[0].StatusKey)
	assert.Equal(t, "قيد الانتظار", body.Reservations[0].StatusLabel)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{name: "bad department", target: "/api/v1/departments/0/calendar/days/7", wantStatus: http.StatusBadRequest},
		{name: "non numeric day", target: "/api/v1/departments/3/calendar/days/x", wantStatus: http.StatusBadRequest},
		{
			name:       "day outside month",
			target:     "/api/v1/departments/3/calendar/days/31?month=2025-02",
			err:        fmt.Errorf("%w: day 31 of 2025-02", selectDay.ErrInvalidDay),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad month",
			target:     "/api/v1/departments/3/calendar/days/1?month=2025",
			err:        selectDay.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "department not found",
			target:     "/api/v1/departments/3/calendar/days/1",
			err:        selectDay.ErrDepartmentNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "source unavailable",
			target:     "/api/v1/departments/3/calendar/days/1",
			err:        selectDay.ErrSourceUnavailable,
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := serve(h, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
