package get_calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cloudeng.io/datetime"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdo0422/GestionReservation/internal/api/handlers"
	"github.com/Abdo0422/GestionReservation/internal/calendar"
	"github.com/Abdo0422/GestionReservation/internal/domain"
	"github.com/Abdo0422/GestionReservation/internal/locale"
	getCalendar "github.com/Abdo0422/GestionReservation/internal/usecase/get_calendar"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp    *getCalendar.Response
	err     error
	lastReq *getCalendar.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getCalendar.Request) (*getCalendar.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

func serve(h *Handler, target string, header http.Header) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/departments/{departmentId}/calendar", h.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func marchResponse(t *testing.T) *getCalendar.Response {
	cursor := calendar.Cursor{Year: 2025, Month: time.March}
	selected := datetime.CalendarDate{Year: 2025, Month: 3, Day: 14}
	reservations := []*domain.Reservation{
		{ID: 1, Date: "2025-03-14", Time: "09:00", Department: "Greffe", Citizen: "Amal", Status: domain.StatusConfirmed},
		{ID: 2, Date: "bad", Time: "10:00"},
	}

	grid, err := calendar.ComputeGrid(cursor, &selected, reservations)
	require.NoError(t, err)

	return &getCalendar.Response{
		Department:    &domain.Department{ID: 3, Name: "Greffe"},
		Locale:        locale.Get(domain.LanguageFrench),
		Grid:          grid,
		Layout:        calendar.Layout{MaxWidthPx: 300},
		PreviousMonth: cursor.Previous(),
		NextMonth:     cursor.Next(),
		Selected:      selected,
		Reservations:  reservations[:1],
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: marchResponse(t)}
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, "/api/v1/departments/3/calendar?month=2025-03&selected=2025-03-14&nav=next&lang=fr",
		http.Header{"Accept-Language": []string{"ar"}})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, &getCalendar.Request{
		DepartmentID:   3,
		Month:          "2025-03",
		Selected:       "2025-03-14",
		Navigation:     "next",
		Language:       "fr",
		AcceptLanguage: "ar",
	}, uc.lastReq)

	var body CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "2025-03", body.Month)
	assert.Equal(t, "mars 2025", body.MonthLabel)
	assert.Equal(t, "ltr", body.Direction)
	assert.Equal(t, []string{"Dim", "Lun", "Mar", "Mer", "Jeu", "Ven", "Sam"}, body.Weekdays)
	assert.Equal(t, 6, body.LeadingBlanks)
	assert.Equal(t, 31, body.DaysInMonth)
	assert.Len(t, body.Cells, 37)
	assert.Equal(t, "2025-02", body.PreviousMonth)
	assert.Equal(t, "2025-04", body.NextMonth)
	assert.Equal(t, "2025-03-14", body.SelectedDate)
	assert.Equal(t, "14 mars 2025", body.FormattedSelectedDate)
	assert.Equal(t, 1, body.Skipped)

	day14 := body.Cells[6+13]
	assert.Equal(t, 14, day14.DayNumber)
	assert.True(t, day14.IsSelected)
	assert.True(t, day14.IsReserved)

	require.Len(t, body.Reservations, 1)
	assert.Equal(t, "confirmed", body.Reservations[0].StatusKey)
	assert.Equal(t, "Confirmé", body.Reservations[0].StatusLabel)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{
			name:       "non numeric department",
			target:     "/api/v1/departments/abc/calendar",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid params",
			target:     "/api/v1/departments/3/calendar?selected=yesterday",
			err:        fmt.Errorf("%w: selected", getCalendar.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "department not found",
			target:     "/api/v1/departments/9/calendar",
			err:        getCalendar.ErrDepartmentNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "source unavailable",
			target:     "/api/v1/departments/3/calendar",
			err:        getCalendar.ErrSourceUnavailable,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "internal error",
			target:     "/api/v1/departments/3/calendar",
			err:        getCalendar.ErrInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := serve(h, tt.target, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}
