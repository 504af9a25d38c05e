package reservationservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdo0422/GestionReservation/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, nopLogger{})
}

func TestClient_ListDepartments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/departments", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"nomdepart":"Greffe%20du%20tribunal"},{"id":2,"nomdepart":"Registre de commerce"}]`))
	})

	departments, err := client.ListDepartments(context.Background())
	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, &domain.Department{ID: 1, Name: "Greffe du tribunal"}, departments[0])
	assert.Equal(t, "Registre de commerce", departments[1].Name)
}

func TestClient_ListDepartmentReservations(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chef/reservations", r.URL.Path)
		assert.Equal(t, "Greffe du tribunal", r.URL.Query().Get("department"))
		_, _ = w.Write([]byte(`[
			{"id":1,"date":"2025-03-10","time":"10:00","department":"Greffe du tribunal","citizen":"amina","description":"Dépôt","status":"En attente"},
			{"id":2,"date":"2025-04-01","time":"09:00","department":"Greffe du tribunal","citizen":"youssef","description":"Retrait","status":"Confirmé"},
			{"id":3,"date":"bientôt","time":"09:30","department":"Greffe du tribunal","citizen":"karim","description":"?","status":"En attente"},
			{"id":4,"date":"2025-03-31T15:00:00","time":"15:00","department":"Greffe du tribunal","citizen":"sara","description":"Dépôt","status":"Confirmé"}
		]`))
	})

	filter := domain.DepartmentReservationsFilter{
		Department: "Greffe du tribunal",
		StartDate:  time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndBefore:  time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	}

	reservations, err := client.ListDepartmentReservations(context.Background(), filter)
	require.NoError(t, err)

	ids := make([]int64, 0, len(reservations))
	for _, r := range reservations {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int64{1, 3, 4}, ids)
	assert.Equal(t, domain.StatusPending, reservations[0].Status)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: ErrUnavailable,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"error":"Nom d'utilisateur non trouvé"}`))
			},
			wantErr: ErrNotFound,
		},
		{
			name: "unexpected status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			},
			wantErr: ErrInvalidResponse,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
			wantErr: ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			_, err := client.ListDepartments(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second, nopLogger{})
	_, err := client.ListDepartments(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_UpdateStatus(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotBody   UpdateStatusRequest
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"message":"Réservation mise à jour"}`))
	})

	err := client.UpdateStatus(context.Background(), 12, domain.StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/chef/reservation/12/status", gotPath)
	assert.Equal(t, "Confirmé", gotBody.Status)
}

func TestClient_UpdateStatus_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Réservation non trouvée"}`))
	})

	err := client.UpdateStatus(context.Background(), 99, domain.StatusPending)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Réservation non trouvée")
}
