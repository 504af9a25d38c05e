package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("calendar", prometheus.NewRegistry())

	m.ObserveHTTP(http.MethodGet, "/api/v1/departments", http.StatusOK, 20*time.Millisecond)
	m.RecordSourceRequest("http", "list_departments", nil)
	m.RecordSourceRequest("http", "list_departments", errors.New("boom"))
	m.RecordCache("hit")
	m.AddSkippedDates(2)
	m.AddSkippedDates(0)
	m.RecordRender("ar")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("calendar", "GET", "/api/v1/departments", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sourceRequestsTotal.WithLabelValues("calendar", "http", "list_departments", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sourceRequestsTotal.WithLabelValues("calendar", "http", "list_departments", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheRequestsTotal.WithLabelValues("calendar", "hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.skippedDatesTotal.WithLabelValues("calendar")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calendarRendersTotal.WithLabelValues("calendar", "ar")))
}
