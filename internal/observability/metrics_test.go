package observability

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/complaints", http.MethodPost, http.StatusCreated, 5*time.Millisecond)
	m.RecordRequest("/complaints", http.MethodPost, http.StatusCreated, 7*time.Millisecond)
	m.RecordRequest("/admin/complaints", http.MethodGet, http.StatusOK, time.Millisecond)
	m.RecordError("/auth/register", http.MethodPost, "DUPLICATE_EMAIL")

	assert.Equal(t, int64(2), m.RequestCount("/complaints", http.MethodPost, http.StatusCreated))
	assert.Equal(t, int64(1), m.RequestCount("/admin/complaints", http.MethodGet, http.StatusOK))
	assert.Zero(t, m.RequestCount("/complaints", http.MethodGet, http.StatusOK))
	assert.Equal(t, int64(1), m.ErrorCount("/auth/register", http.MethodPost, "DUPLICATE_EMAIL"))
	assert.Zero(t, m.ErrorCount("/auth/register", http.MethodPost, "VALIDATION_FAILED"))
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/complaints", http.MethodPost, http.StatusCreated, 0)
	m.RecordError("/complaints", http.MethodPost, "VALIDATION_FAILED")
	assert.Zero(t, m.RequestCount("/complaints", http.MethodPost, http.StatusCreated))
}
