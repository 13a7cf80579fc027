package prometheus

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounts(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.RequestHandled("connect", "OK")
	r.RequestHandled("connect", "OK")
	r.RequestHandled("direct", "FAIL")
	r.DeliveryAttempted(true)
	r.DeliveryAttempted(false)
	r.ClientEvicted()
	r.RecordDiscarded()
	r.ClientsConnected(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.requests.WithLabelValues("connect", "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues("direct", "FAIL")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.deliveries.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.evictions))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.discarded))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.clients))
}

func TestRecordersDoNotShareRegistries(t *testing.T) {
	t.Parallel()

	a := NewRecorder()
	b := NewRecorder()
	a.ClientEvicted()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.evictions))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.evictions))
}

func TestHandlerExposesMetrics(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.ClientsConnected(2)

	srv := httptest.NewServer(r.Handler())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "fifochat_clients_connected 2")
}
