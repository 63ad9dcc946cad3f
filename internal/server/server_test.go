package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FairSpin_Go/internal/audit"
	"github.com/osse101/FairSpin_Go/internal/fairness"
	"github.com/osse101/FairSpin_Go/internal/handler"
	"github.com/osse101/FairSpin_Go/internal/ledger"
	"github.com/osse101/FairSpin_Go/internal/paytable"
	"github.com/osse101/FairSpin_Go/internal/rtp"
	"github.com/osse101/FairSpin_Go/internal/slots"
)

func newTestServer(t *testing.T) (*Server, slots.Service) {
	t.Helper()

	table, err := paytable.Default()
	require.NoError(t, err)

	controller := rtp.NewController(rtp.NewMemoryStore(), table)
	cache := audit.NewCache(audit.CacheConfig{Size: 100, TTL: time.Hour})
	svc, err := slots.NewService(controller, fairness.NewSeedDeriver(""), cache)
	require.NoError(t, err)

	srv := NewServer(Options{Port: 0, RateLimitPerWindow: 1000}, svc, ledger.NewStatic(1000), cache, controller)
	return srv, svc
}

func serve(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_SpinAndLookup(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/spin", "/api/v1/spin"} {
		rec := serve(srv, http.MethodPost, path, `{"betAmount": 50, "userId": "dave"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "nosniff", rec.Header().Get(HeaderContentType))
		assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))

		var spin handler.SpinResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spin))
		assert.Len(t, spin.Symbols, 3)

		lookup := serve(srv, http.MethodGet, "/api/v1/spins/"+spin.SpinID, "")
		require.Equal(t, http.StatusOK, lookup.Code)

		var record handler.SpinRecordResponse
		require.NoError(t, json.Unmarshal(lookup.Body.Bytes(), &record))
		assert.Equal(t, spin.Seed, record.Seed)
		assert.Equal(t, "dave", record.UserID)
	}

	rec := serve(srv, http.MethodGet, "/api/v1/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats handler.StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.SpinCount)
	assert.Equal(t, int64(100), stats.TotalWagered)
}

func TestServer_Routes(t *testing.T) {
	srv, svc := newTestServer(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/readyz", http.StatusOK},
		{http.MethodGet, "/version", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/v1/paytable", http.StatusOK},
		{http.MethodGet, "/api/v1/spins/unknown", http.StatusNotFound},
		{http.MethodGet, "/spin", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(srv, tt.method, tt.path, "").Code)
		})
	}

	rec := serve(srv, http.MethodGet, "/version", "")
	assert.Contains(t, rec.Body.String(), svc.Paytable().Version)
}

func TestServer_RejectsOversizedBody(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"userId": "` + strings.Repeat("a", MaxRequestBodyBytes) + `", "betAmount": 10}`
	rec := serve(srv, http.MethodPost, "/spin", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), handler.CodeMalformedRequest)
}

func TestServer_StopWithoutStart(t *testing.T) {
	srv, _ := newTestServer(t)
	assert.NoError(t, srv.Stop(t.Context()))
}
