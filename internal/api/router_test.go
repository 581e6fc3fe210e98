package api

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdatalab/tripmatch-backend-go/internal/config"
	"github.com/pdatalab/tripmatch-backend-go/internal/ingest"
)

const onOffCSV = `begin_timestamp_utc,end_timestamp_utc,earner_state,begin_lat,begin_lng,end_lat,end_lng
2022-11-05 10:00:00,2022-11-05 11:00:00,open,46.1777,6.1348,46.1783,6.1360
`

const tripsCSV = `request_timestamp_utc,begintrip_timestamp_utc,dropoff_timestamp_utc,status,request_to_begin_distance_miles,trip_distance_miles,original_fare_local
2022-11-05 10:30:00,2022-11-05 10:40:00,2022-11-05 10:45:00,completed,1.0,5.0,17.50
`

func testConfig() *config.Config {
	return &config.Config{
		Port:            ":0",
		JWTSecret:       "router-test-secret",
		MaxDatasets:     4,
		RateLimit:       1000,
		RateLimitWindow: time.Minute,
		Ingest:          ingest.DefaultOptions(),
	}
}

func bearer(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "tester",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func archiveUpload(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	var zipBuf bytes.Buffer
	zw := zip.NewWriter(&zipBuf)
	for name, body := range map[string]string{
		"05 - Driver Online Offline.csv": onOffCSV,
		"02 - Driver Lifetime Trips.csv": tripsCSV,
	} {
		f, err := zw.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "archive.zip")
	require.NoError(t, err)
	_, err = fw.Write(zipBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, req *http.Request, auth string) *httptest.ResponseRecorder {
	t.Helper()
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouterEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	r := SetupRouter(cfg, zerolog.Nop())
	auth := bearer(t, cfg.JWTSecret)

	// Health needs no token.
	w := do(t, r, httptest.NewRequest(http.MethodGet, "/health", nil), "")
	assert.Equal(t, http.StatusOK, w.Code)

	// Upload.
	body, contentType := archiveUpload(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/datasets", body)
	req.Header.Set("Content-Type", contentType)
	w = do(t, r, req, auth)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var meta struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &meta))
	require.NotEmpty(t, meta.ID)

	// List shows the dataset.
	w = do(t, r, httptest.NewRequest(http.MethodGet, "/api/v1/datasets", nil), auth)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), meta.ID)

	// Reconcile with default priority.
	w = do(t, r, httptest.NewRequest(http.MethodPost, "/api/v1/datasets/"+meta.ID+"/reconcile", nil), auth)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "P3 consistent")
	assert.Contains(t, w.Body.String(), `"disjoint":true`)

	// Audit.
	w = do(t, r, httptest.NewRequest(http.MethodPost, "/api/v1/datasets/"+meta.ID+"/audit", nil), auth)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Fusion: the trip overlaps the session, so at least one pair.
	w = do(t, r, httptest.NewRequest(http.MethodPost, "/api/v1/datasets/"+meta.ID+"/fusion", nil), auth)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "overlap_hours")

	// Export the fusion table.
	w = do(t, r, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/"+meta.ID+"/export?kind=fusion", nil), auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "session_id")

	// Export CSV.
	w = do(t, r, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/"+meta.ID+"/export?kind=reconciled&format=csv", nil), auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

	// Export XLSX.
	w = do(t, r, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/"+meta.ID+"/export?format=xlsx", nil), auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PK", w.Body.String()[:2])

	// Delete, then a second lookup 404s.
	w = do(t, r, httptest.NewRequest(http.MethodDelete, "/api/v1/datasets/"+meta.ID, nil), auth)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/"+meta.ID, nil), auth)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	r := SetupRouter(cfg, zerolog.Nop())
	auth := bearer(t, cfg.JWTSecret)

	// No token.
	w := do(t, r, httptest.NewRequest(http.MethodGet, "/api/v1/datasets", nil), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown dataset.
	w = do(t, r, httptest.NewRequest(http.MethodPost, "/api/v1/datasets/nope/reconcile", nil), auth)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Bad priority label.
	body, contentType := archiveUpload(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/datasets", body)
	req.Header.Set("Content-Type", contentType)
	w = do(t, r, req, auth)
	require.Equal(t, http.StatusCreated, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var meta struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &meta))

	badReq := httptest.NewRequest(http.MethodPost, "/api/v1/datasets/"+meta.ID+"/reconcile",
		bytes.NewBufferString(`{"priority":["P9"]}`))
	badReq.Header.Set("Content-Type", "application/json")
	w = do(t, r, badReq, auth)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Bad export format.
	w = do(t, r, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/"+meta.ID+"/export?format=pdf", nil), auth)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
