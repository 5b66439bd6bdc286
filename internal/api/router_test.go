package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramdani/geocell-backend-go/internal/config"
	"github.com/ramdani/geocell-backend-go/internal/database"
	"github.com/ramdani/geocell-backend-go/internal/models"
)

const testSecret = "test-secret"

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	return SetupRouter(&config.Config{Port: ":0", JWTSecret: testSecret}, db)
}

func signToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "loader",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func fixtureSectors() []models.AntennaSector {
	return []models.AntennaSector{{
		Cellname: "JKT001_1", SiteID: "JKT001", NodeID: "N1",
		Position:   models.GeoPoint{Lat: -6.2, Lon: 106.8},
		AzimuthDeg: 90, BeamwidthDeg: 60, RadiusKm: 1,
	}}
}

func TestRouter(t *testing.T) {
	t.Run("health check", func(t *testing.T) {
		r := testRouter(t)
		w := doJSON(r, http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bulk load requires a bearer token", func(t *testing.T) {
		r := testRouter(t)

		w := doJSON(r, http.MethodPost, "/api/v1/sites/bulk", "", fixtureSectors())
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = doJSON(r, http.MethodPost, "/api/v1/sites/bulk", signToken(t, "wrong-secret"), fixtureSectors())
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = doJSON(r, http.MethodPost, "/api/v1/sites/bulk", signToken(t, testSecret), fixtureSectors())
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("coverage endpoints serve loaded data", func(t *testing.T) {
		r := testRouter(t)
		token := signToken(t, testSecret)

		w := doJSON(r, http.MethodPost, "/api/v1/sites/bulk", token, fixtureSectors())
		require.Equal(t, http.StatusOK, w.Code)

		samples := []models.MeasurementSample{
			{Cellname: "JKT001_1", Position: models.GeoPoint{Lat: -6.199, Lon: 106.805}, RSRP: -85},
			{Cellname: "FOREIGN", Position: models.GeoPoint{Lat: -6.25, Lon: 106.75}, RSRP: -120},
		}
		w = doJSON(r, http.MethodPost, "/api/v1/samples/bulk", token, samples)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(r, http.MethodGet, "/api/v1/coverage/footprints", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var footprints struct {
			Data struct {
				Count int `json:"count"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &footprints))
		assert.Equal(t, 1, footprints.Data.Count)

		w = doJSON(r, http.MethodGet, "/api/v1/coverage/spider", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var spider struct {
			Data struct {
				Count int `json:"count"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &spider))
		assert.Equal(t, 1, spider.Data.Count) // FOREIGN sample has no serving cell

		w = doJSON(r, http.MethodGet, "/api/v1/coverage/scene", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var scene struct {
			Data models.SceneSummary `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &scene))
		assert.Equal(t, 1, scene.Data.SectorCount)
		assert.Equal(t, 2, scene.Data.SampleCount)

		w = doJSON(r, http.MethodGet, "/api/v1/coverage/stats/rsrp", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(r, http.MethodGet, "/api/v1/coverage/stats/cells", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(r, http.MethodGet, "/api/v1/samples?limit=1", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list struct {
			Data struct {
				Count int `json:"count"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Equal(t, 1, list.Data.Count)
	})

	t.Run("malformed payload is rejected", func(t *testing.T) {
		r := testRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/sites/bulk", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
