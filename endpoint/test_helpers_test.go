package endpoint_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ariebrainware/fitbuddy-api/endpoint"
	"github.com/ariebrainware/fitbuddy-api/middleware"
	"github.com/ariebrainware/fitbuddy-api/model"
	"github.com/ariebrainware/fitbuddy-api/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiResp struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Msg     string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
}

// setupTestServer returns a router with every route mounted over a private
// in-memory database.
func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	return setupTestServerWithCache(t, nil)
}

func setupTestServerWithCache(t *testing.T, cache *util.DiseaseCache) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:endpointtest_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.Tables...))

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.DiseaseCacheMiddleware(cache))
	endpoint.RegisterRoutes(r, "FitBuddy API")
	return r, db
}

func doRequest(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, apiResp) {
	t.Helper()
	var buf bytes.Buffer
	switch v := body.(type) {
	case nil:
	case string:
		buf.WriteString(v)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(v))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResp
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	}
	return w, resp
}

func decodeData(t *testing.T, raw json.RawMessage, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, dst), "data: %s", string(raw))
}

func registerBody(name, password string) map[string]interface{} {
	return map[string]interface{}{
		"name":     name,
		"age":      30,
		"gender":   "F",
		"phone":    "0812345678",
		"email":    name + "@example.com",
		"password": password,
	}
}

// registerUser registers a user through the API and returns its id.
func registerUser(t *testing.T, r http.Handler, name, password string) uint {
	t.Helper()
	w, resp := doRequest(t, r, http.MethodPost, "/register", registerBody(name, password))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var data endpoint.UserIDResponse
	decodeData(t, resp.Data, &data)
	return data.UserID
}

func seedDisease(t *testing.T, db *gorm.DB, d model.Disease) model.Disease {
	t.Helper()
	require.NoError(t, db.Create(&d).Error)
	return d
}

// newBareRouter mounts the routes without a database.
func newBareRouter() *gin.Engine {
	r := gin.New()
	endpoint.RegisterRoutes(r, "FitBuddy API")
	return r
}
