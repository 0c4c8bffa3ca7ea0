package handlers_test

import (
	"net/http"
	"testing"

	"lead-crm-backend/internal/api/handlers"
	"lead-crm-backend/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupHealthRouter(t *testing.T, redisClient *redis.Client) (*testutils.HTTPTestSuite, func()) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	h := handlers.NewHealthHandler(gdb, redisClient)
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health", h.Health)
	httpSuite.Router.GET("/health/ready", h.Ready)
	httpSuite.Router.GET("/health/live", h.Live)

	return httpSuite, func() { _ = sqlDB.Close() }
}

func TestHealth_DatabaseOnly(t *testing.T) {
	httpSuite, _ := setupHealthRouter(t, nil)

	recorder := httpSuite.MakeRequest("GET", "/health", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var response handlers.HealthResponse
	testutils.ParseJSONResponse(t, recorder, &response)
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "healthy", response.Services["database"])
	_, hasRedis := response.Services["redis"]
	assert.False(t, hasRedis)
}

func TestHealth_RedisDownIsDegraded(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	httpSuite, _ := setupHealthRouter(t, client)

	mr.Close()
	recorder := httpSuite.MakeRequest("GET", "/health", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var response handlers.HealthResponse
	testutils.ParseJSONResponse(t, recorder, &response)
	assert.Equal(t, "healthy", response.Status)
	assert.Contains(t, response.Services["redis"], "degraded")
}

func TestHealth_DatabaseDown(t *testing.T) {
	httpSuite, closeDB := setupHealthRouter(t, nil)
	closeDB()

	recorder := httpSuite.MakeRequest("GET", "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	recorder = httpSuite.MakeRequest("GET", "/health/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	var check handlers.CheckResponse
	testutils.ParseJSONResponse(t, recorder, &check)
	assert.False(t, check.OK)

	recorder = httpSuite.MakeRequest("GET", "/health/live", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
