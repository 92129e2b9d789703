package countries

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	require.NoError(t, Seed(context.Background(), db))

	handlers := NewHandlers(NewSQLiteStore(db), zap.NewNop())
	router := gin.New()
	handlers.RegisterRoutes(router)
	return router
}

func TestListCountriesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/test-countries", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var result []Country
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result, len(seedCountries))
}

func TestSearchCountriesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search-test-countries?search=japan", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var result []Country
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result, 1)
	assert.Equal(t, "Japan", result[0].CountryName)
	assert.Equal(t, "JP", result[0].IsoCode)
}

func TestSearchCountriesWithoutTermReturnsAll(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search-test-countries", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var result []Country
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result, len(seedCountries))
}
