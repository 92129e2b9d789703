package countries

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers provides HTTP handlers for country lookups
type Handlers struct {
	store  Store
	logger *zap.Logger
}

// NewHandlers creates new country handlers
func NewHandlers(store Store, logger *zap.Logger) *Handlers {
	return &Handlers{
		store:  store,
		logger: logger,
	}
}

// RegisterRoutes registers all country-related routes
func (h *Handlers) RegisterRoutes(router gin.IRouter) {
	router.GET("/api/test-countries", h.ListCountries)
	router.GET("/api/search-test-countries", h.SearchCountries)
}

// ListCountries returns all countries
func (h *Handlers) ListCountries(c *gin.Context) {
	result, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchCountries returns countries matching the search query parameter
func (h *Handlers) SearchCountries(c *gin.Context) {
	term := c.Query("search")

	result, err := h.store.Search(c.Request.Context(), term)
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handlers) serverError(c *gin.Context, err error) {
	h.logger.Error("API route error", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error", "details": err.Error()})
}
