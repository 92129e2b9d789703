package users

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers provides HTTP handlers for user operations
type Handlers struct {
	service Service
	logger  *zap.Logger
}

// NewHandlers creates new user handlers
func NewHandlers(service Service, logger *zap.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers all user-related routes
func (h *Handlers) RegisterRoutes(router gin.IRouter) {
	router.GET("/api/test-users", h.ListUsers)
	router.POST("/api/add-test-user", h.AddUser)
	router.PUT("/api/update-test-user", h.UpdateUser)
	router.DELETE("/api/delete-test-user", h.DeleteUser)
}

// ListUsers returns all users that are not marked Deleted
func (h *Handlers) ListUsers(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AddUser creates a new user from the request body
func (h *Handlers) AddUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User added successfully",
		"id":      result.ID,
	})
}

// UpdateUser amends an existing user from the request body
func (h *Handlers) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "User updated successfully",
		"id":        result.ID,
		"user_name": result.UserName,
	})
}

// DeleteUser removes an existing user from the request body
func (h *Handlers) DeleteUser(c *gin.Context) {
	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), &req); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User deleted successfully",
		"id":      req.UserID,
	})
}

// writeError translates service errors into the response envelope. Expected
// failures map to client status codes; everything else is a server error.
func (h *Handlers) writeError(c *gin.Context, err error) {
	if ve, ok := AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Code, "details": ve.Detail})
		return
	}
	if _, ok := AsNotFoundError(err); ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found", "details": "The id entered does not exist"})
		return
	}
	if ce, ok := AsConflictError(err); ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Conflict", "details": ce.Detail})
		return
	}

	h.serverError(c, err)
}

func (h *Handlers) serverError(c *gin.Context, err error) {
	h.logger.Error("API route error", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error", "details": err.Error()})
}
