package handlers

import (
	"net/http"

	"placehub/internal/models"

	"github.com/gin-gonic/gin"
)

// Login - POST /api/manager/login
// Exchange manager credentials for a session token.
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, response)
}
