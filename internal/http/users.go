package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-board/internal/service"
)

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Name, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgUserExists})
		case errors.Is(err, service.ErrUsernameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.internalError(c, err)
		}
		return
	}

	h.logger.WithField("username", user.Username).Info("user created")
	c.JSON(http.StatusCreated, userToResponse(*user))
}
