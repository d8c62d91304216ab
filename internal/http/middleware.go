package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-board/internal/domain"
	"todo-board/internal/service"
)

const (
	usernameHeader = "username"

	contextKeyUser = "todo-board.user"
)

// requireUser resolves the username header to a user and stores it in the
// context. Unknown usernames stop the chain with a 404.
func (h *Handler) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := h.users.Resolve(c.Request.Context(), c.GetHeader(usernameHeader))
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": msgUserNotFound})
				return
			}
			h.internalError(c, err)
			return
		}
		c.Set(contextKeyUser, user)
		c.Next()
	}
}

// userFromContext returns the user set by requireUser.
func userFromContext(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(contextKeyUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok && user != nil
}

// mustUser fetches the resolved user or answers 404 when the route was
// registered without requireUser.
func mustUser(c *gin.Context) (*domain.User, bool) {
	user, ok := userFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": msgUserNotFound})
		return nil, false
	}
	return user, true
}
