package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"todo-board/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users  service.UserService
	todos  service.TodoService
	logger *logrus.Logger
}

func NewHandler(users service.UserService, todos service.TodoService, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		users:  users,
		todos:  todos,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(h.requestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	router.POST("/users", h.createUser)

	todos := router.Group("/todos", h.requireUser())
	{
		todos.GET("", h.listTodos)
		todos.POST("", h.createTodo)
		todos.PUT("/:id", h.updateTodo)
		todos.PATCH("/:id/done", h.markTodoDone)
		todos.DELETE("/:id", h.deleteTodo)
	}
}

var corsBaseHeaders = []string{"Origin", "Content-Type", "Accept", usernameHeader}

// corsMiddleware allows every origin, method and request header. Preflights
// get the requested headers echoed back as allowed.
func corsMiddleware() gin.HandlerFunc {
	standard := cors.New(corsConfig(nil))
	return func(c *gin.Context) {
		requested := requestedHeaders(c.GetHeader("Access-Control-Request-Headers"))
		if c.Request.Method != http.MethodOptions || len(requested) == 0 {
			standard(c)
			return
		}
		cors.New(corsConfig(requested))(c)
	}
}

func corsConfig(extraHeaders []string) cors.Config {
	headers := append([]string{}, corsBaseHeaders...)
	return cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    append(headers, extraHeaders...),
		ExposeHeaders:   []string{"Content-Length", "Content-Type"},
		MaxAge:          12 * time.Hour,
	}
}

func requestedHeaders(raw string) []string {
	var out []string
	for _, h := range strings.Split(raw, ",") {
		if h = strings.TrimSpace(h); h != "" {
			out = append(out, h)
		}
	}
	return out
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := h.logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).Round(time.Microsecond).String(),
			"client_ip": c.ClientIP(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Info("request handled")
	}
}

// internalError logs err and answers with a 500.
func (h *Handler) internalError(c *gin.Context, err error) {
	h.logger.WithError(err).Errorf("%s %s", c.Request.Method, c.FullPath())
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
