package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todo-board/internal/service"
)

// Todo reads answer 201 like every other todo route; clients rely on it.
func (h *Handler) listTodos(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	todos, err := h.todos.List(c.Request.Context(), user)
	if err != nil {
		h.todoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todosToResponse(todos))
}

func (h *Handler) createTodo(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	title, deadline, ok := bindTodo(c)
	if !ok {
		return
	}

	todo, err := h.todos.Create(c.Request.Context(), user, title, deadline)
	if err != nil {
		h.todoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todoToResponse(*todo))
}

func (h *Handler) updateTodo(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	title, deadline, ok := bindTodo(c)
	if !ok {
		return
	}

	todo, err := h.todos.Update(c.Request.Context(), user, c.Param("id"), title, deadline)
	if err != nil {
		h.todoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todoToResponse(*todo))
}

func (h *Handler) markTodoDone(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	todo, err := h.todos.MarkDone(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		h.todoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todoToResponse(*todo))
}

func (h *Handler) deleteTodo(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	if err := h.todos.Delete(c.Request.Context(), user, c.Param("id")); err != nil {
		h.todoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindTodo(c *gin.Context) (string, time.Time, bool) {
	var req todoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", time.Time{}, false
	}
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", time.Time{}, false
	}
	return req.Title, deadline, true
}

func (h *Handler) todoError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": msgTodoNotFound})
		return
	}
	h.internalError(c, err)
}
