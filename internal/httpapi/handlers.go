package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wzbwan/ADHD-homeworks/internal/ports/primary"
)

type createTaskRequest struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	AddToCommon bool   `json:"addToCommon"`
}

type addFromCommonRequest struct {
	Titles []string `json:"titles"`
	Date   string   `json:"date"`
}

type completeTaskRequest struct {
	Stars int `json:"stars"`
}

type addHabitRequest struct {
	Name    string `json:"name"`
	IconKey string `json:"iconKey"`
}

type toggleHabitRequest struct {
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
}

type redeemRequest struct {
	Reason string `json:"reason"`
	Points int    `json:"points"`
}

// writeError maps the service error taxonomy onto status codes.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, primary.ErrValidation), errors.Is(err, primary.ErrInsufficientBalance):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, primary.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) handleDashboard(c *gin.Context) {
	dash, err := s.dashboard.GetDashboard(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dash)
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var body createTaskRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := s.tasks.CreateTask(c.Request.Context(), primary.CreateTaskRequest{
		Title:       body.Title,
		Type:        body.Type,
		Date:        body.Date,
		AddToCommon: body.AddToCommon,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	score, err := s.score.CurrentScore(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": task, "currentScore": score})
}

func (s *Server) handleAddFromCommon(c *gin.Context) {
	var body addFromCommonRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tasks, err := s.tasks.AddTasksFromCommon(c.Request.Context(), primary.AddFromCommonRequest{
		Titles: body.Titles,
		Date:   body.Date,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	score, err := s.score.CurrentScore(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"tasks": tasks, "currentScore": score})
}

func (s *Server) handleListCommon(c *gin.Context) {
	titles, err := s.tasks.CommonTaskTitles(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if titles == nil {
		titles = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"tasks": titles})
}

func (s *Server) handleDeleteCommon(c *gin.Context) {
	if err := s.tasks.DeleteCommonTask(c.Request.Context(), c.Param("title")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleCompleteTask(c *gin.Context) {
	// A missing or malformed stars value falls back to zero and is
	// clamped to 1 by the service.
	var body completeTaskRequest
	_ = c.ShouldBindJSON(&body)

	task, err := s.tasks.CompleteTask(c.Request.Context(), c.Param("id"), body.Stars)
	if err != nil {
		writeError(c, err)
		return
	}

	score, err := s.score.CurrentScore(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task, "currentScore": score})
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	if err := s.tasks.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	score, err := s.score.CurrentScore(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"currentScore": score})
}

func (s *Server) handleListHabits(c *gin.Context) {
	habits, err := s.habits.ListHabitsWithState(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habits": habits})
}

func (s *Server) handleAddHabit(c *gin.Context) {
	var body addHabitRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := s.habits.AddHabit(c.Request.Context(), primary.AddHabitRequest{
		Name:    body.Name,
		IconKey: body.IconKey,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"habit": habit})
}

func (s *Server) handleDeleteHabit(c *gin.Context) {
	if err := s.habits.DeleteHabit(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleToggleHabit(c *gin.Context) {
	var body toggleHabitRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := s.habits.ToggleHabit(c.Request.Context(), primary.ToggleHabitRequest{
		HabitID:   c.Param("id"),
		Completed: body.Completed,
		Date:      body.Date,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	score, err := s.score.CurrentScore(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "currentScore": score})
}

func (s *Server) handleRedeem(c *gin.Context) {
	var body redeemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.score.RedeemPoints(c.Request.Context(), body.Reason, body.Points); err != nil {
		writeError(c, err)
		return
	}

	score, err := s.score.CurrentScore(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "currentScore": score})
}
