// ABOUTME: HTTP handlers for workout routines, days, and exercises.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/harperreed/healthify/internal/models"
	"github.com/harperreed/healthify/internal/storage"
)

func (s *Server) listRoutines(c *gin.Context) {
	routines, err := s.repo.ListRoutines()
	if err != nil {
		s.respondError(c, err)
		return
	}
	if routines == nil {
		routines = []*models.WorkoutRoutine{}
	}
	c.JSON(http.StatusOK, routines)
}

func (s *Server) createRoutine(c *gin.Context) {
	var payload models.RoutineCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	routine, err := s.repo.CreateRoutine(&payload)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, routine)
}

func (s *Server) getRoutine(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}
	routine, err := s.repo.GetRoutine(id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, routine)
}

func (s *Server) updateRoutine(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}
	var payload models.RoutineUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	routine, err := s.repo.UpdateRoutine(id, &payload)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, routine)
}

func (s *Server) deleteRoutine(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}
	if err := s.repo.DeleteRoutine(id); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) createDay(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}
	var payload models.DayCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	day, err := s.repo.CreateDay(id, &payload)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, day)
}

func (s *Server) updateDay(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}
	var payload models.DayUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	day, err := s.repo.UpdateDay(id, &payload)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

func (s *Server) deleteDay(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}
	if err := s.repo.DeleteDay(id); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) createExercise(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}
	var payload models.ExerciseCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ex, err := s.repo.CreateExercise(id, &payload)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ex)
}

func (s *Server) updateExercise(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}
	var payload models.ExerciseUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ex, err := s.repo.UpdateExercise(id, &payload)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ex)
}

func (s *Server) deleteExercise(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}
	if err := s.repo.DeleteExercise(id); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// todaysWorkout returns the scheduled workout for today, or null when
// no active routine has a day matching today's weekday.
func (s *Server) todaysWorkout(c *gin.Context) {
	workout, err := s.repo.TodaysWorkout()
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// idParam parses the :id path segment as a UUID, writing a 400 on failure.
func (s *Server) idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		s.respondError(c, &models.ValidationError{Field: "id", Message: "must be a UUID"})
		return uuid.UUID{}, false
	}
	return id, true
}
