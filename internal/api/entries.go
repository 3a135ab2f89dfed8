// ABOUTME: HTTP handlers for daily entries, today lookup, and stats.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harperreed/healthify/internal/models"
	"github.com/harperreed/healthify/internal/storage"
)

func (s *Server) listEntries(c *gin.Context) {
	skip, err := intQuery(c, "skip", 0)
	if err != nil {
		s.respondError(c, err)
		return
	}
	limit, err := intQuery(c, "limit", 30)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if limit > 100 {
		s.respondError(c, &models.ValidationError{Field: "limit", Message: "must be at most 100"})
		return
	}

	opts := storage.ListEntriesOptions{Skip: skip, Limit: limit}
	if v := c.Query("start_date"); v != "" {
		d, err := models.ParseDate(v)
		if err != nil {
			s.respondError(c, &models.ValidationError{Field: "start_date", Message: err.Error()})
			return
		}
		opts.StartDate = &d
	}
	if v := c.Query("end_date"); v != "" {
		d, err := models.ParseDate(v)
		if err != nil {
			s.respondError(c, &models.ValidationError{Field: "end_date", Message: err.Error()})
			return
		}
		opts.EndDate = &d
	}

	entries, err := s.repo.ListEntries(opts)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if entries == nil {
		entries = []*models.DailyEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) getEntry(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}
	entry, err := s.repo.GetEntryByDate(date)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) createEntry(c *gin.Context) {
	var payload models.EntryCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := s.repo.CreateEntry(&payload)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (s *Server) updateEntry(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}
	var payload models.EntryUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := s.repo.UpdateEntry(date, &payload)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) deleteEntry(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}
	deleted, err := s.repo.DeleteEntry(date)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// getToday returns today's entry, or null when none exists yet.
func (s *Server) getToday(c *gin.Context) {
	entry, err := s.repo.GetEntryByDate(models.Today())
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) getStats(c *gin.Context) {
	days, err := intQuery(c, "days", 30)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if days < 1 || days > 365 {
		s.respondError(c, &models.ValidationError{Field: "days", Message: "must be between 1 and 365"})
		return
	}

	summary, err := s.repo.Stats(days)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// dateParam parses the :date path segment, writing a 400 on failure.
func (s *Server) dateParam(c *gin.Context) (models.Date, bool) {
	date, err := models.ParseDate(c.Param("date"))
	if err != nil {
		s.respondError(c, &models.ValidationError{Field: "date", Message: err.Error()})
		return models.Date{}, false
	}
	return date, true
}

// intQuery parses an optional integer query parameter.
func intQuery(c *gin.Context, name string, def int) (int, error) {
	v := c.Query(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &models.ValidationError{Field: name, Message: "must be an integer"}
	}
	return n, nil
}
