// ABOUTME: HTTP handlers for the issue type catalog.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harperreed/healthify/internal/models"
)

func (s *Server) listIssueTypes(c *gin.Context) {
	activeOnly := c.DefaultQuery("active_only", "true") != "false"

	types, err := s.repo.ListIssueTypes(activeOnly)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if types == nil {
		types = []*models.IssueType{}
	}
	c.JSON(http.StatusOK, types)
}

func (s *Server) createIssueType(c *gin.Context) {
	var payload models.IssueTypeCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := s.repo.CreateIssueType(&payload)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
