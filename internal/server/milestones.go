package server

import (
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	milestonedomain "github.com/districtclose/districtclose/internal/milestone/domain"
)

type updateMilestoneRequest struct {
	Status string `json:"status"`
}

func (s *Server) ListMilestones(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	tx, role, err := s.txsvc.GetForViewer(c.Request.Context(), id, userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	milestones, err := s.milestonesvc.ListForViewer(c.Request.Context(), tx.ID, string(role))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": milestones})
}

func (s *Server) MilestoneProgress(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	tx, role, err := s.txsvc.GetForViewer(c.Request.Context(), id, userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	progress, err := s.milestonesvc.ProgressForViewer(c.Request.Context(), tx.ID, string(role))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": progress})
}

func (s *Server) UpdateMilestoneStatus(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	txID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}
	milestoneID, err := pathID(c, "milestoneID")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req updateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	tx, role, err := s.txsvc.GetForViewer(c.Request.Context(), txID, userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	// The milestone must be one the caller can see on this transaction.
	visible, err := s.milestonesvc.ListForViewer(c.Request.Context(), tx.ID, string(role))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if !containsMilestone(visible, milestoneID) {
		AbortWithError(c, milestonedomain.ErrMilestoneNotFound)
		return
	}

	m, err := s.milestonesvc.UpdateStatus(c.Request.Context(), milestoneID, milestonedomain.Status(req.Status))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": m})
}

func containsMilestone(milestones []milestonedomain.Milestone, id snowflake.ID) bool {
	for _, m := range milestones {
		if m.ID == id {
			return true
		}
	}
	return false
}
