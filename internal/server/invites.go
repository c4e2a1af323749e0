package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	"github.com/districtclose/districtclose/internal/invite/token"
	"github.com/districtclose/districtclose/internal/observability/logger"
	txdomain "github.com/districtclose/districtclose/internal/transaction/domain"
	"go.uber.org/zap"
)

type sendInviteRequest struct {
	Email string `json:"email"`
}

func (s *Server) SendInvite(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req sendInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	tx, _, err := s.txsvc.GetForViewer(c.Request.Context(), id, userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if tx.PartnerID != nil {
		AbortWithError(c, txdomain.ErrAlreadyJoined)
		return
	}

	inv, err := s.invitesvc.Send(c.Request.Context(), tx.ID, req.Email, tx.InviteToken, tx.PropertyAddress)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":       inv,
		"invite_url": invite.BuildURL(s.cfg.BaseURL, tx.InviteToken),
	})
}

func (s *Server) ListInvites(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	tx, _, err := s.txsvc.GetForViewer(c.Request.Context(), id, userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	invs, err := s.invitesvc.ListByTransaction(c.Request.Context(), tx.ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": invs})
}

// ResolveInvite works without a session so the landing page can show the
// property before the invitee signs up. A logged-in viewer is identified so
// self-joins are caught here instead of at join time.
func (s *Server) ResolveInvite(c *gin.Context) {
	var userID snowflake.ID
	if raw, err := c.Cookie(sessionCookieName); err == nil && raw != "" {
		if user, err := s.authsvc.Authenticate(c.Request.Context(), raw); err == nil {
			userID = user.ID
		}
	}

	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		AbortWithError(c, txdomain.ErrInvalidToken)
		return
	}

	preview, err := s.txsvc.ResolveInvite(c.Request.Context(), token, userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": preview})
}

type joinRequest struct {
	Token string `json:"token"`
}

func (s *Server) JoinTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	token := strings.TrimSpace(req.Token)
	tx, err := s.txsvc.Join(c.Request.Context(), token, userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	// The partner seat is claimed; a failure to mark the invitation does
	// not undo the join.
	if err := s.invitesvc.MarkAccepted(c.Request.Context(), token); err != nil {
		logger.FromContext(c.Request.Context()).Warn("mark invitation accepted failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"data": tx})
}
