package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/districtclose/districtclose/internal/assistant"
	"github.com/districtclose/districtclose/internal/observability/logger"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages      []chatMessage `json:"messages"`
	TransactionID string        `json:"transaction_id"`
	CurrentPage   string        `json:"current_page"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// ChatRateLimit throttles assistant calls per user. A redis outage fails
// open rather than blocking the chat.
func (s *Server) ChatRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.chatLimiter == nil {
			c.Next()
			return
		}

		userID, ok := mustUserID(c)
		if !ok {
			return
		}

		result, err := s.chatLimiter.Allow(c.Request.Context(), userID.String())
		if err != nil {
			logger.FromContext(c.Request.Context()).Warn("chat rate limit check failed", zap.Error(err))
			c.Next()
			return
		}
		if !result.Allowed {
			retryAfter := int(result.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			AbortWithError(c, ErrRateLimited)
			return
		}

		c.Next()
	}
}

func (s *Server) Chat(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	chatCtx := assistant.ChatContext{CurrentPage: strings.TrimSpace(req.CurrentPage)}
	if raw := strings.TrimSpace(req.TransactionID); raw != "" {
		txID, err := pathIDFromString(raw)
		if err != nil {
			AbortWithError(c, newValidationError("transaction_id", "invalid_transaction_id", "invalid transaction_id"))
			return
		}
		tx, role, err := s.txsvc.GetForViewer(c.Request.Context(), txID, userID)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		chatCtx.UserRole = string(role)
		chatCtx.PropertyAddress = tx.PropertyAddress
		chatCtx.SalePrice = tx.SalePrice
		chatCtx.IsTenanted = tx.IsTenanted
	}

	messages := make([]assistant.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, assistant.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := s.assistantsvc.Chat(c.Request.Context(), chatCtx, messages)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": chatResponse{Reply: reply}})
}
