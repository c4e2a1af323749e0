package server

import (
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	documentdomain "github.com/districtclose/districtclose/internal/document/domain"
	txdomain "github.com/districtclose/districtclose/internal/transaction/domain"
)

type linkDocumentRequest struct {
	URL string `json:"url"`
}

type setDocumentStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) ListDocuments(c *gin.Context) {
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

	docs, err := s.documentsvc.ListForViewer(c.Request.Context(), tx.ID, string(role))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": docs})
}

func (s *Server) LinkDocument(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	documentID, ok := s.authorizeDocument(c)
	if !ok {
		return
	}

	var req linkDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	doc, err := s.documentsvc.Link(c.Request.Context(), documentID, req.URL, userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": doc})
}

func (s *Server) UnlinkDocument(c *gin.Context) {
	documentID, ok := s.authorizeDocument(c)
	if !ok {
		return
	}

	doc, err := s.documentsvc.Unlink(c.Request.Context(), documentID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": doc})
}

func (s *Server) SetDocumentStatus(c *gin.Context) {
	documentID, ok := s.authorizeDocument(c)
	if !ok {
		return
	}

	var req setDocumentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	doc, err := s.documentsvc.SetStatus(c.Request.Context(), documentID, documentdomain.Status(req.Status))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": doc})
}

// authorizeDocument confirms the caller participates in the transaction and
// can see the document slot. It aborts the request on failure.
func (s *Server) authorizeDocument(c *gin.Context) (snowflake.ID, bool) {
	userID, ok := mustUserID(c)
	if !ok {
		return 0, false
	}

	txID, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return 0, false
	}
	documentID, err := pathID(c, "documentID")
	if err != nil {
		AbortWithError(c, err)
		return 0, false
	}

	var (
		tx   *txdomain.Transaction
		role txdomain.Role
	)
	tx, role, err = s.txsvc.GetForViewer(c.Request.Context(), txID, userID)
	if err != nil {
		AbortWithError(c, err)
		return 0, false
	}

	visible, err := s.documentsvc.ListForViewer(c.Request.Context(), tx.ID, string(role))
	if err != nil {
		AbortWithError(c, err)
		return 0, false
	}
	for _, d := range visible {
		if d.ID == documentID {
			return documentID, true
		}
	}

	AbortWithError(c, documentdomain.ErrDocumentNotFound)
	return 0, false
}
