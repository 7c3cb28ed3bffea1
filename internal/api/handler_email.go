package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartmail/internal/model"
	"smartmail/internal/service"
)

type EmailHandler struct {
	mail *service.MailService
}

func NewEmailHandler(mail *service.MailService) *EmailHandler {
	return &EmailHandler{
		mail: mail,
	}
}

// Ping handles GET /ping
func (h *EmailHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Send handles POST /api/email/send. The response is an array holding the
// inserted record, mirroring an insert-returning result set.
func (h *EmailHandler) Send(c *gin.Context) {
	var req service.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	record, err := h.mail.Send(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, []model.EmailRecord{*record})
}

// GetAll handles GET /api/email/get-all, newest first.
func (h *EmailHandler) GetAll(c *gin.Context) {
	emails, err := h.mail.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, emails)
}
