package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactapp "vitalis/internal/application/contact"
	"vitalis/internal/shared/logger"
	"vitalis/internal/shared/utils"
)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	contactService *contactapp.Service
	logger         logger.Interface
}

func NewContactHandler(contactService *contactapp.Service) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger.NewLogger().With("component", "contact.handler"),
	}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var input contactapp.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warnw("invalid contact request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "name, email, subject and message are required")
		return
	}

	if err := h.contactService.Submit(c.Request.Context(), input); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "message sent", nil)
}
