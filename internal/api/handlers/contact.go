package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"thoughtaken/internal/api/dto/common"
	contactdto "thoughtaken/internal/api/dto/v1/contact"
	"thoughtaken/internal/contact"
	"thoughtaken/internal/logging"
	"thoughtaken/internal/mail"
	"thoughtaken/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	errMissingMailConfig = "Contact forwarding is not configured yet. Add MAILJET_* and CONTACT_TO env variables."
	errSendFailure       = "Unable to send message right now."
)

// ContactHandler runs one submission through the guard and, on full pass,
// through the delivery backend.
type ContactHandler struct {
	guard  *contact.Guard
	creds  mail.Credentials
	sender mail.Sender
}

// NewContactHandler creates a contact handler.
func NewContactHandler(guard *contact.Guard, creds mail.Credentials, sender mail.Sender) *ContactHandler {
	return &ContactHandler{
		guard:  guard,
		creds:  creds,
		sender: sender,
	}
}

// Submit handles POST /api/v1/contact/submit
func (h *ContactHandler) Submit(c *gin.Context) {
	logger := logging.GetLogger()

	var req contactdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A body we cannot parse gets the same generic failure as any other
		// unexpected processing error.
		utils.HandleAPIError(c, err, http.StatusInternalServerError, errSendFailure)
		return
	}

	in := contact.Input{
		Name:          req.Name,
		Email:         req.Email,
		Message:       req.Message,
		Company:       req.Company,
		FormStartedAt: req.FormStartedAt,
		UserAgent:     c.Request.UserAgent(),
		ClientKey:     utils.ClientKey(c),
	}

	validated, outcome, failure := h.guard.Check(in, time.Now())
	switch outcome {
	case contact.SilentAccept:
		// Honeypot hit: report success without sending so the bot learns
		// nothing about being detected.
		utils.HandleSuccess(c)
		return
	case contact.Rejected:
		logger.Warn("contact submission rejected (%s) from %s", failure.Kind, in.ClientKey)
		c.JSON(failure.Status, common.NewErrorResponse(failure.Message))
		return
	}

	// Checked only after the guard passes, so invalid submissions never
	// leak configuration state.
	if missing := h.creds.Missing(); len(missing) > 0 {
		err := fmt.Errorf("missing: %s", strings.Join(missing, ", "))
		utils.HandleAPIError(c, err, http.StatusInternalServerError, errMissingMailConfig)
		return
	}

	msg := mail.Compose(h.creds, validated.Name, validated.Email, validated.Message, time.Now())
	if err := h.sender.Send(c.Request.Context(), msg); err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, errSendFailure)
		return
	}

	logger.Info("contact submission from %s forwarded via %s", in.ClientKey, h.sender.Name())
	utils.HandleSuccess(c)
}
