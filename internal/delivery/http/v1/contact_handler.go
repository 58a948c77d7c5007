package v1

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"estate-site-backend/internal/domain"
	"estate-site-backend/internal/metrics"
	"estate-site-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ContactHandler serves the public contact form endpoint.
type ContactHandler struct {
	contactUC    domain.ContactUsecase
	maxBodyBytes int64
	metrics      *metrics.Metrics
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, maxBodyBytes int64, m *metrics.Metrics) {
	handler := &ContactHandler{
		contactUC:    contactUC,
		maxBodyBytes: maxBodyBytes,
		metrics:      m,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates a contact form submission and emails it to the sales inbox. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  domain.ContactSubmissionResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Failure      503      {object}  response.ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	// Nothing can be delivered without a provider credential, so check before reading the body.
	if !h.contactUC.IsConfigured() {
		h.metrics.Submission(metrics.OutcomeUnconfigured)
		_ = c.Error(apperror.ServiceUnavailable(domain.MsgNotConfigured, domain.ErrContactNotConfigured))
		return
	}

	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	// The whole body must be exactly one JSON value; trailing bytes are rejected.
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || !json.Valid(body) {
		h.metrics.Submission(metrics.OutcomeMalformed)
		_ = c.Error(apperror.BadRequest(domain.MsgInvalidBody))
		return
	}

	var raw domain.RawSubmission
	if err := binding.JSON.BindBody(body, &raw); err != nil || raw == nil {
		h.metrics.Submission(metrics.OutcomeMalformed)
		_ = c.Error(apperror.BadRequest(domain.MsgInvalidBody))
		return
	}

	result, err := h.contactUC.SendContactMessage(c.Request.Context(), raw)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			_ = c.Error(apperror.BadRequest(vErr.Message))
		case errors.Is(err, domain.ErrContactNotConfigured):
			_ = c.Error(apperror.ServiceUnavailable(domain.MsgNotConfigured, err))
		default:
			_ = c.Error(apperror.Internal(domain.MsgDispatchFailed, err))
		}
		return
	}

	c.JSON(http.StatusOK, domain.ContactSubmissionResponse{
		Success: true,
		ID:      result.ID,
	})
}
