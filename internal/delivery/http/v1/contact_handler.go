package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hashirsyed/portfolio-api/internal/delivery/http/response"
	"github.com/hashirsyed/portfolio-api/internal/domain"
	"github.com/hashirsyed/portfolio-api/pkg/apperror"
	"github.com/hashirsyed/portfolio-api/pkg/logger"
	"github.com/hashirsyed/portfolio-api/pkg/validation"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a contact form submission and relay it to the site owner's mailbox.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  map[string][]validation.FieldError
// @Failure      500      {object}  map[string]string
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.Errors{
			{Field: "body", Message: "Invalid request body"},
		})
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ValidationFailed(c, verrs)
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, "Error sending message", err))
		return
	}

	reqID, _ := c.Get("RequestID")
	logger.Log.Info("contact message relayed",
		"request_id", reqID,
		"name", req.Name,
		"email", req.Email,
	)
	response.Message(c, http.StatusOK, "Message sent successfully")
}
