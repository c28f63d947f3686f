package handler

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/jayramanidev/portfolio/internal/model"
	mailer "github.com/jayramanidev/portfolio/internal/mail"

	"github.com/rs/zerolog"
)

// ContactResponse is the wire shape of the contact endpoint.
type ContactResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ContactHandler handles the portfolio contact form.
type ContactHandler struct {
	mailer mailer.Mailer
	logger zerolog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(m mailer.Mailer, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		mailer: m,
		logger: logger.With().Str("handler", "contact").Logger(),
	}
}

// Submit handles POST /api/contact with form fields name, email and
// message. Field-level validation errors are reported together and nothing
// is sent.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body", h.logger)
		return
	}

	req := &model.ContactRequest{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}

	fields := make(map[string]string)
	if req.Name == "" {
		fields["name"] = "Name is required"
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		fields["email"] = "A valid email address is required"
	}
	if req.Message == "" {
		fields["message"] = "Message is required"
	}

	if len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, ContactResponse{
			Success: false,
			Message: "Please correct the highlighted fields",
			Fields:  fields,
		})
		return
	}

	if err := h.mailer.Send(r.Context(), req); err != nil {
		h.logger.Error().Err(err).Msg("contact delivery failed")
		writeJSON(w, http.StatusBadGateway, ContactResponse{
			Success: false,
			Message: "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	writeJSON(w, http.StatusOK, ContactResponse{
		Success: true,
		Message: "Thank you for your message! I'll get back to you soon.",
	})
}
