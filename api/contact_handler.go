package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/saadtahsin/portfolio-backend/database"
	"github.com/saadtahsin/portfolio-backend/errs"
	"github.com/saadtahsin/portfolio-backend/models"
	"github.com/saadtahsin/portfolio-backend/services"
)

// unsafeChars is the denylist stripped from visitor-controlled name and
// message fields before they are stored or handed to the notification step.
const unsafeChars = "<>`$\\;|&'\""

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactMessageRepo
	notifier    services.Notifier
}

func newContactHandler(contactRepo *database.ContactMessageRepo, notifier services.Notifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		notifier:    notifier,
	}
}

// createMessage validates and stores a contact-form submission, then makes a
// best-effort attempt to notify the site owner. Notification failure is
// logged and swallowed: the response still reports success because the
// message is already durable.
func (h contactHandler) createMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var message models.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		message.ID = 0
		message.Name = stripUnsafe(message.Name)
		message.Message = stripUnsafe(message.Message)

		if err := models.Validate(&message); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.contactRepo.Add(&message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact message", err))
			return
		}

		if err := h.notifier.Notify(r.Context(), services.ContactNotification{
			Name:    message.Name,
			Email:   message.Email,
			Message: message.Message,
		}); err != nil {
			h.logger.Error().Err(err).Int("messageId", message.ID).Msg("Contact notification failed")
		}

		h.responder.WriteSuccess(w, map[string]any{"id": message.ID})
	}
}

// listMessages returns every stored contact message. Admin-gated at the
// route level.
func (h contactHandler) listMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.contactRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact messages", err))
			return
		}

		h.responder.WriteJSON(w, messages)
	}
}

// stripUnsafe removes denylisted characters from visitor input.
func stripUnsafe(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(unsafeChars, r) {
			return -1
		}
		return r
	}, s)
}
