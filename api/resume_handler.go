package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/saadtahsin/portfolio-backend/errs"
	"github.com/saadtahsin/portfolio-backend/services"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type resumeHandler struct {
	responder Responder
	logger    zerolog.Logger
	profile   services.Profile
}

func newResumeHandler(profile services.Profile) resumeHandler {
	logger := log.With().Str("handlerName", "resumeHandler").Logger()

	return resumeHandler{
		responder: NewResponder(logger),
		logger:    logger,
		profile:   profile,
	}
}

// getResume serializes the static profile into a .docx document and streams
// it as an attachment. The database is never consulted.
func (h resumeHandler) getResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		document, err := services.BuildResume(h.profile)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to generate resume", err))
			return
		}

		w.Header().Set("Content-Type", docxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ResumeFileName))
		w.Header().Set("Content-Length", strconv.Itoa(len(document)))

		if _, err := w.Write(document); err != nil {
			h.logger.Error().Err(err).Msg("error streaming resume document")
		}
	}
}
