package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/saadtahsin/portfolio-backend/database"
	"github.com/saadtahsin/portfolio-backend/errs"
	"github.com/saadtahsin/portfolio-backend/models"
)

// aboutHandler serves the singleton about-info row. There is no delete: the
// row is created once and updated in place from then on.
type aboutHandler struct {
	responder Responder
	logger    zerolog.Logger
	aboutRepo *database.AboutInfoRepo
}

func newAboutHandler(aboutRepo *database.AboutInfoRepo) aboutHandler {
	logger := log.With().Str("handlerName", "aboutHandler").Logger()

	return aboutHandler{
		responder: NewResponder(logger),
		logger:    logger,
		aboutRepo: aboutRepo,
	}
}

func (h aboutHandler) getAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := h.aboutRepo.First()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "about info", err))
			return
		}

		if info == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("About info not found"))
			return
		}

		h.responder.WriteJSON(w, info)
	}
}

// upsertAbout creates the about-info row if none exists, otherwise merges the
// payload into the first row. Multiple rows never accumulate.
func (h aboutHandler) upsertAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, err := h.aboutRepo.First()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "about info", err))
			return
		}

		if existing == nil {
			var info models.AboutInfo
			if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
				return
			}
			info.ID = 0

			if err := models.Validate(&info); err != nil {
				h.responder.WriteError(w, err)
				return
			}

			if err := h.aboutRepo.Add(&info); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("create", "about info", err))
				return
			}

			h.responder.WriteSuccess(w, map[string]any{"info": info})
			return
		}

		infoID := existing.ID
		if err := json.NewDecoder(r.Body).Decode(existing); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		existing.ID = infoID

		if err := models.Validate(existing); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.aboutRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "about info", err))
			return
		}

		h.responder.WriteSuccess(w, map[string]any{"info": existing})
	}
}
