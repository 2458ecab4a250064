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

type experienceHandler struct {
	responder      Responder
	logger         zerolog.Logger
	experienceRepo *database.ExperienceRepo
}

func newExperienceHandler(experienceRepo *database.ExperienceRepo) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		experienceRepo: experienceRepo,
	}
}

// getAllExperiences returns experiences in display order.
func (h experienceHandler) getAllExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experiences, err := h.experienceRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experiences", err))
			return
		}

		h.responder.WriteJSON(w, experiences)
	}
}

func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var experience models.Experience
		if err := json.NewDecoder(r.Body).Decode(&experience); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode experience request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		experience.ID = 0

		if err := models.Validate(&experience); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.experienceRepo.Add(&experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "experience", err))
			return
		}

		h.responder.WriteSuccess(w, map[string]any{"experience": experience})
	}
}

func (h experienceHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := parseIDParam(r, "experienceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		experience, err := h.experienceRepo.FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experience", err))
			return
		}

		if experience == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Experience not found"))
			return
		}

		if err := json.NewDecoder(r.Body).Decode(experience); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode experience request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		experience.ID = experienceID

		if err := models.Validate(experience); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.experienceRepo.Update(experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "experience", err))
			return
		}

		h.responder.WriteSuccess(w, map[string]any{"experience": experience})
	}
}

func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := parseIDParam(r, "experienceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		experience, err := h.experienceRepo.FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experience", err))
			return
		}

		if experience == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Experience not found"))
			return
		}

		if err := h.experienceRepo.Delete(experienceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "experience", err))
			return
		}

		h.responder.WriteSuccess(w, nil)
	}
}
