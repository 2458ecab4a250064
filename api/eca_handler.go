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

type ecaHandler struct {
	responder Responder
	logger    zerolog.Logger
	ecaRepo   *database.EcaRepo
}

func newEcaHandler(ecaRepo *database.EcaRepo) ecaHandler {
	logger := log.With().Str("handlerName", "ecaHandler").Logger()

	return ecaHandler{
		responder: NewResponder(logger),
		logger:    logger,
		ecaRepo:   ecaRepo,
	}
}

func (h ecaHandler) getAllEcas() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ecas, err := h.ecaRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "ECAs", err))
			return
		}

		h.responder.WriteJSON(w, ecas)
	}
}

func (h ecaHandler) getEca() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ecaID, err := parseIDParam(r, "ecaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		eca, err := h.ecaRepo.FindByID(ecaID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "ECA", err))
			return
		}

		if eca == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("ECA not found"))
			return
		}

		h.responder.WriteJSON(w, eca)
	}
}

func (h ecaHandler) createEca() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var eca models.Eca
		if err := json.NewDecoder(r.Body).Decode(&eca); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode ECA request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		eca.ID = 0

		if err := models.Validate(&eca); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.ecaRepo.Add(&eca); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "ECA", err))
			return
		}

		h.responder.WriteSuccess(w, map[string]any{"eca": eca})
	}
}

func (h ecaHandler) updateEca() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ecaID, err := parseIDParam(r, "ecaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		eca, err := h.ecaRepo.FindByID(ecaID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "ECA", err))
			return
		}

		if eca == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("ECA not found"))
			return
		}

		if err := json.NewDecoder(r.Body).Decode(eca); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode ECA request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		eca.ID = ecaID

		if err := models.Validate(eca); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.ecaRepo.Update(eca); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "ECA", err))
			return
		}

		h.responder.WriteSuccess(w, map[string]any{"eca": eca})
	}
}

func (h ecaHandler) deleteEca() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ecaID, err := parseIDParam(r, "ecaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		eca, err := h.ecaRepo.FindByID(ecaID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "ECA", err))
			return
		}

		if eca == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("ECA not found"))
			return
		}

		if err := h.ecaRepo.Delete(ecaID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "ECA", err))
			return
		}

		h.responder.WriteSuccess(w, nil)
	}
}
