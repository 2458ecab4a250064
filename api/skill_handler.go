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

// skillHandler serves skill categories, skills and the flat additional-skill
// tag list. They share a handler because the admin panel edits them together.
type skillHandler struct {
	responder      Responder
	logger         zerolog.Logger
	categoryRepo   *database.SkillCategoryRepo
	skillRepo      *database.SkillRepo
	additionalRepo *database.AdditionalSkillRepo
}

func newSkillHandler(categoryRepo *database.SkillCategoryRepo, skillRepo *database.SkillRepo, additionalRepo *database.AdditionalSkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		categoryRepo:   categoryRepo,
		skillRepo:      skillRepo,
		additionalRepo: additionalRepo,
	}
}

// getAllCategories returns every skill category with its skills embedded.
func (h skillHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill categories", err))
			return
		}

		h.responder.WriteJSON(w, categories)
	}
}

func (h skillHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var category models.SkillCategory
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill category request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		category.ID = 0
		category.Skills = nil

		if err := models.Validate(&category); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.categoryRepo.Add(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill category", err))
			return
		}

		h.responder.WriteSuccess(w, map[string]any{"category": category})
	}
}

func (h skillHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := parseIDParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill category", err))
			return
		}

		if category == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Category not found"))
			return
		}

		// Skills are managed through their own routes.
		category.Skills = nil

		if err := json.NewDecoder(r.Body).Decode(category); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill category request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		category.ID = categoryID
		category.Skills = nil

		if err := models.Validate(category); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.categoryRepo.Update(category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill category", err))
			return
		}

		h.responder.WriteSuccess(w, map[string]any{"category": category})
	}
}

// deleteCategory removes a category and, transactionally, every skill in it.
func (h skillHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := parseIDParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill category", err))
			return
		}

		if category == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Category not found"))
			return
		}

		if err := h.categoryRepo.Delete(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill category", err))
			return
		}

		h.responder.WriteSuccess(w, nil)
	}
}

func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}

		h.responder.WriteJSON(w, skills)
	}
}

func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var skill models.Skill
		if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		skill.ID = 0

		if err := models.Validate(&skill); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.skillRepo.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill", err))
			return
		}

		h.responder.WriteSuccess(w, map[string]any{"skill": skill})
	}
}

func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}

		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Skill not found"))
			return
		}

		if err := json.NewDecoder(r.Body).Decode(skill); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		skill.ID = skillID

		if err := models.Validate(skill); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.skillRepo.Update(skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill", err))
			return
		}

		h.responder.WriteSuccess(w, map[string]any{"skill": skill})
	}
}

func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}

		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Skill not found"))
			return
		}

		if err := h.skillRepo.Delete(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill", err))
			return
		}

		h.responder.WriteSuccess(w, nil)
	}
}

func (h skillHandler) getAllAdditionalSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.additionalRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "additional skills", err))
			return
		}

		h.responder.WriteJSON(w, skills)
	}
}

func (h skillHandler) createAdditionalSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var skill models.AdditionalSkill
		if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode additional skill request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		skill.ID = 0

		if err := models.Validate(&skill); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.additionalRepo.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "additional skill", err))
			return
		}

		h.responder.WriteSuccess(w, map[string]any{"skill": skill})
	}
}

func (h skillHandler) deleteAdditionalSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.additionalRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "additional skill", err))
			return
		}

		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Additional skill not found"))
			return
		}

		if err := h.additionalRepo.Delete(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "additional skill", err))
			return
		}

		h.responder.WriteSuccess(w, nil)
	}
}
